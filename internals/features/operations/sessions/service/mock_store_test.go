package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	dm "formaops_backend/internals/features/operations/deals/model"
	m "formaops_backend/internals/features/operations/sessions/model"
)

/* =======================================================
   Fakes en memoria para los puertos del motor.
   fakeTx no simula rollback: los tests de atomicidad
   verifican orden/conteo de llamadas.
   ======================================================= */

type fakeStore struct {
	deals    map[uuid.UUID]*dm.DealModel
	products map[uuid.UUID]*dm.DealProductModel

	sessions      []*m.TrainingSessionModel
	trainerAssign map[uuid.UUID][]uuid.UUID
	unitAssign    map[uuid.UUID][]uuid.UUID

	calls  map[string]int
	failOn map[string]error

	clock time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		deals:         map[uuid.UUID]*dm.DealModel{},
		products:      map[uuid.UUID]*dm.DealProductModel{},
		trainerAssign: map[uuid.UUID][]uuid.UUID{},
		unitAssign:    map[uuid.UUID][]uuid.UUID{},
		calls:         map[string]int{},
		failOn:        map[string]error{},
		clock:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) totalCalls() int {
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeStore) record(method string) error {
	f.calls[method]++
	return f.failOn[method]
}

func (f *fakeStore) addDeal(siteLabel string, address *string) *dm.DealModel {
	d := &dm.DealModel{
		DealID:              uuid.New(),
		DealSiteLabel:       siteLabel,
		DealTrainingAddress: address,
	}
	f.deals[d.DealID] = d
	return d
}

func (f *fakeStore) addProduct(dealID uuid.UUID, name, code string) *dm.DealProductModel {
	p := &dm.DealProductModel{
		DealProductID:     uuid.New(),
		DealProductDealID: dealID,
		DealProductName:   name,
		DealProductCode:   code,
	}
	f.products[p.DealProductID] = p
	return p
}

func (f *fakeStore) addSession(productID uuid.UUID, roomID *uuid.UUID, start, end *time.Time) *m.TrainingSessionModel {
	f.clock = f.clock.Add(time.Minute)
	s := &m.TrainingSessionModel{
		TrainingSessionID:            uuid.New(),
		TrainingSessionDealProductID: productID,
		TrainingSessionRoomID:        roomID,
		TrainingSessionStartAt:       start,
		TrainingSessionEndAt:         end,
		TrainingSessionState:         m.SessionDraft,
		TrainingSessionCreatedAt:     f.clock,
	}
	f.sessions = append(f.sessions, s)
	return s
}

/* ---------- DealReader ---------- */

func (f *fakeStore) GetDeal(ctx context.Context, dealID uuid.UUID) (*dm.DealModel, error) {
	if err := f.record("GetDeal"); err != nil {
		return nil, err
	}
	return f.deals[dealID], nil
}

func (f *fakeStore) FindProduct(ctx context.Context, dealID uuid.UUID, productRef string) (*dm.DealProductModel, error) {
	if err := f.record("FindProduct"); err != nil {
		return nil, err
	}
	for _, p := range f.products {
		if p.DealProductDealID != dealID {
			continue
		}
		if p.DealProductID.String() == productRef || p.DealProductCode == productRef {
			return p, nil
		}
	}
	return nil, nil
}

/* ---------- SessionStore ---------- */

func (f *fakeStore) FindOverlapping(ctx context.Context, q OverlapQuery) ([]m.TrainingSessionModel, error) {
	if err := f.record("FindOverlapping"); err != nil {
		return nil, err
	}
	var out []m.TrainingSessionModel
	for _, s := range f.sessions {
		if q.ExcludeSessionID != nil && s.TrainingSessionID == *q.ExcludeSessionID {
			continue
		}
		if !s.Scheduled() {
			continue
		}
		if !RangesOverlap(*s.TrainingSessionStartAt, *s.TrainingSessionEndAt, q.StartAt, q.EndAt) {
			continue
		}
		if f.claims(s, q.Claim) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStore) claims(s *m.TrainingSessionModel, claim ResourceClaim) bool {
	if claim.RoomID != nil && s.TrainingSessionRoomID != nil && *claim.RoomID == *s.TrainingSessionRoomID {
		return true
	}
	for _, want := range claim.TrainerIDs {
		for _, have := range f.trainerAssign[s.TrainingSessionID] {
			if want == have {
				return true
			}
		}
	}
	for _, want := range claim.MobileUnitIDs {
		for _, have := range f.unitAssign[s.TrainingSessionID] {
			if want == have {
				return true
			}
		}
	}
	return false
}

func (f *fakeStore) GetSession(ctx context.Context, id uuid.UUID) (*m.TrainingSessionModel, error) {
	if err := f.record("GetSession"); err != nil {
		return nil, err
	}
	for _, s := range f.sessions {
		if s.TrainingSessionID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateSession(ctx context.Context, row *m.TrainingSessionModel) error {
	if err := f.record("CreateSession"); err != nil {
		return err
	}
	f.clock = f.clock.Add(time.Minute)
	row.TrainingSessionCreatedAt = f.clock
	cp := *row
	f.sessions = append(f.sessions, &cp)
	return nil
}

func (f *fakeStore) SaveSession(ctx context.Context, row *m.TrainingSessionModel) error {
	if err := f.record("SaveSession"); err != nil {
		return err
	}
	for i, s := range f.sessions {
		if s.TrainingSessionID == row.TrainingSessionID {
			cp := *row
			cp.TrainingSessionCreatedAt = s.TrainingSessionCreatedAt
			f.sessions[i] = &cp
			return nil
		}
	}
	cp := *row
	f.sessions = append(f.sessions, &cp)
	return nil
}

func (f *fakeStore) CreateTrainerAssignments(ctx context.Context, sessionID uuid.UUID, trainerIDs []uuid.UUID) error {
	if err := f.record("CreateTrainerAssignments"); err != nil {
		return err
	}
	f.trainerAssign[sessionID] = append(f.trainerAssign[sessionID], trainerIDs...)
	return nil
}

func (f *fakeStore) CreateMobileUnitAssignments(ctx context.Context, sessionID uuid.UUID, unitIDs []uuid.UUID) error {
	if err := f.record("CreateMobileUnitAssignments"); err != nil {
		return err
	}
	f.unitAssign[sessionID] = append(f.unitAssign[sessionID], unitIDs...)
	return nil
}

func (f *fakeStore) ReplaceTrainerAssignments(ctx context.Context, sessionID uuid.UUID, trainerIDs []uuid.UUID) error {
	if err := f.record("ReplaceTrainerAssignments"); err != nil {
		return err
	}
	f.trainerAssign[sessionID] = append([]uuid.UUID(nil), trainerIDs...)
	return nil
}

func (f *fakeStore) ReplaceMobileUnitAssignments(ctx context.Context, sessionID uuid.UUID, unitIDs []uuid.UUID) error {
	if err := f.record("ReplaceMobileUnitAssignments"); err != nil {
		return err
	}
	f.unitAssign[sessionID] = append([]uuid.UUID(nil), unitIDs...)
	return nil
}

func (f *fakeStore) ListTrainerIDs(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error) {
	if err := f.record("ListTrainerIDs"); err != nil {
		return nil, err
	}
	return f.trainerAssign[sessionID], nil
}

func (f *fakeStore) ListMobileUnitIDs(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error) {
	if err := f.record("ListMobileUnitIDs"); err != nil {
		return nil, err
	}
	return f.unitAssign[sessionID], nil
}

func (f *fakeStore) FindSessionsForProduct(ctx context.Context, productID uuid.UUID) ([]m.TrainingSessionModel, error) {
	if err := f.record("FindSessionsForProduct"); err != nil {
		return nil, err
	}
	var out []m.TrainingSessionModel
	for _, s := range f.sessions {
		if s.TrainingSessionDealProductID == productID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.TrainingSessionCreatedAt.Equal(b.TrainingSessionCreatedAt) {
			return a.TrainingSessionCreatedAt.Before(b.TrainingSessionCreatedAt)
		}
		return a.TrainingSessionID.String() < b.TrainingSessionID.String()
	})
	return out, nil
}

func (f *fakeStore) RenameSession(ctx context.Context, id uuid.UUID, name string) error {
	if err := f.record("RenameSession"); err != nil {
		return err
	}
	for _, s := range f.sessions {
		if s.TrainingSessionID == id {
			s.TrainingSessionName = name
			return nil
		}
	}
	return nil
}

/* ---------- TxManager / RoomPicker ---------- */

type fakeTx struct {
	st *fakeStore
}

func (t *fakeTx) InTx(ctx context.Context, fn func(s Store) error) error {
	return fn(t.st)
}

type fixedPicker struct {
	roomID *uuid.UUID
	err    error
	picks  int
}

func (p *fixedPicker) PickRoom(ctx context.Context) (*uuid.UUID, error) {
	p.picks++
	return p.roomID, p.err
}
