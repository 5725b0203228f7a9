// file: internals/features/operations/sessions/service/allocator.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"formaops_backend/internals/constants"
	m "formaops_backend/internals/features/operations/sessions/model"
)

/* =========================
   Allocator & Constructor
   ========================= */

// Allocator escribe una sesión + sus filas de asignación como unidad
// atómica, con el chequeo de solape como precondición y la derivación
// de estado para sellar el estado inicial.
type Allocator struct {
	Tx TxManager
}

func NewAllocator(tx TxManager) *Allocator {
	return &Allocator{Tx: tx}
}

/* =========================
   Allocate (create)
   ========================= */

type AllocateInput struct {
	DealID     uuid.UUID
	ProductRef string // id o código del producto dentro del deal

	TrainerIDs    []uuid.UUID
	MobileUnitIDs []uuid.UUID
	RoomID        *uuid.UUID

	StartAt *time.Time
	EndAt   *time.Time

	// Override de dirección; por defecto la del deal.
	Address *string

	State StateDirective
}

// validate corre ANTES de tocar cualquier repositorio.
func (in *AllocateInput) validate() error {
	if in.DealID == uuid.Nil {
		return Validationf("deal_id is required")
	}
	if in.ProductRef == "" {
		return Validationf("deal_product is required")
	}
	if (in.StartAt == nil) != (in.EndAt == nil) {
		return Validationf("start and end must be provided together")
	}
	if in.StartAt != nil && in.EndAt != nil && in.EndAt.Before(*in.StartAt) {
		return Validationf("end must be >= start")
	}
	if forced, ok := in.State.IsForced(); ok && !forced.Valid() {
		return Validationf("invalid session state %q", string(forced))
	}
	return nil
}

func (a *Allocator) Allocate(ctx context.Context, in AllocateInput) (*m.TrainingSessionModel, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var out *m.TrainingSessionModel
	err := a.Tx.InTx(ctx, func(s Store) error {
		// 1) Contexto comercial
		deal, err := s.GetDeal(ctx, in.DealID)
		if err != nil {
			return Unexpected(err)
		}
		if deal == nil {
			return NotFoundf("deal %s not found", in.DealID)
		}
		prod, err := s.FindProduct(ctx, in.DealID, in.ProductRef)
		if err != nil {
			return Unexpected(err)
		}
		if prod == nil {
			return NotFoundf("product %q not found for deal %s", in.ProductRef, in.DealID)
		}

		// 2) Precondición de solape (misma tx que la escritura)
		claim := ResourceClaim{
			TrainerIDs:    in.TrainerIDs,
			RoomID:        in.RoomID,
			MobileUnitIDs: in.MobileUnitIDs,
		}
		conflict, err := HasConflict(ctx, s, in.StartAt, in.EndAt, claim, nil)
		if err != nil {
			return Unexpected(err)
		}
		if conflict {
			return Unavailablef("requested trainer/room/mobile-unit is already booked in that range")
		}

		// 3) + 4) Estado
		state := in.State.Resolve(StateInput{
			SiteRequiresRoom: constants.SiteRequiresRoom(deal.DealSiteLabel),
			RoomID:           in.RoomID,
			TrainerIDs:       in.TrainerIDs,
			MobileUnitIDs:    in.MobileUnitIDs,
			StartAt:          in.StartAt,
			EndAt:            in.EndAt,
		})

		address := in.Address
		if address == nil {
			address = deal.DealTrainingAddress
		}

		// 5) Persistir sesión + asignaciones como unidad
		sess := &m.TrainingSessionModel{
			TrainingSessionID:            uuid.New(),
			TrainingSessionDealID:        deal.DealID,
			TrainingSessionDealProductID: prod.DealProductID,
			TrainingSessionName:          prod.BaseName(),
			TrainingSessionAddress:       address,
			TrainingSessionState:         state,
			TrainingSessionStartAt:       in.StartAt,
			TrainingSessionEndAt:         in.EndAt,
			TrainingSessionRoomID:        in.RoomID,
		}
		if err := s.CreateSession(ctx, sess); err != nil {
			return Unexpected(err)
		}
		if err := s.CreateTrainerAssignments(ctx, sess.TrainingSessionID, in.TrainerIDs); err != nil {
			return Unexpected(err)
		}
		if err := s.CreateMobileUnitAssignments(ctx, sess.TrainingSessionID, in.MobileUnitIDs); err != nil {
			return Unexpected(err)
		}

		// 6) Reindexar hermanas (misma tx)
		names, err := ReindexSiblings(ctx, s, prod.DealProductID, prod.BaseName())
		if err != nil {
			return Unexpected(err)
		}
		if name, ok := names[sess.TrainingSessionID]; ok {
			sess.TrainingSessionName = name
		}

		out = sess
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}
	return out, nil
}

/* =========================
   Reschedule (update parcial)
   ========================= */

// Reschedule recarga la sesión, deja que el caller aplique sus cambios
// (apply), re-chequea solape con exclude-self y re-deriva el estado
// salvo que esté retenido o el caller lo fuerce.
//
// trainerIDs/unitIDs nil = conservar asignaciones actuales.
func (a *Allocator) Reschedule(
	ctx context.Context,
	sessionID uuid.UUID,
	apply func(row *m.TrainingSessionModel) error,
	trainerIDs []uuid.UUID,
	unitIDs []uuid.UUID,
	forced *m.SessionState,
) (*m.TrainingSessionModel, error) {
	if sessionID == uuid.Nil {
		return nil, Validationf("session id is required")
	}
	if forced != nil && !forced.Valid() {
		return nil, Validationf("invalid session state %q", string(*forced))
	}

	var out *m.TrainingSessionModel
	err := a.Tx.InTx(ctx, func(s Store) error {
		sess, err := s.GetSession(ctx, sessionID)
		if err != nil {
			return Unexpected(err)
		}
		if sess == nil {
			return NotFoundf("session %s not found", sessionID)
		}

		if apply != nil {
			if err := apply(sess); err != nil {
				return Validationf("%v", err)
			}
		}
		if (sess.TrainingSessionStartAt == nil) != (sess.TrainingSessionEndAt == nil) {
			return Validationf("start and end must be provided together")
		}
		if sess.Scheduled() && sess.TrainingSessionEndAt.Before(*sess.TrainingSessionStartAt) {
			return Validationf("end must be >= start")
		}

		curTrainers := trainerIDs
		if curTrainers == nil {
			if curTrainers, err = s.ListTrainerIDs(ctx, sessionID); err != nil {
				return Unexpected(err)
			}
		}
		curUnits := unitIDs
		if curUnits == nil {
			if curUnits, err = s.ListMobileUnitIDs(ctx, sessionID); err != nil {
				return Unexpected(err)
			}
		}

		claim := ResourceClaim{
			TrainerIDs:    curTrainers,
			RoomID:        sess.TrainingSessionRoomID,
			MobileUnitIDs: curUnits,
		}
		conflict, err := HasConflict(ctx, s, sess.TrainingSessionStartAt, sess.TrainingSessionEndAt, claim, &sessionID)
		if err != nil {
			return Unexpected(err)
		}
		if conflict {
			return Unavailablef("requested trainer/room/mobile-unit is already booked in that range")
		}

		switch {
		case forced != nil:
			sess.TrainingSessionState = *forced
		case sess.TrainingSessionState.IsHeld():
			// suspended/cancelled/finished se pusieron fuera de este core:
			// la re-derivación no los pisa en silencio.
		default:
			deal, err := s.GetDeal(ctx, sess.TrainingSessionDealID)
			if err != nil {
				return Unexpected(err)
			}
			siteRequiresRoom := true
			if deal != nil {
				siteRequiresRoom = constants.SiteRequiresRoom(deal.DealSiteLabel)
			}
			sess.TrainingSessionState = DeriveState(StateInput{
				SiteRequiresRoom: siteRequiresRoom,
				RoomID:           sess.TrainingSessionRoomID,
				TrainerIDs:       curTrainers,
				MobileUnitIDs:    curUnits,
				StartAt:          sess.TrainingSessionStartAt,
				EndAt:            sess.TrainingSessionEndAt,
			})
		}

		if err := s.SaveSession(ctx, sess); err != nil {
			return Unexpected(err)
		}
		if trainerIDs != nil {
			if err := s.ReplaceTrainerAssignments(ctx, sessionID, trainerIDs); err != nil {
				return Unexpected(err)
			}
		}
		if unitIDs != nil {
			if err := s.ReplaceMobileUnitAssignments(ctx, sessionID, unitIDs); err != nil {
				return Unexpected(err)
			}
		}

		out = sess
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}
	return out, nil
}

// asServiceError deja pasar los *Error propios y envuelve el resto
// (fallos de infraestructura, commit, etc.) como UNEXPECTED.
func asServiceError(err error) error {
	if KindOf(err) != KindUnexpected {
		return err
	}
	if se, ok := err.(*Error); ok {
		return se
	}
	return Unexpected(err)
}
