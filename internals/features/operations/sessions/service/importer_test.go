package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formaops_backend/internals/configs"
	m "formaops_backend/internals/features/operations/sessions/model"
)

func newImporterFixture(picker RoomPicker, cfg configs.ImporterConfig) (*fakeStore, *Importer) {
	st, alloc := newAllocatorFixture()
	return st, NewImporter(alloc, picker, cfg)
}

func TestImportRows_MixedBatchReportsEveryRow(t *testing.T) {
	ctx := context.Background()
	st, imp := newImporterFixture(&fixedPicker{}, configs.ImporterConfig{})
	deal := st.addDeal("in-company", nil)
	st.addProduct(deal.DealID, "Soldadura", "SOL-01")
	trainer := uuid.New()
	unit := uuid.New()

	rows := []ImportRow{
		{
			DealID:       deal.DealID.String(),
			ProductRef:   "SOL-01",
			StartAt:      "2024-03-01 09:00",
			EndAt:        "2024-03-01 14:00",
			TrainerID:    trainer.String(),
			MobileUnitID: unit.String(),
		},
		// deal inexistente: la fila falla sin arrastrar a las demás
		{
			DealID:     uuid.New().String(),
			ProductRef: "SOL-01",
		},
		{
			DealID:     deal.DealID.String(),
			ProductRef: "SOL-01",
		},
	}

	report := imp.ImportRows(ctx, rows)

	assert.Equal(t, ImportSummary{Total: 3, Successes: 2, Errors: 1}, report.Summary)
	require.Len(t, report.Results, 3)

	// cada resultado conserva el índice original
	assert.Equal(t, 0, report.Results[0].Index)
	assert.Equal(t, "success", report.Results[0].Status)
	assert.NotNil(t, report.Results[0].SessionID)

	assert.Equal(t, 1, report.Results[1].Index)
	assert.Equal(t, "error", report.Results[1].Status)
	assert.Nil(t, report.Results[1].SessionID)
	assert.Contains(t, report.Results[1].Message, "not found")

	assert.Equal(t, 2, report.Results[2].Index)
	assert.Equal(t, "success", report.Results[2].Status)
}

func TestImportRows_SequentialFirstWins(t *testing.T) {
	ctx := context.Background()
	st, imp := newImporterFixture(&fixedPicker{}, configs.ImporterConfig{})
	deal := st.addDeal("in-company", nil)
	st.addProduct(deal.DealID, "Soldadura", "SOL-01")
	trainer := uuid.New()

	same := ImportRow{
		DealID:     deal.DealID.String(),
		ProductRef: "SOL-01",
		StartAt:    "2024-03-01 09:00",
		EndAt:      "2024-03-01 14:00",
		TrainerID:  trainer.String(),
	}

	// mismo formador, misma franja: la primera fila reserva, la segunda choca
	report := imp.ImportRows(ctx, []ImportRow{same, same})

	assert.Equal(t, ImportSummary{Total: 2, Successes: 1, Errors: 1}, report.Summary)
	assert.Equal(t, "success", report.Results[0].Status)
	assert.Equal(t, "error", report.Results[1].Status)
	assert.Contains(t, report.Results[1].Message, "already booked")
}

func TestImportRows_ValidationNeverReachesAllocator(t *testing.T) {
	ctx := context.Background()
	picker := &fixedPicker{}
	st, imp := newImporterFixture(picker, configs.ImporterConfig{})

	rows := []ImportRow{
		{DealID: "", ProductRef: "SOL-01"},
		{DealID: uuid.New().String(), ProductRef: ""},
		{DealID: uuid.New().String(), ProductRef: "X", StartAt: "2024-03-01 09:00"},
		{DealID: uuid.New().String(), ProductRef: "X", StartAt: "marzo", EndAt: "2024-03-01 14:00"},
		{DealID: uuid.New().String(), ProductRef: "X", State: "archived"},
	}

	report := imp.ImportRows(ctx, rows)
	assert.Equal(t, len(rows), report.Summary.Errors)
	// ni store ni picker ven filas inválidas
	assert.Zero(t, st.totalCalls())
	assert.Zero(t, picker.picks)
}

func TestImportRows_DefaultMobileUnitFromConfig(t *testing.T) {
	ctx := context.Background()
	defaultUnit := uuid.New()
	st, imp := newImporterFixture(&fixedPicker{}, configs.ImporterConfig{DefaultMobileUnitID: &defaultUnit})
	deal := st.addDeal("in-company", nil)
	st.addProduct(deal.DealID, "Soldadura", "SOL-01")

	explicit := uuid.New()
	report := imp.ImportRows(ctx, []ImportRow{
		{DealID: deal.DealID.String(), ProductRef: "SOL-01"},
		{DealID: deal.DealID.String(), ProductRef: "SOL-01", MobileUnitID: explicit.String()},
	})
	require.Equal(t, 2, report.Summary.Successes)

	assert.Equal(t, []uuid.UUID{defaultUnit}, st.unitAssign[*report.Results[0].SessionID])
	// la unidad explícita de la fila gana al default
	assert.Equal(t, []uuid.UUID{explicit}, st.unitAssign[*report.Results[1].SessionID])
}

func TestImportRows_RoomPicker(t *testing.T) {
	ctx := context.Background()
	deal := func(st *fakeStore) uuid.UUID {
		d := st.addDeal("presencial", nil)
		st.addProduct(d.DealID, "Soldadura", "SOL-01")
		return d.DealID
	}

	t.Run("picked room lands on the session", func(t *testing.T) {
		room := uuid.New()
		picker := &fixedPicker{roomID: &room}
		st, imp := newImporterFixture(picker, configs.ImporterConfig{})
		dealID := deal(st)

		report := imp.ImportRows(ctx, []ImportRow{{DealID: dealID.String(), ProductRef: "SOL-01"}})
		require.Equal(t, 1, report.Summary.Successes)
		assert.Equal(t, 1, picker.picks)

		sess, err := st.GetSession(ctx, *report.Results[0].SessionID)
		require.NoError(t, err)
		require.NotNil(t, sess.TrainingSessionRoomID)
		assert.Equal(t, room, *sess.TrainingSessionRoomID)
	})

	t.Run("picker failure degrades to no room", func(t *testing.T) {
		picker := &fixedPicker{err: errors.New("pool down")}
		st, imp := newImporterFixture(picker, configs.ImporterConfig{})
		dealID := deal(st)

		report := imp.ImportRows(ctx, []ImportRow{{DealID: dealID.String(), ProductRef: "SOL-01"}})
		require.Equal(t, 1, report.Summary.Successes)

		sess, err := st.GetSession(ctx, *report.Results[0].SessionID)
		require.NoError(t, err)
		assert.Nil(t, sess.TrainingSessionRoomID)
	})
}

func TestImportRows_ForcedStateFromRow(t *testing.T) {
	ctx := context.Background()
	st, imp := newImporterFixture(&fixedPicker{}, configs.ImporterConfig{})
	deal := st.addDeal("in-company", nil)
	st.addProduct(deal.DealID, "Soldadura", "SOL-01")

	report := imp.ImportRows(ctx, []ImportRow{
		{DealID: deal.DealID.String(), ProductRef: "SOL-01", State: "Cancelled"},
	})
	require.Equal(t, 1, report.Summary.Successes)

	sess, err := st.GetSession(ctx, *report.Results[0].SessionID)
	require.NoError(t, err)
	assert.Equal(t, m.SessionCancelled, sess.TrainingSessionState)
}

func TestImportRows_UnknownDealStillReportsRow(t *testing.T) {
	ctx := context.Background()
	_, imp := newImporterFixture(&fixedPicker{}, configs.ImporterConfig{})

	ghost := uuid.New()
	report := imp.ImportRows(ctx, []ImportRow{{DealID: ghost.String(), ProductRef: "SOL-01"}})
	assert.Equal(t, ImportSummary{Total: 1, Successes: 0, Errors: 1}, report.Summary)
	assert.Contains(t, report.Results[0].Message, "not found")
	assert.Equal(t, ghost.String(), report.Results[0].DealID)
}

func TestImportRows_EmptyBatch(t *testing.T) {
	ctx := context.Background()
	_, imp := newImporterFixture(&fixedPicker{}, configs.ImporterConfig{})
	report := imp.ImportRows(ctx, nil)
	assert.Equal(t, ImportSummary{}, report.Summary)
	assert.Empty(t, report.Results)
}
