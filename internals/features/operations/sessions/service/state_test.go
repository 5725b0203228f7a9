package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "formaops_backend/internals/features/operations/sessions/model"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestDeriveState(t *testing.T) {
	trainer := uuid.New()
	unit := uuid.New()
	room := uuid.New()
	start := timePtr(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	end := timePtr(time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		in   StateInput
		want m.SessionState
	}{
		{
			name: "room required and missing wins over everything",
			in: StateInput{
				SiteRequiresRoom: true,
				RoomID:           nil,
				TrainerIDs:       []uuid.UUID{trainer},
				MobileUnitIDs:    []uuid.UUID{unit},
				StartAt:          start,
				EndAt:            end,
			},
			want: m.SessionDraft,
		},
		{
			name: "in-company site exempts the room",
			in: StateInput{
				SiteRequiresRoom: false,
				RoomID:           nil,
				TrainerIDs:       []uuid.UUID{trainer},
				MobileUnitIDs:    []uuid.UUID{unit},
				StartAt:          start,
				EndAt:            end,
			},
			want: m.SessionPlanned,
		},
		{
			name: "no trainer",
			in: StateInput{
				SiteRequiresRoom: true,
				RoomID:           &room,
				MobileUnitIDs:    []uuid.UUID{unit},
				StartAt:          start,
				EndAt:            end,
			},
			want: m.SessionDraft,
		},
		{
			name: "no mobile unit",
			in: StateInput{
				SiteRequiresRoom: true,
				RoomID:           &room,
				TrainerIDs:       []uuid.UUID{trainer},
				StartAt:          start,
				EndAt:            end,
			},
			want: m.SessionDraft,
		},
		{
			name: "all resources but no dates",
			in: StateInput{
				SiteRequiresRoom: true,
				RoomID:           &room,
				TrainerIDs:       []uuid.UUID{trainer},
				MobileUnitIDs:    []uuid.UUID{unit},
			},
			want: m.SessionDraft,
		},
		{
			name: "all resources but only start",
			in: StateInput{
				SiteRequiresRoom: true,
				RoomID:           &room,
				TrainerIDs:       []uuid.UUID{trainer},
				MobileUnitIDs:    []uuid.UUID{unit},
				StartAt:          start,
			},
			want: m.SessionDraft,
		},
		{
			name: "fully bound and scheduled",
			in: StateInput{
				SiteRequiresRoom: true,
				RoomID:           &room,
				TrainerIDs:       []uuid.UUID{trainer},
				MobileUnitIDs:    []uuid.UUID{unit},
				StartAt:          start,
				EndAt:            end,
			},
			want: m.SessionPlanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveState(tt.in))
		})
	}
}

// La derivación jamás produce estados retenidos.
func TestDeriveState_NeverHeld(t *testing.T) {
	trainer := uuid.New()
	unit := uuid.New()
	room := uuid.New()
	start := timePtr(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	end := timePtr(time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC))

	// barrido de combinaciones
	for _, siteRequiresRoom := range []bool{true, false} {
		for _, r := range []*uuid.UUID{nil, &room} {
			for _, trainers := range [][]uuid.UUID{nil, {trainer}} {
				for _, units := range [][]uuid.UUID{nil, {unit}} {
					for _, s := range []*time.Time{nil, start} {
						for _, e := range []*time.Time{nil, end} {
							got := DeriveState(StateInput{
								SiteRequiresRoom: siteRequiresRoom,
								RoomID:           r,
								TrainerIDs:       trainers,
								MobileUnitIDs:    units,
								StartAt:          s,
								EndAt:            e,
							})
							assert.False(t, got.IsHeld(), "derived %s", got)
							assert.Contains(t, []m.SessionState{m.SessionDraft, m.SessionPlanned}, got)
						}
					}
				}
			}
		}
	}
}

func TestStateDirective(t *testing.T) {
	in := StateInput{} // derivaría draft

	t.Run("derived", func(t *testing.T) {
		d := Derived()
		_, forced := d.IsForced()
		assert.False(t, forced)
		assert.Equal(t, m.SessionDraft, d.Resolve(in))
	})

	t.Run("forced passes verbatim, even held states", func(t *testing.T) {
		d := Forced(m.SessionCancelled)
		st, forced := d.IsForced()
		assert.True(t, forced)
		assert.Equal(t, m.SessionCancelled, st)
		assert.Equal(t, m.SessionCancelled, d.Resolve(in))
	})
}
