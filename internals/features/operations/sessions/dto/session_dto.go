// file: internals/features/operations/sessions/dto/session_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "formaops_backend/internals/features/operations/sessions/model"
	svc "formaops_backend/internals/features/operations/sessions/service"
)

/* =======================================================
   Util & parsing
   ======================================================= */

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimestampPtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ss); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid timestamp %q", ss)
}

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

func uuidSliceFromStrings(in []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid uuid %q: %w", s, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* =======================================================
   Request DTOs
   - Fechas como string para simplificar desde el FE
   ======================================================= */

type CreateTrainingSessionRequest struct {
	// Required
	TrainingSessionDealID      string `json:"training_session_deal_id"      validate:"required,uuid4"`
	TrainingSessionDealProduct string `json:"training_session_deal_product" validate:"required"` // id o código

	// Optional
	TrainingSessionTrainerIDs    []string `json:"training_session_trainer_ids,omitempty"     validate:"omitempty,dive,uuid4"`
	TrainingSessionMobileUnitIDs []string `json:"training_session_mobile_unit_ids,omitempty" validate:"omitempty,dive,uuid4"`
	TrainingSessionRoomID        *string  `json:"training_session_room_id,omitempty"         validate:"omitempty,uuid4"`
	TrainingSessionStartAt       *string  `json:"training_session_start_at,omitempty"`
	TrainingSessionEndAt         *string  `json:"training_session_end_at,omitempty"`
	TrainingSessionAddress       *string  `json:"training_session_address,omitempty"`
	TrainingSessionState         *string  `json:"training_session_state,omitempty" validate:"omitempty,oneof=draft planned suspended cancelled finished"`
}

func (r *CreateTrainingSessionRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ToAllocateInput convierte el request en la entrada del allocator.
func (r *CreateTrainingSessionRequest) ToAllocateInput() (svc.AllocateInput, error) {
	var in svc.AllocateInput

	dealID, err := uuid.Parse(strings.TrimSpace(r.TrainingSessionDealID))
	if err != nil {
		return in, fmt.Errorf("training_session_deal_id: %w", err)
	}

	trainerIDs, err := uuidSliceFromStrings(r.TrainingSessionTrainerIDs)
	if err != nil {
		return in, fmt.Errorf("training_session_trainer_ids: %w", err)
	}
	unitIDs, err := uuidSliceFromStrings(r.TrainingSessionMobileUnitIDs)
	if err != nil {
		return in, fmt.Errorf("training_session_mobile_unit_ids: %w", err)
	}
	roomID, err := uuidPtrFromString(r.TrainingSessionRoomID)
	if err != nil {
		return in, fmt.Errorf("training_session_room_id: %w", err)
	}

	startAt, err := parseTimestampPtr(r.TrainingSessionStartAt)
	if err != nil {
		return in, fmt.Errorf("training_session_start_at: %w", err)
	}
	endAt, err := parseTimestampPtr(r.TrainingSessionEndAt)
	if err != nil {
		return in, fmt.Errorf("training_session_end_at: %w", err)
	}

	state := svc.Derived()
	if r.TrainingSessionState != nil {
		st := m.SessionState(strings.ToLower(strings.TrimSpace(*r.TrainingSessionState)))
		if !st.Valid() {
			return in, fmt.Errorf("training_session_state: invalid value %q", *r.TrainingSessionState)
		}
		state = svc.Forced(st)
	}

	in = svc.AllocateInput{
		DealID:        dealID,
		ProductRef:    strings.TrimSpace(r.TrainingSessionDealProduct),
		TrainerIDs:    trainerIDs,
		MobileUnitIDs: unitIDs,
		RoomID:        roomID,
		StartAt:       startAt,
		EndAt:         endAt,
		Address:       strPtrOrNil(r.TrainingSessionAddress),
		State:         state,
	}
	return in, nil
}

type PatchTrainingSessionRequest struct {
	// Todos opcionales — solo se aplican los no-nil
	TrainingSessionTrainerIDs    []string `json:"training_session_trainer_ids,omitempty"     validate:"omitempty,dive,uuid4"`
	TrainingSessionMobileUnitIDs []string `json:"training_session_mobile_unit_ids,omitempty" validate:"omitempty,dive,uuid4"`
	TrainingSessionRoomID        *string  `json:"training_session_room_id,omitempty"         validate:"omitempty,uuid4"`
	TrainingSessionStartAt       *string  `json:"training_session_start_at,omitempty"`
	TrainingSessionEndAt         *string  `json:"training_session_end_at,omitempty"`
	TrainingSessionAddress       *string  `json:"training_session_address,omitempty"`
	TrainingSessionState         *string  `json:"training_session_state,omitempty" validate:"omitempty,oneof=draft planned suspended cancelled finished"`
}

func (r *PatchTrainingSessionRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ApplyPatch aplica los campos no-nil sobre el modelo cargado.
// El estado NO se aplica aquí: viaja como forzado al servicio.
func (p *PatchTrainingSessionRequest) ApplyPatch(dst *m.TrainingSessionModel) error {
	if p.TrainingSessionRoomID != nil {
		idp, err := uuidPtrFromString(p.TrainingSessionRoomID)
		if err != nil {
			return fmt.Errorf("training_session_room_id: %w", err)
		}
		dst.TrainingSessionRoomID = idp
	}

	if p.TrainingSessionStartAt != nil {
		t, err := parseTimestampPtr(p.TrainingSessionStartAt)
		if err != nil {
			return fmt.Errorf("training_session_start_at: %w", err)
		}
		dst.TrainingSessionStartAt = t
	}
	if p.TrainingSessionEndAt != nil {
		t, err := parseTimestampPtr(p.TrainingSessionEndAt)
		if err != nil {
			return fmt.Errorf("training_session_end_at: %w", err)
		}
		dst.TrainingSessionEndAt = t
	}
	if p.TrainingSessionStartAt != nil || p.TrainingSessionEndAt != nil {
		if (dst.TrainingSessionStartAt == nil) != (dst.TrainingSessionEndAt == nil) {
			return errors.New("training_session start/end must be provided together")
		}
		if dst.Scheduled() && dst.TrainingSessionEndAt.Before(*dst.TrainingSessionStartAt) {
			return errors.New("training_session_end_at must be >= training_session_start_at")
		}
	}

	if p.TrainingSessionAddress != nil {
		dst.TrainingSessionAddress = strPtrOrNil(p.TrainingSessionAddress)
	}

	return nil
}

// ForcedState devuelve el estado forzado del patch, si lo hay.
func (p *PatchTrainingSessionRequest) ForcedState() *m.SessionState {
	if p.TrainingSessionState == nil {
		return nil
	}
	st := m.SessionState(strings.ToLower(strings.TrimSpace(*p.TrainingSessionState)))
	if !st.Valid() {
		return nil
	}
	return &st
}

// TrainerIDs devuelve nil si el patch no toca los formadores.
func (p *PatchTrainingSessionRequest) TrainerIDs() ([]uuid.UUID, error) {
	if p.TrainingSessionTrainerIDs == nil {
		return nil, nil
	}
	return uuidSliceFromStrings(p.TrainingSessionTrainerIDs)
}

func (p *PatchTrainingSessionRequest) MobileUnitIDs() ([]uuid.UUID, error) {
	if p.TrainingSessionMobileUnitIDs == nil {
		return nil, nil
	}
	return uuidSliceFromStrings(p.TrainingSessionMobileUnitIDs)
}

/* =======================================================
   Response DTO
   ======================================================= */

type TrainingSessionResponse struct {
	TrainingSessionID            uuid.UUID      `json:"training_session_id"`
	TrainingSessionDealID        uuid.UUID      `json:"training_session_deal_id"`
	TrainingSessionDealProductID uuid.UUID      `json:"training_session_deal_product_id"`
	TrainingSessionName          string         `json:"training_session_name"`
	TrainingSessionAddress       *string        `json:"training_session_address,omitempty"`
	TrainingSessionState         m.SessionState `json:"training_session_state"`
	TrainingSessionStartAt       *time.Time     `json:"training_session_start_at,omitempty"`
	TrainingSessionEndAt         *time.Time     `json:"training_session_end_at,omitempty"`
	TrainingSessionRoomID        *uuid.UUID     `json:"training_session_room_id,omitempty"`
	TrainingSessionCreatedAt     time.Time      `json:"training_session_created_at"`
	TrainingSessionUpdatedAt     time.Time      `json:"training_session_updated_at"`
}

func NewTrainingSessionResponse(src *m.TrainingSessionModel) TrainingSessionResponse {
	return TrainingSessionResponse{
		TrainingSessionID:            src.TrainingSessionID,
		TrainingSessionDealID:        src.TrainingSessionDealID,
		TrainingSessionDealProductID: src.TrainingSessionDealProductID,
		TrainingSessionName:          src.TrainingSessionName,
		TrainingSessionAddress:       src.TrainingSessionAddress,
		TrainingSessionState:         src.TrainingSessionState,
		TrainingSessionStartAt:       src.TrainingSessionStartAt,
		TrainingSessionEndAt:         src.TrainingSessionEndAt,
		TrainingSessionRoomID:        src.TrainingSessionRoomID,
		TrainingSessionCreatedAt:     src.TrainingSessionCreatedAt,
		TrainingSessionUpdatedAt:     src.TrainingSessionUpdatedAt,
	}
}
