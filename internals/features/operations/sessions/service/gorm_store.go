// file: internals/features/operations/sessions/service/gorm_store.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dm "formaops_backend/internals/features/operations/deals/model"
	rm "formaops_backend/internals/features/operations/resources/model"
	m "formaops_backend/internals/features/operations/sessions/model"
)

/* =========================
   GormStore — puertos sobre *gorm.DB
   ========================= */

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

/* ---------- DealReader ---------- */

func (s *GormStore) GetDeal(ctx context.Context, dealID uuid.UUID) (*dm.DealModel, error) {
	var row dm.DealModel
	err := s.DB.WithContext(ctx).
		Where("deal_id = ?", dealID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormStore) FindProduct(ctx context.Context, dealID uuid.UUID, productRef string) (*dm.DealProductModel, error) {
	productRef = strings.TrimSpace(productRef)

	// primero por id, luego por código
	if id, err := uuid.Parse(productRef); err == nil {
		var row dm.DealProductModel
		err := s.DB.WithContext(ctx).
			Where("deal_product_deal_id = ? AND deal_product_id = ?", dealID, id).
			First(&row).Error
		if err == nil {
			return &row, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var row dm.DealProductModel
	err := s.DB.WithContext(ctx).
		Where("deal_product_deal_id = ? AND deal_product_code = ?", dealID, productRef).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

/* ---------- SessionStore ---------- */

// FindOverlapping: una sola consulta sobre los tres pools, solape
// inclusivo y FOR UPDATE para cerrar la carrera entre dos asignaciones
// concurrentes que pasarían ambas el chequeo antes de commit.
func (s *GormStore) FindOverlapping(ctx context.Context, q OverlapQuery) ([]m.TrainingSessionModel, error) {
	var sb strings.Builder
	args := make([]interface{}, 0, 8)

	sb.WriteString(`
SELECT ts.* FROM training_sessions ts
WHERE ts.training_session_deleted_at IS NULL
  AND ts.training_session_start_at IS NOT NULL
  AND ts.training_session_end_at IS NOT NULL
  AND ts.training_session_start_at <= ?
  AND ts.training_session_end_at >= ?`)
	args = append(args, q.EndAt, q.StartAt)

	if q.ExcludeSessionID != nil {
		sb.WriteString(`
  AND ts.training_session_id <> ?`)
		args = append(args, *q.ExcludeSessionID)
	}

	ors := make([]string, 0, 3)
	if q.Claim.RoomID != nil {
		ors = append(ors, `ts.training_session_room_id = ?`)
		args = append(args, *q.Claim.RoomID)
	}
	if len(q.Claim.TrainerIDs) > 0 {
		ors = append(ors, `EXISTS (
      SELECT 1 FROM training_session_trainers tst
      WHERE tst.trainer_assignment_session_id = ts.training_session_id
        AND tst.trainer_assignment_trainer_id = ANY(?::uuid[])
    )`)
		args = append(args, pq.Array(uuidStrings(q.Claim.TrainerIDs)))
	}
	if len(q.Claim.MobileUnitIDs) > 0 {
		ors = append(ors, `EXISTS (
      SELECT 1 FROM training_session_mobile_units tsu
      WHERE tsu.mobile_unit_assignment_session_id = ts.training_session_id
        AND tsu.mobile_unit_assignment_unit_id = ANY(?::uuid[])
    )`)
		args = append(args, pq.Array(uuidStrings(q.Claim.MobileUnitIDs)))
	}
	if len(ors) == 0 {
		return nil, nil
	}
	sb.WriteString(`
  AND (` + strings.Join(ors, `
   OR `) + `)
FOR UPDATE`)

	var rows []m.TrainingSessionModel
	if err := s.DB.WithContext(ctx).Raw(sb.String(), args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func (s *GormStore) GetSession(ctx context.Context, id uuid.UUID) (*m.TrainingSessionModel, error) {
	var row m.TrainingSessionModel
	err := s.DB.WithContext(ctx).
		Where("training_session_id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *GormStore) CreateSession(ctx context.Context, row *m.TrainingSessionModel) error {
	return s.DB.WithContext(ctx).Create(row).Error
}

func (s *GormStore) SaveSession(ctx context.Context, row *m.TrainingSessionModel) error {
	return s.DB.WithContext(ctx).Save(row).Error
}

func (s *GormStore) CreateTrainerAssignments(ctx context.Context, sessionID uuid.UUID, trainerIDs []uuid.UUID) error {
	if len(trainerIDs) == 0 {
		return nil
	}
	rows := make([]m.TrainerAssignmentModel, 0, len(trainerIDs))
	for _, id := range trainerIDs {
		rows = append(rows, m.TrainerAssignmentModel{
			TrainerAssignmentSessionID: sessionID,
			TrainerAssignmentTrainerID: id,
		})
	}
	return s.DB.WithContext(ctx).Create(&rows).Error
}

func (s *GormStore) CreateMobileUnitAssignments(ctx context.Context, sessionID uuid.UUID, unitIDs []uuid.UUID) error {
	if len(unitIDs) == 0 {
		return nil
	}
	rows := make([]m.MobileUnitAssignmentModel, 0, len(unitIDs))
	for _, id := range unitIDs {
		rows = append(rows, m.MobileUnitAssignmentModel{
			MobileUnitAssignmentSessionID: sessionID,
			MobileUnitAssignmentUnitID:    id,
		})
	}
	return s.DB.WithContext(ctx).Create(&rows).Error
}

func (s *GormStore) ReplaceTrainerAssignments(ctx context.Context, sessionID uuid.UUID, trainerIDs []uuid.UUID) error {
	if err := s.DB.WithContext(ctx).
		Where("trainer_assignment_session_id = ?", sessionID).
		Delete(&m.TrainerAssignmentModel{}).Error; err != nil {
		return err
	}
	return s.CreateTrainerAssignments(ctx, sessionID, trainerIDs)
}

func (s *GormStore) ReplaceMobileUnitAssignments(ctx context.Context, sessionID uuid.UUID, unitIDs []uuid.UUID) error {
	if err := s.DB.WithContext(ctx).
		Where("mobile_unit_assignment_session_id = ?", sessionID).
		Delete(&m.MobileUnitAssignmentModel{}).Error; err != nil {
		return err
	}
	return s.CreateMobileUnitAssignments(ctx, sessionID, unitIDs)
}

func (s *GormStore) ListTrainerIDs(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&m.TrainerAssignmentModel{}).
		Where("trainer_assignment_session_id = ?", sessionID).
		Pluck("trainer_assignment_trainer_id", &ids).Error
	return ids, err
}

func (s *GormStore) ListMobileUnitIDs(ctx context.Context, sessionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&m.MobileUnitAssignmentModel{}).
		Where("mobile_unit_assignment_session_id = ?", sessionID).
		Pluck("mobile_unit_assignment_unit_id", &ids).Error
	return ids, err
}

func (s *GormStore) FindSessionsForProduct(ctx context.Context, productID uuid.UUID) ([]m.TrainingSessionModel, error) {
	var rows []m.TrainingSessionModel
	err := s.DB.WithContext(ctx).
		Where("training_session_deal_product_id = ?", productID).
		Order("training_session_created_at ASC, training_session_id ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) RenameSession(ctx context.Context, id uuid.UUID, name string) error {
	return s.DB.WithContext(ctx).
		Model(&m.TrainingSessionModel{}).
		Where("training_session_id = ?", id).
		Update("training_session_name", name).Error
}

/* =========================
   GormTxManager
   ========================= */

type GormTxManager struct {
	DB *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager { return &GormTxManager{DB: db} }

func (t *GormTxManager) InTx(ctx context.Context, fn func(s Store) error) error {
	return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}

/* =========================
   GormRoomCatalog
   ========================= */

type GormRoomCatalog struct {
	DB *gorm.DB
}

func NewGormRoomCatalog(db *gorm.DB) *GormRoomCatalog { return &GormRoomCatalog{DB: db} }

func (c *GormRoomCatalog) ListRoomIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := c.DB.WithContext(ctx).
		Model(&rm.RoomModel{}).
		Where("room_is_active = TRUE").
		Pluck("room_id", &ids).Error
	return ids, err
}
