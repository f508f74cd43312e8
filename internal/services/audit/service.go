package audit

import (
	"encoding/json"
	"time"

	"biztime-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service appends an audit row for every successful mutation. Failures are
// logged and swallowed: the trail must never change endpoint behavior.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

func (s *Service) Record(entity, entityKey, action string, details interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		s.logger.Warn("audit detail marshal failed",
			zap.String("entity", entity),
			zap.String("action", action),
			zap.Error(err),
		)
		payload = nil
	}

	entry := &models.AuditLog{
		ID:        uuid.New(),
		Entity:    entity,
		EntityKey: entityKey,
		Action:    action,
		Details:   datatypes.JSON(payload),
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(entry).Error; err != nil {
		s.logger.Warn("audit write failed",
			zap.String("entity", entity),
			zap.String("entity_key", entityKey),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// Recent returns the newest audit rows, optionally filtered by entity.
func (s *Service) Recent(entity string, limit int) ([]models.AuditLog, error) {
	query := s.db.Model(&models.AuditLog{}).Order("created_at DESC").Limit(limit)
	if entity != "" {
		query = query.Where("entity = ?", entity)
	}
	var logs []models.AuditLog
	err := query.Find(&logs).Error
	return logs, err
}
