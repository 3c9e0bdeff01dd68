// Package outboxrepo keeps published events in the database until the relay
// job has delivered them to the broker.
package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OutboxDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Topic     string     `gorm:"size:100;not null"`
	Key       string     `gorm:"size:100"`
	Payload   []byte     `gorm:"type:jsonb;not null"`
	CreatedAt time.Time  `gorm:"autoCreateTime:false;index"`
	SentAt    *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

// GormOutboxRepository implements ports.EventPublisher and ports.Outbox.
type GormOutboxRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db, now: time.Now}
}

// Publish stores the JSON encoding of payload for later delivery.
func (r *GormOutboxRepository) Publish(ctx context.Context, topic, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}

	dto := OutboxDTO{
		ID:        uuid.New(),
		Topic:     topic,
		Key:       key,
		Payload:   body,
		CreatedAt: r.now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, ports.OutboxMessage{
			ID:        dto.ID,
			Topic:     dto.Topic,
			Key:       dto.Key,
			Payload:   dto.Payload,
			CreatedAt: dto.CreatedAt,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&OutboxDTO{}).
		Where("id = ? AND sent_at IS NULL", id).
		Update("sent_at", r.now().UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}
	return nil
}
