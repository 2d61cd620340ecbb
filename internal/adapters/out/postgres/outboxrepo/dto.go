package outboxrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type OutboxMessageDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind         string    `gorm:"size:32;not null"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderNumber  string    `gorm:"size:32"`
	Recipient    string    `gorm:"size:32"`
	Body         string    `gorm:"type:text;not null"`
	State        string    `gorm:"size:16;index:idx_outbox_state_created,priority:1;not null"`
	LastError    string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false;index:idx_outbox_state_created,priority:2"`
	DispatchedAt *time.Time
}

func (OutboxMessageDTO) TableName() string {
	return "notification_outbox"
}

func fromDomain(m *notification.Message) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:           m.ID().Bytes(),
		Kind:         m.Kind().String(),
		OrderID:      m.OrderID().Bytes(),
		OrderNumber:  m.OrderNumber(),
		Recipient:    m.Recipient(),
		Body:         m.Body(),
		State:        m.State().String(),
		LastError:    m.LastError(),
		CreatedAt:    m.CreatedAt(),
		DispatchedAt: m.DispatchedAt(),
	}
}

func toDomain(dto OutboxMessageDTO) (*notification.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	kind, err := notification.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	state, err := notification.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	return notification.RestoreMessage(id, kind, orderID, dto.OrderNumber, dto.Recipient, dto.Body,
		state, dto.LastError, dto.CreatedAt, dto.DispatchedAt)
}
