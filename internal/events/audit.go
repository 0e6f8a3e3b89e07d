package events

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// AuditSink grava cada evento em audit_logs.
type AuditSink struct {
	db *gorm.DB
}

func NewAuditSink(db *gorm.DB) *AuditSink {
	return &AuditSink{db: db}
}

func (s *AuditSink) Handle(ctx context.Context, ev Event) error {
	return s.db.WithContext(ctx).Create(AuditRecord(ev)).Error
}

func AuditRecord(ev Event) *models.AuditLog {
	var metaJSON string
	if b, err := json.Marshal(map[string]string{
		"client_email": ev.ClientEmail,
		"date":         ev.SlotDate,
		"time":         ev.SlotTime,
	}); err == nil {
		metaJSON = string(b)
	}

	id := ev.BookingID
	return &models.AuditLog{
		ProviderID: ev.ProviderID,
		Action:     string(ev.Type),
		Entity:     "booking",
		EntityID:   &id,
		Metadata:   metaJSON,
		CreatedAt:  ev.OccurredAt,
	}
}

var _ Sink = (*AuditSink)(nil)
