package audit

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/axanet-clients/internal/models"
)

// Logger grava eventos na tabela audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	row := models.AuditLog{
		EventID:   ev.ID,
		Actor:     ev.Actor,
		RequestID: ev.RequestID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityKey: ev.EntityKey,
		Metadata:  metadataJSON(ev.Metadata),
		CreatedAt: ev.At,
	}

	return l.db.Create(&row).Error
}

// LogSink escreve no log padrão quando não há banco configurado.
type LogSink struct {
	logger *log.Logger
}

func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Log(ev Event) error {
	s.logger.Printf(
		"audit id=%s actor=%s request=%s action=%s entity=%s key=%s meta=%s",
		ev.ID, ev.Actor, ev.RequestID, ev.Action, ev.Entity, ev.EntityKey, metadataJSON(ev.Metadata),
	)
	return nil
}

func metadataJSON(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}
