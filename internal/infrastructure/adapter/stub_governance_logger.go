package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

// InMemoryGovernanceLogger is a development/test governance logger that keeps
// accepted records in memory. It implements port.GovernanceLogger. Records
// are append-only; nothing here mutates or deletes an accepted entry.
type InMemoryGovernanceLogger struct {
	mu      sync.Mutex
	records []model.GovernanceLogRecord
}

// NewInMemoryGovernanceLogger creates an empty in-memory logger.
func NewInMemoryGovernanceLogger() *InMemoryGovernanceLogger {
	return &InMemoryGovernanceLogger{}
}

// Log accepts one governance event, assigns a log id and hashes the payload
// for tamper evidence.
func (l *InMemoryGovernanceLogger) Log(_ context.Context, eventType string, payload map[string]any) (model.GovernanceLogRecord, error) {
	if eventType == "" {
		return model.GovernanceLogRecord{}, fmt.Errorf("event type is required")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return model.GovernanceLogRecord{}, fmt.Errorf("marshal governance payload: %w", err)
	}
	hash := sha256.Sum256(raw)

	record := model.GovernanceLogRecord{
		EventType:   eventType,
		LogID:       uuid.New().String(),
		PayloadHash: fmt.Sprintf("%x", hash),
	}

	l.mu.Lock()
	l.records = append(l.records, record)
	l.mu.Unlock()

	return record, nil
}

// Records returns a copy of all accepted records in acceptance order.
func (l *InMemoryGovernanceLogger) Records() []model.GovernanceLogRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.GovernanceLogRecord, len(l.records))
	copy(out, l.records)
	return out
}
