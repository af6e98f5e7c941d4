package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	pgshared "github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/pkg/postgres"
)

// GovernanceLogRepo is a PostgreSQL-backed governance logger. It implements
// port.GovernanceLogger. The table is append-only: rows are never updated or
// deleted by this service.
type GovernanceLogRepo struct {
	db pgshared.Querier
}

// NewGovernanceLogRepo creates a new governance log backed by PostgreSQL.
func NewGovernanceLogRepo(db pgshared.Querier) *GovernanceLogRepo {
	return &GovernanceLogRepo{db: db}
}

// Log appends one governance record, assigning the log id and hashing the
// payload for tamper evidence.
func (r *GovernanceLogRepo) Log(ctx context.Context, eventType string, payload map[string]any) (model.GovernanceLogRecord, error) {
	if eventType == "" {
		return model.GovernanceLogRecord{}, fmt.Errorf("event type is required")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return model.GovernanceLogRecord{}, fmt.Errorf("marshal governance payload: %w", err)
	}
	hash := fmt.Sprintf("%x", sha256.Sum256(raw))

	record := model.GovernanceLogRecord{
		EventType:   eventType,
		LogID:       uuid.New().String(),
		PayloadHash: hash,
	}

	query := `
		INSERT INTO governance_log (log_id, event_type, payload, payload_hash, logged_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, record.LogID, eventType, raw, hash, time.Now().UTC()); err != nil {
		return model.GovernanceLogRecord{}, fmt.Errorf("append governance record: %w", err)
	}

	return record, nil
}

// CountByEventType returns the number of accepted records per event type,
// used by operational audits.
func (r *GovernanceLogRepo) CountByEventType(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT event_type, COUNT(*) FROM governance_log GROUP BY event_type`)
	if err != nil {
		return nil, fmt.Errorf("query governance counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var eventType string
		var count int
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, fmt.Errorf("scan governance count: %w", err)
		}
		counts[eventType] = count
	}
	return counts, rows.Err()
}
