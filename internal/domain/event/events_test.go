package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/event"
)

func TestNewAssessmentCompleted(t *testing.T) {
	evt := event.NewAssessmentCompleted(
		"APP-123", "HIGH", 0.62,
		[]string{"HIGH_DTI"},
		[]string{"policy-tiering-001"},
		[]string{"log-001"},
	)

	assert.Equal(t, "risk.assessment.completed", evt.EventType())
	assert.Equal(t, "APP-123", evt.AggregateID())
	assert.Equal(t, "Assessment", evt.AggregateType())
	assert.NotEmpty(t, evt.EventID())
	assert.False(t, evt.OccurredAt().IsZero())
	assert.Equal(t, "HIGH", evt.RiskTier)
	assert.Equal(t, []string{"HIGH_DTI"}, evt.ReasonCodes)
}

func TestNewDocumentsRequested(t *testing.T) {
	evt := event.NewDocumentsRequested("APP-123", "req-001", []string{"income_verification"})

	assert.Equal(t, "risk.assessment.documents_requested", evt.EventType())
	assert.Equal(t, "APP-123", evt.AggregateID())
	assert.Equal(t, "req-001", evt.RequestID)
	assert.Equal(t, []string{"income_verification"}, evt.Documents)
}
