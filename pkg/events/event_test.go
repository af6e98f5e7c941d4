package events

import (
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := "APP-123"

	before := time.Now().UTC()
	event := NewBaseEvent("risk.assessment.completed", aggregateID, "Assessment")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "risk.assessment.completed" {
		t.Errorf("expected event type %q, got %q", "risk.assessment.completed", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "Assessment" {
		t.Errorf("expected aggregate type %q, got %q", "Assessment", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestEventIDsAreUnique(t *testing.T) {
	a := NewBaseEvent("risk.assessment.completed", "APP-1", "Assessment")
	b := NewBaseEvent("risk.assessment.completed", "APP-1", "Assessment")

	if a.EventID() == b.EventID() {
		t.Errorf("expected distinct event IDs, both were %q", a.EventID())
	}
}
