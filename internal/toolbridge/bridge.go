package toolbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/port"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Tool bridge: name + JSON-payload dispatch over the collaborator ports
// ---------------------------------------------------------------------------

// HandlerFunc executes one named tool call against a JSON payload.
type HandlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Bridge dispatches named tool invocations to the collaborator ports. It
// decouples callers that speak "tool name + JSON payload" (agent frameworks,
// operational consoles) from the typed port interfaces.
type Bridge struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// NewBridge creates an empty bridge.
func NewBridge() *Bridge {
	return &Bridge{handlers: make(map[string]HandlerFunc)}
}

// Register binds a handler to a tool name, replacing any previous binding.
func (b *Bridge) Register(name string, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = handler
}

// Has reports whether a tool name is registered.
func (b *Bridge) Has(name string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.handlers[name]
	return ok
}

// Names returns the registered tool names, sorted.
func (b *Bridge) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named tool and returns its JSON-encoded result.
func (b *Bridge) Invoke(ctx context.Context, name string, payload json.RawMessage) (json.RawMessage, error) {
	b.mu.RLock()
	handler, ok := b.handlers[name]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}

	result, err := handler(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", name, err)
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("tool %s: encode result: %w", name, err)
	}
	return encoded, nil
}

// Ports bundles the collaborator ports the standard toolset is built from.
// Optional ports may be nil; their tools are simply not registered.
type Ports struct {
	Retriever port.PolicyRetriever
	Lookup    port.PolicyLookup
	Scorer    port.RiskScorer
	Resolver  port.InterestBandResolver
	Requester port.DocumentRequester
	Composer  port.PacketComposer
	GovLogger port.GovernanceLogger
}

// NewStandardBridge builds a bridge exposing the collaborator ports under
// their conventional tool names.
func NewStandardBridge(ports Ports) *Bridge {
	b := NewBridge()

	if ports.Retriever != nil {
		b.Register("policy.search", func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req struct {
				Query string `json:"query"`
				TopK  int    `json:"top_k"`
			}
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
			if req.TopK <= 0 {
				req.TopK = 5
			}
			return ports.Retriever.Retrieve(ctx, req.Query, req.TopK)
		})
	}

	if ports.Lookup != nil {
		b.Register("policy.lookup", func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req struct {
				IDs []string `json:"ids"`
			}
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
			return ports.Lookup.GetByID(ctx, req.IDs)
		})
	}

	if ports.Scorer != nil {
		b.Register("risk.score", func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req model.ScoringPayload
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
			return ports.Scorer.Score(ctx, req)
		})
	}

	if ports.Resolver != nil {
		b.Register("interest.resolve", func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req struct {
				Chunks []model.PolicyChunk `json:"chunks"`
				Tier   string              `json:"tier"`
			}
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
			tier, err := valueobject.NewRiskTier(req.Tier)
			if err != nil {
				return nil, err
			}
			return ports.Resolver.Resolve(ctx, req.Chunks, tier)
		})
	}

	if ports.Requester != nil {
		b.Register("documents.request", func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req struct {
				Documents []string `json:"documents"`
			}
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
			return ports.Requester.Request(ctx, req.Documents)
		})
	}

	if ports.Composer != nil {
		b.Register("packet.compose", func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req model.PacketPayload
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
			return ports.Composer.Compose(ctx, req)
		})
	}

	if ports.GovLogger != nil {
		b.Register("governance.log", func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req struct {
				EventType string         `json:"event_type"`
				Payload   map[string]any `json:"payload"`
			}
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("decode payload: %w", err)
			}
			return ports.GovLogger.Log(ctx, req.EventType, req.Payload)
		})
	}

	return b
}
