package adapter

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Policy Retrieval Adapter
// ---------------------------------------------------------------------------

// PolicyClient defines the interface for querying the policy knowledge store.
// This enables testing with mock implementations.
type PolicyClient interface {
	// Search runs a relevance query and returns the top matching chunks.
	Search(ctx context.Context, query string, topK int) ([]model.PolicyChunk, error)
	// FetchByID resolves policy chunks by their identifiers.
	FetchByID(ctx context.Context, ids []string) (map[string]model.PolicyChunk, error)
}

// PolicyAdapter fronts the institutional policy knowledge store. It implements
// port.PolicyRetriever and port.PolicyLookup and is designed to be backed by a
// real retrieval service; without a client it serves a small built-in corpus,
// suitable for development and testing.
type PolicyAdapter struct {
	config Config
	client PolicyClient // nil = use the built-in corpus
}

// NewPolicyAdapter creates a new adapter with the given configuration. If
// client is nil, the built-in corpus is used.
func NewPolicyAdapter(config Config, client PolicyClient) *PolicyAdapter {
	return &PolicyAdapter{config: config, client: client}
}

// Retrieve returns the topK most relevant policy chunks for the query.
// It implements port.PolicyRetriever.
func (a *PolicyAdapter) Retrieve(ctx context.Context, query string, topK int) ([]model.PolicyChunk, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive, got %d", topK)
	}

	if a.client != nil {
		var chunks []model.PolicyChunk
		err := a.config.withRetry(ctx, func() error {
			var opErr error
			chunks, opErr = a.client.Search(ctx, query, topK)
			return opErr
		})
		if err != nil {
			return nil, fmt.Errorf("policy search failed: %w", err)
		}
		return chunks, nil
	}

	return searchCorpus(query, topK), nil
}

// GetByID resolves chunks by id. Missing ids are absent from the result, never
// substituted. It implements port.PolicyLookup.
func (a *PolicyAdapter) GetByID(ctx context.Context, ids []string) (map[string]model.PolicyChunk, error) {
	if a.client != nil {
		var resolved map[string]model.PolicyChunk
		err := a.config.withRetry(ctx, func() error {
			var opErr error
			resolved, opErr = a.client.FetchByID(ctx, ids)
			return opErr
		})
		if err != nil {
			return nil, fmt.Errorf("policy lookup failed: %w", err)
		}
		return resolved, nil
	}

	resolved := make(map[string]model.PolicyChunk)
	for _, chunk := range builtinCorpus() {
		for _, id := range ids {
			if chunk.ChunkID == id {
				resolved[id] = chunk
			}
		}
	}
	return resolved, nil
}

// searchCorpus ranks the built-in corpus by naive term overlap with the
// query. Deterministic: equal scores keep corpus order.
func searchCorpus(query string, topK int) []model.PolicyChunk {
	terms := strings.Fields(strings.ToLower(query))
	corpus := builtinCorpus()

	type scored struct {
		chunk model.PolicyChunk
		score int
		index int
	}

	ranked := make([]scored, 0, len(corpus))
	for i, chunk := range corpus {
		haystack := strings.ToLower(chunk.Title + " " + chunk.Section + " " + chunk.Text)
		score := 0
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{chunk: chunk, score: score, index: i})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].index < ranked[j].index
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	chunks := make([]model.PolicyChunk, 0, len(ranked))
	for _, r := range ranked {
		chunks = append(chunks, r.chunk)
	}
	return chunks
}

// builtinCorpus is a condensed slice of institutional lending policy used
// when no retrieval service is wired.
func builtinCorpus() []model.PolicyChunk {
	return []model.PolicyChunk{
		{
			ChunkID: "policy-tiering-001",
			Title:   "Credit Risk Tiering Standard",
			Section: "2.1",
			Text: "Risk tiering assigns each application to LOW, MEDIUM, HIGH or DECLINE " +
				"based on the model risk score. Boundary scores classify into the higher " +
				"risk tier. Tier boundaries are reviewed quarterly by the credit committee.",
			Metadata: map[string]any{
				"guidance": "Tier boundaries are committee-owned",
			},
		},
		{
			ChunkID: "policy-banding-002",
			Title:   "Interest Band Schedule",
			Section: "3.4",
			Text: "Approved applications price within the band for their risk tier. " +
				"Interest band documentation must cite the schedule revision in force " +
				"on the assessment date.",
			Metadata: map[string]any{
				"interest_bands": map[string]any{
					"LOW":    map[string]any{"min_apr": "5.25", "max_apr": "6.75", "policy_reference": "policy-banding-002/3.4"},
					"MEDIUM": map[string]any{"min_apr": "6.75", "max_apr": "8.50", "policy_reference": "policy-banding-002/3.4"},
					"HIGH":   map[string]any{"min_apr": "8.50", "max_apr": "11.00", "policy_reference": "policy-banding-002/3.4", "conditions": []any{"manual pricing review"}},
				},
			},
		},
		{
			ChunkID: "policy-docs-003",
			Title:   "Supporting Documentation Requirements",
			Section: "5.2",
			Text: "Applications with elevated debt-to-income ratios require income " +
				"verification and a schedule of outstanding obligations before a final " +
				"decision. Self-employed borrowers supply two years of tax returns.",
			Metadata: map[string]any{
				"guidance":           "Elevated DTI requires income verification",
				"required_documents": []any{"income_verification"},
			},
		},
		{
			ChunkID: "policy-collateral-004",
			Title:   "Collateral Evidence Standard",
			Section: "6.1",
			Text: "Secured products require documented evidence of collateral ownership " +
				"prior to disbursement. Missing collateral documentation blocks funding " +
				"but not assessment.",
		},
	}
}

// ---------------------------------------------------------------------------
// HTTP-backed client
// ---------------------------------------------------------------------------

// HTTPPolicyClient implements PolicyClient against a JSON retrieval API.
type HTTPPolicyClient struct {
	config Config
	client *http.Client
}

// NewHTTPPolicyClient builds a client for the configured policy API.
func NewHTTPPolicyClient(config Config) *HTTPPolicyClient {
	return &HTTPPolicyClient{config: config, client: config.httpClient()}
}

func (c *HTTPPolicyClient) Search(ctx context.Context, query string, topK int) ([]model.PolicyChunk, error) {
	req := struct {
		Query string `json:"query"`
		TopK  int    `json:"top_k"`
	}{Query: query, TopK: topK}

	var resp struct {
		Chunks []model.PolicyChunk `json:"chunks"`
	}
	if err := postJSON(ctx, c.client, c.config, "/v1/policies/search", req, &resp); err != nil {
		return nil, err
	}
	return resp.Chunks, nil
}

func (c *HTTPPolicyClient) FetchByID(ctx context.Context, ids []string) (map[string]model.PolicyChunk, error) {
	req := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}

	var resp struct {
		Chunks map[string]model.PolicyChunk `json:"chunks"`
	}
	if err := postJSON(ctx, c.client, c.config, "/v1/policies/lookup", req, &resp); err != nil {
		return nil, err
	}
	return resp.Chunks, nil
}
