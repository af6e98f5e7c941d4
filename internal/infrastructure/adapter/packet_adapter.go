package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

// ---------------------------------------------------------------------------
// User Packet Composition Adapter
// ---------------------------------------------------------------------------

// PacketClient defines the interface for the packet composition service.
type PacketClient interface {
	Compose(ctx context.Context, payload model.PacketPayload) (map[string]any, error)
}

// PacketComposerAdapter renders the customer-facing decision packet. It
// implements port.PacketComposer; without a client it composes a plain
// template locally.
type PacketComposerAdapter struct {
	config Config
	client PacketClient // nil = local composition
}

// NewPacketComposerAdapter creates a new adapter with the given
// configuration. If client is nil, packets are composed locally.
func NewPacketComposerAdapter(config Config, client PacketClient) *PacketComposerAdapter {
	return &PacketComposerAdapter{config: config, client: client}
}

// Compose renders the packet. It implements port.PacketComposer.
func (a *PacketComposerAdapter) Compose(ctx context.Context, payload model.PacketPayload) (map[string]any, error) {
	if payload.ApplicationID == "" {
		return nil, fmt.Errorf("application ID is required")
	}

	if a.client != nil {
		var packet map[string]any
		err := a.config.withRetry(ctx, func() error {
			var opErr error
			packet, opErr = a.client.Compose(ctx, payload)
			return opErr
		})
		if err != nil {
			return nil, fmt.Errorf("packet composition failed: %w", err)
		}
		return packet, nil
	}

	return composeLocal(payload), nil
}

// composeLocal builds a plain-language packet from the decision data.
func composeLocal(payload model.PacketPayload) map[string]any {
	var summary strings.Builder
	fmt.Fprintf(&summary, "Application %s was assessed at risk tier %s.",
		payload.ApplicationID, payload.RiskTier.String())

	reasonLines := make([]string, 0, len(payload.Reasons))
	for _, reason := range payload.Reasons {
		reasonLines = append(reasonLines, reason.Detail)
	}
	if len(reasonLines) > 0 {
		fmt.Fprintf(&summary, " Key factors: %s.", strings.Join(reasonLines, "; "))
	}

	if len(payload.RequestedDocuments) > 0 {
		fmt.Fprintf(&summary, " To proceed, please provide: %s.",
			strings.Join(payload.RequestedDocuments, ", "))
	}

	packet := map[string]any{
		"application_id":      payload.ApplicationID,
		"summary":             summary.String(),
		"risk_tier":           payload.RiskTier.String(),
		"requested_documents": payload.RequestedDocuments,
	}

	if payload.InterestBand != nil {
		packet["indicative_apr_range"] = fmt.Sprintf("%s%% - %s%%",
			payload.InterestBand.MinAPR.String(), payload.InterestBand.MaxAPR.String())
	}

	if len(payload.PolicyCitations) > 0 {
		refs := make([]string, 0, len(payload.PolicyCitations))
		for _, citation := range payload.PolicyCitations {
			refs = append(refs, citation.Title+" §"+citation.Section)
		}
		packet["policy_references"] = refs
	}

	return packet
}

// ---------------------------------------------------------------------------
// HTTP-backed client
// ---------------------------------------------------------------------------

// HTTPPacketClient implements PacketClient against a JSON composition API.
type HTTPPacketClient struct {
	config Config
	client *http.Client
}

// NewHTTPPacketClient builds a client for the configured packet API.
func NewHTTPPacketClient(config Config) *HTTPPacketClient {
	return &HTTPPacketClient{config: config, client: config.httpClient()}
}

func (c *HTTPPacketClient) Compose(ctx context.Context, payload model.PacketPayload) (map[string]any, error) {
	var resp struct {
		Packet map[string]any `json:"packet"`
	}
	if err := postJSON(ctx, c.client, c.config, "/v1/packets", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Packet, nil
}
