package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"strings"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Document Request Adapter
// ---------------------------------------------------------------------------

// DocumentClient defines the interface for the case-management document
// request API.
type DocumentClient interface {
	Request(ctx context.Context, documents []string) (model.DocumentRequestAck, error)
}

// DocumentRequestAdapter submits supporting-document requests to the
// case-management system. It implements port.DocumentRequester; without a
// client it acknowledges requests locally with a deterministic request id.
type DocumentRequestAdapter struct {
	config Config
	client DocumentClient // nil = local acknowledgement
}

// NewDocumentRequestAdapter creates a new adapter with the given
// configuration. If client is nil, requests are acknowledged locally.
func NewDocumentRequestAdapter(config Config, client DocumentClient) *DocumentRequestAdapter {
	return &DocumentRequestAdapter{config: config, client: client}
}

// Request submits the document list. It implements port.DocumentRequester.
func (a *DocumentRequestAdapter) Request(ctx context.Context, documents []string) (model.DocumentRequestAck, error) {
	if len(documents) == 0 {
		return model.DocumentRequestAck{}, fmt.Errorf("at least one document is required")
	}

	if a.client != nil {
		var ack model.DocumentRequestAck
		err := a.config.withRetry(ctx, func() error {
			var opErr error
			ack, opErr = a.client.Request(ctx, documents)
			return opErr
		})
		if err != nil {
			return model.DocumentRequestAck{}, fmt.Errorf("document request failed: %w", err)
		}
		return ack, nil
	}

	h := sha256.Sum256([]byte(strings.Join(documents, "|")))
	return model.DocumentRequestAck{
		RequestID: fmt.Sprintf("req-%x", h[:6]),
		Documents: documents,
	}, nil
}

// ---------------------------------------------------------------------------
// HTTP-backed client
// ---------------------------------------------------------------------------

// HTTPDocumentClient implements DocumentClient against a JSON case-management
// API.
type HTTPDocumentClient struct {
	config Config
	client *http.Client
}

// NewHTTPDocumentClient builds a client for the configured document API.
func NewHTTPDocumentClient(config Config) *HTTPDocumentClient {
	return &HTTPDocumentClient{config: config, client: config.httpClient()}
}

func (c *HTTPDocumentClient) Request(ctx context.Context, documents []string) (model.DocumentRequestAck, error) {
	req := struct {
		Documents []string `json:"documents"`
	}{Documents: documents}

	var ack model.DocumentRequestAck
	if err := postJSON(ctx, c.client, c.config, "/v1/document-requests", req, &ack); err != nil {
		return model.DocumentRequestAck{}, err
	}
	return ack, nil
}
