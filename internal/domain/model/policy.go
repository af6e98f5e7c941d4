package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// PolicyChunk – retrieved unit of institutional lending policy
// ---------------------------------------------------------------------------

// PolicyChunk is an indexed excerpt of lending policy used as citation and
// justification material. Chunks are read-only once retrieved.
type PolicyChunk struct {
	ChunkID  string         `json:"chunk_id"`
	Title    string         `json:"title"`
	Section  string         `json:"section"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// quoteWordLimit caps citation quotes at 50 words.
const quoteWordLimit = 50

// Quote returns the chunk text truncated to the citation word limit.
func (c PolicyChunk) Quote() string {
	words := strings.Fields(c.Text)
	if len(words) <= quoteWordLimit {
		return c.Text
	}
	return strings.Join(words[:quoteWordLimit], " ")
}

// Guidance returns the metadata guidance label when present.
func (c PolicyChunk) Guidance() (string, bool) {
	g, ok := c.Metadata["guidance"].(string)
	return g, ok && g != ""
}

// RequiredDocuments returns document identifiers the policy chunk mandates.
func (c PolicyChunk) RequiredDocuments() []string {
	raw, ok := c.Metadata["required_documents"]
	if !ok {
		return nil
	}

	var docs []string
	switch vs := raw.(type) {
	case []string:
		docs = append(docs, vs...)
	case []any:
		for _, v := range vs {
			if s, ok := v.(string); ok && s != "" {
				docs = append(docs, s)
			}
		}
	}
	return docs
}

// InterestBandFromMetadata extracts an interest band from the chunk metadata,
// when one is declared. Bands with a missing bound are ignored.
func (c PolicyChunk) InterestBandFromMetadata() (*InterestBand, bool) {
	raw, ok := c.Metadata["interest_band"].(map[string]any)
	if !ok {
		return nil, false
	}
	return c.bandFromMap(raw)
}

// InterestBandForTier extracts the band a chunk's per-tier schedule declares
// for the given tier, when one exists.
func (c PolicyChunk) InterestBandForTier(tier string) (*InterestBand, bool) {
	schedule, ok := c.Metadata["interest_bands"].(map[string]any)
	if !ok {
		return nil, false
	}
	raw, ok := schedule[tier].(map[string]any)
	if !ok {
		return nil, false
	}
	return c.bandFromMap(raw)
}

func (c PolicyChunk) bandFromMap(raw map[string]any) (*InterestBand, bool) {
	minAPR, okMin := metadataRate(raw["min_apr"])
	maxAPR, okMax := metadataRate(raw["max_apr"])
	if !okMin || !okMax {
		return nil, false
	}

	reference, _ := raw["policy_reference"].(string)
	if reference == "" {
		reference = c.ChunkID
	}

	band := &InterestBand{
		MinAPR:          minAPR,
		MaxAPR:          maxAPR,
		PolicyReference: reference,
	}
	if conds, ok := raw["conditions"].([]any); ok {
		for _, cond := range conds {
			if s, ok := cond.(string); ok {
				band.Conditions = append(band.Conditions, s)
			}
		}
	} else if conds, ok := raw["conditions"].([]string); ok {
		band.Conditions = append(band.Conditions, conds...)
	}
	return band, true
}

func metadataRate(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	case decimal.Decimal:
		return n, true
	default:
		return decimal.Decimal{}, false
	}
}
