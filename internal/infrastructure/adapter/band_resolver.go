package adapter

import (
	"context"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Interest Band Resolver
// ---------------------------------------------------------------------------

// ScheduleBandResolver resolves an interest band from per-tier schedules
// declared in retrieved policy chunks. It implements
// port.InterestBandResolver. Chunks are scanned in retrieval order, so the
// most relevant schedule wins.
//
// DECLINE tiers never price: the resolver declines without error.
type ScheduleBandResolver struct{}

// NewScheduleBandResolver creates the resolver.
func NewScheduleBandResolver() *ScheduleBandResolver {
	return &ScheduleBandResolver{}
}

// Resolve returns the first band any chunk's schedule declares for the tier,
// or nil when no schedule covers it.
func (r *ScheduleBandResolver) Resolve(_ context.Context, chunks []model.PolicyChunk, tier valueobject.RiskTier) (*model.InterestBand, error) {
	if tier.Equal(valueobject.RiskTierDecline) {
		return nil, nil
	}

	for _, chunk := range chunks {
		if band, ok := chunk.InterestBandForTier(tier.String()); ok {
			return band, nil
		}
	}
	return nil, nil
}
