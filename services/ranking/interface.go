package ranking

import (
	"context"

	"agendo/models"
)

// RankingService scores and orders providers for a requested service, date
// and optional time-of-day. It is a discovery feature: collaborator failures
// degrade to an empty result instead of propagating.
type RankingService interface {
	RankProviders(ctx context.Context, opts models.RankOptions) ([]models.RankedProvider, error)
	// GetRecommendedProvidersForService filters the ranking down to
	// providers whose total score crosses the recommendation threshold.
	GetRecommendedProvidersForService(ctx context.Context, serviceID, date, clientID string) ([]models.RankedProvider, error)
	// FindAlternativeProviders short-circuits when the preferred provider
	// can serve the day, otherwise ranks the providers that can.
	FindAlternativeProviders(ctx context.Context, preferredProviderID, serviceID, date string) ([]models.RankedProvider, error)
}
