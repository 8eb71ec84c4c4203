package ranking

import (
	"context"

	"go.uber.org/zap"

	"agendo/models"
	"agendo/utils"
)

// PerfectScore is assigned when the preferred provider can already serve the
// requested day, short-circuiting the ranking.
const PerfectScore = 5.0

// GetRecommendedProvidersForService ranks providers for the service and keeps
// only the ones crossing the recommendation threshold.
func (s *DefaultRankingService) GetRecommendedProvidersForService(ctx context.Context, serviceID, date, clientID string) ([]models.RankedProvider, error) {
	ranked, err := s.RankProviders(ctx, models.RankOptions{
		ServiceID: serviceID,
		Date:      date,
		ClientID:  clientID,
	})
	if err != nil {
		return nil, err
	}
	recommended := make([]models.RankedProvider, 0, len(ranked))
	for _, rp := range ranked {
		if rp.IsRecommended {
			recommended = append(recommended, rp)
		}
	}
	return recommended, nil
}

// FindAlternativeProviders checks the preferred provider first: when it has
// at least one bookable slot that day there is nothing to rank, and it comes
// back alone with a perfect score. Otherwise the ranking runs over the
// providers that do have availability.
func (s *DefaultRankingService) FindAlternativeProviders(ctx context.Context, preferredProviderID, serviceID, date string) ([]models.RankedProvider, error) {
	logger := utils.GetLogger()

	svc := s.lookupService(ctx, serviceID)
	duration := s.durationFor(ctx, preferredProviderID, svc)

	slots, err := s.Availability.GenerateSlots(ctx, preferredProviderID, date, duration)
	if err != nil {
		logger.Warn("alternatives: preferred provider availability failed",
			zap.String("providerId", preferredProviderID), zap.Error(err))
	} else {
		var bookable []models.Slot
		for _, slot := range slots {
			if slot.IsAvailable {
				bookable = append(bookable, slot)
			}
		}
		if len(bookable) > 0 {
			name := ""
			if p, err := s.ProviderRepo.GetByID(ctx, preferredProviderID); err == nil && p != nil {
				name = p.Name
			}
			reviews, _ := s.ReviewRepo.GetByProvider(ctx, preferredProviderID)
			return []models.RankedProvider{{
				ProviderID:        preferredProviderID,
				Name:              name,
				Rating:            averageRating(reviews),
				AvailabilityScore: availScore(len(bookable)),
				QualityScore:      qualityScore(reviews, s.now()),
				TotalScore:        PerfectScore,
				IsRecommended:     true,
				AvailableSlots:    bookable,
			}}, nil
		}
	}

	// The fallback ranking is restricted to providers that can actually
	// serve the day, so the restriction must narrow the set before the
	// result cap is applied: rank everyone, filter, then truncate.
	ranked, err := s.rankAll(ctx, models.RankOptions{
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		return nil, err
	}
	alternatives := make([]models.RankedProvider, 0, len(ranked))
	for _, rp := range ranked {
		if rp.ProviderID == preferredProviderID {
			continue
		}
		if len(rp.AvailableSlots) > 0 {
			alternatives = append(alternatives, rp)
		}
	}
	return truncate(alternatives, 0), nil
}
