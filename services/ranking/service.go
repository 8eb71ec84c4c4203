package ranking

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	appointmentRepo "agendo/database/repository/appointment"
	providerRepo "agendo/database/repository/provider"
	reviewRepo "agendo/database/repository/review"
	serviceRepo "agendo/database/repository/service"
	"agendo/models"
	"agendo/services/availability"
	"agendo/utils"
)

// DefaultMaxResults caps a ranking when the caller does not set a limit.
const DefaultMaxResults = 10

// DefaultRankingService implements RankingService on top of the availability
// engine and the read-side repositories.
type DefaultRankingService struct {
	ProviderRepo    providerRepo.ProviderRepository
	ReviewRepo      reviewRepo.ReviewRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	ServiceRepo     serviceRepo.ServiceRepository
	Availability    availability.AvailabilityService

	now func() time.Time
}

// NewRankingService wires a ranking service over the availability engine.
func NewRankingService(
	provRepo providerRepo.ProviderRepository,
	revRepo reviewRepo.ReviewRepository,
	apptRepo appointmentRepo.AppointmentRepository,
	svcRepo serviceRepo.ServiceRepository,
	avail availability.AvailabilityService,
) *DefaultRankingService {
	return &DefaultRankingService{
		ProviderRepo:    provRepo,
		ReviewRepo:      revRepo,
		AppointmentRepo: apptRepo,
		ServiceRepo:     svcRepo,
		Availability:    avail,
		now:             time.Now,
	}
}

// RankProviders resolves the eligible provider set, evaluates every provider
// concurrently, and returns them best first, capped at MaxResults. When no
// providers match or a collaborator fails, it returns an empty list rather
// than an error: a partial ranking is preferable to a hard failure for a
// discovery feature.
func (s *DefaultRankingService) RankProviders(ctx context.Context, opts models.RankOptions) ([]models.RankedProvider, error) {
	ranked, err := s.rankAll(ctx, opts)
	if err != nil {
		return nil, err
	}
	return truncate(ranked, opts.MaxResults), nil
}

// rankAll evaluates and sorts the full eligible set without applying the
// result cap, so callers that filter afterwards do not lose candidates to
// truncation.
func (s *DefaultRankingService) rankAll(ctx context.Context, opts models.RankOptions) ([]models.RankedProvider, error) {
	logger := utils.GetLogger()

	providers, err := s.eligibleProviders(ctx, opts)
	if err != nil {
		logger.Error("ranking: provider lookup failed",
			zap.String("serviceId", opts.ServiceID),
			zap.String("categoryId", opts.CategoryID), zap.Error(err))
		return []models.RankedProvider{}, nil
	}
	if len(providers) == 0 {
		return []models.RankedProvider{}, nil
	}

	svc := s.lookupService(ctx, opts.ServiceID)

	resultsCh := make(chan models.RankedProvider, len(providers))
	var wg sync.WaitGroup
	for _, p := range providers {
		wg.Add(1)
		go func(p models.Provider) {
			defer wg.Done()
			resultsCh <- s.evaluateProvider(ctx, p, opts, svc)
		}(p)
	}
	wg.Wait()
	close(resultsCh)

	ranked := make([]models.RankedProvider, 0, len(providers))
	for rp := range resultsCh {
		ranked = append(ranked, rp)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].ProviderID < ranked[j].ProviderID
	})
	return ranked, nil
}

func truncate(ranked []models.RankedProvider, max int) []models.RankedProvider {
	if max <= 0 {
		max = DefaultMaxResults
	}
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

// eligibleProviders narrows the candidate set: by service, else by category,
// else all active providers.
func (s *DefaultRankingService) eligibleProviders(ctx context.Context, opts models.RankOptions) ([]models.Provider, error) {
	switch {
	case opts.ServiceID != "":
		return s.ProviderRepo.GetByService(ctx, opts.ServiceID)
	case opts.CategoryID != "":
		return s.ProviderRepo.GetByCategory(ctx, opts.CategoryID)
	default:
		return s.ProviderRepo.GetActive(ctx)
	}
}

func (s *DefaultRankingService) lookupService(ctx context.Context, serviceID string) *models.Service {
	if serviceID == "" {
		return nil
	}
	svc, err := s.ServiceRepo.GetService(ctx, serviceID)
	if err != nil {
		utils.GetLogger().Warn("ranking: service lookup failed",
			zap.String("serviceId", serviceID), zap.Error(err))
		return nil
	}
	return svc
}

// evaluateProvider fetches reviews, slots and client history concurrently
// (they are independent reads) and folds them into a scored record. Any
// single fetch failing degrades that component to its neutral value.
func (s *DefaultRankingService) evaluateProvider(ctx context.Context, p models.Provider, opts models.RankOptions, svc *models.Service) models.RankedProvider {
	logger := utils.GetLogger()

	var (
		wg      sync.WaitGroup
		reviews []models.Review
		slots   []models.Slot
		history []models.Appointment
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		reviews, err = s.ReviewRepo.GetByProvider(ctx, p.ID)
		if err != nil {
			logger.Warn("ranking: reviews unavailable", zap.String("providerId", p.ID), zap.Error(err))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		duration := s.durationFor(ctx, p.ID, svc)
		all, err := s.Availability.GenerateSlots(ctx, p.ID, opts.Date, duration)
		if err != nil {
			logger.Warn("ranking: availability unavailable", zap.String("providerId", p.ID), zap.Error(err))
			return
		}
		for _, slot := range availability.FilterByTimeOfDay(all, opts.TimeOfDay) {
			if slot.IsAvailable {
				slots = append(slots, slot)
			}
		}
	}()

	if opts.ClientID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var err error
			history, err = s.AppointmentRepo.GetByClientAndProvider(ctx, opts.ClientID, p.ID)
			if err != nil {
				logger.Warn("ranking: history unavailable", zap.String("providerId", p.ID), zap.Error(err))
			}
		}()
	}
	wg.Wait()

	rating := averageRating(reviews)
	avail := availScore(len(slots))
	quality := qualityScore(reviews, s.now())
	hist := historyScore(history)

	bonus := 0.0
	for _, id := range opts.PreferredProviders {
		if id == p.ID {
			bonus = PreferredBonus
			break
		}
	}

	total := totalScore(rating, avail, quality, hist, bonus)
	return models.RankedProvider{
		ProviderID:        p.ID,
		Name:              p.Name,
		Rating:            rating,
		AvailabilityScore: avail,
		QualityScore:      quality,
		HistoryScore:      hist,
		TotalScore:        total,
		IsRecommended:     total >= RecommendThreshold,
		AvailableSlots:    slots,
	}
}

// durationFor resolves the booking duration: provider custom execution time
// over service default, generic scan duration when no service is named.
func (s *DefaultRankingService) durationFor(ctx context.Context, providerID string, svc *models.Service) int {
	if svc == nil {
		return availability.DefaultScanDuration
	}
	ps, err := s.ServiceRepo.GetProviderService(ctx, providerID, svc.ID)
	if err != nil {
		utils.GetLogger().Warn("ranking: provider service lookup failed",
			zap.String("providerId", providerID), zap.String("serviceId", svc.ID), zap.Error(err))
		ps = nil
	}
	return models.EffectiveDuration(*svc, ps)
}
