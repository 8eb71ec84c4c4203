package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	appointmentRepo "agendo/database/repository/appointment"
	availabilityRepo "agendo/database/repository/availability"
	blockedRepo "agendo/database/repository/blocked"
	serviceRepo "agendo/database/repository/service"
	"agendo/models"
	"agendo/utils"
)

// DefaultAvailabilityService is the production implementation of
// AvailabilityService.
type DefaultAvailabilityService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	AppointmentRepo  appointmentRepo.AppointmentRepository
	BlockedRepo      blockedRepo.BlockedRepository
	ServiceRepo      serviceRepo.ServiceRepository

	Cache    SlotCache
	CacheTTL time.Duration
	// DefaultStep is the enumeration step used when a rule carries no
	// intervalMinutes of its own.
	DefaultStep int

	locks *providerLocks
	now   func() time.Time
}

// NewAvailabilityService wires an availability service with its own lock
// registry and the given cache, so tests can run isolated instances instead
// of sharing process-global state.
func NewAvailabilityService(
	availRepo availabilityRepo.AvailabilityRepository,
	apptRepo appointmentRepo.AppointmentRepository,
	blockRepo blockedRepo.BlockedRepository,
	svcRepo serviceRepo.ServiceRepository,
	cache SlotCache,
) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		AvailabilityRepo: availRepo,
		AppointmentRepo:  apptRepo,
		BlockedRepo:      blockRepo,
		ServiceRepo:      svcRepo,
		Cache:            cache,
		CacheTTL:         DefaultCacheTTL,
		DefaultStep:      models.DefaultIntervalMinutes,
		locks:            newProviderLocks(),
		now:              time.Now,
	}
}

// GenerateSlots serializes computation per provider, serves repeated lookups
// from the cache, and otherwise derives free blocks from the applicable rule
// minus active appointments and declared blocks.
//
// Availability-fetch failures are propagated: a booking must never be
// confirmed against unknown availability.
func (s *DefaultAvailabilityService) GenerateSlots(ctx context.Context, providerID, date string, duration int) ([]models.Slot, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	key := SlotCacheKey{ProviderID: providerID, Date: date, Duration: duration}
	var result []models.Slot

	err = s.locks.withLock(ctx, providerID, func() error {
		if cached, ok := s.Cache.Get(ctx, key); ok {
			result = cached
			return nil
		}

		rule, err := s.resolveRule(ctx, providerID, date, int(day.Weekday()))
		if err != nil {
			return fmt.Errorf("resolving availability rule for provider %s: %w", providerID, err)
		}
		if rule == nil || !rule.IsAvailable {
			// No rule for the date is a holiday, not an error.
			result = []models.Slot{}
			return nil
		}

		appts, blocks, err := s.fetchOccupancy(ctx, providerID, date, int(day.Weekday()))
		if err != nil {
			return err
		}

		result = s.computeSlots(rule, appts, blocks, duration)
		s.Cache.Set(ctx, key, result, s.CacheTTL)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveRule applies the override semantics: a date-specific rule, when
// present, supersedes the recurring rule for that weekday entirely.
func (s *DefaultAvailabilityService) resolveRule(ctx context.Context, providerID, date string, dayOfWeek int) (*models.AvailabilityRule, error) {
	rule, err := s.AvailabilityRepo.GetByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	if rule != nil {
		return rule, nil
	}
	return s.AvailabilityRepo.GetByProviderAndDay(ctx, providerID, dayOfWeek)
}

// fetchOccupancy pulls appointments and blocks concurrently; the two reads
// are independent and the provider lock is already held.
func (s *DefaultAvailabilityService) fetchOccupancy(ctx context.Context, providerID, date string, dayOfWeek int) ([]models.Appointment, []models.BlockedPeriod, error) {
	var (
		wg       sync.WaitGroup
		appts    []models.Appointment
		blocks   []models.BlockedPeriod
		apptErr  error
		blockErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		appts, apptErr = s.AppointmentRepo.GetByProviderAndDate(ctx, providerID, date)
	}()
	go func() {
		defer wg.Done()
		blocks, blockErr = s.BlockedRepo.GetByProviderAndDate(ctx, providerID, date, dayOfWeek)
	}()
	wg.Wait()

	if apptErr != nil {
		return nil, nil, fmt.Errorf("fetching appointments for provider %s: %w", providerID, apptErr)
	}
	if blockErr != nil {
		return nil, nil, fmt.Errorf("fetching blocked periods for provider %s: %w", providerID, blockErr)
	}
	return appts, blocks, nil
}

// computeSlots runs the pure pipeline: free blocks, enumeration, roundness
// ordering, then appends blocked entries so callers can render "blocked"
// distinctly from "bookable".
func (s *DefaultAvailabilityService) computeSlots(rule *models.AvailabilityRule, appts []models.Appointment, blocks []models.BlockedPeriod, duration int) []models.Slot {
	logger := utils.GetLogger()

	window := models.TimeRange{
		Start: utils.TimeToMinutes(rule.StartTime),
		End:   utils.TimeToMinutes(rule.EndTime),
	}
	if window.Start == utils.InvalidMinutes || window.End == utils.InvalidMinutes || window.Start >= window.End {
		logger.Warn("availability rule has unusable window",
			zap.String("providerId", rule.ProviderID),
			zap.String("startTime", rule.StartTime),
			zap.String("endTime", rule.EndTime))
		return []models.Slot{}
	}

	var occupied []models.OccupiedPeriod
	for _, a := range appts {
		if !a.Occupies() {
			continue
		}
		start, end := utils.TimeToMinutes(a.StartTime), utils.TimeToMinutes(a.EndTime)
		if start == utils.InvalidMinutes || end == utils.InvalidMinutes || start >= end {
			// A single bad record degrades to a skipped period.
			continue
		}
		occupied = append(occupied, models.OccupiedPeriod{
			Start: start, End: end, Kind: models.PeriodAppointment,
		})
	}

	var blockEntries []models.Slot
	for _, b := range blocks {
		start, end := utils.TimeToMinutes(b.StartTime), utils.TimeToMinutes(b.EndTime)
		if start == utils.InvalidMinutes || end == utils.InvalidMinutes || start >= end {
			continue
		}
		occupied = append(occupied, models.OccupiedPeriod{
			Start: start, End: end, Kind: models.PeriodBlock, Reason: b.Reason,
		})
		if start < window.End && end > window.Start {
			blockEntries = append(blockEntries, models.Slot{
				StartTime:       utils.MinutesToTime(start),
				EndTime:         utils.MinutesToTime(end),
				IsAvailable:     false,
				ServiceDuration: end - start,
				Reason:          b.Reason,
			})
		}
	}

	step := rule.IntervalMinutes
	if step <= 0 {
		step = s.DefaultStep
	}

	free := FreeBlocks(window, occupied)
	candidates := Prioritize(EnumerateSlots(free, duration, step))

	result := make([]models.Slot, 0, len(candidates)+len(blockEntries))
	for _, c := range candidates {
		result = append(result, models.Slot{
			StartTime:       utils.MinutesToTime(c.Start),
			EndTime:         utils.MinutesToTime(c.End),
			IsAvailable:     true,
			ServiceDuration: duration,
		})
	}
	result = append(result, blockEntries...)
	return result
}
