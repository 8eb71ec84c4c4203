package availability

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"agendo/models"
	"agendo/utils"
)

const (
	// DefaultDaysToCheck is the default horizon of a best-days scan.
	DefaultDaysToCheck = 30
	// DefaultScanDuration is assumed when no service narrows the duration.
	DefaultScanDuration = 60
)

// FindBestAvailabilityDays scans the upcoming days and returns those with at
// least one bookable slot, ordered by slot count descending. This is a
// discovery feature: a day whose computation fails is logged and skipped
// rather than failing the whole scan.
func (s *DefaultAvailabilityService) FindBestAvailabilityDays(ctx context.Context, providerID, serviceID string, daysToCheck int) ([]models.DayAvailability, error) {
	logger := utils.GetLogger()
	if daysToCheck <= 0 {
		daysToCheck = DefaultDaysToCheck
	}

	duration := DefaultScanDuration
	if serviceID != "" {
		d, err := s.resolveDuration(ctx, providerID, serviceID)
		if err != nil {
			logger.Warn("falling back to default scan duration",
				zap.String("serviceId", serviceID), zap.Error(err))
		} else {
			duration = d
		}
	}

	days := make([]models.DayAvailability, 0, daysToCheck)
	start := s.now()
	for offset := 0; offset < daysToCheck; offset++ {
		date := start.AddDate(0, 0, offset).Format("2006-01-02")
		slots, err := s.GenerateSlots(ctx, providerID, date, duration)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("skipping day in availability scan",
				zap.String("providerId", providerID),
				zap.String("date", date), zap.Error(err))
			continue
		}
		count := 0
		for _, slot := range slots {
			if slot.IsAvailable {
				count++
			}
		}
		if count == 0 {
			continue
		}
		days = append(days, models.DayAvailability{
			Date:           date,
			AvailableSlots: count,
			Score:          availabilityScore(count),
		})
	}

	sort.SliceStable(days, func(i, j int) bool {
		if days[i].AvailableSlots != days[j].AvailableSlots {
			return days[i].AvailableSlots > days[j].AvailableSlots
		}
		return days[i].Date < days[j].Date
	})
	return days, nil
}

// resolveDuration applies the provider's custom execution time over the
// service default.
func (s *DefaultAvailabilityService) resolveDuration(ctx context.Context, providerID, serviceID string) (int, error) {
	svc, err := s.ServiceRepo.GetService(ctx, serviceID)
	if err != nil {
		return 0, err
	}
	if svc == nil {
		return DefaultScanDuration, nil
	}
	ps, err := s.ServiceRepo.GetProviderService(ctx, providerID, serviceID)
	if err != nil {
		return 0, err
	}
	return models.EffectiveDuration(*svc, ps), nil
}

// availabilityScore maps a slot count onto the 0..5 scale shared with the
// ranking engine.
func availabilityScore(slotCount int) float64 {
	score := float64(slotCount) / 2
	if score > 5 {
		return 5
	}
	return score
}
