package ranking

import (
	"math"
	"time"

	"agendo/models"
)

const (
	// NeutralRating stands in for providers with no reviews yet.
	NeutralRating = 3.0
	// NeutralQuality is the quality score for providers with no reviews.
	NeutralQuality = 2.5
	// PreferredBonus is added when the client marked the provider preferred.
	PreferredBonus = 2.0
	// RecommendThreshold is the total score at or above which a provider is
	// flagged as recommended.
	RecommendThreshold = 4.0

	recentReviewWindow = 90 * 24 * time.Hour
	recentWeight       = 0.7
	oldWeight          = 0.3
	staleFactor        = 0.8
)

// averageRating returns the plain review average, neutral when empty.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return NeutralRating
	}
	sum := 0.0
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}

// qualityScore is a recency-weighted rating: reviews from the last 90 days
// weigh 0.7, older ones 0.3. When every review is stale, the plain average is
// dampened to 0.8x instead.
func qualityScore(reviews []models.Review, now time.Time) float64 {
	if len(reviews) == 0 {
		return NeutralQuality
	}
	cutoff := now.Add(-recentReviewWindow)

	var weightedSum, weightTotal float64
	anyRecent := false
	for _, r := range reviews {
		w := oldWeight
		if r.CreatedAt.After(cutoff) {
			w = recentWeight
			anyRecent = true
		}
		weightedSum += w * r.Rating
		weightTotal += w
	}
	if !anyRecent {
		return clampScore(averageRating(reviews) * staleFactor)
	}
	return clampScore(weightedSum / weightTotal)
}

// historyScore rewards shared history between client and provider, on a 0..2
// scale. A client who cancelled on this provider more often than they
// completed gets a token 0.5 rather than zero, since they still chose the
// provider before.
func historyScore(history []models.Appointment) float64 {
	if len(history) == 0 {
		return 0
	}
	var completed, cancelled int
	for _, a := range history {
		switch a.Status {
		case models.AppointmentCompleted:
			completed++
		case models.AppointmentCancelled:
			cancelled++
		}
	}
	if completed == 0 && cancelled == 0 {
		return 0
	}
	if cancelled > completed {
		return 0.5
	}
	return math.Min(2, float64(completed)*0.5)
}

// availScore maps a bookable-slot count onto 0..5.
func availScore(slotCount int) float64 {
	return math.Min(5, float64(slotCount)/2)
}

// totalScore blends the components; the preferred bonus sits outside the
// weighted blend.
func totalScore(rating, avail, quality, history, bonus float64) float64 {
	total := 0.4*rating + 0.3*avail + 0.2*quality + 0.1*history + bonus
	return math.Round(total*100) / 100
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
