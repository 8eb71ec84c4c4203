package ranking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendo/models"
)

type stubProviderRepo struct {
	providers []models.Provider
	err       error
}

func (r *stubProviderRepo) GetByID(_ context.Context, providerID string) (*models.Provider, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.providers {
		if p.ID == providerID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *stubProviderRepo) GetActive(_ context.Context) ([]models.Provider, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.providers, nil
}

func (r *stubProviderRepo) GetByService(_ context.Context, serviceID string) ([]models.Provider, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Provider
	for _, p := range r.providers {
		for _, id := range p.ServiceIDs {
			if id == serviceID {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *stubProviderRepo) GetByCategory(_ context.Context, categoryID string) ([]models.Provider, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Provider
	for _, p := range r.providers {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubReviewRepo struct {
	reviews map[string][]models.Review
	err     error
}

func (r *stubReviewRepo) GetByProvider(_ context.Context, providerID string) ([]models.Review, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.reviews[providerID], nil
}

type stubHistoryRepo struct {
	history map[string][]models.Appointment
}

func (r *stubHistoryRepo) GetByProviderAndDate(_ context.Context, _, _ string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *stubHistoryRepo) GetByClientAndProvider(_ context.Context, clientID, providerID string) ([]models.Appointment, error) {
	return r.history[clientID+"|"+providerID], nil
}

type stubSvcRepo struct {
	svc *models.Service
	ps  map[string]*models.ProviderService // providerID
}

func (r *stubSvcRepo) GetService(_ context.Context, serviceID string) (*models.Service, error) {
	if r.svc != nil && r.svc.ID == serviceID {
		return r.svc, nil
	}
	return nil, nil
}

func (r *stubSvcRepo) GetProviderService(_ context.Context, providerID, _ string) (*models.ProviderService, error) {
	if r.ps == nil {
		return nil, nil
	}
	return r.ps[providerID], nil
}

// stubAvailability serves canned slot sets keyed by provider.
type stubAvailability struct {
	slots map[string][]models.Slot
	errs  map[string]error
}

func (a *stubAvailability) GenerateSlots(_ context.Context, providerID, _ string, _ int) ([]models.Slot, error) {
	if err := a.errs[providerID]; err != nil {
		return nil, err
	}
	return a.slots[providerID], nil
}

func (a *stubAvailability) FindBestAvailabilityDays(_ context.Context, _, _ string, _ int) ([]models.DayAvailability, error) {
	return nil, nil
}

func bookable(starts ...string) []models.Slot {
	out := make([]models.Slot, len(starts))
	for i, s := range starts {
		out[i] = models.Slot{StartTime: s, IsAvailable: true, ServiceDuration: 60}
	}
	return out
}

func hourlySlots(n int) []models.Slot {
	out := make([]models.Slot, n)
	for i := range out {
		h := 8 + i
		out[i] = models.Slot{
			StartTime:       time.Date(2026, 3, 2, h, 0, 0, 0, time.UTC).Format("15:04"),
			IsAvailable:     true,
			ServiceDuration: 60,
		}
	}
	return out
}

func newTestRanking(providers []models.Provider, avail *stubAvailability) *DefaultRankingService {
	svc := NewRankingService(
		&stubProviderRepo{providers: providers},
		&stubReviewRepo{reviews: make(map[string][]models.Review)},
		&stubHistoryRepo{history: make(map[string][]models.Appointment)},
		&stubSvcRepo{},
		avail,
	)
	svc.now = func() time.Time { return scoreNow }
	return svc
}

func TestRankProvidersOrdersByTotalScore(t *testing.T) {
	providers := []models.Provider{
		{ID: "prov-a", Name: "Alpha", Active: true},
		{ID: "prov-b", Name: "Beta", Active: true},
	}
	avail := &stubAvailability{slots: map[string][]models.Slot{
		"prov-a": hourlySlots(10),
		"prov-b": hourlySlots(1),
	}}
	svc := newTestRanking(providers, avail)
	svc.ReviewRepo = &stubReviewRepo{reviews: map[string][]models.Review{
		"prov-a": {review(5, time.Hour), review(5, 48*time.Hour)},
		"prov-b": {review(3, time.Hour)},
	}}

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{Date: "2026-03-02"})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	a, b := ranked[0], ranked[1]
	assert.Equal(t, "prov-a", a.ProviderID)
	assert.Equal(t, "prov-b", b.ProviderID)

	assert.InDelta(t, 5.0, a.Rating, 1e-9)
	assert.InDelta(t, 5.0, a.AvailabilityScore, 1e-9)
	assert.InDelta(t, 5.0, a.QualityScore, 1e-9)
	// 0.4*5 + 0.3*5 + 0.2*5 = 4.5
	assert.InDelta(t, 4.5, a.TotalScore, 1e-9)
	assert.True(t, a.IsRecommended)
	assert.Len(t, a.AvailableSlots, 10)

	assert.InDelta(t, 3.0, b.Rating, 1e-9)
	assert.InDelta(t, 0.5, b.AvailabilityScore, 1e-9)
	// 0.4*3 + 0.3*0.5 + 0.2*3 = 1.95
	assert.InDelta(t, 1.95, b.TotalScore, 1e-9)
	assert.False(t, b.IsRecommended)
}

func TestRankProvidersNoReviewsUsesNeutralScores(t *testing.T) {
	providers := []models.Provider{{ID: "prov-a", Active: true}}
	avail := &stubAvailability{slots: map[string][]models.Slot{"prov-a": hourlySlots(4)}}
	svc := newTestRanking(providers, avail)

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{Date: "2026-03-02"})
	require.NoError(t, err)
	require.Len(t, ranked, 1)

	assert.InDelta(t, NeutralRating, ranked[0].Rating, 1e-9)
	assert.InDelta(t, NeutralQuality, ranked[0].QualityScore, 1e-9)
	// 0.4*3 + 0.3*2 + 0.2*2.5 = 2.3
	assert.InDelta(t, 2.3, ranked[0].TotalScore, 1e-9)
}

func TestRankProvidersPreferredBonus(t *testing.T) {
	providers := []models.Provider{
		{ID: "prov-a", Active: true},
		{ID: "prov-b", Active: true},
	}
	avail := &stubAvailability{slots: map[string][]models.Slot{
		"prov-a": hourlySlots(4),
		"prov-b": hourlySlots(4),
	}}
	svc := newTestRanking(providers, avail)

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{
		Date:               "2026-03-02",
		PreferredProviders: []string{"prov-b"},
	})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "prov-b", ranked[0].ProviderID)
	assert.InDelta(t, ranked[1].TotalScore+PreferredBonus, ranked[0].TotalScore, 1e-9)
}

func TestRankProvidersClientHistory(t *testing.T) {
	providers := []models.Provider{{ID: "prov-a", Active: true}}
	avail := &stubAvailability{slots: map[string][]models.Slot{"prov-a": hourlySlots(4)}}
	svc := newTestRanking(providers, avail)
	svc.AppointmentRepo = &stubHistoryRepo{history: map[string][]models.Appointment{
		"client-1|prov-a": {
			{Status: models.AppointmentCompleted},
			{Status: models.AppointmentCompleted},
		},
	}}

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{
		Date:     "2026-03-02",
		ClientID: "client-1",
	})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 1.0, ranked[0].HistoryScore, 1e-9)
}

func TestRankProvidersTimeOfDayFilter(t *testing.T) {
	providers := []models.Provider{{ID: "prov-a", Active: true}}
	avail := &stubAvailability{slots: map[string][]models.Slot{
		"prov-a": bookable("09:00", "10:00", "14:00", "19:00"),
	}}
	svc := newTestRanking(providers, avail)

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{
		Date:      "2026-03-02",
		TimeOfDay: models.TimeOfDayMorning,
	})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	require.Len(t, ranked[0].AvailableSlots, 2)
	assert.Equal(t, "09:00", ranked[0].AvailableSlots[0].StartTime)
	assert.Equal(t, "10:00", ranked[0].AvailableSlots[1].StartTime)
	assert.InDelta(t, 1.0, ranked[0].AvailabilityScore, 1e-9)
}

func TestRankProvidersExcludesBlockedEntries(t *testing.T) {
	providers := []models.Provider{{ID: "prov-a", Active: true}}
	avail := &stubAvailability{slots: map[string][]models.Slot{
		"prov-a": {
			{StartTime: "09:00", IsAvailable: true, ServiceDuration: 60},
			{StartTime: "12:00", IsAvailable: false, ServiceDuration: 60, Reason: "lunch"},
		},
	}}
	svc := newTestRanking(providers, avail)

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{Date: "2026-03-02"})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	require.Len(t, ranked[0].AvailableSlots, 1)
	assert.True(t, ranked[0].AvailableSlots[0].IsAvailable)
}

func TestRankProvidersDegradesOnProviderLookupFailure(t *testing.T) {
	avail := &stubAvailability{}
	svc := newTestRanking(nil, avail)
	svc.ProviderRepo = &stubProviderRepo{err: assert.AnError}

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{Date: "2026-03-02"})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankProvidersAvailabilityFailureScoresZeroSlots(t *testing.T) {
	providers := []models.Provider{
		{ID: "prov-a", Active: true},
		{ID: "prov-b", Active: true},
	}
	avail := &stubAvailability{
		slots: map[string][]models.Slot{"prov-a": hourlySlots(4)},
		errs:  map[string]error{"prov-b": assert.AnError},
	}
	svc := newTestRanking(providers, avail)

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{Date: "2026-03-02"})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "prov-a", ranked[0].ProviderID)
	assert.InDelta(t, 0, ranked[1].AvailabilityScore, 1e-9)
}

func TestRankProvidersTieBreaksByProviderID(t *testing.T) {
	providers := []models.Provider{
		{ID: "prov-b", Active: true},
		{ID: "prov-a", Active: true},
	}
	avail := &stubAvailability{slots: map[string][]models.Slot{
		"prov-a": hourlySlots(2),
		"prov-b": hourlySlots(2),
	}}
	svc := newTestRanking(providers, avail)

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{Date: "2026-03-02"})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "prov-a", ranked[0].ProviderID)
	assert.Equal(t, "prov-b", ranked[1].ProviderID)
}

func TestRankProvidersMaxResults(t *testing.T) {
	var providers []models.Provider
	slots := make(map[string][]models.Slot)
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		providers = append(providers, models.Provider{ID: id, Active: true})
		slots[id] = hourlySlots(2)
	}
	svc := newTestRanking(providers, &stubAvailability{slots: slots})

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{
		Date:       "2026-03-02",
		MaxResults: 2,
	})
	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}

func TestRankProvidersNarrowsByService(t *testing.T) {
	providers := []models.Provider{
		{ID: "prov-a", Active: true, ServiceIDs: []string{"svc-1"}},
		{ID: "prov-b", Active: true, ServiceIDs: []string{"svc-2"}},
	}
	avail := &stubAvailability{slots: map[string][]models.Slot{
		"prov-a": hourlySlots(2),
		"prov-b": hourlySlots(2),
	}}
	svc := newTestRanking(providers, avail)

	ranked, err := svc.RankProviders(context.Background(), models.RankOptions{
		Date:      "2026-03-02",
		ServiceID: "svc-1",
	})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "prov-a", ranked[0].ProviderID)
}

func TestGetRecommendedProvidersFiltersByThreshold(t *testing.T) {
	providers := []models.Provider{
		{ID: "prov-a", Active: true, ServiceIDs: []string{"svc-1"}},
		{ID: "prov-b", Active: true, ServiceIDs: []string{"svc-1"}},
	}
	avail := &stubAvailability{slots: map[string][]models.Slot{
		"prov-a": hourlySlots(10),
		"prov-b": hourlySlots(1),
	}}
	svc := newTestRanking(providers, avail)
	svc.ReviewRepo = &stubReviewRepo{reviews: map[string][]models.Review{
		"prov-a": {review(5, time.Hour)},
		"prov-b": {review(3, time.Hour)},
	}}

	recommended, err := svc.GetRecommendedProvidersForService(context.Background(), "svc-1", "2026-03-02", "")
	require.NoError(t, err)
	require.Len(t, recommended, 1)
	assert.Equal(t, "prov-a", recommended[0].ProviderID)
	assert.True(t, recommended[0].IsRecommended)
}

func TestFindAlternativeProvidersPreferredStillHasRoom(t *testing.T) {
	providers := []models.Provider{
		{ID: "prov-a", Name: "Alpha", Active: true},
		{ID: "prov-b", Name: "Beta", Active: true},
	}
	avail := &stubAvailability{slots: map[string][]models.Slot{
		"prov-a": bookable("09:00", "10:00"),
		"prov-b": hourlySlots(8),
	}}
	svc := newTestRanking(providers, avail)
	svc.ReviewRepo = &stubReviewRepo{reviews: map[string][]models.Review{
		"prov-a": {review(4, time.Hour)},
	}}

	alts, err := svc.FindAlternativeProviders(context.Background(), "prov-a", "", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, alts, 1, "no ranking needed when the preferred provider has room")

	got := alts[0]
	assert.Equal(t, "prov-a", got.ProviderID)
	assert.Equal(t, "Alpha", got.Name)
	assert.InDelta(t, PerfectScore, got.TotalScore, 1e-9)
	assert.True(t, got.IsRecommended)
	assert.InDelta(t, 4.0, got.Rating, 1e-9)
	assert.Len(t, got.AvailableSlots, 2)
}

func TestFindAlternativeProvidersPreferredFullyBooked(t *testing.T) {
	providers := []models.Provider{
		{ID: "prov-a", Active: true},
		{ID: "prov-b", Active: true},
		{ID: "prov-c", Active: true},
	}
	avail := &stubAvailability{slots: map[string][]models.Slot{
		"prov-a": {}, // fully booked
		"prov-b": hourlySlots(4),
		"prov-c": {}, // also full, must not be suggested
	}}
	svc := newTestRanking(providers, avail)

	alts, err := svc.FindAlternativeProviders(context.Background(), "prov-a", "", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, alts, 1)
	assert.Equal(t, "prov-b", alts[0].ProviderID)
}

func TestFindAlternativeProvidersSurvivesResultCap(t *testing.T) {
	// Eleven fully-booked, highly-rated providers plus one low-rated
	// provider that actually has room. The availability restriction must
	// be applied before the result cap, or the only real alternative gets
	// squeezed out by zero-slot providers.
	providers := []models.Provider{{ID: "prov-pref", Active: true}}
	slots := map[string][]models.Slot{"prov-pref": {}}
	reviews := map[string][]models.Review{}
	for i := 0; i < 11; i++ {
		id := fmt.Sprintf("full-%02d", i)
		providers = append(providers, models.Provider{ID: id, Active: true})
		slots[id] = nil
		reviews[id] = []models.Review{review(5, time.Hour)}
	}
	providers = append(providers, models.Provider{ID: "zz-available", Active: true})
	slots["zz-available"] = hourlySlots(1)
	reviews["zz-available"] = []models.Review{review(1, time.Hour)}

	svc := newTestRanking(providers, &stubAvailability{slots: slots})
	svc.ReviewRepo = &stubReviewRepo{reviews: reviews}

	alts, err := svc.FindAlternativeProviders(context.Background(), "prov-pref", "", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, alts, 1)
	assert.Equal(t, "zz-available", alts[0].ProviderID)
}

func TestFindAlternativeProvidersExcludesPreferredFromRanking(t *testing.T) {
	providers := []models.Provider{
		{ID: "prov-a", Active: true},
		{ID: "prov-b", Active: true},
	}
	// The preferred provider's direct check fails, and the fallback ranking
	// would otherwise include it with slots.
	avail := &stubAvailability{
		slots: map[string][]models.Slot{
			"prov-a": hourlySlots(4),
			"prov-b": hourlySlots(4),
		},
		errs: map[string]error{},
	}
	svc := newTestRanking(providers, avail)

	// Preferred has only blocked entries: present but not bookable.
	avail.slots["prov-a"] = []models.Slot{
		{StartTime: "09:00", IsAvailable: false, Reason: "maintenance"},
	}

	alts, err := svc.FindAlternativeProviders(context.Background(), "prov-a", "", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, alts, 1)
	assert.Equal(t, "prov-b", alts[0].ProviderID)
}
