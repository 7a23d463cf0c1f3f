package services

import (
	"testing"
	"time"

	"github.com/amitxthedev/Zenox-Dev-Apis/models"
	"github.com/amitxthedev/Zenox-Dev-Apis/repositories"
)

func seedAnalytics(t *testing.T, leads []models.Lead) *AnalyticsService {
	t.Helper()
	store := repositories.NewInMemoryLeadStore()
	for i := range leads {
		if err := store.Create(&leads[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return NewAnalyticsService(store)
}

func monthOf(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 10, 0, 0, 0, time.UTC)
}

func TestGetSummary_Empty(t *testing.T) {
	svc := seedAnalytics(t, nil)

	summary, err := svc.GetSummary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := Summary{}
	if *summary != want {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestGetSummary_CountsAndRevenue(t *testing.T) {
	svc := seedAnalytics(t, []models.Lead{
		{BusinessName: "A", Phone: "1", Status: models.StatusApproved, Price: floatPtr(100), CreatedAt: monthOf(2024, time.January)},
		{BusinessName: "B", Phone: "2", Status: models.StatusApproved, Price: floatPtr(200), CreatedAt: monthOf(2024, time.January)},
		{BusinessName: "C", Phone: "3", Status: models.StatusApproved, Price: floatPtr(50), CreatedAt: monthOf(2024, time.February)},
		{BusinessName: "D", Phone: "4", Status: models.StatusPending, CreatedAt: monthOf(2024, time.February)},
		{BusinessName: "E", Phone: "5", Status: models.StatusWaiting, CreatedAt: monthOf(2024, time.February)},
		{BusinessName: "F", Phone: "6", Status: models.StatusRejected, CreatedAt: monthOf(2024, time.March)},
	})

	summary, err := svc.GetSummary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := Summary{Total: 6, Pending: 1, Waiting: 1, Approved: 3, Rejected: 1, Revenue: 350}
	if *summary != want {
		t.Fatalf("unexpected summary: got %+v want %+v", *summary, want)
	}
}

func TestGetSummary_NilPriceCountsAsZero(t *testing.T) {
	// An approved lead with a null price should never exist, but the
	// aggregator must not blow up or miscount if the store holds one.
	svc := seedAnalytics(t, []models.Lead{
		{BusinessName: "A", Phone: "1", Status: models.StatusApproved, Price: nil, CreatedAt: monthOf(2024, time.January)},
		{BusinessName: "B", Phone: "2", Status: models.StatusApproved, Price: floatPtr(75), CreatedAt: monthOf(2024, time.January)},
	})

	summary, err := svc.GetSummary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Approved != 2 {
		t.Fatalf("expected 2 approved, got %d", summary.Approved)
	}
	if summary.Revenue != 75 {
		t.Fatalf("expected revenue 75, got %v", summary.Revenue)
	}
}

func TestGetBreakdown_MonthlyRevenue(t *testing.T) {
	svc := seedAnalytics(t, []models.Lead{
		{BusinessName: "A", Phone: "1", Status: models.StatusApproved, Price: floatPtr(100), CreatedAt: monthOf(2024, time.January)},
		{BusinessName: "B", Phone: "2", Status: models.StatusApproved, Price: floatPtr(200), CreatedAt: monthOf(2024, time.January)},
		{BusinessName: "C", Phone: "3", Status: models.StatusApproved, Price: floatPtr(50), CreatedAt: monthOf(2024, time.February)},
	})

	breakdown, err := svc.GetBreakdown()
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}

	want := []MonthRevenue{
		{Month: "2024-01", Revenue: 300},
		{Month: "2024-02", Revenue: 50},
	}
	if len(breakdown.RevenueData) != len(want) {
		t.Fatalf("expected %d revenue buckets, got %+v", len(want), breakdown.RevenueData)
	}
	for i, w := range want {
		if breakdown.RevenueData[i] != w {
			t.Fatalf("bucket %d: got %+v want %+v", i, breakdown.RevenueData[i], w)
		}
	}
}

func TestGetBreakdown_RevenueKeepsLastSixMonths(t *testing.T) {
	var leads []models.Lead
	for m := time.Month(1); m <= 8; m++ {
		leads = append(leads, models.Lead{
			BusinessName: "Biz",
			Phone:        "1",
			Status:       models.StatusApproved,
			Price:        floatPtr(float64(m) * 10),
			CreatedAt:    monthOf(2024, m),
		})
	}
	svc := seedAnalytics(t, leads)

	breakdown, err := svc.GetBreakdown()
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if len(breakdown.RevenueData) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(breakdown.RevenueData))
	}
	// January and February fall off; March..August remain, ascending.
	if breakdown.RevenueData[0].Month != "2024-03" {
		t.Fatalf("expected first bucket 2024-03, got %q", breakdown.RevenueData[0].Month)
	}
	if breakdown.RevenueData[5].Month != "2024-08" {
		t.Fatalf("expected last bucket 2024-08, got %q", breakdown.RevenueData[5].Month)
	}
}

func TestGetBreakdown_CategoryAndStatusGroups(t *testing.T) {
	svc := seedAnalytics(t, []models.Lead{
		{BusinessName: "A", Phone: "1", Category: models.CategoryHotel, Status: models.StatusPending},
		{BusinessName: "B", Phone: "2", Category: models.CategoryHotel, Status: models.StatusWaiting},
		{BusinessName: "C", Phone: "3", Category: models.CategoryShop, Status: models.StatusPending},
	})

	breakdown, err := svc.GetBreakdown()
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}

	wantCategories := []CategoryCount{
		{Category: models.CategoryHotel, Count: 2},
		{Category: models.CategoryShop, Count: 1},
	}
	if len(breakdown.CategoryData) != len(wantCategories) {
		t.Fatalf("unexpected category data: %+v", breakdown.CategoryData)
	}
	for i, w := range wantCategories {
		if breakdown.CategoryData[i] != w {
			t.Fatalf("category %d: got %+v want %+v", i, breakdown.CategoryData[i], w)
		}
	}

	wantStatuses := []StatusCount{
		{Status: models.StatusPending, Count: 2},
		{Status: models.StatusWaiting, Count: 1},
	}
	if len(breakdown.StatusData) != len(wantStatuses) {
		t.Fatalf("unexpected status data: %+v", breakdown.StatusData)
	}
	for i, w := range wantStatuses {
		if breakdown.StatusData[i] != w {
			t.Fatalf("status %d: got %+v want %+v", i, breakdown.StatusData[i], w)
		}
	}

	// Only categories present in the data appear; no zero entries.
	for _, c := range breakdown.CategoryData {
		if c.Count == 0 {
			t.Fatalf("zero-count category synthesized: %+v", c)
		}
	}
}

func TestGetBreakdown_Empty(t *testing.T) {
	svc := seedAnalytics(t, nil)

	breakdown, err := svc.GetBreakdown()
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if len(breakdown.CategoryData) != 0 || len(breakdown.StatusData) != 0 || len(breakdown.RevenueData) != 0 {
		t.Fatalf("expected empty breakdown, got %+v", breakdown)
	}
}
