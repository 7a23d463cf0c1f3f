package services

import (
	"sort"

	"github.com/amitxthedev/Zenox-Dev-Apis/models"
	"github.com/amitxthedev/Zenox-Dev-Apis/repositories"
)

// Summary is the dashboard headline: per-status counts plus total revenue
// from approved leads.
type Summary struct {
	Total    int     `json:"total"`
	Pending  int     `json:"pending"`
	Waiting  int     `json:"waiting"`
	Approved int     `json:"approved"`
	Rejected int     `json:"rejected"`
	Revenue  float64 `json:"revenue"`
}

type CategoryCount struct {
	Category models.LeadCategory `json:"category"`
	Count    int                 `json:"count"`
}

type StatusCount struct {
	Status models.LeadStatus `json:"status"`
	Count  int               `json:"count"`
}

type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// Breakdown is the chart feed: leads grouped by category, by status, and
// approved revenue grouped by creation month.
type Breakdown struct {
	CategoryData []CategoryCount `json:"categoryData"`
	StatusData   []StatusCount   `json:"statusData"`
	RevenueData  []MonthRevenue  `json:"revenueData"`
}

// revenueMonths caps how many monthly buckets the revenue chart shows.
const revenueMonths = 6

// AnalyticsService derives both reports from a full scan of the lead
// collection on every call. Nothing is cached; at dashboard volumes the
// rescan is cheaper than keeping aggregates in sync.
type AnalyticsService struct {
	store repositories.LeadStore
}

func NewAnalyticsService(store repositories.LeadStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// GetSummary counts every lead by status and sums the price of approved ones.
func (s *AnalyticsService) GetSummary() (*Summary, error) {
	leads, err := s.store.List(repositories.LeadFilter{})
	if err != nil {
		return nil, err
	}

	summary := &Summary{Total: len(leads)}
	for _, lead := range leads {
		switch lead.Status {
		case models.StatusPending:
			summary.Pending++
		case models.StatusWaiting:
			summary.Waiting++
		case models.StatusApproved:
			summary.Approved++
			if lead.Price != nil {
				summary.Revenue += *lead.Price
			}
		case models.StatusRejected:
			summary.Rejected++
		}
	}
	return summary, nil
}

// GetBreakdown groups the whole collection for the three dashboard charts.
// Category and status groups are sorted by name so the output is stable;
// revenue buckets are sorted by month ascending and truncated to the most
// recent six. Months without an approved lead do not appear at all.
func (s *AnalyticsService) GetBreakdown() (*Breakdown, error) {
	leads, err := s.store.List(repositories.LeadFilter{})
	if err != nil {
		return nil, err
	}

	categories := make(map[models.LeadCategory]int)
	statuses := make(map[models.LeadStatus]int)
	revenue := make(map[string]float64)

	for _, lead := range leads {
		categories[lead.Category]++
		statuses[lead.Status]++

		if lead.Status == models.StatusApproved && lead.Price != nil {
			month := lead.CreatedAt.UTC().Format("2006-01")
			revenue[month] += *lead.Price
		}
	}

	breakdown := &Breakdown{
		CategoryData: make([]CategoryCount, 0, len(categories)),
		StatusData:   make([]StatusCount, 0, len(statuses)),
		RevenueData:  make([]MonthRevenue, 0, len(revenue)),
	}

	for category, count := range categories {
		breakdown.CategoryData = append(breakdown.CategoryData, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(breakdown.CategoryData, func(i, j int) bool {
		return breakdown.CategoryData[i].Category < breakdown.CategoryData[j].Category
	})

	for status, count := range statuses {
		breakdown.StatusData = append(breakdown.StatusData, StatusCount{Status: status, Count: count})
	}
	sort.Slice(breakdown.StatusData, func(i, j int) bool {
		return breakdown.StatusData[i].Status < breakdown.StatusData[j].Status
	})

	for month, total := range revenue {
		breakdown.RevenueData = append(breakdown.RevenueData, MonthRevenue{Month: month, Revenue: total})
	}
	sort.Slice(breakdown.RevenueData, func(i, j int) bool {
		return breakdown.RevenueData[i].Month < breakdown.RevenueData[j].Month
	})
	if len(breakdown.RevenueData) > revenueMonths {
		breakdown.RevenueData = breakdown.RevenueData[len(breakdown.RevenueData)-revenueMonths:]
	}

	return breakdown, nil
}
