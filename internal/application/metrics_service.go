package application

import (
	"context"

	"go.uber.org/zap"

	bookingDomain "github.com/bookbnb/service-booking/internal/domain/booking"
)

// MetricPoint is one day's value in a metric series.
type MetricPoint struct {
	Date  bookingDomain.Date `json:"date"`
	Value float64            `json:"value"`
}

// Metric is a named time series.
type Metric struct {
	Name string        `json:"name"`
	Data []MetricPoint `json:"data"`
}

// MetricsService computes aggregate metrics over the booking store.
type MetricsService struct {
	repo   bookingDomain.Repository
	logger *zap.Logger
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(repo bookingDomain.Repository, logger *zap.Logger) *MetricsService {
	return &MetricsService{repo: repo, logger: logger}
}

// All computes every published metric for the window.
func (s *MetricsService) All(ctx context.Context, start, end bookingDomain.Date) ([]Metric, error) {
	revenue, err := s.RevenuePerDay(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return []Metric{revenue}, nil
}

// RevenuePerDay returns summed revenue of accepted, chain-confirmed
// bookings for every day in [start, end], ascending, with 0.0 for days
// the store reported nothing. Zero-fill happens here, after the store
// aggregation.
func (s *MetricsService) RevenuePerDay(ctx context.Context, start, end bookingDomain.Date) (Metric, error) {
	revenue, err := s.repo.RevenueByDay(ctx, start, end)
	if err != nil {
		return Metric{}, err
	}

	byDay := make(map[string]float64, len(revenue))
	for _, r := range revenue {
		byDay[r.Day.String()] = r.Value
	}

	data := []MetricPoint{}
	for day := start; !day.After(end); day = day.AddDays(1) {
		data = append(data, MetricPoint{Date: day, Value: byDay[day.String()]})
	}

	return Metric{Name: "revenue_per_day", Data: data}, nil
}
