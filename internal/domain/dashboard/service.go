package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/dentix/clinic/internal/platform/db"
)

const lowStockThreshold = 10

// noData is reported as the top treatment before anything has been rendered.
const noData = "no data"

type Service struct {
	stats StatsRepository
	now   func() time.Time
}

func NewService(stats StatsRepository) *Service {
	return &Service{stats: stats, now: time.Now}
}

// Stats assembles the dashboard block from five independent reads. Today
// and the current month come from the server-local clock.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	out := &Stats{}

	var err error
	if out.PatientsCount, err = s.stats.PatientsCount(ctx); err != nil {
		return nil, err
	}
	if out.AppointmentsToday, err = s.stats.AppointmentsOn(ctx, now); err != nil {
		return nil, err
	}
	if out.MonthlyRevenue, err = s.stats.RevenueForMonth(ctx, now.Year(), now.Month()); err != nil {
		return nil, err
	}
	top, err := s.stats.TopTreatment(ctx)
	switch {
	case errors.Is(err, db.ErrNotFound):
		out.TopTreatment = noData
	case err != nil:
		return nil, err
	default:
		out.TopTreatment = top
	}
	if out.LowStockCount, err = s.stats.LowStockCount(ctx, lowStockThreshold); err != nil {
		return nil, err
	}
	return out, nil
}
