package dashboard

import (
	"context"
	"time"
)

// StatsRepository answers the five dashboard questions. Each read is
// independent; the page tolerates a non-atomic snapshot.
type StatsRepository interface {
	PatientsCount(ctx context.Context) (int, error)
	AppointmentsOn(ctx context.Context, day time.Time) (int, error)
	RevenueForMonth(ctx context.Context, year int, month time.Month) (float64, error)
	TopTreatment(ctx context.Context) (string, error)
	LowStockCount(ctx context.Context, threshold int) (int, error)
}
