package ports

import (
	"context"
	"time"
)

// DailySummary aggregates production for a single calendar day.
type DailySummary struct {
	Date          string `json:"date" bson:"_id"`
	TotalQuantity int64  `json:"total_quantity" bson:"total_quantity"`
	NumRecords    int64  `json:"num_records" bson:"num_records"`
}

// MonthlySummary aggregates production for a single YYYY-MM month.
type MonthlySummary struct {
	YearMonth     string `json:"year_month" bson:"_id"`
	TotalQuantity int64  `json:"total_quantity" bson:"total_quantity"`
	NumRecords    int64  `json:"num_records" bson:"num_records"`
}

// MachineSummary aggregates per-machine performance.
type MachineSummary struct {
	MachineID            string  `json:"machine_id" bson:"_id"`
	TotalQuantity        int64   `json:"total_quantity" bson:"total_quantity"`
	AvgQuantityPerRecord float64 `json:"avg_quantity_per_record" bson:"avg_quantity_per_record"`
	AvgTimeTakenMinutes  float64 `json:"avg_time_taken_minutes" bson:"avg_time_taken_minutes"`
	NumRecords           int64   `json:"num_records" bson:"num_records"`
}

// OverviewSummary is the single-row dashboard total.
type OverviewSummary struct {
	TotalQuantityOverall int64 `json:"total_quantity_overall" bson:"total_quantity_overall"`
	TotalRecordsOverall  int64 `json:"total_records_overall" bson:"total_records_overall"`
}

// ProductSummary aggregates production per product.
type ProductSummary struct {
	ProductName   string `json:"product_name" bson:"_id"`
	TotalQuantity int64  `json:"total_quantity" bson:"total_quantity"`
	NumRecords    int64  `json:"num_records" bson:"num_records"`
}

// OperatorSummary aggregates production per operator.
type OperatorSummary struct {
	OperatorID    string `json:"operator_id" bson:"_id"`
	TotalQuantity int64  `json:"total_quantity" bson:"total_quantity"`
	NumRecords    int64  `json:"num_records" bson:"num_records"`
}

// ReportService exposes the aggregation endpoints. All methods accept an
// optional inclusive date range; zero times mean unbounded.
type ReportService interface {
	DailySummary(ctx context.Context, from, to time.Time) ([]DailySummary, error)
	MonthlySummary(ctx context.Context, from, to time.Time) ([]MonthlySummary, error)
	MachinePerformance(ctx context.Context, from, to time.Time) ([]MachineSummary, error)
	Overview(ctx context.Context, from, to time.Time) (*OverviewSummary, error)
	ByProduct(ctx context.Context, from, to time.Time) ([]ProductSummary, error)
	ByOperator(ctx context.Context, from, to time.Time) ([]OperatorSummary, error)
}
