package ports

import (
	"context"
	"time"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// EntryFilter carries all query parameters for listing production entries.
// Owner is always computed by the service layer from the caller's roles;
// non-empty means every match must carry that operator_name.
type EntryFilter struct {
	Owner       string
	ProductName string
	MachineID   string
	OperatorID  string
	Shift       string
	MinQuantity *int
	MaxQuantity *int
	DateFrom    time.Time // inclusive, zero = unbounded
	DateTo      time.Time // inclusive, zero = unbounded
	Skip        int
	Limit       int // 0 = no limit (export path)
}

// ProductionRepository defines persistence for production entries. The owner
// argument on the by-id operations narrows the query the same way
// EntryFilter.Owner does: a non-matching owner yields the same
// domain.ErrEntryNotFound as a missing document.
type ProductionRepository interface {
	Create(ctx context.Context, entry *domain.ProductionEntry) (*domain.ProductionEntry, error)
	FindByID(ctx context.Context, id, owner string) (*domain.ProductionEntry, error)
	List(ctx context.Context, filter EntryFilter) ([]*domain.ProductionEntry, error)
	Update(ctx context.Context, id, owner string, update EntryUpdate) (*domain.ProductionEntry, error)
	Delete(ctx context.Context, id, owner string) error

	// Aggregations backing the reports endpoints. The date range is inclusive
	// and optional on both ends.
	DailySummary(ctx context.Context, from, to time.Time) ([]DailySummary, error)
	MonthlySummary(ctx context.Context, from, to time.Time) ([]MonthlySummary, error)
	MachinePerformance(ctx context.Context, from, to time.Time) ([]MachineSummary, error)
	Overview(ctx context.Context, from, to time.Time) (*OverviewSummary, error)
	ByProduct(ctx context.Context, from, to time.Time) ([]ProductSummary, error)
	ByOperator(ctx context.Context, from, to time.Time) ([]OperatorSummary, error)
}

// EntryUpdate carries the mutable fields of a production entry. Nil pointers
// are left untouched. OperatorName is absent: ownership never changes.
type EntryUpdate struct {
	ProductName      *string
	MachineID        *string
	QuantityProduced *int
	OperatorID       *string
	ProductionDate   *time.Time
	Shift            *string
	Comments         *string
	TimeTakenMinutes *int
}

// Empty reports whether the update would change nothing.
func (u EntryUpdate) Empty() bool {
	return u.ProductName == nil && u.MachineID == nil && u.QuantityProduced == nil &&
		u.OperatorID == nil && u.ProductionDate == nil && u.Shift == nil &&
		u.Comments == nil && u.TimeTakenMinutes == nil
}
