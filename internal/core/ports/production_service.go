package ports

import (
	"context"
	"io"
	"time"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
)

// CreateEntryInput carries the fields accepted when recording production.
type CreateEntryInput struct {
	ProductName      string
	MachineID        string
	QuantityProduced int
	OperatorID       string
	ProductionDate   time.Time
	Shift            string
	Comments         string
	TimeTakenMinutes int
}

// ListEntriesInput is the caller-supplied slice of EntryFilter; the owner
// scope is derived from the actor, never taken from the request.
type ListEntriesInput struct {
	ProductName string
	MachineID   string
	OperatorID  string
	Shift       string
	MinQuantity *int
	MaxQuantity *int
	DateFrom    time.Time
	DateTo      time.Time
	Skip        int
	Limit       int
}

// ProductionService defines use-case operations for production entries. All
// operations are scoped to the actor: elevated roles see everything,
// restricted roles only records they own.
type ProductionService interface {
	Create(ctx context.Context, actor *domain.User, input CreateEntryInput) (*domain.ProductionEntry, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.ProductionEntry, error)
	List(ctx context.Context, actor *domain.User, input ListEntriesInput) ([]*domain.ProductionEntry, error)
	Update(ctx context.Context, actor *domain.User, id string, update EntryUpdate) (*domain.ProductionEntry, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	// ExportCSV writes the filtered entries as CSV to w.
	ExportCSV(ctx context.Context, actor *domain.User, input ListEntriesInput, w io.Writer) error
}
