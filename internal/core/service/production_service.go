package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

// Notifier abstracts the async notification pipeline so the service does not
// block on notification persistence.
type Notifier interface {
	Enqueue(input ports.NotificationInput)
}

// ProductionService implements CRUD and export over production entries with
// ownership scoping: elevated actors operate on everything, restricted
// actors only on records they own.
type ProductionService struct {
	repo     ports.ProductionRepository
	notifier Notifier
	log      zerolog.Logger
}

func NewProductionService(repo ports.ProductionRepository, notifier Notifier, log zerolog.Logger) *ProductionService {
	return &ProductionService{repo: repo, notifier: notifier, log: log}
}

// ownerScope returns the owner filter for the actor: empty for elevated
// roles, the actor's own username otherwise. It overrides any caller-supplied
// owner filter.
func ownerScope(actor *domain.User) string {
	if actor.Elevated() {
		return ""
	}
	return actor.Username
}

// Create records a new production entry owned by the actor. The production
// date is normalised to UTC before storage.
func (s *ProductionService) Create(ctx context.Context, actor *domain.User, input ports.CreateEntryInput) (*domain.ProductionEntry, error) {
	entry := &domain.ProductionEntry{
		ProductName:      input.ProductName,
		MachineID:        input.MachineID,
		QuantityProduced: input.QuantityProduced,
		OperatorID:       input.OperatorID,
		ProductionDate:   input.ProductionDate.UTC(),
		Shift:            input.Shift,
		Comments:         input.Comments,
		TimeTakenMinutes: input.TimeTakenMinutes,
		OperatorName:     actor.Username,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		s.log.Error().Err(err).Str("operator", actor.Username).Msg("failed to create production entry")
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(ports.NotificationInput{
			Message:  fmt.Sprintf("production entry recorded: %s x%d on %s", created.ProductName, created.QuantityProduced, created.MachineID),
			Severity: domain.SeverityInfo,
			Username: actor.Username,
		})
	}

	s.log.Info().Str("entry_id", created.ID).Str("operator", actor.Username).Msg("production entry created")
	return created, nil
}

func (s *ProductionService) Get(ctx context.Context, actor *domain.User, id string) (*domain.ProductionEntry, error) {
	return s.repo.FindByID(ctx, id, ownerScope(actor))
}

func (s *ProductionService) List(ctx context.Context, actor *domain.User, input ports.ListEntriesInput) ([]*domain.ProductionEntry, error) {
	return s.repo.List(ctx, s.filterFor(actor, input))
}

func (s *ProductionService) Update(ctx context.Context, actor *domain.User, id string, update ports.EntryUpdate) (*domain.ProductionEntry, error) {
	if update.Empty() {
		return nil, domain.ErrNoFields
	}
	if update.ProductionDate != nil {
		utc := update.ProductionDate.UTC()
		update.ProductionDate = &utc
	}
	return s.repo.Update(ctx, id, ownerScope(actor), update)
}

func (s *ProductionService) Delete(ctx context.Context, actor *domain.User, id string) error {
	return s.repo.Delete(ctx, id, ownerScope(actor))
}

// ExportCSV writes all entries matching the filter as CSV. Pagination is
// ignored: exports always cover the full filtered set.
func (s *ProductionService) ExportCSV(ctx context.Context, actor *domain.User, input ports.ListEntriesInput, w io.Writer) error {
	filter := s.filterFor(actor, input)
	filter.Skip = 0
	filter.Limit = 0

	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"id", "production_date", "shift", "machine_id", "product_name",
		"quantity_produced", "operator_id", "operator_name", "created_at",
		"comments", "time_taken_minutes",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			e.ProductionDate.UTC().Format(time.RFC3339),
			e.Shift,
			e.MachineID,
			e.ProductName,
			strconv.Itoa(e.QuantityProduced),
			e.OperatorID,
			e.OperatorName,
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.Comments,
			strconv.Itoa(e.TimeTakenMinutes),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ProductionService) filterFor(actor *domain.User, input ports.ListEntriesInput) ports.EntryFilter {
	return ports.EntryFilter{
		Owner:       ownerScope(actor),
		ProductName: input.ProductName,
		MachineID:   input.MachineID,
		OperatorID:  input.OperatorID,
		Shift:       input.Shift,
		MinQuantity: input.MinQuantity,
		MaxQuantity: input.MaxQuantity,
		DateFrom:    input.DateFrom,
		DateTo:      input.DateTo,
		Skip:        input.Skip,
		Limit:       input.Limit,
	}
}
