package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/plantops/manufacturing-ops/internal/core/domain"
	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

const collectionProduction = "production_data"

// ProductionRepository persists production entries and runs the report
// aggregations.
type ProductionRepository struct {
	col *mongo.Collection
}

func NewProductionRepository(db *mongo.Database) *ProductionRepository {
	return &ProductionRepository{col: db.Collection(collectionProduction)}
}

type entryDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	ProductName      string             `bson:"product_name"`
	MachineID        string             `bson:"machine_id"`
	QuantityProduced int                `bson:"quantity_produced"`
	OperatorID       string             `bson:"operator_id"`
	ProductionDate   time.Time          `bson:"production_date"`
	Shift            string             `bson:"shift,omitempty"`
	Comments         string             `bson:"comments,omitempty"`
	TimeTakenMinutes int                `bson:"time_taken_minutes,omitempty"`
	OperatorName     string             `bson:"operator_name"`
	CreatedAt        time.Time          `bson:"created_at"`
}

func (d *entryDoc) toDomain() *domain.ProductionEntry {
	return &domain.ProductionEntry{
		ID:               d.ID.Hex(),
		ProductName:      d.ProductName,
		MachineID:        d.MachineID,
		QuantityProduced: d.QuantityProduced,
		OperatorID:       d.OperatorID,
		ProductionDate:   d.ProductionDate,
		Shift:            d.Shift,
		Comments:         d.Comments,
		TimeTakenMinutes: d.TimeTakenMinutes,
		OperatorName:     d.OperatorName,
		CreatedAt:        d.CreatedAt,
	}
}

func fromDomainEntry(e *domain.ProductionEntry) entryDoc {
	return entryDoc{
		ProductName:      e.ProductName,
		MachineID:        e.MachineID,
		QuantityProduced: e.QuantityProduced,
		OperatorID:       e.OperatorID,
		ProductionDate:   e.ProductionDate,
		Shift:            e.Shift,
		Comments:         e.Comments,
		TimeTakenMinutes: e.TimeTakenMinutes,
		OperatorName:     e.OperatorName,
		CreatedAt:        e.CreatedAt,
	}
}

// EnsureIndexes creates the query indexes for the production collection.
func (r *ProductionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "operator_name", Value: 1}}},
		{Keys: bson.D{{Key: "production_date", Value: 1}}},
		{Keys: bson.D{{Key: "machine_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProductionRepository) Create(ctx context.Context, entry *domain.ProductionEntry) (*domain.ProductionEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomainEntry(entry)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// idFilter builds the by-id filter. A non-empty owner is intersected in, so
// a foreign record matches nothing and reads exactly like a missing one.
func idFilter(id, owner string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEntryNotFound
	}
	filter := bson.M{"_id": oid}
	if owner != "" {
		filter["operator_name"] = owner
	}
	return filter, nil
}

func (r *ProductionRepository) FindByID(ctx context.Context, id, owner string) (*domain.ProductionEntry, error) {
	filter, err := idFilter(id, owner)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc entryDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	return doc.toDomain(), nil
}

// buildFilter translates an EntryFilter into a bson query. The owner filter
// is applied last so it overrides any caller-supplied operator filter.
func buildFilter(f ports.EntryFilter) bson.M {
	query := bson.M{}
	if f.ProductName != "" {
		query["product_name"] = f.ProductName
	}
	if f.MachineID != "" {
		query["machine_id"] = f.MachineID
	}
	if f.OperatorID != "" {
		query["operator_id"] = f.OperatorID
	}
	if f.Shift != "" {
		query["shift"] = f.Shift
	}
	if f.MinQuantity != nil || f.MaxQuantity != nil {
		qty := bson.M{}
		if f.MinQuantity != nil {
			qty["$gte"] = *f.MinQuantity
		}
		if f.MaxQuantity != nil {
			qty["$lte"] = *f.MaxQuantity
		}
		query["quantity_produced"] = qty
	}
	if !f.DateFrom.IsZero() || !f.DateTo.IsZero() {
		dates := bson.M{}
		if !f.DateFrom.IsZero() {
			dates["$gte"] = f.DateFrom
		}
		if !f.DateTo.IsZero() {
			dates["$lte"] = f.DateTo
		}
		query["production_date"] = dates
	}
	if f.Owner != "" {
		query["operator_name"] = f.Owner
	}
	return query
}

func (r *ProductionRepository) List(ctx context.Context, filter ports.EntryFilter) ([]*domain.ProductionEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Skip > 0 {
		opts.SetSkip(int64(filter.Skip))
	}
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := r.col.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.ProductionEntry
	for cur.Next(ctx) {
		var doc entryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, doc.toDomain())
	}
	return entries, cur.Err()
}

func (r *ProductionRepository) Update(ctx context.Context, id, owner string, update ports.EntryUpdate) (*domain.ProductionEntry, error) {
	filter, err := idFilter(id, owner)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.ProductName != nil {
		set["product_name"] = *update.ProductName
	}
	if update.MachineID != nil {
		set["machine_id"] = *update.MachineID
	}
	if update.QuantityProduced != nil {
		set["quantity_produced"] = *update.QuantityProduced
	}
	if update.OperatorID != nil {
		set["operator_id"] = *update.OperatorID
	}
	if update.ProductionDate != nil {
		set["production_date"] = *update.ProductionDate
	}
	if update.Shift != nil {
		set["shift"] = *update.Shift
	}
	if update.Comments != nil {
		set["comments"] = *update.Comments
	}
	if update.TimeTakenMinutes != nil {
		set["time_taken_minutes"] = *update.TimeTakenMinutes
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc entryDoc
	err = r.col.FindOneAndUpdate(ctx, filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductionRepository) Delete(ctx context.Context, id, owner string) error {
	filter, err := idFilter(id, owner)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}
