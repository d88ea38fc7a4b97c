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
)

const collectionReference = "reference_data"

type ReferenceRepository struct {
	col *mongo.Collection
}

func NewReferenceRepository(db *mongo.Database) *ReferenceRepository {
	return &ReferenceRepository{col: db.Collection(collectionReference)}
}

type categoryDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Name   string             `bson:"category_name"`
	Values []string           `bson:"values"`
}

func (d *categoryDoc) toDomain() *domain.ReferenceCategory {
	return &domain.ReferenceCategory{ID: d.ID.Hex(), Name: d.Name, Values: d.Values}
}

// EnsureIndexes creates the unique index on category_name.
func (r *ReferenceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category_name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ReferenceRepository) Create(ctx context.Context, cat *domain.ReferenceCategory) (*domain.ReferenceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := categoryDoc{Name: cat.Name, Values: cat.Values}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ReferenceRepository) FindByName(ctx context.Context, name string) (*domain.ReferenceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc categoryDoc
	if err := r.col.FindOne(ctx, bson.M{"category_name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReferenceRepository) List(ctx context.Context) ([]*domain.ReferenceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "category_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.ReferenceCategory
	for cur.Next(ctx) {
		var doc categoryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode category: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ReferenceRepository) Update(ctx context.Context, name string, cat *domain.ReferenceCategory) (*domain.ReferenceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc categoryDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"category_name": name},
		bson.M{"$set": bson.M{"category_name": cat.Name, "values": cat.Values}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReferenceRepository) Delete(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"category_name": name})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
