package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

// dateMatchStage builds the optional $match stage restricting
// production_date to an inclusive range. Returns nil when both ends are zero.
func dateMatchStage(from, to time.Time) bson.D {
	rangeQuery := bson.M{}
	if !from.IsZero() {
		rangeQuery["$gte"] = from
	}
	if !to.IsZero() {
		rangeQuery["$lte"] = to
	}
	if len(rangeQuery) == 0 {
		return nil
	}
	return bson.D{{Key: "$match", Value: bson.M{"production_date": rangeQuery}}}
}

func (r *ProductionRepository) aggregate(ctx context.Context, pipeline []bson.D, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("aggregate decode: %w", err)
	}
	return nil
}

func withDateMatch(from, to time.Time, stages ...bson.D) []bson.D {
	pipeline := make([]bson.D, 0, len(stages)+1)
	if match := dateMatchStage(from, to); match != nil {
		pipeline = append(pipeline, match)
	}
	return append(pipeline, stages...)
}

func (r *ProductionRepository) DailySummary(ctx context.Context, from, to time.Time) ([]ports.DailySummary, error) {
	pipeline := withDateMatch(from, to,
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$production_date",
			}},
			"total_quantity": bson.M{"$sum": "$quantity_produced"},
			"num_records":    bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	)

	summaries := []ports.DailySummary{}
	if err := r.aggregate(ctx, pipeline, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *ProductionRepository) MonthlySummary(ctx context.Context, from, to time.Time) ([]ports.MonthlySummary, error) {
	pipeline := withDateMatch(from, to,
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m",
				"date":   "$production_date",
			}},
			"total_quantity": bson.M{"$sum": "$quantity_produced"},
			"num_records":    bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	)

	summaries := []ports.MonthlySummary{}
	if err := r.aggregate(ctx, pipeline, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *ProductionRepository) MachinePerformance(ctx context.Context, from, to time.Time) ([]ports.MachineSummary, error) {
	pipeline := withDateMatch(from, to,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":                     "$machine_id",
			"total_quantity":          bson.M{"$sum": "$quantity_produced"},
			"avg_quantity_per_record": bson.M{"$avg": "$quantity_produced"},
			"avg_time_taken_minutes":  bson.M{"$avg": "$time_taken_minutes"},
			"num_records":             bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	)

	summaries := []ports.MachineSummary{}
	if err := r.aggregate(ctx, pipeline, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *ProductionRepository) Overview(ctx context.Context, from, to time.Time) (*ports.OverviewSummary, error) {
	pipeline := withDateMatch(from, to,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":                    nil,
			"total_quantity_overall": bson.M{"$sum": "$quantity_produced"},
			"total_records_overall":  bson.M{"$sum": 1},
		}}},
	)

	results := []ports.OverviewSummary{}
	if err := r.aggregate(ctx, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &ports.OverviewSummary{}, nil
	}
	return &results[0], nil
}

func (r *ProductionRepository) ByProduct(ctx context.Context, from, to time.Time) ([]ports.ProductSummary, error) {
	pipeline := withDateMatch(from, to,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            "$product_name",
			"total_quantity": bson.M{"$sum": "$quantity_produced"},
			"num_records":    bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"total_quantity": -1}}},
	)

	summaries := []ports.ProductSummary{}
	if err := r.aggregate(ctx, pipeline, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *ProductionRepository) ByOperator(ctx context.Context, from, to time.Time) ([]ports.OperatorSummary, error) {
	pipeline := withDateMatch(from, to,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":            "$operator_id",
			"total_quantity": bson.M{"$sum": "$quantity_produced"},
			"num_records":    bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"total_quantity": -1}}},
	)

	summaries := []ports.OperatorSummary{}
	if err := r.aggregate(ctx, pipeline, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
