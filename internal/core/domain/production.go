package domain

import "time"

// ProductionEntry is a single production record reported from the floor.
// OperatorName is the owning identity's username, stamped at creation and
// never mutated; it is the sole basis for ownership scoping.
type ProductionEntry struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	ProductName      string    `json:"product_name" bson:"product_name"`
	MachineID        string    `json:"machine_id" bson:"machine_id"`
	QuantityProduced int       `json:"quantity_produced" bson:"quantity_produced"`
	OperatorID       string    `json:"operator_id" bson:"operator_id"`
	ProductionDate   time.Time `json:"production_date" bson:"production_date"`
	Shift            string    `json:"shift,omitempty" bson:"shift,omitempty"`
	Comments         string    `json:"comments,omitempty" bson:"comments,omitempty"`
	TimeTakenMinutes int       `json:"time_taken_minutes,omitempty" bson:"time_taken_minutes,omitempty"`
	OperatorName     string    `json:"operator_name" bson:"operator_name"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}
