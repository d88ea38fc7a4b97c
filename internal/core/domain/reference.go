package domain

// ReferenceCategory is a named list of reference values (machine ids, shift
// names, product names) used to populate dropdowns and validate input on the
// client side. Category names are unique.
type ReferenceCategory struct {
	ID     string   `json:"id" bson:"_id,omitempty"`
	Name   string   `json:"category_name" bson:"category_name"`
	Values []string `json:"values" bson:"values"`
}
