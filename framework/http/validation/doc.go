// Package validation validates request payloads and reports failures in
// Laravel's error bag shape.
//
// # Basic Usage
//
// Rules live in `validate` struct tags (go-playground/validator syntax); keys
// in the bag are the json field names:
//
//	type SearchRequest struct {
//	    Query  string `json:"query" validate:"required"`
//	    Number int    `json:"number" validate:"gte=1,lte=100"`
//	}
//
//	errs := validation.Default().Struct(&req)
//	if errs.Has() {
//	    res.ValidationError(errs)
//	}
//
// Nested structs report dotted paths ("goals.primaryGoal").
//
// # Custom Rules
//
// Payloads that need cross-field rules implement SelfValidator and add to the
// bag directly:
//
//	func (r *WorkoutRequest) Validate(errs *validation.Errors) {
//	    if !r.HasFilter() {
//	        errs.Add("filters", "At least one filter must be provided.")
//	    }
//	}
//
// # Error Bag
//
//	{
//	  "errors": {
//	    "query":    ["The query field is required."],
//	    "pageSize": ["The pageSize must be less than or equal to 100."]
//	  }
//	}
package validation
