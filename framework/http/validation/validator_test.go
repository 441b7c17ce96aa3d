package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/diaita/framework/http/validation"
)

type address struct {
	City string `json:"city" validate:"required"`
}

type signup struct {
	Email   string   `json:"email" validate:"required,email"`
	Age     int      `json:"age" validate:"gte=18,lte=120"`
	Plan    string   `json:"plan" validate:"omitempty,oneof=free pro"`
	Address address  `json:"address"`
	Tags    []string `json:"tags" validate:"max=2"`
	Secret  string   `json:"-"`
	NoTag   string   `validate:"required"`
}

type searchRequest struct {
	Exercise string `json:"exercise"`
	Type     string `json:"type"`
}

func (r *searchRequest) Validate(errs *validation.Errors) {
	if r.Exercise == "" && r.Type == "" {
		errs.Add("filters", "At least one filter must be provided.")
	}
}

func TestStruct_Passes(t *testing.T) {
	errs := validation.New().Struct(&signup{
		Email:   "alice@example.com",
		Age:     30,
		Address: address{City: "Lisbon"},
		NoTag:   "x",
	})
	assert.False(t, errs.Has(), errs.Bag)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	errs := validation.New().Struct(&signup{Email: "nope", Age: 12, Plan: "gold", Tags: []string{"a", "b", "c"}})
	require.True(t, errs.Has())

	assert.Equal(t, []string{"NoTag", "address.city", "age", "email", "plan", "tags"}, errs.Fields())
	assert.Equal(t, "The email must be a valid email address.", errs.First("email"))
	assert.Equal(t, "The age must be greater than or equal to 18.", errs.First("age"))
	assert.Equal(t, "The selected plan is invalid.", errs.First("plan"))
	assert.Equal(t, "The address.city field is required.", errs.First("address.city"))
	assert.Equal(t, "The tags may not be greater than 2.", errs.First("tags"))
}

func TestStruct_SelfValidator(t *testing.T) {
	v := validation.Default()

	errs := v.Struct(&searchRequest{})
	require.True(t, errs.Has())
	assert.Equal(t, "At least one filter must be provided.", errs.First("filters"))

	assert.False(t, v.Struct(&searchRequest{Type: "strength"}).Has())
}

func TestStruct_NonStruct(t *testing.T) {
	errs := validation.New().Struct(42)
	assert.True(t, errs.Has())
}

func TestErrors_JSONShape(t *testing.T) {
	var errs validation.Errors
	errs.Add("query", "The query field is required.")

	b, err := json.Marshal(&errs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"errors":{"query":["The query field is required."]}}`, string(b))
	assert.Equal(t, "validation failed: The query field is required.", errs.Error())
}

func TestErrors_NilHasNothing(t *testing.T) {
	var errs *validation.Errors
	assert.False(t, errs.Has())
	assert.Empty(t, (&validation.Errors{}).First("missing"))
}
