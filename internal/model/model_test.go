package model

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserInput_Validate(t *testing.T) {
	input := UserInput{FirstName: "A", LastName: "B", Email: "a@b.com", PasswordHash: "x"}
	require.NoError(t, input.Validate())

	input.Email = ""
	err := input.Validate()
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "email", validationErrs[0].Field())
}

func TestMatchInput_Validate(t *testing.T) {
	assert.Error(t, (&MatchInput{BuyerID: 1}).Validate())
	assert.NoError(t, (&MatchInput{BuyerID: 1, BusinessID: 2}).Validate())
}

func TestBuyerInput_ZeroNumbersAllowed(t *testing.T) {
	input := BuyerInput{
		UserID:         1,
		Title:          "Operator",
		About:          "Looking for a bakery",
		City:           "Austin",
		State:          "TX",
		Country:        "US",
		SizePreference: "small",
	}
	assert.NoError(t, input.Validate())
}

func TestUser_JSONIsFlat(t *testing.T) {
	raw, err := json.Marshal(User{
		ID:        1,
		UserInput: UserInput{FirstName: "A", LastName: "B", Email: "a@b.com", PasswordHash: "x"},
	})
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "A", body["first_name"])
	assert.Equal(t, false, body["verified"])
	assert.Equal(t, false, body["private"])
	assert.Nil(t, body["phone"])
	assert.NotContains(t, body, "UserInput")
}
