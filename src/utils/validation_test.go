package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleBody struct {
	PickupLocation string `json:"pickupLocation" binding:"required" validate:"required"`
	ReturnLocation string `json:"returnLocation" binding:"required" validate:"required"`
	UserID         uint   `json:"user_id" binding:"required" validate:"required"`
}

func TestMissingRequiredFieldsListsAll(t *testing.T) {
	v := validator.New()
	err := v.Struct(&sampleBody{})
	assert.Error(t, err)

	missing := MissingRequiredFields(err, &sampleBody{})
	assert.ElementsMatch(t, []string{"pickupLocation", "returnLocation", "user_id"}, missing)
}

func TestMissingRequiredFieldsPartial(t *testing.T) {
	v := validator.New()
	err := v.Struct(&sampleBody{PickupLocation: "Airport", UserID: 7})
	assert.Error(t, err)

	missing := MissingRequiredFields(err, &sampleBody{})
	assert.Equal(t, []string{"returnLocation"}, missing)
}

func TestMissingRequiredFieldsNonValidatorError(t *testing.T) {
	assert.Nil(t, MissingRequiredFields(errors.New("unexpected EOF"), &sampleBody{}))
}
