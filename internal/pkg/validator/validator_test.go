package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Date   string `validate:"required,isodate"`
	Rating int    `validate:"min=1,max=5"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Date: "2025-06-01", Rating: 5}))

	errs := Validate(sample{Date: "06/01/2025", Rating: 9})
	assert.Equal(t, "isodate", errs["Date"])
	assert.Equal(t, "max", errs["Rating"])
}
