package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewRequest struct {
	Status     string `json:"status" validate:"required,is-claim-status"`
	ReviewerID string `json:"reviewerId" validate:"required"`
	Amount     string `json:"claimAmount" validate:"omitempty,decimal-amount"`
}

func TestValidator_CustomRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&reviewRequest{Status: "in-review", ReviewerID: "a1", Amount: "1500.00"}))

	err := v.Validate(&reviewRequest{Status: "closed", Amount: "-3"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "status")
	assert.Contains(t, vErr.Errors, "reviewerId")
	assert.Contains(t, vErr.Errors, "claimAmount")
	assert.Equal(t, "This field is required", vErr.Errors["reviewerId"])
}

func TestIsPositiveDecimal(t *testing.T) {
	for _, ok := range []string{"1500.00", "1", "0.5", "12.3"} {
		assert.True(t, IsPositiveDecimal(ok), ok)
	}
	for _, bad := range []string{"", "0", "0.00", "-1", "1,500.00", "1.234", "abc", "1e3"} {
		assert.False(t, IsPositiveDecimal(bad), bad)
	}
}
