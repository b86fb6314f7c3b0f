package validator

import (
	"log"
	"regexp"
	"strconv"

	"insurance_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var decimalPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-claim-status", validateClaimStatus)
	mustRegister("is-policy-status", validatePolicyStatus)
	mustRegister("is-account-role", validateAccountRole)
	mustRegister("decimal-amount", validateDecimalAmount)
}

// Empty values pass every rule below; 'required' covers presence.

func validateClaimStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.ClaimStatus(value).IsValid()
}

func validatePolicyStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.PolicyStatus(value).IsValid()
}

func validateAccountRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.AccountRole(value).IsValid()
}

// IsPositiveDecimal reports whether s is a plain decimal with at most two
// fraction digits and a value above zero.
func IsPositiveDecimal(s string) bool {
	if !decimalPattern.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f > 0
}

func validateDecimalAmount(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || IsPositiveDecimal(value)
}
