package catalog

import (
	"regexp"
	"strings"

	"realty/pkg/model"
)

var (
	ownerNameRegex = regexp.MustCompile(`^[A-Za-z]+\s[A-Za-z]+$`)
	emailRegex     = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)
)

// validateSaleData checks the shared sale payload. Rules run in a fixed
// order and the first violation fails the whole operation.
func validateSaleData(d model.SaleData) error {
	if d == (model.SaleData{}) {
		return model.NewValidationError("data is required")
	}
	if err := validateCommon(d.Address, d.OwnerFullName, d.Email, d.Area); err != nil {
		return err
	}
	if d.FullPrice <= 0 {
		return model.NewValidationError("fullPrice must be greater than 0")
	}
	return nil
}

// validateRentData checks the shared rent payload.
func validateRentData(d model.RentData) error {
	if d == (model.RentData{}) {
		return model.NewValidationError("data is required")
	}
	if err := validateCommon(d.Address, d.OwnerFullName, d.Email, d.Area); err != nil {
		return err
	}
	if d.RentPrice <= 0 {
		return model.NewValidationError("rentPrice must be greater than 0")
	}
	if d.MortgagePrice < 0 {
		return model.NewValidationError("mortgagePrice cannot be negative")
	}
	return nil
}

func validateCommon(address, owner, email string, area float64) error {
	if strings.TrimSpace(address) == "" {
		return model.NewValidationError("address is required")
	}
	if strings.TrimSpace(owner) == "" {
		return model.NewValidationError("Owner Full Name is required")
	}
	if !ownerNameRegex.MatchString(owner) {
		return model.NewValidationError("Owner Full Name must be in format 'FirstName LastName' (only letters, exactly one space)")
	}
	if !emailRegex.MatchString(email) {
		return model.NewValidationError("email is invalid")
	}
	if area <= 0 {
		return model.NewValidationError("area must be greater than 0")
	}
	return nil
}

// validateLandUse checks the land-only usage enum, independently of the
// payload rules.
func validateLandUse(whatUse string) error {
	if whatUse == "" {
		return model.NewValidationError("whatUse is required for land and must be 'residential' or 'commercial'")
	}
	switch strings.ToLower(strings.TrimSpace(whatUse)) {
	case "residential", "commercial":
		return nil
	}
	return model.NewValidationError("Invalid whatUse for land. Allowed: residential, commercial")
}
