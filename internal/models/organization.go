package models

import (
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Organization is the tenancy boundary of the ledger.
// No resource is ever read or written across organizations.
type Organization struct {
	DefaultModel
	Name     string `json:"name" gorm:"uniqueIndex:idx_organization_name"`
	Currency string `json:"currency"` // ISO 4217 code used to display amounts
}

func (o *Organization) BeforeSave(_ *gorm.DB) error {
	trim(&o.Name, &o.Currency)
	o.Currency = strings.ToUpper(o.Currency)

	if o.Name == "" {
		return Validationf("the organization name must not be empty")
	}

	if _, err := currency.ParseISO(o.Currency); err != nil {
		return Validationf("'%s' is not an ISO 4217 currency code", o.Currency)
	}

	return nil
}
