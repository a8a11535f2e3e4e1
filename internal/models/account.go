package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountType is the class of an account in the chart of accounts.
//
// swagger:enum AccountType
type AccountType string

const (
	AccountAsset     AccountType = "ASSET"
	AccountLiability AccountType = "LIABILITY"
	AccountIncome    AccountType = "INCOME"
	AccountExpense   AccountType = "EXPENSE"
)

// Valid reports whether the account type is known.
func (t AccountType) Valid() bool {
	switch t {
	case AccountAsset, AccountLiability, AccountIncome, AccountExpense:
		return true
	}
	return false
}

// Account is an account of the chart of accounts that bookings are posted to.
type Account struct {
	DefaultModel
	OrganizationID uuid.UUID    `json:"organizationId" gorm:"type:uuid;uniqueIndex:idx_account_number"`
	Organization   Organization `json:"-"`
	Number         string       `json:"number" gorm:"uniqueIndex:idx_account_number"`
	Name           string       `json:"name"`
	Type           AccountType  `json:"type"`
	Active         bool         `json:"active"`
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	trim(&a.Number, &a.Name)

	if a.Number == "" {
		return Validationf("the account number must not be empty")
	}

	if !a.Type.Valid() {
		return Validationf("'%s' is not a valid account type", a.Type)
	}

	return nil
}

// IsReferenced reports whether any booking is posted to the account.
func (a Account) IsReferenced(db *gorm.DB) (bool, error) {
	var count int64
	err := db.Model(&Booking{}).Where(&Booking{AccountID: a.ID}).Count(&count).Error
	return count > 0, err
}

func (Account) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[Account](db, byOrganization(organizationID))
}
