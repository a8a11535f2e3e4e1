package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is implemented by all models that are part of an organization export.
type Model interface {
	Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) // All instances of this model for the organization
}

// The "Registry" is a slice of all models available
//
// It is maintained so that operations that affect all models do not need to explicitly iterate over every single model,
// increasing the risk of forgetting something when adding a new model
var Registry = []Model{
	Account{},
	Attachment{},
	AuditLog{},
	Booking{},
	Budget{},
	Earmark{},
	FiscalYear{},
	Invoice{},
	InvoicePayment{},
	Member{},
	MemberPayment{},
	Tag{},
	Voucher{},
}

// exportWhere marshals all resources of type T matching the scope.
func exportWhere[T any](db *gorm.DB, scope func(*gorm.DB) *gorm.DB) (json.RawMessage, error) {
	var resources []T

	err := scope(db.Model(new(T))).Find(&resources).Error
	if err != nil {
		return nil, err
	}

	return json.Marshal(resources)
}

// byOrganization scopes a query to the organization_id column of the queried table.
func byOrganization(organizationID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organization_id = ?", organizationID)
	}
}

// byVoucherOrganization scopes a query on a table with a voucher_id column
// to the vouchers of the organization.
func byVoucherOrganization(table string, organizationID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN vouchers ON vouchers.id = "+table+".voucher_id").
			Where("vouchers.organization_id = ?", organizationID)
	}
}
