package models

import (
	"encoding/json"

	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Budget is a spending plan for one fiscal year.
type Budget struct {
	DefaultModel
	OrganizationID uuid.UUID    `json:"organizationId" gorm:"type:uuid;uniqueIndex:idx_budget_label"`
	Organization   Organization `json:"-"`
	Label          string       `json:"label" gorm:"uniqueIndex:idx_budget_label"`
	Year           int          `json:"year" gorm:"uniqueIndex:idx_budget_label"`
	Ceiling        *types.Money `json:"ceiling"` // Optional upper limit for the spending
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	trim(&b.Label)

	if b.Label == "" {
		return Validationf("the budget label must not be empty")
	}

	if b.Year < 1900 || b.Year > 9999 {
		return Validationf("%d is not a valid fiscal year", b.Year)
	}

	if b.Ceiling != nil && *b.Ceiling < 0 {
		return Validationf("the budget ceiling must not be negative")
	}

	return nil
}

func (Budget) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[Budget](db, byOrganization(organizationID))
}
