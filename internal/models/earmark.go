package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Earmark is a fund binding: a restricted-purpose classification of bookings.
// Its usage is always computed from the bookings that reference it.
type Earmark struct {
	DefaultModel
	OrganizationID uuid.UUID    `json:"organizationId" gorm:"type:uuid;uniqueIndex:idx_earmark_code"`
	Organization   Organization `json:"-"`
	Code           string       `json:"code" gorm:"uniqueIndex:idx_earmark_code"`
	Name           string       `json:"name"`
	Color          string       `json:"color"`
	Active         bool         `json:"active"`
}

func (e *Earmark) BeforeSave(_ *gorm.DB) error {
	trim(&e.Code, &e.Name, &e.Color)

	if e.Code == "" {
		return Validationf("the earmark code must not be empty")
	}

	return nil
}

func (Earmark) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[Earmark](db, byOrganization(organizationID))
}
