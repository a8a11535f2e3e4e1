package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	DefaultModel
	OrganizationID uuid.UUID `json:"organizationId" gorm:"type:uuid;uniqueIndex:idx_tag_name"`
	Name           string    `json:"name" gorm:"uniqueIndex:idx_tag_name"`
	Color          string    `json:"color"`
}

func (t *Tag) BeforeSave(_ *gorm.DB) error {
	trim(&t.Name, &t.Color)

	if t.Name == "" {
		return Validationf("the tag name must not be empty")
	}
	return nil
}

func (Tag) Export(db *gorm.DB, organizationID uuid.UUID) (json.RawMessage, error) {
	return exportWhere[Tag](db, byOrganization(organizationID))
}
