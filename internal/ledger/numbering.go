package ledger

import (
	"context"
	"errors"

	"github.com/clubledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nextVoucherNumber returns the number for the next voucher of the organization in the year.
//
// It is one above both the highest existing number and the highest number ever
// assigned, so that deleting the last voucher does not free its number.
var nextVoucherNumber = func(tx *gorm.DB, organizationID uuid.UUID, year int) (int, error) {
	var highest int
	err := tx.Model(&models.Voucher{}).
		Where("organization_id = ? AND year = ?", organizationID, year).
		Select("COALESCE(MAX(number), 0)").
		Scan(&highest).Error
	if err != nil {
		return 0, err
	}

	var sequence models.VoucherSequence
	err = tx.Where("organization_id = ? AND year = ?", organizationID, year).Limit(1).Find(&sequence).Error
	if err != nil {
		return 0, err
	}

	if sequence.LastNumber > highest {
		highest = sequence.LastNumber
	}

	return highest + 1, nil
}

// recordNumber raises the high-water mark of the year to the number.
func recordNumber(tx *gorm.DB, organizationID uuid.UUID, year, number int) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_number", "updated_at"}),
	}).Create(&models.VoucherSequence{
		OrganizationID: organizationID,
		Year:           year,
		LastNumber:     number,
	}).Error
}

// assignNumber sets the next number of the voucher's year on the voucher.
func assignNumber(tx *gorm.DB, voucher *models.Voucher) error {
	year := voucher.Date.Year()
	number, err := nextVoucherNumber(tx, voucher.OrganizationID, year)
	if err != nil {
		return err
	}

	voucher.Number = number
	voucher.Year = year
	return recordNumber(tx, voucher.OrganizationID, year, number)
}

// numbered runs fn in a transaction and retries the whole transaction if a
// voucher number was taken concurrently.
//
// Conflicts are detected by the unique index on (organization, year, number).
// After MaxRetries retries, the conflict is returned.
func (l *Ledger) numbered(ctx context.Context, organizationID uuid.UUID, fn func(tx *gorm.DB) error) (err error) {
	retries := l.MaxRetries
	if retries < 0 {
		retries = 0
	}

	for attempt := 0; attempt <= retries; attempt++ {
		err = l.transaction(ctx, fn)
		if !errors.Is(err, models.ErrVoucherNumberNotUnique) {
			return err
		}

		numberingConflicts.Inc()
		log.Warn().
			Str("organization", organizationID.String()).
			Int("attempt", attempt+1).
			Msg("voucher number conflict")
	}

	return err
}
