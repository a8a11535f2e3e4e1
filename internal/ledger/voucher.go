package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingLine is the input for one booking of a voucher.
type BookingLine struct {
	AccountID uuid.UUID    `json:"accountId" example:"a4b3ad4a-0e2b-4f77-a1e5-0a3a5a5d1c4e"` // Account the line is posted to
	Debit     *types.Money `json:"debit,omitempty" example:"100.00"`                         // Debit amount. Exactly one of debit and credit must be set
	Credit    *types.Money `json:"credit,omitempty" example:"100.00"`                        // Credit amount. Exactly one of debit and credit must be set
	Memo      string       `json:"memo" example:"Hall rent March"`
	TaxCode   string       `json:"taxCode" example:"VAT19"`
	EarmarkID *uuid.UUID   `json:"earmarkId,omitempty"`
	BudgetID  *uuid.UUID   `json:"budgetId,omitempty"`
	TagIDs    []uuid.UUID  `json:"tagIds,omitempty"`
}

// VoucherInput is the input for creating a voucher.
type VoucherInput struct {
	Date          time.Time            `json:"date" example:"2024-03-01T00:00:00Z"` // Date of the voucher. Only the calendar day is used
	Type          models.VoucherType   `json:"type" example:"RECEIPT"`
	Description   string               `json:"description" example:"Hall rent"`
	Counterparty  string               `json:"counterparty" example:"Town hall"`
	Sphere        models.Sphere        `json:"sphere" example:"IDEAL"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" example:"BANK"`
	Lines         []BookingLine        `json:"lines"`
}

// VoucherUpdate holds the changes for a voucher. Nil fields are not changed.
type VoucherUpdate struct {
	Date          *time.Time            `json:"date,omitempty"`
	Type          *models.VoucherType   `json:"type,omitempty"`
	Description   *string               `json:"description,omitempty"`
	Counterparty  *string               `json:"counterparty,omitempty"`
	Sphere        *models.Sphere        `json:"sphere,omitempty"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod,omitempty"`
	Lines         []BookingLine         `json:"lines,omitempty"` // Replaces all bookings if set
}

// checkHeader validates the voucher fields that are not checked by the model.
func checkHeader(v models.Voucher) error {
	if v.Date.IsZero() {
		return models.Validationf("the voucher date must be set")
	}

	if !v.Type.Valid() {
		return models.Validationf("'%s' is not a valid voucher type", v.Type)
	}

	if !v.Sphere.Valid() {
		return models.Validationf("'%s' is not a valid sphere", v.Sphere)
	}

	if !v.PaymentMethod.Valid() {
		return models.Validationf("'%s' is not a valid payment method", v.PaymentMethod)
	}

	return nil
}

// resolver loads the resources referenced by booking lines, each at most once.
type resolver struct {
	tx             *gorm.DB
	organizationID uuid.UUID
	accounts       map[uuid.UUID]models.Account
	earmarks       map[uuid.UUID]bool
	budgets        map[uuid.UUID]bool
	tags           map[uuid.UUID]models.Tag
}

func newResolver(tx *gorm.DB, organizationID uuid.UUID) *resolver {
	return &resolver{
		tx:             tx,
		organizationID: organizationID,
		accounts:       make(map[uuid.UUID]models.Account),
		earmarks:       make(map[uuid.UUID]bool),
		budgets:        make(map[uuid.UUID]bool),
		tags:           make(map[uuid.UUID]models.Tag),
	}
}

func (r *resolver) account(id uuid.UUID) (models.Account, error) {
	if account, ok := r.accounts[id]; ok {
		return account, nil
	}

	account, err := ownedBy[models.Account](r.tx, r.organizationID, id)
	if err != nil {
		return models.Account{}, err
	}

	r.accounts[id] = account
	return account, nil
}

func (r *resolver) earmark(id uuid.UUID) error {
	if r.earmarks[id] {
		return nil
	}

	_, err := ownedBy[models.Earmark](r.tx, r.organizationID, id)
	if err != nil {
		return err
	}

	r.earmarks[id] = true
	return nil
}

func (r *resolver) budget(id uuid.UUID) error {
	if r.budgets[id] {
		return nil
	}

	_, err := ownedBy[models.Budget](r.tx, r.organizationID, id)
	if err != nil {
		return err
	}

	r.budgets[id] = true
	return nil
}

func (r *resolver) tag(id uuid.UUID) (models.Tag, error) {
	if tag, ok := r.tags[id]; ok {
		return tag, nil
	}

	tag, err := ownedBy[models.Tag](r.tx, r.organizationID, id)
	if err != nil {
		return models.Tag{}, err
	}

	r.tags[id] = tag
	return tag, nil
}

// bookings validates the lines and converts them to bookings.
//
// Every line must have exactly one positive side, all references must belong
// to the organization and the lines must balance. With requireActive, lines on
// inactive accounts are rejected.
func bookings(tx *gorm.DB, organizationID uuid.UUID, lines []BookingLine, requireActive bool) ([]models.Booking, error) {
	if len(lines) == 0 {
		return nil, models.Validationf("a voucher needs at least one booking line")
	}

	r := newResolver(tx, organizationID)
	result := make([]models.Booking, 0, len(lines))
	var debit, credit types.Money

	for i, line := range lines {
		booking := models.Booking{
			Position:  i + 1,
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
			Memo:      line.Memo,
			TaxCode:   line.TaxCode,
			EarmarkID: line.EarmarkID,
			BudgetID:  line.BudgetID,
		}

		if err := booking.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		account, err := r.account(line.AccountID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		if requireActive && !account.Active {
			return nil, models.Validationf("line %d: account %s is inactive", i+1, account.Number)
		}

		if line.EarmarkID != nil && *line.EarmarkID != uuid.Nil {
			if err := r.earmark(*line.EarmarkID); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}

		if line.BudgetID != nil && *line.BudgetID != uuid.Nil {
			if err := r.budget(*line.BudgetID); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}

		seen := make(map[uuid.UUID]bool)
		for _, id := range line.TagIDs {
			if seen[id] {
				continue
			}
			seen[id] = true

			tag, err := r.tag(id)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			booking.Tags = append(booking.Tags, tag)
		}

		if booking.Debit != nil {
			debit, err = debit.Add(*booking.Debit)
		} else {
			credit, err = credit.Add(*booking.Credit)
		}
		if err != nil {
			return nil, models.Validationf("line %d: %v", i+1, err)
		}

		result = append(result, booking)
	}

	if debit != credit {
		return nil, models.Validationf("the voucher is not balanced: debit %s, credit %s", debit, credit)
	}

	return result, nil
}

// lines converts bookings back to booking lines.
func lines(bookings []models.Booking) []BookingLine {
	result := make([]BookingLine, 0, len(bookings))
	for _, b := range bookings {
		line := BookingLine{
			AccountID: b.AccountID,
			Debit:     b.Debit,
			Credit:    b.Credit,
			Memo:      b.Memo,
			TaxCode:   b.TaxCode,
			EarmarkID: b.EarmarkID,
			BudgetID:  b.BudgetID,
		}

		for _, t := range b.Tags {
			line.TagIDs = append(line.TagIDs, t.ID)
		}

		result = append(result, line)
	}
	return result
}

// insertBookings creates the bookings for the voucher including their tag links.
func insertBookings(tx *gorm.DB, voucherID uuid.UUID, bookings []models.Booking) error {
	for i := range bookings {
		bookings[i].VoucherID = voucherID
	}

	return tx.Omit("Account", "Earmark", "Budget", "Tags.*").Create(&bookings).Error
}

// insertVoucher numbers and creates the voucher with its bookings.
func insertVoucher(tx *gorm.DB, voucher *models.Voucher, bookings []models.Booking) error {
	if err := checkHeader(*voucher); err != nil {
		return err
	}

	voucher.Date = models.Date(voucher.Date)
	if err := guardYear(tx, voucher.OrganizationID, voucher.Date.Year()); err != nil {
		return err
	}

	if err := assignNumber(tx, voucher); err != nil {
		return err
	}

	err := tx.Omit(clause.Associations).Create(voucher).Error
	if err != nil {
		return err
	}

	return insertBookings(tx, voucher.ID, bookings)
}

// loadVoucher loads the voucher with bookings, tags and attachments.
func loadVoucher(tx *gorm.DB, organizationID, id uuid.UUID) (models.Voucher, error) {
	var voucher models.Voucher
	err := tx.
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("bookings.position ASC")
		}).
		Preload("Bookings.Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name ASC")
		}).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("attachments.created_at ASC")
		}).
		Where("vouchers.id = ? AND vouchers.organization_id = ?", id, organizationID).
		First(&voucher).Error

	return voucher, err
}

// CreateVoucher validates and creates a voucher with its bookings.
//
// The voucher gets the next number of its year. If the number was taken by a
// concurrent creation, the whole creation is retried.
func (l *Ledger) CreateVoucher(ctx context.Context, organizationID uuid.UUID, in VoucherInput) (models.Voucher, error) {
	var id uuid.UUID

	err := l.numbered(ctx, organizationID, func(tx *gorm.DB) error {
		if _, err := organization(tx, organizationID); err != nil {
			return err
		}

		voucher := models.Voucher{
			OrganizationID: organizationID,
			Date:           in.Date,
			Type:           in.Type,
			Description:    in.Description,
			Counterparty:   in.Counterparty,
			Sphere:         in.Sphere,
			PaymentMethod:  in.PaymentMethod,
		}

		if err := checkHeader(voucher); err != nil {
			return err
		}

		b, err := bookings(tx, organizationID, in.Lines, true)
		if err != nil {
			return err
		}

		if err := insertVoucher(tx, &voucher, b); err != nil {
			return err
		}

		created, err := loadVoucher(tx, organizationID, voucher.ID)
		if err != nil {
			return err
		}

		id = created.ID
		return audit(ctx, tx, organizationID, ActionVoucherCreate, "voucher", created.ID.String(), created)
	})
	if err != nil {
		return models.Voucher{}, err
	}

	vouchersCreated.Inc()
	return l.GetVoucher(ctx, organizationID, id)
}

// ReverseVoucher creates a voucher mirroring all bookings of the voucher.
//
// The reversal is dated today. Its year must be open, the year of the
// reversed voucher may be closed. A voucher can only be reversed once.
func (l *Ledger) ReverseVoucher(ctx context.Context, organizationID, id uuid.UUID) (models.Voucher, error) {
	var reversalID uuid.UUID

	err := l.numbered(ctx, organizationID, func(tx *gorm.DB) error {
		original, err := loadVoucher(tx, organizationID, id)
		if err != nil {
			return err
		}

		var reversals int64
		err = tx.Model(&models.Voucher{}).Where("reversal_of_id = ?", original.ID).Count(&reversals).Error
		if err != nil {
			return err
		}

		if reversals > 0 {
			return models.Validationf("voucher %s has already been reversed", original.Reference())
		}

		mirrored := make([]models.Booking, 0, len(original.Bookings))
		for _, b := range original.Bookings {
			mirrored = append(mirrored, b.Mirror())
		}

		// Accounts deactivated after posting stay usable for reversals
		b, err := bookings(tx, organizationID, lines(mirrored), false)
		if err != nil {
			return err
		}

		reversal := models.Voucher{
			OrganizationID: organizationID,
			Date:           l.today(),
			Type:           original.Type,
			Description:    fmt.Sprintf("Reversal of #%s: %s", original.Reference(), original.Description),
			Counterparty:   original.Counterparty,
			Sphere:         original.Sphere,
			PaymentMethod:  original.PaymentMethod,
			ReversalOfID:   &original.ID,
		}

		if err := insertVoucher(tx, &reversal, b); err != nil {
			return err
		}

		created, err := loadVoucher(tx, organizationID, reversal.ID)
		if err != nil {
			return err
		}

		reversalID = created.ID
		return audit(ctx, tx, organizationID, ActionVoucherReverse, "voucher", created.ID.String(), map[string]any{
			"reversed": original.ID,
			"reversal": created,
		})
	})
	if err != nil {
		return models.Voucher{}, err
	}

	vouchersCreated.Inc()
	return l.GetVoucher(ctx, organizationID, reversalID)
}

// UpdateVoucher changes the voucher.
//
// Both the current and the target year of the voucher must be open. If the date
// moves the voucher into another year, it gets the next number of that year.
func (l *Ledger) UpdateVoucher(ctx context.Context, organizationID, id uuid.UUID, in VoucherUpdate) (models.Voucher, error) {
	err := l.numbered(ctx, organizationID, func(tx *gorm.DB) error {
		voucher, err := loadVoucher(tx, organizationID, id)
		if err != nil {
			return err
		}
		before := voucher

		if err := guardYear(tx, organizationID, voucher.Year); err != nil {
			return err
		}

		if in.Date != nil {
			voucher.Date = models.Date(*in.Date)
		}

		if in.Type != nil {
			voucher.Type = *in.Type
		}

		if in.Description != nil {
			voucher.Description = *in.Description
		}

		if in.Counterparty != nil {
			voucher.Counterparty = *in.Counterparty
		}

		if in.Sphere != nil {
			voucher.Sphere = *in.Sphere
		}

		if in.PaymentMethod != nil {
			voucher.PaymentMethod = *in.PaymentMethod
		}

		if err := checkHeader(voucher); err != nil {
			return err
		}

		var replacement []models.Booking
		if in.Lines != nil {
			replacement, err = bookings(tx, organizationID, in.Lines, true)
			if err != nil {
				return err
			}
		}

		if year := voucher.Date.Year(); year != before.Year {
			if err := guardYear(tx, organizationID, year); err != nil {
				return err
			}

			if err := assignNumber(tx, &voucher); err != nil {
				return err
			}
		}

		err = tx.Omit(clause.Associations).Save(&voucher).Error
		if err != nil {
			return err
		}

		if replacement != nil {
			err = tx.Where("voucher_id = ?", voucher.ID).Delete(&models.Booking{}).Error
			if err != nil {
				return err
			}

			if err := insertBookings(tx, voucher.ID, replacement); err != nil {
				return err
			}
		}

		after, err := loadVoucher(tx, organizationID, voucher.ID)
		if err != nil {
			return err
		}

		return audit(ctx, tx, organizationID, ActionVoucherUpdate, "voucher", voucher.ID.String(), map[string]any{
			"before": before,
			"after":  after,
		})
	})
	if err != nil {
		return models.Voucher{}, err
	}

	return l.GetVoucher(ctx, organizationID, id)
}

// DeleteVoucher deletes the voucher with its bookings and attachments.
// The audit log keeps a snapshot of the deleted voucher.
func (l *Ledger) DeleteVoucher(ctx context.Context, organizationID, id uuid.UUID) error {
	return l.transaction(ctx, func(tx *gorm.DB) error {
		voucher, err := loadVoucher(tx, organizationID, id)
		if err != nil {
			return err
		}

		if err := guardYear(tx, organizationID, voucher.Year); err != nil {
			return err
		}

		// Bookings, their tag links and attachments are removed by the foreign keys
		err = tx.Delete(&voucher).Error
		if err != nil {
			return err
		}

		log.Info().
			Str("organization", organizationID.String()).
			Str("voucher", voucher.Reference()).
			Msg("voucher deleted")

		return audit(ctx, tx, organizationID, ActionVoucherDelete, "voucher", voucher.ID.String(), voucher)
	})
}

// GetVoucher returns the voucher with bookings, tags and attachments.
func (l *Ledger) GetVoucher(ctx context.Context, organizationID, id uuid.UUID) (models.Voucher, error) {
	return loadVoucher(l.db(ctx), organizationID, id)
}

// VoucherFilter restricts voucher listings. Unset fields do not restrict.
type VoucherFilter struct {
	Year          *int                 `form:"year"`
	From          *time.Time           `form:"from" time_format:"2006-01-02"`
	Until         *time.Time           `form:"until" time_format:"2006-01-02"`
	Type          models.VoucherType   `form:"type"`
	Sphere        models.Sphere        `form:"sphere"`
	PaymentMethod models.PaymentMethod `form:"paymentMethod"`
	Search        string               `form:"search"` // Matches description, counterparty and booking memos
	TagID         *uuid.UUID           `form:"tag"`
	EarmarkID     *uuid.UUID           `form:"earmark"`
	BudgetID      *uuid.UUID           `form:"budget"`
	AccountID     *uuid.UUID           `form:"account"`
}

// VoucherPage is a page of vouchers with the total count of matching vouchers.
type VoucherPage struct {
	Vouchers []models.Voucher `json:"vouchers"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}

// like returns a case insensitive LIKE pattern for the search term.
func like(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(strings.TrimSpace(search)))
	return "%" + escaped + "%"
}

// ListVouchers returns the vouchers matching the filter, newest first.
func (l *Ledger) ListVouchers(ctx context.Context, organizationID uuid.UUID, filter VoucherFilter, page Page) (VoucherPage, error) {
	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return VoucherPage{}, err
	}

	if filter.Type != "" && !filter.Type.Valid() {
		return VoucherPage{}, models.Validationf("'%s' is not a valid voucher type", filter.Type)
	}

	if !filter.Sphere.Valid() {
		return VoucherPage{}, models.Validationf("'%s' is not a valid sphere", filter.Sphere)
	}

	if !filter.PaymentMethod.Valid() {
		return VoucherPage{}, models.Validationf("'%s' is not a valid payment method", filter.PaymentMethod)
	}

	q := db.Model(&models.Voucher{}).Where("vouchers.organization_id = ?", organizationID)

	if filter.Year != nil {
		q = q.Where("vouchers.year = ?", *filter.Year)
	}

	if filter.From != nil {
		q = q.Where("vouchers.date >= ?", models.Date(*filter.From))
	}

	if filter.Until != nil {
		q = q.Where("vouchers.date < ?", models.Date(*filter.Until).AddDate(0, 0, 1))
	}

	if filter.Type != "" {
		q = q.Where("vouchers.type = ?", filter.Type)
	}

	if filter.Sphere != "" {
		q = q.Where("vouchers.sphere = ?", filter.Sphere)
	}

	if filter.PaymentMethod != "" {
		q = q.Where("vouchers.payment_method = ?", filter.PaymentMethod)
	}

	if strings.TrimSpace(filter.Search) != "" {
		pattern := like(filter.Search)
		memos := db.Model(&models.Booking{}).Select("voucher_id").Where(`LOWER(memo) LIKE ? ESCAPE '\'`, pattern)
		q = q.Where(
			db.Where(`LOWER(vouchers.description) LIKE ? ESCAPE '\'`, pattern).
				Or(`LOWER(vouchers.counterparty) LIKE ? ESCAPE '\'`, pattern).
				Or("vouchers.id IN (?)", memos),
		)
	}

	if filter.TagID != nil {
		tagged := db.Table("booking_tags").
			Select("bookings.voucher_id").
			Joins("JOIN bookings ON bookings.id = booking_tags.booking_id").
			Where("booking_tags.tag_id = ?", *filter.TagID)
		q = q.Where("vouchers.id IN (?)", tagged)
	}

	if filter.EarmarkID != nil {
		q = q.Where("vouchers.id IN (?)", db.Model(&models.Booking{}).Select("voucher_id").Where("earmark_id = ?", *filter.EarmarkID))
	}

	if filter.BudgetID != nil {
		q = q.Where("vouchers.id IN (?)", db.Model(&models.Booking{}).Select("voucher_id").Where("budget_id = ?", *filter.BudgetID))
	}

	if filter.AccountID != nil {
		q = q.Where("vouchers.id IN (?)", db.Model(&models.Booking{}).Select("voucher_id").Where("account_id = ?", *filter.AccountID))
	}

	q = q.Session(&gorm.Session{})

	var total int64
	err := q.Count(&total).Error
	if err != nil {
		return VoucherPage{}, err
	}

	vouchers := make([]models.Voucher, 0)
	err = q.
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("bookings.position ASC")
		}).
		Preload("Bookings.Tags").
		Preload("Attachments").
		Order("vouchers.date DESC, vouchers.number DESC, vouchers.id DESC").
		Offset(page.offset()).
		Limit(page.limit()).
		Find(&vouchers).Error
	if err != nil {
		return VoucherPage{}, err
	}

	return VoucherPage{
		Vouchers: vouchers,
		Total:    total,
		Offset:   page.offset(),
		Limit:    page.limit(),
	}, nil
}

// AttachmentInput is the metadata of a file attached to a voucher.
type AttachmentInput struct {
	Filename    string `json:"filename" example:"receipt.pdf"`
	MimeType    string `json:"mimeType" example:"application/pdf"`
	Size        int64  `json:"size" example:"48213"`
	StoragePath string `json:"storagePath" example:"2024/03/receipt.pdf"`
}

// AddAttachment records the metadata of a file for the voucher.
func (l *Ledger) AddAttachment(ctx context.Context, organizationID, voucherID uuid.UUID, in AttachmentInput) (models.Attachment, error) {
	attachment := models.Attachment{
		VoucherID:   voucherID,
		Filename:    in.Filename,
		MimeType:    in.MimeType,
		Size:        in.Size,
		StoragePath: in.StoragePath,
	}

	err := l.transaction(ctx, func(tx *gorm.DB) error {
		voucher, err := ownedBy[models.Voucher](tx, organizationID, voucherID)
		if err != nil {
			return err
		}

		if err := guardYear(tx, organizationID, voucher.Year); err != nil {
			return err
		}

		err = tx.Create(&attachment).Error
		if err != nil {
			return err
		}

		return audit(ctx, tx, organizationID, ActionAttachmentCreate, "attachment", attachment.ID.String(), attachment)
	})
	if err != nil {
		return models.Attachment{}, err
	}

	return attachment, nil
}

// DeleteAttachment removes the attachment metadata.
func (l *Ledger) DeleteAttachment(ctx context.Context, organizationID, id uuid.UUID) error {
	return l.transaction(ctx, func(tx *gorm.DB) error {
		var attachment models.Attachment
		err := tx.
			Joins("JOIN vouchers ON vouchers.id = attachments.voucher_id").
			Where("attachments.id = ? AND vouchers.organization_id = ?", id, organizationID).
			First(&attachment).Error
		if err != nil {
			return err
		}

		var voucher models.Voucher
		err = tx.First(&voucher, "id = ?", attachment.VoucherID).Error
		if err != nil {
			return err
		}

		if err := guardYear(tx, organizationID, voucher.Year); err != nil {
			return err
		}

		err = tx.Delete(&attachment).Error
		if err != nil {
			return err
		}

		return audit(ctx, tx, organizationID, ActionAttachmentDelete, "attachment", attachment.ID.String(), attachment)
	})
}
