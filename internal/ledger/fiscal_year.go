package ledger

import (
	"context"
	"strconv"
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// YearStatus is the lock state of a fiscal year.
type YearStatus struct {
	Year     int        `json:"year" yaml:"year" example:"2024"`
	Closed   bool       `json:"closed" yaml:"closed"`
	ClosedAt *time.Time `json:"closedAt" yaml:"closedAt,omitempty"`
}

func yearStatus(tx *gorm.DB, organizationID uuid.UUID, year int) (YearStatus, error) {
	var fy models.FiscalYear
	err := tx.Where("organization_id = ? AND year = ?", organizationID, year).Limit(1).Find(&fy).Error
	if err != nil {
		return YearStatus{}, err
	}

	return YearStatus{Year: year, Closed: fy.Closed, ClosedAt: fy.ClosedAt}, nil
}

// FiscalYearStatus returns the state of the year. Years without a status are open.
func (l *Ledger) FiscalYearStatus(ctx context.Context, organizationID uuid.UUID, year int) (YearStatus, error) {
	if err := validYear(year); err != nil {
		return YearStatus{}, err
	}

	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return YearStatus{}, err
	}

	return yearStatus(db, organizationID, year)
}

// ListFiscalYears returns the state of all years with vouchers or an explicit status.
func (l *Ledger) ListFiscalYears(ctx context.Context, organizationID uuid.UUID) ([]YearStatus, error) {
	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return nil, err
	}

	var voucherYears []int
	err := db.Model(&models.Voucher{}).Where("organization_id = ?", organizationID).Distinct().Pluck("year", &voucherYears).Error
	if err != nil {
		return nil, err
	}

	var fiscalYears []models.FiscalYear
	err = db.Where("organization_id = ?", organizationID).Find(&fiscalYears).Error
	if err != nil {
		return nil, err
	}

	statuses := make(map[int]YearStatus)
	for _, year := range voucherYears {
		statuses[year] = YearStatus{Year: year}
	}

	for _, fy := range fiscalYears {
		statuses[fy.Year] = YearStatus{Year: fy.Year, Closed: fy.Closed, ClosedAt: fy.ClosedAt}
	}

	result := make([]YearStatus, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, s)
	}

	slices.SortFunc(result, func(a, b YearStatus) int {
		return a.Year - b.Year
	})

	return result, nil
}

// Totals are the sums of debits and credits. Net is credit minus debit.
type Totals struct {
	Debit  types.Money `json:"debit" yaml:"debit"`
	Credit types.Money `json:"credit" yaml:"credit"`
	Net    types.Money `json:"net" yaml:"net"`
}

func (t *Totals) add(b models.Booking) {
	if b.Debit != nil {
		t.Debit += *b.Debit
	}
	if b.Credit != nil {
		t.Credit += *b.Credit
	}
	t.Net = t.Credit - t.Debit
}

type SphereTotals struct {
	Sphere models.Sphere `json:"sphere"`
	Totals
}

type AccountTotals struct {
	AccountID uuid.UUID `json:"accountId"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	Totals
}

type EarmarkTotals struct {
	EarmarkID *uuid.UUID `json:"earmarkId"` // Nil for bookings without an earmark
	Code      string     `json:"code"`
	Totals
}

// Warning points to a voucher that needs attention before closing a year.
type Warning struct {
	VoucherID uuid.UUID `json:"voucherId"`
	Reference string    `json:"reference" example:"2024-17"`
	Message   string    `json:"message"`
}

// YearPreview summarizes a fiscal year before closing it.
type YearPreview struct {
	Year         int             `json:"year"`
	Closed       bool            `json:"closed"`
	VoucherCount int             `json:"voucherCount"`
	TotalDebit   types.Money     `json:"totalDebit"`
	TotalCredit  types.Money     `json:"totalCredit"`
	BySphere     []SphereTotals  `json:"bySphere"`
	ByAccount    []AccountTotals `json:"byAccount"`
	ByEarmark    []EarmarkTotals `json:"byEarmark"`
	Warnings     []Warning       `json:"warnings"`
}

// yearVouchers loads all vouchers of the year with their bookings in number order.
func yearVouchers(tx *gorm.DB, organizationID uuid.UUID, year int) ([]models.Voucher, error) {
	vouchers := make([]models.Voucher, 0)
	err := tx.
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("bookings.position ASC")
		}).
		Preload("Bookings.Tags").
		Where("organization_id = ? AND year = ?", organizationID, year).
		Order("number ASC").
		Find(&vouchers).Error

	return vouchers, err
}

// PreviewClose computes the totals of the year and lists vouchers that are
// unbalanced, have no bookings or post to inactive accounts.
func (l *Ledger) PreviewClose(ctx context.Context, organizationID uuid.UUID, year int) (YearPreview, error) {
	if err := validYear(year); err != nil {
		return YearPreview{}, err
	}

	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return YearPreview{}, err
	}

	status, err := yearStatus(db, organizationID, year)
	if err != nil {
		return YearPreview{}, err
	}

	vouchers, err := yearVouchers(db, organizationID, year)
	if err != nil {
		return YearPreview{}, err
	}

	var accounts []models.Account
	err = db.Where("organization_id = ?", organizationID).Find(&accounts).Error
	if err != nil {
		return YearPreview{}, err
	}

	var earmarks []models.Earmark
	err = db.Where("organization_id = ?", organizationID).Find(&earmarks).Error
	if err != nil {
		return YearPreview{}, err
	}

	accountByID := make(map[uuid.UUID]models.Account, len(accounts))
	for _, a := range accounts {
		accountByID[a.ID] = a
	}

	earmarkByID := make(map[uuid.UUID]models.Earmark, len(earmarks))
	for _, e := range earmarks {
		earmarkByID[e.ID] = e
	}

	preview := YearPreview{
		Year:         year,
		Closed:       status.Closed,
		VoucherCount: len(vouchers),
		BySphere:     make([]SphereTotals, 0),
		ByAccount:    make([]AccountTotals, 0),
		ByEarmark:    make([]EarmarkTotals, 0),
		Warnings:     make([]Warning, 0),
	}

	spheres := make(map[models.Sphere]*SphereTotals)
	byAccount := make(map[uuid.UUID]*AccountTotals)
	byEarmark := make(map[uuid.UUID]*EarmarkTotals)
	var unassigned *EarmarkTotals

	for _, v := range vouchers {
		debit, credit := v.Totals()
		preview.TotalDebit += debit
		preview.TotalCredit += credit

		if len(v.Bookings) == 0 {
			preview.Warnings = append(preview.Warnings, Warning{VoucherID: v.ID, Reference: v.Reference(), Message: "the voucher has no bookings"})
		} else if debit != credit {
			preview.Warnings = append(preview.Warnings, Warning{VoucherID: v.ID, Reference: v.Reference(), Message: "the voucher is not balanced: debit " + debit.String() + ", credit " + credit.String()})
		}

		if _, ok := spheres[v.Sphere]; !ok {
			spheres[v.Sphere] = &SphereTotals{Sphere: v.Sphere}
		}

		for _, b := range v.Bookings {
			spheres[v.Sphere].add(b)

			account := accountByID[b.AccountID]
			if _, ok := byAccount[b.AccountID]; !ok {
				byAccount[b.AccountID] = &AccountTotals{AccountID: b.AccountID, Number: account.Number, Name: account.Name}
			}
			byAccount[b.AccountID].add(b)

			if !account.Active {
				preview.Warnings = append(preview.Warnings, Warning{VoucherID: v.ID, Reference: v.Reference(), Message: "booking on inactive account " + account.Number})
			}

			if b.EarmarkID == nil {
				if unassigned == nil {
					unassigned = &EarmarkTotals{}
				}
				unassigned.add(b)
				continue
			}

			if _, ok := byEarmark[*b.EarmarkID]; !ok {
				id := *b.EarmarkID
				byEarmark[id] = &EarmarkTotals{EarmarkID: &id, Code: earmarkByID[id].Code}
			}
			byEarmark[*b.EarmarkID].add(b)
		}
	}

	for _, s := range spheres {
		preview.BySphere = append(preview.BySphere, *s)
	}
	slices.SortFunc(preview.BySphere, func(a, b SphereTotals) int {
		return compareStrings(string(a.Sphere), string(b.Sphere))
	})

	for _, a := range byAccount {
		preview.ByAccount = append(preview.ByAccount, *a)
	}
	slices.SortFunc(preview.ByAccount, func(a, b AccountTotals) int {
		return compareStrings(a.Number, b.Number)
	})

	for _, e := range byEarmark {
		preview.ByEarmark = append(preview.ByEarmark, *e)
	}
	slices.SortFunc(preview.ByEarmark, func(a, b EarmarkTotals) int {
		return compareStrings(a.Code, b.Code)
	})
	if unassigned != nil {
		preview.ByEarmark = append(preview.ByEarmark, *unassigned)
	}

	return preview, nil
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CloseYear locks the year against voucher mutations.
// Closing a closed year returns its status and changes nothing.
func (l *Ledger) CloseYear(ctx context.Context, organizationID uuid.UUID, year int) (YearStatus, error) {
	return l.setClosed(ctx, organizationID, year, true)
}

// ReopenYear unlocks the year. Reopening an open year returns its status and changes nothing.
func (l *Ledger) ReopenYear(ctx context.Context, organizationID uuid.UUID, year int) (YearStatus, error) {
	return l.setClosed(ctx, organizationID, year, false)
}

func (l *Ledger) setClosed(ctx context.Context, organizationID uuid.UUID, year int, closed bool) (status YearStatus, err error) {
	if err := validYear(year); err != nil {
		return YearStatus{}, err
	}

	err = l.transaction(ctx, func(tx *gorm.DB) error {
		if _, err := organization(tx, organizationID); err != nil {
			return err
		}

		status, err = yearStatus(tx, organizationID, year)
		if err != nil {
			return err
		}

		if status.Closed == closed {
			return nil
		}

		fy := models.FiscalYear{
			OrganizationID: organizationID,
			Year:           year,
			Closed:         closed,
		}

		action := ActionFiscalYearReopen
		if closed {
			now := l.Now().In(time.UTC)
			fy.ClosedAt = &now
			action = ActionFiscalYearClose
		}

		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "organization_id"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"closed", "closed_at", "updated_at"}),
		}).Create(&fy).Error
		if err != nil {
			return err
		}

		status = YearStatus{Year: year, Closed: fy.Closed, ClosedAt: fy.ClosedAt}

		log.Info().
			Str("organization", organizationID.String()).
			Int("year", year).
			Bool("closed", closed).
			Msg("fiscal year state changed")

		return audit(ctx, tx, organizationID, action, "fiscal_year", fiscalYearID(organizationID, year), status)
	})
	if err != nil {
		return YearStatus{}, err
	}

	return status, nil
}

// fiscalYearID is the entity ID of a fiscal year in the audit log.
func fiscalYearID(organizationID uuid.UUID, year int) string {
	return organizationID.String() + "/" + strconv.Itoa(year)
}
