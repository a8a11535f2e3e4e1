package ledger

import (
	"context"
	"encoding/json"
	"io"
	"reflect"
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Formats of a written year export.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// AmountView is an amount with its display string in the organization's currency.
type AmountView struct {
	Amount  types.Money `json:"amount" yaml:"amount" example:"100.00"`
	Display string      `json:"display" yaml:"display" example:"€100.00"`
}

func view(m types.Money, currency string) AmountView {
	return AmountView{Amount: m, Display: m.Format(currency)}
}

func viewPtr(m *types.Money, currency string) *AmountView {
	if m == nil {
		return nil
	}
	v := view(*m, currency)
	return &v
}

type ExportedBooking struct {
	Account     string      `json:"account" yaml:"account"`
	AccountName string      `json:"accountName" yaml:"accountName"`
	Debit       *AmountView `json:"debit,omitempty" yaml:"debit,omitempty"`
	Credit      *AmountView `json:"credit,omitempty" yaml:"credit,omitempty"`
	Memo        string      `json:"memo,omitempty" yaml:"memo,omitempty"`
	TaxCode     string      `json:"taxCode,omitempty" yaml:"taxCode,omitempty"`
	Earmark     string      `json:"earmark,omitempty" yaml:"earmark,omitempty"` // Code of the earmark
	Budget      string      `json:"budget,omitempty" yaml:"budget,omitempty"`   // Label of the budget
	Tags        []string    `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type ExportedVoucher struct {
	ID            uuid.UUID            `json:"id" yaml:"id"`
	Reference     string               `json:"reference" yaml:"reference"`
	Date          string               `json:"date" yaml:"date"`
	Type          models.VoucherType   `json:"type" yaml:"type"`
	Description   string               `json:"description" yaml:"description"`
	Counterparty  string               `json:"counterparty,omitempty" yaml:"counterparty,omitempty"`
	Sphere        models.Sphere        `json:"sphere,omitempty" yaml:"sphere,omitempty"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod,omitempty" yaml:"paymentMethod,omitempty"`
	ReversalOf    string               `json:"reversalOf,omitempty" yaml:"reversalOf,omitempty"` // Reference of the reversed voucher
	Attachments   int                  `json:"attachments" yaml:"attachments"`
	Bookings      []ExportedBooking    `json:"bookings" yaml:"bookings"`
}

type EarmarkSummary struct {
	Code   string     `json:"code" yaml:"code"`
	Name   string     `json:"name" yaml:"name"`
	Active bool       `json:"active" yaml:"active"`
	Credit AmountView `json:"credit" yaml:"credit"`
	Debit  AmountView `json:"debit" yaml:"debit"`
	Usage  AmountView `json:"usage" yaml:"usage"`
}

type BudgetSummary struct {
	Label     string      `json:"label" yaml:"label"`
	Usage     AmountView  `json:"usage" yaml:"usage"`
	Ceiling   *AmountView `json:"ceiling,omitempty" yaml:"ceiling,omitempty"`
	Remaining *AmountView `json:"remaining,omitempty" yaml:"remaining,omitempty"`
}

// YearExport is a read-only snapshot of one fiscal year.
type YearExport struct {
	Organization string            `json:"organization" yaml:"organization"`
	Currency     string            `json:"currency" yaml:"currency"`
	Status       YearStatus        `json:"status" yaml:"status"`
	GeneratedAt  time.Time         `json:"generatedAt" yaml:"generatedAt"`
	TotalDebit   AmountView        `json:"totalDebit" yaml:"totalDebit"`
	TotalCredit  AmountView        `json:"totalCredit" yaml:"totalCredit"`
	Vouchers     []ExportedVoucher `json:"vouchers" yaml:"vouchers"`
	Earmarks     []EarmarkSummary  `json:"earmarks" yaml:"earmarks"` // Usage within the year
	Budgets      []BudgetSummary   `json:"budgets" yaml:"budgets"`   // Budgets of the year
}

// ExportYear returns the snapshot of the year with all vouchers in number order
// and the usage of earmarks and budgets. It does not change anything.
func (l *Ledger) ExportYear(ctx context.Context, organizationID uuid.UUID, year int) (YearExport, error) {
	if err := validYear(year); err != nil {
		return YearExport{}, err
	}

	var export YearExport
	err := l.db(ctx).Transaction(func(tx *gorm.DB) error {
		org, err := organization(tx, organizationID)
		if err != nil {
			return err
		}

		status, err := yearStatus(tx, organizationID, year)
		if err != nil {
			return err
		}

		vouchers, err := yearVouchers(tx, organizationID, year)
		if err != nil {
			return err
		}

		var accounts []models.Account
		if err := tx.Where("organization_id = ?", organizationID).Find(&accounts).Error; err != nil {
			return err
		}

		var earmarks []models.Earmark
		if err := tx.Where("organization_id = ?", organizationID).Order("code ASC").Find(&earmarks).Error; err != nil {
			return err
		}

		var budgets []models.Budget
		if err := tx.Where("organization_id = ? AND year = ?", organizationID, year).Order("label ASC").Find(&budgets).Error; err != nil {
			return err
		}

		var reversed []models.Voucher
		err = tx.Where("id IN (?)", tx.Model(&models.Voucher{}).Select("reversal_of_id").Where("organization_id = ? AND year = ? AND reversal_of_id IS NOT NULL", organizationID, year)).Find(&reversed).Error
		if err != nil {
			return err
		}

		accountByID := make(map[uuid.UUID]models.Account, len(accounts))
		for _, a := range accounts {
			accountByID[a.ID] = a
		}

		earmarkByID := make(map[uuid.UUID]models.Earmark, len(earmarks))
		for _, e := range earmarks {
			earmarkByID[e.ID] = e
		}

		budgetLabels := make(map[uuid.UUID]string)
		var allBudgets []models.Budget
		if err := tx.Where("organization_id = ?", organizationID).Find(&allBudgets).Error; err != nil {
			return err
		}
		for _, b := range allBudgets {
			budgetLabels[b.ID] = b.Label
		}

		references := make(map[uuid.UUID]string, len(reversed))
		for _, v := range reversed {
			references[v.ID] = v.Reference()
		}

		currency := org.Currency
		export = YearExport{
			Organization: org.Name,
			Currency:     currency,
			Status:       status,
			GeneratedAt:  l.Now().In(time.UTC),
			Vouchers:     make([]ExportedVoucher, 0, len(vouchers)),
			Earmarks:     make([]EarmarkSummary, 0, len(earmarks)),
			Budgets:      make([]BudgetSummary, 0, len(budgets)),
		}

		var totalDebit, totalCredit types.Money
		for _, v := range vouchers {
			debit, credit := v.Totals()
			totalDebit += debit
			totalCredit += credit

			var attachments int64
			if err := tx.Model(&models.Attachment{}).Where("voucher_id = ?", v.ID).Count(&attachments).Error; err != nil {
				return err
			}

			ev := ExportedVoucher{
				ID:            v.ID,
				Reference:     v.Reference(),
				Date:          v.Date.Format(time.DateOnly),
				Type:          v.Type,
				Description:   v.Description,
				Counterparty:  v.Counterparty,
				Sphere:        v.Sphere,
				PaymentMethod: v.PaymentMethod,
				Attachments:   int(attachments),
				Bookings:      make([]ExportedBooking, 0, len(v.Bookings)),
			}

			if v.ReversalOfID != nil {
				ev.ReversalOf = references[*v.ReversalOfID]
			}

			for _, b := range v.Bookings {
				account := accountByID[b.AccountID]
				eb := ExportedBooking{
					Account:     account.Number,
					AccountName: account.Name,
					Debit:       viewPtr(b.Debit, currency),
					Credit:      viewPtr(b.Credit, currency),
					Memo:        b.Memo,
					TaxCode:     b.TaxCode,
				}

				if b.EarmarkID != nil {
					eb.Earmark = earmarkByID[*b.EarmarkID].Code
				}

				if b.BudgetID != nil {
					eb.Budget = budgetLabels[*b.BudgetID]
				}

				for _, t := range b.Tags {
					eb.Tags = append(eb.Tags, t.Name)
				}
				slices.Sort(eb.Tags)

				ev.Bookings = append(ev.Bookings, eb)
			}

			export.Vouchers = append(export.Vouchers, ev)
		}

		export.TotalDebit = view(totalDebit, currency)
		export.TotalCredit = view(totalCredit, currency)

		for _, e := range earmarks {
			s, err := usage(tx, organizationID, "earmark_id", e.ID, &year)
			if err != nil {
				return err
			}

			export.Earmarks = append(export.Earmarks, EarmarkSummary{
				Code:   e.Code,
				Name:   e.Name,
				Active: e.Active,
				Credit: view(s.Credit, currency),
				Debit:  view(s.Debit, currency),
				Usage:  view(s.Credit-s.Debit, currency),
			})
		}

		for _, b := range budgets {
			s, err := usage(tx, organizationID, "budget_id", b.ID, &year)
			if err != nil {
				return err
			}

			used := s.Credit - s.Debit
			summary := BudgetSummary{
				Label:   b.Label,
				Usage:   view(used, currency),
				Ceiling: viewPtr(b.Ceiling, currency),
			}

			if b.Ceiling != nil {
				remaining := *b.Ceiling + used
				summary.Remaining = viewPtr(&remaining, currency)
			}

			export.Budgets = append(export.Budgets, summary)
		}

		return nil
	})
	if err != nil {
		return YearExport{}, err
	}

	return export, nil
}

// Write encodes the export in the format. An empty format selects JSON.
func (e YearExport) Write(w io.Writer, format string) error {
	switch format {
	case "", FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e); err != nil {
			return err
		}
		return enc.Close()
	}

	return models.Validationf("'%s' is not a valid export format, use '%s' or '%s'", format, FormatJSON, FormatYAML)
}

// ExportOrganization returns all resources of the organization, keyed by model name.
func (l *Ledger) ExportOrganization(ctx context.Context, organizationID uuid.UUID) (map[string]json.RawMessage, error) {
	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return nil, err
	}

	resources := make(map[string]json.RawMessage, len(models.Registry))
	for _, model := range models.Registry {
		b, err := model.Export(db, organizationID)
		if err != nil {
			return nil, err
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	return resources, nil
}
