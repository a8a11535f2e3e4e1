package ledger

import (
	"context"
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationInput struct {
	Name     string `json:"name" example:"Rowing Club 1887"`
	Currency string `json:"currency" example:"EUR"` // ISO 4217 code. Defaults to the configured currency
}

// CreateOrganization creates an organization.
func (l *Ledger) CreateOrganization(ctx context.Context, in OrganizationInput) (models.Organization, error) {
	o := models.Organization{
		Name:     in.Name,
		Currency: in.Currency,
	}

	if o.Currency == "" {
		o.Currency = l.DefaultCurrency
	}

	err := l.db(ctx).Create(&o).Error
	return o, err
}

// GetOrganization returns the organization.
func (l *Ledger) GetOrganization(ctx context.Context, id uuid.UUID) (models.Organization, error) {
	return organization(l.db(ctx), id)
}

type AccountInput struct {
	Number string             `json:"number" example:"1200"`
	Name   string             `json:"name" example:"Bank"`
	Type   models.AccountType `json:"type" example:"ASSET"`
	Active *bool              `json:"active,omitempty"` // Defaults to true
}

// AccountUpdate holds the changes for an account. Nil fields are not changed.
type AccountUpdate struct {
	Number *string             `json:"number,omitempty"`
	Name   *string             `json:"name,omitempty"`
	Type   *models.AccountType `json:"type,omitempty"`
	Active *bool               `json:"active,omitempty"`
}

// create creates the resource after checking that the organization exists.
func create[T any](ctx context.Context, l *Ledger, organizationID uuid.UUID, resource *T) error {
	return l.transaction(ctx, func(tx *gorm.DB) error {
		if _, err := organization(tx, organizationID); err != nil {
			return err
		}

		return tx.Create(resource).Error
	})
}

// list returns all resources of the organization in the given order.
func list[T any](ctx context.Context, l *Ledger, organizationID uuid.UUID, order string) ([]T, error) {
	db := l.db(ctx)
	if _, err := organization(db, organizationID); err != nil {
		return nil, err
	}

	resources := make([]T, 0)
	err := db.Where("organization_id = ?", organizationID).Order(order).Find(&resources).Error
	return resources, err
}

func (l *Ledger) CreateAccount(ctx context.Context, organizationID uuid.UUID, in AccountInput) (models.Account, error) {
	account := models.Account{
		OrganizationID: organizationID,
		Number:         in.Number,
		Name:           in.Name,
		Type:           in.Type,
		Active:         true,
	}

	if in.Active != nil {
		account.Active = *in.Active
	}

	err := create(ctx, l, organizationID, &account)
	return account, err
}

func (l *Ledger) ListAccounts(ctx context.Context, organizationID uuid.UUID) ([]models.Account, error) {
	return list[models.Account](ctx, l, organizationID, "number ASC")
}

// UpdateAccount changes the account.
//
// Once bookings are posted to the account, its number and type are fixed.
func (l *Ledger) UpdateAccount(ctx context.Context, organizationID, id uuid.UUID, in AccountUpdate) (models.Account, error) {
	var account models.Account

	err := l.transaction(ctx, func(tx *gorm.DB) (err error) {
		account, err = ownedBy[models.Account](tx, organizationID, id)
		if err != nil {
			return err
		}

		numberChanged := in.Number != nil && *in.Number != account.Number
		typeChanged := in.Type != nil && *in.Type != account.Type
		if numberChanged || typeChanged {
			referenced, err := account.IsReferenced(tx)
			if err != nil {
				return err
			}

			if referenced {
				return models.Validationf("account %s has bookings, only its name and active flag can be changed", account.Number)
			}
		}

		if in.Number != nil {
			account.Number = *in.Number
		}

		if in.Name != nil {
			account.Name = *in.Name
		}

		if in.Type != nil {
			account.Type = *in.Type
		}

		if in.Active != nil {
			account.Active = *in.Active
		}

		return tx.Save(&account).Error
	})
	if err != nil {
		return models.Account{}, err
	}

	return account, nil
}

type EarmarkInput struct {
	Code   string `json:"code" example:"YOUTH"`
	Name   string `json:"name" example:"Youth work"`
	Color  string `json:"color" example:"#2b8a3e"`
	Active *bool  `json:"active,omitempty"` // Defaults to true
}

func (l *Ledger) CreateEarmark(ctx context.Context, organizationID uuid.UUID, in EarmarkInput) (models.Earmark, error) {
	earmark := models.Earmark{
		OrganizationID: organizationID,
		Code:           in.Code,
		Name:           in.Name,
		Color:          in.Color,
		Active:         true,
	}

	if in.Active != nil {
		earmark.Active = *in.Active
	}

	err := create(ctx, l, organizationID, &earmark)
	return earmark, err
}

func (l *Ledger) ListEarmarks(ctx context.Context, organizationID uuid.UUID) ([]models.Earmark, error) {
	return list[models.Earmark](ctx, l, organizationID, "code ASC")
}

type BudgetInput struct {
	Label   string       `json:"label" example:"Regatta 2024"`
	Year    int          `json:"year" example:"2024"`
	Ceiling *types.Money `json:"ceiling,omitempty" example:"1500.00"`
}

func (l *Ledger) CreateBudget(ctx context.Context, organizationID uuid.UUID, in BudgetInput) (models.Budget, error) {
	budget := models.Budget{
		OrganizationID: organizationID,
		Label:          in.Label,
		Year:           in.Year,
		Ceiling:        in.Ceiling,
	}

	err := create(ctx, l, organizationID, &budget)
	return budget, err
}

func (l *Ledger) ListBudgets(ctx context.Context, organizationID uuid.UUID) ([]models.Budget, error) {
	return list[models.Budget](ctx, l, organizationID, "year DESC, label ASC")
}

type TagInput struct {
	Name  string `json:"name" example:"Donation"`
	Color string `json:"color" example:"#e8590c"`
}

func (l *Ledger) CreateTag(ctx context.Context, organizationID uuid.UUID, in TagInput) (models.Tag, error) {
	tag := models.Tag{
		OrganizationID: organizationID,
		Name:           in.Name,
		Color:          in.Color,
	}

	err := create(ctx, l, organizationID, &tag)
	return tag, err
}

func (l *Ledger) ListTags(ctx context.Context, organizationID uuid.UUID) ([]models.Tag, error) {
	return list[models.Tag](ctx, l, organizationID, "name ASC")
}

type MemberInput struct {
	Name     string         `json:"name" example:"Jane Doe"`
	Number   string         `json:"number" example:"M-0042"`
	JoinDate time.Time      `json:"joinDate" example:"2023-01-15T00:00:00Z"`
	ExitDate *time.Time     `json:"exitDate,omitempty"`
	Interval types.Interval `json:"interval" example:"MONTHLY"`
	Fee      types.Money    `json:"fee" example:"10.00"`
}

func (l *Ledger) CreateMember(ctx context.Context, organizationID uuid.UUID, in MemberInput) (models.Member, error) {
	member := models.Member{
		OrganizationID: organizationID,
		Name:           in.Name,
		Number:         in.Number,
		JoinDate:       in.JoinDate,
		ExitDate:       in.ExitDate,
		Interval:       in.Interval,
		Fee:            in.Fee,
	}

	err := create(ctx, l, organizationID, &member)
	return member, err
}

func (l *Ledger) GetMember(ctx context.Context, organizationID, id uuid.UUID) (models.Member, error) {
	return ownedBy[models.Member](l.db(ctx), organizationID, id)
}

// ListMembers returns the members by name. The search is matched like in ListDue.
func (l *Ledger) ListMembers(ctx context.Context, organizationID uuid.UUID, search string) ([]models.Member, error) {
	members, err := list[models.Member](ctx, l, organizationID, "name ASC, number ASC")
	if err != nil || search == "" {
		return members, err
	}

	pattern := searchPattern(search)
	result := make([]models.Member, 0, len(members))
	for _, m := range members {
		if matches(pattern, m.Name, m.Number) {
			result = append(result, m)
		}
	}
	return result, nil
}
