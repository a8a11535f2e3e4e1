package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrValidation       = errors.New("invalid input")
	ErrLockedPeriod     = errors.New("the fiscal year is closed")
	ErrConflict         = errors.New("a concurrent change conflicted with your request, please retry")
	ErrConstraint       = errors.New("the change violates a constraint")
)

var (
	ErrVoucherNumberNotUnique = fmt.Errorf("%w: the voucher number is already taken for this year", ErrConflict)
	ErrAccountNumberNotUnique = fmt.Errorf("%w: the account number must be unique for the organization", ErrConstraint)
	ErrEarmarkCodeNotUnique   = fmt.Errorf("%w: the earmark code must be unique for the organization", ErrConstraint)
	ErrTagNameNotUnique       = fmt.Errorf("%w: the tag name must be unique for the organization", ErrConstraint)
	ErrBudgetLabelNotUnique   = fmt.Errorf("%w: the budget label must be unique per fiscal year", ErrConstraint)
	ErrMemberNumberNotUnique  = fmt.Errorf("%w: the member number must be unique for the organization", ErrConstraint)
	ErrOrganizationNameInUse  = fmt.Errorf("%w: the organization name is already in use", ErrConstraint)
	ErrAuditLogAppendOnly     = errors.New("audit log entries cannot be changed or deleted")
)

// LockedPeriodError is returned for mutations of vouchers in a closed
// fiscal year. It carries the year so that callers can offer to reopen it.
type LockedPeriodError struct {
	OrganizationID uuid.UUID `json:"organizationId"`
	Year           int       `json:"year"`
}

func (e LockedPeriodError) Error() string {
	return fmt.Sprintf("%s: %d is closed for organization %s", ErrLockedPeriod, e.Year, e.OrganizationID)
}

// Is makes errors.Is(err, ErrLockedPeriod) work for LockedPeriodError.
func (e LockedPeriodError) Is(target error) bool {
	return target == ErrLockedPeriod
}

// Validationf returns an error wrapping ErrValidation.
func Validationf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, a...))
}

// NotFoundf returns an error wrapping ErrResourceNotFound.
//
// The message reads like the ones created by the query callback,
// e.g. "there is no account matching your query".
func NotFoundf(format string, a ...any) error {
	return fmt.Errorf("%w %s", ErrResourceNotFound, fmt.Sprintf(format, a...))
}
