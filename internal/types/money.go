package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Fraction is the number of fraction digits of all monetary amounts.
const Fraction = 2

var (
	ErrMoneyPrecision = errors.New("amounts must not have more than two decimal places")
	ErrMoneyRange     = errors.New("amount is out of range")
)

// Money is an amount of money in minor units (cents).
//
// Amounts are stored as integers so that sums and balance checks
// never suffer from floating point drift.
type Money int64

// NewMoney returns the Money for a decimal amount in major units.
func NewMoney(d decimal.Decimal) (Money, error) {
	shifted := d.Shift(Fraction)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s", ErrMoneyPrecision, d.String())
	}

	if !shifted.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrMoneyRange, d.String())
	}

	return Money(shifted.IntPart()), nil
}

// Add returns m + o. It fails with ErrMoneyRange instead of wrapping around.
func (m Money) Add(o Money) (Money, error) {
	sum := m + o
	if (o > 0 && sum < m) || (o < 0 && sum > m) {
		return 0, fmt.Errorf("%w: %s + %s", ErrMoneyRange, m, o)
	}
	return sum, nil
}

// ParseMoney parses a decimal string like "100.50".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a valid amount: %w", s, err)
	}

	return NewMoney(d)
}

// MustParseMoney is like ParseMoney but panics on invalid input.
// It is intended for constants and tests.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -Fraction)
}

// String returns the amount with exactly two decimal places.
func (m Money) String() string {
	return m.Decimal().StringFixed(Fraction)
}

// Format returns the amount formatted for the ISO 4217 currency code,
// e.g. "€100.00" for EUR.
func (m Money) Format(currency string) string {
	if currency == "" {
		return m.String()
	}
	return money.New(int64(m), currency).Display()
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m > 0
}

// Neg returns -m.
func (m Money) Neg() Money {
	return -m
}

// MarshalJSON encodes the amount as a decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts both JSON numbers and decimal strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseMoney(value)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler for query parameters.
func (m *Money) UnmarshalParam(p string) error {
	return m.UnmarshalJSON([]byte(p))
}

// MarshalYAML encodes the amount as a decimal string.
func (m Money) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// Scan reads the minor units from the database.
func (m *Money) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*m = 0
	case int64:
		*m = Money(v)
	case int:
		*m = Money(v)
	case float64:
		*m = Money(int64(v))
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		*m = Money(d.IntPart())
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		*m = Money(d.IntPart())
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}

	return nil
}

// Value returns the minor units for the SQL driver.
func (m Money) Value() (driver.Value, error) {
	return int64(m), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Money) GormDataType() string {
	return "bigint"
}
