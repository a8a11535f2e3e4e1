package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/clubledger/backend/internal/ledger"
	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMemberStatusOverdue() {
	ctx := context.Background()
	suite.now = time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC)
	org := suite.createTestOrganization()
	jane := suite.createTestMember(org.ID, ledger.MemberInput{
		Name:     "Jane Doe",
		JoinDate: date(2023, 1, 15),
		Interval: types.Monthly,
		Fee:      types.MustParseMoney("10"),
	})

	entries, err := suite.ledger.ListDue(ctx, org.ID, ledger.DueQuery{Interval: types.Monthly})
	suite.Require().Nil(err)
	suite.Require().Len(entries, 4)
	for i, key := range []string{"2023-01", "2023-02", "2023-03", "2023-04"} {
		suite.Assert().Equal(key, entries[i].PeriodKey)
		suite.Assert().False(entries[i].Paid)
		suite.Assert().Equal(types.MustParseMoney("10"), entries[i].Due)
	}

	status, err := suite.ledger.MemberStatus(ctx, org.ID, jane.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(ledger.MemberOverdue, status.State)
	suite.Assert().Equal(4, status.OverdueCount)
	suite.Require().NotNil(status.NextDue)
	suite.Assert().True(date(2023, 1, 1).Equal(*status.NextDue))
	suite.Assert().Nil(status.LastPaidAt)

	for _, key := range []string{"2023-01", "2023-02", "2023-03", "2023-04"} {
		_, err := suite.ledger.MarkPaid(ctx, org.ID, ledger.MarkPaidInput{MemberID: jane.ID, PeriodKey: key})
		suite.Require().Nil(err)
	}

	status, err = suite.ledger.MemberStatus(ctx, org.ID, jane.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(ledger.MemberOK, status.State)
	suite.Assert().Equal(0, status.OverdueCount)
	suite.Assert().Equal("2023-04", status.LastPaidPeriod)
	suite.Require().NotNil(status.NextDue)
	suite.Assert().True(date(2023, 5, 1).Equal(*status.NextDue), "the next period is due once all are paid")

	entries, err = suite.ledger.ListDue(ctx, org.ID, ledger.DueQuery{Interval: types.Monthly})
	suite.Require().Nil(err)
	for _, e := range entries {
		suite.Assert().True(e.Paid)
		suite.Require().NotNil(e.Payment)
	}
}

func (suite *TestSuiteStandard) TestMemberStatusExited() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	exit := date(2024, 3, 31)
	member := suite.createTestMember(org.ID, ledger.MemberInput{
		Name:     "Max Mustermann",
		JoinDate: date(2023, 12, 1),
		ExitDate: &exit,
		Interval: types.Quarterly,
		Fee:      types.MustParseMoney("30"),
	})

	status, err := suite.ledger.MemberStatus(ctx, org.ID, member.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{"2023-Q4", "2024-Q1"}, status.OverduePeriods)

	for _, key := range status.OverduePeriods {
		_, err := suite.ledger.MarkPaid(ctx, org.ID, ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: key})
		suite.Require().Nil(err)
	}

	status, err = suite.ledger.MemberStatus(ctx, org.ID, member.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(ledger.MemberOK, status.State)
	suite.Assert().Nil(status.NextDue, "members that left have nothing due")
}

func (suite *TestSuiteStandard) TestListDueRange() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	suite.createTestMember(org.ID, ledger.MemberInput{Name: "Jürgen Groß", Number: "M-1", JoinDate: date(2024, 2, 10), Interval: types.Monthly, Fee: types.MustParseMoney("12")})
	suite.createTestMember(org.ID, ledger.MemberInput{Name: "Anna Berg", Number: "M-2", JoinDate: date(2023, 1, 1), Interval: types.Monthly, Fee: types.MustParseMoney("12")})
	suite.createTestMember(org.ID, ledger.MemberInput{Name: "Carl Yearly", Number: "M-3", JoinDate: date(2023, 1, 1), Interval: types.Yearly, Fee: types.MustParseMoney("100")})

	tests := []struct {
		name    string
		query   ledger.DueQuery
		entries int
		err     error
	}{
		{"Single month", ledger.DueQuery{Interval: types.Monthly, From: "2024-03"}, 2, nil},
		{"Before join", ledger.DueQuery{Interval: types.Monthly, From: "2024-01"}, 1, nil},
		{"Range", ledger.DueQuery{Interval: types.Monthly, From: "2024-01", To: "2024-03"}, 5, nil},
		{"Search folds diacritics", ledger.DueQuery{Interval: types.Monthly, From: "2024-03", Search: "jurgen"}, 1, nil},
		{"Search glob", ledger.DueQuery{Interval: types.Monthly, From: "2024-03", Search: "a*berg"}, 1, nil},
		{"Search number", ledger.DueQuery{Interval: types.Monthly, From: "2024-03", Search: "m-2"}, 1, nil},
		{"Yearly", ledger.DueQuery{Interval: types.Yearly, From: "2023", To: "2024"}, 2, nil},
		{"No interval", ledger.DueQuery{From: "2024-03"}, 0, models.ErrValidation},
		{"Key of other interval", ledger.DueQuery{Interval: types.Monthly, From: "2024-Q1"}, 0, models.ErrValidation},
		{"Reversed range", ledger.DueQuery{Interval: types.Monthly, From: "2024-03", To: "2024-01"}, 0, models.ErrValidation},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			entries, err := suite.ledger.ListDue(ctx, org.ID, tt.query)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.Nil(t, err)
			assert.Len(t, entries, tt.entries)
		})
	}
}

func (suite *TestSuiteStandard) TestMarkPaidIdempotent() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	member := suite.createTestMember(org.ID, ledger.MemberInput{Name: "Jane Doe", JoinDate: date(2024, 1, 1), Fee: types.MustParseMoney("10")})
	voucher := suite.createTestVoucher(org.ID, date(2024, 3, 3), "Fee Jane Doe", debit(bank, "12"), credit(fees, "12"))

	first, err := suite.ledger.MarkPaid(ctx, org.ID, ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: "2024-03"})
	suite.Require().Nil(err)
	suite.Assert().Equal(types.MustParseMoney("10"), first.Amount, "the amount defaults to the fee")
	suite.Assert().Equal(types.Monthly, first.Interval)
	suite.Assert().True(suite.now.Equal(first.PaidAt))
	suite.Assert().Equal(types.Money(0), first.Discrepancy)

	second, err := suite.ledger.MarkPaid(ctx, org.ID, ledger.MarkPaidInput{
		MemberID:  member.ID,
		PeriodKey: "2024-03",
		Amount:    amount("12"),
		VoucherID: &voucher.ID,
		Verified:  true,
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(first.ID, second.ID, "marking a period twice must update the record")
	suite.Assert().Equal("2024-1", second.VoucherReference)
	suite.Assert().Equal(types.MustParseMoney("2"), second.Discrepancy)
	suite.Assert().True(second.Verified)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.MemberPayment{}).Where("member_id = ?", member.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
	suite.Assert().Equal(int64(2), suite.auditCount(org.ID, ledger.ActionMarkPaid))

	tests := []struct {
		name string
		in   ledger.MarkPaidInput
		err  error
	}{
		{"Invalid key", ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: "March"}, models.ErrValidation},
		{"Key of other interval", ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: "2024-Q1"}, models.ErrValidation},
		{"Negative amount", ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: "2024-04", Amount: amount("-1")}, models.ErrValidation},
		{"Unknown member", ledger.MarkPaidInput{MemberID: uuid.New(), PeriodKey: "2024-04"}, models.ErrResourceNotFound},
		{"Unknown voucher", ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: "2024-04", VoucherID: &member.ID}, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.ledger.MarkPaid(ctx, org.ID, tt.in)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	// Explicit intervals allow paying periods of a previous billing interval
	record, err := suite.ledger.MarkPaid(ctx, org.ID, ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: "2023-Q4", Interval: types.Quarterly})
	suite.Require().Nil(err)
	suite.Assert().Equal(types.Quarterly, record.Interval)
}

func (suite *TestSuiteStandard) TestUnmark() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	member := suite.createTestMember(org.ID, ledger.MemberInput{Name: "Jane Doe", JoinDate: date(2024, 1, 1), Fee: types.MustParseMoney("10")})

	// Unmarking an unpaid period does nothing
	suite.Require().Nil(suite.ledger.Unmark(ctx, org.ID, member.ID, "2024-02"))
	suite.Assert().Equal(int64(0), suite.auditCount(org.ID, ledger.ActionUnmark))

	_, err := suite.ledger.MarkPaid(ctx, org.ID, ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: "2024-02"})
	suite.Require().Nil(err)

	suite.Require().Nil(suite.ledger.Unmark(ctx, org.ID, member.ID, "2024-02"))
	suite.Assert().Equal(int64(1), suite.auditCount(org.ID, ledger.ActionUnmark))

	status, err := suite.ledger.MemberStatus(ctx, org.ID, member.ID)
	suite.Require().Nil(err)
	suite.Assert().Contains(status.OverduePeriods, "2024-02")

	suite.Assert().ErrorIs(suite.ledger.Unmark(ctx, org.ID, member.ID, "02/2024"), models.ErrValidation)

	other := suite.createTestOrganization()
	suite.Assert().ErrorIs(suite.ledger.Unmark(ctx, other.ID, member.ID, "2024-02"), models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSuggestVouchers() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	bank := suite.createTestAccount(org.ID, "1200", models.AccountAsset)
	fees := suite.createTestAccount(org.ID, "4000", models.AccountIncome)
	member := suite.createTestMember(org.ID, ledger.MemberInput{Name: "Jörg Müller", JoinDate: date(2024, 1, 1), Fee: types.MustParseMoney("10")})

	exact := suite.createTestVoucher(org.ID, date(2024, 5, 2), "Beitrag Mai JORG MULLER", debit(bank, "10"), credit(fees, "10"))
	name := suite.createTestVoucher(org.ID, date(2024, 5, 20), "Müller, Jörg", debit(bank, "30"), credit(fees, "30"))
	amountOnly := suite.createTestVoucher(org.ID, date(2024, 5, 21), "Fee", debit(bank, "10"), credit(fees, "10"))
	suite.createTestVoucher(org.ID, date(2024, 5, 22), "Hall rent", debit(bank, "99"), credit(fees, "99"))

	// Outside of the lookback window
	suite.createTestVoucher(org.ID, date(2023, 12, 1), "Jörg Müller", debit(bank, "10"), credit(fees, "10"))

	_, err := suite.ledger.MarkPaid(ctx, org.ID, ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: "2024-04", VoucherID: &exact.ID})
	suite.Require().Nil(err)

	suggestions, err := suite.ledger.SuggestVouchers(ctx, org.ID, member.Name, types.MustParseMoney("10"), "2024-05")
	suite.Require().Nil(err)
	suite.Require().Len(suggestions, 3)

	suite.Assert().Equal(exact.ID, suggestions[0].VoucherID)
	suite.Assert().Equal(2, suggestions[0].NameScore)
	suite.Assert().Equal(2, suggestions[0].AmountScore)
	suite.Assert().Equal(4, suggestions[0].Score)
	suite.Assert().Equal([]string{"2024-04"}, suggestions[0].LinkedPeriods)

	suite.Assert().Equal(amountOnly.ID, suggestions[1].VoucherID, "suggestions are ordered by score")
	suite.Assert().Equal(2, suggestions[1].Score)
	suite.Assert().Equal(name.ID, suggestions[2].VoucherID)
	suite.Assert().Equal(1, suggestions[2].NameScore, "all name words in another order score 1")
	suite.Assert().Empty(suggestions[2].LinkedPeriods)

	// Nothing is changed by suggesting
	var count int64
	suite.Require().Nil(models.DB.Model(&models.MemberPayment{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)

	// A zero amount does not match by amount
	suggestions, err = suite.ledger.SuggestVouchers(ctx, org.ID, "Nobody Known", 0, "2024-05")
	suite.Require().Nil(err)
	suite.Assert().Empty(suggestions)

	_, err = suite.ledger.SuggestVouchers(ctx, org.ID, member.Name, 0, "May")
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestPaymentHistory() {
	ctx := context.Background()
	org := suite.createTestOrganization()
	member := suite.createTestMember(org.ID, ledger.MemberInput{Name: "Jane Doe", JoinDate: date(2024, 1, 1), Fee: types.MustParseMoney("10")})

	for i, key := range []string{"2024-01", "2024-02", "2024-03"} {
		paidAt := date(2024, time.Month(i+2), 5)
		_, err := suite.ledger.MarkPaid(ctx, org.ID, ledger.MarkPaidInput{MemberID: member.ID, PeriodKey: key, PaidAt: &paidAt})
		suite.Require().Nil(err)
	}

	history, err := suite.ledger.PaymentHistory(ctx, org.ID, member.ID, 0)
	suite.Require().Nil(err)
	suite.Require().Len(history, 3)
	suite.Assert().Equal("2024-01", history[0].PeriodKey, "history is ordered oldest first")
	suite.Assert().Equal("2024-03", history[2].PeriodKey)

	history, err = suite.ledger.PaymentHistory(ctx, org.ID, member.ID, 2)
	suite.Require().Nil(err)
	suite.Require().Len(history, 2)
	suite.Assert().Equal("2024-02", history[0].PeriodKey, "the limit keeps the latest records")
	suite.Assert().Equal("2024-03", history[1].PeriodKey)
}
