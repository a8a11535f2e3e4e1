package models_test

import (
	"testing"
	"time"

	"github.com/clubledger/backend/internal/models"
	"github.com/clubledger/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMemberDuePeriods() {
	exit := time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		member   models.Member
		today    time.Time
		expected []string
	}{
		{
			"Monthly since January",
			models.Member{Interval: types.Monthly, JoinDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)},
			time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
			[]string{"2023-01", "2023-02", "2023-03", "2023-04"},
		},
		{
			"Exit ends the due periods",
			models.Member{Interval: types.Monthly, JoinDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), ExitDate: &exit},
			time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
			[]string{"2023-01", "2023-02"},
		},
		{
			"Quarterly across years",
			models.Member{Interval: types.Quarterly, JoinDate: time.Date(2022, 11, 1, 0, 0, 0, 0, time.UTC)},
			time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			[]string{"2022-Q4", "2023-Q1", "2023-Q2"},
		},
		{
			"Yearly",
			models.Member{Interval: types.Yearly, JoinDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)},
			time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			[]string{"2021", "2022", "2023"},
		},
		{
			"Joins in the future",
			models.Member{Interval: types.Monthly, JoinDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
			[]string{},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			keys := []string{}
			for _, p := range tt.member.DuePeriods(tt.today) {
				keys = append(keys, p.Key())
			}
			assert.Equal(t, tt.expected, keys)
		})
	}
}

func (suite *TestSuiteStandard) TestMemberActiveIn() {
	exit := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	member := models.Member{
		Interval: types.Monthly,
		JoinDate: time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		ExitDate: &exit,
	}

	tests := []struct {
		period string
		active bool
	}{
		{"2022-12", false},
		{"2023-01", true},
		{"2023-02", true},
		{"2023-03", true},
		{"2023-04", false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.period, func(t *testing.T) {
			p, err := types.ParsePeriodKey(tt.period)
			assert.Nil(t, err)
			assert.Equal(t, tt.active, member.ActiveIn(p))
		})
	}
}

func (suite *TestSuiteStandard) TestMemberValidation() {
	organization := suite.createTestOrganization(models.Organization{})
	exit := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		member models.Member
	}{
		{"No name", models.Member{Number: "1", Interval: types.Monthly, JoinDate: time.Now()}},
		{"No number", models.Member{Name: "Grace", Interval: types.Monthly, JoinDate: time.Now()}},
		{"Invalid interval", models.Member{Name: "Grace", Number: "1", Interval: "WEEKLY", JoinDate: time.Now()}},
		{"No join date", models.Member{Name: "Grace", Number: "1", Interval: types.Monthly}},
		{"Exit before join", models.Member{Name: "Grace", Number: "1", Interval: types.Monthly, JoinDate: time.Now(), ExitDate: &exit}},
		{"Negative fee", models.Member{Name: "Grace", Number: "1", Interval: types.Monthly, JoinDate: time.Now(), Fee: -100}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.member.OrganizationID = organization.ID
			err := models.DB.Create(&tt.member).Error
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func (suite *TestSuiteStandard) TestMemberNumberUnique() {
	organization := suite.createTestOrganization(models.Organization{})
	suite.createTestMember(models.Member{OrganizationID: organization.ID, Number: "M-1"})

	err := models.DB.Create(&models.Member{
		OrganizationID: organization.ID,
		Name:           "Grace Hopper",
		Number:         "M-1",
		Interval:       types.Monthly,
		JoinDate:       time.Now(),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrMemberNumberNotUnique)
}

func (suite *TestSuiteStandard) TestMemberPaymentPeriodKey() {
	organization := suite.createTestOrganization(models.Organization{})
	member := suite.createTestMember(models.Member{OrganizationID: organization.ID})

	err := models.DB.Create(&models.MemberPayment{
		MemberID:  member.ID,
		PeriodKey: "2023-Q1",
		Interval:  types.Monthly,
		PaidAt:    time.Now(),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrValidation, "a quarterly key must not be accepted for a monthly payment")

	err = models.DB.Create(&models.MemberPayment{
		MemberID:  member.ID,
		PeriodKey: "2023-01",
		Interval:  types.Monthly,
		Amount:    types.MustParseMoney("5"),
		PaidAt:    time.Now(),
	}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestMemberPaymentDeletedWithMember() {
	organization := suite.createTestOrganization(models.Organization{})
	member := suite.createTestMember(models.Member{OrganizationID: organization.ID})

	suite.Require().Nil(models.DB.Create(&models.MemberPayment{
		MemberID:  member.ID,
		PeriodKey: "2023-02",
		Interval:  types.Monthly,
		PaidAt:    time.Now(),
	}).Error)

	suite.Require().Nil(models.DB.Delete(&member).Error)

	var count int64
	models.DB.Model(&models.MemberPayment{}).Where("member_id = ?", member.ID).Count(&count)
	suite.Assert().Equal(int64(0), count)
}
