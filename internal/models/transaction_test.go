package models_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/goalbook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTransactionDateDefault() {
	user := suite.createTestUser("transaction-date")

	transaction := models.Transaction{
		UserID:    user.ID,
		Type:      models.TransactionTypeDeposit,
		Amount:    decimal.NewFromInt(50),
		Direction: models.DirectionInflow,
	}
	err := models.DB.Create(&transaction).Error
	assert.Nil(suite.T(), err)

	assert.False(suite.T(), transaction.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionSignedAmount() {
	amount := decimal.RequireFromString("17.23")

	inflow := models.Transaction{Amount: amount, Direction: models.DirectionInflow}
	outflow := models.Transaction{Amount: amount, Direction: models.DirectionOutflow}

	assert.True(suite.T(), inflow.SignedAmount().Equal(amount))
	assert.True(suite.T(), outflow.SignedAmount().Equal(amount.Neg()))
}

func (suite *TestSuiteStandard) TestSessionValid() {
	now := time.Now()

	session := models.Session{ExpiresAt: now.Add(time.Hour)}
	assert.True(suite.T(), session.Valid(now))

	expired := models.Session{ExpiresAt: now.Add(-time.Hour)}
	assert.False(suite.T(), expired.Valid(now))

	revoked := models.Session{ExpiresAt: now.Add(time.Hour), Revoked: true}
	assert.False(suite.T(), revoked.Valid(now))
}

func (suite *TestSuiteStandard) TestSpendCategoryTrimmed() {
	user := suite.createTestUser("spend-category")

	spend := models.Spend{UserID: user.ID, Category: "  groceries  ", Amount: decimal.NewFromInt(5)}
	err := models.DB.Create(&spend).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "groceries", spend.Category)
}
