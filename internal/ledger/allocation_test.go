package ledger_test

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/goalbook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUnallocated() {
	user := suite.createTestUser("unallocated")
	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})
	_ = suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &account.ID, Name: "Vacation", AllocatedAmount: decimal.NewFromInt(30)})
	_ = suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &account.ID, Name: "Car", AllocatedAmount: decimal.NewFromInt(25)})

	free, err := suite.service.Unallocated(account.ID, user.ID)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), free.Equal(decimal.NewFromInt(45)), "Unallocated is %s", free)
}

func (suite *TestSuiteStandard) TestUnallocatedNoGoals() {
	user := suite.createTestUser("unallocated-no-goals")
	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})

	free, err := suite.service.Unallocated(account.ID, user.ID)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), free.Equal(decimal.NewFromInt(100)), "Unallocated is %s", free)
}

func (suite *TestSuiteStandard) TestUnallocatedClampedToZero() {
	user := suite.createTestUser("unallocated-clamped")
	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})
	// Legacy state where the allocation exceeds the balance
	_ = suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &account.ID, Name: "Vacation", AllocatedAmount: decimal.NewFromInt(150)})

	free, err := suite.service.Unallocated(account.ID, user.ID)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), free.IsZero(), "Unallocated is %s", free)
}
