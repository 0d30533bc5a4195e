package ledger_test

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/goalbook/backend/internal/ledger"
	"github.com/goalbook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTransferGoalsSameAccount() {
	user := suite.createTestUser("transfer-goals")
	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})
	vacation := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &account.ID, Name: "Vacation", AllocatedAmount: decimal.NewFromInt(60)})
	car := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &account.ID, Name: "Car", AllocatedAmount: decimal.NewFromInt(20)})

	transaction, err := suite.service.TransferGoals(user.ID, vacation.ID, car.ID, decimal.NewFromInt(25))
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.TransactionTypeTransfer, transaction.Type)
	assert.Nil(suite.T(), transaction.AccountID, "Same-account transfers must not reference an account")

	vacation = suite.reloadGoal(vacation)
	car = suite.reloadGoal(car)
	assert.True(suite.T(), vacation.AllocatedAmount.Equal(decimal.NewFromInt(35)), "Source allocation is %s", vacation.AllocatedAmount)
	assert.True(suite.T(), car.AllocatedAmount.Equal(decimal.NewFromInt(45)), "Destination allocation is %s", car.AllocatedAmount)

	// The balance does not move within one account
	account = suite.reloadAccount(account)
	assert.True(suite.T(), account.Balance.Equal(decimal.NewFromInt(100)), "Balance is %s", account.Balance)
	suite.assertInvariant(account)
}

func (suite *TestSuiteStandard) TestTransferGoalsSameGoal() {
	user := suite.createTestUser("transfer-same-goal")
	goal := suite.createTestGoal(models.Goal{UserID: user.ID, Name: "Vacation", AllocatedAmount: decimal.NewFromInt(50)})

	_, err := suite.service.TransferGoals(user.ID, goal.ID, goal.ID, decimal.NewFromInt(10))
	assert.ErrorIs(suite.T(), err, ledger.ErrSameGoal)
}

func (suite *TestSuiteStandard) TestTransferGoalsInsufficientAllocation() {
	user := suite.createTestUser("transfer-insufficient-allocation")
	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})
	vacation := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &account.ID, Name: "Vacation", AllocatedAmount: decimal.NewFromInt(10)})
	car := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &account.ID, Name: "Car"})

	_, err := suite.service.TransferGoals(user.ID, vacation.ID, car.ID, decimal.NewFromInt(25))
	assert.ErrorIs(suite.T(), err, ledger.ErrInsufficientAllocation)

	vacation = suite.reloadGoal(vacation)
	car = suite.reloadGoal(car)
	assert.True(suite.T(), vacation.AllocatedAmount.Equal(decimal.NewFromInt(10)), "Source allocation changed on rejected transfer")
	assert.True(suite.T(), car.AllocatedAmount.IsZero(), "Destination allocation changed on rejected transfer")
}

func (suite *TestSuiteStandard) TestTransferGoalsCrossAccount() {
	user := suite.createTestUser("transfer-cross-account")
	checking := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})
	savings := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Savings", Balance: decimal.NewFromInt(50)})
	vacation := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &checking.ID, Name: "Vacation", AllocatedAmount: decimal.NewFromInt(60)})
	house := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &savings.ID, Name: "House", AllocatedAmount: decimal.NewFromInt(20)})

	transaction, err := suite.service.TransferGoals(user.ID, vacation.ID, house.ID, decimal.NewFromInt(30))
	assert.Nil(suite.T(), err)
	assert.NotNil(suite.T(), transaction.AccountID)
	assert.Equal(suite.T(), checking.ID, *transaction.AccountID)

	checking = suite.reloadAccount(checking)
	savings = suite.reloadAccount(savings)
	vacation = suite.reloadGoal(vacation)
	house = suite.reloadGoal(house)

	assert.True(suite.T(), checking.Balance.Equal(decimal.NewFromInt(70)), "Source balance is %s", checking.Balance)
	assert.True(suite.T(), savings.Balance.Equal(decimal.NewFromInt(80)), "Destination balance is %s", savings.Balance)
	assert.True(suite.T(), vacation.AllocatedAmount.Equal(decimal.NewFromInt(30)), "Source allocation is %s", vacation.AllocatedAmount)
	assert.True(suite.T(), house.AllocatedAmount.Equal(decimal.NewFromInt(50)), "Destination allocation is %s", house.AllocatedAmount)

	suite.assertInvariant(checking)
	suite.assertInvariant(savings)
}

func (suite *TestSuiteStandard) TestTransferGoalsCrossAccountCapacity() {
	user := suite.createTestUser("transfer-cross-capacity")
	checking := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})
	savings := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Savings", Balance: decimal.NewFromInt(50)})
	vacation := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &checking.ID, Name: "Vacation", AllocatedAmount: decimal.NewFromInt(60)})
	// The savings account is fully allocated already
	house := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &savings.ID, Name: "House", AllocatedAmount: decimal.NewFromInt(50)})

	_, err := suite.service.TransferGoals(user.ID, vacation.ID, house.ID, decimal.NewFromInt(30))
	assert.ErrorIs(suite.T(), err, ledger.ErrInsufficientUnallocated)

	checking = suite.reloadAccount(checking)
	savings = suite.reloadAccount(savings)
	assert.True(suite.T(), checking.Balance.Equal(decimal.NewFromInt(100)), "Source balance changed on rejected transfer")
	assert.True(suite.T(), savings.Balance.Equal(decimal.NewFromInt(50)), "Destination balance changed on rejected transfer")
}

func (suite *TestSuiteStandard) TestTransferGoalsCrossAccountInsufficientBalance() {
	user := suite.createTestUser("transfer-cross-balance")
	checking := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(20)})
	savings := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Savings", Balance: decimal.NewFromInt(50)})
	// The allocation exceeds the balance of its account, legacy state
	vacation := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &checking.ID, Name: "Vacation", AllocatedAmount: decimal.NewFromInt(40)})
	house := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &savings.ID, Name: "House"})

	_, err := suite.service.TransferGoals(user.ID, vacation.ID, house.ID, decimal.NewFromInt(30))
	assert.ErrorIs(suite.T(), err, ledger.ErrInsufficientFunds)
}

func (suite *TestSuiteStandard) TestTransferAccounts() {
	user := suite.createTestUser("transfer-accounts")
	checking := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})
	savings := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Savings", Balance: decimal.NewFromInt(10)})

	legs, err := suite.service.TransferAccounts(user.ID, ledger.TransferAccountsParams{
		FromAccountID: checking.ID,
		ToAccountID:   savings.ID,
		Amount:        decimal.NewFromInt(40),
	})
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), legs, 2)

	assert.Equal(suite.T(), models.DirectionOutflow, legs[0].Direction)
	assert.Equal(suite.T(), checking.ID, *legs[0].AccountID)
	assert.Equal(suite.T(), models.DirectionInflow, legs[1].Direction)
	assert.Equal(suite.T(), savings.ID, *legs[1].AccountID)

	checking = suite.reloadAccount(checking)
	savings = suite.reloadAccount(savings)
	assert.True(suite.T(), checking.Balance.Equal(decimal.NewFromInt(60)), "Source balance is %s", checking.Balance)
	assert.True(suite.T(), savings.Balance.Equal(decimal.NewFromInt(50)), "Destination balance is %s", savings.Balance)
}

func (suite *TestSuiteStandard) TestTransferAccountsWithGoals() {
	user := suite.createTestUser("transfer-accounts-goals")
	checking := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})
	savings := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Savings", Balance: decimal.NewFromInt(10)})
	vacation := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &checking.ID, Name: "Vacation", AllocatedAmount: decimal.NewFromInt(50)})
	house := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &savings.ID, Name: "House"})

	_, err := suite.service.TransferAccounts(user.ID, ledger.TransferAccountsParams{
		FromAccountID: checking.ID,
		ToAccountID:   savings.ID,
		FromGoalID:    &vacation.ID,
		ToGoalID:      &house.ID,
		Amount:        decimal.NewFromInt(30),
	})
	assert.Nil(suite.T(), err)

	vacation = suite.reloadGoal(vacation)
	house = suite.reloadGoal(house)
	assert.True(suite.T(), vacation.AllocatedAmount.Equal(decimal.NewFromInt(20)), "Source allocation is %s", vacation.AllocatedAmount)
	assert.True(suite.T(), house.AllocatedAmount.Equal(decimal.NewFromInt(30)), "Destination allocation is %s", house.AllocatedAmount)

	suite.assertInvariant(suite.reloadAccount(checking))
	suite.assertInvariant(suite.reloadAccount(savings))
}

func (suite *TestSuiteStandard) TestTransferAccountsSameAccount() {
	user := suite.createTestUser("transfer-same-account")
	account := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})

	_, err := suite.service.TransferAccounts(user.ID, ledger.TransferAccountsParams{
		FromAccountID: account.ID,
		ToAccountID:   account.ID,
		Amount:        decimal.NewFromInt(10),
	})
	assert.ErrorIs(suite.T(), err, ledger.ErrSameAccount)
}

func (suite *TestSuiteStandard) TestTransferAccountsInsufficientFunds() {
	user := suite.createTestUser("transfer-accounts-insufficient")
	checking := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(10)})
	savings := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Savings"})

	_, err := suite.service.TransferAccounts(user.ID, ledger.TransferAccountsParams{
		FromAccountID: checking.ID,
		ToAccountID:   savings.ID,
		Amount:        decimal.NewFromInt(40),
	})
	assert.ErrorIs(suite.T(), err, ledger.ErrInsufficientFunds)
}

func (suite *TestSuiteStandard) TestTransferAccountsGoalMembership() {
	user := suite.createTestUser("transfer-accounts-membership")
	checking := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Checking", Balance: decimal.NewFromInt(100)})
	savings := suite.createTestAccount(models.Account{UserID: user.ID, Name: "Savings"})
	// The goal belongs to the destination, not the source
	house := suite.createTestGoal(models.Goal{UserID: user.ID, AccountID: &savings.ID, Name: "House", AllocatedAmount: decimal.NewFromInt(50)})

	_, err := suite.service.TransferAccounts(user.ID, ledger.TransferAccountsParams{
		FromAccountID: checking.ID,
		ToAccountID:   savings.ID,
		FromGoalID:    &house.ID,
		Amount:        decimal.NewFromInt(10),
	})
	assert.ErrorIs(suite.T(), err, ledger.ErrGoalNotInAccount)
}
