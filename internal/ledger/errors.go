package ledger

import "errors"

var (
	ErrAmountNotPositive       = errors.New("the amount must be larger than zero")
	ErrSameGoal                = errors.New("the source and destination goal must be different")
	ErrSameAccount             = errors.New("the source and destination account must be different")
	ErrInsufficientFunds       = errors.New("insufficient funds in the source account")
	ErrInsufficientAllocation  = errors.New("insufficient allocated funds in the goal")
	ErrInsufficientUnallocated = errors.New("insufficient unallocated funds in the account")
	ErrGoalNotInAccount        = errors.New("the goal does not belong to the account")
	ErrGoalNotSavings          = errors.New("contributions are only possible for savings goals")
	ErrOutstandingDebt         = errors.New("financing is not possible with outstanding debt")
	ErrFinancingLimit          = errors.New("the financing amount must not exceed twice the balance")
	ErrNoDebt                  = errors.New("there is no debt to repay")
)
