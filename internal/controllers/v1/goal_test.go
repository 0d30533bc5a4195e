package v1_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
)

type goalData struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	AllocatedAmount string `json:"allocatedAmount"`
}

func (suite *TestSuiteStandard) createGoal(cookie *http.Cookie, body map[string]any) goalData {
	recorder := suite.authRequest(cookie, http.MethodPost, "/v1/goals", body)
	if recorder.Code != http.StatusCreated {
		suite.Assert().FailNowf("Goal creation failed", "status %d, body %s", recorder.Code, recorder.Body.String())
	}

	var goal goalData
	suite.decode(recorder, &goal)
	return goal
}

func (suite *TestSuiteStandard) TestCreateGoal() {
	cookie := suite.register("morre")
	account := suite.createAccount(cookie, "Checking")

	goal := suite.createGoal(cookie, map[string]any{"name": "Vacation", "accountId": account.ID})
	assert.Equal(suite.T(), "Vacation", goal.Name)
	assert.Equal(suite.T(), "savings", goal.Type)
	assert.Equal(suite.T(), "0", goal.AllocatedAmount)
}

func (suite *TestSuiteStandard) TestCreateGoalUnknownAccount() {
	cookie := suite.register("morre")

	recorder := suite.authRequest(cookie, http.MethodPost, "/v1/goals", map[string]any{
		"name":      "Vacation",
		"accountId": "2f1b64bd-0d22-4797-86f9-9b1b4a335e07",
	})
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestContributeEndpoint() {
	cookie := suite.register("morre")
	account := suite.createAccount(cookie, "Checking")
	goal := suite.createGoal(cookie, map[string]any{"name": "Vacation", "accountId": account.ID})

	recorder := suite.authRequest(cookie, http.MethodPost, "/v1/deposits", map[string]any{
		"accountId": account.ID,
		"amount":    100,
	})
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	recorder = suite.authRequest(cookie, http.MethodPost, "/v1/goals/contribute", map[string]any{
		"goalId": goal.ID,
		"amount": 60,
	})
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var updated goalData
	suite.decode(recorder, &updated)
	assert.Equal(suite.T(), "60", updated.AllocatedAmount)
}

func (suite *TestSuiteStandard) TestContributeEndpointOversubscribed() {
	cookie := suite.register("morre")
	account := suite.createAccount(cookie, "Checking")
	goal := suite.createGoal(cookie, map[string]any{"name": "Vacation", "accountId": account.ID})

	recorder := suite.authRequest(cookie, http.MethodPost, "/v1/goals/contribute", map[string]any{
		"goalId": goal.ID,
		"amount": 60,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	status, message := suite.decode(recorder, nil)
	assert.False(suite.T(), status)
	assert.Equal(suite.T(), "insufficient unallocated funds in the account", message)
}

func (suite *TestSuiteStandard) TestGoalTransferEndpoint() {
	cookie := suite.register("morre")
	account := suite.createAccount(cookie, "Checking")
	vacation := suite.createGoal(cookie, map[string]any{"name": "Vacation", "accountId": account.ID})
	car := suite.createGoal(cookie, map[string]any{"name": "Car", "accountId": account.ID})

	recorder := suite.authRequest(cookie, http.MethodPost, "/v1/deposits", map[string]any{
		"accountId": account.ID,
		"goalId":    vacation.ID,
		"amount":    100,
	})
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	recorder = suite.authRequest(cookie, http.MethodPost, "/v1/goals/transfer", map[string]any{
		"fromGoalId": vacation.ID,
		"toGoalId":   car.ID,
		"amount":     30,
	})
	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *TestSuiteStandard) TestDeleteGoal() {
	cookie := suite.register("morre")
	goal := suite.createGoal(cookie, map[string]any{"name": "Vacation"})

	recorder := suite.authRequest(cookie, http.MethodDelete, "/v1/goals/"+goal.ID, nil)
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = suite.authRequest(cookie, http.MethodGet, "/v1/goals", nil)
	var goals []goalData
	suite.decode(recorder, &goals)
	assert.Len(suite.T(), goals, 0)
}

func (suite *TestSuiteStandard) TestDeleteGoalOfOtherUser() {
	owner := suite.register("owner")
	intruder := suite.register("intruder")
	goal := suite.createGoal(owner, map[string]any{"name": "Vacation"})

	recorder := suite.authRequest(intruder, http.MethodDelete, "/v1/goals/"+goal.ID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestDeleteGoalInvalidID() {
	cookie := suite.register("morre")

	recorder := suite.authRequest(cookie, http.MethodDelete, "/v1/goals/not-a-uuid", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}
