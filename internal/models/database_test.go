package models_test

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/goalbook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestNotFoundMessage() {
	var account models.Account
	err := models.DB.First(&account, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no account matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	var user models.User
	err := models.DB.First(&user).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
