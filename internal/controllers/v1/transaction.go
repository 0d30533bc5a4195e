package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/goalbook/backend/internal/httputil"
	"github.com/goalbook/backend/internal/models"
)

// RegisterTransactionRoutes registers the routes for the transaction history.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetTransactions)

	r.OPTIONS("/export", httputil.OptionsGet)
	r.GET("/export", co.ExportTransactions)
}

// GetTransactions returns the transaction history
//
//	@Summary		Transaction history
//	@Description	Returns the most recent ledger entries with account and goal names resolved
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	Response{data=[]ledger.Row}
//	@Failure		401	{object}	Response
//	@Param			limit	query	int	false	"Number of entries, 1 to 100. Defaults to 5"
//	@Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, err := co.Ledger.History(currentUser(c).ID, limit)
	if err != nil {
		e(c, err)
		return
	}

	ok(c, rows)
}

// ExportTransactions exports the full history as a spreadsheet
//
//	@Summary		Export transactions
//	@Description	Returns the full transaction history as an xlsx file
//	@Tags			Transactions
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200
//	@Failure		401	{object}	Response
//	@Router			/v1/transactions/export [get]
func (co Controller) ExportTransactions(c *gin.Context) {
	rows, err := co.Ledger.History(currentUser(c).ID, 100)
	if err != nil {
		e(c, err)
		return
	}

	f := excelize.NewFile()
	sheet := "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		e(c, models.ErrGeneral)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Type", "Account", "Goal", "Amount"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		line := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", line), row.CreatedAt.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", line), row.Type)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", line), row.DisplayAccount)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", line), row.DisplayGoal)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", line), row.Amount.InexactFloat64())
	}

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "B", 10)
	f.SetColWidth(sheet, "C", "D", 24)
	f.SetColWidth(sheet, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Str("handler", "ExportTransactions").Msg("could not write spreadsheet")
		c.Status(http.StatusInternalServerError)
	}
}
