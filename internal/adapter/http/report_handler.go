package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/usecase/report"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) BranchReport(c echo.Context) error {
	branchID, ok := parseUint64Param(c, "branch_id")
	if !ok {
		return badParam(c, "branch_id")
	}
	rep, err := h.uc.GetBranchReport(c.Request().Context(), branchID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

// BranchTransactions is the branch monitoring feed, filterable by
// ?account_id, ?tx_type and ?limit.
func (h *ReportHandler) BranchTransactions(c echo.Context) error {
	branchID, ok := parseUint64Param(c, "branch_id")
	if !ok {
		return badParam(c, "branch_id")
	}
	var f txDomain.BranchFilter
	if raw := c.QueryParam("account_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid account_id"})
		}
		f.AccountID = id
	}
	if raw := c.QueryParam("tx_type"); raw != "" {
		f.Type = txDomain.Type(strings.ToUpper(raw))
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		f.Limit = n
	}
	list, err := h.uc.BranchTransactions(c.Request().Context(), branchID, f)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// EmployeeSummary is the employee home screen: branch totals, the
// employee's own decision tally and recent customers.
func (h *ReportHandler) EmployeeSummary(c echo.Context) error {
	employeeID, ok := parseUint64Param(c, "employee_id")
	if !ok {
		return badParam(c, "employee_id")
	}
	sum, err := h.uc.GetEmployeeSummary(c.Request().Context(), employeeID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}
