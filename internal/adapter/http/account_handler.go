package http

import (
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/usecase/backoffice"
	"bankbase/internal/usecase/customer"
	"bankbase/internal/usecase/statement"
)

type AccountHandler struct {
	backoffice *backoffice.Usecase
	customers  *customer.Usecase
	statements *statement.Usecase
}

func NewAccountHandler(bo *backoffice.Usecase, cust *customer.Usecase, st *statement.Usecase) *AccountHandler {
	return &AccountHandler{backoffice: bo, customers: cust, statements: st}
}

const dateLayout = "2006-01-02"

// parseDateQuery reads an optional ?name=YYYY-MM-DD query value.
func parseDateQuery(c echo.Context, name string) (*time.Time, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

func (h *AccountHandler) OpenAccount(c echo.Context) error {
	var req backoffice.OpenAccountInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	acct, err := h.backoffice.OpenAccount(c.Request().Context(), req)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, acct)
}

// History lists an account's ledger rows newest first. ?limit caps the page,
// ?from narrows to rows on or after that date.
func (h *AccountHandler) History(c echo.Context) error {
	accountID, ok := parseUint64Param(c, "account_id")
	if !ok {
		return badParam(c, "account_id")
	}
	var f txDomain.HistoryFilter
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		f.Limit = n
	}
	from, ok := parseDateQuery(c, "from")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from date, want YYYY-MM-DD"})
	}
	f.FromDate = from

	list, err := h.customers.History(c.Request().Context(), accountID, f)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Statement renders an account statement for an optional [start, end] date
// range, oldest first. ?export=csv streams the same rows as a CSV download.
// The end date is inclusive, so the bound passed down is the next midnight.
func (h *AccountHandler) Statement(c echo.Context) error {
	accountID, ok := parseUint64Param(c, "account_id")
	if !ok {
		return badParam(c, "account_id")
	}
	start, ok := parseDateQuery(c, "start")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid start date, want YYYY-MM-DD"})
	}
	end, ok := parseDateQuery(c, "end")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid end date, want YYYY-MM-DD"})
	}
	if end != nil {
		e := end.Add(24 * time.Hour)
		end = &e
	}
	in := statement.Input{AccountID: accountID, Start: start, End: end}

	if c.QueryParam("export") == "csv" {
		_, path, err := h.statements.ExportCSV(c.Request().Context(), in)
		if err != nil {
			return mapDomainErr(c, err)
		}
		return c.Attachment(path, filepath.Base(path))
	}

	rows, err := h.statements.Rows(c.Request().Context(), in)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"account_id":   accountID,
		"transactions": rows,
	})
}
