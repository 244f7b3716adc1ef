package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	acctDomain "bankbase/internal/domain/account"
	branchDomain "bankbase/internal/domain/branch"
	custDomain "bankbase/internal/domain/customer"
	empDomain "bankbase/internal/domain/employee"
	loanDomain "bankbase/internal/domain/loan"
	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/domain/uow"
)

func parseUint64Param(c echo.Context, name string) (uint64, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func badParam(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
}

// mapDomainErr turns usecase sentinels into HTTP responses. Anything
// unrecognized is a 500 with a generic body; the real cause is already
// in the request-scoped log.
func mapDomainErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, acctDomain.ErrNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, custDomain.ErrNotFound),
		errors.Is(err, empDomain.ErrNotFound),
		errors.Is(err, branchDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, custDomain.ErrInvalidCredentials),
		errors.Is(err, empDomain.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrNotPending):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, txDomain.ErrInvalidAmount),
		errors.Is(err, loanDomain.ErrInvalidTerms),
		errors.Is(err, loanDomain.ErrInvalidAccount):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, uow.ErrBusy):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "ledger busy, retry shortly"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
