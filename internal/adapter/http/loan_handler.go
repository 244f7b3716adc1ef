package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	loanDomain "bankbase/internal/domain/loan"
	"bankbase/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type requestLoanReq struct {
	CustomerID   uint64          `json:"customer_id" validate:"required"`
	AccountID    uint64          `json:"account_id" validate:"required"`
	LoanType     string          `json:"loan_type"`
	Principal    decimal.Decimal `json:"principal" validate:"required,dec2"`
	TenureMonths int             `json:"tenure_months" validate:"required,gt=0,lte=360"`
}

type loanDecisionReq struct {
	EmployeeID uint64 `json:"employee_id" validate:"required"`
}

func (h *LoanHandler) RequestLoan(c echo.Context) error {
	var req requestLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	l, err := h.uc.Request(c.Request().Context(), loan.RequestInput(req))
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, ok := parseUint64Param(c, "loan_id")
	if !ok {
		return badParam(c, "loan_id")
	}
	l, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	loanID, ok := parseUint64Param(c, "loan_id")
	if !ok {
		return badParam(c, "loan_id")
	}
	var req loanDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	l, err := h.uc.Approve(c.Request().Context(), loanID, req.EmployeeID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	loanID, ok := parseUint64Param(c, "loan_id")
	if !ok {
		return badParam(c, "loan_id")
	}
	var req loanDecisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.Reject(c.Request().Context(), loanID, req.EmployeeID); err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loan_id": loanID, "status": loanDomain.StatusRejected})
}

// BranchLoans lists a branch's loans, optionally narrowed by ?status=.
func (h *LoanHandler) BranchLoans(c echo.Context) error {
	branchID, ok := parseUint64Param(c, "branch_id")
	if !ok {
		return badParam(c, "branch_id")
	}
	status := loanDomain.Status(strings.ToUpper(c.QueryParam("status")))
	switch status {
	case "", loanDomain.StatusPending, loanDomain.StatusApproved, loanDomain.StatusActive, loanDomain.StatusRejected:
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status"})
	}
	list, err := h.uc.ListByBranch(c.Request().Context(), branchID, status)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// PendingBranchLoans is the approval queue for a branch.
func (h *LoanHandler) PendingBranchLoans(c echo.Context) error {
	branchID, ok := parseUint64Param(c, "branch_id")
	if !ok {
		return badParam(c, "branch_id")
	}
	list, err := h.uc.PendingByBranch(c.Request().Context(), branchID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
