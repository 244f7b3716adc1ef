package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	txDomain "bankbase/internal/domain/transaction"
	"bankbase/internal/usecase/ledger"
	"bankbase/internal/usecase/transfer"
)

type TransferHandler struct {
	transfers *transfer.Usecase
	ledger    *ledger.Usecase
}

func NewTransferHandler(transfers *transfer.Usecase, ledgerUC *ledger.Usecase) *TransferHandler {
	return &TransferHandler{transfers: transfers, ledger: ledgerUC}
}

type transferReq struct {
	FromAccount uint64          `json:"from_account" validate:"required"`
	ToAccount   uint64          `json:"to_account" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"dec2"`
	Description string          `json:"description" validate:"max=255"`
}

// Transfer moves money between two accounts. Business rejections (same
// account, bad amount, insufficient balance) come back as 422 with the
// result message; only storage faults use the error mapping.
func (h *TransferHandler) Transfer(c echo.Context) error {
	var req transferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.transfers.Transfer(c.Request().Context(), transfer.Input(req))
	if err != nil {
		return mapDomainErr(c, err)
	}
	if !res.OK {
		return c.JSON(http.StatusUnprocessableEntity, res)
	}
	return c.JSON(http.StatusOK, res)
}

type postingReq struct {
	Type           txDomain.Type   `json:"tx_type" validate:"required,oneof=DEPOSIT WITHDRAWAL DEBIT CREDIT"`
	Amount         decimal.Decimal `json:"amount" validate:"dec2"`
	RelatedAccount *uint64         `json:"related_account"`
	Description    string          `json:"description" validate:"max=255"`
}

// Posting applies a single teller entry to one account. Transfer legs are
// not accepted here; they only exist in pairs via /transfers.
func (h *TransferHandler) Posting(c echo.Context) error {
	accountID, ok := parseUint64Param(c, "account_id")
	if !ok {
		return badParam(c, "account_id")
	}
	var req postingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	tx, err := h.ledger.Post(c.Request().Context(), ledger.PostInput{
		AccountID:      accountID,
		Type:           req.Type,
		Amount:         req.Amount,
		RelatedAccount: req.RelatedAccount,
		Description:    req.Description,
	})
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, tx)
}
