package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	cardDomain "bankbase/internal/domain/card"
	"bankbase/internal/usecase/card"
)

type CardHandler struct{ uc *card.Usecase }

func NewCardHandler(uc *card.Usecase) *CardHandler { return &CardHandler{uc: uc} }

// issuedCardResp flattens the card and adds the one-time CVV echo. The
// entity itself never serializes the CVV, so list endpoints stay clean.
type issuedCardResp struct {
	*cardDomain.Card
	CVV string `json:"cvv"`
}

func (h *CardHandler) IssueCard(c echo.Context) error {
	var req card.IssueInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	issued, err := h.uc.Issue(c.Request().Context(), req)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, issuedCardResp{Card: issued, CVV: issued.CVV})
}

func (h *CardHandler) AccountCards(c echo.Context) error {
	accountID, ok := parseUint64Param(c, "account_id")
	if !ok {
		return badParam(c, "account_id")
	}
	list, err := h.uc.ListByAccount(c.Request().Context(), accountID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CardHandler) BranchCards(c echo.Context) error {
	branchID, ok := parseUint64Param(c, "branch_id")
	if !ok {
		return badParam(c, "branch_id")
	}
	list, err := h.uc.ListByBranch(c.Request().Context(), branchID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
