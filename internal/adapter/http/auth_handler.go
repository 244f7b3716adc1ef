package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bankbase/internal/usecase/backoffice"
	"bankbase/internal/usecase/customer"
)

type AuthHandler struct {
	customers  *customer.Usecase
	backoffice *backoffice.Usecase
}

func NewAuthHandler(cust *customer.Usecase, bo *backoffice.Usecase) *AuthHandler {
	return &AuthHandler{customers: cust, backoffice: bo}
}

type customerLoginReq struct {
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type employeeLoginReq struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

func (h *AuthHandler) CustomerLogin(c echo.Context) error {
	var req customerLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	cust, err := h.customers.VerifyLogin(c.Request().Context(), req.Mobile, req.Password)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"customer": cust})
}

func (h *AuthHandler) EmployeeLogin(c echo.Context) error {
	var req employeeLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	emp, err := h.backoffice.VerifyLogin(c.Request().Context(), req.EmployeeID, req.Password)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"employee": emp})
}
