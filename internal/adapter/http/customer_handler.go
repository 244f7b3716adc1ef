package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bankbase/internal/usecase/backoffice"
	"bankbase/internal/usecase/customer"
)

type CustomerHandler struct {
	customers  *customer.Usecase
	backoffice *backoffice.Usecase
}

func NewCustomerHandler(cust *customer.Usecase, bo *backoffice.Usecase) *CustomerHandler {
	return &CustomerHandler{customers: cust, backoffice: bo}
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req backoffice.CreateCustomerInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	cust, err := h.backoffice.CreateCustomer(c.Request().Context(), req)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, cust)
}

// Search matches ?q= against customer names and mobile numbers.
func (h *CustomerHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing q"})
	}
	list, err := h.backoffice.SearchCustomers(c.Request().Context(), q)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Detail bundles the customer with their accounts, loans and cards, the way
// a branch employee sees them.
func (h *CustomerHandler) Detail(c echo.Context) error {
	customerID, ok := parseUint64Param(c, "customer_id")
	if !ok {
		return badParam(c, "customer_id")
	}
	detail, err := h.backoffice.GetCustomerDetail(c.Request().Context(), customerID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *CustomerHandler) Dashboard(c echo.Context) error {
	customerID, ok := parseUint64Param(c, "customer_id")
	if !ok {
		return badParam(c, "customer_id")
	}
	dash, err := h.customers.GetDashboard(c.Request().Context(), customerID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dash)
}

func (h *CustomerHandler) Accounts(c echo.Context) error {
	customerID, ok := parseUint64Param(c, "customer_id")
	if !ok {
		return badParam(c, "customer_id")
	}
	list, err := h.customers.Accounts(c.Request().Context(), customerID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CustomerHandler) Loans(c echo.Context) error {
	customerID, ok := parseUint64Param(c, "customer_id")
	if !ok {
		return badParam(c, "customer_id")
	}
	list, err := h.customers.Loans(c.Request().Context(), customerID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CustomerHandler) Cards(c echo.Context) error {
	customerID, ok := parseUint64Param(c, "customer_id")
	if !ok {
		return badParam(c, "customer_id")
	}
	list, err := h.customers.Cards(c.Request().Context(), customerID)
	if err != nil {
		return mapDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
