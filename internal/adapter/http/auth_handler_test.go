package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"testing"

	"gorm.io/gorm"

	custDomain "bankbase/internal/domain/customer"
	empDomain "bankbase/internal/domain/employee"
	"bankbase/internal/testutil/accountmock"
	"bankbase/internal/testutil/branchmock"
	"bankbase/internal/testutil/cardmock"
	"bankbase/internal/testutil/customermock"
	"bankbase/internal/testutil/employeemock"
	"bankbase/internal/testutil/loanmock"
	"bankbase/internal/testutil/transactionmock"
	"bankbase/internal/testutil/uowmock"
	"bankbase/internal/usecase/backoffice"
	"bankbase/internal/usecase/customer"
)

func authHandler(customers *customermock.Repo, employees *employeemock.Repo) *AuthHandler {
	cust := customer.NewUsecase(customers, &accountmock.Repo{}, &transactionmock.Repo{}, &loanmock.Repo{}, &cardmock.Repo{})
	bo := backoffice.NewUsecase(employees, customers, &accountmock.Repo{}, &loanmock.Repo{}, &cardmock.Repo{}, &branchmock.Repo{}, uowmock.New())
	return NewAuthHandler(cust, bo)
}

func TestCustomerLogin_Success(t *testing.T) {
	e := newEchoWithValidator()

	customers := &customermock.Repo{
		GetByMobileFn: func(ctx context.Context, mobile string) (*custDomain.Customer, error) {
			if mobile != "9876543210" {
				return nil, gorm.ErrRecordNotFound
			}
			return &custDomain.Customer{ID: 11, FirstName: "Asha", Mobile: mobile, PasswordHash: "$2a$10$stored"}, nil
		},
	}
	h := authHandler(customers, &employeemock.Repo{})

	c, rec := postJSON(e, "/auth/customer/login", mustJSON(map[string]any{
		"mobile":   "9876543210",
		"password": "password",
	}))
	if err := h.CustomerLogin(c); err != nil {
		t.Fatalf("CustomerLogin error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Customer custDomain.Customer `json:"customer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Customer.ID != 11 || body.Customer.FirstName != "Asha" {
		t.Fatalf("unexpected customer: %+v", body.Customer)
	}
}

func TestCustomerLogin_WrongPassword(t *testing.T) {
	e := newEchoWithValidator()

	customers := &customermock.Repo{
		GetByMobileFn: func(ctx context.Context, mobile string) (*custDomain.Customer, error) {
			return &custDomain.Customer{ID: 11, Mobile: mobile}, nil
		},
	}
	h := authHandler(customers, &employeemock.Repo{})

	c, rec := postJSON(e, "/auth/customer/login", mustJSON(map[string]any{
		"mobile":   "9876543210",
		"password": "letmein",
	}))
	if err := h.CustomerLogin(c); err != nil {
		t.Fatalf("CustomerLogin error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if er.Error != custDomain.ErrInvalidCredentials.Error() {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestCustomerLogin_MissingFields(t *testing.T) {
	e := newEchoWithValidator()
	h := authHandler(&customermock.Repo{}, &employeemock.Repo{})

	c, rec := postJSON(e, "/auth/customer/login", mustJSON(map[string]any{"mobile": "9876543210"}))
	if err := h.CustomerLogin(c); err != nil {
		t.Fatalf("CustomerLogin error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "Password", "is required") {
		t.Fatalf("missing password detail: %+v", er.Details)
	}
}

func TestEmployeeLogin_Success(t *testing.T) {
	e := newEchoWithValidator()

	employees := &employeemock.Repo{
		GetByIDFn: func(ctx context.Context, employeeID uint64) (*empDomain.Employee, error) {
			if employeeID != 7 {
				return nil, gorm.ErrRecordNotFound
			}
			return &empDomain.Employee{ID: 7, BranchID: 2, Name: "Ravi", PasswordHash: "$2a$10$stored"}, nil
		},
	}
	h := authHandler(&customermock.Repo{}, employees)

	c, rec := postJSON(e, "/auth/employee/login", mustJSON(map[string]any{
		"employee_id": "7",
		"password":    "password",
	}))
	if err := h.EmployeeLogin(c); err != nil {
		t.Fatalf("EmployeeLogin error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Employee empDomain.Employee `json:"employee"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Employee.ID != 7 || body.Employee.BranchID != 2 {
		t.Fatalf("unexpected employee: %+v", body.Employee)
	}
}

func TestEmployeeLogin_MalformedID(t *testing.T) {
	e := newEchoWithValidator()

	employees := &employeemock.Repo{
		GetByIDFn: func(ctx context.Context, employeeID uint64) (*empDomain.Employee, error) {
			t.Fatal("lookup must not run for a malformed id")
			return nil, nil
		},
	}
	h := authHandler(&customermock.Repo{}, employees)

	c, rec := postJSON(e, "/auth/employee/login", mustJSON(map[string]any{
		"employee_id": "ravi",
		"password":    "password",
	}))
	if err := h.EmployeeLogin(c); err != nil {
		t.Fatalf("EmployeeLogin error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
