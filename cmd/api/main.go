package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	httpadp "bankbase/internal/adapter/http"
	"bankbase/internal/adapter/middleware"
	"bankbase/internal/adapter/repository/mysql"
	"bankbase/internal/config"
	"bankbase/internal/infrastructure/cache"
	"bankbase/internal/infrastructure/db"
	"bankbase/internal/logger"
	"bankbase/internal/usecase/backoffice"
	"bankbase/internal/usecase/card"
	"bankbase/internal/usecase/customer"
	"bankbase/internal/usecase/ledger"
	"bankbase/internal/usecase/loan"
	"bankbase/internal/usecase/report"
	"bankbase/internal/usecase/statement"
	"bankbase/internal/usecase/transfer"
)

func main() {
	cfg := config.Load()
	lg := logger.New()
	if err := cfg.Validate(); err != nil {
		lg.Fatal().Err(err).Msg("invalid configuration")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		lg.Fatal().Err(err).Msg("mysql connect failed")
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			lg.Fatal().Err(err).Msg("auto-migrate failed")
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		lg.Fatal().Err(err).Msg("redis connect failed")
	}

	// repositories
	accounts := mysql.NewAccountRepository(gdb)
	branches := mysql.NewBranchRepository(gdb)
	cards := mysql.NewCardRepository(gdb)
	customers := mysql.NewCustomerRepository(gdb)
	employees := mysql.NewEmployeeRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	transactions := mysql.NewTransactionRepository(gdb)
	unit := mysql.NewGormUoW(gdb, cfg.TxTimeout)

	// usecases
	custUC := customer.NewUsecase(customers, accounts, transactions, loans, cards)
	boUC := backoffice.NewUsecase(employees, customers, accounts, loans, cards, branches, unit)
	reportUC := report.NewUsecase(branches, employees, accounts, loans, cards, customers, transactions)
	loanUC := loan.NewUsecase(loans, accounts, unit)
	transferUC := transfer.NewUsecase(accounts, unit)
	ledgerUC := ledger.NewUsecase(unit)
	cardUC := card.NewUsecase(cards, accounts)
	stmtUC := statement.NewUsecase(transactions, cfg.StatementsDir)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(custUC, boUC)
	transferH := httpadp.NewTransferHandler(transferUC, ledgerUC)
	accountH := httpadp.NewAccountHandler(boUC, custUC, stmtUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	customerH := httpadp.NewCustomerHandler(custUC, boUC)
	cardH := httpadp.NewCardHandler(cardUC)
	reportH := httpadp.NewReportHandler(reportUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(withRequestLogger(lg))

	// replay protection on every mutating route
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", h.Health)

	e.POST("/auth/customer/login", authH.CustomerLogin)
	e.POST("/auth/employee/login", authH.EmployeeLogin)

	e.POST("/customers", customerH.CreateCustomer, idemp)
	e.GET("/customers/search", customerH.Search)
	e.GET("/customers/:customer_id", customerH.Detail)
	e.GET("/customers/:customer_id/dashboard", customerH.Dashboard)
	e.GET("/customers/:customer_id/accounts", customerH.Accounts)
	e.GET("/customers/:customer_id/loans", customerH.Loans)
	e.GET("/customers/:customer_id/cards", customerH.Cards)

	e.POST("/accounts", accountH.OpenAccount, idemp)
	e.POST("/accounts/:account_id/postings", transferH.Posting, idemp)
	e.GET("/accounts/:account_id/transactions", accountH.History)
	e.GET("/accounts/:account_id/statement", accountH.Statement)
	e.GET("/accounts/:account_id/cards", cardH.AccountCards)

	e.POST("/transfers", transferH.Transfer, idemp)

	e.POST("/loans", loanH.RequestLoan, idemp)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.POST("/loans/:loan_id/approve", loanH.ApproveLoan, idemp)
	e.POST("/loans/:loan_id/reject", loanH.RejectLoan, idemp)

	e.POST("/cards", cardH.IssueCard, idemp)

	e.GET("/branches/:branch_id/loans", loanH.BranchLoans)
	e.GET("/branches/:branch_id/loans/pending", loanH.PendingBranchLoans)
	e.GET("/branches/:branch_id/cards", cardH.BranchCards)
	e.GET("/branches/:branch_id/report", reportH.BranchReport)
	e.GET("/branches/:branch_id/transactions", reportH.BranchTransactions)

	e.GET("/employees/:employee_id/summary", reportH.EmployeeSummary)

	addr := ":" + cfg.AppPort
	lg.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		lg.Fatal().Err(err).Msg("server stopped")
	}
}

// withRequestLogger attaches a request-scoped logger to the request context
// so lower layers can log through logger.FromContext.
func withRequestLogger(lg zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := lg.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()
			c.SetRequest(req.WithContext(logger.WithContext(req.Context(), l)))
			return next(c)
		}
	}
}
