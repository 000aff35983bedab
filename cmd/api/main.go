package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	gatewayadp "payroll-loan-backend/internal/adapter/gateway"
	httpadp "payroll-loan-backend/internal/adapter/http"
	"payroll-loan-backend/internal/adapter/middleware"
	"payroll-loan-backend/internal/adapter/repository/mysql"
	"payroll-loan-backend/internal/config"
	"payroll-loan-backend/internal/infrastructure/cache"
	"payroll-loan-backend/internal/infrastructure/db"
	authuc "payroll-loan-backend/internal/usecase/auth"
	companyuc "payroll-loan-backend/internal/usecase/company"
	"payroll-loan-backend/internal/usecase/credit"
	employeeuc "payroll-loan-backend/internal/usecase/employee"
	loanuc "payroll-loan-backend/internal/usecase/loan"
	paymentuc "payroll-loan-backend/internal/usecase/payment"
	"payroll-loan-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "payroll-loan-backend",
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}
	log.Info().Str("host", cfg.MySQLHost).Msg("mysql connected")

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("redis connected")

	// repositories
	companies := mysql.NewCompanyRepository(gdb)
	employees := mysql.NewEmployeeRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	events := mysql.NewGatewayEventRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	// external adapters
	scores := gatewayadp.NewScoreClient(gatewayadp.ScoreConfig{
		URL:     cfg.ScoreAPIURL,
		Timeout: cfg.ScoreTimeout,
	}, log)
	paygw := gatewayadp.NewPaymentClient(gatewayadp.PaymentConfig{
		URL:        cfg.GatewayURL,
		Timeout:    cfg.GatewayTimeout,
		MaxRetries: cfg.GatewayMaxRetries,
		RetryDelay: cfg.GatewayRetryDelay,
	}, log)

	// usecases
	evaluator := credit.NewEvaluator(scores, log)
	companyUC := companyuc.NewUsecase(companies, log)
	employeeUC := employeeuc.NewUsecase(employees, companies, log)
	loanUC := loanuc.NewUsecase(loans, employees, evaluator, txm, log)
	paymentUC := paymentuc.NewUsecase(loans, events, paygw, log)
	authUC := authuc.NewUsecase(employees, companies, cfg.JWTSecret, cfg.JWTTTL, log)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authUC)
	companyH := httpadp.NewCompanyHandler(companyUC)
	employeeH := httpadp.NewEmployeeHandler(employeeUC)
	loanH := httpadp.NewLoanHandler(loanUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	requireAuth := middleware.RequireAuth(authUC)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	// routes
	e.GET("/health", h.Health)
	e.POST("/auth/signin", authH.SignIn)
	e.POST("/payment/webhook", paymentH.Webhook)

	e.POST("/company", companyH.CreateCompany)
	e.GET("/company", companyH.ListCompanies)
	e.GET("/company/:company_id", companyH.GetCompany)
	e.PATCH("/company/:company_id", companyH.UpdateCompany)
	e.DELETE("/company/:company_id", companyH.DeleteCompany)

	e.POST("/employee", employeeH.CreateEmployee)
	e.GET("/employee", employeeH.ListEmployees)
	e.GET("/employee/:employee_id", employeeH.GetEmployee)
	e.PATCH("/employee/:employee_id", employeeH.UpdateEmployee)
	e.DELETE("/employee/:employee_id", employeeH.DeleteEmployee)

	lg := e.Group("/loan", requireAuth)
	lg.POST("", loanH.CreateLoan, idemp)
	lg.GET("", loanH.ListLoans)
	lg.GET("/:loan_id", loanH.GetLoan)
	lg.PATCH("/:loan_id", loanH.UpdateLoan)
	lg.DELETE("/:loan_id", loanH.DeleteLoan)
	lg.GET("/margin/:employee_id", loanH.GetConsignableMargin)

	pg := e.Group("/payment", requireAuth)
	pg.POST("/process/:loan_id", paymentH.ProcessPayment, idemp)
	pg.POST("/retry/:loan_id", paymentH.RetryPayment, idemp)
	pg.GET("/status/:loan_id", paymentH.GetPaymentStatus)
	pg.GET("/loans/:status", paymentH.ListLoansByStatus)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
