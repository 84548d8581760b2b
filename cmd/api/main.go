package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "microlend-backend/internal/adapter/http"
	"microlend-backend/internal/adapter/middleware"
	"microlend-backend/internal/adapter/repository/mysql"
	"microlend-backend/internal/config"
	"microlend-backend/internal/infrastructure/cache"
	"microlend-backend/internal/infrastructure/db"
	ucApplication "microlend-backend/internal/usecase/application"
	ucCollateral "microlend-backend/internal/usecase/collateral"
	ucRepayment "microlend-backend/internal/usecase/repayment"
	ucUnderwriting "microlend-backend/internal/usecase/underwriting"
	ucUser "microlend-backend/internal/usecase/user"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// Repositories
	users := mysql.NewUserRepository(gdb)
	loanTypes := mysql.NewLoanTypeRepository(gdb)
	methods := mysql.NewRepaymentMethodRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	// Usecases
	evaluator := ucUnderwriting.NewEvaluator(ucUnderwriting.Policy{
		MinCreditScore:  cfg.MinCreditScore,
		MaxDebtToIncome: cfg.MaxDebtToIncome,
		MinIncome:       cfg.MinIncome,
	})
	var penalty ucRepayment.PenaltyPolicy = ucRepayment.NoPenalty{}
	if cfg.OverduePenaltyFee > 0 {
		penalty = ucRepayment.FlatFee{Fee: cfg.OverduePenaltyFee}
	}

	userUC := ucUser.NewUsecase(users)
	applicationUC := ucApplication.NewUsecase(users, guow, evaluator)
	repaymentUC := ucRepayment.NewUsecase(methods, loanTypes, guow, penalty)
	collateralUC := ucCollateral.NewUsecase(guow)

	// Handlers
	h := httpadp.NewHandler()
	userH := httpadp.NewUserHandler(userUC)
	applicationH := httpadp.NewApplicationHandler(applicationUC)
	repaymentH := httpadp.NewRepaymentHandler(repaymentUC)
	collateralH := httpadp.NewCollateralHandler(collateralUC)
	loanTypeH := httpadp.NewLoanTypeHandler(loanTypes)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/users", userH.Register)
	e.POST("/users/login", userH.Login)
	e.GET("/users/:user_id", userH.Get)
	e.GET("/users/:user_id/eligibility", applicationH.Eligibility)
	e.GET("/users/:user_id/history", applicationH.History)

	e.GET("/loan-types", loanTypeH.List)

	e.POST("/applications", applicationH.Submit)
	e.GET("/applications/:application_id", applicationH.Get)
	e.POST("/applications/:application_id/evaluate", applicationH.Evaluate)
	e.POST("/applications/:application_id/approve", applicationH.Approve)
	e.POST("/applications/:application_id/deny", applicationH.Deny)

	e.POST("/applications/:application_id/repayments", repaymentH.Create)
	e.GET("/applications/:application_id/repayments", repaymentH.List)
	e.GET("/applications/:application_id/overdue", repaymentH.Overdue)
	e.POST("/quotes", repaymentH.Quote)

	e.GET("/collaterals/:collateral_id", collateralH.Get)
	e.POST("/collaterals/:collateral_id/verify", collateralH.Verify)
	e.POST("/collaterals/:collateral_id/release", collateralH.Release)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
