package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "peerlend/internal/adapter/http"
	"peerlend/internal/adapter/middleware"
	"peerlend/internal/adapter/repository/mysql"
	tokenadp "peerlend/internal/adapter/token"
	"peerlend/internal/adapter/verifier"
	"peerlend/internal/config"
	"peerlend/internal/infrastructure/cache"
	"peerlend/internal/infrastructure/db"
	"peerlend/internal/infrastructure/lock"
	applicationUC "peerlend/internal/usecase/application"
	lenderUC "peerlend/internal/usecase/lender"
	loanUC "peerlend/internal/usecase/loan"
	offerUC "peerlend/internal/usecase/offer"
	settlementUC "peerlend/internal/usecase/settlement"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	lenders := mysql.NewLenderRepository(gdb)
	events := mysql.NewEventRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	proofOracle := verifier.NewClient(cfg.VerifierBaseURL)
	transferer := tokenadp.NewClient(cfg.TokenBaseURL)
	guard := lock.NewRedisLocker(rdb, time.Duration(cfg.SettlementLockSecs)*time.Second)

	loanUsecase := loanUC.NewUsecase(loans, events, uow)
	lenderUsecase := lenderUC.NewUsecase(lenders, uow)
	applicationUsecase := applicationUC.NewUsecase(proofOracle, uow)
	offerUsecase := offerUC.NewUsecase(loans, uow)
	settlementUsecase := settlementUC.NewUsecase(transferer, guard, uow)

	h := httpadp.NewHandler()
	loanHandler := httpadp.NewLoanHandler(loanUsecase)
	lenderHandler := httpadp.NewLenderHandler(lenderUsecase)
	applicationHandler := httpadp.NewApplicationHandler(applicationUsecase)
	offerHandler := httpadp.NewOfferHandler(offerUsecase)
	settlementHandler := httpadp.NewSettlementHandler(settlementUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/lenders", lenderHandler.Register)
	e.PUT("/lenders/requirements", lenderHandler.SetRequiredProofs)
	e.POST("/lenders/requirements", lenderHandler.AddRequiredProof)
	e.DELETE("/lenders/requirements/:ref", lenderHandler.RemoveRequiredProof)
	e.GET("/lenders/:address/requirements", lenderHandler.GetRequiredProofs)
	e.GET("/lenders/:address/funded-loans", lenderHandler.GetFundedLoans)

	e.POST("/loans", loanHandler.RequestLoan)
	e.GET("/loans/:loan_id", loanHandler.GetLoan)
	e.GET("/loans/:loan_id/events", loanHandler.GetLoanEvents)
	e.POST("/loans/:loan_id/applications", applicationHandler.Apply)
	e.POST("/loans/:loan_id/reviews", offerHandler.Review)
	e.GET("/loans/:loan_id/offers", offerHandler.GetOffers)
	e.POST("/loans/:loan_id/acceptance", offerHandler.AcceptOffer)
	e.POST("/loans/:loan_id/fund", settlementHandler.FundLoan)
	e.POST("/loans/:loan_id/repay", settlementHandler.RepayLoan)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
