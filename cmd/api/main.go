package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "github.com/asifshaikgit/workforce-sub002/internal/adapter/http"
	mw "github.com/asifshaikgit/workforce-sub002/internal/adapter/middleware"
	"github.com/asifshaikgit/workforce-sub002/internal/adapter/repository/mysql"
	"github.com/asifshaikgit/workforce-sub002/internal/config"
	"github.com/asifshaikgit/workforce-sub002/internal/eventing"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/cache"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/db"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/notify"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/refgen"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/render"
	"github.com/asifshaikgit/workforce-sub002/internal/infrastructure/storage"
	"github.com/asifshaikgit/workforce-sub002/internal/usecase/approval"
	"github.com/asifshaikgit/workforce-sub002/internal/usecase/consolidation"
	ledgerUC "github.com/asifshaikgit/workforce-sub002/internal/usecase/ledger"
	"github.com/asifshaikgit/workforce-sub002/internal/usecase/rate"
	"github.com/asifshaikgit/workforce-sub002/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), logger)
	if err != nil {
		logger.Fatal("mysql connect", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis connect", zap.Error(err))
	}

	uow := mysql.NewGormUoW(gdb)
	placements := mysql.NewPlacementRepository(gdb)
	hourEntries := mysql.NewHourEntryRepository(gdb)
	outboxRepo := mysql.NewOutboxRepository(gdb)

	resolver := rate.NewResolver(placements)
	consolidator := consolidation.NewConsolidator(resolver, hourEntries, placements)
	ledgers := ledgerUC.NewUsecase(uow, refgen.NewCountingGenerator()).
		WithFileStore(storage.NewLocalFileStore(cfg.StorageRoot))
	approvals := approval.NewUsecase(uow)

	// outbox fan-out: committed events drive notifications and rendering
	dispatcher := eventing.NewDispatcher(outboxRepo, eventing.DefaultRegistry(), logger)
	handlers := eventing.NewHandlers(uow,
		notify.NewLogDispatcher(logger),
		render.NewPDFRenderer(cfg.RenderOutputDir),
		logger)
	handlers.Register(dispatcher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dispatcher.Run(ctx, cfg.OutboxPollInterval, cfg.OutboxBatchSize)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())
	e.Use(mw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger))

	h := httpadp.NewHandler()
	lh := httpadp.NewLedgerHandler(ledgers)
	ah := httpadp.NewApprovalHandler(approvals)
	ch := httpadp.NewConsolidationHandler(consolidator)

	e.GET("/health", h.Health)

	e.GET("/placements/:placement_id/consolidation", ch.Preview)

	e.POST("/ledgers", lh.CreateLedger)
	e.GET("/ledgers/:ledger_id", lh.GetLedger)
	e.PATCH("/ledgers/:ledger_id", lh.UpdateLedger)
	e.DELETE("/ledgers/:ledger_id/line-items/:line_item_id", lh.DeleteLineItem)
	e.GET("/ledgers/:ledger_id/activity", lh.GetActivity)

	e.POST("/ledgers/:ledger_id/submit", ah.Submit)
	e.POST("/ledgers/:ledger_id/approve", ah.Approve)
	e.POST("/ledgers/:ledger_id/reject", ah.Reject)
	e.POST("/ledgers/:ledger_id/payments", ah.RecordPayment)
	e.GET("/ledgers/:ledger_id/tracks", ah.Tracks)

	addr := ":" + cfg.AppPort
	go func() {
		logger.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	// Stop the outbox worker, then drain in-flight requests.
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("stopped")
}
