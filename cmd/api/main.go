package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/softcafe/clinic-admin-api/internal/config"
	"github.com/softcafe/clinic-admin-api/internal/handler"
	appointmenthandler "github.com/softcafe/clinic-admin-api/internal/handler/appointment"
	billinghandler "github.com/softcafe/clinic-admin-api/internal/handler/billing"
	labtesthandler "github.com/softcafe/clinic-admin-api/internal/handler/labtest"
	patienthandler "github.com/softcafe/clinic-admin-api/internal/handler/patient"
	recordhandler "github.com/softcafe/clinic-admin-api/internal/handler/record"
	reporthandler "github.com/softcafe/clinic-admin-api/internal/handler/report"
	staffhandler "github.com/softcafe/clinic-admin-api/internal/handler/staff"
	statisticshandler "github.com/softcafe/clinic-admin-api/internal/handler/statistics"
	"github.com/softcafe/clinic-admin-api/internal/middleware"
	"github.com/softcafe/clinic-admin-api/internal/repository/postgres"
	"github.com/softcafe/clinic-admin-api/internal/router"
	appointmentservice "github.com/softcafe/clinic-admin-api/internal/service/appointment"
	billingservice "github.com/softcafe/clinic-admin-api/internal/service/billing"
	labtestservice "github.com/softcafe/clinic-admin-api/internal/service/labtest"
	patientservice "github.com/softcafe/clinic-admin-api/internal/service/patient"
	recordservice "github.com/softcafe/clinic-admin-api/internal/service/record"
	reportservice "github.com/softcafe/clinic-admin-api/internal/service/report"
	staffservice "github.com/softcafe/clinic-admin-api/internal/service/staff"
	statisticsservice "github.com/softcafe/clinic-admin-api/internal/service/statistics"
	"github.com/softcafe/clinic-admin-api/pkg/logger"
	"github.com/softcafe/clinic-admin-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Setup(&logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	staffRepo := postgres.NewStaffRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	billingRepo := postgres.NewBillingRepository(db)
	recordRepo := postgres.NewRecordRepository(db)
	labTestRepo := postgres.NewLabTestRepository(db)
	logRepo := postgres.NewLogRepository(db)

	hasher := security.NewBcryptHasher(0)

	reportSvc := reportservice.NewService(appointmentRepo, staffRepo, billingRepo)
	statisticsSvc := statisticsservice.NewService(staffRepo, appointmentRepo, logRepo)
	staffSvc := staffservice.NewService(staffRepo, logRepo, hasher, cfg.Pagination.PageSize)
	patientSvc := patientservice.NewService(patientRepo, cfg.Pagination.PageSize)
	appointmentSvc := appointmentservice.NewService(appointmentRepo, staffRepo, patientRepo)
	billingSvc := billingservice.NewService(billingRepo, patientRepo, appointmentRepo, cfg.Pagination.PageSize)
	recordSvc := recordservice.NewService(recordRepo, patientRepo, staffRepo, cfg.Pagination.PageSize)
	labTestSvc := labtestservice.NewService(labTestRepo, recordRepo, cfg.Pagination.PageSize)

	r := router.NewRouter(
		reporthandler.NewHandler(reportSvc),
		statisticshandler.NewHandler(statisticsSvc),
		staffhandler.NewHandler(staffSvc),
		patienthandler.NewHandler(patientSvc),
		appointmenthandler.NewHandler(appointmentSvc),
		billinghandler.NewHandler(billingSvc),
		recordhandler.NewHandler(recordSvc),
		labtesthandler.NewHandler(labTestSvc),
		handler.NewHandler(),
		router.Config{
			RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:        cfg.RateLimit.Burst,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			CORSConfig:       middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}
