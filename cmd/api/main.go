package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scholarduty/duty-backend-go/internal/config"
	appHTTP "github.com/scholarduty/duty-backend-go/internal/handler/http"
	"github.com/scholarduty/duty-backend-go/internal/pkg/clock"
	"github.com/scholarduty/duty-backend-go/internal/pkg/cron"
	"github.com/scholarduty/duty-backend-go/internal/pkg/database"
	"github.com/scholarduty/duty-backend-go/internal/pkg/jwt"
	"github.com/scholarduty/duty-backend-go/internal/repository/postgresql"
	dutyService "github.com/scholarduty/duty-backend-go/internal/service/duty"
	monitoringService "github.com/scholarduty/duty-backend-go/internal/service/monitoring"
	scheduleService "github.com/scholarduty/duty-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	clk, err := clock.New(cfg.Duty.Timezone)
	if err != nil {
		fmt.Println("Error loading duty timezone:", err)
		return
	}

	sessionRepo := postgresql.NewSessionRepository(db)
	scholarRepo := postgresql.NewScholarRepository(db)
	slotRepo := postgresql.NewSlotRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	blockRepo := postgresql.NewBlockRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	dutySvc := dutyService.NewDutyService(
		txManager,
		clk,
		time.Duration(cfg.Duty.GraceMinutes)*time.Minute,
		sessionRepo,
		scholarRepo,
		slotRepo,
	)
	scheduleSvc := scheduleService.NewScheduleService(slotRepo)
	monitoringSvc := monitoringService.NewMonitoringService(
		txManager,
		clk,
		cfg.Duty.PenaltyThreshold,
		entryRepo,
		blockRepo,
		scholarRepo,
	)

	scheduler := cron.NewScheduler(clk)
	reconcileJobs := cron.NewReconcileJobs(dutySvc, clk)
	reconcileJobs.RegisterTriggers(
		scheduler,
		cfg.Duty.MorningSweepHour, cfg.Duty.MorningSweepMinute,
		cfg.Duty.EveningSweepHour, cfg.Duty.EveningSweepMinute,
	)
	scheduler.Start()
	defer scheduler.Stop()

	dutyHandler := appHTTP.NewDutyHandler(dutySvc)
	monitoringHandler := appHTTP.NewMonitoringHandler(monitoringSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(jwtService, dutyHandler, monitoringHandler, scheduleHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	_ = server.Close()
}
