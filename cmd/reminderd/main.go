package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/robfig/cron/v3"

	"library-lending/internal/config"
	"library-lending/internal/notify"
	"library-lending/internal/repository"
	"library-lending/internal/service"
)

func main() {
	log.Println("Starting overdue reminder scheduler...")

	// .env is optional; viper falls back to real env vars and defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	borrowRepo := repository.NewBorrowRepository(db)
	reports := service.NewReportService(borrowRepo, cfg.Policy())
	notifier := notify.LogNotifier{}

	c := cron.New(cron.WithSeconds(), cron.WithLocation(mustLocation(cfg.Reminder.Timezone)))

	_, err = c.AddFunc(cfg.Reminder.Schedule, func() {
		log.Println("Running overdue reminder job...")
		sent, err := notify.SendReminders(context.Background(), reports, notifier)
		if err != nil {
			log.Printf("Reminder job failed: %v", err)
			return
		}
		log.Printf("Reminder job done, %d reminder(s) sent", sent)
	})
	if err != nil {
		log.Fatalf("Error scheduling reminder job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", cfg.DSN())
	if err != nil {
		return nil, err
	}

	if err := repository.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown timezone %q, using local time", name)
		return time.Local
	}
	return loc
}
