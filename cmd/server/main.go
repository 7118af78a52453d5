package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"memoir/internal/config"
	"memoir/internal/connect"
	"memoir/internal/database"
	"memoir/internal/handlers"
	"memoir/internal/notify"
	"memoir/internal/persistence"
	"memoir/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Restore persisted state and wire the store to mirror every change back
	adapter := persistence.NewAdapter(db)
	st := store.New(adapter.Load())
	st.SetListener(adapter.Save)

	if snapshot := st.Snapshot(); snapshot.CurrentUser != nil {
		log.Printf("Restored state for %s (%d sessions)", snapshot.CurrentUser.Name, len(snapshot.GameSessions))
	} else {
		log.Println("Starting with a fresh state")
	}

	emitter := notify.NewEmitter(st.Snapshot)

	var provider connect.Provider
	if cfg.SimulateConnections {
		provider = connect.NewSimulatedProvider()
	} else {
		log.Println("Warning: no connection directory configured, falling back to simulated connections")
		provider = connect.NewSimulatedProvider()
	}

	mw := handlers.NewMiddleware(st)
	mux := handlers.Routes(
		mw,
		handlers.NewOnboardingHandler(st, adapter),
		handlers.NewFlashcardHandler(st, time.Now),
		handlers.NewJournalHandler(st, time.Now),
		handlers.NewCalendarHandler(st),
		handlers.NewActivityHandler(st, time.Now),
		handlers.NewGameHandler(st, emitter, time.Now),
		handlers.NewCaregiverHandler(st, provider),
		handlers.NewNotificationHandler(emitter),
	)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      mw.Logging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the reminder and encouragement scheduler
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go emitter.Run(ctx)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
