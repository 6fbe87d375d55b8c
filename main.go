package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/mkhubaishan/mk-portfolio/internal/analytics"
	"github.com/mkhubaishan/mk-portfolio/internal/config"
	"github.com/mkhubaishan/mk-portfolio/internal/content"
	"github.com/mkhubaishan/mk-portfolio/internal/i18n"
	"github.com/mkhubaishan/mk-portfolio/internal/web"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bundle, err := i18n.Load()
	if err != nil {
		log.Fatalf("translations: %v", err)
	}

	var (
		store   *analytics.Store
		tracker *analytics.Tracker
	)
	if cfg.TrackingEnabled {
		store, err = analytics.Open(ctx, cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()
		tracker = analytics.NewTracker(store)

		retention, err := analytics.NewRetention(store, cfg.Retention, cfg.CleanupSchedule)
		if err != nil {
			log.Fatalf("retention: %v", err)
		}
		retention.Start()
		defer retention.Stop()

		log.Println("Privacy: Visitor tracking enabled with hashed IP addresses")
		if cfg.AdminEnabled() {
			log.Printf("Admin access available at: /admin/login")
		}
	}

	srv, err := web.New(web.Options{
		Config:    cfg,
		Bundle:    bundle,
		Portfolio: &content.Default,
		Store:     store,
		Tracker:   tracker,
		Version:   version,
	})
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Handler(),
	}

	go func() {
		log.Printf("Listening on %s (version %s)", cfg.Addr(), version)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if tracker != nil {
		tracker.Wait()
	}
}
