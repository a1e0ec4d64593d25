package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"

	"github.com/jlouisugbo/walking-challenge/internal/auth"
	"github.com/jlouisugbo/walking-challenge/internal/config"
	"github.com/jlouisugbo/walking-challenge/internal/database"
	"github.com/jlouisugbo/walking-challenge/internal/handlers"
	"github.com/jlouisugbo/walking-challenge/internal/middleware"
)

var Version = "dev"

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer)

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.WithStore(store))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := store.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	// Version endpoint
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version": Version,
			"service": "walking-challenge",
		})
	})

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Walking Challenge API",
			"version": Version,
		})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", handlers.Login(jwtService, cfg.AdminPasswordHash))

		api.GET("/leaderboard", handlers.GetLeaderboard)
		api.GET("/teams", handlers.GetTeams)
		api.GET("/stats", handlers.GetStats)
		api.GET("/config", handlers.GetConfig)
		api.GET("/participants/:id", handlers.GetParticipant)
		api.GET("/wildcards", handlers.GetWildcards)
		api.GET("/wildcards/today", handlers.GetTodaysWildcard)
	}

	admin := r.Group("/api", middleware.RequireAdmin(jwtService))
	{
		admin.POST("/participants", handlers.CreateParticipant)
		admin.PUT("/participants/:id", handlers.UpdateParticipant)
		admin.DELETE("/participants/:id", handlers.DeleteParticipant)
		admin.POST("/participants/:id/steps", handlers.UpdateSteps)

		admin.POST("/import/preview", handlers.PreviewImport)
		admin.POST("/import/apply", handlers.ApplyImport)
		admin.POST("/import/historical", handlers.ImportHistorical)

		admin.POST("/wildcards/run", handlers.RunWildcards)
		admin.POST("/milestones/run", handlers.RunWeeklyMilestones)
		admin.POST("/teams/form", handlers.FormTeams)
		admin.PUT("/config", handlers.UpdateConfig)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		color.Green("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited")
}
