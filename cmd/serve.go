package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "ticket-desk.com/ticket-desk/internal/configs"
	httpapi "ticket-desk.com/ticket-desk/internal/http"
	"ticket-desk.com/ticket-desk/internal/queue"
	repository "ticket-desk.com/ticket-desk/internal/repositories"
	"ticket-desk.com/ticket-desk/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the ticket API with the resolved storage backend and a best-effort task queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		log.Printf("using %s backend (%s)", cfg.Database.Backend, cfg.Database.DSN)

		database := config.NewDatabaseClient(cfg.Database)
		ticketRepo := repository.NewTicketRepository(database)
		userRepo := repository.NewUserRepository(database)

		// The queue is optional: without redis the API still serves, it
		// just stops enqueueing notification tasks.
		redisClient, err := config.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			log.Printf("redis unavailable: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
		publisher := queue.NewRedisPublisher(redisClient, cfg.RedisQueueKey)

		ticketService := services.NewTicketService(ticketRepo, publisher)
		userService := services.NewUserService(userRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		httpapi.Register(e, httpapi.NewHandler(ticketService, userService), cfg.RateLimit, cfg.APIPrefix)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
