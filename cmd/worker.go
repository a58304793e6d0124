package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "ticket-desk.com/ticket-desk/internal/configs"
	"ticket-desk.com/ticket-desk/internal/queue"
	"ticket-desk.com/ticket-desk/internal/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start the background task worker",
	Long:  "Drains the shared task queue and executes notification tasks, reconnecting to redis indefinitely",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		dial := func() (worker.Conn, error) {
			client, err := config.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				return nil, err
			}
			return queue.NewRedisConsumer(client, cfg.RedisQueueKey), nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		worker.New(dial).Run(ctx)

		log.Println("worker shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
