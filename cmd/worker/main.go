package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"github.com/emerginginv/traceaid/internal/queue"
	"github.com/emerginginv/traceaid/internal/realtime"
	"github.com/emerginginv/traceaid/internal/util"
	"github.com/emerginginv/traceaid/pkg/leaselock"
	"github.com/emerginginv/traceaid/pkg/logger"
	"github.com/emerginginv/traceaid/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	pgConn, err := pgxpool.New(ctx, util.GetEnv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("Unable to connect to database", "err", err)
	}
	defer pgConn.Close()

	natsURL := util.GetEnvString("NATS_URL", "nats://localhost:4222")
	hub, err := realtime.Connect(natsURL)
	if err != nil {
		logger.Fatal("Unable to connect to realtime hub", "err", err)
	}
	defer hub.Shutdown()

	conn := queue.Init()
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("Failed to open channel", "err", err)
	}
	defer ch.Close()

	if err := queue.SetupQueues(ch); err != nil {
		logger.Fatal("Failed to set up queues", "err", err)
	}

	logger.Info("Listening for messages")

	// Single consumer channel with prefetch=1 so notifications are persisted
	// in publish order.
	consumerCh, err := conn.Channel()
	if err != nil {
		logger.Fatal("Failed to open consumer channel", "err", err)
	}
	defer consumerCh.Close()

	err = consumerCh.Qos(1, 0, true)
	if err != nil {
		logger.Fatal("Failed to set QoS", "err", err)
	}

	msgs, err := consumerCh.Consume(
		queue.NotifyQueue,
		fmt.Sprintf("%s_consumer", queue.NotifyQueue),
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		logger.Fatal("Failed to start consuming", "queue", queue.NotifyQueue, "err", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Info("Stopping message processor")
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Info("Message channel closed")
					return
				}

				if err := queue.ProcessNotifyMessage(ctx, pgConn, hub, msg.Body); err != nil {
					logger.Error("Error processing message", "err", err)
					handleProcessingError(ch, msg, queue.NotifyQueue)
				} else if err := msg.Ack(false); err != nil {
					logger.Error("Failed to ack message", "err", err)
				}
			}
		}
	}()

	go runReminderLoop(ctx, pgConn, ch)

	<-ctx.Done()
	logger.Info("Shutdown signal received, exiting...")
}

// runReminderLoop periodically scans for overdue tasks. The lease lock keeps
// the scan single-flight when several workers run.
func runReminderLoop(ctx context.Context, pgConn *pgxpool.Pool, ch *amqp.Channel) {
	interval := time.Duration(util.GetEnvInt("REMINDER_INTERVAL_SECONDS", 60)) * time.Second
	locker := leaselock.New(pgConn, 2*interval)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping reminder loop")
			return
		case <-t.C:
			err := locker.Hold(ctx, "reminder_scan", func(ctx context.Context) error {
				return queue.ScanReminders(ctx, pgConn, ch)
			})
			if err != nil && !errors.Is(err, leaselock.ErrBusy) {
				logger.Error("Reminder scan failed", "err", err)
			}
		}
	}
}

func handleProcessingError(ch *amqp.Channel, msg amqp.Delivery, queueName string) {
	retries := 0
	if val, ok := msg.Headers["x-retries"]; ok {
		if v, ok := val.(int32); ok {
			retries = int(v)
		}
	}

	// After 10 attempts the message parks in the dead-letter queue.
	if retries >= 10 {
		dlqName := queueName + "_dlq"
		logger.Info("Sending message to DLQ", "dlq", dlqName)
		pubErr := ch.Publish(
			"",
			dlqName,
			false,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        msg.Body,
				Headers:     msg.Headers,
			},
		)
		if pubErr != nil {
			logger.Error("Failed to publish to DLQ", "dlq", dlqName, "err", pubErr)
			msg.Nack(false, true)
			return
		}
		msg.Ack(false)
		return
	}

	retryName := queueName + "_retry"
	headers := msg.Headers
	if headers == nil {
		headers = amqp.Table{}
	}
	headers["x-retries"] = retries + 1

	pubErr := ch.Publish(
		"",
		retryName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        msg.Body,
			Headers:     headers,
		},
	)
	if pubErr != nil {
		logger.Error("Failed to publish to retry queue", "retry_queue", retryName, "err", pubErr)
		msg.Nack(false, true)
		return
	}
	msg.Ack(false)
}
