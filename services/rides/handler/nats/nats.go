package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/metrics"
	"github.com/piresc/tumpangan/internal/pkg/models"
	natspkg "github.com/piresc/tumpangan/internal/pkg/nats"
	nrpkg "github.com/piresc/tumpangan/internal/pkg/newrelic"
	"github.com/piresc/tumpangan/internal/pkg/requestcontext"
	"github.com/piresc/tumpangan/services/rides"
)

// RidesHandler consumes booking intents from JetStream
type RidesHandler struct {
	ridesUC    rides.RideUC
	natsClient *natspkg.Client
	nrApp      *newrelic.Application
	consumers  []*natspkg.Consumer
}

// NewRidesHandler creates a new rides NATS handler
func NewRidesHandler(
	ridesUC rides.RideUC,
	client *natspkg.Client,
	nrApp *newrelic.Application,
) *RidesHandler {
	return &RidesHandler{
		ridesUC:    ridesUC,
		natsClient: client,
		nrApp:      nrApp,
	}
}

// InitNATSConsumers starts the booking admission consumer. Failed messages
// are acknowledged: admission is idempotent and a failure is logged and
// counted rather than redelivered.
func (h *RidesHandler) InitNATSConsumers(ctx context.Context) error {
	config := natspkg.BookingRequestedConsumerConfig()

	consumer, err := natspkg.NewJetStreamConsumer(ctx, h.natsClient, config, natspkg.AckOnError, h.handleBookingRequestedJS)
	if err != nil {
		logger.Error("Failed to start booking requested consumer",
			logger.String("consumer", config.ConsumerName),
			logger.Err(err))
		return fmt.Errorf("failed to start booking requested consumer: %w", err)
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

// Stop stops every consumer started by InitNATSConsumers
func (h *RidesHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}

// CheckHealth fails when a consumer stopped receiving, and records the
// admission backlog as it goes
func (h *RidesHandler) CheckHealth(ctx context.Context) error {
	if len(h.consumers) == 0 {
		return errors.New("booking consumer not started")
	}
	var backlog uint64
	for _, c := range h.consumers {
		if !c.IsActive() {
			return errors.New("booking consumer stopped")
		}
		pending, err := c.PendingMessages(ctx)
		if err != nil {
			return fmt.Errorf("failed to read consumer backlog: %w", err)
		}
		backlog += pending
	}
	metrics.AdmissionBacklog.Set(float64(backlog))
	return nil
}

func (h *RidesHandler) handleBookingRequestedJS(msg jetstream.Msg) error {
	txn := h.nrApp.StartTransaction("NATS.Rides.HandleBookingRequested")
	defer txn.End()

	nrpkg.AddTransactionAttribute(txn, "message.subject", msg.Subject())
	nrpkg.AddTransactionAttribute(txn, "message.size", len(msg.Data()))
	nrpkg.AddTransactionAttribute(txn, "service", "rides")

	ctx := requestcontext.FromMessageHeader(newrelic.NewContext(context.Background(), txn), msg.Headers())

	if err := h.handleBookingRequested(ctx, msg.Data()); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return err
	}
	return nil
}

func (h *RidesHandler) handleBookingRequested(ctx context.Context, data []byte) error {
	var intent models.BookingIntent
	if err := json.Unmarshal(data, &intent); err != nil {
		metrics.AdmissionsTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("failed to unmarshal booking intent: %w", err)
	}
	ctx = requestcontext.WithUserID(ctx, intent.PassengerID)

	logger.DebugCtx(ctx, "Received booking intent",
		logger.String("ride_id", intent.RideID),
		logger.String("passenger_id", intent.PassengerID),
		logger.Int("seats", intent.Seats))

	if err := h.ridesUC.AdmitBookingRequest(ctx, intent); err != nil {
		return fmt.Errorf("failed to admit booking request: %w", err)
	}
	return nil
}
