package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/tumpangan/internal/pkg/constants"
)

const (
	streamMaxBytes = 100 * 1024 * 1024
	streamMaxMsgs  = 1000000
)

// DefaultStreamConfigs returns the streams the rides service publishes to.
// Booking intents outlive notifications so a stalled consumer can catch up.
func DefaultStreamConfigs() []StreamConfig {
	return []StreamConfig{
		fileStream(constants.StreamBooking, constants.SubjectBookingRequested, 7*24*time.Hour),
		fileStream(constants.StreamNotification, constants.SubjectNotificationBooking, 3*24*time.Hour),
	}
}

func fileStream(name, subject string, maxAge time.Duration) StreamConfig {
	return StreamConfig{
		Name:      name,
		Subjects:  []string{subject},
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
		Replicas:  1,
		MaxAge:    maxAge,
		MaxBytes:  streamMaxBytes,
		MaxMsgs:   streamMaxMsgs,
		Discard:   jetstream.DiscardOld,
	}
}

// BookingRequestedConsumerConfig is the durable consumer that admits booking
// intents. An intent is redelivered at most twice before it is dropped.
func BookingRequestedConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		StreamName:    constants.StreamBooking,
		ConsumerName:  constants.ConsumerBookingRequestedRides,
		FilterSubject: constants.SubjectBookingRequested,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    3,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
		MaxAckPending: 1000,
	}
}
