package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	videoapp "github.com/narwhalmedia/catalog/internal/application/video"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/config"
)

// ErrMalformedResult marks an encoder result that can never be applied.
var ErrMalformedResult = errors.New("malformed encoder result")

// MediaStatusUpdater applies an encoder result to a video
type MediaStatusUpdater interface {
	Execute(ctx context.Context, cmd videoapp.UpdateMediaStatusCommand) error
}

// Message is the part of a JetStream message the consumer uses
type Message interface {
	Data() []byte
	Subject() string
	Metadata() (*jetstream.MsgMetadata, error)
	Ack() error
	Nak() error
	Term() error
}

// EncoderResult is the message the encoder sends when it finishes a media
type EncoderResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Video  struct {
		ResourceID         string `json:"resource_id"`
		EncodedVideoFolder string `json:"encoded_video_folder"`
		FilePath           string `json:"file_path"`
	} `json:"video"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// DecodeEncoderResult parses data into a media status command.
func DecodeEncoderResult(data []byte) (videoapp.UpdateMediaStatusCommand, *EncoderResult, error) {
	var result EncoderResult
	if err := json.Unmarshal(data, &result); err != nil {
		return videoapp.UpdateMediaStatusCommand{}, nil, fmt.Errorf("%w: %v", ErrMalformedResult, err)
	}
	if result.ID == "" || result.Video.ResourceID == "" {
		return videoapp.UpdateMediaStatusCommand{}, nil, fmt.Errorf("%w: id and video.resource_id are required", ErrMalformedResult)
	}

	status, ok := video.MediaStatusOf(result.Status)
	if !ok {
		return videoapp.UpdateMediaStatusCommand{}, nil, fmt.Errorf("%w: unknown status %q", ErrMalformedResult, result.Status)
	}

	return videoapp.UpdateMediaStatusCommand{
		VideoID:    video.ID(result.ID),
		ResourceID: result.Video.ResourceID,
		Status:     status,
		Folder:     result.Video.EncodedVideoFolder,
		Filename:   result.Video.FilePath,
	}, &result, nil
}

// EncoderConsumer feeds encoder results from JetStream into the media status
// use case. Malformed results are terminated; failed updates are redelivered
// until MaxDeliver and then parked on the dead letter subject.
type EncoderConsumer struct {
	js         jetstream.JetStream
	updater    MediaStatusUpdater
	config     config.NATSConfig
	logger     *zap.Logger
	deadLetter func(ctx context.Context, msg Message, err error)
}

// NewEncoderConsumer creates a consumer for cfg.EncoderResultSubject
func NewEncoderConsumer(client *Client, updater MediaStatusUpdater, cfg config.NATSConfig, logger *zap.Logger) *EncoderConsumer {
	c := newEncoderConsumer(updater, cfg, logger)
	c.js = client.JetStream()
	c.deadLetter = c.sendToDeadLetterQueue
	return c
}

func newEncoderConsumer(updater MediaStatusUpdater, cfg config.NATSConfig, logger *zap.Logger) *EncoderConsumer {
	if cfg.AckWait == 0 {
		cfg.AckWait = config.DefaultAckWait
	}
	if cfg.MaxDeliver == 0 {
		cfg.MaxDeliver = config.DefaultMaxDeliver
	}

	c := &EncoderConsumer{
		updater: updater,
		config:  cfg,
		logger:  logger.Named("encoder_consumer"),
	}
	c.deadLetter = func(ctx context.Context, msg Message, err error) {
		c.logger.Warn("dropping message without dead letter queue",
			zap.String("subject", msg.Subject()),
			zap.Error(err))
	}
	return c
}

// Start creates the durable consumer and processes messages until ctx ends.
func (c *EncoderConsumer) Start(ctx context.Context) error {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, c.config.Stream, jetstream.ConsumerConfig{
		Durable:       c.config.DurableName,
		Description:   "Applies encoder results to video media",
		FilterSubject: c.config.EncoderResultSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWait,
		MaxDeliver:    c.config.MaxDeliver,
		MaxAckPending: 100,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	c.logger.Info("encoder consumer started",
		zap.String("stream", c.config.Stream),
		zap.String("subject", c.config.EncoderResultSubject),
		zap.String("durable", c.config.DurableName),
	)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("encoder consumer stopping")
			return nil
		default:
		}

		batch, err := consumer.Fetch(1, jetstream.FetchMaxWait(5*time.Second))
		if err != nil {
			if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
				c.logger.Error("failed to fetch messages", zap.Error(err))
				time.Sleep(time.Second)
			}
			continue
		}

		for msg := range batch.Messages() {
			c.Handle(ctx, msg)
		}
	}
}

// Handle processes a single encoder result.
func (c *EncoderConsumer) Handle(ctx context.Context, msg Message) {
	cmd, result, err := DecodeEncoderResult(msg.Data())
	if err != nil {
		c.logger.Error("failed to decode encoder result",
			zap.Error(err),
			zap.String("subject", msg.Subject()),
		)
		if err := msg.Term(); err != nil {
			c.logger.Error("failed to terminate message", zap.Error(err))
		}
		return
	}

	if result.Error != nil && result.Error.Message != "" {
		c.logger.Warn("encoder reported an error",
			zap.String("video_id", cmd.VideoID.String()),
			zap.String("resource_id", cmd.ResourceID),
			zap.String("message", result.Error.Message),
		)
	}

	if err := c.updater.Execute(ctx, cmd); err != nil {
		c.logger.Error("failed to apply encoder result",
			zap.Error(err),
			zap.String("video_id", cmd.VideoID.String()),
			zap.String("resource_id", cmd.ResourceID),
		)
		c.handleMessageError(ctx, msg, err)
		return
	}

	if err := msg.Ack(); err != nil {
		c.logger.Error("failed to acknowledge message",
			zap.Error(err),
			zap.String("video_id", cmd.VideoID.String()),
		)
	}
}

func (c *EncoderConsumer) handleMessageError(ctx context.Context, msg Message, err error) {
	metadata, _ := msg.Metadata()

	if metadata != nil && metadata.NumDelivered >= uint64(c.config.MaxDeliver) {
		c.deadLetter(ctx, msg, err)
		if err := msg.Ack(); err != nil {
			c.logger.Error("failed to acknowledge message", zap.Error(err))
		}
		return
	}

	if err := msg.Nak(); err != nil {
		c.logger.Error("failed to nak message", zap.Error(err))
	}
}

func (c *EncoderConsumer) sendToDeadLetterQueue(ctx context.Context, msg Message, originalErr error) {
	dlqMessage := DeadLetterMessage{
		OriginalSubject: msg.Subject(),
		OriginalData:    msg.Data(),
		Error:           originalErr.Error(),
		Timestamp:       time.Now(),
		Consumer:        c.config.DurableName,
	}
	if metadata, _ := msg.Metadata(); metadata != nil {
		dlqMessage.NumDelivered = metadata.NumDelivered
		dlqMessage.Stream = metadata.Stream
	}

	data, err := json.Marshal(dlqMessage)
	if err != nil {
		c.logger.Error("failed to marshal DLQ message", zap.Error(err))
		return
	}

	subject := deadLetterPrefix + c.config.DurableName
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := c.js.Publish(pubCtx, subject, data); err != nil {
		c.logger.Error("failed to send message to DLQ",
			zap.Error(err),
			zap.String("subject", subject),
		)
		return
	}

	c.logger.Warn("message sent to dead letter queue",
		zap.String("original_subject", msg.Subject()),
		zap.String("error", originalErr.Error()),
		zap.Uint64("deliveries", dlqMessage.NumDelivered),
	)
}

// DeadLetterMessage represents a message in the dead letter queue
type DeadLetterMessage struct {
	OriginalSubject string    `json:"original_subject"`
	OriginalData    []byte    `json:"original_data"`
	Error           string    `json:"error"`
	Timestamp       time.Time `json:"timestamp"`
	NumDelivered    uint64    `json:"num_delivered"`
	Stream          string    `json:"stream"`
	Consumer        string    `json:"consumer"`
}
