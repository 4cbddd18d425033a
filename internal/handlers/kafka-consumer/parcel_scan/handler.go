package parcel_scan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"swiftship/internal/entities"
	ledgerservice "swiftship/internal/service/ledger"
	scanservice "swiftship/internal/service/scan"
	"swiftship/pkg/logger"
)

// scanEvent - формат сообщения со сканеров сортировочных узлов.
type scanEvent struct {
	TrackingID  string `json:"trackingId"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type Handler struct {
	scanService              Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, scanService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		scanService:              scanService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("parcel.scan: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("parcel.scan: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event scanEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("parcel.scan handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_id", event.TrackingID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("parcel.scan processing")

	parcelScan := entities.ParcelScan{
		TrackingID:  event.TrackingID,
		Status:      entities.ParcelStatusType(event.Status),
		Location:    event.Location,
		Description: event.Description,
	}

	trackingEvent, err := h.scanService.ProcessScan(ctx, parcelScan)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.scan handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, scanservice.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.scan handler unknown status, skipping")

		case errors.Is(err, ledgerservice.ErrParcelNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.scan handler parcel not found")

		case errors.Is(err, ledgerservice.ErrIllegalTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.scan handler illegal status transition")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.scan handler failed to process scan")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("tracking_id", event.TrackingID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", trackingEvent.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("parcel.scan: processed")

	sess.MarkMessage(message, "")
	return false
}
