package trigger

import (
	"context"
	"fmt"
	"log/slog"

	"beacon/internal/domain/entity"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Collections with a document-created handler.
const (
	eventsCollection        = "events"
	messagesCollection      = "messages"
	notificationsCollection = "notifications"
)

// retryableError wraps an error to indicate the trigger infrastructure should
// redeliver the event.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryable wraps an error as retryable.
func NewRetryable(err error) error {
	return &retryableError{err: err}
}

// IsRetryable checks if an error should trigger redelivery.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// Dispatcher routes decoded trigger envelopes to the handler registered for
// the document's collection.
type Dispatcher struct {
	logger   *slog.Logger
	messages usecase.MessageUsecase
	events   usecase.EventUsecase
	records  usecase.RecordUsecase
}

// DispatcherParams holds dependencies for the Dispatcher
type DispatcherParams struct {
	fx.In

	Logger   *slog.Logger
	Messages usecase.MessageUsecase
	Events   usecase.EventUsecase
	Records  usecase.RecordUsecase
}

// NewDispatcher creates the trigger dispatcher.
func NewDispatcher(params DispatcherParams) *Dispatcher {
	return &Dispatcher{
		logger:   params.Logger,
		messages: params.Messages,
		events:   params.Events,
		records:  params.Records,
	}
}

// Dispatch runs the handler for one trigger envelope. Envelopes that are not
// document creations, have an unroutable path, or target an unhandled
// collection are dropped without error. Handler failures come back wrapped as
// retryable so the transports can request redelivery.
func (d *Dispatcher) Dispatch(ctx context.Context, event *Event) error {
	if !event.IsCreate() {
		d.logger.Debug("Ignoring non-create trigger", slog.String("name", event.Value.Name))

		return nil
	}

	doc := &event.Value
	collection := doc.Collection()
	docID := doc.DocumentID()
	if collection == "" || docID == "" {
		d.logger.Warn("Unroutable document path", slog.String("name", doc.Name))

		return nil
	}

	d.logger.Info("Processing document-created trigger",
		slog.String("collection", collection),
		slog.String("document_id", docID),
	)

	var err error
	switch collection {
	case messagesCollection:
		err = d.messages.NotifyMessageCreated(ctx, &entity.Message{
			ID:       docID,
			ChatID:   doc.String("chatId"),
			SenderID: doc.String("senderId"),
			Text:     doc.String("text"),
			Type:     doc.String("type"),
		})

	case eventsCollection:
		err = d.events.NotifyEventCreated(ctx, &entity.Event{
			ID:          docID,
			Title:       doc.String("title"),
			Description: doc.String("description"),
		})

	case notificationsCollection:
		err = d.records.NotifyRecordCreated(ctx, &entity.NotificationRecord{
			ID:            docID,
			UserID:        doc.String("userId"),
			Type:          doc.String("type"),
			RelatedUserID: doc.String("relatedUserId"),
			RelatedChatID: doc.String("relatedChatId"),
		})

	default:
		d.logger.Debug("No handler for collection", slog.String("collection", collection))

		return nil
	}

	if err != nil {
		// Handlers only surface transport failures; business no-ops are nil.
		return NewRetryable(err)
	}

	return nil
}
