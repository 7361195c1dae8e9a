package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beacon/config"
	"beacon/internal/delivery/trigger"
	"beacon/internal/delivery/worker/validator"
	"beacon/internal/domain/constants"
	"beacon/internal/domain/entity"
	mockUsecase "beacon/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T, env string) (
	*echo.Echo,
	*PushHandler,
	*mockUsecase.MockMessageUsecase,
) {
	messages := mockUsecase.NewMockMessageUsecase(t)
	events := mockUsecase.NewMockEventUsecase(t)
	records := mockUsecase.NewMockRecordUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	dispatcher := trigger.NewDispatcher(trigger.DispatcherParams{
		Logger:   logger,
		Messages: messages,
		Events:   events,
		Records:  records,
	})

	cfg := &config.Config{}
	cfg.Env.Env = env

	handler := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     logger,
		Dispatcher: dispatcher,
	})

	e := echo.New()
	e.Validator = validator.New()

	return e, handler, messages
}

func pushBody(t *testing.T, event *trigger.Event) string {
	raw, err := json.Marshal(event)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(raw),
			"messageId": "pubsub-1",
		},
		"subscription": "projects/demo/subscriptions/firestore-triggers",
	})
	require.NoError(t, err)

	return string(body)
}

func messageCreateEvent(docID string) *trigger.Event {
	chatID := "c1"
	senderID := "A"
	text := "selam"

	return &trigger.Event{Value: trigger.Value{
		Name: "projects/demo/databases/(default)/documents/messages/" + docID,
		Fields: map[string]trigger.FieldValue{
			"chatId":   {StringValue: &chatID},
			"senderId": {StringValue: &senderID},
			"text":     {StringValue: &text},
		},
	}}
}

func doPush(e *echo.Echo, handler *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.HandlePush(c)

	return rec
}

func TestHandlePush_DispatchesTriggerEvent(t *testing.T) {
	e, handler, messages := createTestPushHandler(t, constants.EnvDevelop)

	messages.EXPECT().NotifyMessageCreated(mock.Anything, &entity.Message{
		ID:       "m1",
		ChatID:   "c1",
		SenderID: "A",
		Text:     "selam",
	}).Return(nil)

	rec := doPush(e, handler, pushBody(t, messageCreateEvent("m1")), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_RetryableFailureReturns503(t *testing.T) {
	e, handler, messages := createTestPushHandler(t, constants.EnvDevelop)

	messages.EXPECT().NotifyMessageCreated(mock.Anything, mock.Anything).
		Return(errors.New("push backend down"))

	rec := doPush(e, handler, pushBody(t, messageCreateEvent("m2")), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_NonCreateAcknowledged(t *testing.T) {
	e, handler, _ := createTestPushHandler(t, constants.EnvDevelop)

	event := messageCreateEvent("m3")
	event.OldValue = event.Value

	rec := doPush(e, handler, pushBody(t, event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MissingData_BadRequest(t *testing.T) {
	e, handler, _ := createTestPushHandler(t, constants.EnvDevelop)

	rec := doPush(e, handler, `{"message":{"messageId":"pubsub-1"}}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_InvalidBase64_BadRequest(t *testing.T) {
	e, handler, _ := createTestPushHandler(t, constants.EnvDevelop)

	rec := doPush(e, handler, `{"message":{"data":"not-base64!!"}}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_InvalidEnvelopeJSON_BadRequest(t *testing.T) {
	e, handler, _ := createTestPushHandler(t, constants.EnvDevelop)

	data := base64.StdEncoding.EncodeToString([]byte("not json"))
	rec := doPush(e, handler, `{"message":{"data":"`+data+`"}}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_MissingAuthOutsideDevelop_Unauthorized(t *testing.T) {
	e, handler, _ := createTestPushHandler(t, constants.EnvProduction)

	rec := doPush(e, handler, pushBody(t, messageCreateEvent("m4")), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandlePush_MalformedAuthHeader_Unauthorized(t *testing.T) {
	e, handler, _ := createTestPushHandler(t, constants.EnvProduction)

	header := http.Header{}
	header.Set("Authorization", "Basic abc123")
	rec := doPush(e, handler, pushBody(t, messageCreateEvent("m5")), header)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
