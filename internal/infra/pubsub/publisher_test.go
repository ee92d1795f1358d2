package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storerating/config"
	"storerating/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRatingEvent() *service.RatingEvent {
	return &service.RatingEvent{
		RequestID:  "req-1",
		Action:     service.RatingCreated,
		RatingID:   "rating-1",
		StoreID:    "store-1",
		UserID:     "user-1",
		Value:      4,
		OccurredAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: newDiscardLogger(),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {}} {
		publisher, err := NewEventPublisher(newPublisherParams(t, cfg))
		require.NoError(t, err)
		require.IsType(t, &noopPublisher{}, publisher)

		assert.NoError(t, publisher.PublishRatingEvent(context.Background(), newRatingEvent()))
		assert.NoError(t, publisher.Close())
	}
}

func TestNewEventPublisher_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: ProviderLocal}},
		{"google without project", &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "ratings"}},
		{"google without topic", &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "demo"}},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newPublisherParams(t, tt.cfg))
			assert.Error(t, err)
		})
	}
}

func TestNewEventPublisher_Local(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
		Provider:      ProviderLocal,
		LocalEndpoint: "http://localhost:9999/events",
	}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestEventAttributes(t *testing.T) {
	attrs := eventAttributes(newRatingEvent())
	assert.Equal(t, map[string]string{
		"action":     "rating.created",
		"store_id":   "store-1",
		"user_id":    "user-1",
		"request_id": "req-1",
	}, attrs)

	purge := eventAttributes(&service.RatingEvent{Action: service.RatingsPurged, StoreID: "store-9"})
	assert.Equal(t, map[string]string{"action": "ratings.purged", "store_id": "store-9"}, purge)
}

func TestLocalHTTPPublisher_PublishRatingEvent(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newRatingEvent()

	require.NoError(t, publisher.PublishRatingEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "rating.created", received.Message.Attributes["action"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.RatingEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishRatingEvent(context.Background(), newRatingEvent())
	assert.ErrorContains(t, err, "500")
}

func TestOrderingKey(t *testing.T) {
	assert.Equal(t, "store:store-1", orderingKey(newRatingEvent()))
	assert.Equal(t, "user:user-9", orderingKey(&service.RatingEvent{Action: service.RatingsPurged, UserID: "user-9"}))
	assert.Empty(t, orderingKey(&service.RatingEvent{Action: service.RatingsPurged}))
}
