package segment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/segmentio/analytics-go"
	"github.com/secmon-lab/repodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
	"github.com/secmon-lab/repodeck/pkg/domain/types"
	"github.com/secmon-lab/repodeck/pkg/utils/logging"
)

// Tracker delivers analytics events to Segment. Events are enqueued and
// flushed by the underlying client; Close drains the queue.
type Tracker struct {
	client      analytics.Client
	anonymousID string
}

var _ interfaces.Tracker = (*Tracker)(nil)

func New(writeKey types.SegmentWriteKey) (*Tracker, error) {
	if writeKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "segment write key is empty")
	}

	return &Tracker{
		client:      analytics.New(string(writeKey)),
		anonymousID: uuid.NewString(),
	}, nil
}

func (x *Tracker) Track(ctx context.Context, event *model.TrackEvent) error {
	props := analytics.NewProperties()
	for key, value := range event.Properties {
		props.Set(key, value)
	}

	if err := x.client.Enqueue(analytics.Track{
		AnonymousId: x.anonymousID,
		Event:       string(event.Name),
		Properties:  props,
	}); err != nil {
		return goerr.Wrap(err, "failed to enqueue track event", goerr.V("event", event.Name))
	}

	logging.From(ctx).Debug("Enqueued track event", slog.Any("event", event.Name))
	return nil
}

func (x *Tracker) Close() error {
	return x.client.Close()
}

// NullTracker drops all events. Used when analytics is disabled.
type NullTracker struct{}

var _ interfaces.Tracker = (*NullTracker)(nil)

func NewNull() *NullTracker {
	return &NullTracker{}
}

func (x *NullTracker) Track(ctx context.Context, event *model.TrackEvent) error {
	return nil
}

func (x *NullTracker) Close() error {
	return nil
}
