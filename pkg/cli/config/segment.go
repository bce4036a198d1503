package config

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/repodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/repodeck/pkg/domain/types"
	"github.com/secmon-lab/repodeck/pkg/infra/segment"
	"github.com/secmon-lab/repodeck/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Segment struct {
	writeKey string
}

func (x *Segment) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "segment-write-key",
			Usage:       "Segment write key (analytics disabled if empty)",
			Category:    "Segment",
			Sources:     cli.EnvVars("REPODECK_SEGMENT_WRITE_KEY"),
			Destination: &x.writeKey,
		},
	}
}

// NewTracker returns a live Segment tracker, or the null tracker when no
// write key is configured
func (x *Segment) NewTracker(ctx context.Context) (interfaces.Tracker, error) {
	if x.writeKey == "" {
		logging.From(ctx).Warn("segment is not configured, analytics disabled")
		return segment.NewNull(), nil
	}

	return segment.New(types.SegmentWriteKey(x.writeKey))
}

func (x *Segment) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("WriteKey", types.SegmentWriteKey(x.writeKey)),
	)
}
