package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	OrgName         string
	RepoID          string
	RequestID       string
	EventName       string
	SegmentWriteKey string
)

// NewRequestID returns a new random request ID
func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x SegmentWriteKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SegmentWriteKey) String() string {
	return "***********"
}
