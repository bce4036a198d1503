package model

import (
	"runtime"

	"github.com/secmon-lab/repodeck/pkg/domain/types"
)

// EventRepoTapped is emitted when the user selects a repository from the list
const EventRepoTapped types.EventName = "tapped_repo"

// TrackEvent is an analytics event delivered to the configured tracker
type TrackEvent struct {
	Name       types.EventName
	Properties map[string]string
}

// NewRepoTappedEvent builds the selection event. Properties carry the
// repository name plus client metadata.
func NewRepoTappedEvent(repo *Repository, appVersion string) *TrackEvent {
	return &TrackEvent{
		Name: EventRepoTapped,
		Properties: map[string]string{
			"repo":        repo.Name,
			"os":          runtime.GOOS,
			"app_version": appVersion,
		},
	}
}
