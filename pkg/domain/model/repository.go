package model

import (
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/repodeck/pkg/domain/types"
)

// Repository represents one GitHub repository summary from the org repos API
type Repository struct {
	ID          types.RepoID
	Name        string
	Description *string
	HTMLURL     *url.URL
	PushedAt    *time.Time
	Archived    bool
}

// NewRepoID derives a stable repository ID from the repository page URL.
// The list endpoint carries no identity usable across fetches, and a random
// ID would make the same repository a different entity on every reload.
func NewRepoID(htmlURL *url.URL) types.RepoID {
	return types.RepoID(uuid.NewSHA1(uuid.NameSpaceURL, []byte(htmlURL.String())).String())
}
