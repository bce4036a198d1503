package model_test

import (
	"net/url"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
)

func TestNewRepoID_StableAcrossDecodes(t *testing.T) {
	u1, err := url.Parse("https://github.com/pointfreeco/swift-dependencies")
	gt.NoError(t, err)
	u2, err := url.Parse("https://github.com/pointfreeco/swift-dependencies")
	gt.NoError(t, err)

	gt.V(t, model.NewRepoID(u1)).Equal(model.NewRepoID(u2))
}

func TestNewRepoID_DistinctPerURL(t *testing.T) {
	u1, err := url.Parse("https://github.com/pointfreeco/swift-dependencies")
	gt.NoError(t, err)
	u2, err := url.Parse("https://github.com/pointfreeco/swift-snapshot-testing")
	gt.NoError(t, err)

	gt.V(t, model.NewRepoID(u1) == model.NewRepoID(u2)).Equal(false)
}
