package usecase

import (
	"time"

	"github.com/secmon-lab/repodeck/pkg/infra"
)

type UseCase struct {
	clients    *infra.Clients
	appVersion string
}

type Option func(*UseCase)

// WithAppVersion sets the application version attached to analytics events
func WithAppVersion(version string) Option {
	return func(x *UseCase) {
		x.appVersion = version
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:    clients,
		appVersion: "dev",
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// Now returns the current time from the injected clock
func (x *UseCase) Now() time.Time {
	return x.clients.Clock()()
}
