package usecase

import (
	"time"

	"smartcars-insurance/internal/intent"
	toolsClient "smartcars-insurance/internal/tools/client"
	pkgLog "smartcars-insurance/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	resolver intent.Resolver
	tools    toolsClient.IClient

	// now is injected so age computation is testable.
	now func() time.Time
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, resolver intent.Resolver, tools toolsClient.IClient) *implUseCase {
	return &implUseCase{
		l:        l,
		resolver: resolver,
		tools:    tools,
		now:      time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
