package usecase

import (
	"time"

	"personal-agent/internal/agent"
	"personal-agent/internal/agent/orchestrator"
	"personal-agent/internal/extractor"
	"personal-agent/internal/routing"
	pkgLog "personal-agent/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	extract  extractor.Extractor
	engine   *routing.Chain
	registry *agent.ToolRegistry
	orch     *orchestrator.Orchestrator
	now      func() time.Time
}

// New creates the assistant UseCase.
func New(
	l pkgLog.Logger,
	extract extractor.Extractor,
	engine *routing.Chain,
	registry *agent.ToolRegistry,
	orch *orchestrator.Orchestrator,
) *implUseCase {
	return &implUseCase{
		l:        l,
		extract:  extract,
		engine:   engine,
		registry: registry,
		orch:     orch,
		now:      time.Now,
	}
}
