package minutes

import (
	"sync/atomic"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
	"github.com/nguyentantai21042004/meeting-minutes/internal/document"
	"github.com/nguyentantai21042004/meeting-minutes/internal/llm"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
)

// Deps are the collaborators the orchestrator sequences.
type Deps struct {
	LLM       llm.Client
	Store     convlog.Store
	Processor processor.Processor
	Writer    document.Writer
	// Now overrides the clock for tests.
	Now func() time.Time
}

type implOrchestrator struct {
	llmCfg       config.LLMConfig
	outputDir    string
	withComplete bool

	llm       llm.Client
	store     convlog.Store
	processor processor.Processor
	writer    document.Writer
	logger    logger.Logger
	now       func() time.Time

	generating   atomic.Bool
	transcribing atomic.Bool
}

// New creates an Orchestrator over the given collaborators.
func New(cfg *config.Config, deps Deps, log logger.Logger) Orchestrator {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &implOrchestrator{
		llmCfg:       cfg.LLM,
		outputDir:    cfg.Paths.Output,
		withComplete: cfg.Document.WantsTranscript(),
		llm:          deps.LLM,
		store:        deps.Store,
		processor:    deps.Processor,
		writer:       deps.Writer,
		logger:       log,
		now:          now,
	}
}
