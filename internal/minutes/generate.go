package minutes

import (
	"context"
	"errors"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
	"github.com/nguyentantai21042004/meeting-minutes/internal/failure"
	"github.com/nguyentantai21042004/meeting-minutes/internal/llm"
)

// attempt tracks one Generate call up to its single log append.
type attempt struct {
	o        *implOrchestrator
	observer Observer
	started  time.Time
	state    State
	entry    convlog.Entry
}

func (o *implOrchestrator) Generate(ctx context.Context, in GenerateInput) (*GenerateResult, error) {
	if !o.generating.CompareAndSwap(false, true) {
		return nil, failure.New(failure.Busy, "generate", "会议纪要正在生成中，请稍候")
	}
	defer o.generating.Store(false)

	a := &attempt{
		o:        o,
		observer: in.Observer,
		started:  o.now(),
		state:    Idle,
		entry: convlog.Entry{
			MeetingInfo:   in.MeetingInfo,
			Transcription: in.Transcription,
			CustomPrompt:  in.CustomPrompt,
			ModelName:     o.llmCfg.Model,
			APIURL:        o.llm.APIURL(),
		},
	}

	a.enter(ctx, Connecting)
	if err := o.llm.Probe(ctx); err != nil {
		return a.fail(ctx, err)
	}

	a.enter(ctx, Prompting)
	template := in.CustomPrompt
	if template == "" {
		template = o.llmCfg.DefaultPrompt
	}
	req := llm.ChatRequest{
		Model:       o.llmCfg.Model,
		Messages:    []llm.Message{{Role: "user", Content: BuildPrompt(template, in.MeetingInfo, in.Transcription)}},
		Stream:      false,
		Temperature: o.llmCfg.SamplingTemperature(),
		MaxTokens:   o.llmCfg.MaxTokens,
	}
	a.entry.Request = requestData(req)

	a.enter(ctx, Calling)
	resp, err := o.llm.Complete(ctx, req)
	if err != nil && !failure.Is(err, failure.NonSuccessStatus) && !failure.Is(err, failure.MalformedResponse) {
		return a.fail(ctx, err)
	}

	a.enter(ctx, Parsing)
	if err != nil {
		return a.fail(ctx, err)
	}

	a.entry.Response = responseData(resp)
	a.entry.ProcessingTime = a.elapsed().Seconds()
	sessionID := o.store.Append(ctx, a.entry)
	a.enter(ctx, Done)

	result := &GenerateResult{
		Minutes:        resp.Content(),
		SessionID:      sessionID,
		State:          Done,
		ProcessingTime: a.elapsed(),
	}
	if resp.Usage != nil {
		result.TotalTokens = resp.Usage.TotalTokens
	}
	o.logger.Info(ctx, "Minutes generated: session=%s chars=%d time=%.2fs",
		sessionID, len([]rune(result.Minutes)), result.ProcessingTime.Seconds())
	return result, nil
}

func (a *attempt) enter(ctx context.Context, s State) {
	a.state = s
	a.o.logger.Debug(ctx, "Minutes generation state: %s", s)
	if a.observer != nil {
		a.observer(s, s.progress())
	}
}

func (a *attempt) elapsed() time.Duration {
	return a.o.now().Sub(a.started)
}

// fail logs the attempt and returns err unchanged so callers can branch on its kind.
func (a *attempt) fail(ctx context.Context, err error) (*GenerateResult, error) {
	at := a.state
	a.entry.Error = errorMessage(err)
	a.entry.Response = nil
	a.entry.ProcessingTime = a.elapsed().Seconds()
	sessionID := a.o.store.Append(ctx, a.entry)
	a.enter(ctx, Failed)

	a.o.logger.Error(ctx, "Minutes generation failed in %s: session=%s kind=%s: %v",
		at, sessionID, failure.KindOf(err), err)
	return &GenerateResult{SessionID: sessionID, State: Failed, ProcessingTime: a.elapsed()}, err
}

// errorMessage prefers the user-facing message of a classified failure.
func errorMessage(err error) string {
	var fe *failure.Error
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	return err.Error()
}

func requestData(req llm.ChatRequest) convlog.RequestData {
	messages := make([]convlog.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = convlog.Message{Role: m.Role, Content: m.Content}
	}
	stream := req.Stream
	temperature := req.Temperature
	maxTokens := req.MaxTokens
	return convlog.RequestData{
		Model:       req.Model,
		Messages:    messages,
		Stream:      &stream,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}
}

func responseData(resp *llm.ChatResponse) *convlog.ResponseData {
	out := &convlog.ResponseData{
		StatusCode: resp.StatusCode,
		Choices:    make([]convlog.Choice, len(resp.Choices)),
	}
	for i, c := range resp.Choices {
		out.Choices[i] = convlog.Choice{
			Index:        c.Index,
			Message:      convlog.Message{Role: c.Message.Role, Content: c.Message.Content},
			FinishReason: c.FinishReason,
		}
	}
	if resp.Usage != nil {
		out.Usage = &convlog.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out
}
