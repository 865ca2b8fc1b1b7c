package convlog

// Record is one persisted completion attempt. Exactly one of ResponseData
// (on success) and Error (on failure) is set.
type Record struct {
	SessionID           string        `json:"session_id"`
	Timestamp           string        `json:"timestamp"`
	ModelName           string        `json:"model_name"`
	APIURL              string        `json:"api_url"`
	MeetingInfo         string        `json:"meeting_info"`
	TranscriptionLength int           `json:"transcription_length"`
	CustomPrompt        string        `json:"custom_prompt"`
	RequestData         RequestData   `json:"request_data"`
	ProcessingTime      float64       `json:"processing_time"`
	Success             bool          `json:"success"`
	ResponseData        *ResponseData `json:"response_data,omitempty"`
	Error               string        `json:"error,omitempty"`
}

// RequestData is the logged subset of the outgoing completion request.
type RequestData struct {
	Model       string    `json:"model,omitempty"`
	Messages    []Message `json:"messages,omitempty"`
	Stream      *bool     `json:"stream,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseData struct {
	StatusCode     int      `json:"status_code"`
	Choices        []Choice `json:"choices"`
	Usage          *Usage   `json:"usage,omitempty"`
	ResponseLength int      `json:"response_length"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens"`
}

// Entry carries the caller-side fields of an attempt. A non-empty Error
// marks the attempt as failed; Response is ignored in that case.
type Entry struct {
	Request        RequestData
	Response       *ResponseData
	Error          string
	MeetingInfo    string
	Transcription  string
	CustomPrompt   string
	ModelName      string
	APIURL         string
	ProcessingTime float64
}

// Content returns the first choice's message content, if any.
func (r *ResponseData) Content() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// PruneResult summarises one Prune call.
type PruneResult struct {
	RecordsRemoved int
	FilesRemoved   int
}
