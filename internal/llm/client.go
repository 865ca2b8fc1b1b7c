package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/nguyentantai21042004/meeting-minutes/internal/failure"
)

const tagsPath = "/api/tags"

// TagsURL maps a chat completion URL to the /api/tags URL on the same host.
func TagsURL(apiURL string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("api url %q has no scheme or host", apiURL)
	}
	u.Path = tagsPath
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

func (c *implClient) Probe(ctx context.Context) error {
	resp, err := c.getTags(ctx, c.probeTimeout)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return failure.New(failure.Connectivity, "probe",
			fmt.Sprintf("无法连接到Ollama服务，请确保Ollama正在运行 (status %d)", resp.StatusCode))
	}
	return nil
}

func (c *implClient) ListModels(ctx context.Context) ([]string, error) {
	resp, err := c.getTags(ctx, c.probeTimeout*2)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, failure.New(failure.NonSuccessStatus, "list models", fmt.Sprintf("list models failed: %d", resp.StatusCode))
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, failure.Wrap(failure.MalformedResponse, "list models", "decode model list", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func (c *implClient) getTags(ctx context.Context, timeout time.Duration) (*http.Response, error) {
	tagsURL, err := TagsURL(c.apiURL)
	if err != nil {
		return nil, failure.Wrap(failure.Connectivity, "probe", "invalid api url", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tagsURL, nil)
	if err != nil {
		cancel()
		return nil, failure.Wrap(failure.Connectivity, "probe", "build probe request", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		c.logger.Warn(ctx, "Ollama probe %s failed: %v", tagsURL, err)
		return nil, failure.Wrap(failure.Connectivity, "probe", "无法连接到Ollama服务，请确保Ollama正在运行", err)
	}
	resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelBody releases the request context once the body is closed.
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

func (c *implClient) Complete(ctx context.Context, chat ChatRequest) (*ChatResponse, error) {
	body, err := json.Marshal(chat)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, failure.Wrap(failure.Connectivity, "complete", "build completion request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug(ctx, "POST %s model=%s prompt_chars=%d", c.apiURL, chat.Model, promptLength(chat))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, failure.New(failure.NonSuccessStatus, "complete", statusMessage(resp.StatusCode, data))
	}

	var out ChatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, failure.Wrap(failure.MalformedResponse, "parse", "模型响应格式错误", err)
	}
	out.StatusCode = resp.StatusCode
	if len(out.Choices) == 0 {
		return &out, failure.New(failure.MalformedResponse, "parse", "模型响应格式错误")
	}

	c.logger.Debug(ctx, "completion received: %d chars", len(out.Content()))
	return &out, nil
}

func classifyTransport(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return failure.Wrap(failure.Timeout, "complete",
			"请求超时，请检查网络连接或模型响应时间", err)
	}
	return failure.Wrap(failure.Connectivity, "complete",
		"连接错误，请确保Ollama服务正在运行", err)
}

// statusMessage renders "API请求失败: <code>" plus the body's error field when present.
func statusMessage(code int, body []byte) string {
	msg := fmt.Sprintf("API请求失败: %d", code)

	var payload struct {
		Error interface{} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != nil {
		switch v := payload.Error.(type) {
		case string:
			msg += " - " + v
		case map[string]interface{}:
			if m, ok := v["message"].(string); ok {
				msg += " - " + m
			} else {
				msg += fmt.Sprintf(" - %v", v)
			}
		default:
			msg += fmt.Sprintf(" - %v", v)
		}
	}
	return msg
}

func promptLength(chat ChatRequest) int {
	n := 0
	for _, m := range chat.Messages {
		n += len([]rune(m.Content))
	}
	return n
}
