package logview

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
)

const (
	statusSuccess = "成功"
	statusFailed  = "失败"
	unknown       = "未知"
)

// Row is the summary line shown for one record.
type Row struct {
	Time           string
	SessionID      string
	Model          string
	Status         string
	ProcessingTime string
	ResponseLength int
}

// Columns are the headers matching Row.Values.
var Columns = []string{"时间", "会话ID", "模型", "状态", "处理时间(秒)", "响应长度"}

// NewRow summarises r.
func NewRow(r convlog.Record) Row {
	row := Row{
		Time:           displayTime(r.Timestamp),
		SessionID:      orUnknown(r.SessionID),
		Model:          orUnknown(r.ModelName),
		Status:         statusFailed,
		ProcessingTime: fmt.Sprintf("%.2f", r.ProcessingTime),
	}
	if r.Success {
		row.Status = statusSuccess
		if r.ResponseData != nil {
			row.ResponseLength = r.ResponseData.ResponseLength
		}
	}
	return row
}

func (r Row) Values() []string {
	return []string{r.Time, r.SessionID, r.Model, r.Status, r.ProcessingTime, fmt.Sprint(r.ResponseLength)}
}

// displayTime shortens a stored timestamp, falling back to the raw value.
func displayTime(ts string) string {
	if ts == "" {
		return unknown
	}
	t, err := time.Parse(convlog.TimestampLayout, ts)
	if err != nil {
		if t, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return ts
		}
	}
	return t.Format(time.DateTime)
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "无"
	}
	return s
}

// Detail renders every field of r for inspection.
func Detail(r convlog.Record) string {
	var b strings.Builder

	status := statusFailed
	if r.Success {
		status = statusSuccess
	}
	fmt.Fprintf(&b, "会话ID: %s\n", orUnknown(r.SessionID))
	fmt.Fprintf(&b, "时间: %s\n", orUnknown(r.Timestamp))
	fmt.Fprintf(&b, "模型: %s\n", orUnknown(r.ModelName))
	fmt.Fprintf(&b, "API地址: %s\n", orUnknown(r.APIURL))
	fmt.Fprintf(&b, "状态: %s\n", status)
	fmt.Fprintf(&b, "处理时间: %.2f秒\n\n", r.ProcessingTime)
	fmt.Fprintf(&b, "会议信息:\n%s\n\n", orNone(r.MeetingInfo))
	fmt.Fprintf(&b, "录音文本长度: %d 字符\n\n", r.TranscriptionLength)
	fmt.Fprintf(&b, "自定义提示词:\n%s\n\n", orNone(r.CustomPrompt))
	fmt.Fprintf(&b, "请求数据:\n%s\n\n", indentJSON(r.RequestData))

	if r.Success && r.ResponseData != nil {
		resp := r.ResponseData
		fmt.Fprintf(&b, "响应数据:\n")
		fmt.Fprintf(&b, "状态码: %d\n", resp.StatusCode)
		fmt.Fprintf(&b, "响应长度: %d 字符\n", resp.ResponseLength)
		if resp.Usage != nil {
			fmt.Fprintf(&b, "Token使用情况: %s\n", indentJSON(resp.Usage))
		} else {
			fmt.Fprintf(&b, "Token使用情况: {}\n")
		}
		fmt.Fprintf(&b, "\n响应内容:\n%s\n", orNone(resp.Content()))
	} else {
		fmt.Fprintf(&b, "错误信息:\n%s\n", orUnknown(r.Error))
	}
	return b.String()
}

func indentJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
