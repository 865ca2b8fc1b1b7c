package minutes

import (
	"fmt"
	"regexp"
)

const (
	placeholderInfo       = "[请根据会议描述信息填写]"
	placeholderExtract    = "[请根据会议内容提取]"
	placeholderTranscript = "[请根据会议录音文本整理]"

	fallbackPrompt = "请根据以下会议录音文本和会议描述信息，生成一份格式化的会议纪要。\n\n会议描述信息：\n%s\n\n会议录音文本：\n%s"
)

var reSlot = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// BuildPrompt fills the named {slot}s of template. meeting_info and
// transcription come from the caller, the other known slots get fixed
// placeholders and unknown slots are left as written. An empty template
// falls back to a built-in prompt.
func BuildPrompt(template, meetingInfo, transcription string) string {
	if template == "" {
		return fmt.Sprintf(fallbackPrompt, meetingInfo, transcription)
	}

	slots := map[string]string{
		"meeting_info":     meetingInfo,
		"transcription":    transcription,
		"meeting_time":     placeholderInfo,
		"meeting_location": placeholderInfo,
		"host":             placeholderInfo,
		"participants":     placeholderInfo,
		"topics":           placeholderExtract,
		"content":          placeholderTranscript,
		"decisions":        placeholderExtract,
		"actions":          placeholderExtract,
	}

	// Single pass: substituted values are never scanned again.
	return reSlot.ReplaceAllStringFunc(template, func(match string) string {
		if v, ok := slots[match[1:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
