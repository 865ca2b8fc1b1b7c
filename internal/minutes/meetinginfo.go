package minutes

import (
	"fmt"
	"strings"
)

// MeetingDetails is the structured form of the meeting description.
type MeetingDetails struct {
	Time         string
	Location     string
	Host         string
	Participants string
	Type         string
	Status       string
	Topics       string
	Background   string
	Notes        string
}

// Format renders the description the model receives, with a fill-in hint
// for every empty field.
func (d MeetingDetails) Format() string {
	lines := []struct {
		label, value, hint string
	}{
		{"会议时间", d.Time, "[请填写会议时间]"},
		{"会议地点", d.Location, "[请填写会议地点]"},
		{"主持人", d.Host, "[请填写主持人姓名]"},
		{"参会人员", d.Participants, "[请填写参会人员名单]"},
		{"会议类型", d.Type, "[请填写会议类型]"},
		{"会议状态", d.Status, "[请填写会议状态]"},
		{"会议议题", d.Topics, "[请填写主要议题]"},
		{"会议背景", d.Background, "[请填写会议背景信息]"},
		{"备注", d.Notes, "[请填写其他备注信息]"},
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		value := strings.TrimSpace(l.value)
		if value == "" {
			value = l.hint
		}
		fmt.Fprintf(&b, "%s：%s", l.label, value)
	}
	return b.String()
}

// ParseMeetingDetails reads a description in the "label：value" form back
// into fields. Hints and unknown labels are dropped.
func ParseMeetingDetails(text string) MeetingDetails {
	var d MeetingDetails
	targets := map[string]*string{
		"会议时间": &d.Time,
		"会议地点": &d.Location,
		"主持人":  &d.Host,
		"参会人员": &d.Participants,
		"会议类型": &d.Type,
		"会议状态": &d.Status,
		"会议议题": &d.Topics,
		"会议背景": &d.Background,
		"备注":   &d.Notes,
	}

	for _, line := range strings.Split(text, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "：")
		if !ok {
			continue
		}
		field, known := targets[strings.TrimSpace(key)]
		if !known {
			continue
		}
		value = strings.TrimSpace(value)
		if strings.HasPrefix(value, "[请填写") && strings.HasSuffix(value, "]") {
			value = ""
		}
		*field = value
	}
	return d
}
