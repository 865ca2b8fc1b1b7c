package config

const (
	DefaultConfigPath = "config.yaml"
	DefaultAPIURL     = "http://127.0.0.1:11434/v1/chat/completions"
	DefaultModel      = "deepseek-r1:1.5b"

	DefaultTemperature   = 0.7
	DefaultRetentionDays = 30
)

// DefaultPrompt declares every named slot the minutes generator knows how to fill.
const DefaultPrompt = `请根据以下会议录音文本和会议描述信息，生成一份格式化的会议纪要。

会议描述信息：
{meeting_info}

会议录音文本：
{transcription}

请按照以下格式生成会议纪要：

# 会议纪要

## 会议基本信息
- 会议时间：{meeting_time}
- 会议地点：{meeting_location}
- 主持人：{host}
- 参会人员：{participants}

## 会议议题
{topics}

## 会议内容
{content}

## 会议决议
{decisions}

## 后续行动
{actions}

请确保会议纪要内容准确、简洁、条理清晰，突出重点内容。`

// MeetingInfoTemplate is offered to users who start with an empty meeting description.
const MeetingInfoTemplate = `会议时间：[请填写会议时间]
会议地点：[请填写会议地点]
主持人：[请填写主持人姓名]
参会人员：[请填写参会人员名单]
会议议题：[请填写主要议题]
会议背景：[请填写会议背景信息]`
