package document

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	sectionInfo       = "会议基本信息"
	sectionMinutes    = "会议纪要"
	sectionTranscript = "会议录音文本"
	generatedLayout   = "2006年01月02日 15:04:05"
)

func (w *implWriter) WriteMinutes(m Meeting, path string) error {
	if err := w.write(minutesPrefix, m, false, path); err != nil {
		return fmt.Errorf("write minutes document: %w", err)
	}
	return nil
}

func (w *implWriter) WriteComplete(m Meeting, path string) error {
	if err := w.write(completePrefix, m, true, path); err != nil {
		return fmt.Errorf("write complete document: %w", err)
	}
	return nil
}

func (w *implWriter) write(title string, m Meeting, withTranscript bool, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	w.addStyledRun(doc.AddParagraph(""), title, true, w.titleSize)

	w.addHeading(doc, sectionInfo)
	w.addPlain(doc, m.Info)

	w.addHeading(doc, sectionMinutes)
	w.addMarkdown(doc, m.Minutes)

	if withTranscript {
		w.addHeading(doc, sectionTranscript)
		w.addPlain(doc, m.Transcript)
	}

	doc.AddParagraph("")
	w.addStyledRun(doc.AddParagraph(""), GeneratedLine(m.GeneratedAt.Format(generatedLayout)), false, w.bodySize)

	return doc.SaveTo(path)
}

// GeneratedLine renders the footer stamp for a formatted time.
func GeneratedLine(formatted string) string {
	return "生成时间：" + formatted
}

func (w *implWriter) addHeading(doc *docx.RootDoc, text string) {
	w.addStyledRun(doc.AddParagraph(""), text, true, w.headingSize)
}

// addPlain writes one paragraph per non-empty line.
func (w *implWriter) addPlain(doc *docx.RootDoc, text string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		doc.AddParagraph("").AddText(trimmed).Font(w.font).Size(w.bodySize).Color("000000")
	}
}

func (w *implWriter) addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(w.font).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
