package document

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx/docx"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	// Reasoning models wrap their chain of thought in <think> tags.
	reThink = regexp.MustCompile(`(?s)<think>.*?</think>`)
)

// blockKind classifies one markdown line.
type blockKind int

const (
	blockText blockKind = iota
	blockHeading
	blockBullet
	blockNumbered
)

type block struct {
	kind  blockKind
	level int
	text  string
}

// parseMarkdown splits minutes text into renderable blocks.
func parseMarkdown(markdown string) []block {
	markdown = StripThinking(markdown)

	var blocks []block
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), text: m[2]})
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			blocks = append(blocks, block{kind: blockBullet, text: m[1]})
			continue
		}
		if reNumbered.MatchString(trimmed) {
			blocks = append(blocks, block{kind: blockNumbered, text: trimmed})
			continue
		}
		blocks = append(blocks, block{kind: blockText, text: trimmed})
	}
	return blocks
}

// StripThinking removes <think> sections emitted by reasoning models.
func StripThinking(s string) string {
	return strings.TrimSpace(reThink.ReplaceAllString(s, ""))
}

func (w *implWriter) addMarkdown(doc *docx.RootDoc, markdown string) {
	for _, b := range parseMarkdown(markdown) {
		p := doc.AddParagraph("")
		switch b.kind {
		case blockHeading:
			w.addStyledRun(p, b.text, true, w.sizeForLevel(b.level))
		case blockBullet:
			w.addRichText(p, "• "+b.text)
		default:
			w.addRichText(p, b.text)
		}
	}
}

// sizeForLevel shrinks headings one point per level below the section size.
func (w *implWriter) sizeForLevel(level int) uint64 {
	size := int(w.headingSize) - (level - 1)
	if size < int(w.bodySize) {
		return w.bodySize
	}
	return uint64(size)
}

func (w *implWriter) addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(w.font).Size(w.bodySize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(w.font).Size(w.bodySize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
