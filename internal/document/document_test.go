package document

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
)

func testWriter() Writer {
	cfg := &config.Config{}
	cfg.SetDefaults()
	return New(cfg.Document)
}

func TestFileNames(t *testing.T) {
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	if got := MinutesFileName(at); got != "会议纪要_20240309_140507.docx" {
		t.Errorf("MinutesFileName() = %q", got)
	}
	if got := CompleteFileName(at); got != "会议完整信息_20240309_140507.docx" {
		t.Errorf("CompleteFileName() = %q", got)
	}
}

func TestParseMarkdown(t *testing.T) {
	input := "<think>\nplanning\n</think>\n# 会议纪要\n\n## 会议议题\n- 预算\n* **人员**安排\n1. 第一项\n---\n普通段落"
	want := []block{
		{kind: blockHeading, level: 1, text: "会议纪要"},
		{kind: blockHeading, level: 2, text: "会议议题"},
		{kind: blockBullet, text: "预算"},
		{kind: blockBullet, text: "**人员**安排"},
		{kind: blockNumbered, text: "1. 第一项"},
		{kind: blockText, text: "普通段落"},
	}

	got := parseMarkdown(input)
	if len(got) != len(want) {
		t.Fatalf("parseMarkdown() returned %d blocks, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("block %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStripThinking(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"<think>a\nb</think>\n纪要", "纪要"},
		{"纪要内容", "纪要内容"},
		{"  <think></think>  ", ""},
	}
	for _, tt := range tests {
		if got := StripThinking(tt.in); got != tt.want {
			t.Errorf("StripThinking(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSizeForLevel(t *testing.T) {
	w := testWriter().(*implWriter)
	tests := map[int]uint64{1: 14, 2: 13, 3: 12, 6: 12}
	for level, want := range tests {
		if got := w.sizeForLevel(level); got != want {
			t.Errorf("sizeForLevel(%d) = %d, want %d", level, got, want)
		}
	}
}

func documentXML(t *testing.T, path string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open docx: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open document.xml: %v", err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read document.xml: %v", err)
		}
		return string(data)
	}
	t.Fatal("word/document.xml not found")
	return ""
}

func TestWriteDocuments(t *testing.T) {
	w := testWriter()
	dir := t.TempDir()
	m := Meeting{
		Info:        "会议时间：2024-01-01",
		Minutes:     "# 会议纪要\n- **预算**通过",
		Transcript:  "讨论了预算",
		GeneratedAt: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	}

	minutes := filepath.Join(dir, "minutes.docx")
	if err := w.WriteMinutes(m, minutes); err != nil {
		t.Fatalf("WriteMinutes() error = %v", err)
	}
	body := documentXML(t, minutes)
	for _, want := range []string{sectionInfo, "会议时间：2024-01-01", "预算", "生成时间：2024年01月01日 09:30:00"} {
		if !strings.Contains(body, want) {
			t.Errorf("minutes document missing %q", want)
		}
	}
	if strings.Contains(body, sectionTranscript) {
		t.Errorf("minutes document contains transcript section")
	}

	complete := filepath.Join(dir, "complete.docx")
	if err := w.WriteComplete(m, complete); err != nil {
		t.Fatalf("WriteComplete() error = %v", err)
	}
	body = documentXML(t, complete)
	for _, want := range []string{completePrefix, sectionTranscript, "讨论了预算"} {
		if !strings.Contains(body, want) {
			t.Errorf("complete document missing %q", want)
		}
	}
}
