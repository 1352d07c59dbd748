package app

import (
	"strings"
	"testing"

	"doc-text/config"
)

func TestViewerHeaderShowsVersion(t *testing.T) {
	m := model{
		filePath: "resume.pdf",
		format:   config.FormatPDF,
		data:     []byte("x"),
		loading:  true,
		width:    100,
		height:   30,
	}

	view := m.View()
	if !strings.Contains(view, "doctext v"+Version) {
		t.Errorf("view header missing version %q", Version)
	}
	if !strings.Contains(view, "resume.pdf") {
		t.Errorf("view header missing file path")
	}
}
