package web

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/philosophercode/itinerary-rewind-demo/internal/staging"
)

func TestWriteStatic(t *testing.T) {
	dir := t.TempDir()
	if err := WriteStatic(dir); err != nil {
		t.Fatalf("writing static assets: %v", err)
	}
	for _, name := range []string{"style.css", "viewer.js", "upload.js"} {
		if _, err := os.Stat(filepath.Join(dir, "static", name)); err != nil {
			t.Errorf("expected static/%s: %v", name, err)
		}
	}
}

func TestRenderUploadKeepsDataURLPreview(t *testing.T) {
	entries := []staging.Entry{{
		ID:      uuid.New(),
		Name:    "a.png",
		Preview: "data:image/png;base64,iVBORw0KGgo=",
	}}

	var buf bytes.Buffer
	if err := RenderUpload(&buf, newUploadData(entries, "")); err != nil {
		t.Fatalf("rendering upload page: %v", err)
	}
	if !strings.Contains(buf.String(), `src="data:image/png;base64,iVBORw0KGgo="`) {
		t.Error("expected preview data URL in the page")
	}
	if !strings.Contains(buf.String(), "1 photo selected") {
		t.Error("expected count label")
	}
}
