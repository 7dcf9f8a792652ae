package vanilla

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSIncludesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), "."+string(ClassRoot)) {
		t.Fatalf("expected stylesheet to style the root chrome class")
	}
}

func TestSanitizeInline(t *testing.T) {
	got := sanitizeInline(`<em>Hi</em> <img src=x onerror=alert(1)> & bye`)
	if strings.Contains(got, "<img") || !strings.Contains(got, "<em>Hi</em>") {
		t.Fatalf("unexpected sanitised output %q", got)
	}
}
