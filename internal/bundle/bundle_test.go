package bundle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyAssets(t *testing.T) {
	webDir := t.TempDir()
	outDir := t.TempDir()

	files := map[string]string{
		"index.html":     "<html></html>",
		"styles.css":     "body{}",
		"loader.js":      "// boot",
		"img/logo.svg":   "<svg/>",
		"web.go":         "package web",
		"assets_test.go": "package web",
	}
	for name, content := range files {
		path := filepath.Join(webDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	if err := copyAssets(webDir, outDir); err != nil {
		t.Fatalf("copyAssets() error: %v", err)
	}

	for _, want := range []string{"index.html", "styles.css", "loader.js", "img/logo.svg"} {
		data, err := os.ReadFile(filepath.Join(outDir, want))
		if err != nil {
			t.Errorf("asset %s not copied: %v", want, err)
			continue
		}
		if string(data) != files[want] {
			t.Errorf("asset %s content = %q, want %q", want, data, files[want])
		}
	}

	// Go sources stay out of the bundle.
	for _, skip := range []string{"web.go", "assets_test.go"} {
		if _, err := os.Stat(filepath.Join(outDir, skip)); !os.IsNotExist(err) {
			t.Errorf("%s should not be bundled", skip)
		}
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(src, []byte("payload"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copyFile() error: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("copied content = %q, want %q", data, "payload")
	}
}
