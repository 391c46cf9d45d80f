package convert

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestIsCourseFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"course.yaml", true},
		{"course.YML", true},
		{"plan.json", true},
		{"deck.pptx", false},
		{"notes.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := isCourseFile(tt.path); got != tt.want {
			t.Errorf("isCourseFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsBundleFile(t *testing.T) {
	dir := t.TempDir()

	bundle := filepath.Join(dir, "bundle.zip")
	f, err := os.Create(bundle)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("course.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("title: x\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	plain := filepath.Join(dir, "plain.yaml")
	if err := os.WriteFile(plain, []byte("title: x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	empty := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{bundle, true},
		{plain, false},
		{empty, false},
	}
	for _, tt := range tests {
		got, err := isBundleFile(tt.path)
		if err != nil {
			t.Fatalf("isBundleFile(%q) error = %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("isBundleFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	if _, err := isBundleFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
