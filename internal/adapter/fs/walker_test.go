package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWalk_TitlesFromStems(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"红楼梦.txt", "西游记.txt", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := NewWalker(nil, nil).Walk(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 book files, got %d: %v", len(files), files)
	}
	if files[0].Title != "红楼梦" || files[1].Title != "西游记" {
		t.Errorf("expected titles from filename stems, got %q and %q", files[0].Title, files[1].Title)
	}
}

func TestWalk_Excludes(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "drafts")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(sub, "skip.txt"), []byte("x"), 0644)

	files, err := NewWalker(nil, []string{"drafts/**"}).Walk(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0].Title != "keep" {
		t.Errorf("expected only keep.txt, got %v", files)
	}
}
