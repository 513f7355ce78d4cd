package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackwell-systems/libcat/internal/util"
	"github.com/fatih/color"
)

func TestEnsureDir(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := util.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	fi, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("Stat after EnsureDir: %v", err)
	}
	if !fi.IsDir() {
		t.Error("EnsureDir path is not a directory")
	}
}

func TestFileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := util.FileSize(path); got != 3 {
		t.Errorf("FileSize = %d, want 3", got)
	}
	if got := util.FileSize(path + ".missing"); got != -1 {
		t.Errorf("FileSize(missing) = %d, want -1", got)
	}
}

func TestDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := util.Digest(path)
	if err != nil {
		t.Fatal(err)
	}
	// sha256("") is well known
	if want := "e3b0c44298fc"; got != want {
		t.Errorf("Digest(empty) = %q, want %q", got, want)
	}

	if _, err := util.Digest("/no/such/file.json"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestHumanBytes(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, c := range cases {
		if got := util.HumanBytes(c.in); got != c.want {
			t.Errorf("HumanBytes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInitColor_NoColorFlag(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	color.NoColor = false
	util.InitColor(true)
	if !color.NoColor {
		t.Error("InitColor(true) left color enabled")
	}
}
