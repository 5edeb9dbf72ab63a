package gamefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileDecodesWindows1252(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driver.rcd")
	// "Sébastien" with 0xE9 for é.
	raw := []byte{'S', 0xE9, 'b', 'a', 's', 't', 'i', 'e', 'n'}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	content, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if content != "Sébastien" {
		t.Errorf("decoded %q, want %q", content, "Sébastien")
	}
}

func TestReadFileRejectsInvalidBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.rcd")
	if err := os.WriteFile(path, []byte{'o', 'k', 0x81}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.rcd"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteFileNormalizesToCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.rfm")

	if err := WriteFile(path, "one\ntwo\r\nthree\n"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "one\r\ntwo\r\nthree\r\n"
	if string(raw) != want {
		t.Errorf("wrote %q, want %q", raw, want)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.veh")
	content := "Description=\"Señor Café\"\r\n"

	if err := WriteFile(path, content); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != content {
		t.Errorf("round trip got %q, want %q", got, content)
	}
}

func TestFindByExtension(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.rcd", "b.RCD", "c.txt", "sub/d.rcd"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	flat, err := FindByExtension(dir, "rcd", false)
	if err != nil {
		t.Fatalf("FindByExtension failed: %v", err)
	}
	if len(flat) != 2 {
		t.Errorf("flat search found %d files, want 2", len(flat))
	}

	deep, err := FindByExtension(dir, ".rcd", true)
	if err != nil {
		t.Fatalf("recursive FindByExtension failed: %v", err)
	}
	if len(deep) != 3 {
		t.Errorf("recursive search found %d files, want 3", len(deep))
	}
}

func TestNameToFilename(t *testing.T) {
	if got := NameToFilename("Brandon Lang"); got != "BrandonLang" {
		t.Errorf("NameToFilename = %q, want BrandonLang", got)
	}
}

func TestStem(t *testing.T) {
	if got := Stem("path/to/GRN_08.veh"); got != "GRN_08" {
		t.Errorf("Stem = %q, want GRN_08", got)
	}
}
