package csvio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"csvsplit/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"), ',')
	if !errors.Is(err, domain.ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}
}

func TestNextStreamsRecords(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.csv", "id,name\n1,a\n2,b\n")

	src, err := Open(path, ',')
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	header, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if len(header) != 2 || header[0] != "id" {
		t.Errorf("unexpected header: %v", header)
	}

	for i, wantID := range []string{"1", "2"} {
		row, err := src.Next()
		if err != nil {
			t.Fatalf("row %d: %v", i+1, err)
		}
		if row[0] != wantID {
			t.Errorf("row %d: expected id %s, got %s", i+1, wantID, row[0])
		}
	}

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}

	if src.BytesRead() <= 0 {
		t.Errorf("expected bytes read > 0, got %d", src.BytesRead())
	}
}

func TestNextEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.csv", "")

	src, err := Open(path, ',')
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("expected io.EOF for empty file, got %v", err)
	}
}

func TestNextColumnCountMismatch(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.csv", "id,name\n1,a\n2,b\n3,c,extra\n")

	src, err := Open(path, ',')
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	for i := 0; i < 3; i++ { // header + two good rows
		if _, err := src.Next(); err != nil {
			t.Fatal(err)
		}
	}

	_, err = src.Next()
	var parseErr *domain.RowParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected RowParseError, got %v", err)
	}
	if parseErr.Row != 3 {
		t.Errorf("expected data-row ordinal 3, got %d", parseErr.Row)
	}
}

func TestNextMalformedHeader(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.csv", "id,\"name\n")

	src, err := Open(path, ',')
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	_, err = src.Next()
	var parseErr *domain.RowParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected RowParseError, got %v", err)
	}
	if parseErr.Row != 1 {
		t.Errorf("expected ordinal 1 for malformed header, got %d", parseErr.Row)
	}
}

func TestOpenCustomDelimiter(t *testing.T) {
	path := writeFile(t, t.TempDir(), "semi.csv", "id;name\n1;a\n")

	src, err := Open(path, ';')
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	header, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if len(header) != 2 || header[1] != "name" {
		t.Errorf("unexpected header: %v", header)
	}
}
