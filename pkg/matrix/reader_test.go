package matrix

import (
	"context"
	"strings"
	"testing"

	"github.com/arborfield/phyloreduce/pkg/errors"
)

// Same 2x1 all-ones matrix used by the reduce package's S1/S2 fixtures.
func TestReadValidMatrix(t *testing.T) {
	g, err := Read(context.Background(), strings.NewReader("2 1\n1\n1\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if g.NumSpecies() != 2 || g.NumCharacters() != 1 {
		t.Fatalf("expected 2 species and 1 character, got %d and %d", g.NumSpecies(), g.NumCharacters())
	}
	if !g.HasVertex("s0") || !g.HasVertex("s1") || !g.HasVertex("c0") {
		t.Fatalf("expected s0, s1, c0 to exist, got %v", g)
	}
	color, ok := g.EdgeColor("s0", "c0")
	if !ok || color != 0 {
		t.Fatalf("expected black edge s0-c0, got color=%v ok=%v", color, ok)
	}
	if g.IsPreActive("c0") {
		t.Fatal("expected c0 to not be pre-active")
	}
}

func TestReadPreActiveCharacterColorsEdgesRed(t *testing.T) {
	g, err := Read(context.Background(), strings.NewReader("2 1 0\n1\n1\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if !g.IsPreActive("c0") {
		t.Fatal("expected c0 to be pre-active")
	}
	color, ok := g.EdgeColor("s0", "c0")
	if !ok || color != 1 {
		t.Fatalf("expected red edge s0-c0, got color=%v ok=%v", color, ok)
	}
}

func TestReadMatrixSpansMultipleLines(t *testing.T) {
	// Line breaks within the body are cosmetic; whitespace-separated tokens
	// are flattened before being laid out row-major.
	g, err := Read(context.Background(), strings.NewReader("2 2\n1 0\n0 1\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if _, ok := g.EdgeColor("s0", "c0"); !ok {
		t.Fatal("expected edge s0-c0")
	}
	if _, ok := g.EdgeColor("s0", "c1"); ok {
		t.Fatal("expected no edge s0-c1")
	}
	if _, ok := g.EdgeColor("s1", "c1"); !ok {
		t.Fatal("expected edge s1-c1")
	}
}

func TestReadEmptyFile(t *testing.T) {
	_, err := Read(context.Background(), strings.NewReader(""))
	if !errors.Is(err, errors.ErrCodeEmptyFile) {
		t.Fatalf("expected ErrCodeEmptyFile, got %v", err)
	}
}

func TestReadBadHeaderTooFewTokens(t *testing.T) {
	_, err := Read(context.Background(), strings.NewReader("2\n1\n1\n"))
	if !errors.Is(err, errors.ErrCodeBadHeader) {
		t.Fatalf("expected ErrCodeBadHeader, got %v", err)
	}
}

func TestReadBadHeaderNonInteger(t *testing.T) {
	_, err := Read(context.Background(), strings.NewReader("two 1\n1\n1\n"))
	if !errors.Is(err, errors.ErrCodeBadHeader) {
		t.Fatalf("expected ErrCodeBadHeader, got %v", err)
	}
}

func TestReadPreActiveOutOfRange(t *testing.T) {
	_, err := Read(context.Background(), strings.NewReader("2 1 1\n1\n1\n"))
	if !errors.Is(err, errors.ErrCodePreActiveOutOfRange) {
		t.Fatalf("expected ErrCodePreActiveOutOfRange, got %v", err)
	}
}

func TestReadMatrixSizeMismatch(t *testing.T) {
	_, err := Read(context.Background(), strings.NewReader("2 2\n1 0 0\n"))
	if !errors.Is(err, errors.ErrCodeMatrixSize) {
		t.Fatalf("expected ErrCodeMatrixSize, got %v", err)
	}
}

func TestReadBadCell(t *testing.T) {
	_, err := Read(context.Background(), strings.NewReader("2 1\n1\n2\n"))
	if !errors.Is(err, errors.ErrCodeBadCell) {
		t.Fatalf("expected ErrCodeBadCell, got %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(context.Background(), "/nonexistent/path/to/matrix.txt")
	if !errors.Is(err, errors.ErrCodeFileOpen) {
		t.Fatalf("expected ErrCodeFileOpen, got %v", err)
	}
}
