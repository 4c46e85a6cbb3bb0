package matrix

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arborfield/phyloreduce/pkg/errors"
	"github.com/arborfield/phyloreduce/pkg/rbgraph"
)

// ReadFile opens path and parses it the way [Read] does.
func ReadFile(ctx context.Context, path string) (*rbgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileOpen, err, "opening %s", path)
	}
	defer f.Close()
	return Read(ctx, f)
}

// Read parses r as a species-character matrix.
//
// Line 1 is the header: "<num_species> <num_characters> [<pre_active_index>...]",
// whitespace-separated integers. Any trailing index marks the corresponding
// character (0-based) pre-active; its edges are built red instead of black.
// An out-of-range index is a fatal error.
//
// Every subsequent line contributes to a row-major binary matrix of exactly
// num_species*num_characters 0/1 values (line breaks within the matrix are
// cosmetic); a 1 at row s, column c adds an edge between species s and
// character c. Species are named s0..s<num_species-1>, characters
// c0..c<num_characters-1>, in the order their matrix columns/rows appear.
func Read(ctx context.Context, r io.Reader) (*rbgraph.Graph, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeEmptyFile, err, "reading header")
		}
		return nil, errors.New(errors.ErrCodeEmptyFile, "matrix file is empty")
	}

	numSpecies, numCharacters, preActive, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	var cells []string
	for scanner.Scan() {
		cells = append(cells, strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMatrixSize, err, "reading matrix body")
	}

	cellCount := numSpecies * numCharacters
	if len(cells) != cellCount {
		return nil, errors.New(errors.ErrCodeMatrixSize, "expected %d matrix cells (%d species x %d characters), got %d", cellCount, numSpecies, numCharacters, len(cells))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return buildGraph(numSpecies, numCharacters, preActive, cells)
}

func parseHeader(line string) (numSpecies, numCharacters int, preActive map[int]bool, err error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return 0, 0, nil, errors.New(errors.ErrCodeBadHeader, "header needs at least 2 integers, got %d", len(tokens))
	}

	numSpecies, err = strconv.Atoi(tokens[0])
	if err != nil || numSpecies < 0 {
		return 0, 0, nil, errors.Wrap(errors.ErrCodeBadHeader, err, "bad species count %q", tokens[0])
	}
	numCharacters, err = strconv.Atoi(tokens[1])
	if err != nil || numCharacters < 0 {
		return 0, 0, nil, errors.Wrap(errors.ErrCodeBadHeader, err, "bad character count %q", tokens[1])
	}

	preActive = make(map[int]bool, len(tokens)-2)
	for _, tok := range tokens[2:] {
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return 0, 0, nil, errors.Wrap(errors.ErrCodeBadHeader, err, "bad pre-active index %q", tok)
		}
		if idx < 0 || idx >= numCharacters {
			return 0, 0, nil, errors.New(errors.ErrCodePreActiveOutOfRange, "pre-active index %d out of range [0,%d)", idx, numCharacters)
		}
		preActive[idx] = true
	}

	return numSpecies, numCharacters, preActive, nil
}

func buildGraph(numSpecies, numCharacters int, preActive map[int]bool, cells []string) (*rbgraph.Graph, error) {
	g := rbgraph.New()

	speciesNames := make([]string, numSpecies)
	for i := range speciesNames {
		speciesNames[i] = "s" + strconv.Itoa(i)
		if err := g.AddSpecies(speciesNames[i]); err != nil {
			return nil, err
		}
	}

	characterNames := make([]string, numCharacters)
	for j := range characterNames {
		characterNames[j] = "c" + strconv.Itoa(j)
		var err error
		if preActive[j] {
			err = g.AddPreActiveCharacter(characterNames[j])
		} else {
			err = g.AddCharacter(characterNames[j])
		}
		if err != nil {
			return nil, err
		}
	}

	for i := 0; i < numSpecies; i++ {
		for j := 0; j < numCharacters; j++ {
			tok := cells[i*numCharacters+j]
			switch tok {
			case "0":
				continue
			case "1":
				color := rbgraph.Black
				if preActive[j] {
					color = rbgraph.Red
				}
				if _, err := g.AddEdge(speciesNames[i], characterNames[j], color); err != nil {
					return nil, err
				}
			default:
				return nil, errors.New(errors.ErrCodeBadCell, "row %d col %d: expected 0 or 1, got %q", i, j, tok)
			}
		}
	}

	return g, nil
}
