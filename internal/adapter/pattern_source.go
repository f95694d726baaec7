// Package adapter contains the file system adapters of the regmut CLI.
package adapter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	m "regmut.dev/pkg/regmut/internal/model"
)

// StdinPath names standard input as a pattern file.
const StdinPath = "-"

// PatternSource reads patterns from pattern files so the domain layer never
// touches the disk directly.
type PatternSource interface {
	// Read returns one Source per pattern line of the file at path. Blank
	// lines and lines starting with '#' are skipped.
	Read(ctx context.Context, path string) ([]m.Source, error)
}

// LocalPatternSource reads pattern files from the local file system.
type LocalPatternSource struct {
	stdin io.Reader
}

// NewLocalPatternSource constructs a LocalPatternSource that reads "-" from
// stdin.
func NewLocalPatternSource(stdin io.Reader) *LocalPatternSource {
	return &LocalPatternSource{stdin: stdin}
}

// Read implements PatternSource.
func (a *LocalPatternSource) Read(ctx context.Context, path string) ([]m.Source, error) {
	if path == StdinPath {
		return a.scan(ctx, path, a.stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern file: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	return a.scan(ctx, path, f)
}

func (a *LocalPatternSource) scan(ctx context.Context, origin string, r io.Reader) ([]m.Source, error) {
	var sources []m.Source

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line++

		pattern := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(pattern) == "" || strings.HasPrefix(pattern, "#") {
			continue
		}

		sources = append(sources, m.Source{Pattern: pattern, Origin: origin, Line: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", origin, err)
	}

	return sources, nil
}
