// Package trace decodes raw symbol strings into the ordered steps a completed
// transducer must reproduce.
package trace

import (
	"fmt"
	"regexp"

	"github.com/aretw0/splice/pkg/domain"
)

const (
	inputWidth = 2
	stepWidth  = 3
)

var nonBinary = regexp.MustCompile(`[^01]`)

// Clean strips every non-binary rune from raw. Separators like underscores or
// whitespace are tolerated anywhere in a trace.
func Clean(raw string) string {
	return nonBinary.ReplaceAllString(raw, "")
}

// Decode partitions a raw trace into steps of a two-symbol input and a
// one-symbol required output. It returns domain.ErrInvalidTraceLength when the
// cleaned trace does not divide into whole steps.
func Decode(raw string) ([]domain.Step, error) {
	cleaned := Clean(raw)
	if len(cleaned)%stepWidth != 0 {
		return nil, fmt.Errorf("%w: got %d symbols", domain.ErrInvalidTraceLength, len(cleaned))
	}

	steps := make([]domain.Step, 0, len(cleaned)/stepWidth)
	for i := 0; i < len(cleaned)/stepWidth; i++ {
		chunk := cleaned[i*stepWidth : (i+1)*stepWidth]
		steps = append(steps, domain.Step{
			Index:  i,
			Input:  chunk[:inputWidth],
			Output: chunk[inputWidth:],
		})
	}
	return steps, nil
}
