package recognition

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fadedpez/cardindex/pkg/types"
)

// TextRecognizer reads frames from text, one frame per line. Each line
// holds whitespace separated labels, optionally suffixed with @confidence
// as in "ACE_SPADES@0.93". Labels without a confidence count as certain.
// Blank lines are skipped. A TextRecognizer is not safe for concurrent use.
type TextRecognizer struct {
	scanner *bufio.Scanner
}

// NewTextRecognizer creates a recognizer reading frames from r
func NewTextRecognizer(r io.Reader) *TextRecognizer {
	return &TextRecognizer{scanner: bufio.NewScanner(r)}
}

// Recognize returns the next frame. It returns io.EOF when the input is exhausted.
func (t *TextRecognizer) Recognize(ctx context.Context, region Region) ([]Detection, error) {
	for t.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields := strings.Fields(t.scanner.Text())
		if len(fields) == 0 {
			continue
		}

		detections := make([]Detection, 0, len(fields))
		for _, field := range fields {
			d, err := parseDetection(field)
			if err != nil {
				return nil, err
			}
			detections = append(detections, d)
		}
		return detections, nil
	}

	if err := t.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func parseDetection(field string) (Detection, error) {
	label, conf, ok := strings.Cut(field, "@")
	if !ok {
		return Detection{Label: label, Confidence: 1}, nil
	}

	confidence, err := strconv.ParseFloat(conf, 64)
	if err != nil {
		return Detection{}, types.WrapError(types.ErrInvalidArgument, "bad confidence in "+field, err)
	}
	if math.IsNaN(confidence) || confidence < 0 || confidence > 1 {
		return Detection{}, types.NewCardErrorf(types.ErrInvalidArgument, "confidence in %s must be between 0 and 1", field)
	}
	return Detection{Label: label, Confidence: confidence}, nil
}
