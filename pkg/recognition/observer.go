package recognition

import (
	"context"
	"fmt"
	"time"

	"github.com/fadedpez/cardindex/internal/logging"
	"github.com/fadedpez/cardindex/pkg/cards"
	"github.com/fadedpez/cardindex/pkg/features"
	"github.com/fadedpez/cardindex/pkg/types"
	"github.com/google/uuid"
)

// Observer turns recognizer output into observations of cards
type Observer struct {
	recognizer    Recognizer
	sink          Sink
	minConfidence float64
	logger        *logging.Logger
	now           func() time.Time
}

// Option configures an Observer
type Option func(*Observer)

// WithMinConfidence drops detections below c
func WithMinConfidence(c float64) Option {
	return func(o *Observer) {
		o.minConfidence = c
	}
}

// WithLogger sets the logger, logging.Default otherwise
func WithLogger(l *logging.Logger) Option {
	return func(o *Observer) {
		o.logger = l
	}
}

// WithClock sets the time source for ObservedAt
func WithClock(now func() time.Time) Option {
	return func(o *Observer) {
		o.now = now
	}
}

// NewObserver creates an observer reading from recognizer and publishing to sink
func NewObserver(recognizer Recognizer, sink Sink, opts ...Option) (*Observer, error) {
	if recognizer == nil {
		return nil, types.NewCardError(types.ErrInvalidArgument, "recognizer is required")
	}
	if sink == nil {
		return nil, types.NewCardError(types.ErrInvalidArgument, "sink is required")
	}

	o := &Observer{
		recognizer: recognizer,
		sink:       sink,
		logger:     logging.Default,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.minConfidence < 0 || o.minConfidence > 1 {
		return nil, types.NewCardErrorf(types.ErrInvalidArgument, "min confidence must be between 0 and 1, got %v", o.minConfidence)
	}

	return o, nil
}

// Observe recognizes one frame of region and publishes the resulting
// observation. A label that is not a valid card fails the whole frame;
// the error is returned, not logged.
func (o *Observer) Observe(ctx context.Context, region Region) (*Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	detections, err := o.recognizer.Recognize(ctx, region)
	if err != nil {
		return nil, types.WrapError(types.ErrRecognition, fmt.Sprintf("recognizing %s", region), err)
	}

	seen := make([]cards.Card, 0, len(detections))
	for _, d := range detections {
		// NaN never passes the threshold
		if !(d.Confidence >= o.minConfidence) {
			o.logger.Debug("Dropping %s in %s: confidence %.2f below %.2f", d.Label, region, d.Confidence, o.minConfidence)
			continue
		}

		card, err := cards.Parse(d.Label)
		if err != nil {
			return nil, types.WrapError(types.ErrRecognition, fmt.Sprintf("bad label %q in %s", d.Label, region), err)
		}
		seen = append(seen, card)
	}
	cards.Sort(seen)

	obs := &Observation{
		ID:         uuid.New().String(),
		Region:     region,
		Cards:      seen,
		Vector:     features.Encode(seen...),
		ObservedAt: o.now(),
	}

	if err := o.sink.Publish(ctx, obs); err != nil {
		return nil, types.WrapError(types.ErrPublish, fmt.Sprintf("publishing observation %s", obs.ID), err)
	}

	o.logger.Debug("Observed %d cards in %s (%s)", len(seen), region, obs.ID)
	return obs, nil
}
