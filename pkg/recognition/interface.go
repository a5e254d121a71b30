package recognition

import (
	"context"
	"time"

	"github.com/fadedpez/cardindex/pkg/cards"
	"github.com/fadedpez/cardindex/pkg/features"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_recognition

// Region is the part of the game screen a frame was taken from
type Region string

const (
	// Field is the play field in the middle of the screen
	Field Region = "field"
	// Hand is the current hand along the bottom of the screen
	Hand Region = "hand"
)

// Detection is one card label reported by a vision stage
type Detection struct {
	Label      string
	Confidence float64
}

// Recognizer is implemented by the vision stage that turns captured
// frames into card labels
type Recognizer interface {
	// Recognize returns the labels visible in the region's current frame
	Recognize(ctx context.Context, region Region) ([]Detection, error)
}

// Sink receives every observation the Observer produces
type Sink interface {
	Publish(ctx context.Context, obs *Observation) error
}

// Observation is the set of cards seen in one frame of a region
type Observation struct {
	ID         string
	Region     Region
	Cards      []cards.Card
	Vector     features.Vector
	ObservedAt time.Time
}
