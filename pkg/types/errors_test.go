package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewCardError() {
	err := NewCardError(ErrInvalidCard, "joker cannot have a suit")

	s.Equal(ErrInvalidCard, err.Code, "Error code should match")
	s.Equal("joker cannot have a suit", err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestNewCardErrorf() {
	err := NewCardErrorf(ErrInvalidIndex, "index %d out of range", 99)

	s.Equal(ErrInvalidIndex, err.Code)
	s.Equal("index 99 out of range", err.Message)
}

func (s *ErrorTestSuite) TestWrapError() {
	underlying := errors.New("bad label")

	err := WrapError(ErrRecognition, "frame rejected", underlying)

	s.Equal(ErrRecognition, err.Code, "Error code should match")
	s.Equal(underlying, err.Err, "Underlying error should match")
	s.ErrorIs(err, underlying, "Unwrap should expose the underlying error")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *CardError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewCardError(ErrInvalidCard, "suit required"),
			expected: "INVALID_CARD: suit required",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrRecognition, "frame rejected", errors.New("bad label")),
			expected: "RECOGNITION_FAILED: frame rejected (bad label)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error(), "Error string should match expected format")
		})
	}
}

func (s *ErrorTestSuite) TestIsCardError() {
	cardErr := NewCardError(ErrInvalidCard, "suit required")
	chained := WrapError(ErrRecognition, "frame rejected", cardErr)

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{
			name:     "Matching card error",
			err:      cardErr,
			code:     ErrInvalidCard,
			expected: true,
		},
		{
			name:     "Non-matching card error",
			err:      cardErr,
			code:     ErrInvalidIndex,
			expected: false,
		},
		{
			name:     "Outer code of a chain",
			err:      chained,
			code:     ErrRecognition,
			expected: true,
		},
		{
			name:     "Inner code of a chain",
			err:      chained,
			code:     ErrInvalidCard,
			expected: true,
		},
		{
			name:     "Wrapped with fmt",
			err:      fmt.Errorf("loading: %w", cardErr),
			code:     ErrInvalidCard,
			expected: true,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			code:     ErrInvalidCard,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			code:     ErrInvalidCard,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, IsCardError(tc.err, tc.code), "IsCardError result should match expected value")
		})
	}
}

func (s *ErrorTestSuite) TestAs() {
	cardErr := NewCardError(ErrUnknownName, "no such card")

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Card error",
			err:      cardErr,
			expected: true,
		},
		{
			name:     "Wrapped card error",
			err:      fmt.Errorf("parse: %w", cardErr),
			expected: true,
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var target *CardError
			result := As(tc.err, &target)
			s.Equal(tc.expected, result, "As result should match expected value")
			if tc.expected {
				s.Equal(cardErr, target, "Target should be set to the card error")
			}
		})
	}

	s.False(As(cardErr, nil), "Nil target should never match")
}
