// Package features turns text into fixed-width network inputs.
//
// Text is tokenized and every token id is assigned to bucket id % width. The
// result is the normalised bucket histogram, so the inputs sum to 1.
package features

import (
	"errors"
	"fmt"
)

// ErrEmptyText is returned when the text produces no tokens.
var ErrEmptyText = errors.New("text produced no tokens")

// Encoder converts text to token IDs.
type Encoder interface {
	Encode(text string) ([]int32, error)
}

// Featurize encodes text and returns width bucket frequencies.
func Featurize(enc Encoder, text string, width int) ([]float64, error) {
	if width < 1 {
		return nil, fmt.Errorf("featurize: width must be positive, got %d", width)
	}

	tokens, err := enc.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("featurize: %w", err)
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyText
	}

	buckets := make([]float64, width)
	for _, tok := range tokens {
		buckets[int(tok)%width]++
	}
	for i := range buckets {
		buckets[i] /= float64(len(tokens))
	}
	return buckets, nil
}
