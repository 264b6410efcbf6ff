package types

// RankedPath pairs a candidate documentation path with its relevance
// score. Produced per search call, never persisted.
type RankedPath struct {
	Path  string
	Score int
}

// Validate checks if the ranked path is valid.
func (rp RankedPath) Validate() error {
	if rp.Path == "" {
		return ErrEmptyPath
	}
	if rp.Score < 0 {
		return ErrNegativeScore
	}
	return nil
}
