package schema

import (
	"encoding/json"
	"math"
)

// MarshalJSON writes a score that is NaN or infinite as null.
func (r RespondentResult) MarshalJSON() ([]byte, error) {
	type plain RespondentResult
	var score *float64
	if !math.IsNaN(r.Score) && !math.IsInf(r.Score, 0) {
		s := r.Score
		score = &s
	}
	return json.Marshal(struct {
		plain
		Score *float64 `json:"score"`
	}{plain(r), score})
}
