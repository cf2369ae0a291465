// Package scoring holds the pure score math for the evaluation pipeline:
// effective-score resolution, averages, and the per-round ranking keys.
package scoring

import (
	"math"

	"github.com/campusrecruit/backend/internal/model"
)

// EffectiveScore resolves the score to use for a document grade: the admin
// override when present, else the evaluator's overall score. The override is
// never averaged with the original. A grade with no usable number reads as
// 0, the "ungraded" signal.
func EffectiveScore(score model.DocumentScore) float64 {
	if v, ok := effectiveScore(score); ok {
		return v
	}
	return 0
}

// effectiveScore applies the override-then-original resolution and reports
// whether the chosen value is a usable number. A non-numeric override does
// not fall through to the original: the admin's entry, good or bad, is the
// one that counts.
func effectiveScore(score model.DocumentScore) (float64, bool) {
	var v float64
	switch {
	case score.AdminScore != nil:
		v = *score.AdminScore
	case score.OverallScore != nil:
		v = *score.OverallScore
	default:
		return 0, false
	}
	return v, isNumeric(v)
}

// Average returns the arithmetic mean of the effective scores, skipping
// entries whose effective score is not a usable number. Empty or
// fully-invalid input returns 0 rather than an error: ungraded is a
// meaningful state, not a failure.
func Average(scores []model.DocumentScore) float64 {
	var sum float64
	var n int
	for _, s := range scores {
		v, ok := effectiveScore(s)
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func isNumeric(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
