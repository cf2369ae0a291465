package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusrecruit/backend/internal/model"
)

func f(v float64) *float64 { return &v }

func TestEffectiveScore(t *testing.T) {
	tests := []struct {
		name  string
		score model.DocumentScore
		want  float64
	}{
		{
			name:  "admin override wins regardless of overall score",
			score: model.DocumentScore{OverallScore: f(11), AdminScore: f(7.5)},
			want:  7.5,
		},
		{
			name:  "falls back to overall score without override",
			score: model.DocumentScore{OverallScore: f(11)},
			want:  11,
		},
		{
			name:  "zero admin override still wins",
			score: model.DocumentScore{OverallScore: f(11), AdminScore: f(0)},
			want:  0,
		},
		{
			name:  "no scores at all reads as zero",
			score: model.DocumentScore{},
			want:  0,
		},
		{
			name:  "NaN override reads as zero, not the overall score",
			score: model.DocumentScore{OverallScore: f(9), AdminScore: f(math.NaN())},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveScore(tt.score))
		})
	}
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		scores []model.DocumentScore
		want   float64
	}{
		{
			name:   "empty input is the ungraded signal",
			scores: nil,
			want:   0,
		},
		{
			name: "plain mean of effective scores",
			scores: []model.DocumentScore{
				{OverallScore: f(10)},
				{OverallScore: f(12)},
			},
			want: 11,
		},
		{
			name: "admin overrides feed the mean",
			scores: []model.DocumentScore{
				{OverallScore: f(10), AdminScore: f(4)},
				{OverallScore: f(12)},
			},
			want: 8,
		},
		{
			name: "unscored entries are skipped, not counted as zero",
			scores: []model.DocumentScore{
				{OverallScore: f(10)},
				{},
				{},
			},
			want: 10,
		},
		{
			name: "non-numeric effective scores are filtered",
			scores: []model.DocumentScore{
				{OverallScore: f(10)},
				{AdminScore: f(math.Inf(1)), OverallScore: nil},
			},
			want: 10,
		},
		{
			name: "fully invalid input reads as zero",
			scores: []model.DocumentScore{
				{}, {},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Average(tt.scores), 1e-9)
		})
	}
}
