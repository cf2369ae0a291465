package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusrecruit/backend/internal/model"
)

func TestCompositeTotal(t *testing.T) {
	// Plain additive sum; components stay on their own scales.
	assert.Equal(t, 14.5, CompositeTotal(10, 1.5, 2, 1))
	assert.Equal(t, 0.0, CompositeTotal(0, 0, 0, 0))
	// Event points are uncapped and can dominate.
	assert.Equal(t, 32.0, CompositeTotal(12, 2, 3, 15))
}

func TestDecisionRankingScore(t *testing.T) {
	tests := []struct {
		name  string
		evals []model.InterviewEvaluation
		want  float64
	}{
		{
			name: "yes and no average to the midpoint",
			evals: []model.InterviewEvaluation{
				{Decision: model.EvalYes},
				{Decision: model.EvalNo},
			},
			want: 2.0,
		},
		{
			name:  "no evaluations reads as zero",
			evals: nil,
			want:  0,
		},
		{
			name: "unrecognized decisions are filtered out",
			evals: []model.InterviewEvaluation{
				{Decision: model.EvalYes},
				{Decision: ""},
				{Decision: "SOMETHING_ELSE"},
			},
			want: 4.0,
		},
		{
			name: "legacy unsure still counts",
			evals: []model.InterviewEvaluation{
				{Decision: model.EvalUnsure},
				{Decision: model.EvalMaybeYes},
			},
			want: 2.5,
		},
		{
			name: "only unrecognized decisions reads as zero",
			evals: []model.InterviewEvaluation{
				{Decision: ""},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DecisionRankingScore(tt.evals), 1e-9)
		})
	}
}

func TestFirstRoundRankingScore(t *testing.T) {
	tests := []struct {
		name  string
		evals []model.InterviewEvaluation
		want  float64
	}{
		{
			name: "structured totals rescale onto the 0-10 band",
			evals: []model.InterviewEvaluation{
				{BehavioralTotal: f(12), MarketSizingTotal: f(9)},
			},
			want: 7.0, // ((12+9)/30)*10
		},
		{
			name: "averages across evaluators before rescaling",
			evals: []model.InterviewEvaluation{
				{BehavioralTotal: f(15), MarketSizingTotal: f(15)},
				{BehavioralTotal: f(9), MarketSizingTotal: f(6)},
			},
			want: 7.5, // ((12+10.5)/30)*10
		},
		{
			name: "falls back to decision score without structured totals",
			evals: []model.InterviewEvaluation{
				{Decision: model.EvalYes},
				{Decision: model.EvalMaybeNo},
			},
			want: 2.5,
		},
		{
			name: "evaluation with only one total does not qualify",
			evals: []model.InterviewEvaluation{
				{BehavioralTotal: f(12), Decision: model.EvalYes},
			},
			want: 4.0,
		},
		{
			name: "legacy rows carry totals inside the breakdown blob",
			evals: []model.InterviewEvaluation{
				{Breakdown: `{"behavioral_total": 12, "market_sizing_total": 9}`},
			},
			want: 7.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FirstRoundRankingScore(tt.evals), 1e-9)
		})
	}
}
