package scoring

import (
	"github.com/tidwall/gjson"

	"github.com/campusrecruit/backend/internal/model"
)

// referralAdjustment is kept at 0: referrals no longer contribute to the
// composite total, but the term stays so historical rankings read the same.
const referralAdjustment = 0.0

// decisionPoints maps an evaluator's interview verdict onto the ranking
// scale. UNSURE is a legacy value still present on old rows.
var decisionPoints = map[model.EvaluationDecision]float64{
	model.EvalYes:      4,
	model.EvalMaybeYes: 3,
	model.EvalUnsure:   2,
	model.EvalMaybeNo:  1,
	model.EvalNo:       0,
}

// combinedRawMax is the highest combined behavioral + market-sizing raw
// score an evaluator can hand out (three 5-point behavioral criteria plus
// three 5-point sizing criteria).
const combinedRawMax = 30.0

// CompositeTotal is the resume-round sort key: the plain sum of the three
// document averages and the attendance points. Each document average is
// already capped by its own rubric (13 resume, 2 video, 3 cover letter);
// event points are uncapped. The result is a sum of differently-scaled
// components, meaningful only as a relative sort key. Callers display it
// over 18 but it is not a percentage, and it must not be normalized.
func CompositeTotal(resumeAvg, videoAvg, coverLetterAvg, eventPoints float64) float64 {
	return resumeAvg + videoAvg + coverLetterAvg + eventPoints + referralAdjustment
}

// DecisionRankingScore reduces a set of interview evaluations to the mean
// of their mapped decision points. Evaluations without a recognized
// decision are ignored; no qualifying evaluations yields 0.
func DecisionRankingScore(evals []model.InterviewEvaluation) float64 {
	var sum float64
	var n int
	for _, e := range evals {
		pts, ok := decisionPoints[e.Decision]
		if !ok {
			continue
		}
		sum += pts
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// FirstRoundRankingScore is the first-round sort key. When at least one
// evaluation carries both a behavioral and a market-sizing total, the score
// is ((avgBehavioral + avgMarketSizing) / 30) * 10, rescaled to a 0-10 band
// so it sorts against the other rounds. Otherwise it falls back to the
// decision-based score.
func FirstRoundRankingScore(evals []model.InterviewEvaluation) float64 {
	var behSum, sizSum float64
	var n int
	for _, e := range evals {
		beh, siz, ok := structuredTotals(e)
		if !ok {
			continue
		}
		behSum += beh
		sizSum += siz
		n++
	}
	if n == 0 {
		return DecisionRankingScore(evals)
	}
	avgBeh := behSum / float64(n)
	avgSiz := sizSum / float64(n)
	return ((avgBeh + avgSiz) / combinedRawMax) * 10
}

// structuredTotals pulls the behavioral and market-sizing totals off an
// evaluation. Legacy rows stored the totals only inside the breakdown blob,
// so the jsonb is consulted when the typed columns are null.
func structuredTotals(e model.InterviewEvaluation) (behavioral, marketSizing float64, ok bool) {
	if e.BehavioralTotal != nil && e.MarketSizingTotal != nil {
		return *e.BehavioralTotal, *e.MarketSizingTotal, true
	}
	beh := gjson.Get(e.Breakdown, "behavioral_total")
	siz := gjson.Get(e.Breakdown, "market_sizing_total")
	if beh.Exists() && siz.Exists() {
		return beh.Float(), siz.Float(), true
	}
	return 0, 0, false
}
