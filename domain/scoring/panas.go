package scoring

import (
	"psychoscore/domain/survey"
)

// PANAS scale item lists. Item 14 belongs to neither scale: this adaptation
// hard-codes its exclusion from Positive Affect, so PA is a 9-item sum
// (range 9-45) and NA a 10-item sum (range 10-50).
var (
	panasPositiveItems = []int{1, 4, 5, 9, 10, 11, 17, 18, 19}
	panasNegativeItems = []int{2, 3, 6, 7, 8, 12, 13, 15, 16, 20}
)

func init() {
	// Not exhaustive: item 14 is intentionally unassigned.
	survey.MustCatalogFor(survey.PANAS).MustCheckScaleCoverage(false,
		panasPositiveItems, panasNegativeItems)
}

// PANASResult holds the two affect sums. No reverse-coding, no averaging.
type PANASResult struct {
	PositiveAffect int `json:"positive_affect"`
	NegativeAffect int `json:"negative_affect"`
}

func (r *PANASResult) Instrument() survey.Instrument { return survey.PANAS }

func (r *PANASResult) ScaleScores() map[string]float64 {
	return map[string]float64{
		"positive_affect": float64(r.PositiveAffect),
		"negative_affect": float64(r.NegativeAffect),
	}
}

// ScorePANAS requires all 20 responses and sums each scale's raw items.
func ScorePANAS(rs survey.ResponseSet) (*PANASResult, error) {
	if err := survey.Gate(survey.PANAS, rs); err != nil {
		return nil, err
	}

	result := &PANASResult{}
	for _, id := range panasPositiveItems {
		result.PositiveAffect += rs[id]
	}
	for _, id := range panasNegativeItems {
		result.NegativeAffect += rs[id]
	}
	return result, nil
}
