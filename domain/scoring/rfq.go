package scoring

import (
	"psychoscore/domain/survey"
)

// RFQ scale item maps: item id -> reverse flag. Reverse rule is 6-r on the
// 1-5 scale.
var (
	rfqPromotionItems = map[int]bool{
		1: false, 3: false, 7: false, 9: true, 10: false, 11: true,
	}
	rfqPreventionItems = map[int]bool{
		2: true, 4: true, 5: false, 6: true, 8: true,
	}
)

func init() {
	promotion := make([]int, 0, len(rfqPromotionItems))
	for id := range rfqPromotionItems {
		promotion = append(promotion, id)
	}
	prevention := make([]int, 0, len(rfqPreventionItems))
	for id := range rfqPreventionItems {
		prevention = append(prevention, id)
	}
	survey.MustCatalogFor(survey.RFQ).MustCheckScaleCoverage(true, promotion, prevention)
}

// RFQResult holds the two regulatory focus sums: promotion over 6 items
// (range 6-30), prevention over 5 (range 5-25).
type RFQResult struct {
	Promotion  int `json:"promotion_score"`
	Prevention int `json:"prevention_score"`
}

func (r *RFQResult) Instrument() survey.Instrument { return survey.RFQ }

func (r *RFQResult) ScaleScores() map[string]float64 {
	return map[string]float64{
		"promotion_score":  float64(r.Promotion),
		"prevention_score": float64(r.Prevention),
	}
}

// ScoreRFQ requires all 11 responses and sums each scale with its per-item
// reverse flags applied.
func ScoreRFQ(rs survey.ResponseSet) (*RFQResult, error) {
	if err := survey.Gate(survey.RFQ, rs); err != nil {
		return nil, err
	}
	maxValue := survey.RFQ.Bounds().Max

	sumScale := func(items map[int]bool) int {
		sum := 0
		for id, isReverse := range items {
			value := rs[id]
			if isReverse {
				value = reverse(maxValue, value)
			}
			sum += value
		}
		return sum
	}

	return &RFQResult{
		Promotion:  sumScale(rfqPromotionItems),
		Prevention: sumScale(rfqPreventionItems),
	}, nil
}
