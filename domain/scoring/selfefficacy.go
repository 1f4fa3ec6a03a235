package scoring

import (
	"psychoscore/domain/survey"
)

// Self-Efficacy scales: items 1-17 form the general scale, 18-23 the social
// one. The -5..+5 answer scale is symmetric around zero, so reverse-coding
// is sign negation; the reverse flags live on the catalog.
var (
	selfEfficacyGeneralItems = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	selfEfficacySocialItems  = []int{18, 19, 20, 21, 22, 23}
)

func init() {
	survey.MustCatalogFor(survey.SelfEfficacy).MustCheckScaleCoverage(true,
		selfEfficacyGeneralItems, selfEfficacySocialItems)
}

// SelfEfficacyResult holds the two scale sums: general in [-85, 85],
// social in [-30, 30].
type SelfEfficacyResult struct {
	General int `json:"general_self_efficacy"`
	Social  int `json:"social_self_efficacy"`
}

func (r *SelfEfficacyResult) Instrument() survey.Instrument { return survey.SelfEfficacy }

func (r *SelfEfficacyResult) ScaleScores() map[string]float64 {
	return map[string]float64{
		"general_self_efficacy": float64(r.General),
		"social_self_efficacy":  float64(r.Social),
	}
}

// ScoreSelfEfficacy requires all 23 responses, negates the sign of the 13
// negatively worded items and sums each scale.
func ScoreSelfEfficacy(rs survey.ResponseSet) (*SelfEfficacyResult, error) {
	if err := survey.Gate(survey.SelfEfficacy, rs); err != nil {
		return nil, err
	}
	catalog := survey.MustCatalogFor(survey.SelfEfficacy)

	adjusted := func(id int) int {
		if catalog.IsReverse(id) {
			return -rs[id]
		}
		return rs[id]
	}

	result := &SelfEfficacyResult{}
	for _, id := range selfEfficacyGeneralItems {
		result.General += adjusted(id)
	}
	for _, id := range selfEfficacySocialItems {
		result.Social += adjusted(id)
	}
	return result, nil
}
