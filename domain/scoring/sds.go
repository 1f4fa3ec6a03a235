package scoring

import (
	"github.com/montanaflynn/stats"

	"psychoscore/domain/survey"
)

// sdsAutonomousSide declares which forced-choice side (А or Б) is the
// autonomous one for each item. The raw answer 1..5 runs from "only А" to
// "only Б" with 3 as the midpoint.
var sdsAutonomousSide = map[int]string{
	1: "A", 2: "B", 3: "A", 4: "B", 5: "A", 6: "A",
	7: "B", 8: "A", 9: "B", 10: "B", 11: "A", 12: "B",
}

var (
	sdsSelfContactItems     = []int{1, 2, 3, 4, 5}
	sdsChoicefulActionItems = []int{6, 7, 8, 9, 10, 11, 12}
)

func init() {
	survey.MustCatalogFor(survey.SDS).MustCheckScaleCoverage(true,
		sdsSelfContactItems, sdsChoicefulActionItems)
}

// SDSResult holds the two subscale means and their overall index, each in
// [-2.0, 2.0] and rounded to 2 decimals.
type SDSResult struct {
	SelfContact     float64 `json:"self_contact"`
	ChoicefulAction float64 `json:"choiceful_action"`
	Index           float64 `json:"sds_index"`
}

func (r *SDSResult) Instrument() survey.Instrument { return survey.SDS }

func (r *SDSResult) ScaleScores() map[string]float64 {
	return map[string]float64{
		"self_contact":     r.SelfContact,
		"choiceful_action": r.ChoicefulAction,
		"sds_index":        r.Index,
	}
}

// sdsItemScore codes one item into -2..+2: answers toward the autonomous
// side score positive, the midpoint scores zero, and the mapping mirrors
// when the autonomous side is Б.
func sdsItemScore(itemID, raw int) int {
	// raw 1 -> +2 ... raw 5 -> -2 when the autonomous side is А.
	score := 3 - raw
	if sdsAutonomousSide[itemID] == "B" {
		score = -score
	}
	return score
}

// ScoreSDS requires all 12 responses. Subscales average their item scores;
// the overall index is the mean of the two subscale means.
func ScoreSDS(rs survey.ResponseSet) (*SDSResult, error) {
	if err := survey.Gate(survey.SDS, rs); err != nil {
		return nil, err
	}

	subscaleMean := func(items []int) float64 {
		scores := make([]float64, 0, len(items))
		for _, id := range items {
			scores = append(scores, float64(sdsItemScore(id, rs[id])))
		}
		mean, _ := stats.Mean(scores)
		return mean
	}

	selfContact := subscaleMean(sdsSelfContactItems)
	choicefulAction := subscaleMean(sdsChoicefulActionItems)
	index := (selfContact + choicefulAction) / 2

	result := &SDSResult{}
	result.SelfContact, _ = stats.Round(selfContact, 2)
	result.ChoicefulAction, _ = stats.Round(choicefulAction, 2)
	result.Index, _ = stats.Round(index, 2)
	return result, nil
}
