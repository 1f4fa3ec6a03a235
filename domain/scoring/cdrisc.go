package scoring

import (
	"psychoscore/domain/survey"
)

// CD-RISC subscale item lists. Subscales are summed over answered items
// only, with no correction for partial completion.
var cdriscSubscaleItems = map[string][]int{
	"personal_competence_persistence": {10, 11, 12, 16, 17, 23, 24, 25},
	"instincts_stress_as_hardening":   {6, 7, 14, 15, 18, 19, 20},
	"acceptance_of_change_support":    {1, 2, 4, 5, 8, 13},
	"control":                         {21, 22},
	"spiritual_beliefs":               {3, 9},
}

func init() {
	lists := make([][]int, 0, len(cdriscSubscaleItems))
	for _, items := range cdriscSubscaleItems {
		lists = append(lists, items)
	}
	survey.MustCatalogFor(survey.CDRISC).MustCheckScaleCoverage(true, lists...)
}

// CD-RISC resilience bands, applied to the classic score.
const (
	CDRISCBandHigh   = "Высокая устойчивость"
	CDRISCBandMedium = "Средняя устойчивость"
	CDRISCBandLow    = "Низкая устойчивость"
)

// CDRISCResult holds the raw total, the classic 25-item rebased score
// (total - 25, intentionally not rescaled for missing items), the
// resilience band and the summed subscales.
type CDRISCResult struct {
	Total     int            `json:"total_score"`
	Classic   int            `json:"classic_score"`
	Band      string         `json:"interpretation_category"`
	Subscales map[string]int `json:"subscale_scores"`
	Answered  int            `json:"answered_questions_count"`
}

func (r *CDRISCResult) Instrument() survey.Instrument { return survey.CDRISC }

func (r *CDRISCResult) ScaleScores() map[string]float64 {
	out := map[string]float64{
		"total_score":   float64(r.Total),
		"classic_score": float64(r.Classic),
	}
	for name, sum := range r.Subscales {
		out[name] = float64(sum)
	}
	return out
}

// ScoreCDRISC accepts partial protocols with at least 19 of 25 answers.
func ScoreCDRISC(rs survey.ResponseSet) (*CDRISCResult, error) {
	if err := survey.Gate(survey.CDRISC, rs); err != nil {
		return nil, err
	}

	total := 0
	for _, value := range rs {
		total += value
	}
	classic := total - 25

	band := CDRISCBandLow
	switch {
	case classic >= 80:
		band = CDRISCBandHigh
	case classic >= 60:
		band = CDRISCBandMedium
	}

	subscales := make(map[string]int, len(cdriscSubscaleItems))
	for name, items := range cdriscSubscaleItems {
		sum := 0
		for _, id := range items {
			if value, ok := rs[id]; ok {
				sum += value
			}
		}
		subscales[name] = sum
	}

	return &CDRISCResult{
		Total:     total,
		Classic:   classic,
		Band:      band,
		Subscales: subscales,
		Answered:  len(rs),
	}, nil
}
