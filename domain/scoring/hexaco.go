package scoring

import (
	"github.com/montanaflynn/stats"

	"psychoscore/domain/survey"
)

// Factor codes in display order. Alt is the interstitial Altruism facet.
var HEXACOFactorOrder = []string{"H", "E", "X", "A", "C", "O", "Alt"}

// HEXACOFactorNames maps factor codes to their Russian display names.
var HEXACOFactorNames = map[string]string{
	"H":   "Честность-Скромность",
	"E":   "Эмоциональность",
	"X":   "Экстраверсия",
	"A":   "Доброжелательность",
	"C":   "Добросовестность",
	"O":   "Открытость опыту",
	"Alt": "Альтруизм",
}

// hexacoFactorItems assigns every question 1-100 to exactly one factor.
// Reverse flags live on the catalog.
var hexacoFactorItems = map[string][]int{
	"O":   {1, 7, 13, 19, 25, 31, 37, 43, 49, 55, 61, 67, 73, 79, 85, 91},
	"C":   {2, 8, 14, 20, 26, 32, 38, 44, 50, 56, 62, 68, 74, 80, 86, 92},
	"A":   {3, 9, 15, 21, 27, 33, 39, 45, 51, 57, 63, 69, 75, 81, 87, 93},
	"X":   {4, 10, 16, 22, 28, 34, 40, 46, 52, 58, 64, 70, 76, 82, 88, 94},
	"E":   {5, 11, 17, 23, 29, 35, 41, 47, 53, 59, 65, 71, 77, 83, 89, 95},
	"H":   {6, 12, 18, 24, 30, 36, 42, 48, 54, 60, 66, 72, 78, 84, 90, 96},
	"Alt": {97, 98, 99, 100},
}

func init() {
	survey.MustCatalogFor(survey.HEXACO).MustCheckScaleCoverage(true,
		hexacoFactorItems["H"], hexacoFactorItems["E"], hexacoFactorItems["X"],
		hexacoFactorItems["A"], hexacoFactorItems["C"], hexacoFactorItems["O"],
		hexacoFactorItems["Alt"])
}

// HEXACOResult holds one mean score per factor on the 1.0-5.0 scale,
// rounded to 2 decimals.
type HEXACOResult struct {
	Factors map[string]float64 `json:"factors"`
}

func (r *HEXACOResult) Instrument() survey.Instrument { return survey.HEXACO }

func (r *HEXACOResult) ScaleScores() map[string]float64 {
	out := make(map[string]float64, len(r.Factors))
	for k, v := range r.Factors {
		out[k] = v
	}
	return out
}

// ScoreHEXACO requires all 100 responses. Reverse-scored items contribute
// 6-r; each factor score is the mean of its (adjusted) items.
func ScoreHEXACO(rs survey.ResponseSet) (*HEXACOResult, error) {
	if err := survey.Gate(survey.HEXACO, rs); err != nil {
		return nil, err
	}
	catalog := survey.MustCatalogFor(survey.HEXACO)
	maxValue := survey.HEXACO.Bounds().Max

	factors := make(map[string]float64, len(hexacoFactorItems))
	for factor, items := range hexacoFactorItems {
		adjusted := make([]float64, 0, len(items))
		for _, id := range items {
			raw := rs[id]
			if catalog.IsReverse(id) {
				raw = reverse(maxValue, raw)
			}
			adjusted = append(adjusted, float64(raw))
		}
		mean, _ := stats.Mean(adjusted)
		factors[factor], _ = stats.Round(mean, 2)
	}
	return &HEXACOResult{Factors: factors}, nil
}
