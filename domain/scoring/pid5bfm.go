package scoring

import (
	"github.com/montanaflynn/stats"

	"psychoscore/domain/survey"
)

// pid5bfmDomains is the three-level aggregation matrix: 6 domains, each of
// 3 facets, each facet defined by exactly 2 question ids.
var pid5bfmDomains = map[string]map[string][]int{
	"Негативный аффект": {
		"Эмоциональная лабильность": {1, 19},
		"Тревожность":               {7, 25},
		"Страх разделения":          {13, 31},
	},
	"Отчуждение": {
		"Отстранение":       {4, 22},
		"Ангедония":         {10, 28},
		"Избегание близости": {16, 34},
	},
	"Антагонизм": {
		"Манипулятивность": {2, 20},
		"Лживость":         {8, 26},
		"Грандиозность":    {14, 32},
	},
	"Дизингибиция": {
		"Безответственность": {3, 21},
		"Импульсивность":     {9, 27},
		"Отвлекаемость":      {15, 33},
	},
	"Ананкастия": {
		"Перфекционизм": {6, 18},
		"Ригидность":    {12, 24},
		"Одержимость порядком": {30, 36},
	},
	"Психотицизм": {
		"Необычные убеждения":        {5, 23},
		"Эксцентричность":            {11, 29},
		"Перцептивная дисрегуляция": {17, 35},
	},
}

// PID5BFMDomainOrder fixes the reporting order of the domains.
var PID5BFMDomainOrder = []string{
	"Негативный аффект", "Отчуждение", "Антагонизм",
	"Дизингибиция", "Ананкастия", "Психотицизм",
}

func init() {
	lists := make([][]int, 0, 18)
	for _, facets := range pid5bfmDomains {
		for _, items := range facets {
			lists = append(lists, items)
		}
	}
	survey.MustCatalogFor(survey.PID5BFM).MustCheckScaleCoverage(true, lists...)
}

// PID5BFMResult holds facet and domain means on the recoded 0-3 scale.
// Domain scores are rounded to 1 decimal; facet means stay unrounded.
type PID5BFMResult struct {
	Domains  map[string]float64 `json:"domains"`
	Facets   map[string]float64 `json:"facets"`
	Total    int                `json:"total_score"`
	Answered int                `json:"answered_questions"`
}

func (r *PID5BFMResult) Instrument() survey.Instrument { return survey.PID5BFM }

func (r *PID5BFMResult) ScaleScores() map[string]float64 {
	out := make(map[string]float64, len(r.Domains))
	for name, score := range r.Domains {
		out[name] = score
	}
	return out
}

// ScorePID5BFM requires all 36 responses. Every raw answer is recoded by
// subtracting 1 (1-4 -> 0-3, unconditionally, no reverse items); a facet is
// the mean of its 2 recoded items, a domain the mean of its 3 facets.
func ScorePID5BFM(rs survey.ResponseSet) (*PID5BFMResult, error) {
	if err := survey.Gate(survey.PID5BFM, rs); err != nil {
		return nil, err
	}

	result := &PID5BFMResult{
		Domains:  make(map[string]float64, len(pid5bfmDomains)),
		Facets:   make(map[string]float64, 18),
		Answered: len(rs),
	}
	for _, value := range rs {
		result.Total += value
	}

	for domain, facets := range pid5bfmDomains {
		facetMeans := make([]float64, 0, len(facets))
		for facet, items := range facets {
			sum := 0
			for _, id := range items {
				sum += rs[id] - 1
			}
			mean := float64(sum) / float64(len(items))
			result.Facets[facet] = mean
			facetMeans = append(facetMeans, mean)
		}
		domainMean, _ := stats.Mean(facetMeans)
		result.Domains[domain], _ = stats.Round(domainMean, 1)
	}
	return result, nil
}
