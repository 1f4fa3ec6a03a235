package scoring

import (
	"sort"

	"github.com/montanaflynn/stats"

	"psychoscore/domain/survey"
)

// svsValueItems maps each of the 10 value types to its fixed,
// non-overlapping item list. Item 10 ("СМЫСЛ ЖИЗНИ") is answered and
// ipsatized but belongs to no value type; the lists cover 56 of 57 items.
var svsValueItems = map[string][]int{
	"Power":          {3, 12, 23, 27, 46},
	"Achievement":    {14, 34, 39, 43, 48, 55},
	"Hedonism":       {4, 50, 57},
	"Stimulation":    {9, 25, 37},
	"Self-Direction": {5, 16, 31, 41, 53},
	"Universalism":   {1, 2, 6, 15, 17, 24, 26, 29, 30, 35, 38},
	"Benevolence":    {19, 28, 33, 45, 49, 52, 54},
	"Tradition":      {18, 36, 40, 44, 51},
	"Conformity":     {11, 20, 32, 47},
	"Security":       {7, 8, 13, 21, 22, 42, 56},
}

// svsClusters composes the 4 higher-order dimensions from value types.
var svsClusters = map[string][]string{
	"Self-Transcendence": {"Universalism", "Benevolence"},
	"Self-Enhancement":   {"Power", "Achievement"},
	"Openness-to-Change": {"Self-Direction", "Stimulation", "Hedonism"},
	"Conservation":       {"Security", "Conformity", "Tradition"},
}

func init() {
	lists := make([][]int, 0, len(svsValueItems))
	for _, items := range svsValueItems {
		lists = append(lists, items)
	}
	// Non-exhaustive: item 10 stays outside every value type.
	survey.MustCatalogFor(survey.SVS).MustCheckScaleCoverage(false, lists...)
}

// ValueTypeScore pairs a value type with its ipsatized mean, used for the
// most/least-important ranking.
type ValueTypeScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// SVSResult holds the ipsatized profile: per-item deviations from the
// respondent's own mean, value-type means, cluster means and the descending
// value-type ranking.
type SVSResult struct {
	MeanRaw    float64            `json:"mean_raw_score"`
	Ipsatized  map[int]float64    `json:"ipsatized_scores"`
	ValueTypes map[string]float64 `json:"value_type_scores"`
	Clusters   map[string]float64 `json:"cluster_scores"`
	Ranked     []ValueTypeScore   `json:"sorted_value_types"`
}

func (r *SVSResult) Instrument() survey.Instrument { return survey.SVS }

func (r *SVSResult) ScaleScores() map[string]float64 {
	out := make(map[string]float64, len(r.ValueTypes)+len(r.Clusters))
	for k, v := range r.ValueTypes {
		out[k] = v
	}
	for k, v := range r.Clusters {
		out[k] = v
	}
	return out
}

// ScoreSVS requires all 57 responses. Ipsatization subtracts the
// respondent's own mean raw score from every item, removing individual
// scale-usage bias before any aggregation; the correction is relative to
// the individual, never to a population norm.
func ScoreSVS(rs survey.ResponseSet) (*SVSResult, error) {
	if err := survey.Gate(survey.SVS, rs); err != nil {
		return nil, err
	}

	raw := make([]float64, 0, len(rs))
	for id := 1; id <= survey.SVS.TotalQuestions(); id++ {
		raw = append(raw, float64(rs[id]))
	}
	meanRaw, _ := stats.Mean(raw)

	ipsatized := make(map[int]float64, len(rs))
	for id, value := range rs {
		ipsatized[id] = float64(value) - meanRaw
	}

	valueTypes := make(map[string]float64, len(svsValueItems))
	for name, items := range svsValueItems {
		deviations := make([]float64, 0, len(items))
		for _, id := range items {
			deviations = append(deviations, ipsatized[id])
		}
		valueTypes[name], _ = stats.Mean(deviations)
	}

	clusters := make(map[string]float64, len(svsClusters))
	for name, components := range svsClusters {
		componentScores := make([]float64, 0, len(components))
		for _, valueType := range components {
			componentScores = append(componentScores, valueTypes[valueType])
		}
		clusters[name], _ = stats.Mean(componentScores)
	}

	ranked := make([]ValueTypeScore, 0, len(valueTypes))
	for name, score := range valueTypes {
		ranked = append(ranked, ValueTypeScore{Name: name, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})

	return &SVSResult{
		MeanRaw:    meanRaw,
		Ipsatized:  ipsatized,
		ValueTypes: valueTypes,
		Clusters:   clusters,
		Ranked:     ranked,
	}, nil
}
