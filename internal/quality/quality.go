// Package quality computes response-style diagnostics for a completed
// protocol. The diagnostics are audit metadata stored next to the scores;
// they never gate or alter scoring.
package quality

import (
	"encoding/json"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"psychoscore/domain/survey"
)

// Diagnostics captures how a respondent used the answer scale.
type Diagnostics struct {
	Answered       int     `json:"answered"`
	Mean           float64 `json:"mean"`
	StdDev         float64 `json:"std_dev"`
	Variance       float64 `json:"variance"`
	Skewness       float64 `json:"skewness"`
	LongestRun     int     `json:"longest_run"`
	StraightLining bool    `json:"straight_lining"`
	ExtremeRatio   float64 `json:"extreme_ratio"`
}

// straightLiningRunThreshold is the run of identical consecutive answers
// (in item order) above which a protocol is flagged.
const straightLiningRunThreshold = 12

// Analyze computes diagnostics for one response set.
func Analyze(inst survey.Instrument, rs survey.ResponseSet) Diagnostics {
	d := Diagnostics{Answered: len(rs)}
	if len(rs) == 0 {
		return d
	}

	values := make([]float64, 0, len(rs))
	ordered := make([]int, 0, len(rs))
	for id := 1; id <= inst.TotalQuestions(); id++ {
		if v, ok := rs[id]; ok {
			values = append(values, float64(v))
			ordered = append(ordered, v)
		}
	}

	d.Mean, _ = stats.Mean(values)
	d.StdDev, _ = stats.StandardDeviation(values)
	d.Variance = stat.Variance(values, nil)
	if d.StdDev > 0 {
		d.Skewness = stat.Skew(values, nil)
	}

	run, longest := 1, 1
	for i := 1; i < len(ordered); i++ {
		if ordered[i] == ordered[i-1] {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	d.LongestRun = longest
	d.StraightLining = longest >= straightLiningRunThreshold || d.Variance == 0

	bounds := inst.Bounds()
	extremes := 0
	for _, v := range ordered {
		if v == bounds.Min || v == bounds.Max {
			extremes++
		}
	}
	d.ExtremeRatio = float64(extremes) / float64(len(ordered))

	return d
}

// ToJSON serializes diagnostics for the quality audit column.
func (d Diagnostics) ToJSON() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
