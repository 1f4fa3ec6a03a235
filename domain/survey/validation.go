package survey

import (
	"sort"

	"psychoscore/domain/core"
)

// Verdict is the outcome of the shared completeness check. An invalid
// verdict means the scorer must refuse to compute; it never produces a
// partial numeric score.
type Verdict struct {
	Instrument Instrument `json:"instrument"`
	Valid      bool       `json:"valid"`
	Answered   int        `json:"answered"`
	Required   int        `json:"required"`
	Missing    []int      `json:"missing,omitempty"`
}

// Err converts an invalid verdict into its error form; nil when valid.
func (v *Verdict) Err() error {
	if v.Valid {
		return nil
	}
	return core.NewIncompleteError(v.Instrument.String(), v.Answered, v.Required)
}

// Validate applies the shared validation gate: unknown question ids and
// out-of-range values are hard failures (caller bugs, never clamped);
// incompleteness is reported through the verdict so the caller can re-prompt
// for the missing items.
func Validate(inst Instrument, rs ResponseSet) (*Verdict, error) {
	if !inst.Known() {
		return nil, core.ErrUnknownInstrument
	}
	total := inst.TotalQuestions()
	bounds := inst.Bounds()

	for id, value := range rs {
		if id < 1 || id > total {
			return nil, core.NewUnknownQuestionError(inst.String(), id)
		}
		if value < bounds.Min || value > bounds.Max {
			return nil, core.NewOutOfRangeError(id, value, bounds.Min, bounds.Max)
		}
	}

	verdict := &Verdict{
		Instrument: inst,
		Answered:   len(rs),
		Required:   inst.MinRequired(),
	}
	for id := 1; id <= total; id++ {
		if _, ok := rs[id]; !ok {
			verdict.Missing = append(verdict.Missing, id)
		}
	}
	sort.Ints(verdict.Missing)
	verdict.Valid = verdict.Answered >= verdict.Required
	return verdict, nil
}

// Gate is the scorer entry point: it collapses Validate into a single error,
// so scoring arithmetic only ever runs on a confirmed-complete protocol and
// needs no defensive defaults for missing answers.
func Gate(inst Instrument, rs ResponseSet) error {
	verdict, err := Validate(inst, rs)
	if err != nil {
		return err
	}
	return verdict.Err()
}
