package survey

import (
	"fmt"

	"psychoscore/domain/core"
)

// Instrument identifies one complete questionnaire.
type Instrument string

const (
	HEXACO       Instrument = "hexaco"
	SDS          Instrument = "sds"
	SVS          Instrument = "svs"
	PANAS        Instrument = "panas"
	SelfEfficacy Instrument = "self_efficacy"
	CDRISC       Instrument = "cdrisc"
	RFQ          Instrument = "rfq"
	PID5BFM      Instrument = "pid5bfm"
)

// Bounds declares the inclusive raw answer range for an instrument.
type Bounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// spec holds the static shape of each instrument: item count, answer bounds
// and the minimum answered items required before scoring is allowed.
type instrumentSpec struct {
	total       int
	bounds      Bounds
	minRequired int
}

var instrumentSpecs = map[Instrument]instrumentSpec{
	HEXACO:       {total: 100, bounds: Bounds{1, 5}, minRequired: 100},
	SDS:          {total: 12, bounds: Bounds{1, 5}, minRequired: 12},
	SVS:          {total: 57, bounds: Bounds{-1, 7}, minRequired: 57},
	PANAS:        {total: 20, bounds: Bounds{1, 5}, minRequired: 20},
	SelfEfficacy: {total: 23, bounds: Bounds{-5, 5}, minRequired: 23},
	// CD-RISC tolerates partial protocols: 19 of 25 answered is enough.
	CDRISC:  {total: 25, bounds: Bounds{1, 5}, minRequired: 19},
	RFQ:     {total: 11, bounds: Bounds{1, 5}, minRequired: 11},
	PID5BFM: {total: 36, bounds: Bounds{1, 4}, minRequired: 36},
}

// All returns every supported instrument in a stable order.
func All() []Instrument {
	return []Instrument{HEXACO, SDS, SVS, PANAS, SelfEfficacy, CDRISC, RFQ, PID5BFM}
}

// Parse converts a stored/transport instrument name into an Instrument.
func Parse(s string) (Instrument, error) {
	inst := Instrument(s)
	if _, ok := instrumentSpecs[inst]; !ok {
		return "", fmt.Errorf("%w: %q", core.ErrUnknownInstrument, s)
	}
	return inst, nil
}

// String returns the storage name of the instrument.
func (i Instrument) String() string { return string(i) }

// TotalQuestions returns the number of items in the instrument.
func (i Instrument) TotalQuestions() int { return instrumentSpecs[i].total }

// Bounds returns the inclusive raw answer range.
func (i Instrument) Bounds() Bounds { return instrumentSpecs[i].bounds }

// MinRequired returns the minimum answered items needed for a valid protocol.
func (i Instrument) MinRequired() int { return instrumentSpecs[i].minRequired }

// Known reports whether the instrument is supported.
func (i Instrument) Known() bool {
	_, ok := instrumentSpecs[i]
	return ok
}
