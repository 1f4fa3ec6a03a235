// Package scoring turns completed response sets into normalized
// psychological profiles. Every scorer is a pure function: it applies the
// shared validation gate first and computes nothing on an invalid protocol.
package scoring

import (
	"fmt"

	"psychoscore/domain/survey"
)

// Result is the consumer-facing artifact of a scorer. It carries no
// user/session identity; attaching identity is the persistence layer's job.
type Result interface {
	Instrument() survey.Instrument
	// ScaleScores flattens the result into scale name -> numeric score for
	// storage and export. Instrument-specific derived fields stay on the
	// concrete types.
	ScaleScores() map[string]float64
}

// Score dispatches a response set to the scorer for its instrument.
func Score(inst survey.Instrument, rs survey.ResponseSet) (Result, error) {
	switch inst {
	case survey.HEXACO:
		return ScoreHEXACO(rs)
	case survey.SDS:
		return ScoreSDS(rs)
	case survey.SVS:
		return ScoreSVS(rs)
	case survey.PANAS:
		return ScorePANAS(rs)
	case survey.SelfEfficacy:
		return ScoreSelfEfficacy(rs)
	case survey.CDRISC:
		return ScoreCDRISC(rs)
	case survey.RFQ:
		return ScoreRFQ(rs)
	case survey.PID5BFM:
		return ScorePID5BFM(rs)
	default:
		return nil, fmt.Errorf("no scorer for instrument %q", inst)
	}
}

// reverse mirrors a raw answer on a scale symmetric around its midpoint:
// for a 1..max scale the reversed contribution is max+1-r.
func reverse(max, r int) int {
	return max + 1 - r
}
