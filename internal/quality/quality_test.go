package quality

import (
	"encoding/json"
	"testing"

	"psychoscore/domain/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmptyProtocol(t *testing.T) {
	d := Analyze(survey.RFQ, survey.ResponseSet{})
	assert.Equal(t, 0, d.Answered)
	assert.False(t, d.StraightLining)
}

func TestAnalyzeConstantProtocolFlagsStraightLining(t *testing.T) {
	rs := make(survey.ResponseSet, 20)
	for id := 1; id <= 20; id++ {
		rs[id] = 3
	}

	d := Analyze(survey.PANAS, rs)
	assert.Equal(t, 20, d.Answered)
	assert.Equal(t, 3.0, d.Mean)
	assert.Equal(t, 0.0, d.Variance)
	assert.Equal(t, 20, d.LongestRun)
	assert.True(t, d.StraightLining)
}

func TestAnalyzeVariedProtocol(t *testing.T) {
	rs := make(survey.ResponseSet, 20)
	for id := 1; id <= 20; id++ {
		rs[id] = 1 + (id % 5)
	}

	d := Analyze(survey.PANAS, rs)
	assert.Equal(t, 20, d.Answered)
	assert.Greater(t, d.Variance, 0.0)
	assert.Less(t, d.LongestRun, straightLiningRunThreshold)
	assert.False(t, d.StraightLining)
}

func TestAnalyzeExtremeRatio(t *testing.T) {
	// Half the answers at the scale poles.
	rs := survey.ResponseSet{1: 1, 2: 5, 3: 3, 4: 3}
	d := Analyze(survey.RFQ, rs)
	assert.InDelta(t, 0.5, d.ExtremeRatio, 1e-9)
}

func TestAnalyzeLongestRunUsesItemOrder(t *testing.T) {
	rs := survey.ResponseSet{1: 2, 2: 2, 3: 2, 4: 5, 5: 2, 6: 2, 7: 1, 8: 1, 9: 1, 10: 1, 11: 4}
	d := Analyze(survey.RFQ, rs)
	assert.Equal(t, 4, d.LongestRun)
	assert.False(t, d.StraightLining)
}

func TestDiagnosticsToJSON(t *testing.T) {
	rs := survey.ResponseSet{1: 1, 2: 5, 3: 3}
	d := Analyze(survey.RFQ, rs)

	raw, err := d.ToJSON()
	require.NoError(t, err)

	var decoded Diagnostics
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, d, decoded)
}
