package survey

import (
	"testing"

	"psychoscore/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCatalogsRegistered(t *testing.T) {
	for _, inst := range All() {
		catalog, err := CatalogFor(inst)
		require.NoError(t, err, "instrument %s", inst)
		assert.Equal(t, inst.TotalQuestions(), catalog.Len(), "instrument %s", inst)
	}
}

func TestCatalogOptionsCoverBounds(t *testing.T) {
	for _, inst := range All() {
		catalog := MustCatalogFor(inst)
		bounds := inst.Bounds()
		for v := bounds.Min; v <= bounds.Max; v++ {
			assert.Contains(t, catalog.Options, v, "instrument %s value %d", inst, v)
		}
	}
}

func TestCatalogQuestionLookup(t *testing.T) {
	catalog := MustCatalogFor(RFQ)

	q, err := catalog.Question(1)
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)
	assert.NotEmpty(t, q.Text)

	_, err = catalog.Question(0)
	assert.ErrorIs(t, err, core.ErrUnknownQuestion)
	_, err = catalog.Question(12)
	assert.ErrorIs(t, err, core.ErrUnknownQuestion)
}

func TestCatalogForUnknownInstrument(t *testing.T) {
	_, err := CatalogFor(Instrument("neo_pi_r"))
	assert.ErrorIs(t, err, core.ErrUnknownInstrument)
}

func TestRFQReverseItems(t *testing.T) {
	catalog := MustCatalogFor(RFQ)
	reversed := []int{2, 4, 6, 8, 9, 11}
	direct := []int{1, 3, 5, 7, 10}

	for _, id := range reversed {
		assert.True(t, catalog.IsReverse(id), "item %d", id)
	}
	for _, id := range direct {
		assert.False(t, catalog.IsReverse(id), "item %d", id)
	}
}

func TestPID5BFMHasNoReverseItems(t *testing.T) {
	catalog := MustCatalogFor(PID5BFM)
	for id := 1; id <= 36; id++ {
		assert.False(t, catalog.IsReverse(id), "item %d", id)
	}
}

func TestCheckScaleCoverageExhaustive(t *testing.T) {
	catalog := MustCatalogFor(SDS)

	err := catalog.checkScaleCoverage(true, []int{1, 2, 3, 4, 5}, []int{6, 7, 8, 9, 10, 11, 12})
	assert.NoError(t, err)

	// Gap: item 12 unused.
	err = catalog.checkScaleCoverage(true, []int{1, 2, 3, 4, 5}, []int{6, 7, 8, 9, 10, 11})
	assert.ErrorIs(t, err, core.ErrScaleCoverageBroken)

	// Overlap: item 5 counted twice.
	err = catalog.checkScaleCoverage(true, []int{1, 2, 3, 4, 5}, []int{5, 6, 7, 8, 9, 10, 11, 12})
	assert.ErrorIs(t, err, core.ErrScaleCoverageBroken)

	// Out of range.
	err = catalog.checkScaleCoverage(false, []int{13})
	assert.ErrorIs(t, err, core.ErrScaleCoverageBroken)
}

func TestCheckScaleCoverageNonExhaustiveAllowsGaps(t *testing.T) {
	catalog := MustCatalogFor(PANAS)
	err := catalog.checkScaleCoverage(false,
		[]int{1, 4, 5, 9, 10, 11, 17, 18, 19},
		[]int{2, 3, 6, 7, 8, 12, 13, 15, 16, 20})
	assert.NoError(t, err)
}

func TestValidateRejectsBrokenCatalog(t *testing.T) {
	broken := &Catalog{
		Instrument: RFQ,
		Questions:  []Question{{ID: 1, Text: "x"}},
		Options:    map[int]string{1: "a", 2: "b", 3: "c", 4: "d", 5: "e"},
	}
	assert.ErrorIs(t, broken.validate(), core.ErrCatalogInvalid)

	gap := &Catalog{Instrument: SDS, Options: map[int]string{}}
	gap.Questions = make([]Question, 12)
	for i := range gap.Questions {
		gap.Questions[i] = Question{ID: i + 1, Text: "q"}
	}
	assert.ErrorIs(t, gap.validate(), core.ErrCatalogInvalid)
}
