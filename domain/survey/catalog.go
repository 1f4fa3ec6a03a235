package survey

import (
	"fmt"

	"psychoscore/domain/core"
)

// Question is a single catalog item.
type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Catalog is the immutable static definition of one instrument: ordered
// questions, answer-option labels and the reverse-scored item set.
// Catalogs are built once at init and never mutated.
type Catalog struct {
	Instrument   Instrument
	Questions    []Question
	Options      map[int]string
	ReverseItems map[int]bool
}

var catalogs = map[Instrument]*Catalog{}

// registerCatalog validates a catalog and adds it to the registry.
// Called from the per-instrument catalog files' init functions; a broken
// static table is a programming error, so it panics.
func registerCatalog(c *Catalog) {
	if err := c.validate(); err != nil {
		panic(fmt.Sprintf("catalog %s: %v", c.Instrument, err))
	}
	catalogs[c.Instrument] = c
}

// CatalogFor returns the catalog for an instrument.
func CatalogFor(inst Instrument) (*Catalog, error) {
	c, ok := catalogs[inst]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownInstrument, inst)
	}
	return c, nil
}

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.Questions) }

// Question returns the catalog item with the given 1-based id.
func (c *Catalog) Question(id int) (Question, error) {
	if id < 1 || id > len(c.Questions) {
		return Question{}, core.NewUnknownQuestionError(c.Instrument.String(), id)
	}
	return c.Questions[id-1], nil
}

// IsReverse reports whether the item is reverse-scored.
func (c *Catalog) IsReverse(id int) bool {
	return c.ReverseItems[id]
}

// validate enforces the catalog invariants: ids contiguous from 1, count
// matching the instrument spec, option labels covering the answer bounds,
// and reverse flags referencing existing items.
func (c *Catalog) validate() error {
	if !c.Instrument.Known() {
		return fmt.Errorf("%w: instrument %q", core.ErrCatalogInvalid, c.Instrument)
	}
	if len(c.Questions) != c.Instrument.TotalQuestions() {
		return fmt.Errorf("%w: expected %d questions, got %d",
			core.ErrCatalogInvalid, c.Instrument.TotalQuestions(), len(c.Questions))
	}
	for i, q := range c.Questions {
		if q.ID != i+1 {
			return fmt.Errorf("%w: question at position %d has id %d", core.ErrCatalogInvalid, i, q.ID)
		}
		if q.Text == "" {
			return fmt.Errorf("%w: question %d has empty text", core.ErrCatalogInvalid, q.ID)
		}
	}
	bounds := c.Instrument.Bounds()
	for v := bounds.Min; v <= bounds.Max; v++ {
		if _, ok := c.Options[v]; !ok {
			return fmt.Errorf("%w: missing option label for value %d", core.ErrCatalogInvalid, v)
		}
	}
	for id := range c.ReverseItems {
		if id < 1 || id > len(c.Questions) {
			return fmt.Errorf("%w: reverse flag on unknown question %d", core.ErrCatalogInvalid, id)
		}
	}
	return nil
}

// checkScaleCoverage verifies that a scorer's item lists resolve within the
// catalog and, when exhaustive is set, that every catalog id is used exactly
// once across the lists. Scorer packages call this at init.
func (c *Catalog) checkScaleCoverage(exhaustive bool, itemLists ...[]int) error {
	seen := make(map[int]int, c.Len())
	for _, list := range itemLists {
		for _, id := range list {
			if id < 1 || id > c.Len() {
				return fmt.Errorf("%w: %s scale references question %d",
					core.ErrScaleCoverageBroken, c.Instrument, id)
			}
			seen[id]++
		}
	}
	if !exhaustive {
		return nil
	}
	for id := 1; id <= c.Len(); id++ {
		if seen[id] != 1 {
			return fmt.Errorf("%w: %s question %d used %d times",
				core.ErrScaleCoverageBroken, c.Instrument, id, seen[id])
		}
	}
	return nil
}

// MustCheckScaleCoverage panics on a broken scale map; static tables are
// verified once at startup, not per call.
func (c *Catalog) MustCheckScaleCoverage(exhaustive bool, itemLists ...[]int) {
	if err := c.checkScaleCoverage(exhaustive, itemLists...); err != nil {
		panic(err)
	}
}

// MustCatalogFor returns the catalog or panics; for package init paths only.
func MustCatalogFor(inst Instrument) *Catalog {
	c, err := CatalogFor(inst)
	if err != nil {
		panic(err)
	}
	return c
}
