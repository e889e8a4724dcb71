// internal/selector/chain.go
package selector

import (
	"context"
	"sync"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/metrics"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

// ==========================
// DIRECTORY BACKEND
// ==========================

// Directory is the slice of the backend the chain needs: option lists for
// each level below country, and the fee for a fully resolved address.
// *api.Client satisfies it.
type Directory interface {
	States(ctx context.Context, country string) ([]string, error)
	LGAs(ctx context.Context, country, state string) ([]string, error)
	Cities(ctx context.Context, country, state, lga string) ([]string, error)
	CityRegions(ctx context.Context, country, state, lga, city string) ([]models.CityRegion, error)
	CityRegionFee(ctx context.Context, country, state, lga, city, cityRegion string) (*models.Fee, error)
}

// ==========================
// CHAIN STATE
// ==========================

// Level identifies one tier of the hierarchy. Used for downstream clears
// and for labelling discarded-fetch metrics.
type Level int

const (
	LevelCountry Level = iota
	LevelState
	LevelLGA
	LevelCity
	LevelCityRegion
)

func (l Level) String() string {
	switch l {
	case LevelCountry:
		return "country"
	case LevelState:
		return "state"
	case LevelLGA:
		return "lga"
	case LevelCity:
		return "city"
	case LevelCityRegion:
		return "city_region"
	}
	return "unknown"
}

// Selection is the full observable state of the chain: the value chosen at
// each level, the option lists currently offered below each chosen level,
// and the resolved fee once all five levels are set.
type Selection struct {
	Country    Choice
	State      Choice
	LGA        Choice
	City       Choice
	CityRegion Choice

	StateOptions      []string
	LGAOptions        []string
	CityOptions       []string
	CityRegionOptions []models.CityRegion

	HouseNumber string
	Street      string
	Landmark    string

	Fee *models.Fee
}

// IsComplete reports whether every hierarchy level holds a non-empty value.
func (s Selection) IsComplete() bool {
	return !s.Country.IsZero() && !s.State.IsZero() && !s.LGA.IsZero() &&
		!s.City.IsZero() && !s.CityRegion.IsZero()
}

// Result converts the selection into the model used by the rest of the
// application. ok is false until the hierarchy is complete.
func (s Selection) Result() (models.LocationSelection, bool) {
	out := models.LocationSelection{
		Country:     s.Country.Value(),
		State:       s.State.Value(),
		LGA:         s.LGA.Value(),
		City:        s.City.Value(),
		CityRegion:  s.CityRegion.Value(),
		HouseNumber: s.HouseNumber,
		Street:      s.Street,
		Landmark:    s.Landmark,
		Fee:         s.Fee,
	}
	return out, s.IsComplete()
}

// ==========================
// CHAIN
// ==========================

// Chain drives the five-level cascading location selector. Changing a level
// synchronously clears every level below it, then fetches the next option
// list in the background. Responses from fetches issued before a later
// change are discarded, so a slow early response can never overwrite the
// options of a newer selection.
type Chain struct {
	mu  sync.Mutex
	dir Directory
	log logger.Logger

	sel Selection

	// gen is bumped on every mutation; in-flight fetches carry the value
	// they were issued under and drop their result on mismatch.
	gen uint64
}

func NewChain(dir Directory, log logger.Logger) *Chain {
	return &Chain{dir: dir, log: log}
}

// Snapshot returns a copy of the current selection. Slices are copied so
// callers cannot observe later mutations.
func (c *Chain) Snapshot() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copySelection()
}

func (c *Chain) copySelection() Selection {
	out := c.sel
	out.StateOptions = append([]string(nil), c.sel.StateOptions...)
	out.LGAOptions = append([]string(nil), c.sel.LGAOptions...)
	out.CityOptions = append([]string(nil), c.sel.CityOptions...)
	out.CityRegionOptions = append([]models.CityRegion(nil), c.sel.CityRegionOptions...)
	if c.sel.Fee != nil {
		fee := *c.sel.Fee
		out.Fee = &fee
	}
	return out
}

// clearBelow empties every level strictly below the given one, including
// its option list and the resolved fee. Callers hold c.mu.
func (c *Chain) clearBelow(level Level) {
	switch level {
	case LevelCountry:
		c.sel.State = None()
		c.sel.StateOptions = nil
		fallthrough
	case LevelState:
		c.sel.LGA = None()
		c.sel.LGAOptions = nil
		fallthrough
	case LevelLGA:
		c.sel.City = None()
		c.sel.CityOptions = nil
		fallthrough
	case LevelCity:
		c.sel.CityRegion = None()
		c.sel.CityRegionOptions = nil
		fallthrough
	case LevelCityRegion:
		c.sel.Fee = nil
	}
}

// bump invalidates all in-flight fetches and returns the new generation.
// Callers hold c.mu.
func (c *Chain) bump() uint64 {
	c.gen++
	return c.gen
}

// stale checks a fetch result against the current generation and records a
// discard when it lost the race.
func (c *Chain) stale(gen uint64, level Level) bool {
	if gen == c.gen {
		return false
	}
	metrics.SelectorFetchesDiscarded.WithLabelValues(level.String()).Inc()
	c.log.Debug("discarding stale option fetch", map[string]interface{}{
		"level": level.String(),
	})
	return true
}

// ==========================
// LEVEL SELECTION
// ==========================

// SelectCountry sets the country and loads its states. A zero choice clears
// the whole chain without issuing a fetch.
func (c *Chain) SelectCountry(ctx context.Context, choice Choice) {
	c.mu.Lock()
	c.sel.Country = choice
	c.clearBelow(LevelCountry)
	gen := c.bump()
	c.mu.Unlock()

	if choice.IsZero() {
		return
	}

	options, err := c.dir.States(ctx, choice.Value())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(gen, LevelState) {
		return
	}
	if err != nil {
		// Soft failure: the state list stays empty and the user can fall
		// back to typing a custom value.
		c.log.Warn("state list fetch failed", map[string]interface{}{
			"country": choice.Value(),
			"error":   err.Error(),
		})
		return
	}
	c.sel.StateOptions = options
}

// SelectState sets the state and loads its local government areas.
func (c *Chain) SelectState(ctx context.Context, choice Choice) {
	c.mu.Lock()
	country := c.sel.Country
	if country.IsZero() {
		choice = None()
	}
	c.sel.State = choice
	c.clearBelow(LevelState)
	gen := c.bump()
	c.mu.Unlock()

	if choice.IsZero() {
		return
	}

	options, err := c.dir.LGAs(ctx, country.Value(), choice.Value())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(gen, LevelLGA) {
		return
	}
	if err != nil {
		c.log.Warn("lga list fetch failed", map[string]interface{}{
			"state": choice.Value(),
			"error": err.Error(),
		})
		return
	}
	c.sel.LGAOptions = options
}

// SelectLGA sets the local government area and loads its cities. On fetch
// failure the city list degrades to the single "Others" entry so the flow
// can continue through a custom value.
func (c *Chain) SelectLGA(ctx context.Context, choice Choice) {
	c.mu.Lock()
	country, state := c.sel.Country, c.sel.State
	if country.IsZero() || state.IsZero() {
		choice = None()
	}
	c.sel.LGA = choice
	c.clearBelow(LevelLGA)
	gen := c.bump()
	c.mu.Unlock()

	if choice.IsZero() {
		return
	}

	options, err := c.dir.Cities(ctx, country.Value(), state.Value(), choice.Value())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(gen, LevelCity) {
		return
	}
	if err != nil {
		c.log.Warn("city list fetch failed", map[string]interface{}{
			"lga":   choice.Value(),
			"error": err.Error(),
		})
		c.sel.CityOptions = []string{OthersOption}
		return
	}
	c.sel.CityOptions = options
}

// SelectCity sets the city and loads its city regions. The custom-entry
// option is always appended; on fetch failure it becomes the only entry.
func (c *Chain) SelectCity(ctx context.Context, choice Choice) {
	c.mu.Lock()
	country, state, lga := c.sel.Country, c.sel.State, c.sel.LGA
	if country.IsZero() || state.IsZero() || lga.IsZero() {
		choice = None()
	}
	c.sel.City = choice
	c.clearBelow(LevelCity)
	gen := c.bump()
	c.mu.Unlock()

	if choice.IsZero() {
		return
	}

	customEntry := models.CityRegion{Name: OthersCustomEntry, Fee: 0}
	options, err := c.dir.CityRegions(ctx, country.Value(), state.Value(), lga.Value(), choice.Value())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(gen, LevelCityRegion) {
		return
	}
	if err != nil {
		c.log.Warn("city region list fetch failed", map[string]interface{}{
			"city":  choice.Value(),
			"error": err.Error(),
		})
		c.sel.CityRegionOptions = []models.CityRegion{customEntry}
		return
	}
	c.sel.CityRegionOptions = append(options, customEntry)
}

// SelectCityRegion sets the final level and, once the hierarchy is
// complete, resolves the fee. Fee lookup failures degrade to a zero fee
// tagged with the "error" source instead of blocking the selection.
func (c *Chain) SelectCityRegion(ctx context.Context, choice Choice) {
	c.mu.Lock()
	if c.sel.Country.IsZero() || c.sel.State.IsZero() || c.sel.LGA.IsZero() || c.sel.City.IsZero() {
		choice = None()
	}
	c.sel.CityRegion = choice
	c.clearBelow(LevelCityRegion)
	gen := c.bump()
	snapshot := c.sel
	c.mu.Unlock()

	if !snapshot.IsComplete() {
		return
	}

	fee, err := c.dir.CityRegionFee(ctx,
		snapshot.Country.Value(), snapshot.State.Value(), snapshot.LGA.Value(),
		snapshot.City.Value(), snapshot.CityRegion.Value())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(gen, LevelCityRegion) {
		return
	}
	if err != nil {
		c.log.Warn("city region fee lookup failed", map[string]interface{}{
			"city_region": choice.Value(),
			"error":       err.Error(),
		})
		c.sel.Fee = &models.Fee{Amount: 0, Source: models.FeeSourceError}
		return
	}
	c.sel.Fee = fee
}

// ==========================
// ADDRESS DETAILS
// ==========================

// SetAddressDetails records the free-text address lines. They sit outside
// the hierarchy and never trigger clears or fetches.
func (c *Chain) SetAddressDetails(houseNumber, street, landmark string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.HouseNumber = houseNumber
	c.sel.Street = street
	c.sel.Landmark = landmark
}

// Result returns the completed selection, or ok=false while any level is
// still empty.
func (c *Chain) Result() (models.LocationSelection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copySelection().Result()
}
