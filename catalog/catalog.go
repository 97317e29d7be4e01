// Package catalog holds the fixed table of falling item kinds and the
// weighted picker that feeds the spawner
package catalog

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/supr-growth/vmath"
)

// Class selects the catch branch applied by the score engine
type Class uint8

const (
	ClassGrowth  Class = iota // Adds points, plays its own cue
	ClassLiquid               // Adds points and re-rolls basket width
	ClassHazard               // Ends the run unless shielded
	ClassMystery              // Pauses the run for a player choice
)

func (c Class) String() string {
	switch c {
	case ClassGrowth:
		return "growth"
	case ClassLiquid:
		return "liquid"
	case ClassHazard:
		return "hazard"
	case ClassMystery:
		return "mystery"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// Cue identifies the sound played when an item is caught
type Cue uint8

const (
	CueNone Cue = iota
	CueSeed
	CueCorn
	CueCarrot
	CueWater
	CueWorm
	CueMystery
)

var cueNames = [...]string{"none", "seed", "corn", "carrot", "water", "worm", "mystery"}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return fmt.Sprintf("cue(%d)", uint8(c))
}

// Kind is one immutable catalog entry
type Kind struct {
	Symbol    string
	Name      string
	Points    int
	Weight    float64
	BaseSpeed float64
	Class     Class
	Cue       Cue
}

var ErrEmptyCatalog = errors.New("catalog has no kinds")

// Default kinds in catalog order; order breaks weighted-pick ties
var defaultKinds = []Kind{
	{Symbol: "🌱", Name: "Super Sprout", Points: 50, Weight: 25, BaseSpeed: 1.0, Class: ClassGrowth, Cue: CueSeed},
	{Symbol: "🌽", Name: "Corn King", Points: 20, Weight: 30, BaseSpeed: 1.2, Class: ClassGrowth, Cue: CueCorn},
	{Symbol: "🥕", Name: "Carrot Cash", Points: 30, Weight: 20, BaseSpeed: 0.9, Class: ClassGrowth, Cue: CueCarrot},
	{Symbol: "💧", Name: "Liquid Loan", Points: 5, Weight: 10, BaseSpeed: 1.1, Class: ClassLiquid, Cue: CueWater},
	{Symbol: "🪱", Name: "Worminator", Points: 0, Weight: 10, BaseSpeed: 2.0, Class: ClassHazard, Cue: CueWorm},
	{Symbol: "🎁", Name: "Mystery Box", Points: 0, Weight: 5, BaseSpeed: 0.8, Class: ClassMystery, Cue: CueMystery},
}

// Catalog is a weighted, read-only set of item kinds
type Catalog struct {
	kinds  []Kind
	picker *vmath.Weighted[Kind]
}

// New builds a catalog from kinds; every kind needs a positive weight and speed
func New(kinds []Kind) (*Catalog, error) {
	if len(kinds) == 0 {
		return nil, ErrEmptyCatalog
	}
	for _, k := range kinds {
		if !(k.BaseSpeed > 0) {
			return nil, fmt.Errorf("kind %q: base speed must be positive, got %v", k.Name, k.BaseSpeed)
		}
	}

	picker, err := vmath.NewWeighted(kinds, func(k Kind) float64 { return k.Weight })
	if err != nil {
		return nil, fmt.Errorf("catalog weights: %w", err)
	}

	c := &Catalog{kinds: make([]Kind, len(kinds)), picker: picker}
	copy(c.kinds, kinds)
	return c, nil
}

// Default returns the six-entry game catalog
func Default() *Catalog {
	c, err := New(defaultKinds)
	if err != nil {
		panic(err) // static table
	}
	return c
}

// PickWeighted selects a kind with probability weight/total
func (c *Catalog) PickWeighted(src vmath.Source) Kind {
	return c.picker.Pick(src)
}

// Kinds returns a copy of the catalog entries in order
func (c *Catalog) Kinds() []Kind {
	out := make([]Kind, len(c.kinds))
	copy(out, c.kinds)
	return out
}

// TotalWeight returns the sum of all spawn weights
func (c *Catalog) TotalWeight() float64 {
	return c.picker.Total()
}

// Lookup finds a kind by symbol
func (c *Catalog) Lookup(symbol string) (Kind, bool) {
	for _, k := range c.kinds {
		if k.Symbol == symbol {
			return k, true
		}
	}
	return Kind{}, false
}
