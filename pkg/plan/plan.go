// Package plan holds the decision records the planners produce. Plans are
// pure data: computed once from a reference (training) dataset, transported
// unchanged, and replayed against any dataset sharing the schema. Replays
// only ever execute the recorded directive; held-out statistics never leak
// back into a plan.
package plan

// Decision names a per-variable transformation strategy.
type Decision string

const (
	Skip       Decision = "Skip"
	YeoJohnson Decision = "YeoJohnson"
	Log        Decision = "Log"
	Binarize   Decision = "Binarize"
)

// Valid reports whether the decision is one the appliers understand.
// Unknown labels in a replayed plan are skipped, not fatal.
func (d Decision) Valid() bool {
	switch d {
	case Skip, YeoJohnson, Log, Binarize:
		return true
	}
	return false
}

// Numeric maps each candidate numeric variable to exactly one Decision.
// Binarize is the guaranteed terminal fallback: the planner never leaves a
// variable undecided.
type Numeric map[string]Decision

// Target records the single-variable plan for the prediction target.
// Binarize is never a target decision.
type Target struct {
	Variable string   `json:"variable" yaml:"variable" toml:"variable"`
	Decision Decision `json:"decision" yaml:"decision" toml:"decision"`
}

// Encoding maps variable -> original category -> numeric code. The original
// and encoded value sets for a variable must not overlap; the encoder treats
// an overlap as "already encoded" and skips the variable.
type Encoding map[string]map[string]float64

// UnknownCategory is the reserved fill category for heavily missing
// categorical variables.
const UnknownCategory = "Unknown"

// Fill is a single missing-value directive: drop the column, fill with a
// category, or fill with a number. Exactly one field is set.
type Fill struct {
	Drop     bool     `json:"drop,omitempty" yaml:"drop,omitempty" toml:"drop,omitempty"`
	Category *string  `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Number   *float64 `json:"number,omitempty" yaml:"number,omitempty" toml:"number,omitempty"`
}

// DropColumn is the NoFill directive: the column is beyond saving.
func DropColumn() Fill { return Fill{Drop: true} }

func FillCategory(v string) Fill { return Fill{Category: &v} }

func FillNumber(v float64) Fill { return Fill{Number: &v} }

// Missing maps variable -> Fill. A missing-value plan only ever references
// columns that had at least one missing value when the plan was built. A nil
// Missing is the "no plan" sentinel, distinct from an empty one.
type Missing map[string]Fill

// Bundle is the transportable unit collaborators persist between the train
// and test passes.
type Bundle struct {
	Numeric  Numeric  `json:"numeric,omitempty" yaml:"numeric,omitempty" toml:"numeric,omitempty"`
	Target   *Target  `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Missing  Missing  `json:"missing,omitempty" yaml:"missing,omitempty" toml:"missing,omitempty"`
	Encoding Encoding `json:"encoding,omitempty" yaml:"encoding,omitempty" toml:"encoding,omitempty"`
}
