// internal/selector/choice.go
package selector

// OthersOption is the synthetic entry appended to every city-region list
// and substituted when an option fetch fails, so the user is never blocked
// on a missing lookup.
const (
	OthersOption      = "Others"
	OthersCustomEntry = "Others (Enter custom)"
)

type choiceKind int

const (
	choiceNone choiceKind = iota
	choiceSelected
	choiceCustom
)

// Choice is the value of one hierarchy level: either an option picked from
// the fetched list or free text the user typed after choosing "Others".
// The two are kept as a tagged variant so a typed value can never be
// confused with a picked one.
type Choice struct {
	kind  choiceKind
	value string
}

// Selected wraps an option picked from the fetched list.
func Selected(option string) Choice {
	if option == "" {
		return Choice{}
	}
	return Choice{kind: choiceSelected, value: option}
}

// Custom wraps free text entered through the "Others" override. The custom
// value supersedes any picked option for all downstream computations.
func Custom(text string) Choice {
	if text == "" {
		return Choice{}
	}
	return Choice{kind: choiceCustom, value: text}
}

// None is the cleared value.
func None() Choice {
	return Choice{}
}

func (c Choice) IsZero() bool {
	return c.kind == choiceNone
}

func (c Choice) IsCustom() bool {
	return c.kind == choiceCustom
}

// Value returns the effective string for the level, regardless of whether
// it was picked or typed.
func (c Choice) Value() string {
	return c.value
}
