// Package interpret turns an emotional state into a short reflective text.
package interpret

import "github.com/iburimskiy/emotional-mirror/internal/emotion"

// Category names one branch of the decision tree.
type Category string

const (
	Storm        Category = "storm"
	Pressure     Category = "pressure"
	Fire         Category = "fire"
	Agitation    Category = "agitation"
	Weight       Category = "weight"
	FragileRest  Category = "fragile-rest"
	QuietAche    Category = "quiet-ache"
	Winter       Category = "winter"
	StuckUnease  Category = "stuck-unease"
	Irritation   Category = "irritation"
	Excitement   Category = "excitement"
	Joy          Category = "joy"
	Flow         Category = "flow"
	Vitality     Category = "vitality"
	GroundedRest Category = "grounded-rest"
	Drift        Category = "drift"
	Calm         Category = "calm"
	Recharge     Category = "recharge"
	Harmony      Category = "harmony"
	Contentment  Category = "contentment"
)

// Reading is the outcome of interpreting a state.
type Reading struct {
	Category Category
	Text     string
}

// Thresholds
const (
	pleasantAbove   = 0.5
	energyHighAbove = 0.55
	energyLowBelow  = 0.45
	heavyAbove      = 0.6
	lightBelow      = 0.4
	stableBelow     = 0.4
	chaoticAbove    = 0.6
	intenseAbove    = 0.7
)

// Interpret returns the text for l.
func Interpret(l emotion.Levels) string {
	return Describe(l).Text
}

// Describe walks the decision tree. The first matching trait wins, so the
// order of checks inside each branch is significant.
func Describe(l emotion.Levels) Reading {
	l = l.Clamp()

	pleasant := l.Valence > pleasantAbove
	energyHigh := l.Energy > energyHighAbove
	energyLow := l.Energy < energyLowBelow

	heavy := l.Heaviness > heavyAbove
	light := l.Heaviness < lightBelow
	stable := l.Chaos < stableBelow
	chaotic := l.Chaos > chaoticAbove
	intense := l.Intensity > intenseAbove

	if !pleasant {
		switch {
		case energyHigh:
			switch {
			case chaotic:
				return read(Storm)
			case heavy:
				return read(Pressure)
			case intense:
				return read(Fire)
			}
			return read(Agitation)
		case energyLow:
			switch {
			case heavy:
				return read(Weight)
			case chaotic:
				return read(FragileRest)
			case intense:
				return read(QuietAche)
			}
			return read(Winter)
		case stable:
			return read(StuckUnease)
		}
		return read(Irritation)
	}

	switch {
	case energyHigh:
		switch {
		case chaotic:
			return read(Excitement)
		case light:
			return read(Joy)
		case stable:
			return read(Flow)
		}
		return read(Vitality)
	case energyLow:
		switch {
		case heavy:
			return read(GroundedRest)
		case light:
			return read(Drift)
		case stable:
			return read(Calm)
		}
		return read(Recharge)
	case stable:
		return read(Harmony)
	}
	return read(Contentment)
}

func read(c Category) Reading {
	return Reading{Category: c, Text: catalog[c]}
}

// Categories lists every category in catalog order.
func Categories() []Category {
	return []Category{
		Storm, Pressure, Fire, Agitation,
		Weight, FragileRest, QuietAche, Winter,
		StuckUnease, Irritation,
		Excitement, Joy, Flow, Vitality,
		GroundedRest, Drift, Calm, Recharge,
		Harmony, Contentment,
	}
}

// Pleasant reports whether c belongs to the pleasant half of the tree.
func (c Category) Pleasant() bool {
	switch c {
	case Excitement, Joy, Flow, Vitality, GroundedRest, Drift, Calm, Recharge, Harmony, Contentment:
		return true
	}
	return false
}
