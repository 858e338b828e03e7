package entities

import "strings"

// Stat identifies one of the six base stats by position.
type Stat int

// Base stats in the order they appear in the source data.
const (
	StatHealth Stat = iota
	StatAttack
	StatDefense
	StatSpecialAttack
	StatSpecialDefense
	StatSpeed
)

// AllStats lists every stat in positional order.
var AllStats = []Stat{
	StatHealth,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

var statLabels = [StatCount]string{
	"health",
	"attack",
	"defense",
	"special-attack",
	"special-defense",
	"speed",
}

// String returns the stat's label.
func (s Stat) String() string {
	if s < 0 || int(s) >= StatCount {
		return "unknown"
	}
	return statLabels[s]
}

// ParseStat resolves a label such as "Special-Attack" to its Stat.
func ParseStat(label string) (Stat, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for i, l := range statLabels {
		if l == normalized {
			return Stat(i), nil
		}
	}
	return 0, &InvalidStatNameError{Name: label}
}

// StatLabels returns the recognized labels in positional order.
func StatLabels() []string {
	return append([]string(nil), statLabels[:]...)
}
