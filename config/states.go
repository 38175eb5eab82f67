package config

// StateID identifies an enemy AI state.
type StateID int

const (
	StateNone StateID = iota
	StatePatrol
	StateChasing
	StateTrapped
	StateStuck
)

var stateNames = map[StateID]string{
	StateNone:    "none",
	StatePatrol:  "patrol",
	StateChasing: "chasing",
	StateTrapped: "trapped",
	StateStuck:   "stuck",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
