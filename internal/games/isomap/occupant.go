package isomap

import (
	"fmt"
	"strings"
)

// Occupant is the item sitting on a cell.
type Occupant uint8

const (
	OccupantNone Occupant = iota
	OccupantCoin
	OccupantTrap
	OccupantKey
	OccupantExit
)

var occupantNames = [...]string{
	OccupantNone: "none",
	OccupantCoin: "coin",
	OccupantTrap: "trap",
	OccupantKey:  "key",
	OccupantExit: "exit",
}

// String returns the name used in object files.
func (o Occupant) String() string {
	if int(o) < len(occupantNames) {
		return occupantNames[o]
	}
	return fmt.Sprintf("occupant(%d)", o)
}

// MarshalText encodes the occupant by name.
func (o Occupant) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Consumable reports whether entering the cell removes the occupant.
// The exit stays in place so it can be revisited.
func (o Occupant) Consumable() bool {
	return o == OccupantCoin || o == OccupantTrap || o == OccupantKey
}

// ParseOccupant parses an object type name.
func ParseOccupant(s string) (Occupant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range occupantNames {
		if name == s {
			return Occupant(i), nil
		}
	}
	return OccupantNone, fmt.Errorf("isomap: unknown object type %q", s)
}
