package model

// Player represents a clan member and the ships they own
type Player struct {
	ID       string
	Name     string
	JoinDate string // Date format, empty if unknown
	CoreTeam bool
	Ships    []ShipEntry
}

// ShipEntry is a player's record for one ship. A player only has an entry for
// ships they own.
type ShipEntry struct {
	Ship            string
	Unavailable     bool // Owned but not currently playable (e.g. not yet fitted)
	PlayerPreferred bool
	AdmiralStrong   bool
	AdmiralWeak     bool
	Legendary       bool // Legendary module fitted
	Rating          float64
	WinRate         float64
	AverageDamage   float64
	Battles         int
}

// Ship returns the player's entry for a ship, if they own it
func (p Player) Ship(name string) (ShipEntry, bool) {
	for _, entry := range p.Ships {
		if entry.Ship == name {
			return entry, true
		}
	}
	return ShipEntry{}, false
}

// ShipNames returns the names of all owned ships in roster order
func (p Player) ShipNames() []string {
	names := make([]string, len(p.Ships))
	for i, entry := range p.Ships {
		names[i] = entry.Ship
	}
	return names
}
