package services

import "github.com/zuri-tickets/chiphash/pkg/chiphash"

// TeamCarry is the carry-forward accumulator for the team column. Team names
// appear only on the first row of each team's block; every following row
// inherits the last non-empty name. The zero value starts with no team.
type TeamCarry struct {
	current string
}

// Current returns the team name that will be stamped on the next row without one.
func (c TeamCarry) Current() string {
	return c.current
}

// Apply folds one row into the accumulator and returns the next accumulator
// together with a copy of rec whose team column holds the effective team.
// rec itself is not modified.
func (c TeamCarry) Apply(rec chiphash.Record) (TeamCarry, chiphash.Record) {
	if team := rec.Get(chiphash.ColumnTeam); team != "" && team != c.current {
		c.current = team
	}

	out := rec.Clone()
	out[chiphash.ColumnTeam] = c.current
	return c, out
}

// CarryForward applies TeamCarry over rows in order, starting from the zero accumulator.
func CarryForward(rows []chiphash.Record) []chiphash.Record {
	var carry TeamCarry
	out := make([]chiphash.Record, len(rows))
	for i, rec := range rows {
		carry, out[i] = carry.Apply(rec)
	}
	return out
}
