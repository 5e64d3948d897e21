package model

import (
	"sort"
)

// ShiftOff is a request not to work shift on day
type ShiftOff struct {
	Day   int
	Shift int
}

// Preferences holds the shift-off requests of every nurse for one week
type Preferences struct {
	requests map[int]map[ShiftOff]struct{}
}

// NewPreferences returns an empty set of requests
func NewPreferences() Preferences {
	return Preferences{requests: make(map[int]map[ShiftOff]struct{})}
}

// Add records that nurse does not want to work shift on day.
// Adding the same request twice has no effect.
func (p *Preferences) Add(nurse, day, shift int) {
	if p.requests == nil {
		p.requests = make(map[int]map[ShiftOff]struct{})
	}
	if p.requests[nurse] == nil {
		p.requests[nurse] = make(map[ShiftOff]struct{})
	}
	p.requests[nurse][ShiftOff{Day: day, Shift: shift}] = struct{}{}
}

// RequestsOff reports whether nurse asked not to work shift on day
func (p Preferences) RequestsOff(nurse, day, shift int) bool {
	_, ok := p.requests[nurse][ShiftOff{Day: day, Shift: shift}]
	return ok
}

// RequestsOf returns the requests of nurse ordered by day then shift
func (p Preferences) RequestsOf(nurse int) []ShiftOff {
	requests := make([]ShiftOff, 0, len(p.requests[nurse]))
	for req := range p.requests[nurse] {
		requests = append(requests, req)
	}
	sort.Slice(requests, func(i, j int) bool {
		if requests[i].Day != requests[j].Day {
			return requests[i].Day < requests[j].Day
		}
		return requests[i].Shift < requests[j].Shift
	})
	return requests
}

// Nurses returns the indices of nurses with at least one request, in ascending order
func (p Preferences) Nurses() []int {
	nurses := make([]int, 0, len(p.requests))
	for nurse, reqs := range p.requests {
		if len(reqs) > 0 {
			nurses = append(nurses, nurse)
		}
	}
	sort.Ints(nurses)
	return nurses
}

// Count returns the total number of requests
func (p Preferences) Count() int {
	count := 0
	for _, reqs := range p.requests {
		count += len(reqs)
	}
	return count
}

// Clone returns a deep copy that shares nothing with p
func (p Preferences) Clone() Preferences {
	clone := NewPreferences()
	for nurse, reqs := range p.requests {
		for req := range reqs {
			clone.Add(nurse, req.Day, req.Shift)
		}
	}
	return clone
}
