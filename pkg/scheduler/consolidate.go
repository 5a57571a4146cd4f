package scheduler

import (
	"log/slog"
	"sort"

	"github.com/arnavshah/flight-assigner-go/pkg/models"
)

// maxConsolidationRounds caps the singleton repair loop. Every move empties a
// flight, so the loop settles on its own; the cap guarantees termination.
const maxConsolidationRounds = 10

type singleton struct {
	flight models.Flight
	key    models.SlotKey
	person models.Person
}

// consolidate moves lone occupants into flights with open slots, one move
// per round, until nothing moves or the round cap is hit.
func (s *Scheduler) consolidate() {
	for round := 0; round < maxConsolidationRounds; round++ {
		if !s.consolidateOnce() {
			return
		}
	}
}

// consolidateOnce performs at most one move and reports whether it did.
func (s *Scheduler) consolidateOnce() (moved bool) {
	singletons := s.singletons()
	if len(singletons) == 0 {
		return false
	}

	// least senior first, then the higher board number
	sort.SliceStable(singletons, func(i, j int) bool {
		ri, rj := qualificationRank(singletons[i].person), qualificationRank(singletons[j].person)
		if ri != rj {
			return ri > rj
		}
		return singletons[i].person.BoardNumber > singletons[j].person.BoardNumber
	})

	for _, sg := range singletons {
		target, slot, ok := s.consolidationTarget(sg)
		if !ok {
			continue
		}
		delete(s.slots, sg.key)
		s.slots[models.SlotKey{FlightID: target.ID, Slot: slot}] = sg.person
		s.log.Debug("consolidated singleton",
			slog.String("person", sg.person.ID),
			slog.String("from", sg.flight.ID),
			slog.String("to", target.ID),
			slog.Int("slot", slot))
		return true
	}
	return false
}

func (s *Scheduler) singletons() []singleton {
	var out []singleton
	for _, f := range s.order {
		if s.occupancy(f) != 1 {
			continue
		}
		for slot := 1; slot <= models.MaxSlots; slot++ {
			key := models.SlotKey{FlightID: f.ID, Slot: slot}
			if p, ok := s.slots[key]; ok {
				out = append(out, singleton{flight: f, key: key, person: p})
				break
			}
		}
	}
	return out
}

// consolidationTarget picks the flight and slot a singleton should move to.
// Under enforced or prioritized cohesion a flight of the same squadron is
// preferred; enforced cohesion never falls back to another squadron, and
// never moves a singleton that has no squadron at all.
func (s *Scheduler) consolidationTarget(sg singleton) (models.Flight, int, bool) {
	squadronID := sg.person.SquadronID
	if squadronID == "" {
		squadronID = s.squadronOf[sg.flight.ID]
	}

	cohesion := s.Policy.SquadronCohesion
	if cohesion == models.CohesionEnforced && squadronID == "" {
		// no squadron to stay within
		return models.Flight{}, 0, false
	}

	open := func(f models.Flight) int {
		if f.ID == sg.flight.ID {
			return 0
		}
		occ := s.occupancy(f)
		if occ < 1 || occ > 3 || occ >= f.Slots() {
			return 0
		}
		return s.lowestOpenSlot(f)
	}

	if squadronID != "" && (cohesion == models.CohesionEnforced || cohesion == models.CohesionPrioritized) {
		for _, f := range s.order {
			if s.squadronOf[f.ID] != squadronID {
				continue
			}
			if slot := open(f); slot != 0 {
				return f, slot, true
			}
		}
		if cohesion == models.CohesionEnforced {
			return models.Flight{}, 0, false
		}
	}

	for _, f := range s.order {
		if slot := open(f); slot != 0 {
			return f, slot, true
		}
	}
	return models.Flight{}, 0, false
}
