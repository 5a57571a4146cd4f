package scheduler

import (
	"log/slog"

	"github.com/arnavshah/flight-assigner-go/pkg/models"
)

// fillDepth fills each flight completely before moving to the next. A flight
// whose lead slot stays empty gets no one.
func (s *Scheduler) fillDepth() {
	for _, f := range s.order {
		for slot := 1; slot <= f.Slots(); slot++ {
			if _, taken := s.slots[models.SlotKey{FlightID: f.ID, Slot: slot}]; taken {
				continue
			}
			if !s.fillSlot(f, slot) && slot == 1 {
				break
			}
		}
	}
}

// fillBreadth grows every flight to two, then three, then four occupants,
// one slot per flight per pass.
func (s *Scheduler) fillBreadth() {
	for target := 2; target <= models.MaxSlots; target++ {
		for len(s.pool) > 0 {
			gained := false
			for _, f := range s.order {
				if len(s.pool) == 0 {
					break
				}
				if s.occupancy(f) >= target {
					continue
				}
				slot := s.lowestOpenSlot(f)
				if slot == 0 {
					continue
				}
				if s.fillSlot(f, slot) {
					gained = true
				}
			}
			if !gained {
				break
			}
		}
	}
}

// fillSlot runs the gate cascade for one slot and places the most senior
// candidate of the first gate that yields anyone.
func (s *Scheduler) fillSlot(f models.Flight, slot int) bool {
	if len(s.pool) == 0 {
		return false
	}
	for i, g := range BuildGates(slot, s.squadronOf[f.ID], s.Policy) {
		p, ok := PickMostSenior(Filter(s.pool, g))
		if !ok {
			continue
		}
		s.place(models.SlotKey{FlightID: f.ID, Slot: slot}, p)
		s.log.Debug("placed",
			slog.String("flight", f.ID),
			slog.Int("slot", slot),
			slog.String("person", p.ID),
			slog.Int("gate", i))
		return true
	}
	return false
}
