package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arnavshah/flight-assigner-go/pkg/logging"
	"github.com/arnavshah/flight-assigner-go/pkg/models"
	"github.com/arnavshah/flight-assigner-go/pkg/squadron"
)

var (
	// ErrCallsignLookup wraps a failure of the squadron call-sign source
	ErrCallsignLookup = errors.New("squadron callsign lookup failed")
	// ErrInvalidPolicy is returned for a policy that fails validation
	ErrInvalidPolicy = models.ErrInvalidPolicy
)

const (
	reasonIgnored    = "non-standard call-sign ignored"
	reasonNoLead     = "no eligible flight lead"
	reasonLeadEmpty  = "lead slot unfilled"
	reasonNoEligible = "no eligible candidate"
)

// Scheduler handles the logic of assigning people to flight slots. A
// Scheduler is built for one run and discarded afterwards.
type Scheduler struct {
	Flights   []models.Flight
	People    []models.Person
	Policy    models.Policy
	Squadrons []models.SquadronCallsigns

	log        *slog.Logger
	squadronOf map[string]string // flight id -> resolved squadron, "" when non-standard
	order      []models.Flight   // flights eligible for filling, in fill order
	slots      map[models.SlotKey]models.Person
	pool       pool
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithLogger sets the logger used for placement decisions
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// NewScheduler creates a new scheduler instance. The input slices are copied
// and never modified.
func NewScheduler(flights []models.Flight, people []models.Person, squadrons []models.SquadronCallsigns, policy models.Policy, opts ...Option) *Scheduler {
	s := &Scheduler{
		Flights:    append([]models.Flight(nil), flights...),
		People:     append([]models.Person(nil), people...),
		Policy:     policy,
		Squadrons:  squadrons,
		log:        logging.Discard(),
		squadronOf: make(map[string]string, len(flights)),
		slots:      make(map[models.SlotKey]models.Person),
		pool:       append(pool(nil), people...),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, f := range s.Flights {
		if id, ok := squadron.Resolve(f.Callsign, squadrons); ok {
			s.squadronOf[f.ID] = id
		}
	}
	s.order = OrderFlights(s.Flights, s.squadronOf, policy.NonStandardCallsignHandling)
	return s
}

// Prefill records existing assignments. They are only honored when the policy
// keeps prior work (fillGaps); invalid or conflicting entries are dropped.
func (s *Scheduler) Prefill(assignments []models.Assignment) {
	if s.Policy.AssignmentScope != models.ScopeFillGaps {
		return
	}

	flights := make(map[string]models.Flight, len(s.Flights))
	for _, f := range s.Flights {
		flights[f.ID] = f
	}
	people := make(map[string]models.Person, len(s.People))
	for _, p := range s.People {
		if _, dup := people[p.ID]; !dup {
			people[p.ID] = p
		}
	}
	placed := make(map[string]bool)

	for _, asgn := range assignments {
		f, ok := flights[asgn.FlightID]
		key := models.SlotKey{FlightID: asgn.FlightID, Slot: asgn.Slot}
		_, taken := s.slots[key]
		if !ok || asgn.Slot < 1 || asgn.Slot > f.Slots() || taken || asgn.PersonID == "" || placed[asgn.PersonID] {
			s.log.Debug("dropping prior assignment",
				slog.String("flight", asgn.FlightID), slog.Int("slot", asgn.Slot), slog.String("person", asgn.PersonID))
			continue
		}

		person, known := people[asgn.PersonID]
		if !known {
			person = models.Person{ID: asgn.PersonID}
		}
		s.place(key, person)
		placed[asgn.PersonID] = true
	}
}

// Run fills the flights according to the policy and returns the result.
func (s *Scheduler) Run() models.AssignResult {
	switch s.Policy.FillStrategy {
	case models.FillBreadth:
		s.fillBreadth()
	default:
		s.fillDepth()
		s.consolidate()
	}
	return s.result()
}

// Assign resolves the squadron call-sign sets from src and runs the engine
// over in. A lookup failure aborts the run before any slot is touched.
func Assign(ctx context.Context, src squadron.Source, in models.AssignInput, opts ...Option) (models.AssignResult, error) {
	if err := in.Policy.Validate(); err != nil {
		return models.AssignResult{}, err
	}

	sets, err := src.Callsigns(ctx)
	if err != nil {
		return models.AssignResult{}, fmt.Errorf("%w: %w", ErrCallsignLookup, err)
	}

	s := NewScheduler(in.Flights, in.People, sets, in.Policy, opts...)
	s.Prefill(in.CurrentAssignments)
	res := s.Run()

	s.log.Info("assignment complete",
		slog.Int("flights", len(in.Flights)),
		slog.Int("people", len(in.People)),
		slog.Int("placed", res.Placed()),
		slog.Int("unfilled", len(res.Unfilled)),
		slog.String("strategy", string(in.Policy.FillStrategy)))
	return res, nil
}

func (s *Scheduler) place(key models.SlotKey, p models.Person) {
	s.slots[key] = p
	s.pool = s.pool.without(p.ID)
}

// occupancy counts occupied slots of flight f
func (s *Scheduler) occupancy(f models.Flight) int {
	n := 0
	for slot := 1; slot <= models.MaxSlots; slot++ {
		if _, ok := s.slots[models.SlotKey{FlightID: f.ID, Slot: slot}]; ok {
			n++
		}
	}
	return n
}

// lowestOpenSlot returns the first empty slot of f, or 0 when f is full
func (s *Scheduler) lowestOpenSlot(f models.Flight) int {
	for slot := 1; slot <= f.Slots(); slot++ {
		if _, ok := s.slots[models.SlotKey{FlightID: f.ID, Slot: slot}]; !ok {
			return slot
		}
	}
	return 0
}

func (s *Scheduler) result() models.AssignResult {
	considered := make(map[string]bool, len(s.order))
	for _, f := range s.order {
		considered[f.ID] = true
	}

	res := models.AssignResult{Assignments: make(map[string][]models.SlotAssignment, len(s.Flights))}
	for _, f := range s.Flights {
		list := []models.SlotAssignment{}
		_, hasLead := s.slots[models.SlotKey{FlightID: f.ID, Slot: 1}]
		for slot := 1; slot <= f.Slots(); slot++ {
			if p, ok := s.slots[models.SlotKey{FlightID: f.ID, Slot: slot}]; ok {
				list = append(list, models.SlotAssignment{Slot: slot, Person: p})
				continue
			}

			reason := reasonNoEligible
			switch {
			case !considered[f.ID]:
				reason = reasonIgnored
			case slot == 1:
				reason = reasonNoLead
			case !hasLead:
				reason = reasonLeadEmpty
			}
			res.Unfilled = append(res.Unfilled, models.UnfilledSlot{FlightID: f.ID, Slot: slot, Reason: reason})
		}
		res.Assignments[f.ID] = list
	}

	if lead, ok := SelectLead(s.Flights, res.Assignments); ok {
		res.Lead = &lead
	}
	return res
}
