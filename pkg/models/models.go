package models

import "strings"

// LeastSenior is the billet order used for people without a billet assignment.
// Any real billet order is smaller.
const LeastSenior = 9999

// MaxSlots is the largest crew a flight can carry.
const MaxSlots = 4

// Qualification is a qualification type held by a person
type Qualification string

const (
	QualFlightLead       Qualification = "Flight Lead"
	QualSectionLead      Qualification = "Section Lead"
	QualMissionCommander Qualification = "Mission Commander"
	QualStrikeLead       Qualification = "Strike Lead"
	QualInstructor       Qualification = "Instructor"
	QualLSO              Qualification = "LSO"
)

// RollCall is the locally recorded attendance status
type RollCall string

const (
	RollCallNone      RollCall = ""
	RollCallPresent   RollCall = "Present"
	RollCallAbsent    RollCall = "Absent"
	RollCallTentative RollCall = "Tentative"
)

// RSVP is the externally sourced event response
type RSVP string

const (
	RSVPNone      RSVP = ""
	RSVPAccepted  RSVP = "accepted"
	RSVPTentative RSVP = "tentative"
	RSVPDeclined  RSVP = "declined"
)

// Person is a candidate for a flight slot
type Person struct {
	ID             string          `json:"id"`
	Callsign       string          `json:"callsign"`
	BoardNumber    int             `json:"board_number"`
	Qualifications []Qualification `json:"qualifications,omitempty"`
	BilletOrder    *int            `json:"billet_order,omitempty"`
	RollCall       RollCall        `json:"roll_call,omitempty"`
	RSVP           RSVP            `json:"rsvp,omitempty"`
	SquadronID     string          `json:"squadron_id,omitempty"`
}

// Seniority returns the billet order, LeastSenior when none is set.
func (p Person) Seniority() int {
	if p.BilletOrder == nil {
		return LeastSenior
	}
	return *p.BilletOrder
}

// Holds reports whether the person holds qualification q (case-insensitive).
func (p Person) Holds(q Qualification) bool {
	for _, held := range p.Qualifications {
		if strings.EqualFold(strings.TrimSpace(string(held)), string(q)) {
			return true
		}
	}
	return false
}

// Flight is a group of up to four crew slots
type Flight struct {
	ID           string `json:"id"`
	Callsign     string `json:"callsign"`
	FlightNumber int    `json:"flight_number"`
	SlotCount    int    `json:"slot_count,omitempty"`
}

// Slots returns the usable slot count. An undeclared count means a full flight.
func (f Flight) Slots() int {
	if f.SlotCount <= 0 || f.SlotCount > MaxSlots {
		return MaxSlots
	}
	return f.SlotCount
}

// SquadronCallsigns lists the call-signs a squadron is known to fly
type SquadronCallsigns struct {
	SquadronID string   `json:"squadron_id"`
	Callsigns  []string `json:"callsigns"`
}

// SlotKey identifies one slot in one flight
type SlotKey struct {
	FlightID string `json:"flight_id"`
	Slot     int    `json:"slot"`
}

// SlotAssignment is one occupied slot in an assignment result
type SlotAssignment struct {
	Slot   int    `json:"slot"`
	Person Person `json:"person"`
}

// Assignment is a prior slot placement supplied by the caller
type Assignment struct {
	FlightID string `json:"flight_id"`
	Slot     int    `json:"slot"`
	PersonID string `json:"person_id"`
}

// MissionLead is the suggested lead/commander for the whole event
type MissionLead struct {
	Person         Person `json:"person"`
	FlightID       string `json:"flight_id"`
	FlightCallsign string `json:"flight_callsign"`
	FlightNumber   int    `json:"flight_number"`
}

// UnfilledSlot reports an empty slot and why it stayed empty
type UnfilledSlot struct {
	FlightID string `json:"flight_id"`
	Slot     int    `json:"slot"`
	Reason   string `json:"reason"`
}

// AssignInput is the data structure for the assignment endpoint
type AssignInput struct {
	Flights            []Flight     `json:"flights"`
	People             []Person     `json:"people"`
	CurrentAssignments []Assignment `json:"current_assignments"`
	Policy             Policy       `json:"policy"`
}

// AssignResult is the outcome of one engine run
type AssignResult struct {
	Assignments map[string][]SlotAssignment `json:"assignments"`
	Lead        *MissionLead                `json:"lead,omitempty"`
	Unfilled    []UnfilledSlot              `json:"unfilled,omitempty"`
}

// Placed returns the number of occupied slots across all flights.
func (r AssignResult) Placed() int {
	n := 0
	for _, slots := range r.Assignments {
		n += len(slots)
	}
	return n
}
