package models

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned by AssignInput.Validate
var ErrInvalidInput = errors.New("invalid assignment input")

// Validate checks ids and slot counts. It does not look at the policy.
func (in AssignInput) Validate() error {
	people := make(map[string]bool, len(in.People))
	for _, p := range in.People {
		if p.ID == "" {
			return fmt.Errorf("%w: person with empty id", ErrInvalidInput)
		}
		if people[p.ID] {
			return fmt.Errorf("%w: duplicate person id %s", ErrInvalidInput, p.ID)
		}
		people[p.ID] = true
	}

	flights := make(map[string]bool, len(in.Flights))
	for _, f := range in.Flights {
		if f.ID == "" {
			return fmt.Errorf("%w: flight with empty id", ErrInvalidInput)
		}
		if flights[f.ID] {
			return fmt.Errorf("%w: duplicate flight id %s", ErrInvalidInput, f.ID)
		}
		if f.SlotCount < 0 || f.SlotCount > MaxSlots {
			return fmt.Errorf("%w: flight %s has slot count %d", ErrInvalidInput, f.ID, f.SlotCount)
		}
		flights[f.ID] = true
	}
	return nil
}
