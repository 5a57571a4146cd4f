// Package squadron maps flight call-signs to the squadrons that fly them.
//
// The call-sign sets come from a Source. Store reads and writes them through
// gorm, and Cache keeps the most recent answer for a bounded time so that
// repeated assignment runs do not hit the database every time.
package squadron

import (
	"context"
	"strings"

	"github.com/arnavshah/flight-assigner-go/pkg/models"
)

// Source supplies the current call-sign sets of every squadron
type Source interface {
	Callsigns(ctx context.Context) ([]models.SquadronCallsigns, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) ([]models.SquadronCallsigns, error)

func (f SourceFunc) Callsigns(ctx context.Context) ([]models.SquadronCallsigns, error) {
	return f(ctx)
}

// Static is a fixed set of call-signs
type Static []models.SquadronCallsigns

func (s Static) Callsigns(context.Context) ([]models.SquadronCallsigns, error) {
	return s, nil
}

// Resolve returns the squadron that flies callsign. Matching ignores case and
// surrounding whitespace; sets are scanned in order and the first hit wins.
// ok is false for a non-standard call-sign.
func Resolve(callsign string, sets []models.SquadronCallsigns) (squadronID string, ok bool) {
	cs := strings.TrimSpace(callsign)
	if cs == "" {
		return "", false
	}
	for _, set := range sets {
		for _, known := range set.Callsigns {
			if strings.EqualFold(strings.TrimSpace(known), cs) {
				return set.SquadronID, true
			}
		}
	}
	return "", false
}

// normalize trims, drops empties and removes case-insensitive duplicates,
// keeping the first spelling seen.
func normalize(callsigns []string) []string {
	seen := make(map[string]bool, len(callsigns))
	out := make([]string, 0, len(callsigns))
	for _, cs := range callsigns {
		cs = strings.TrimSpace(cs)
		key := strings.ToLower(cs)
		if cs == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, cs)
	}
	return out
}
