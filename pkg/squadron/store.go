package squadron

import (
	"context"
	"fmt"

	"github.com/arnavshah/flight-assigner-go/pkg/database"
	"github.com/arnavshah/flight-assigner-go/pkg/models"
	"gorm.io/gorm"
)

// Store keeps call-sign sets in the squadron_callsigns table
type Store struct {
	DB *gorm.DB
}

var _ Source = (*Store)(nil)

// NewStore creates a new store instance
func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Callsigns returns every squadron's set, squadrons ordered by id and
// call-signs in insertion order
func (s *Store) Callsigns(ctx context.Context) ([]models.SquadronCallsigns, error) {
	var rows []database.SquadronCallsign
	if err := s.DB.WithContext(ctx).Order("squadron_id asc, id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load squadron callsigns: %w", err)
	}

	var sets []models.SquadronCallsigns
	for _, row := range rows {
		if n := len(sets); n > 0 && sets[n-1].SquadronID == row.SquadronID {
			sets[n-1].Callsigns = append(sets[n-1].Callsigns, row.Callsign)
			continue
		}
		sets = append(sets, models.SquadronCallsigns{
			SquadronID: row.SquadronID,
			Callsigns:  []string{row.Callsign},
		})
	}
	return sets, nil
}

// Replace swaps a squadron's whole call-sign set in one transaction. An empty
// list removes the squadron.
func (s *Store) Replace(ctx context.Context, squadronID string, callsigns []string) error {
	if squadronID == "" {
		return fmt.Errorf("squadron id is required")
	}
	callsigns = normalize(callsigns)

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("squadron_id = ?", squadronID).Delete(&database.SquadronCallsign{}).Error; err != nil {
			return fmt.Errorf("clear callsigns for %s: %w", squadronID, err)
		}
		if len(callsigns) == 0 {
			return nil
		}
		rows := make([]database.SquadronCallsign, 0, len(callsigns))
		for _, cs := range callsigns {
			rows = append(rows, database.SquadronCallsign{SquadronID: squadronID, Callsign: cs})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("store callsigns for %s: %w", squadronID, err)
		}
		return nil
	})
}
