package scheduler

import "github.com/arnavshah/flight-assigner-go/pkg/models"

// OrderFlights arranges flights for filling. squadronOf maps a flight id to
// its resolved squadron; a missing or empty entry marks a non-standard flight.
func OrderFlights(flights []models.Flight, squadronOf map[string]string, handling models.NonStandardHandling) []models.Flight {
	var standard, nonStandard []models.Flight
	for _, f := range flights {
		if squadronOf[f.ID] != "" {
			standard = append(standard, f)
		} else {
			nonStandard = append(nonStandard, f)
		}
	}

	out := make([]models.Flight, 0, len(flights))
	switch handling {
	case models.NonStandardIgnore:
		out = append(out, standard...)
	case models.NonStandardFillFirst:
		out = append(out, nonStandard...)
		out = append(out, standard...)
	case models.NonStandardInSequence:
		out = append(out, flights...)
	default:
		out = append(out, standard...)
		out = append(out, nonStandard...)
	}
	return out
}
