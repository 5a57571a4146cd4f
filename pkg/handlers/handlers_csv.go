package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/arnavshah/flight-assigner-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// AssignCSV handles CSV file uploads for flight assignment
func (h *Handler) AssignCSV(c *gin.Context) {
	rosterFile, _ := c.FormFile("roster_file")
	flightsFile, _ := c.FormFile("flights_file")
	assignmentsFile, _ := c.FormFile("assignments_file")

	if rosterFile == nil || flightsFile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roster_file and flights_file are required"})
		return
	}

	policy, err := models.ParsePolicy(
		c.PostForm("assignment_scope"),
		c.PostForm("squadron_cohesion"),
		c.PostForm("non_standard_callsign_handling"),
		c.PostForm("fill_strategy"),
		formBool(c, "include_tentative"),
		formBool(c, "allow_unqualified"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := models.AssignInput{Policy: policy}

	rows, err := readCSV(rosterFile)
	if err == nil {
		input.People, err = parseRoster(rows)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roster_file: " + err.Error()})
		return
	}

	rows, err = readCSV(flightsFile)
	if err == nil {
		input.Flights, err = parseFlights(rows)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "flights_file: " + err.Error()})
		return
	}

	if assignmentsFile != nil {
		rows, err = readCSV(assignmentsFile)
		if err == nil {
			input.CurrentAssignments, err = parseAssignments(rows)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "assignments_file: " + err.Error()})
			return
		}
	}

	res, ok := h.assign(c, input)
	if !ok {
		return
	}

	out, err := writeAssignmentsCSV(input.Flights, res)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not write CSV"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"csv": out})
}

func formBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(c.PostForm(name)))
	return v
}

// readCSV reads a whole upload into header-keyed rows
func readCSV(fh *multipart.FileHeader) ([]map[string]string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []map[string]string
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func atoi(row map[string]string, col string, line int) (int, error) {
	v := row[col]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("line %d: %s %q is not a number", line, col, v)
	}
	return n, nil
}

// parseRoster reads id, callsign, board_number, qualifications (| separated),
// billet_order, roll_call, rsvp, squadron_id
func parseRoster(rows []map[string]string) ([]models.Person, error) {
	people := make([]models.Person, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		board, err := atoi(row, "board_number", line)
		if err != nil {
			return nil, err
		}
		p := models.Person{
			ID:          row["id"],
			Callsign:    row["callsign"],
			BoardNumber: board,
			RollCall:    models.RollCall(row["roll_call"]),
			RSVP:        models.RSVP(row["rsvp"]),
			SquadronID:  row["squadron_id"],
		}
		if row["billet_order"] != "" {
			rank, err := atoi(row, "billet_order", line)
			if err != nil {
				return nil, err
			}
			p.BilletOrder = &rank
		}
		for _, q := range strings.Split(row["qualifications"], "|") {
			if q = strings.TrimSpace(q); q != "" {
				p.Qualifications = append(p.Qualifications, models.Qualification(q))
			}
		}
		people = append(people, p)
	}
	return people, nil
}

// parseFlights reads id, callsign, flight_number, slot_count
func parseFlights(rows []map[string]string) ([]models.Flight, error) {
	flights := make([]models.Flight, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		number, err := atoi(row, "flight_number", line)
		if err != nil {
			return nil, err
		}
		slots, err := atoi(row, "slot_count", line)
		if err != nil {
			return nil, err
		}
		flights = append(flights, models.Flight{
			ID:           row["id"],
			Callsign:     row["callsign"],
			FlightNumber: number,
			SlotCount:    slots,
		})
	}
	return flights, nil
}

// parseAssignments reads flight_id, slot, person_id
func parseAssignments(rows []map[string]string) ([]models.Assignment, error) {
	out := make([]models.Assignment, 0, len(rows))
	for i, row := range rows {
		slot, err := atoi(row, "slot", i+2)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Assignment{
			FlightID: row["flight_id"],
			Slot:     slot,
			PersonID: row["person_id"],
		})
	}
	return out, nil
}

// writeAssignmentsCSV emits one row per occupied slot, flights in input order
func writeAssignmentsCSV(flights []models.Flight, res models.AssignResult) (string, error) {
	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"flight_id", "flight_callsign", "flight_number", "slot", "person_id", "person_callsign", "board_number", "mission_lead"})

	for _, f := range flights {
		for _, sa := range res.Assignments[f.ID] {
			lead := res.Lead != nil && res.Lead.FlightID == f.ID && sa.Slot == 1
			writer.Write([]string{
				f.ID,
				f.Callsign,
				strconv.Itoa(f.FlightNumber),
				strconv.Itoa(sa.Slot),
				sa.Person.ID,
				sa.Person.Callsign,
				strconv.Itoa(sa.Person.BoardNumber),
				strconv.FormatBool(lead),
			})
		}
	}
	writer.Flush()
	return out.String(), writer.Error()
}
