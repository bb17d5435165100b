// Package household loads the postcode-level electricity dataset and
// aggregates it into per-household consumption rates.
package household

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ErrPostcodeNotFound is returned when a prefix matches no dataset rows,
// or when the matched rows carry no meters to derive a per-household rate.
var ErrPostcodeNotFound = errors.New("postcode not found in dataset")

// Expected column headers in the postcode dataset CSV. Matching is
// case-insensitive.
const (
	colPostcode    = "postcode"
	colConsumption = "total_cons_kwh"
	colMeters      = "num_meters"
)

// Row is one dataset record: a postcode with its total annual consumption
// and metered household count.
type Row struct {
	Postcode            string
	TotalConsumptionKWh float64
	Meters              int
}

// Aggregate is the rollup of all rows matching a postcode prefix.
type Aggregate struct {
	Prefix              string
	Rows                int
	TotalConsumptionKWh float64
	Meters              int
}

// PerHouseholdKWh returns the annual consumption per metered household.
// Callers must check Meters > 0 first; Lookup already guarantees it.
func (a Aggregate) PerHouseholdKWh() float64 {
	return a.TotalConsumptionKWh / float64(a.Meters)
}

// Client serves prefix lookups over an in-memory copy of the dataset.
// The CSV is parsed once at construction; malformed rows are skipped with
// a warning rather than failing the whole load.
type Client struct {
	logger zerolog.Logger
	rows   []Row
}

// NewClientFromFile opens and parses a dataset CSV file.
func NewClientFromFile(path string, logger zerolog.Logger) (*Client, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("household: open dataset: %w", err)
	}
	defer f.Close()
	return NewClient(f, logger)
}

// NewClient parses dataset CSV from a reader. The first record must be a
// header containing the postcode, consumption and meter-count columns.
func NewClient(r io.Reader, logger zerolog.Logger) (*Client, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("household: read dataset header: %w", err)
	}

	postcodeIdx, consIdx, metersIdx := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colPostcode:
			postcodeIdx = i
		case colConsumption:
			consIdx = i
		case colMeters:
			metersIdx = i
		}
	}
	if postcodeIdx < 0 || consIdx < 0 || metersIdx < 0 {
		return nil, fmt.Errorf("household: dataset header missing required columns (%s, %s, %s): %v",
			colPostcode, colConsumption, colMeters, header)
	}

	c := &Client{logger: logger}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("household: read dataset line %d: %w", line, err)
		}

		row, err := parseRow(record, postcodeIdx, consIdx, metersIdx)
		if err != nil {
			c.logger.Warn().
				Int("line", line).
				Err(err).
				Msg("skipping malformed dataset row")
			continue
		}
		c.rows = append(c.rows, row)
	}

	c.logger.Debug().
		Int("rows", len(c.rows)).
		Msg("postcode dataset loaded")

	return c, nil
}

func parseRow(record []string, postcodeIdx, consIdx, metersIdx int) (Row, error) {
	maxIdx := postcodeIdx
	if consIdx > maxIdx {
		maxIdx = consIdx
	}
	if metersIdx > maxIdx {
		maxIdx = metersIdx
	}
	if len(record) <= maxIdx {
		return Row{}, fmt.Errorf("short record: %d fields", len(record))
	}

	postcode := strings.TrimSpace(record[postcodeIdx])
	if postcode == "" {
		return Row{}, errors.New("empty postcode")
	}

	cons, err := strconv.ParseFloat(strings.TrimSpace(record[consIdx]), 64)
	if err != nil {
		return Row{}, fmt.Errorf("consumption: %w", err)
	}

	// Meter counts sometimes arrive as "540.0"; parse as float and truncate.
	metersF, err := strconv.ParseFloat(strings.TrimSpace(record[metersIdx]), 64)
	if err != nil {
		return Row{}, fmt.Errorf("meters: %w", err)
	}

	return Row{
		Postcode:            postcode,
		TotalConsumptionKWh: cons,
		Meters:              int(metersF),
	}, nil
}

// Rows returns the number of dataset rows held by the client.
func (c *Client) Rows() int {
	return len(c.rows)
}

// Lookup aggregates every row whose postcode starts with the given prefix.
// Matching is plain string-prefix: "IV4" matches IV4, IV40 and IV49 alike,
// so pass a full postcode when exact scoping matters.
//
// Returns an error wrapping ErrPostcodeNotFound naming the prefix when no
// rows match, or when the matched rows hold zero meters in aggregate.
func (c *Client) Lookup(prefix string) (Aggregate, error) {
	if prefix == "" {
		return Aggregate{}, errors.New("household: postcode prefix is required")
	}

	agg := Aggregate{Prefix: prefix}
	for _, row := range c.rows {
		if !strings.HasPrefix(row.Postcode, prefix) {
			continue
		}
		agg.Rows++
		agg.TotalConsumptionKWh += row.TotalConsumptionKWh
		agg.Meters += row.Meters
	}

	if agg.Rows == 0 {
		return Aggregate{}, fmt.Errorf("household: postcode %q: %w", prefix, ErrPostcodeNotFound)
	}
	if agg.Meters == 0 {
		return Aggregate{}, fmt.Errorf("household: postcode %q has no metered households: %w", prefix, ErrPostcodeNotFound)
	}

	return agg, nil
}
