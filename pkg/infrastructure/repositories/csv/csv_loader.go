package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

// Loader handles loading transport lane price tables from CSV files. Freight
// rate sheets come as one row per lane with a fixed set of identity columns,
// a variable number of weight bracket columns, and a fixed tail.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

var laneHeaderPrefix = []string{
	"lane_id", "origin_country", "origin_zip", "origin_city",
	"dest_country", "dest_zip", "dest_city",
}

var laneHeaderSuffix = []string{
	"ftl_price", "fuel_surcharge_pct",
	"leadtime_groupage", "leadtime_ltl", "leadtime_ftl",
}

// Weight bracket columns are named price_up_to_<kg>, e.g. price_up_to_2500.
const bracketColumnPrefix = "price_up_to_"

// LoadLanes loads transport lanes from a CSV rate sheet
func (l *Loader) LoadLanes(filename string) ([]entities.TransportLane, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open lanes file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read lanes CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("lanes CSV must have header and at least one data row")
	}

	brackets, err := parseLaneHeader(records[0])
	if err != nil {
		return nil, err
	}

	columns := len(laneHeaderPrefix) + len(brackets) + len(laneHeaderSuffix)
	var lanes []entities.TransportLane
	for i, record := range records[1:] {
		if len(record) != columns {
			return nil, fmt.Errorf("lanes CSV row %d: expected %d columns, got %d", i+2, columns, len(record))
		}

		lane, err := parseLane(record, brackets)
		if err != nil {
			return nil, fmt.Errorf("lanes CSV row %d: %w", i+2, err)
		}

		lanes = append(lanes, lane)
	}

	return lanes, nil
}

// parseLaneHeader validates the fixed columns and returns the bracket weights
// declared between them, in header order.
func parseLaneHeader(header []string) ([]decimal.Decimal, error) {
	if len(header) < len(laneHeaderPrefix)+1+len(laneHeaderSuffix) {
		return nil, fmt.Errorf("lanes CSV header too short: %v", header)
	}

	for i, col := range laneHeaderPrefix {
		if normalizeColumn(header[i]) != col {
			return nil, fmt.Errorf("lanes CSV header column %d: expected %q, got %q", i+1, col, header[i])
		}
	}
	suffixStart := len(header) - len(laneHeaderSuffix)
	for i, col := range laneHeaderSuffix {
		if normalizeColumn(header[suffixStart+i]) != col {
			return nil, fmt.Errorf("lanes CSV header column %d: expected %q, got %q", suffixStart+i+1, col, header[suffixStart+i])
		}
	}

	var brackets []decimal.Decimal
	prev := decimal.Zero
	for _, col := range header[len(laneHeaderPrefix):suffixStart] {
		name := normalizeColumn(col)
		if !strings.HasPrefix(name, bracketColumnPrefix) {
			return nil, fmt.Errorf("lanes CSV header: expected a %s<kg> column, got %q", bracketColumnPrefix, col)
		}
		weight, err := decimal.NewFromString(strings.TrimPrefix(name, bracketColumnPrefix))
		if err != nil {
			return nil, fmt.Errorf("lanes CSV header: invalid bracket weight in %q: %w", col, err)
		}
		if !weight.GreaterThan(prev) {
			return nil, fmt.Errorf("lanes CSV header: bracket weights must be strictly ascending, got %s after %s", weight, prev)
		}
		brackets = append(brackets, weight)
		prev = weight
	}
	if len(brackets) == 0 {
		return nil, fmt.Errorf("lanes CSV header: at least one %s<kg> column is required", bracketColumnPrefix)
	}

	return brackets, nil
}

func parseLane(record []string, brackets []decimal.Decimal) (entities.TransportLane, error) {
	lane := entities.TransportLane{
		LaneID:        strings.TrimSpace(record[0]),
		OriginCountry: strings.TrimSpace(record[1]),
		OriginZip:     strings.TrimSpace(record[2]),
		OriginCity:    strings.TrimSpace(record[3]),
		DestCountry:   strings.TrimSpace(record[4]),
		DestZip:       strings.TrimSpace(record[5]),
		DestCity:      strings.TrimSpace(record[6]),
	}
	if lane.LaneID == "" {
		return lane, fmt.Errorf("lane_id is required")
	}
	if lane.OriginCountry == "" || lane.DestCountry == "" {
		return lane, fmt.Errorf("origin and destination country are required")
	}

	offset := len(laneHeaderPrefix)
	for i, maxWeight := range brackets {
		price, err := decimal.NewFromString(strings.TrimSpace(record[offset+i]))
		if err != nil {
			return lane, fmt.Errorf("invalid bracket price for %s kg: %w", maxWeight, err)
		}
		lane.PricesByWeight = append(lane.PricesByWeight, entities.WeightBracketPrice{
			MaxWeightKg: maxWeight,
			Price:       price,
		})
	}

	tail := offset + len(brackets)
	ftlPrice, err := decimal.NewFromString(strings.TrimSpace(record[tail]))
	if err != nil {
		return lane, fmt.Errorf("invalid ftl_price: %w", err)
	}
	fuelPct, err := decimal.NewFromString(strings.TrimSpace(record[tail+1]))
	if err != nil {
		return lane, fmt.Errorf("invalid fuel_surcharge_pct: %w", err)
	}
	lane.FullTruckPrice = ftlPrice
	lane.FuelSurchargePct = fuelPct
	lane.LeadTime = entities.LaneLeadTime{
		Groupage: strings.TrimSpace(record[tail+2]),
		LTL:      strings.TrimSpace(record[tail+3]),
		FTL:      strings.TrimSpace(record[tail+4]),
	}

	return lane, nil
}

func normalizeColumn(col string) string {
	return strings.ToLower(strings.TrimSpace(col))
}
