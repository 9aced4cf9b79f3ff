package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

func TestFindLaneExactAndPrefix(t *testing.T) {
	table := NewTransportLaneTable()
	table.AddLane(entities.TransportLane{
		LaneID:        "DE71-DE38",
		OriginCountry: "DE",
		OriginZip:     "71",
		DestCountry:   "DE",
		DestZip:       "38",
	})
	table.AddLane(entities.TransportLane{
		LaneID:        "CZ62000-DE38112",
		OriginCountry: "CZ",
		OriginZip:     "62000",
		DestCountry:   "DE",
		DestZip:       "38112",
	})

	lane, err := table.FindLane("DE", "71", "DE", "38")
	if err != nil {
		t.Fatalf("exact match failed: %v", err)
	}
	if lane.LaneID != "DE71-DE38" {
		t.Errorf("expected lane DE71-DE38, got %s", lane.LaneID)
	}

	// Full zip codes fall back to the two-digit prefix entry.
	lane, err = table.FindLane("DE", "71634", "DE", "38112")
	if err != nil {
		t.Fatalf("prefix fallback failed: %v", err)
	}
	if lane.LaneID != "DE71-DE38" {
		t.Errorf("expected lane DE71-DE38 via prefix, got %s", lane.LaneID)
	}

	// A lane stored with full zips still matches on shared prefixes.
	lane, err = table.FindLane("CZ", "62500", "DE", "38440")
	if err != nil {
		t.Fatalf("prefix scan failed: %v", err)
	}
	if lane.LaneID != "CZ62000-DE38112" {
		t.Errorf("expected lane CZ62000-DE38112 via prefix scan, got %s", lane.LaneID)
	}

	if _, err := table.FindLane("PL", "30", "DE", "38"); err == nil {
		t.Error("expected an error for an unknown origin country")
	}
}

func TestGetAllLanes(t *testing.T) {
	table := NewTransportLaneTable()
	table.AddLane(entities.TransportLane{LaneID: "A", FullTruckPrice: decimal.NewFromInt(1200)})
	table.AddLane(entities.TransportLane{LaneID: "B"})

	lanes, err := table.GetAllLanes()
	if err != nil {
		t.Fatalf("GetAllLanes failed: %v", err)
	}
	if len(lanes) != 2 {
		t.Errorf("expected 2 lanes, got %d", len(lanes))
	}
}
