package memory

import (
	"fmt"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

// TransportLaneTable provides the in-memory transport lane price table
type TransportLaneTable struct {
	lanes []entities.TransportLane
	index map[string]int
}

// NewTransportLaneTable creates an empty in-memory lane table
func NewTransportLaneTable() *TransportLaneTable {
	return &TransportLaneTable{
		index: make(map[string]int),
	}
}

// Verify interface compliance
var _ repositories.TransportLaneTable = (*TransportLaneTable)(nil)

func laneKey(originCountry, originZip, destCountry, destZip string) string {
	return fmt.Sprintf("%s%s-%s%s", originCountry, originZip, destCountry, destZip)
}

func zipPrefix(zip string) string {
	if len(zip) > 2 {
		return zip[:2]
	}
	return zip
}

// AddLane adds a lane to the table
func (t *TransportLaneTable) AddLane(lane entities.TransportLane) {
	t.index[laneKey(lane.OriginCountry, lane.OriginZip, lane.DestCountry, lane.DestZip)] = len(t.lanes)
	t.lanes = append(t.lanes, lane)
}

// FindLane returns the lane matching origin and destination, trying the exact
// zip codes first and falling back to the two-digit prefixes.
func (t *TransportLaneTable) FindLane(originCountry, originZip, destCountry, destZip string) (*entities.TransportLane, error) {
	if i, exists := t.index[laneKey(originCountry, originZip, destCountry, destZip)]; exists {
		return &t.lanes[i], nil
	}

	originPrefix := zipPrefix(originZip)
	destPrefix := zipPrefix(destZip)
	if i, exists := t.index[laneKey(originCountry, originPrefix, destCountry, destPrefix)]; exists {
		return &t.lanes[i], nil
	}

	for i := range t.lanes {
		lane := &t.lanes[i]
		if lane.OriginCountry == originCountry &&
			zipPrefix(lane.OriginZip) == originPrefix &&
			lane.DestCountry == destCountry &&
			zipPrefix(lane.DestZip) == destPrefix {
			return lane, nil
		}
	}
	return nil, fmt.Errorf("lane not found: %s%s -> %s%s", originCountry, originZip, destCountry, destZip)
}

// GetAllLanes returns all lanes
func (t *TransportLaneTable) GetAllLanes() ([]*entities.TransportLane, error) {
	var lanes []*entities.TransportLane
	for i := range t.lanes {
		lanes = append(lanes, &t.lanes[i])
	}
	return lanes, nil
}
