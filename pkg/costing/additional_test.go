package costing

import (
	"testing"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

func TestAdditionalCostPerPiece(t *testing.T) {
	m := entities.Material{AnnualVolume: dec("120000"), LifetimeYears: dec("5")}
	costs := []entities.AdditionalCost{
		{Name: "launch audit", Value: dec("3000")},
		{Name: "tooling transfer", Value: dec("1500")},
	}

	col := NewCollector()
	got := additionalCostPerPiece(m, costs, col)
	if !got.Equal(dec("0.0075")) {
		t.Errorf("expected 0.0075 per piece, got %s", got)
	}

	if got := additionalCostPerPiece(m, nil, col); !got.IsZero() {
		t.Errorf("expected zero without additional costs, got %s", got)
	}
}

func TestAdditionalCostZeroLifetime(t *testing.T) {
	m := entities.Material{AnnualVolume: dec("0"), LifetimeYears: dec("5")}
	costs := []entities.AdditionalCost{{Name: "launch audit", Value: dec("3000")}}

	col := NewCollector()
	if got := additionalCostPerPiece(m, costs, col); !got.IsZero() {
		t.Errorf("expected zero without lifetime volume, got %s", got)
	}
	if !col.HasKind(DivisionGuard) {
		t.Error("expected a DivisionGuard diagnostic")
	}
}

func TestLifetimeVolume(t *testing.T) {
	m := entities.Material{AnnualVolume: dec("120000"), LifetimeYears: dec("5")}
	if got := LifetimeVolume(m); !got.Equal(dec("600000")) {
		t.Errorf("expected 600000, got %s", got)
	}
}
