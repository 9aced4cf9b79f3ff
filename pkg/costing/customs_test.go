package costing

import (
	"testing"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
)

func TestCustomsCostPerPiece(t *testing.T) {
	calc := newTestCalculator()
	m := entities.Material{PiecePrice: dec("2.00")}
	transport := dec("0.5")

	tests := []struct {
		name     string
		cfg      entities.CustomsConfig
		expected string
	}{
		{
			"zero rates",
			entities.CustomsConfig{},
			"0",
		},
		{
			"duty on piece price plus transport",
			entities.CustomsConfig{DutyRatePercent: dec("5")},
			"0.125",
		},
		{
			"tariff on piece price only",
			entities.CustomsConfig{TariffRatePercent: dec("10")},
			"0.2",
		},
		{
			"duty and tariff combined",
			entities.CustomsConfig{DutyRatePercent: dec("5"), TariffRatePercent: dec("10")},
			"0.325",
		},
		{
			"preference zeroes declared rates",
			entities.CustomsConfig{DutyRatePercent: dec("5"), TariffRatePercent: dec("10"), UsePreference: true},
			"0",
		},
		{
			"negative rates are ignored",
			entities.CustomsConfig{DutyRatePercent: dec("-5")},
			"0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.customsCostPerPiece(m, tt.cfg, transport)
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
