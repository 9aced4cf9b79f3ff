package costing

import (
	"testing"
)

func TestFloorAtOne(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		guarded  bool
	}{
		{"positive value passes through", "12.5", "12.5", false},
		{"zero floored", "0", "1", true},
		{"negative floored", "-3", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := NewCollector()
			got := floorAtOne(dec(tt.input), col, "packaging", "fill quantity")
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
			if col.HasKind(DivisionGuard) != tt.guarded {
				t.Errorf("expected guarded=%v, diagnostics: %v", tt.guarded, col.Diagnostics())
			}
		})
	}
}

func TestSafeDiv(t *testing.T) {
	col := NewCollector()
	got := safeDiv(dec("10"), dec("4"), col, "warehouse", "daily demand")
	if !got.Equal(dec("2.5")) {
		t.Errorf("expected 2.5, got %s", got)
	}
	if len(col.Diagnostics()) != 0 {
		t.Errorf("unexpected diagnostics: %v", col.Diagnostics())
	}

	got = safeDiv(dec("10"), dec("0"), col, "warehouse", "daily demand")
	if !got.IsZero() {
		t.Errorf("expected 0 for zero denominator, got %s", got)
	}
	if !col.HasKind(DivisionGuard) {
		t.Error("expected a DivisionGuard diagnostic")
	}
}

func TestCeilToTen(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"134.4", "140"},
		{"140", "140"},
		{"0.1", "10"},
		{"0", "0"},
	}

	for _, tt := range tests {
		got := ceilToTen(dec(tt.input))
		if !got.Equal(dec(tt.expected)) {
			t.Errorf("ceilToTen(%s): expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestRoundCeilPerPiece(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0.0005658", "0.001"},
		{"0.125", "0.125"},
		{"0.1251", "0.126"},
		{"0", "0"},
		{"-0.4", "0"},
	}

	for _, tt := range tests {
		got := roundCeilPerPiece(dec(tt.input))
		if !got.Equal(dec(tt.expected)) {
			t.Errorf("roundCeilPerPiece(%s): expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestCollectorRecordsInOrder(t *testing.T) {
	col := NewCollector()
	col.Add(LookupMiss, "packaging", "standard box %q not in catalog", "X")
	col.Add(DivisionGuard, "warehouse", "daily demand is 0")

	diags := col.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	if diags[0].Kind != LookupMiss || diags[1].Kind != DivisionGuard {
		t.Errorf("diagnostics out of order: %v", diags)
	}
	if !col.HasKind(LookupMiss) || col.HasKind(ComputationError) {
		t.Error("HasKind reported the wrong kinds")
	}
}

func TestDiagnosticKindString(t *testing.T) {
	if LookupMiss.String() != "LookupMiss" {
		t.Errorf("expected LookupMiss, got %s", LookupMiss)
	}
	if DiagnosticKind(99).String() != "Unknown" {
		t.Errorf("expected Unknown for out-of-range kind")
	}
}
