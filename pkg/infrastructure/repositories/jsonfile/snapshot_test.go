package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/repositories/memory"
)

func TestSnapshotRoundTrip(t *testing.T) {
	materials := memory.NewMaterialRepository()
	suppliers := memory.NewSupplierRepository()
	pairs := memory.NewPairConfigRepository()

	err := materials.SaveMaterial(&entities.Material{
		ID:           "M-1001",
		Description:  "bracket",
		WeightKg:     decimal.RequireFromString("0.5"),
		AnnualVolume: decimal.NewFromInt(120000),
	})
	if err != nil {
		t.Fatalf("SaveMaterial failed: %v", err)
	}
	err = suppliers.SaveSupplier(&entities.Supplier{ID: "V-2001", Country: "DE", ZipPrefix: "71"})
	if err != nil {
		t.Fatalf("SaveSupplier failed: %v", err)
	}
	err = pairs.SavePairConfig(&entities.PairConfig{
		MaterialID: "M-1001",
		SupplierID: "V-2001",
		Customs:    entities.CustomsConfig{DutyRatePercent: decimal.NewFromInt(5)},
	})
	if err != nil {
		t.Fatalf("SavePairConfig failed: %v", err)
	}

	snap, err := Capture(materials, suppliers, pairs)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}

	filename := filepath.Join(t.TempDir(), "snapshot.json")
	if err := snap.Save(filename); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(filename)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Version != SnapshotVersion {
		t.Errorf("expected version %d, got %d", SnapshotVersion, loaded.Version)
	}

	restoredMaterials := memory.NewMaterialRepository()
	restoredSuppliers := memory.NewSupplierRepository()
	restoredPairs := memory.NewPairConfigRepository()
	if err := loaded.Apply(restoredMaterials, restoredSuppliers, restoredPairs); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	m, err := restoredMaterials.GetMaterial("M-1001")
	if err != nil {
		t.Fatalf("restored material missing: %v", err)
	}
	if !m.WeightKg.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("expected weight 0.5, got %s", m.WeightKg)
	}
	cfg, err := restoredPairs.GetPairConfig("M-1001", "V-2001")
	if err != nil {
		t.Fatalf("restored pair config missing: %v", err)
	}
	if !cfg.Customs.DutyRatePercent.Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected duty rate 5, got %s", cfg.Customs.DutyRatePercent)
	}
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(filename, []byte(`{"version": 99}`), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(filename); err == nil {
		t.Error("expected an error for an unsupported version")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing snapshot")
	}
}
