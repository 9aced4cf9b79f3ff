package sqlite

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	_, err = conn.Exec(`
		CREATE TABLE materials (
			id TEXT PRIMARY KEY,
			description TEXT NOT NULL DEFAULT '',
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
		CREATE TABLE suppliers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
		CREATE TABLE pair_configs (
			material_id TEXT NOT NULL REFERENCES materials(id) ON DELETE CASCADE,
			supplier_id TEXT NOT NULL REFERENCES suppliers(id) ON DELETE CASCADE,
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now')),
			PRIMARY KEY (material_id, supplier_id)
		);
	`)
	if err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return conn
}

func TestMaterialRepositoryRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	repo := NewMaterialRepository(conn)

	m := &entities.Material{
		ID:            "M-1001",
		Description:   "bracket",
		WeightKg:      decimal.RequireFromString("0.5"),
		AnnualVolume:  decimal.NewFromInt(120000),
		LifetimeYears: decimal.NewFromInt(5),
	}
	if err := repo.SaveMaterial(m); err != nil {
		t.Fatalf("SaveMaterial failed: %v", err)
	}

	got, err := repo.GetMaterial("M-1001")
	if err != nil {
		t.Fatalf("GetMaterial failed: %v", err)
	}
	if !got.WeightKg.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("expected weight 0.5, got %s", got.WeightKg)
	}

	// Saving again replaces the payload.
	m.Description = "bracket v2"
	if err := repo.SaveMaterial(m); err != nil {
		t.Fatalf("SaveMaterial update failed: %v", err)
	}
	got, _ = repo.GetMaterial("M-1001")
	if got.Description != "bracket v2" {
		t.Errorf("expected updated description, got %s", got.Description)
	}

	all, err := repo.GetAllMaterials()
	if err != nil {
		t.Fatalf("GetAllMaterials failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 material, got %d", len(all))
	}

	if err := repo.DeleteMaterial("M-1001"); err != nil {
		t.Fatalf("DeleteMaterial failed: %v", err)
	}
	if err := repo.DeleteMaterial("M-1001"); err == nil {
		t.Error("expected an error deleting a missing material")
	}
}

func TestPairConfigRepositoryRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	materials := NewMaterialRepository(conn)
	suppliers := NewSupplierRepository(conn)
	repo := NewPairConfigRepository(conn)

	if err := materials.SaveMaterial(&entities.Material{ID: "M-1001"}); err != nil {
		t.Fatalf("SaveMaterial failed: %v", err)
	}
	if err := suppliers.SaveSupplier(&entities.Supplier{ID: "V-2001"}); err != nil {
		t.Fatalf("SaveSupplier failed: %v", err)
	}

	cfg := &entities.PairConfig{
		MaterialID: "M-1001",
		SupplierID: "V-2001",
		Packaging: entities.PackagingConfig{
			BoxType:       "KLT-6280",
			FillQtyPerBox: decimal.NewFromInt(50),
		},
		Customs: entities.CustomsConfig{DutyRatePercent: decimal.NewFromInt(5)},
	}
	if err := repo.SavePairConfig(cfg); err != nil {
		t.Fatalf("SavePairConfig failed: %v", err)
	}

	got, err := repo.GetPairConfig("M-1001", "V-2001")
	if err != nil {
		t.Fatalf("GetPairConfig failed: %v", err)
	}
	if got.Packaging.BoxType != "KLT-6280" {
		t.Errorf("expected box KLT-6280, got %s", got.Packaging.BoxType)
	}
	if !got.Customs.DutyRatePercent.Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected duty rate 5, got %s", got.Customs.DutyRatePercent)
	}

	// Deleting the material cascades to its pair configs.
	if err := materials.DeleteMaterial("M-1001"); err != nil {
		t.Fatalf("DeleteMaterial failed: %v", err)
	}
	if _, err := repo.GetPairConfig("M-1001", "V-2001"); err == nil {
		t.Error("expected the pair config to cascade away")
	}
}

func TestPairConfigRepositoryRequiresIDs(t *testing.T) {
	conn := openTestDB(t)
	repo := NewPairConfigRepository(conn)

	if err := repo.SavePairConfig(&entities.PairConfig{}); err == nil {
		t.Error("expected an error for a pair config without IDs")
	}
}
