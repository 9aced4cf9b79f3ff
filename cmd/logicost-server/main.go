package main

import (
	"log"
	"net/http"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/services"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/costing"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/config"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/db"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/migrations"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/refdata"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/repositories/sqlite"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/interfaces/rest"
)

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, cfg.MigrationsDir); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	materials := sqlite.NewMaterialRepository(database)
	suppliers := sqlite.NewSupplierRepository(database)
	pairs := sqlite.NewPairConfigRepository(database)

	calculator := costing.NewCalculator(
		refdata.DefaultPackagingCatalog(),
		refdata.DefaultRepackingTable(),
		refdata.DefaultLaneTable(),
	)
	service := services.NewCostingServiceWithConfig(
		services.ServiceConfig{Workers: cfg.Workers},
		calculator, materials, suppliers, pairs,
		entities.Plant{Name: cfg.PlantName, Country: cfg.PlantCountry, Zip: cfg.PlantZip},
	)

	srv := rest.NewServer(materials, suppliers, pairs, service)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
