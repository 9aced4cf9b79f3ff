package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/dto"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/costing"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
)

// ServiceConfig holds configuration for batch costing runs
type ServiceConfig struct {
	// Workers bounds the number of concurrent pair calculations (0 = serial)
	Workers int
}

// CostingService evaluates the logistics cost of configured material-supplier
// pairs. The calculator is stateless per call, so batch runs fan the pairs out
// over a bounded worker pool.
type CostingService struct {
	config      ServiceConfig
	calculator  *costing.Calculator
	materials   repositories.MaterialRepository
	suppliers   repositories.SupplierRepository
	pairs       repositories.PairConfigRepository
	destination entities.Plant
}

// NewCostingService creates a costing service with default configuration
func NewCostingService(
	calculator *costing.Calculator,
	materials repositories.MaterialRepository,
	suppliers repositories.SupplierRepository,
	pairs repositories.PairConfigRepository,
	destination entities.Plant,
) *CostingService {
	return NewCostingServiceWithConfig(ServiceConfig{Workers: 4},
		calculator, materials, suppliers, pairs, destination)
}

// NewCostingServiceWithConfig creates a costing service with custom configuration
func NewCostingServiceWithConfig(
	config ServiceConfig,
	calculator *costing.Calculator,
	materials repositories.MaterialRepository,
	suppliers repositories.SupplierRepository,
	pairs repositories.PairConfigRepository,
	destination entities.Plant,
) *CostingService {
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &CostingService{
		config:      config,
		calculator:  calculator,
		materials:   materials,
		suppliers:   suppliers,
		pairs:       pairs,
		destination: destination,
	}
}

// CalculatePair evaluates a single material-supplier pair.
func (s *CostingService) CalculatePair(ctx context.Context, materialID entities.MaterialID, supplierID entities.VendorID) (*costing.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := s.pairs.GetPairConfig(materialID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pair config for %s/%s: %w", materialID, supplierID, err)
	}
	in, err := s.buildInput(cfg)
	if err != nil {
		return nil, err
	}
	return s.calculator.Calculate(in), nil
}

// CalculateAll evaluates every configured pair. Pairs with missing master data
// are skipped with a reason rather than failing the run; a context cancellation
// aborts the run.
func (s *CostingService) CalculateAll(ctx context.Context) (*dto.BatchResult, error) {
	configs, err := s.pairs.GetAllPairConfigs()
	if err != nil {
		return nil, fmt.Errorf("failed to load pair configs: %w", err)
	}

	batch := &dto.BatchResult{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	type outcome struct {
		result  *costing.Result
		skipped *dto.SkippedPair
	}
	outcomes := make([]outcome, len(configs))

	sem := make(chan struct{}, s.config.Workers)
	var wg sync.WaitGroup
	for i, cfg := range configs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, cfg *entities.PairConfig) {
			defer wg.Done()
			defer func() { <-sem }()

			in, err := s.buildInput(cfg)
			if err != nil {
				outcomes[i] = outcome{skipped: &dto.SkippedPair{
					MaterialID: cfg.MaterialID,
					SupplierID: cfg.SupplierID,
					Reason:     err.Error(),
				}}
				return
			}
			outcomes[i] = outcome{result: s.calculator.Calculate(in)}
		}(i, cfg)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, o := range outcomes {
		if o.skipped != nil {
			batch.Skipped = append(batch.Skipped, *o.skipped)
			continue
		}
		if o.result != nil {
			batch.Results = append(batch.Results, o.result)
		}
	}
	sort.Slice(batch.Results, func(i, j int) bool {
		if batch.Results[i].MaterialID != batch.Results[j].MaterialID {
			return batch.Results[i].MaterialID < batch.Results[j].MaterialID
		}
		return batch.Results[i].SupplierID < batch.Results[j].SupplierID
	})

	batch.CompletedAt = time.Now()
	return batch, nil
}

// buildInput assembles the calculator input from the pair config and its
// master data records.
func (s *CostingService) buildInput(cfg *entities.PairConfig) (costing.Input, error) {
	material, err := s.materials.GetMaterial(cfg.MaterialID)
	if err != nil {
		return costing.Input{}, fmt.Errorf("failed to load material %s: %w", cfg.MaterialID, err)
	}
	supplier, err := s.suppliers.GetSupplier(cfg.SupplierID)
	if err != nil {
		return costing.Input{}, fmt.Errorf("failed to load supplier %s: %w", cfg.SupplierID, err)
	}

	return costing.Input{
		Material:    *material,
		Supplier:    *supplier,
		Destination: s.destination,
		Packaging:   cfg.Packaging,
		Transport:   cfg.Transport,
		Operations:  cfg.Operations,
		Warehouse:   cfg.Warehouse,
		CO2:         cfg.CO2,
		Customs:     cfg.Customs,
		Repacking:   cfg.Repacking,
		Additional:  cfg.Additional,
	}, nil
}
