package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/application/services"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/entities"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/domain/repositories"
	"github.com/Marawan-Y/logistics-cost-estimation-sub000/pkg/infrastructure/history"
)

// Server exposes the configuration stores and the cost calculation as a JSON
// API
type Server struct {
	materials repositories.MaterialRepository
	suppliers repositories.SupplierRepository
	pairs     repositories.PairConfigRepository
	service   *services.CostingService
	runs      *history.RunLog
}

// NewServer creates a server over the given stores and costing service
func NewServer(
	materials repositories.MaterialRepository,
	suppliers repositories.SupplierRepository,
	pairs repositories.PairConfigRepository,
	service *services.CostingService,
) *Server {
	return &Server{
		materials: materials,
		suppliers: suppliers,
		pairs:     pairs,
		service:   service,
		runs:      history.NewRunLog(),
	}
}

// Router builds the HTTP route table
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)

	r.Get("/materials", s.handleMaterialsList)
	r.Put("/materials/{id}", s.handleMaterialSave)
	r.Get("/materials/{id}", s.handleMaterialGet)
	r.Delete("/materials/{id}", s.handleMaterialDelete)

	r.Get("/suppliers", s.handleSuppliersList)
	r.Put("/suppliers/{id}", s.handleSupplierSave)
	r.Get("/suppliers/{id}", s.handleSupplierGet)
	r.Delete("/suppliers/{id}", s.handleSupplierDelete)

	r.Get("/configs", s.handleConfigsList)
	r.Put("/configs/{materialID}/{supplierID}", s.handleConfigSave)
	r.Get("/configs/{materialID}/{supplierID}", s.handleConfigGet)
	r.Delete("/configs/{materialID}/{supplierID}", s.handleConfigDelete)

	r.Post("/calculations", s.handleCalculateAll)
	r.Post("/calculations/{materialID}/{supplierID}", s.handleCalculatePair)

	r.Get("/runs", s.handleRunsList)
	r.Get("/runs/{runID}", s.handleRunGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMaterialsList(w http.ResponseWriter, r *http.Request) {
	materials, err := s.materials.GetAllMaterials()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, materials)
}

func (s *Server) handleMaterialGet(w http.ResponseWriter, r *http.Request) {
	m, err := s.materials.GetMaterial(entities.MaterialID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleMaterialSave(w http.ResponseWriter, r *http.Request) {
	var m entities.Material
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m.ID = entities.MaterialID(chi.URLParam(r, "id"))
	if err := s.materials.SaveMaterial(&m); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleMaterialDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.materials.DeleteMaterial(entities.MaterialID(chi.URLParam(r, "id"))); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSuppliersList(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.suppliers.GetAllSuppliers()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, suppliers)
}

func (s *Server) handleSupplierGet(w http.ResponseWriter, r *http.Request) {
	sup, err := s.suppliers.GetSupplier(entities.VendorID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, sup)
}

func (s *Server) handleSupplierSave(w http.ResponseWriter, r *http.Request) {
	var sup entities.Supplier
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sup.ID = entities.VendorID(chi.URLParam(r, "id"))
	if err := s.suppliers.SaveSupplier(&sup); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, sup)
}

func (s *Server) handleSupplierDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.suppliers.DeleteSupplier(entities.VendorID(chi.URLParam(r, "id"))); err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleConfigsList(w http.ResponseWriter, r *http.Request) {
	configs, err := s.pairs.GetAllPairConfigs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, configs)
}

func (s *Server) handleConfigGet(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.pairs.GetPairConfig(
		entities.MaterialID(chi.URLParam(r, "materialID")),
		entities.VendorID(chi.URLParam(r, "supplierID")))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleConfigSave(w http.ResponseWriter, r *http.Request) {
	var cfg entities.PairConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cfg.MaterialID = entities.MaterialID(chi.URLParam(r, "materialID"))
	cfg.SupplierID = entities.VendorID(chi.URLParam(r, "supplierID"))
	if err := s.pairs.SavePairConfig(&cfg); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleConfigDelete(w http.ResponseWriter, r *http.Request) {
	err := s.pairs.DeletePairConfig(
		entities.MaterialID(chi.URLParam(r, "materialID")),
		entities.VendorID(chi.URLParam(r, "supplierID")))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCalculateAll(w http.ResponseWriter, r *http.Request) {
	batch, err := s.service.CalculateAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.runs.Append(batch); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

func (s *Server) handleRunsList(w http.ResponseWriter, r *http.Request) {
	n := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit: %q", raw))
			return
		}
		n = parsed
	}
	writeJSON(w, http.StatusOK, s.runs.Recent(n))
}

func (s *Server) handleRunGet(w http.ResponseWriter, r *http.Request) {
	batch, err := s.runs.Get(chi.URLParam(r, "runID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, batch)
}

func (s *Server) handleCalculatePair(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.CalculatePair(r.Context(),
		entities.MaterialID(chi.URLParam(r, "materialID")),
		entities.VendorID(chi.URLParam(r, "supplierID")))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
