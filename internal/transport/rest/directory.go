package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/insurdesk/brokerage-backend/internal/domain"
	"github.com/insurdesk/brokerage-backend/internal/service/directory"
	"github.com/insurdesk/brokerage-backend/internal/transport/middleware"
)

type directoryService interface {
	CreateCity(ctx context.Context, in directory.CityInput) (*domain.City, error)
	GetCity(ctx context.Context, id int64) (*domain.City, error)
	ListCities(ctx context.Context, includeInactive bool) ([]domain.City, error)
	UpdateCity(ctx context.Context, id int64, in directory.CityInput) (*domain.City, error)

	CreateCourier(ctx context.Context, in directory.CourierInput) (*domain.Courier, error)
	GetCourier(ctx context.Context, id int64) (*domain.Courier, error)
	ListCouriers(ctx context.Context, includeInactive bool) ([]domain.Courier, error)
	UpdateCourier(ctx context.Context, id int64, in directory.CourierInput) (*domain.Courier, error)

	CreateProduct(ctx context.Context, in directory.ProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, category domain.ProductCategory) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, in directory.ProductInput) (*domain.Product, error)

	CreatePaymentMode(ctx context.Context, name string) (*domain.PaymentMode, error)
	ListPaymentModes(ctx context.Context, includeInactive bool) ([]domain.PaymentMode, error)

	CreateBusinessRegion(ctx context.Context, name, code string) (*domain.BusinessRegion, error)
	ListBusinessRegions(ctx context.Context) ([]domain.BusinessRegion, error)
}

// DirectoryHandler serves reference data REST endpoints. Reads are open to
// any authenticated actor; writes require the admin role.
type DirectoryHandler struct {
	svc directoryService
	log *slog.Logger
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(svc directoryService, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{svc: svc, log: logger.With("handler", "directory")}
}

type cityRequest struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

type courierRequest struct {
	Name        string  `json:"name"`
	TrackingURL *string `json:"trackingUrl,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

type productRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type paymentModeRequest struct {
	Name string `json:"name"`
}

type regionRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// CreateCity handles POST /api/v1/cities.
func (h *DirectoryHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req cityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.CreateCity(r.Context(), directory.CityInput{Name: req.Name, State: req.State})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCityResponse(c))
}

// GetCity handles GET /api/v1/cities/{id}.
func (h *DirectoryHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	c, err := h.svc.GetCity(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCityResponse(c))
}

// ListCities handles GET /api/v1/cities?includeInactive=true.
func (h *DirectoryHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	cities, err := h.svc.ListCities(r.Context(), queryBool(r, "includeInactive"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCityResponses(cities))
}

// UpdateCity handles PUT /api/v1/cities/{id}.
func (h *DirectoryHandler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req cityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.UpdateCity(r.Context(), id, directory.CityInput{Name: req.Name, State: req.State})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCityResponse(c))
}

// CreateCourier handles POST /api/v1/couriers.
func (h *DirectoryHandler) CreateCourier(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req courierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.CreateCourier(r.Context(), directory.CourierInput{
		Name:        req.Name,
		TrackingURL: req.TrackingURL,
		Phone:       req.Phone,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCourierResponse(c))
}

// GetCourier handles GET /api/v1/couriers/{id}.
func (h *DirectoryHandler) GetCourier(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	c, err := h.svc.GetCourier(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourierResponse(c))
}

// ListCouriers handles GET /api/v1/couriers?includeInactive=true.
func (h *DirectoryHandler) ListCouriers(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	couriers, err := h.svc.ListCouriers(r.Context(), queryBool(r, "includeInactive"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourierResponses(couriers))
}

// UpdateCourier handles PUT /api/v1/couriers/{id}.
func (h *DirectoryHandler) UpdateCourier(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req courierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.UpdateCourier(r.Context(), id, directory.CourierInput{
		Name:        req.Name,
		TrackingURL: req.TrackingURL,
		Phone:       req.Phone,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourierResponse(c))
}

// CreateProduct handles POST /api/v1/products.
func (h *DirectoryHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.CreateProduct(r.Context(), directory.ProductInput{
		Name:     req.Name,
		Category: domain.ProductCategory(req.Category),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(p))
}

// GetProduct handles GET /api/v1/products/{id}.
func (h *DirectoryHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// ListProducts handles GET /api/v1/products?category=motor.
func (h *DirectoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	category := domain.ProductCategory(r.URL.Query().Get("category"))
	products, err := h.svc.ListProducts(r.Context(), category)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// UpdateProduct handles PUT /api/v1/products/{id}.
func (h *DirectoryHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.svc.UpdateProduct(r.Context(), id, directory.ProductInput{
		Name:     req.Name,
		Category: domain.ProductCategory(req.Category),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// CreatePaymentMode handles POST /api/v1/payment-modes.
func (h *DirectoryHandler) CreatePaymentMode(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req paymentModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m, err := h.svc.CreatePaymentMode(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentModeResponse(m))
}

// ListPaymentModes handles GET /api/v1/payment-modes?includeInactive=true.
func (h *DirectoryHandler) ListPaymentModes(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	modes, err := h.svc.ListPaymentModes(r.Context(), queryBool(r, "includeInactive"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentModeResponses(modes))
}

// CreateBusinessRegion handles POST /api/v1/business-regions.
func (h *DirectoryHandler) CreateBusinessRegion(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req regionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	br, err := h.svc.CreateBusinessRegion(r.Context(), req.Name, req.Code)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRegionResponse(br))
}

// ListBusinessRegions handles GET /api/v1/business-regions.
func (h *DirectoryHandler) ListBusinessRegions(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAuth(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	regions, err := h.svc.ListBusinessRegions(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRegionResponses(regions))
}
