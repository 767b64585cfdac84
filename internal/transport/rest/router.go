package rest

import "net/http"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *HealthHandler
	Lifecycle *LifecycleHandler
	Lead      *LeadHandler
	Directory *DirectoryHandler
}

// NewRouter builds the route table. Authorization is enforced inside the
// handlers (RequireAuth/RequireAdmin), not here; the router only maps
// method+path patterns.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Generic lifecycle: any cataloged module by name.
	mux.HandleFunc("DELETE /api/v1/admin/{module}/{id}", h.Lifecycle.SoftDelete)
	mux.HandleFunc("POST /api/v1/admin/{module}/{id}/toggle", h.Lifecycle.ToggleStatus)
	mux.HandleFunc("GET /api/v1/admin/{module}/{id}/audit", h.Lifecycle.AuditTrail)

	mux.HandleFunc("POST /api/v1/leads", h.Lead.Create)
	mux.HandleFunc("GET /api/v1/leads", h.Lead.List)
	mux.HandleFunc("GET /api/v1/leads/{id}", h.Lead.Get)
	mux.HandleFunc("PATCH /api/v1/leads/{id}/status", h.Lead.Transition)
	mux.HandleFunc("GET /api/v1/leads/{id}/transitions", h.Lead.Transitions)

	mux.HandleFunc("POST /api/v1/cities", h.Directory.CreateCity)
	mux.HandleFunc("GET /api/v1/cities", h.Directory.ListCities)
	mux.HandleFunc("GET /api/v1/cities/{id}", h.Directory.GetCity)
	mux.HandleFunc("PUT /api/v1/cities/{id}", h.Directory.UpdateCity)

	mux.HandleFunc("POST /api/v1/couriers", h.Directory.CreateCourier)
	mux.HandleFunc("GET /api/v1/couriers", h.Directory.ListCouriers)
	mux.HandleFunc("GET /api/v1/couriers/{id}", h.Directory.GetCourier)
	mux.HandleFunc("PUT /api/v1/couriers/{id}", h.Directory.UpdateCourier)

	mux.HandleFunc("POST /api/v1/products", h.Directory.CreateProduct)
	mux.HandleFunc("GET /api/v1/products", h.Directory.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{id}", h.Directory.GetProduct)
	mux.HandleFunc("PUT /api/v1/products/{id}", h.Directory.UpdateProduct)

	mux.HandleFunc("POST /api/v1/payment-modes", h.Directory.CreatePaymentMode)
	mux.HandleFunc("GET /api/v1/payment-modes", h.Directory.ListPaymentModes)

	mux.HandleFunc("POST /api/v1/business-regions", h.Directory.CreateBusinessRegion)
	mux.HandleFunc("GET /api/v1/business-regions", h.Directory.ListBusinessRegions)

	return mux
}
