package rest

import (
	"time"

	"github.com/insurdesk/brokerage-backend/internal/domain"
)

type cityResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type courierResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	TrackingURL *string   `json:"trackingUrl,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type productResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type paymentModeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type regionResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCityResponse(c *domain.City) cityResponse {
	return cityResponse{
		ID:        c.ID,
		Name:      c.Name,
		State:     c.State,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCityResponses(cities []domain.City) []cityResponse {
	out := make([]cityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, toCityResponse(&cities[i]))
	}
	return out
}

func toCourierResponse(c *domain.Courier) courierResponse {
	return courierResponse{
		ID:          c.ID,
		Name:        c.Name,
		TrackingURL: c.TrackingURL,
		Phone:       c.Phone,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCourierResponses(couriers []domain.Courier) []courierResponse {
	out := make([]courierResponse, 0, len(couriers))
	for i := range couriers {
		out = append(out, toCourierResponse(&couriers[i]))
	}
	return out
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category.String(),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toPaymentModeResponse(m *domain.PaymentMode) paymentModeResponse {
	return paymentModeResponse{
		ID:        m.ID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPaymentModeResponses(modes []domain.PaymentMode) []paymentModeResponse {
	out := make([]paymentModeResponse, 0, len(modes))
	for i := range modes {
		out = append(out, toPaymentModeResponse(&modes[i]))
	}
	return out
}

func toRegionResponse(br *domain.BusinessRegion) regionResponse {
	return regionResponse{
		ID:        br.ID,
		Name:      br.Name,
		Code:      br.Code,
		IsActive:  br.IsActive,
		CreatedAt: br.CreatedAt,
		UpdatedAt: br.UpdatedAt,
	}
}

func toRegionResponses(regions []domain.BusinessRegion) []regionResponse {
	out := make([]regionResponse, 0, len(regions))
	for i := range regions {
		out = append(out, toRegionResponse(&regions[i]))
	}
	return out
}
