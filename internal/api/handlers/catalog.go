package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/baharkarakas/pos-backend/internal/api/httpx"
	"github.com/baharkarakas/pos-backend/internal/api/views"
	"github.com/baharkarakas/pos-backend/internal/middleware"
	"github.com/baharkarakas/pos-backend/internal/services"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
	View    views.Renderer
}

// priceField accepts a JSON number or a string such as "12,50". Parsing is
// left to the service so both forms get the same validation.
type priceField string

func (p *priceField) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = priceField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("price must be a number or a string")
	}
	*p = priceField(n.String())
	return nil
}

type productReq struct {
	Name  string     `json:"name"`
	Stock *int       `json:"stock"`
	Price priceField `json:"price"`
}

func (p productReq) input() services.ProductInput {
	return services.ProductInput{Name: p.Name, Stock: p.Stock, Price: string(p.Price)}
}

type serviceReq struct {
	Name  string     `json:"name"`
	Price priceField `json:"price"`
}

func (s serviceReq) input() services.ServiceInput {
	return services.ServiceInput{Name: s.Name, Price: string(s.Price)}
}

func actorID(r *http.Request) string {
	s, _ := middleware.SessionFrom(r.Context())
	return s.UserID
}

// ----------------- Products -----------------

func (h *CatalogHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req productReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	p, err := h.Catalog.AddProduct(r.Context(), actorID(r), req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, h.View.ProductRow(p))
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Catalog.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.View.ProductRows(ps))
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	p, err := h.Catalog.UpdateProduct(r.Context(), id, req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.View.ProductRow(p))
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------- Services -----------------

func (h *CatalogHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var req serviceReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	s, err := h.Catalog.AddService(r.Context(), actorID(r), req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, h.View.ServiceRow(s))
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	ss, err := h.Catalog.ListServices(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.View.ServiceRows(ss))
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req serviceReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	s, err := h.Catalog.UpdateService(r.Context(), id, req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.View.ServiceRow(s))
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteService(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
