package handlers

import (
	"bytes"
	"net/http"

	"github.com/baharkarakas/pos-backend/internal/api/httpx"
	"github.com/baharkarakas/pos-backend/internal/api/views"
	"github.com/baharkarakas/pos-backend/internal/middleware"
	"github.com/baharkarakas/pos-backend/internal/report"
	"github.com/baharkarakas/pos-backend/internal/services"
)

type WorkerHandler struct {
	Workers    *services.WorkerService
	Financials *services.FinancialsService
	View       views.Renderer
}

type addWorkerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *WorkerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWorkerReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	u, err := h.Workers.AddWorker(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	ovs, err := h.Workers.ListOverviews(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.View.WorkerRows(ovs))
}

func (h *WorkerHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	u, err := h.Workers.ToggleStatus(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.Workers.DeleteWorker(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WorkerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	h.writeBalance(w, r, id)
}

// MyBalance serves the calling worker's own balance.
func (h *WorkerHandler) MyBalance(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.SessionFrom(r.Context())
	h.writeBalance(w, r, s.UserID)
}

func (h *WorkerHandler) writeBalance(w http.ResponseWriter, r *http.Request, workerID string) {
	b, err := h.Financials.ComputeBalance(r.Context(), workerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.View.Balance(b))
}

func (h *WorkerHandler) Report(w http.ResponseWriter, r *http.Request) {
	ovs, err := h.Workers.ListOverviews(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteWorkers(&buf, h.View.WorkerRows(ovs)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="workers.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
