// Package views projects service data into what the admin and worker
// screens display. Every function here is pure.
package views

import (
	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/baharkarakas/pos-backend/internal/money"
	"github.com/baharkarakas/pos-backend/internal/services"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	NoActiveShift  = "Not active"
	NoLastShift    = "N/A"
)

type WorkerRowView struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Active       bool   `json:"active"`
	Status       string `json:"status"`
	Sales        string `json:"sales"`
	Expenses     string `json:"expenses"`
	Balance      string `json:"balance"`
	CurrentShift string `json:"current_shift"`
	LastShift    string `json:"last_shift"`
	ToggleAction string `json:"toggle_action"`
}

type BalanceView struct {
	WorkerID string `json:"worker_id"`
	Sales    string `json:"sales"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

type ProductRowView struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Stock      int               `json:"stock"`
	StockLevel models.StockLevel `json:"stock_level"`
	Price      string            `json:"price"`
}

type ServiceRowView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Renderer carries the display currency prefix.
type Renderer struct {
	Currency string
}

func (r Renderer) Balance(b models.WorkerBalance) BalanceView {
	return BalanceView{
		WorkerID: b.WorkerID,
		Sales:    money.Format(r.Currency, b.Sales),
		Expenses: money.Format(r.Currency, b.Expenses),
		Balance:  money.Format(r.Currency, b.Balance),
	}
}

func (r Renderer) WorkerRow(ov models.WorkerOverview) WorkerRowView {
	b := r.Balance(ov.Balance)
	row := WorkerRowView{
		ID:           ov.User.ID,
		Username:     ov.User.Username,
		Email:        ov.User.Email,
		Active:       ov.User.Active,
		Status:       StatusInactive,
		Sales:        b.Sales,
		Expenses:     b.Expenses,
		Balance:      b.Balance,
		CurrentShift: NoActiveShift,
		LastShift:    NoLastShift,
		ToggleAction: "Enable",
	}
	if ov.User.Active {
		row.Status = StatusActive
		row.ToggleAction = "Disable"
	}
	if ov.CurrentShift != nil {
		row.CurrentShift = services.FormatDuration(*ov.CurrentShift)
	}
	if ov.LastShift != nil && *ov.LastShift > 0 {
		row.LastShift = services.FormatDuration(*ov.LastShift)
	}
	return row
}

func (r Renderer) WorkerRows(ovs []models.WorkerOverview) []WorkerRowView {
	out := make([]WorkerRowView, 0, len(ovs))
	for _, ov := range ovs {
		out = append(out, r.WorkerRow(ov))
	}
	return out
}

func (r Renderer) ProductRows(ps []models.Product) []ProductRowView {
	out := make([]ProductRowView, 0, len(ps))
	for _, p := range ps {
		out = append(out, r.ProductRow(p))
	}
	return out
}

func (r Renderer) ProductRow(p models.Product) ProductRowView {
	return ProductRowView{
		ID:         p.ID,
		Name:       p.Name,
		Stock:      p.Stock,
		StockLevel: p.StockLevel(),
		Price:      money.Format(r.Currency, p.Price),
	}
}

func (r Renderer) ServiceRows(ss []models.Service) []ServiceRowView {
	out := make([]ServiceRowView, 0, len(ss))
	for _, s := range ss {
		out = append(out, r.ServiceRow(s))
	}
	return out
}

func (r Renderer) ServiceRow(s models.Service) ServiceRowView {
	return ServiceRowView{ID: s.ID, Name: s.Name, Price: money.Format(r.Currency, s.Price)}
}
