package views

import (
	"testing"
	"time"

	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestWorkerRow(t *testing.T) {
	r := Renderer{Currency: "Ksh."}
	current := 75 * time.Minute
	last := 40*time.Minute + 5*time.Second

	row := r.WorkerRow(models.WorkerOverview{
		User:         models.User{ID: "w1", Username: "amani", Email: "amani@example.com", Active: true},
		Balance:      models.WorkerBalance{WorkerID: "w1", Sales: d("150"), Expenses: d("30"), Balance: d("120")},
		CurrentShift: &current,
		LastShift:    &last,
	})

	want := WorkerRowView{
		ID:           "w1",
		Username:     "amani",
		Email:        "amani@example.com",
		Active:       true,
		Status:       "Active",
		Sales:        "Ksh.150.00",
		Expenses:     "Ksh.30.00",
		Balance:      "Ksh.120.00",
		CurrentShift: "1h 15m",
		LastShift:    "40m 5s",
		ToggleAction: "Disable",
	}
	if row != want {
		t.Fatalf("unexpected row:\n got %+v\nwant %+v", row, want)
	}
}

func TestWorkerRow_NoShiftsInactive(t *testing.T) {
	zero := time.Duration(0)
	row := Renderer{Currency: "Ksh."}.WorkerRow(models.WorkerOverview{
		User:      models.User{ID: "w2", Username: "zawadi"},
		LastShift: &zero,
	})
	if row.Status != "Inactive" || row.ToggleAction != "Enable" {
		t.Fatalf("unexpected status: %+v", row)
	}
	if row.CurrentShift != "Not active" || row.LastShift != "N/A" {
		t.Fatalf("unexpected shifts: %q / %q", row.CurrentShift, row.LastShift)
	}
	if row.Balance != "Ksh.0.00" {
		t.Fatalf("expected zero balance, got %s", row.Balance)
	}
}

func TestCatalogRows(t *testing.T) {
	r := Renderer{Currency: "Ksh."}
	ps := r.ProductRows([]models.Product{
		{ID: "p1", Name: "Bread", Stock: 0, Price: d("60")},
		{ID: "p2", Name: "Soap", Stock: 4, Price: d("45.5")},
		{ID: "p3", Name: "Sugar", Stock: 20, Price: d("120.999")},
	})
	if ps[0].StockLevel != models.StockOut || ps[1].StockLevel != models.StockLow || ps[2].StockLevel != models.StockIn {
		t.Fatalf("unexpected stock levels: %+v", ps)
	}
	if ps[1].Price != "Ksh.45.50" || ps[2].Price != "Ksh.121.00" {
		t.Fatalf("unexpected prices: %s, %s", ps[1].Price, ps[2].Price)
	}

	ss := r.ServiceRows([]models.Service{{ID: "s1", Name: "Haircut", Price: d("300")}})
	if len(ss) != 1 || ss[0].Price != "Ksh.300.00" {
		t.Fatalf("unexpected services: %+v", ss)
	}

	if got := r.ProductRows(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice for JSON [], got %#v", got)
	}
}
