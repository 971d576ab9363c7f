package services

import (
	"context"
	"errors"
	"testing"

	"github.com/baharkarakas/pos-backend/internal/api/validate"
	"github.com/baharkarakas/pos-backend/internal/models"
)

func intp(n int) *int { return &n }

func newCatalog() (*CatalogService, *fakeProducts, *fakeServices) {
	p := &fakeProducts{items: map[string]models.Product{}}
	s := &fakeServices{items: map[string]models.Service{}}
	return NewCatalogService(p, s), p, s
}

func TestProducts_CRUD(t *testing.T) {
	svc, _, _ := newCatalog()
	ctx := context.Background()

	soap, err := svc.AddProduct(ctx, "admin-1", ProductInput{Name: " Soap ", Stock: intp(3), Price: "45.50"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if soap.Name != "Soap" || soap.StockLevel() != models.StockLow || soap.CreatedBy == nil || *soap.CreatedBy != "admin-1" {
		t.Fatalf("unexpected product: %+v", soap)
	}
	if _, err := svc.AddProduct(ctx, "admin-1", ProductInput{Name: "Bread", Stock: intp(0), Price: "60"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	list, err := svc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Bread" || list[1].Name != "Soap" {
		t.Fatalf("expected products ordered by name, got %+v", list)
	}

	updated, err := svc.UpdateProduct(ctx, soap.ID, ProductInput{Name: "Soap bar", Stock: intp(12), Price: "50"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Stock != 12 || !updated.Price.Equal(dec("50")) || updated.StockLevel() != models.StockIn {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if _, err := svc.UpdateProduct(ctx, "missing", ProductInput{Name: "x", Stock: intp(1), Price: "1"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.DeleteProduct(ctx, soap.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteProduct(ctx, soap.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProducts_Validation(t *testing.T) {
	svc, _, _ := newCatalog()
	tests := []struct {
		name   string
		in     ProductInput
		fields []string
	}{
		{"missing everything", ProductInput{}, []string{"name", "stock", "price"}},
		{"negative stock", ProductInput{Name: "Soap", Stock: intp(-1), Price: "1"}, []string{"stock"}},
		{"bad price", ProductInput{Name: "Soap", Stock: intp(1), Price: "cheap"}, []string{"price"}},
		{"negative price", ProductInput{Name: "Soap", Stock: intp(1), Price: "-3"}, []string{"price"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddProduct(context.Background(), "", tt.in)
			var errs validate.Errs
			if !errors.As(err, &errs) {
				t.Fatalf("expected validate.Errs, got %v", err)
			}
			if len(errs) != len(tt.fields) {
				t.Fatalf("expected fields %v, got %v", tt.fields, errs)
			}
			for i, f := range tt.fields {
				if errs[i].Field != f {
					t.Errorf("expected field %s at %d, got %s", f, i, errs[i].Field)
				}
			}
		})
	}
}

func TestProducts_ListFailure(t *testing.T) {
	svc, p, _ := newCatalog()
	p.err = errors.New("db down")
	_, err := svc.ListProducts(context.Background())
	var dsErr *DataSourceError
	if !errors.As(err, &dsErr) || dsErr.Collection != "products" {
		t.Fatalf("expected products DataSourceError, got %v", err)
	}
}

func TestServices_CRUD(t *testing.T) {
	svc, _, _ := newCatalog()
	ctx := context.Background()

	cut, err := svc.AddService(ctx, "w-1", ServiceInput{Name: "Haircut", Price: "300"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddService(ctx, "w-1", ServiceInput{Name: "Beard trim", Price: "150,50"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddService(ctx, "w-1", ServiceInput{Name: "", Price: "x"}); err == nil {
		t.Fatal("expected validation error")
	}

	list, err := svc.ListServices(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Beard trim" || !list[0].Price.Equal(dec("150.50")) {
		t.Fatalf("unexpected services: %+v", list)
	}

	got, err := svc.UpdateService(ctx, cut.ID, ServiceInput{Name: "Haircut deluxe", Price: "450"})
	if err != nil || got.Name != "Haircut deluxe" {
		t.Fatalf("update: %+v %v", got, err)
	}
	if err := svc.DeleteService(ctx, cut.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteService(ctx, cut.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
