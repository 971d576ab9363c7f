package services

import (
	"context"
	"errors"
	"strings"

	"github.com/baharkarakas/pos-backend/internal/api/validate"
	"github.com/baharkarakas/pos-backend/internal/models"
	"github.com/baharkarakas/pos-backend/internal/money"
	repo "github.com/baharkarakas/pos-backend/internal/repository"
	"github.com/shopspring/decimal"
)

type ProductInput struct {
	Name  string
	Stock *int
	Price string
}

type ServiceInput struct {
	Name  string
	Price string
}

type CatalogService struct {
	products repo.Products
	services repo.Services
}

func NewCatalogService(p repo.Products, s repo.Services) *CatalogService {
	return &CatalogService{products: p, services: s}
}

func (in ProductInput) parse() (string, int, decimal.Decimal, error) {
	name := strings.TrimSpace(in.Name)
	price, perr := money.ParsePrice(in.Price)

	var stockErr *validate.ErrField
	stock := 0
	if in.Stock == nil {
		stockErr = &validate.ErrField{Field: "stock", Msg: "required"}
	} else {
		stock = *in.Stock
		stockErr = validate.MinInt("stock", int64(stock), 0)
	}

	err := validate.Collect(
		validate.Required("name", name),
		stockErr,
		validate.Check("price", perr),
	)
	return name, stock, price, err
}

func (in ServiceInput) parse() (string, decimal.Decimal, error) {
	name := strings.TrimSpace(in.Name)
	price, perr := money.ParsePrice(in.Price)
	err := validate.Collect(
		validate.Required("name", name),
		validate.Check("price", perr),
	)
	return name, price, err
}

func notFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// ----------------- Products -----------------

func (s *CatalogService) AddProduct(ctx context.Context, actorID string, in ProductInput) (models.Product, error) {
	name, stock, price, err := in.parse()
	if err != nil {
		return models.Product{}, err
	}
	return s.products.Create(ctx, name, stock, price, actorID)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	ps, err := s.products.List(ctx)
	if err != nil {
		return nil, dataSource("products", err)
	}
	return ps, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) (models.Product, error) {
	name, stock, price, err := in.parse()
	if err != nil {
		return models.Product{}, err
	}
	p, err := s.products.Update(ctx, id, name, stock, price)
	return p, notFound(err)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return notFound(s.products.Delete(ctx, id))
}

// ----------------- Services -----------------

func (s *CatalogService) AddService(ctx context.Context, actorID string, in ServiceInput) (models.Service, error) {
	name, price, err := in.parse()
	if err != nil {
		return models.Service{}, err
	}
	return s.services.Create(ctx, name, price, actorID)
}

func (s *CatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	ss, err := s.services.List(ctx)
	if err != nil {
		return nil, dataSource("services", err)
	}
	return ss, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, in ServiceInput) (models.Service, error) {
	name, price, err := in.parse()
	if err != nil {
		return models.Service{}, err
	}
	svc, err := s.services.Update(ctx, id, name, price)
	return svc, notFound(err)
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	return notFound(s.services.Delete(ctx, id))
}
