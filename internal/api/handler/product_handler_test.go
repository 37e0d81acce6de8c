package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// memProductService is an in-memory ports.ProductService for handler tests.
type memProductService struct {
	products map[string]*domain.Product
	nextID   int
}

func newMemProductService() *memProductService {
	return &memProductService{products: make(map[string]*domain.Product)}
}

func (s *memProductService) List(context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out, nil
}

func (s *memProductService) Get(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *memProductService) Create(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	s.nextID++
	price := input.Price
	if price == "" {
		price = "0"
	}
	p := &domain.Product{
		ID:          strconv.Itoa(s.nextID),
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	s.products[p.ID] = p
	clone := *p
	return &clone, nil
}

func (s *memProductService) Update(_ context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	clone := *p
	return &clone, nil
}

func (s *memProductService) Delete(_ context.Context, id string) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	delete(s.products, id)
	return p, nil
}

func TestProductHandler_CreateThenGetRoundTrip(t *testing.T) {
	e := newTestEcho()
	h := NewProductHandler(newMemProductService())

	c, rec := jsonRequest(e, http.MethodPost, "/products",
		`{"name":"papas fritas","description":"Papas fritas crocantes y saladas","price":"15.50"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var created struct {
		Product domain.Product `json:"product"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if created.Product.ID == "" {
		t.Fatalf("expected assigned id")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	getRec := httptest.NewRecorder()
	getCtx := e.NewContext(req, getRec)
	getCtx.SetPath("/products/:id")
	getCtx.SetParamNames("id")
	getCtx.SetParamValues(created.Product.ID)

	if err := h.Get(getCtx); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var fetched struct {
		Product domain.Product `json:"product"`
	}
	if err := json.Unmarshal(getRec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if fetched.Product.Name != "papas fritas" {
		t.Fatalf("name changed in round trip: %q", fetched.Product.Name)
	}
	if fetched.Product.Description != "Papas fritas crocantes y saladas" {
		t.Fatalf("description changed in round trip: %q", fetched.Product.Description)
	}
	if fetched.Product.Price != "15.50" {
		t.Fatalf("price changed in round trip: %q", fetched.Product.Price)
	}
}

func TestProductHandler_Create_DefaultsPrice(t *testing.T) {
	e := newTestEcho()
	h := NewProductHandler(newMemProductService())

	c, rec := jsonRequest(e, http.MethodPost, "/products",
		`{"name":"gaseosa","description":"Bebida gaseosa de dos litros"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	var created struct {
		Product domain.Product `json:"product"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if created.Product.Price != "0" {
		t.Fatalf("expected default price \"0\", got %q", created.Product.Price)
	}
}

func TestProductHandler_Create_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	svc := newMemProductService()
	h := NewProductHandler(svc)

	// Name below the three character minimum.
	c, _ := jsonRequest(e, http.MethodPost, "/products", `{"name":"ab"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if len(svc.products) != 0 {
		t.Fatalf("invalid product was persisted")
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewProductHandler(newMemProductService())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	if err := h.Get(c); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
