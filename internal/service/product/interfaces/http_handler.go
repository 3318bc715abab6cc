// internal/service/product/interfaces/http_handler.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/httpx"
	"emporium/internal/service/product/application"
)

// ProductService 是 HTTP 层对商品应用服务的依赖面。
type ProductService interface {
	FindAll(ctx context.Context) ([]application.ProductDto, error)
	FindByID(ctx context.Context, productID int) (application.ProductDto, error)
	Create(ctx context.Context, dto application.ProductDto) (application.ProductDto, error)
	Update(ctx context.Context, productID int, dto application.ProductDto) (application.ProductDto, error)
	Delete(ctx context.Context, productID int) error
}

// ProductHandler 暴露 /api/products 下的端点。
type ProductHandler struct {
	service ProductService
}

// NewProductHandler 创建商品 HTTP 处理器。
func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes 在路由器上注册商品端点。
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.findAll)
		r.Post("/", h.create)
		r.Get("/{productId}", h.findByID)
		r.Put("/{productId}", h.update)
		r.Delete("/{productId}", h.delete)
	})
}

func (h *ProductHandler) findAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.Collection(w, dtos)
}

func (h *ProductHandler) findByID(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.FindByID(r.Context(), productID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto application.ProductDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid product payload"))
		return
	}
	saved, err := h.service.Create(r.Context(), dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	var dto application.ProductDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid product payload"))
		return
	}
	updated, err := h.service.Update(r.Context(), productID, dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	if err := h.service.Delete(r.Context(), productID); err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, true)
}

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, apperr.InvalidInput("%s must be an integer", name)
	}
	return id, nil
}
