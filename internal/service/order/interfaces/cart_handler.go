// internal/service/order/interfaces/cart_handler.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/httpx"
	"emporium/internal/service/order/application"
)

// CartService 是 HTTP 层对购物车应用服务的依赖面。
type CartService interface {
	FindAll(ctx context.Context) ([]application.CartDto, error)
	FindByID(ctx context.Context, cartID int) (application.CartDto, error)
	Create(ctx context.Context, dto application.CartDto) (application.CartDto, error)
	Delete(ctx context.Context, cartID int) error
}

// CartHandler 暴露 /api/carts 下的端点。
type CartHandler struct {
	service CartService
}

// NewCartHandler 创建购物车 HTTP 处理器。
func NewCartHandler(service CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes 在路由器上注册购物车端点。
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/carts", func(r chi.Router) {
		r.Get("/", h.findAll)
		r.Post("/", h.create)
		r.Get("/{cartId}", h.findByID)
		r.Delete("/{cartId}", h.delete)
	})
}

func (h *CartHandler) findAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.Collection(w, dtos)
}

func (h *CartHandler) findByID(w http.ResponseWriter, r *http.Request) {
	cartID, err := pathID(r, "cartId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.FindByID(r.Context(), cartID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *CartHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto application.CartDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid cart payload"))
		return
	}
	saved, err := h.service.Create(r.Context(), dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *CartHandler) delete(w http.ResponseWriter, r *http.Request) {
	cartID, err := pathID(r, "cartId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	if err := h.service.Delete(r.Context(), cartID); err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, true)
}
