// internal/service/shipping/interfaces/http_handler.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/httpx"
	"emporium/internal/service/shipping/application"
)

// ShippingService 是 HTTP 层对发货应用服务的依赖面。
type ShippingService interface {
	FindAll(ctx context.Context) ([]application.OrderItemDto, error)
	FindByOrderID(ctx context.Context, orderID int) (application.OrderItemDto, error)
	Create(ctx context.Context, dto application.OrderItemDto) (application.OrderItemDto, error)
	Delete(ctx context.Context, orderID int) error
}

// ShippingHandler 暴露 /api/shippings 下的端点。
type ShippingHandler struct {
	service ShippingService
}

// NewShippingHandler 创建发货 HTTP 处理器。
func NewShippingHandler(service ShippingService) *ShippingHandler {
	return &ShippingHandler{service: service}
}

// RegisterRoutes 在路由器上注册发货端点。
func (h *ShippingHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/shippings", func(r chi.Router) {
		r.Get("/", h.findAll)
		r.Post("/", h.create)
		r.Get("/{orderId}", h.findByOrderID)
		r.Delete("/{orderId}", h.delete)
	})
}

func (h *ShippingHandler) findAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.Collection(w, dtos)
}

func (h *ShippingHandler) findByOrderID(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.FindByOrderID(r.Context(), orderID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *ShippingHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto application.OrderItemDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid order item payload"))
		return
	}
	saved, err := h.service.Create(r.Context(), dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *ShippingHandler) delete(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	if err := h.service.Delete(r.Context(), orderID); err != nil {
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
