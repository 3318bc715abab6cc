// internal/service/order/interfaces/http_handler.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/httpx"
	"emporium/internal/service/order/application"
)

// OrderService 是 HTTP 层对应用服务的依赖面。
type OrderService interface {
	FindAll(ctx context.Context) ([]application.OrderDto, error)
	FindByID(ctx context.Context, orderID int) (application.OrderDto, error)
	Create(ctx context.Context, dto application.OrderDto) (application.OrderDto, error)
	UpdateStatus(ctx context.Context, orderID int) (application.OrderDto, error)
	Update(ctx context.Context, orderID int, dto application.OrderDto) (application.OrderDto, error)
	Delete(ctx context.Context, orderID int) error
}

// OrderHandler 暴露 /api/orders 下的全部端点。
type OrderHandler struct {
	service OrderService
}

// NewOrderHandler 创建订单 HTTP 处理器。
func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes 在路由器上注册订单端点。
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.findAll)
		r.Post("/", h.create)
		r.Get("/{orderId}", h.findByID)
		r.Patch("/{orderId}/status", h.updateStatus)
		r.Put("/{orderId}", h.update)
		r.Delete("/{orderId}", h.delete)
	})
}

func (h *OrderHandler) findAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.Collection(w, dtos)
}

func (h *OrderHandler) findByID(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.FindByID(r.Context(), orderID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto application.OrderDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid order payload"))
		return
	}
	saved, err := h.service.Create(r.Context(), dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.UpdateStatus(r.Context(), orderID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *OrderHandler) update(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	var dto application.OrderDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid order payload"))
		return
	}
	updated, err := h.service.Update(r.Context(), orderID, dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *OrderHandler) delete(w http.ResponseWriter, r *http.Request) {
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

// pathID 解析路径里的整型 id。
func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, apperr.InvalidInput("%s must be an integer", name)
	}
	return id, nil
}
