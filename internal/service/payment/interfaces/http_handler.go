// internal/service/payment/interfaces/http_handler.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/httpx"
	"emporium/internal/service/payment/application"
)

// PaymentService 是 HTTP 层对支付应用服务的依赖面。
type PaymentService interface {
	FindAll(ctx context.Context) ([]application.PaymentDto, error)
	FindByID(ctx context.Context, paymentID int) (application.PaymentDto, error)
	Create(ctx context.Context, dto application.PaymentDto) (application.PaymentDto, error)
	UpdateStatus(ctx context.Context, paymentID int) (application.PaymentDto, error)
	Cancel(ctx context.Context, paymentID int) error
}

// PaymentHandler 暴露 /api/payments 下的端点。
type PaymentHandler struct {
	service PaymentService
}

// NewPaymentHandler 创建支付 HTTP 处理器。
func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterRoutes 在路由器上注册支付端点。
// PUT /{paymentId} 是 PATCH 的别名，两者语义相同。
func (h *PaymentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/payments", func(r chi.Router) {
		r.Get("/", h.findAll)
		r.Post("/", h.create)
		r.Get("/{paymentId}", h.findByID)
		r.Patch("/{paymentId}", h.updateStatus)
		r.Put("/{paymentId}", h.updateStatus)
		r.Delete("/{paymentId}", h.cancel)
	})
}

func (h *PaymentHandler) findAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.Collection(w, dtos)
}

func (h *PaymentHandler) findByID(w http.ResponseWriter, r *http.Request) {
	paymentID, err := pathID(r, "paymentId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.FindByID(r.Context(), paymentID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *PaymentHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto application.PaymentDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid payment payload"))
		return
	}
	saved, err := h.service.Create(r.Context(), dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *PaymentHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	paymentID, err := pathID(r, "paymentId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.UpdateStatus(r.Context(), paymentID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *PaymentHandler) cancel(w http.ResponseWriter, r *http.Request) {
	paymentID, err := pathID(r, "paymentId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	if err := h.service.Cancel(r.Context(), paymentID); err != nil {
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
