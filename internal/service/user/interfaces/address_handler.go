// internal/service/user/interfaces/address_handler.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/httpx"
	"emporium/internal/service/user/application"
)

// AddressService 是 HTTP 层对地址应用服务的依赖面。
type AddressService interface {
	FindAll(ctx context.Context) ([]application.AddressDto, error)
	FindByID(ctx context.Context, addressID int) (application.AddressDto, error)
	Create(ctx context.Context, dto application.AddressDto) (application.AddressDto, error)
	Update(ctx context.Context, addressID int, dto application.AddressDto) (application.AddressDto, error)
	Delete(ctx context.Context, addressID int) error
}

// AddressHandler 暴露 /api/address 下的端点。
type AddressHandler struct {
	service AddressService
}

// NewAddressHandler 创建地址 HTTP 处理器。
func NewAddressHandler(service AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

// RegisterRoutes 在路由器上注册地址端点。
func (h *AddressHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/address", func(r chi.Router) {
		r.Get("/", h.findAll)
		r.Post("/", h.create)
		r.Get("/{addressId}", h.findByID)
		r.Put("/{addressId}", h.update)
		r.Delete("/{addressId}", h.delete)
	})
}

func (h *AddressHandler) findAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.Collection(w, dtos)
}

func (h *AddressHandler) findByID(w http.ResponseWriter, r *http.Request) {
	addressID, err := pathID(r, "addressId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.FindByID(r.Context(), addressID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *AddressHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto application.AddressDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid address payload"))
		return
	}
	saved, err := h.service.Create(r.Context(), dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *AddressHandler) update(w http.ResponseWriter, r *http.Request) {
	addressID, err := pathID(r, "addressId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	var dto application.AddressDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid address payload"))
		return
	}
	updated, err := h.service.Update(r.Context(), addressID, dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *AddressHandler) delete(w http.ResponseWriter, r *http.Request) {
	addressID, err := pathID(r, "addressId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	if err := h.service.Delete(r.Context(), addressID); err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, true)
}
