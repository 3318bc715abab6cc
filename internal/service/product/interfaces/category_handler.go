// internal/service/product/interfaces/category_handler.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/httpx"
	"emporium/internal/service/product/application"
)

// CategoryService 是 HTTP 层对分类应用服务的依赖面。
type CategoryService interface {
	FindAll(ctx context.Context) ([]application.CategoryDto, error)
	FindByID(ctx context.Context, categoryID int) (application.CategoryDto, error)
	Create(ctx context.Context, dto application.CategoryDto) (application.CategoryDto, error)
	Update(ctx context.Context, categoryID int, dto application.CategoryDto) (application.CategoryDto, error)
	Delete(ctx context.Context, categoryID int) error
}

// CategoryHandler 暴露 /api/categories 下的端点。
type CategoryHandler struct {
	service CategoryService
}

// NewCategoryHandler 创建分类 HTTP 处理器。
func NewCategoryHandler(service CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// RegisterRoutes 在路由器上注册分类端点。
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.findAll)
		r.Post("/", h.create)
		r.Get("/{categoryId}", h.findByID)
		r.Put("/{categoryId}", h.update)
		r.Delete("/{categoryId}", h.delete)
	})
}

func (h *CategoryHandler) findAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.Collection(w, dtos)
}

func (h *CategoryHandler) findByID(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.FindByID(r.Context(), categoryID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto application.CategoryDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid category payload"))
		return
	}
	saved, err := h.service.Create(r.Context(), dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	var dto application.CategoryDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid category payload"))
		return
	}
	updated, err := h.service.Update(r.Context(), categoryID, dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	if err := h.service.Delete(r.Context(), categoryID); err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, true)
}
