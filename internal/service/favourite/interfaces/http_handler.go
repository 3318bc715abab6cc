// internal/service/favourite/interfaces/http_handler.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/httpx"
	"emporium/internal/service/favourite/application"
)

// FavouriteService 是 HTTP 层对收藏应用服务的依赖面。
type FavouriteService interface {
	FindAll(ctx context.Context) ([]application.FavouriteDto, error)
	FindByKey(ctx context.Context, userID, productID int) (application.FavouriteDto, error)
	Create(ctx context.Context, dto application.FavouriteDto) (application.FavouriteDto, error)
	Delete(ctx context.Context, userID, productID int) error
}

// FavouriteHandler 暴露 /api/favourites 下的端点。
// 单条资源通过复合键 /{userId}/{productId} 寻址。
type FavouriteHandler struct {
	service FavouriteService
}

// NewFavouriteHandler 创建收藏 HTTP 处理器。
func NewFavouriteHandler(service FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{service: service}
}

// RegisterRoutes 在路由器上注册收藏端点。
func (h *FavouriteHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/favourites", func(r chi.Router) {
		r.Get("/", h.findAll)
		r.Post("/", h.create)
		r.Get("/{userId}/{productId}", h.findByKey)
		r.Delete("/{userId}/{productId}", h.delete)
	})
}

func (h *FavouriteHandler) findAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.Collection(w, dtos)
}

func (h *FavouriteHandler) findByKey(w http.ResponseWriter, r *http.Request) {
	userID, productID, err := pathKey(r)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.FindByKey(r.Context(), userID, productID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *FavouriteHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto application.FavouriteDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid favourite payload"))
		return
	}
	saved, err := h.service.Create(r.Context(), dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *FavouriteHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, productID, err := pathKey(r)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	if err := h.service.Delete(r.Context(), userID, productID); err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, true)
}

// pathKey 解析复合键路径段。
func pathKey(r *http.Request) (int, int, error) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		return 0, 0, apperr.InvalidInput("userId must be an integer")
	}
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		return 0, 0, apperr.InvalidInput("productId must be an integer")
	}
	return userID, productID, nil
}
