// internal/service/user/interfaces/http_handler.go
package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/httpx"
	"emporium/internal/service/user/application"
)

// UserService 是 HTTP 层对用户应用服务的依赖面。
type UserService interface {
	FindAll(ctx context.Context) ([]application.UserDto, error)
	FindByID(ctx context.Context, userID int) (application.UserDto, error)
	FindByUsername(ctx context.Context, username string) (application.UserDto, error)
	Create(ctx context.Context, dto application.UserDto) (application.UserDto, error)
	Update(ctx context.Context, userID int, dto application.UserDto) (application.UserDto, error)
	Delete(ctx context.Context, userID int) error
}

// UserHandler 暴露 /api/users 下的端点。
type UserHandler struct {
	service UserService
}

// NewUserHandler 创建用户 HTTP 处理器。
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes 在路由器上注册用户端点。
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.findAll)
		r.Post("/", h.create)
		r.Get("/username/{username}", h.findByUsername)
		r.Get("/{userId}", h.findByID)
		r.Put("/{userId}", h.update)
		r.Delete("/{userId}", h.delete)
	})
}

func (h *UserHandler) findAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.Collection(w, dtos)
}

func (h *UserHandler) findByID(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	dto, err := h.service.FindByID(r.Context(), userID)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *UserHandler) findByUsername(w http.ResponseWriter, r *http.Request) {
	dto, err := h.service.FindByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto application.UserDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid user payload"))
		return
	}
	saved, err := h.service.Create(r.Context(), dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	var dto application.UserDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		httpx.Error(r, w, apperr.InvalidInput("invalid user payload"))
		return
	}
	updated, err := h.service.Update(r.Context(), userID, dto)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	if err := h.service.Delete(r.Context(), userID); err != nil {
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
