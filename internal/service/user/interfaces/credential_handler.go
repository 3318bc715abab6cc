// internal/service/user/interfaces/credential_handler.go
package interfaces

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"emporium/internal/pkg/httpx"
	"emporium/internal/service/user/application"
)

// CredentialService 是 HTTP 层对凭证应用服务的依赖面。
type CredentialService interface {
	FindByUsername(ctx context.Context, username string) (application.CredentialDto, error)
}

// CredentialHandler 暴露 /api/credentials 下的端点。
type CredentialHandler struct {
	service CredentialService
}

// NewCredentialHandler 创建凭证 HTTP 处理器。
func NewCredentialHandler(service CredentialService) *CredentialHandler {
	return &CredentialHandler{service: service}
}

// RegisterRoutes 在路由器上注册凭证端点。
func (h *CredentialHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/credentials", func(r chi.Router) {
		r.Get("/username/{username}", h.findByUsername)
	})
}

func (h *CredentialHandler) findByUsername(w http.ResponseWriter, r *http.Request) {
	dto, err := h.service.FindByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dto)
}
