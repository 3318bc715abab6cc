// internal/pkg/httpx/respond.go
package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/logger"
)

// collectionBody 是列表接口统一的响应信封。
type collectionBody struct {
	Collection any `json:"collection"`
}

// errorBody 是所有错误响应的统一结构，不泄漏堆栈。
type errorBody struct {
	Msg        string `json:"msg"`
	HTTPStatus string `json:"httpStatus"`
	Timestamp  string `json:"timestamp"`
}

// JSON 写出单实体响应。
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Collection 写出 {"collection": [...]} 信封。
func Collection(w http.ResponseWriter, items any) {
	JSON(w, http.StatusOK, collectionBody{Collection: items})
}

// Error 把业务错误按 apperr 类别映射为 HTTP 响应。
// 非 apperr 错误一律按 500 处理，响应体里只有通用消息。
func Error(r *http.Request, w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	status := kind.HTTPStatus()

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Ctx(r.Context()).Error().Err(err).Msg("unhandled error")
		msg = "internal server error"
	} else {
		logger.Ctx(r.Context()).Info().Err(err).Int("status", status).Msg("request rejected")
	}

	JSON(w, status, errorBody{
		Msg:        msg,
		HTTPStatus: kind.StatusText(),
		Timestamp:  time.Now().Format(time.RFC3339),
	})
}
