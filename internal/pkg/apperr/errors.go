// internal/pkg/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 划分了所有业务错误的类别。
// 每个类别对应唯一的 HTTP 状态码，由边界层统一映射，
// 领域层只负责在检测点抛出对应类别的错误。
type Kind int

const (
	// KindInvalidInput 缺失必填引用、非法字段或业务前置条件不满足
	KindInvalidInput Kind = iota + 1
	// KindNotFound 实体不存在，或被软删除过滤器排除
	KindNotFound
	// KindIllegalTransition 状态机违规：终态继续推进、操作顺序错误
	KindIllegalTransition
	// KindConflict 自然键重复
	KindConflict
	// KindUpstreamUnavailable 远程调用失败，不向调用方泄漏原始传输异常
	KindUpstreamUnavailable
)

// Error 是携带类别的业务错误。
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New 创建一个指定类别的错误。
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap 在保留原因链的同时给底层错误附加类别。
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

func InvalidInput(format string, args ...any) *Error {
	return New(KindInvalidInput, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

func IllegalTransition(format string, args ...any) *Error {
	return New(KindIllegalTransition, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflict, format, args...)
}

func Upstream(format string, args ...any) *Error {
	return New(KindUpstreamUnavailable, format, args...)
}

// IsKind 判断错误链中是否存在指定类别的业务错误。
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf 取出错误链中的类别；非业务错误返回 0。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// HTTPStatus 返回类别对应的 HTTP 状态码。
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidInput, KindIllegalTransition:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUpstreamUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// StatusText 返回错误响应体中 httpStatus 字段使用的文本。
func (k Kind) StatusText() string {
	switch k {
	case KindInvalidInput, KindIllegalTransition:
		return "BAD_REQUEST"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindUpstreamUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
