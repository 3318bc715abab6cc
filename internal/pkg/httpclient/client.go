// internal/pkg/httpclient/client.go
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"emporium/internal/pkg/apperr"
)

// Client 是服务间同步查询用的 HTTP 客户端。
// 失败以类型化错误暴露：404 映射为 apperr.KindNotFound，
// 传输失败和其余非 2xx 映射为 apperr.KindUpstreamUnavailable。
// 不做重试，不设固定超时，截止时间完全由调用方传入的 context 控制；
// 由各调用点自行决定失败是容忍（读列表）还是致命（单读/写）。
type Client struct {
	Tracer     trace.Tracer
	HTTPClient *http.Client
}

// NewClient 创建一个可复用的客户端实例。
func NewClient(tracer trace.Tracer) *Client {
	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
	}
	return &Client{
		Tracer:     tracer,
		HTTPClient: httpClient,
	}
}

// Get 按 id 拉取远程实体并解码进 out。
func (c *Client) Get(ctx context.Context, rawURL string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.KindUpstreamUnavailable, err, "decode response from %s", rawURL)
	}
	return nil
}

// PatchStatus 发送无请求体的 PATCH，由服务端自行推进到下一个状态。
// PATCH 只是触发器，不携带数据。
func (c *Client) PatchStatus(ctx context.Context, rawURL string) error {
	resp, err := c.do(ctx, http.MethodPatch, rawURL)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse url %s", rawURL)
	}
	spanName := fmt.Sprintf("call-%s", strings.Split(parsedURL.Host, ":")[0])

	ctx, span := c.Tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrapf(err, "build %s request for %s", method, rawURL)
	}

	span.SetAttributes(
		attribute.String("http.url", rawURL),
		attribute.String("http.method", method),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, apperr.Wrap(apperr.KindUpstreamUnavailable, err, "call %s %s", method, rawURL)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		notFound := apperr.NotFound("remote entity at %s not found", rawURL)
		span.SetStatus(codes.Error, notFound.Error())
		return nil, notFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		status := resp.Status
		resp.Body.Close()
		unavailable := apperr.Upstream("service at %s returned status %s", rawURL, status)
		span.RecordError(unavailable)
		span.SetStatus(codes.Error, unavailable.Error())
		return nil, unavailable
	}
	return resp, nil
}
