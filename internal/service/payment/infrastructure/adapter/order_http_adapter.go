// internal/service/payment/infrastructure/adapter/order_http_adapter.go
package adapter

import (
	"context"
	"fmt"

	"emporium/internal/pkg/httpclient"
	"emporium/internal/service/payment/domain/port"
)

// OrderHTTPAdapter 通过订单服务的 HTTP 接口实现 port.OrderService。
type OrderHTTPAdapter struct {
	client  *httpclient.Client
	baseURL string
}

// NewOrderHTTPAdapter 创建订单服务适配器。
func NewOrderHTTPAdapter(client *httpclient.Client, baseURL string) *OrderHTTPAdapter {
	return &OrderHTTPAdapter{client: client, baseURL: baseURL}
}

func (a *OrderHTTPAdapter) Fetch(ctx context.Context, orderID int) (*port.Order, error) {
	var order port.Order
	url := fmt.Sprintf("%s/api/orders/%d", a.baseURL, orderID)
	if err := a.client.Get(ctx, url, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (a *OrderHTTPAdapter) AdvanceStatus(ctx context.Context, orderID int) error {
	url := fmt.Sprintf("%s/api/orders/%d/status", a.baseURL, orderID)
	return a.client.PatchStatus(ctx, url)
}
