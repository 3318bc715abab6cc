// internal/service/shipping/infrastructure/adapter/order_http_adapter.go
package adapter

import (
	"context"
	"fmt"

	"emporium/internal/pkg/httpclient"
	"emporium/internal/service/shipping/domain/port"
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
