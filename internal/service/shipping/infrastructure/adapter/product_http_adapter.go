// internal/service/shipping/infrastructure/adapter/product_http_adapter.go
package adapter

import (
	"context"
	"fmt"

	"emporium/internal/pkg/httpclient"
	"emporium/internal/service/shipping/domain/port"
)

// ProductHTTPAdapter 通过商品服务的 HTTP 接口实现 port.ProductService。
type ProductHTTPAdapter struct {
	client  *httpclient.Client
	baseURL string
}

// NewProductHTTPAdapter 创建商品服务适配器。
func NewProductHTTPAdapter(client *httpclient.Client, baseURL string) *ProductHTTPAdapter {
	return &ProductHTTPAdapter{client: client, baseURL: baseURL}
}

func (a *ProductHTTPAdapter) Fetch(ctx context.Context, productID int) (*port.Product, error) {
	var product port.Product
	url := fmt.Sprintf("%s/api/products/%d", a.baseURL, productID)
	if err := a.client.Get(ctx, url, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
