// internal/service/order/infrastructure/adapter/user_http_adapter.go
package adapter

import (
	"context"
	"fmt"

	"emporium/internal/pkg/httpclient"
	"emporium/internal/service/order/domain/port"
)

// UserHTTPAdapter 实现 port.UserService，经由用户服务的 REST 接口取数。
type UserHTTPAdapter struct {
	client  *httpclient.Client
	baseURL string
}

// NewUserHTTPAdapter 创建用户服务适配器。
func NewUserHTTPAdapter(client *httpclient.Client, baseURL string) *UserHTTPAdapter {
	return &UserHTTPAdapter{client: client, baseURL: baseURL}
}

func (a *UserHTTPAdapter) Fetch(ctx context.Context, userID int) (*port.User, error) {
	var user port.User
	url := fmt.Sprintf("%s/api/users/%d", a.baseURL, userID)
	if err := a.client.Get(ctx, url, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
