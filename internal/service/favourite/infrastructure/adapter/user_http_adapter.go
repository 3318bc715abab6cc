// internal/service/favourite/infrastructure/adapter/user_http_adapter.go
package adapter

import (
	"context"
	"fmt"

	"emporium/internal/pkg/httpclient"
	"emporium/internal/service/favourite/domain/port"
)

// UserHTTPAdapter 通过用户服务的 HTTP 接口实现 port.UserService。
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
