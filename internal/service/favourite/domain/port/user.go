// internal/service/favourite/domain/port/user.go
package port

import "context"

// User 是用户服务返回的远程用户视图。
type User struct {
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UserService 抽象对用户服务的同步调用。
type UserService interface {
	Fetch(ctx context.Context, userID int) (*User, error)
}
