// internal/service/user/domain/repository.go
package domain

import "context"

// UserRepository 是用户的持久化端口。
// 读方法只返回持有凭证的用户；无凭证的行视同不存在。
type UserRepository interface {
	FindAllWithCredential(ctx context.Context) ([]*User, error)
	FindByID(ctx context.Context, userID int) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID int) error
}

// CredentialRepository 是凭证的只读端口。
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*Credential, error)
}

// AddressRepository 是地址的持久化端口。
type AddressRepository interface {
	FindAll(ctx context.Context) ([]*Address, error)
	FindByID(ctx context.Context, addressID int) (*Address, error)
	Save(ctx context.Context, address *Address) error
	Delete(ctx context.Context, addressID int) error
}
