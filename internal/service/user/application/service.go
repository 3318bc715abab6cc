// internal/service/user/application/service.go
package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"emporium/internal/pkg/apperr"
	"emporium/internal/pkg/logger"
	"emporium/internal/service/user/domain"
)

// UserService 管理用户与凭证。用户在创建时总会得到一份凭证，
// 缺省用户名取 "firstname.lastname"，缺省口令等于用户名。
type UserService struct {
	users domain.UserRepository
}

// NewUserService 创建用户应用服务。
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// FindAll 列出所有持有凭证的用户。
func (s *UserService) FindAll(ctx context.Context) ([]UserDto, error) {
	users, err := s.users.FindAllWithCredential(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDto, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDto(u))
	}
	return dtos, nil
}

// FindByID 返回单个用户；无凭证的用户视同不存在。
func (s *UserService) FindByID(ctx context.Context, userID int) (UserDto, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return UserDto{}, err
	}
	return toUserDto(user), nil
}

// FindByUsername 按凭证用户名返回用户。
func (s *UserService) FindByUsername(ctx context.Context, username string) (UserDto, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return UserDto{}, err
	}
	return toUserDto(user), nil
}

// Create 创建用户并自动补齐凭证。
func (s *UserService) Create(ctx context.Context, dto UserDto) (UserDto, error) {
	if dto.FirstName == "" || dto.LastName == "" || dto.Email == "" {
		return UserDto{}, apperr.InvalidInput("firstName, lastName and email are required")
	}

	username := ""
	password := ""
	if dto.Credential != nil {
		username = dto.Credential.Username
		password = dto.Credential.Password
	}
	if username == "" {
		username = strings.ToLower(fmt.Sprintf("%s.%s", dto.FirstName, dto.LastName))
	}
	if password == "" {
		password = username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return UserDto{}, errors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		FirstName:  dto.FirstName,
		LastName:   dto.LastName,
		ImageURL:   dto.ImageURL,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Credential: domain.NewCredential(username, string(hash)),
	}
	if err := s.users.Save(ctx, user); err != nil {
		return UserDto{}, err
	}
	logger.Ctx(ctx).Info().
		Int("user_id", user.UserID).
		Str("username", username).
		Msg("user created")
	return toUserDto(user), nil
}

// Update 修改用户的画像字段，凭证保持不变。
func (s *UserService) Update(ctx context.Context, userID int, dto UserDto) (UserDto, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return UserDto{}, err
	}
	user.FirstName = dto.FirstName
	user.LastName = dto.LastName
	user.ImageURL = dto.ImageURL
	user.Email = dto.Email
	user.Phone = dto.Phone
	if err := s.users.Save(ctx, user); err != nil {
		return UserDto{}, err
	}
	return toUserDto(user), nil
}

// Delete 删除用户及其凭证。
func (s *UserService) Delete(ctx context.Context, userID int) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Ctx(ctx).Info().Int("user_id", userID).Msg("user deleted")
	return nil
}

// CredentialService 暴露凭证查询。
type CredentialService struct {
	credentials domain.CredentialRepository
}

// NewCredentialService 创建凭证应用服务。
func NewCredentialService(credentials domain.CredentialRepository) *CredentialService {
	return &CredentialService{credentials: credentials}
}

// FindByUsername 按用户名返回凭证。
func (s *CredentialService) FindByUsername(ctx context.Context, username string) (CredentialDto, error) {
	credential, err := s.credentials.FindByUsername(ctx, username)
	if err != nil {
		return CredentialDto{}, err
	}
	return toCredentialDto(credential), nil
}

// AddressService 是地址的 CRUD 应用服务。
type AddressService struct {
	addresses domain.AddressRepository
}

// NewAddressService 创建地址应用服务。
func NewAddressService(addresses domain.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

func (s *AddressService) FindAll(ctx context.Context) ([]AddressDto, error) {
	addresses, err := s.addresses.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]AddressDto, 0, len(addresses))
	for _, a := range addresses {
		dtos = append(dtos, toAddressDto(a))
	}
	return dtos, nil
}

func (s *AddressService) FindByID(ctx context.Context, addressID int) (AddressDto, error) {
	address, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		return AddressDto{}, err
	}
	return toAddressDto(address), nil
}

func (s *AddressService) Create(ctx context.Context, dto AddressDto) (AddressDto, error) {
	if dto.UserID == 0 {
		return AddressDto{}, apperr.InvalidInput("address must reference a user")
	}
	address := &domain.Address{
		UserID:      dto.UserID,
		FullAddress: dto.FullAddress,
		PostalCode:  dto.PostalCode,
		City:        dto.City,
	}
	if err := s.addresses.Save(ctx, address); err != nil {
		return AddressDto{}, err
	}
	return toAddressDto(address), nil
}

func (s *AddressService) Update(ctx context.Context, addressID int, dto AddressDto) (AddressDto, error) {
	address, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		return AddressDto{}, err
	}
	address.FullAddress = dto.FullAddress
	address.PostalCode = dto.PostalCode
	address.City = dto.City
	if err := s.addresses.Save(ctx, address); err != nil {
		return AddressDto{}, err
	}
	return toAddressDto(address), nil
}

func (s *AddressService) Delete(ctx context.Context, addressID int) error {
	return s.addresses.Delete(ctx, addressID)
}
