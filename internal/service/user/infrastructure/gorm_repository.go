// internal/service/user/infrastructure/gorm_repository.go
package infrastructure

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"emporium/internal/pkg/apperr"
	"emporium/internal/service/user/domain"
)

// GormUserRepository 是 UserRepository 的 GORM 实现。
// 凭证存在性过滤在查询里完成：Joins 到 credentials 的 INNER JOIN
// 天然排除无凭证的用户。
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository 创建用户仓储。
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindAllWithCredential(ctx context.Context) ([]*domain.User, error) {
	var models []*UserModel
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN credentials ON credentials.user_id = users.user_id").
		Preload("Credential").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	users := make([]*domain.User, 0, len(models))
	for _, m := range models {
		users = append(users, toDomainUser(m))
	}
	return users, nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).
		Preload("Credential").
		First(&model, "user_id = ?", userID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user with id %d not found", userID)
		}
		return nil, errors.Wrapf(err, "failed to find user %d", userID)
	}
	if model.Credential == nil {
		return nil, apperr.NotFound("user with id %d not found", userID)
	}
	return toDomainUser(&model), nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var credential CredentialModel
	err := r.db.WithContext(ctx).
		First(&credential, "username = ?", username).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user with username %s not found", username)
		}
		return nil, errors.Wrapf(err, "failed to find credential for %s", username)
	}
	return r.FindByID(ctx, credential.UserID)
}

func (r *GormUserRepository) Save(ctx context.Context, user *domain.User) error {
	model := toUserModel(user)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(model).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to save user")
	}
	user.UserID = model.UserID
	if user.Credential != nil && model.Credential != nil {
		user.Credential.CredentialID = model.Credential.CredentialID
		user.Credential.UserID = model.UserID
	}
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, userID int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&CredentialModel{}).Error; err != nil {
			return errors.Wrapf(err, "failed to delete credential of user %d", userID)
		}
		result := tx.Where("user_id = ?", userID).Delete(&UserModel{})
		if result.Error != nil {
			return errors.Wrapf(result.Error, "failed to delete user %d", userID)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("user with id %d not found", userID)
		}
		return nil
	})
}

// GormCredentialRepository 是 CredentialRepository 的 GORM 实现。
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewGormCredentialRepository 创建凭证仓储。
func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

func (r *GormCredentialRepository) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	var model CredentialModel
	err := r.db.WithContext(ctx).First(&model, "username = ?", username).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("credential with username %s not found", username)
		}
		return nil, errors.Wrapf(err, "failed to find credential %s", username)
	}
	return toDomainCredential(&model), nil
}

// GormAddressRepository 是 AddressRepository 的 GORM 实现。
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository 创建地址仓储。
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) FindAll(ctx context.Context) ([]*domain.Address, error) {
	var models []*AddressModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}
	addresses := make([]*domain.Address, 0, len(models))
	for _, m := range models {
		addresses = append(addresses, toDomainAddress(m))
	}
	return addresses, nil
}

func (r *GormAddressRepository) FindByID(ctx context.Context, addressID int) (*domain.Address, error) {
	var model AddressModel
	err := r.db.WithContext(ctx).First(&model, "address_id = ?", addressID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("address with id %d not found", addressID)
		}
		return nil, errors.Wrapf(err, "failed to find address %d", addressID)
	}
	return toDomainAddress(&model), nil
}

func (r *GormAddressRepository) Save(ctx context.Context, address *domain.Address) error {
	model := toAddressModel(address)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return errors.Wrap(err, "failed to save address")
	}
	address.AddressID = model.AddressID
	return nil
}

func (r *GormAddressRepository) Delete(ctx context.Context, addressID int) error {
	result := r.db.WithContext(ctx).Where("address_id = ?", addressID).Delete(&AddressModel{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete address %d", addressID)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("address with id %d not found", addressID)
	}
	return nil
}
