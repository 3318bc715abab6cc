// internal/service/user/infrastructure/gorm_model.go
package infrastructure

// UserModel 是用户的 GORM 持久化模型。
type UserModel struct {
	UserID     int              `gorm:"column:user_id;primaryKey;autoIncrement"`
	FirstName  string           `gorm:"column:first_name"`
	LastName   string           `gorm:"column:last_name"`
	ImageURL   string           `gorm:"column:image_url"`
	Email      string           `gorm:"column:email"`
	Phone      string           `gorm:"column:phone"`
	Credential *CredentialModel `gorm:"foreignKey:UserID"`
}

// TableName 指定表名。
func (UserModel) TableName() string {
	return "users"
}

// CredentialModel 是凭证的 GORM 持久化模型，username 唯一。
type CredentialModel struct {
	CredentialID            int    `gorm:"column:credential_id;primaryKey;autoIncrement"`
	Username                string `gorm:"column:username;uniqueIndex;type:varchar(128)"`
	Password                string `gorm:"column:password"`
	Role                    string `gorm:"column:role;type:varchar(32)"`
	IsEnabled               bool   `gorm:"column:is_enabled"`
	IsAccountNonExpired     bool   `gorm:"column:is_account_non_expired"`
	IsAccountNonLocked      bool   `gorm:"column:is_account_non_locked"`
	IsCredentialsNonExpired bool   `gorm:"column:is_credentials_non_expired"`
	UserID                  int    `gorm:"column:user_id;index"`
}

// TableName 指定表名。
func (CredentialModel) TableName() string {
	return "credentials"
}

// AddressModel 是地址的 GORM 持久化模型。
type AddressModel struct {
	AddressID   int    `gorm:"column:address_id;primaryKey;autoIncrement"`
	UserID      int    `gorm:"column:user_id;index"`
	FullAddress string `gorm:"column:full_address"`
	PostalCode  string `gorm:"column:postal_code"`
	City        string `gorm:"column:city"`
}

// TableName 指定表名。
func (AddressModel) TableName() string {
	return "address"
}
