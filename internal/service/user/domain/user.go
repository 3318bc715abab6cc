// internal/service/user/domain/user.go
package domain

// User 是用户实体。一个用户至多持有一份凭证；
// 没有凭证的用户对读路径不可见。
type User struct {
	UserID     int
	FirstName  string
	LastName   string
	ImageURL   string
	Email      string
	Phone      string
	Credential *Credential
}

// Credential 是登录凭证。Password 存 bcrypt 哈希，永不存明文。
type Credential struct {
	CredentialID            int
	Username                string
	Password                string
	Role                    string
	IsEnabled               bool
	IsAccountNonExpired     bool
	IsAccountNonLocked      bool
	IsCredentialsNonExpired bool
	UserID                  int
}

// RoleUser 是新建凭证的默认角色。
const RoleUser = "ROLE_USER"

// NewCredential 创建一份启用状态的凭证，password 必须已经是哈希。
func NewCredential(username, hashedPassword string) *Credential {
	return &Credential{
		Username:                username,
		Password:                hashedPassword,
		Role:                    RoleUser,
		IsEnabled:               true,
		IsAccountNonExpired:     true,
		IsAccountNonLocked:      true,
		IsCredentialsNonExpired: true,
	}
}
