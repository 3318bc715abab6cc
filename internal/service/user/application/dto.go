// internal/service/user/application/dto.go
package application

import "emporium/internal/service/user/domain"

// CredentialDto 是凭证的传输对象。Password 只在入参里使用，
// 出参永不回传哈希。
type CredentialDto struct {
	CredentialID            int    `json:"credentialId,omitempty"`
	Username                string `json:"username"`
	Password                string `json:"password,omitempty"`
	Role                    string `json:"role,omitempty"`
	IsEnabled               bool   `json:"isEnabled"`
	IsAccountNonExpired     bool   `json:"isAccountNonExpired"`
	IsAccountNonLocked      bool   `json:"isAccountNonLocked"`
	IsCredentialsNonExpired bool   `json:"isCredentialsNonExpired"`
}

// UserDto 是用户的传输对象。
type UserDto struct {
	UserID     int            `json:"userId,omitempty"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	ImageURL   string         `json:"imageUrl,omitempty"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Credential *CredentialDto `json:"credential,omitempty"`
}

// AddressDto 是地址的传输对象。
type AddressDto struct {
	AddressID   int    `json:"addressId,omitempty"`
	UserID      int    `json:"userId"`
	FullAddress string `json:"fullAddress"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
}

func toUserDto(u *domain.User) UserDto {
	dto := UserDto{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		ImageURL:  u.ImageURL,
		Email:     u.Email,
		Phone:     u.Phone,
	}
	if u.Credential != nil {
		dto.Credential = &CredentialDto{
			CredentialID:            u.Credential.CredentialID,
			Username:                u.Credential.Username,
			Role:                    u.Credential.Role,
			IsEnabled:               u.Credential.IsEnabled,
			IsAccountNonExpired:     u.Credential.IsAccountNonExpired,
			IsAccountNonLocked:      u.Credential.IsAccountNonLocked,
			IsCredentialsNonExpired: u.Credential.IsCredentialsNonExpired,
		}
	}
	return dto
}

func toCredentialDto(c *domain.Credential) CredentialDto {
	return CredentialDto{
		CredentialID:            c.CredentialID,
		Username:                c.Username,
		Role:                    c.Role,
		IsEnabled:               c.IsEnabled,
		IsAccountNonExpired:     c.IsAccountNonExpired,
		IsAccountNonLocked:      c.IsAccountNonLocked,
		IsCredentialsNonExpired: c.IsCredentialsNonExpired,
	}
}

func toAddressDto(a *domain.Address) AddressDto {
	return AddressDto{
		AddressID:   a.AddressID,
		UserID:      a.UserID,
		FullAddress: a.FullAddress,
		PostalCode:  a.PostalCode,
		City:        a.City,
	}
}
