// internal/service/user/infrastructure/mapper.go
package infrastructure

import "emporium/internal/service/user/domain"

func toDomainUser(m *UserModel) *domain.User {
	user := &domain.User{
		UserID:    m.UserID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		ImageURL:  m.ImageURL,
		Email:     m.Email,
		Phone:     m.Phone,
	}
	if m.Credential != nil {
		user.Credential = toDomainCredential(m.Credential)
	}
	return user
}

func toDomainCredential(m *CredentialModel) *domain.Credential {
	return &domain.Credential{
		CredentialID:            m.CredentialID,
		Username:                m.Username,
		Password:                m.Password,
		Role:                    m.Role,
		IsEnabled:               m.IsEnabled,
		IsAccountNonExpired:     m.IsAccountNonExpired,
		IsAccountNonLocked:      m.IsAccountNonLocked,
		IsCredentialsNonExpired: m.IsCredentialsNonExpired,
		UserID:                  m.UserID,
	}
}

func toUserModel(u *domain.User) *UserModel {
	model := &UserModel{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		ImageURL:  u.ImageURL,
		Email:     u.Email,
		Phone:     u.Phone,
	}
	if u.Credential != nil {
		model.Credential = &CredentialModel{
			CredentialID:            u.Credential.CredentialID,
			Username:                u.Credential.Username,
			Password:                u.Credential.Password,
			Role:                    u.Credential.Role,
			IsEnabled:               u.Credential.IsEnabled,
			IsAccountNonExpired:     u.Credential.IsAccountNonExpired,
			IsAccountNonLocked:      u.Credential.IsAccountNonLocked,
			IsCredentialsNonExpired: u.Credential.IsCredentialsNonExpired,
			UserID:                  u.UserID,
		}
	}
	return model
}

func toDomainAddress(m *AddressModel) *domain.Address {
	return &domain.Address{
		AddressID:   m.AddressID,
		UserID:      m.UserID,
		FullAddress: m.FullAddress,
		PostalCode:  m.PostalCode,
		City:        m.City,
	}
}

func toAddressModel(a *domain.Address) *AddressModel {
	return &AddressModel{
		AddressID:   a.AddressID,
		UserID:      a.UserID,
		FullAddress: a.FullAddress,
		PostalCode:  a.PostalCode,
		City:        a.City,
	}
}
