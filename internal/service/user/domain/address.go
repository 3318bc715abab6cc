// internal/service/user/domain/address.go
package domain

// Address 是用户的收货地址。
type Address struct {
	AddressID   int
	UserID      int
	FullAddress string
	PostalCode  string
	City        string
}
