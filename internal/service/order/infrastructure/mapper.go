// internal/service/order/infrastructure/mapper.go
package infrastructure

import "emporium/internal/service/order/domain"

// ToDomainOrder 将数据库模型转换为领域模型。
func ToDomainOrder(m *OrderModel) *domain.Order {
	return &domain.Order{
		OrderID:   m.OrderID,
		OrderDate: m.OrderDate,
		OrderDesc: m.OrderDesc,
		OrderFee:  m.OrderFee,
		Status:    domain.OrderStatus(m.Status),
		IsActive:  m.IsActive,
		CartID:    m.CartID,
	}
}

// ToOrderModel 将领域模型转换为数据库模型。
func ToOrderModel(o *domain.Order) *OrderModel {
	return &OrderModel{
		OrderID:   o.OrderID,
		OrderDate: o.OrderDate,
		OrderDesc: o.OrderDesc,
		OrderFee:  o.OrderFee,
		Status:    string(o.Status),
		IsActive:  o.IsActive,
		CartID:    o.CartID,
	}
}

// ToDomainCart 将数据库模型转换为领域模型。
func ToDomainCart(m *CartModel) *domain.Cart {
	return &domain.Cart{
		CartID:   m.CartID,
		UserID:   m.UserID,
		IsActive: m.IsActive,
	}
}

// ToCartModel 将领域模型转换为数据库模型。
func ToCartModel(c *domain.Cart) *CartModel {
	return &CartModel{
		CartID:   c.CartID,
		UserID:   c.UserID,
		IsActive: c.IsActive,
	}
}
