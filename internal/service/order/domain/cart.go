// internal/service/order/domain/cart.go
package domain

// Cart 锚定订单的购物车。归属用户存在用户服务，这里只保存引用。
type Cart struct {
	CartID   int
	UserID   int
	IsActive bool
}
