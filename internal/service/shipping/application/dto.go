// internal/service/shipping/application/dto.go
package application

import (
	"emporium/internal/service/shipping/domain"
	"emporium/internal/service/shipping/domain/port"
)

// OrderItemDto 是发货条目的传输对象。
type OrderItemDto struct {
	OrderID         int           `json:"orderId"`
	ProductID       int           `json:"productId"`
	OrderedQuantity int           `json:"orderedQuantity"`
	Product         *port.Product `json:"product,omitempty"`
	Order           *port.Order   `json:"order,omitempty"`
}

func toOrderItemDto(i *domain.OrderItem) OrderItemDto {
	return OrderItemDto{
		OrderID:         i.OrderID,
		ProductID:       i.ProductID,
		OrderedQuantity: i.OrderedQuantity,
	}
}
