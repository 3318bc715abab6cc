// internal/service/payment/infrastructure/mapper.go
package infrastructure

import "emporium/internal/service/payment/domain"

func toDomainPayment(m *PaymentModel) *domain.Payment {
	return &domain.Payment{
		PaymentID:     m.PaymentID,
		IsPayed:       m.IsPayed,
		PaymentDate:   m.PaymentDate,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		OrderID:       m.OrderID,
	}
}

func toPaymentModel(p *domain.Payment) *PaymentModel {
	return &PaymentModel{
		PaymentID:     p.PaymentID,
		IsPayed:       p.IsPayed,
		PaymentDate:   p.PaymentDate,
		PaymentStatus: string(p.PaymentStatus),
		OrderID:       p.OrderID,
	}
}
