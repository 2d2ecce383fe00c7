package services

import (
	"context"
	"log"

	"ticket-storefront/internal/status"
	"ticket-storefront/models"
	"ticket-storefront/monitoring"
	"ticket-storefront/store"
)

// CheckoutLine is one submitted cart line.
type CheckoutLine struct {
	TicketTypeID models.TicketTypeID `json:"ticket_type_id"`
	Quantity     int                 `json:"quantity"`
}

// OrderService runs checkout and the refund flow on top of the store.
type OrderService struct {
	store    *store.Store
	notifier Notifier
}

func NewOrderService(st *store.Store, notifier Notifier) *OrderService {
	return &OrderService{
		store:    st,
		notifier: notifier,
	}
}

// PlaceOrder validates the submitted lines, prices them with the cart
// arithmetic and hands the order to the store's cascading creator. The
// resulting ticket count equals the sum of submitted quantities.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID models.UserID, eventID models.EventID, lines []CheckoutLine, paymentMethod string) (*models.Order, error) {
	event := s.store.GetEventByID(eventID)
	if event == nil {
		return nil, status.ErrEventNotFound
	}

	cart := NewCart()
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		ticketType := s.store.GetTicketTypeByID(line.TicketTypeID)
		if ticketType == nil || ticketType.EventID != eventID {
			return nil, status.ErrTicketTypeNotFound
		}
		cart.AddItem(*ticketType, line.Quantity)
		items = append(items, models.OrderItem{
			TicketTypeID: ticketType.ID,
			Quantity:     line.Quantity,
			UnitPrice:    ticketType.Price,
		})
	}

	total, _ := cart.Total().Round(2).Float64()
	order := &models.Order{
		CustomerID:    customerID,
		EventID:       eventID,
		Items:         items,
		TotalAmount:   total,
		Status:        models.OrderStatusCompleted,
		PaymentMethod: paymentMethod,
	}
	s.store.CreateOrder(order)

	monitoring.TrackStoreOperation("create", "orders")
	monitoring.TrackOrderPlaced(order.TotalAmount)
	log.Printf("Order %s placed by %s for event %s (%.2f)", order.ID, customerID, eventID, order.TotalAmount)

	s.notifier.OrderPlaced(order)

	return order, nil
}

// RequestRefund opens a pending refund request over the full order amount.
// An order the customer does not own resolves the same as a missing one.
func (s *OrderService) RequestRefund(ctx context.Context, customerID models.UserID, orderID models.OrderID, reason string) (*models.RefundRequest, error) {
	order := s.store.GetOrderByID(orderID)
	if order == nil || order.CustomerID != customerID {
		return nil, status.ErrOrderNotFound
	}

	refund := s.store.CreateRefundRequest(&models.RefundRequest{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Reason:     reason,
		Amount:     order.TotalAmount,
	})
	monitoring.TrackStoreOperation("create", "refunds")
	return refund, nil
}

// ProcessRefund moves a refund request to the given status. Approval also
// flips the order to refunded; the refund record itself stamps ProcessedAt
// on every transition, terminal or not.
func (s *OrderService) ProcessRefund(ctx context.Context, refundID models.RefundID, newStatus string) (*models.RefundRequest, error) {
	refund := s.store.UpdateRefundStatus(refundID, newStatus)
	if refund == nil {
		return nil, status.ErrRefundNotFound
	}

	if newStatus == models.RefundStatusApproved || newStatus == models.RefundStatusCompleted {
		s.store.UpdateOrderStatus(refund.OrderID, models.OrderStatusRefunded)
	}

	monitoring.TrackStoreOperation("update", "refunds")
	s.notifier.RefundProcessed(refund)
	return refund, nil
}
