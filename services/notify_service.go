package services

import (
	"log"

	pubnub "github.com/pubnub/go"

	"ticket-storefront/models"
	"ticket-storefront/utils"
)

// Notifier pushes storefront events to the customer's realtime channel.
type Notifier interface {
	OrderPlaced(order *models.Order)
	RefundProcessed(refund *models.RefundRequest)
}

// PubNubNotifier publishes to per-user channels. Publishes run behind a
// circuit breaker so a flapping realtime backend cannot slow checkout.
type PubNubNotifier struct {
	pubnub  *pubnub.PubNub
	breaker *utils.CircuitBreaker
}

func NewPubNubNotifier(pn *pubnub.PubNub) *PubNubNotifier {
	return &PubNubNotifier{
		pubnub:  pn,
		breaker: utils.NewCircuitBreaker("pubnub"),
	}
}

// notifyChannel is the customer's realtime channel. User ids already
// carry the user- prefix, so the id is the channel name.
func notifyChannel(id models.UserID) string {
	return id.String()
}

func (n *PubNubNotifier) OrderPlaced(order *models.Order) {
	n.publish(notifyChannel(order.CustomerID), map[string]interface{}{
		"type":         "order_placed",
		"order_id":     order.ID,
		"event_id":     order.EventID,
		"total_amount": order.TotalAmount,
	})
}

func (n *PubNubNotifier) RefundProcessed(refund *models.RefundRequest) {
	n.publish(notifyChannel(refund.CustomerID), map[string]interface{}{
		"type":      "refund_processed",
		"refund_id": refund.ID,
		"order_id":  refund.OrderID,
		"status":    refund.Status,
		"amount":    refund.Amount,
	})
}

func (n *PubNubNotifier) publish(channel string, message map[string]interface{}) {
	err := n.breaker.Execute(func() error {
		_, _, err := n.pubnub.Publish().
			Channel(channel).
			Message(message).
			Execute()
		return err
	})
	if err != nil {
		log.Printf("Error publishing notification to %s: %v", channel, err)
	}
}

// NoopNotifier is used in tests and when PubNub keys are not configured.
type NoopNotifier struct{}

func (NoopNotifier) OrderPlaced(*models.Order)             {}
func (NoopNotifier) RefundProcessed(*models.RefundRequest) {}
