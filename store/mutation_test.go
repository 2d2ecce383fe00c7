package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-storefront/models"
)

func TestStore_UpdateUserStatusAndRole(t *testing.T) {
	s := newTestStore(t)

	user := s.UpdateUserStatus("user-2", models.UserStatusBlocked)
	require.NotNil(t, user)
	assert.Equal(t, models.UserStatusBlocked, user.Status)
	assert.Equal(t, models.UserStatusBlocked, s.GetUserByID("user-2").Status)

	user = s.UpdateUserRole("user-2", models.RoleOrganizer)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleOrganizer, user.Role)
}

func TestStore_UpdateMissingIDIsSilentNoop(t *testing.T) {
	s := newTestStore(t)
	before := len(s.GetAllUsers())

	assert.Nil(t, s.UpdateUserStatus("user-9999", models.UserStatusBlocked))
	assert.Nil(t, s.UpdateUserRole("user-9999", models.RoleAdmin))
	assert.Nil(t, s.UpdateOrganizerVerificationStatus("user-9999", models.VerificationVerified))
	assert.Nil(t, s.UpdateEventStatus("event-9999", models.EventStatusCancelled))
	assert.Nil(t, s.UpdateOrderStatus("order-9999", models.OrderStatusRefunded))
	assert.Nil(t, s.UpdateTicketCheckIn("ticket-9999", true))
	assert.Nil(t, s.UpdateRefundStatus("refund-9999", models.RefundStatusApproved))

	assert.Len(t, s.GetAllUsers(), before)
}

func TestStore_UpdateOrderStatusStampsUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	order := s.GetAllOrders()[0]
	before := order.UpdatedAt

	updated := s.UpdateOrderStatus(order.ID, models.OrderStatusRefunded)
	require.NotNil(t, updated)
	assert.Equal(t, models.OrderStatusRefunded, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(before))
	assert.WithinDuration(t, time.Now(), updated.UpdatedAt, time.Second)
}

func TestStore_TicketCheckInDerivesState(t *testing.T) {
	s := newTestStore(t)
	ticket := s.GetAllTickets()[0]

	checked := s.UpdateTicketCheckIn(ticket.ID, true)
	require.NotNil(t, checked)
	assert.True(t, checked.CheckedIn)
	assert.Equal(t, models.TicketStatusUsed, checked.Status)
	require.NotNil(t, checked.CheckedInAt)
	assert.WithinDuration(t, time.Now(), *checked.CheckedInAt, time.Second)

	// Checking in twice leaves the ticket in the same final state.
	again := s.UpdateTicketCheckIn(ticket.ID, true)
	require.NotNil(t, again)
	assert.True(t, again.CheckedIn)
	assert.Equal(t, models.TicketStatusUsed, again.Status)
	assert.NotNil(t, again.CheckedInAt)

	// Turning it off always clears the timestamp and restores valid.
	cleared := s.UpdateTicketCheckIn(ticket.ID, false)
	require.NotNil(t, cleared)
	assert.False(t, cleared.CheckedIn)
	assert.Equal(t, models.TicketStatusValid, cleared.Status)
	assert.Nil(t, cleared.CheckedInAt)
}

func TestStore_UpdateRefundStatusAlwaysStampsProcessedAt(t *testing.T) {
	s := newTestStore(t)
	refund := s.GetAllRefunds()[0]

	// Even a transition to the non-terminal pending status stamps
	// ProcessedAt. Observed storefront behavior, preserved deliberately.
	updated := s.UpdateRefundStatus(refund.ID, models.RefundStatusPending)
	require.NotNil(t, updated)
	require.NotNil(t, updated.ProcessedAt)
	first := *updated.ProcessedAt

	updated = s.UpdateRefundStatus(refund.ID, models.RefundStatusApproved)
	require.NotNil(t, updated)
	require.NotNil(t, updated.ProcessedAt)
	assert.False(t, updated.ProcessedAt.Before(first))
}

func TestStore_CreateEventAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)
	baseline := len(s.GetAllEvents())

	event := s.CreateEvent(&models.Event{
		Name:        "Launch Party",
		OrganizerID: s.GetAllOrganizers()[0].ID,
		Date:        time.Now().AddDate(0, 1, 0),
		Location:    "Grand Arena, New York",
		Category:    "Music",
		Status:      models.EventStatusActive,
		TicketTypes: []models.TicketType{
			{Name: "Regular", Price: 40, Quantity: 100, Type: models.TicketTierRegular},
		},
	})

	assert.Equal(t, models.EventID("event-7"), event.ID)
	assert.Len(t, s.GetAllEvents(), baseline+1)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, time.Second)

	// Tiers are re-keyed under the new event id.
	require.Len(t, event.TicketTypes, 1)
	assert.Equal(t, models.TicketTypeID("event-7-tt-1"), event.TicketTypes[0].ID)
	assert.Equal(t, event.ID, event.TicketTypes[0].EventID)
	assert.Same(t, &event.TicketTypes[0], s.GetTicketTypeByID("event-7-tt-1"))
}

func TestStore_CreateOrderCascadesTickets(t *testing.T) {
	s := newTestStore(t)
	event := s.GetAllEvents()[0]
	tier := event.TicketTypes[0]

	ticketBaseline := len(s.GetAllTickets())

	order := s.CreateOrder(&models.Order{
		CustomerID: "user-3",
		EventID:    event.ID,
		Items: []models.OrderItem{
			{TicketTypeID: tier.ID, Quantity: 3, UnitPrice: tier.Price},
		},
		TotalAmount:   tier.Price * 3 * 1.10,
		Status:        models.OrderStatusCompleted,
		PaymentMethod: models.PaymentPayPal,
	})

	require.NotNil(t, order)
	assert.NotEmpty(t, order.ID)
	assert.WithinDuration(t, time.Now(), order.UpdatedAt, time.Second)

	// One standalone ticket per purchased unit, valid and not checked in,
	// each with a distinct QR token.
	tickets := s.GetTicketsByOrderID(order.ID)
	require.Len(t, tickets, 3)
	assert.Len(t, s.GetAllTickets(), ticketBaseline+3)

	seenQR := map[string]bool{}
	for _, ticket := range tickets {
		assert.Equal(t, order.ID, ticket.OrderID)
		assert.Equal(t, event.ID, ticket.EventID)
		assert.Equal(t, tier.ID, ticket.TicketTypeID)
		assert.Equal(t, models.TicketStatusValid, ticket.Status)
		assert.False(t, ticket.CheckedIn)
		assert.Nil(t, ticket.CheckedInAt)
		require.NotEmpty(t, ticket.QRCode)
		assert.False(t, seenQR[ticket.QRCode])
		seenQR[ticket.QRCode] = true
	}
}

func TestStore_CreateRefundRequestStartsPending(t *testing.T) {
	s := newTestStore(t)
	order := s.GetAllOrders()[0]

	refund := s.CreateRefundRequest(&models.RefundRequest{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Reason:     "Unable to attend",
		Amount:     order.TotalAmount,
	})

	require.NotNil(t, refund)
	assert.Equal(t, models.RefundStatusPending, refund.Status)
	assert.Nil(t, refund.ProcessedAt)
	assert.WithinDuration(t, time.Now(), refund.RequestedAt, time.Second)
	assert.Same(t, refund, s.GetRefundByID(refund.ID))
}

func TestStore_CreateUserAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	baseline := len(s.GetAllUsers())

	user := s.CreateUser(&models.User{
		Name:   "New Customer",
		Email:  "new.customer@example.com",
		Role:   models.RoleCustomer,
		Status: models.UserStatusActive,
	})

	assert.NotEmpty(t, user.ID)
	assert.WithinDuration(t, time.Now(), user.CreatedAt, time.Second)
	assert.Len(t, s.GetAllUsers(), baseline+1)
	assert.Same(t, user, s.GetUserByEmail("new.customer@example.com"))
}
