package store

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ticket-storefront/models"
	"ticket-storefront/utils"
)

// Seed data pools. Small on purpose: the store holds tens of records and
// every query is a linear scan.
var (
	firstNames = []string{
		"Ava", "Liam", "Noah", "Mia", "Ethan", "Sofia", "Lucas", "Emma",
		"Oliver", "Chloe", "Mason", "Isla", "Elijah", "Zoe", "James", "Nora",
	}

	lastNames = []string{
		"Nguyen", "Garcia", "Smith", "Patel", "Kim", "Johnson", "Brown",
		"Martinez", "Lee", "Walker", "Anderson", "Clark",
	}

	businessNames = []string{
		"Starlight Productions", "Summit Live", "Northside Events Co",
		"Velvet Stage Group", "Brightline Entertainment", "Harbor City Shows",
		"Pulse Promotions", "Golden Gate Live",
	}

	eventNames = []string{
		"Summer Music Festival", "Tech Innovators Summit", "City Food & Wine Fair",
		"Indie Film Showcase", "Championship Basketball Night", "Jazz Under the Stars",
		"Startup Pitch Marathon", "Contemporary Art Expo", "Comedy Club Special",
		"Marathon Kickoff Concert", "Winter Craft Market", "Rock Legends Reunion",
	}

	eventCategories = []string{
		"Music", "Sports", "Technology", "Arts & Theatre", "Food & Drink", "Business",
	}

	eventLocations = []string{
		"Grand Arena, New York",
		"Moscone Center, San Francisco",
		"Riverside Amphitheater, Austin",
		"Harbor Convention Hall, Seattle",
		"The Velvet Room, Chicago",
		"Online - Livestream",
	}

	refundReasons = []string{
		"Unable to attend",
		"Bought duplicate tickets",
		"Event date conflicts with travel",
		"Purchased by mistake",
	}
)

// Every seeded account shares this password so the demo login flow works
// out of the box. The hash is computed once per reset at min cost; real
// registrations go through the auth service at default cost.
const seedPassword = "password123"

// seed populates all six collections. Caller holds the write lock.
func (s *Store) seed() {
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.MinCost)

	s.seedUsers(string(passwordHash))
	s.seedOrganizers(string(passwordHash))
	s.seedEvents()
	s.seedOrders()
	s.seedRefunds()
}

func (s *Store) seedUsers(passwordHash string) {
	// user-1 is always the admin account.
	admin := &models.User{
		ID:           models.UserID("user-1"),
		Name:         "Admin",
		Email:        "admin@ticketstore.dev",
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
		CreatedAt:    s.now().AddDate(0, 0, -90),
	}
	s.users = append(s.users, admin)

	for i := 0; i < s.cfg.SeedCustomers; i++ {
		name := s.pick(firstNames) + " " + s.pick(lastNames)
		user := &models.User{
			ID:           models.UserID(fmt.Sprintf("user-%d", len(s.users)+1)),
			Name:         name,
			Email:        s.emailFor(name, len(s.users)+1),
			PasswordHash: passwordHash,
			Role:         models.RoleCustomer,
			Status:       models.UserStatusActive,
			CreatedAt:    s.pastTime(60),
		}
		// A couple of blocked accounts make the admin dashboard non-trivial.
		if s.rng.Intn(10) == 0 {
			user.Status = models.UserStatusBlocked
		}
		s.users = append(s.users, user)
	}
}

// seedOrganizers creates one User row and one OrganizerProfile row per
// organizer, sharing the same id. The profile is a side-table keyed by the
// user id, not an independent identity.
func (s *Store) seedOrganizers(passwordHash string) {
	for i := 0; i < s.cfg.SeedOrganizers; i++ {
		id := models.UserID(fmt.Sprintf("user-%d", len(s.users)+1))
		name := s.pick(firstNames) + " " + s.pick(lastNames)
		createdAt := s.pastTime(120)

		user := &models.User{
			ID:           id,
			Name:         name,
			Email:        s.emailFor(name, len(s.users)+1),
			PasswordHash: passwordHash,
			Role:         models.RoleOrganizer,
			Status:       models.UserStatusActive,
			CreatedAt:    createdAt,
		}
		s.users = append(s.users, user)

		verification := models.VerificationVerified
		switch s.rng.Intn(5) {
		case 0:
			verification = models.VerificationPending
		case 1:
			verification = models.VerificationRejected
		}

		profile := &models.OrganizerProfile{
			ID:                 id,
			Name:               name,
			Email:              user.Email,
			BusinessName:       s.pick(businessNames),
			VerificationStatus: verification,
			Documents: []models.Document{
				{
					Name:       "business-license.pdf",
					URL:        fmt.Sprintf("/documents/%s/business-license.pdf", id),
					UploadedAt: createdAt,
				},
			},
			CommissionRate: 0.05 + float64(s.rng.Intn(11))/100, // 5%..15%
			CreatedAt:      createdAt,
		}
		s.organizers = append(s.organizers, profile)
	}
}

func (s *Store) seedEvents() {
	if len(s.organizers) == 0 {
		return
	}
	for i := 0; i < s.cfg.SeedEvents; i++ {
		id := models.EventID(fmt.Sprintf("event-%d", len(s.events)+1))
		name := eventNames[i%len(eventNames)]
		category := s.pick(eventCategories)

		event := &models.Event{
			ID:          id,
			Name:        name,
			Description: fmt.Sprintf("%s - a %s experience you will not forget.", name, strings.ToLower(category)),
			OrganizerID: s.organizers[s.rng.Intn(len(s.organizers))].ID,
			Date:        s.now().AddDate(0, 0, s.rng.Intn(120)-30),
			Location:    s.pick(eventLocations),
			Category:    category,
			Status:      models.EventStatusActive,
			CreatedAt:   s.pastTime(45),
		}
		if s.rng.Intn(8) == 0 {
			event.Status = models.EventStatusInactive
		}

		event.TicketTypes = s.generateTicketTypes(id)
		for _, tt := range event.TicketTypes {
			event.TotalAttendees += tt.Sold
		}

		s.events = append(s.events, event)
	}
}

// generateTicketTypes builds two or three priced tiers. An early-bird tier
// is occasionally free, which feeds the free-events filter.
func (s *Store) generateTicketTypes(eventID models.EventID) []models.TicketType {
	base := float64(20 + s.rng.Intn(8)*10)

	tiers := []models.TicketType{
		{Name: "Early Bird", Type: models.TicketTierEarlyBird, Price: roundCents(base * 0.75)},
		{Name: "Regular", Type: models.TicketTierRegular, Price: base},
		{Name: "VIP", Type: models.TicketTierVIP, Price: roundCents(base * 2.5)},
	}
	if s.rng.Intn(6) == 0 {
		tiers[0].Price = 0
	}
	if s.rng.Intn(4) == 0 {
		tiers = tiers[1:] // no early-bird tier
	}

	out := make([]models.TicketType, 0, len(tiers))
	for i, tier := range tiers {
		tier.ID = models.TicketTypeID(fmt.Sprintf("%s-tt-%d", eventID, i+1))
		tier.EventID = eventID
		tier.Quantity = 50 + s.rng.Intn(10)*50
		tier.Sold = s.rng.Intn(tier.Quantity + 1)
		out = append(out, tier)
	}
	return out
}

func (s *Store) seedOrders() {
	customers := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Role == models.RoleCustomer {
			customers = append(customers, u)
		}
	}
	if len(customers) == 0 || len(s.events) == 0 {
		return
	}

	statuses := []string{
		models.OrderStatusCompleted, models.OrderStatusCompleted,
		models.OrderStatusCompleted, models.OrderStatusPending,
		models.OrderStatusRefunded, models.OrderStatusCancelled,
	}
	methods := []string{
		models.PaymentCreditCard, models.PaymentDebitCard,
		models.PaymentPayPal, models.PaymentBankTransfer,
	}

	for i := 0; i < s.cfg.SeedOrders; i++ {
		event := s.events[s.rng.Intn(len(s.events))]
		customer := customers[s.rng.Intn(len(customers))]

		items := s.generateOrderItems(event)
		createdAt := s.pastTime(30)

		order := &models.Order{
			CustomerID:    customer.ID,
			EventID:       event.ID,
			Items:         items,
			TotalAmount:   orderTotal(items),
			Status:        statuses[s.rng.Intn(len(statuses))],
			PaymentMethod: methods[s.rng.Intn(len(methods))],
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		}

		// Reuse the cascading creator so seeded orders issue tickets the
		// same way checkout does.
		s.createOrderLocked(order)
	}
}

func (s *Store) generateOrderItems(event *models.Event) []models.OrderItem {
	count := 1 + s.rng.Intn(2)
	items := make([]models.OrderItem, 0, count)
	seen := map[models.TicketTypeID]bool{}

	for len(items) < count {
		tt := event.TicketTypes[s.rng.Intn(len(event.TicketTypes))]
		if seen[tt.ID] {
			break
		}
		seen[tt.ID] = true
		items = append(items, models.OrderItem{
			TicketTypeID: tt.ID,
			Quantity:     1 + s.rng.Intn(3),
			UnitPrice:    tt.Price,
		})
	}
	return items
}

func (s *Store) seedRefunds() {
	if len(s.orders) == 0 {
		return
	}

	statuses := []string{
		models.RefundStatusPending, models.RefundStatusApproved,
		models.RefundStatusRejected, models.RefundStatusCompleted,
	}

	for i := 0; i < s.cfg.SeedRefunds; i++ {
		order := s.orders[s.rng.Intn(len(s.orders))]
		requestedAt := order.CreatedAt.Add(time.Duration(1+s.rng.Intn(72)) * time.Hour)

		refund := &models.RefundRequest{
			ID:          models.RefundID(fmt.Sprintf("refund-%d", len(s.refunds)+1)),
			OrderID:     order.ID,
			CustomerID:  order.CustomerID,
			Reason:      s.pick(refundReasons),
			Status:      statuses[s.rng.Intn(len(statuses))],
			Amount:      order.TotalAmount,
			RequestedAt: requestedAt,
		}
		if refund.Status != models.RefundStatusPending {
			processedAt := requestedAt.Add(time.Duration(1+s.rng.Intn(48)) * time.Hour)
			refund.ProcessedAt = &processedAt
		}
		s.refunds = append(s.refunds, refund)
	}
}

func (s *Store) pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// pastTime returns a time up to maxDays in the past, hour-granular.
func (s *Store) pastTime(maxDays int) time.Time {
	hours := s.rng.Intn(maxDays * 24)
	return s.now().Add(-time.Duration(hours) * time.Hour)
}

func (s *Store) emailFor(name string, n int) string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s.%d@example.com", slug, n)
}

func (s *Store) qrToken() string {
	code, _ := utils.GenerateCode(8)
	return code
}

// orderTotal applies the storefront fee on top of the line subtotal, the
// same arithmetic the cart uses at checkout.
func orderTotal(items []models.OrderItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return roundCents(subtotal * 1.10)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
