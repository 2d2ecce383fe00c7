package store

import (
	"math/rand"
	"sync"
	"time"

	"ticket-storefront/config"
	"ticket-storefront/models"
)

// Store is the single source of truth for all storefront records. All six
// collections live in memory, are seeded on New and regenerated on Reset;
// nothing is ever deleted. Collections are only reachable through the
// exported query and mutation methods.
//
// The mutex keeps the cascading order->tickets create atomic with respect
// to every other operation; within one lock acquisition nothing can observe
// the orders collection updated but the tickets collection not yet updated.
type Store struct {
	mu sync.RWMutex

	users      []*models.User
	organizers []*models.OrganizerProfile
	events     []*models.Event
	orders     []*models.Order
	tickets    []*models.Ticket
	refunds    []*models.RefundRequest

	rng *rand.Rand
	cfg *config.Config

	// now is swappable so tests can pin time-dependent fields.
	now func() time.Time
}

// New builds a store and seeds all six collections from the configured
// pool sizes. A zero SeedRandom derives the RNG seed from the wall clock.
func New(cfg *config.Config) *Store {
	s := &Store{
		cfg: cfg,
		now: time.Now,
	}
	s.Reset()
	return s
}

// Reset discards every collection and regenerates the seed data. It is a
// full barrier: no record or id from a prior generation survives. Tests
// rely on this for isolation.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := s.cfg.SeedRandom
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))

	s.users = nil
	s.organizers = nil
	s.events = nil
	s.orders = nil
	s.tickets = nil
	s.refunds = nil

	s.seed()
}
