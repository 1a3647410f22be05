package entitlement

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pmladder/internal/catalog"
)

// StatusCompleted is the only order status in this build: purchases
// always succeed once a learner is signed in.
const StatusCompleted = "completed"

// Order is an immutable purchase receipt.
type Order struct {
	ID         string
	LevelID    string
	LevelTitle string
	Price      int
	Date       time.Time
	Status     string
}

// Store tracks which levels the current learner session has unlocked,
// plus the session's order history (most recent first). It is scoped
// to a single in-memory session; logout resets it to the defaults.
type Store struct {
	cat      *catalog.Catalog
	defaults []string
	unlocked map[string]bool
	orders   []Order
}

// NewStore creates a store with the given default unlocked level ids.
func NewStore(cat *catalog.Catalog, defaultUnlocked []string) *Store {
	s := &Store{
		cat:      cat,
		defaults: append([]string(nil), defaultUnlocked...),
	}
	s.Reset()
	return s
}

// IsUnlocked reports whether a level is accessible: either purchased
// in this session or free (catalog price 0).
func (s *Store) IsUnlocked(levelID string) bool {
	if s.unlocked[levelID] {
		return true
	}
	if price, ok := s.cat.Price(levelID); ok && price == 0 {
		return true
	}
	return false
}

// Purchase unlocks a level and records an order. Purchasing an already
// unlocked level is a safe no-op: it returns the most recent existing
// order for that level (or a synthetic already-owned receipt) and
// never duplicates history. The caller is responsible for requiring an
// active learner session first.
func (s *Store) Purchase(levelID, levelTitle string, price int) Order {
	if s.IsUnlocked(levelID) {
		for _, o := range s.orders {
			if o.LevelID == levelID {
				return o
			}
		}
		// Unlocked without a receipt (free tier or default set).
		return Order{
			LevelID:    levelID,
			LevelTitle: levelTitle,
			Price:      0,
			Date:       time.Now(),
			Status:     StatusCompleted,
		}
	}

	s.unlocked[levelID] = true
	order := Order{
		ID:         "ORD-" + uuid.NewString(),
		LevelID:    levelID,
		LevelTitle: levelTitle,
		Price:      price,
		Date:       time.Now(),
		Status:     StatusCompleted,
	}
	s.orders = append([]Order{order}, s.orders...)
	return order
}

// Orders returns the order history, most recent first.
func (s *Store) Orders() []Order {
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// SeedOrder prepends a pre-existing receipt, used when initializing a
// demo session. The level is not unlocked as a side effect.
func (s *Store) SeedOrder(o Order) {
	s.orders = append([]Order{o}, s.orders...)
}

// Reset reverts the unlocked set to the configured defaults and clears
// order history. Used on logout.
func (s *Store) Reset() {
	s.unlocked = make(map[string]bool, len(s.defaults))
	for _, id := range s.defaults {
		s.unlocked[id] = true
	}
	s.orders = nil
}

// Unlock adds a level to the unlocked set without creating an order.
// Used when seeding a session's starting state.
func (s *Store) Unlock(levelID string) {
	s.unlocked[levelID] = true
}
