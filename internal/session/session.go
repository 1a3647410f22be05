package session

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abhisek/pmladder/internal/catalog"
	"github.com/abhisek/pmladder/internal/entitlement"
)

// ErrNotAuthenticated is returned by operations that require an active
// learner. Callers are expected to prompt a login and retry.
var ErrNotAuthenticated = errors.New("session: no active learner")

// Certificate is a one-per-level proof of completion.
type Certificate struct {
	ID        string
	LevelID   string
	Title     string
	IssueDate time.Time
}

// Learner is the profile of the signed-in user.
type Learner struct {
	Name         string
	Email        string
	Avatar       string // single display initial
	LevelLabel   string // e.g. "Lvl 2"
	Role         string
	Progress     int // modules unlocked counter, display only
	ExamScore    int
	Certificates []Certificate
}

// Manager owns the in-memory learner session: profile, entitlements
// and order history. All engine state hangs off the manager so tests
// can construct isolated sessions; there are no package globals.
type Manager struct {
	cat          *catalog.Catalog
	entitlements *entitlement.Store
	learner      *Learner
}

// DefaultUnlocked is the unlocked set a fresh (or logged-out) session
// starts with: the free tier only.
var DefaultUnlocked = []string{"l1"}

// NewManager creates a signed-out session manager.
func NewManager(cat *catalog.Catalog) *Manager {
	return &Manager{
		cat:          cat,
		entitlements: entitlement.NewStore(cat, DefaultUnlocked),
	}
}

// NewDemoManager creates a manager seeded with the demo learner:
// signed in as Alex with levels 1-2 unlocked, one historical order and
// a level 1 certificate already issued.
func NewDemoManager(cat *catalog.Catalog) *Manager {
	m := NewManager(cat)
	m.learner = &Learner{
		Name:       "Alex",
		Email:      "alex@pm-master.com",
		Avatar:     "A",
		LevelLabel: "Lvl 2",
		Role:       "Product Manager",
		Progress:   35,
		ExamScore:  72,
		Certificates: []Certificate{
			{
				ID:        "cert-001",
				LevelID:   "l1",
				Title:     "Associate PM (APM) Certificate of Completion",
				IssueDate: time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	m.entitlements.Unlock("l2")
	m.entitlements.SeedOrder(entitlement.Order{
		ID:         "ORD-INIT-01",
		LevelID:    "l2",
		LevelTitle: "Product Manager (PM) course bundle",
		Price:      299,
		Date:       time.Date(2023, time.October, 24, 0, 0, 0, 0, time.UTC),
		Status:     entitlement.StatusCompleted,
	})
	return m
}

// Learner returns the active profile, or nil when signed out.
func (m *Manager) Learner() *Learner {
	return m.learner
}

// Authenticated reports whether a learner is signed in.
func (m *Manager) Authenticated() bool {
	return m.learner != nil
}

// Entitlements exposes the session's entitlement store for read-only
// queries (unlock checks, order history).
func (m *Manager) Entitlements() *entitlement.Store {
	return m.entitlements
}

// Catalog returns the curriculum the session was built against.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.cat
}

// Login replaces the profile wholesale with a fresh learner for the
// given name. Entitlements and orders are kept: signing in mid-session
// keeps what the visitor already unlocked.
func (m *Manager) Login(name string) *Learner {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Learner"
	}
	first, _ := utf8.DecodeRuneInString(name)
	avatar := strings.ToUpper(string(first))
	m.learner = &Learner{
		Name:       name,
		Email:      strings.ToLower(name) + "@pm-master.com",
		Avatar:     avatar,
		LevelLabel: "Lvl 3",
		Role:       "Senior Product Manager",
		Progress:   12,
		ExamScore:  85,
	}
	return m.learner
}

// Logout clears to the unauthenticated state: profile gone, unlocked
// set back to the defaults, order history empty.
func (m *Manager) Logout() {
	m.learner = nil
	m.entitlements.Reset()
}

// Purchase unlocks a level for the active learner. It fails with
// ErrNotAuthenticated when signed out; the engine performs no retry of
// its own.
func (m *Manager) Purchase(levelID, levelTitle string, price int) (entitlement.Order, error) {
	if m.learner == nil {
		return entitlement.Order{}, ErrNotAuthenticated
	}
	return m.entitlements.Purchase(levelID, levelTitle, price), nil
}

// CertificateFor returns the learner's certificate for a level, if any.
func (m *Manager) CertificateFor(levelID string) (Certificate, bool) {
	if m.learner == nil {
		return Certificate{}, false
	}
	for _, c := range m.learner.Certificates {
		if c.LevelID == levelID {
			return c, true
		}
	}
	return Certificate{}, false
}

// AddCertificate appends a certificate to the learner's set. It is the
// certification engine's write path; the one-per-level invariant is
// enforced there.
func (m *Manager) AddCertificate(c Certificate) {
	if m.learner == nil {
		return
	}
	m.learner.Certificates = append(m.learner.Certificates, c)
}

// NewCertificateID generates a unique certificate id.
func NewCertificateID() string {
	return "CERT-" + uuid.NewString()
}

// RecordExamScore stores the learner's latest overall exam score.
func (m *Manager) RecordExamScore(percent int) {
	if m.learner == nil {
		return
	}
	m.learner.ExamScore = percent
}
