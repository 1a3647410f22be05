// Package certification issues completion certificates against the
// learner's entitlements. Issuance is idempotent: claiming a level the
// learner already holds a certificate for returns the existing one.
package certification

import (
	"errors"
	"time"

	"github.com/abhisek/pmladder/internal/session"
)

var (
	// ErrUnknownLevel is returned for level ids outside the catalog.
	ErrUnknownLevel = errors.New("certification: unknown level")

	// ErrNotEntitled is returned when the level is still locked for
	// this learner.
	ErrNotEntitled = errors.New("certification: level not unlocked")

	// ErrAlreadyCertified is returned by CanClaim when the learner
	// already holds a certificate for the level. Claim treats this
	// case as an idempotent no-op instead.
	ErrAlreadyCertified = errors.New("certification: certificate already issued")
)

// Engine issues certificates for one learner session.
type Engine struct {
	sess *session.Manager
	now  func() time.Time
}

// NewEngine returns an engine bound to the given session.
func NewEngine(sess *session.Manager) *Engine {
	return &Engine{sess: sess, now: time.Now}
}

// CanClaim reports whether a claim for levelID would succeed, without
// issuing anything.
func (e *Engine) CanClaim(levelID string) error {
	if !e.sess.Authenticated() {
		return session.ErrNotAuthenticated
	}
	if _, ok := e.sess.Catalog().Get(levelID); !ok {
		return ErrUnknownLevel
	}
	if !e.sess.Entitlements().IsUnlocked(levelID) {
		return ErrNotEntitled
	}
	if _, ok := e.sess.CertificateFor(levelID); ok {
		return ErrAlreadyCertified
	}
	return nil
}

// Claim issues a certificate for levelID, or returns the one already
// held. The issue date is the claim day in UTC.
func (e *Engine) Claim(levelID string) (session.Certificate, error) {
	err := e.CanClaim(levelID)
	if errors.Is(err, ErrAlreadyCertified) {
		existing, _ := e.sess.CertificateFor(levelID)
		return existing, nil
	}
	if err != nil {
		return session.Certificate{}, err
	}
	level, _ := e.sess.Catalog().Get(levelID)
	cert := session.Certificate{
		ID:        session.NewCertificateID(),
		LevelID:   levelID,
		Title:     level.Title + " Certificate of Completion",
		IssueDate: e.now().UTC().Truncate(24 * time.Hour),
	}
	e.sess.AddCertificate(cert)
	return cert, nil
}
