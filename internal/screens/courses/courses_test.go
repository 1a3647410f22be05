package courses

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmladder/internal/catalog"
	"github.com/abhisek/pmladder/internal/certification"
	"github.com/abhisek/pmladder/internal/router"
	"github.com/abhisek/pmladder/internal/session"
)

func keyMsg(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
	}
}

func newTestScreen(sess *session.Manager) *CoursesScreen {
	return New(sess, certification.NewEngine(sess))
}

func TestEnterLockedLevelOpensCheckout(t *testing.T) {
	c := newTestScreen(session.NewDemoManager(catalog.Default()))

	// l3 is locked for the demo learner.
	c.Update(keyMsg("down"))
	c.Update(keyMsg("down"))
	c.Update(keyMsg("enter"))

	if c.mode != modeConfirm {
		t.Fatalf("mode = %v, want confirm", c.mode)
	}
	if c.pending != "l3" {
		t.Errorf("pending = %q, want l3", c.pending)
	}
}

func TestCheckoutCompletesPurchase(t *testing.T) {
	sess := session.NewDemoManager(catalog.Default())
	c := newTestScreen(sess)

	c.Update(keyMsg("down"))
	c.Update(keyMsg("down"))
	c.Update(keyMsg("enter"))
	_, cmd := c.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("confirm should schedule the checkout tick")
	}
	if c.mode != modeProcessing {
		t.Fatalf("mode = %v, want processing", c.mode)
	}

	c.Update(checkoutDoneMsg{levelID: "l3"})
	if c.mode != modeBrowse {
		t.Fatalf("mode = %v, want browse after checkout", c.mode)
	}
	if !sess.Entitlements().IsUnlocked("l3") {
		t.Error("l3 should be unlocked after checkout")
	}
	orders := sess.Entitlements().Orders()
	if len(orders) == 0 || orders[0].LevelID != "l3" {
		t.Errorf("most recent order should be for l3, got %+v", orders)
	}
}

func TestAbandonedCheckoutDropsLateMessage(t *testing.T) {
	sess := session.NewDemoManager(catalog.Default())
	c := newTestScreen(sess)

	c.Update(keyMsg("down"))
	c.Update(keyMsg("down"))
	c.Update(keyMsg("enter"))
	c.Update(keyMsg("y"))
	c.Update(keyMsg("esc")) // abandon while processing

	c.Update(checkoutDoneMsg{levelID: "l3"})
	if sess.Entitlements().IsUnlocked("l3") {
		t.Error("abandoned checkout must not unlock the level")
	}
}

func TestCancelConfirmReturnsToBrowse(t *testing.T) {
	c := newTestScreen(session.NewDemoManager(catalog.Default()))

	c.Update(keyMsg("down"))
	c.Update(keyMsg("down"))
	c.Update(keyMsg("enter"))
	c.Update(keyMsg("n"))

	if c.mode != modeBrowse {
		t.Fatalf("mode = %v, want browse", c.mode)
	}
	if c.pending != "" {
		t.Errorf("pending = %q, want empty", c.pending)
	}
}

func TestSignedOutPurchaseRoutesToLogin(t *testing.T) {
	c := newTestScreen(session.NewManager(catalog.Default()))

	c.Update(keyMsg("down")) // l2, locked and signed out
	_, cmd := c.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a command pushing the login screen")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("cmd message = %T, want router.PushScreenMsg", cmd())
	}
	if c.mode != modeBrowse {
		t.Errorf("mode = %v, want browse", c.mode)
	}
}

func TestUnlockedLevelOpensDetailAndClaims(t *testing.T) {
	sess := session.NewDemoManager(catalog.Default())
	c := newTestScreen(sess)

	// l2 is unlocked for the demo learner but not yet certified.
	c.Update(keyMsg("down"))
	c.Update(keyMsg("enter"))
	if c.mode != modeDetail {
		t.Fatalf("mode = %v, want detail", c.mode)
	}

	c.Update(keyMsg("c"))
	cert, held := sess.CertificateFor("l2")
	if !held {
		t.Fatal("claim should issue a certificate for l2")
	}
	if cert.LevelID != "l2" {
		t.Errorf("cert level = %q, want l2", cert.LevelID)
	}

	// Claiming again keeps exactly one certificate.
	c.Update(keyMsg("c"))
	count := 0
	for _, cr := range sess.Learner().Certificates {
		if cr.LevelID == "l2" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("certificates for l2 = %d, want 1", count)
	}
}
