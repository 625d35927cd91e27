package services

import (
	"errors"
	"sync"

	"dapur-mama/utils"
)

type GateState int

const (
	GateLocked GateState = iota
	GateAwaitingPassword
	GateUnlocked
)

func (s GateState) String() string {
	switch s {
	case GateAwaitingPassword:
		return "awaiting_password"
	case GateUnlocked:
		return "unlocked"
	default:
		return "locked"
	}
}

// ErrWrongPassword is the inline message shown on a failed secret check.
var ErrWrongPassword = errors.New("Password salah! Silakan coba lagi.")

// AdminGate is the three-state machine guarding admin mode. Only the exact
// transitions below exist, so "unlocked with the prompt still open" is
// unrepresentable.
type AdminGate struct {
	state  GateState
	verify func(string) bool
}

func NewAdminGate(verify func(string) bool) *AdminGate {
	return &AdminGate{verify: verify}
}

func (g *AdminGate) State() GateState {
	return g.state
}

// RequestAdmin opens the password prompt from the locked view.
func (g *AdminGate) RequestAdmin() {
	if g.state == GateLocked {
		g.state = GateAwaitingPassword
	}
}

// Submit checks the secret. On a mismatch the gate stays awaiting so the
// user can retry; there is no attempt counting.
func (g *AdminGate) Submit(secret string) error {
	if g.state != GateAwaitingPassword {
		return ErrWrongPassword
	}
	if !g.verify(secret) {
		return ErrWrongPassword
	}
	g.state = GateUnlocked
	return nil
}

// Toggle mirrors the header button: leaving admin mode locks immediately,
// while toggling from the locked view opens the prompt.
func (g *AdminGate) Toggle() {
	switch g.state {
	case GateUnlocked:
		g.state = GateLocked
	case GateLocked:
		g.state = GateAwaitingPassword
	}
}

// Cancel dismisses the password prompt without unlocking.
func (g *AdminGate) Cancel() {
	if g.state == GateAwaitingPassword {
		g.state = GateLocked
	}
}

// AdminGateRegistry tracks one gate per browser session.
type AdminGateRegistry struct {
	mu     sync.Mutex
	gates  map[string]*AdminGate
	verify func(string) bool
}

// NewAdminGateRegistry builds the secret check: argon2 verification when a
// hash is configured, otherwise exact string equality against the
// configured passphrase.
func NewAdminGateRegistry(password, passwordHash string) *AdminGateRegistry {
	verify := func(secret string) bool {
		return secret == password
	}
	if passwordHash != "" {
		verify = func(secret string) bool {
			return utils.VerifyPassword(passwordHash, secret)
		}
	}
	return &AdminGateRegistry{gates: map[string]*AdminGate{}, verify: verify}
}

func (r *AdminGateRegistry) gate(session string) *AdminGate {
	gate, ok := r.gates[session]
	if !ok {
		gate = NewAdminGate(r.verify)
		r.gates[session] = gate
	}
	return gate
}

func (r *AdminGateRegistry) State(session string) GateState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gate(session).State()
}

func (r *AdminGateRegistry) RequestAdmin(session string) GateState {
	r.mu.Lock()
	defer r.mu.Unlock()
	gate := r.gate(session)
	gate.RequestAdmin()
	return gate.State()
}

func (r *AdminGateRegistry) Submit(session, secret string) (GateState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	gate := r.gate(session)
	err := gate.Submit(secret)
	return gate.State(), err
}

func (r *AdminGateRegistry) Toggle(session string) GateState {
	r.mu.Lock()
	defer r.mu.Unlock()
	gate := r.gate(session)
	gate.Toggle()
	return gate.State()
}

func (r *AdminGateRegistry) Cancel(session string) GateState {
	r.mu.Lock()
	defer r.mu.Unlock()
	gate := r.gate(session)
	gate.Cancel()
	return gate.State()
}
