package services

import (
	"testing"

	"dapur-mama/utils"
)

func TestGateStartsLocked(t *testing.T) {
	gates := NewAdminGateRegistry("Rudi123574", "")
	if state := gates.State("s"); state != GateLocked {
		t.Errorf("initial state = %v, want locked", state)
	}
}

func TestWrongPasswordStaysAwaiting(t *testing.T) {
	gates := NewAdminGateRegistry("Rudi123574", "")
	gates.RequestAdmin("s")

	state, err := gates.Submit("s", "wrong")
	if err == nil {
		t.Fatal("expected an error for the wrong password")
	}
	if err.Error() != "Password salah! Silakan coba lagi." {
		t.Errorf("unexpected error message: %q", err.Error())
	}
	if state != GateAwaitingPassword {
		t.Errorf("state = %v, want awaiting_password (retry allowed)", state)
	}
}

func TestCorrectPasswordUnlocks(t *testing.T) {
	gates := NewAdminGateRegistry("Rudi123574", "")
	gates.RequestAdmin("s")

	state, err := gates.Submit("s", "Rudi123574")
	if err != nil {
		t.Fatal(err)
	}
	if state != GateUnlocked {
		t.Errorf("state = %v, want unlocked", state)
	}
}

func TestPasswordIsCaseSensitive(t *testing.T) {
	gates := NewAdminGateRegistry("Rudi123574", "")
	gates.RequestAdmin("s")

	if _, err := gates.Submit("s", "rudi123574"); err == nil {
		t.Error("case-mismatched password must not unlock")
	}
}

func TestToggleLeavesAdminWithoutPrompt(t *testing.T) {
	gates := NewAdminGateRegistry("Rudi123574", "")
	gates.RequestAdmin("s")
	gates.Submit("s", "Rudi123574")

	if state := gates.Toggle("s"); state != GateLocked {
		t.Errorf("toggle from unlocked = %v, want locked", state)
	}
}

func TestToggleFromLockedOpensPrompt(t *testing.T) {
	gates := NewAdminGateRegistry("Rudi123574", "")
	if state := gates.Toggle("s"); state != GateAwaitingPassword {
		t.Errorf("toggle from locked = %v, want awaiting_password", state)
	}
}

func TestCancelClosesPrompt(t *testing.T) {
	gates := NewAdminGateRegistry("Rudi123574", "")
	gates.RequestAdmin("s")
	if state := gates.Cancel("s"); state != GateLocked {
		t.Errorf("cancel = %v, want locked", state)
	}
}

func TestSubmitWhileLockedDoesNotUnlock(t *testing.T) {
	gates := NewAdminGateRegistry("Rudi123574", "")
	state, err := gates.Submit("s", "Rudi123574")
	if err == nil {
		t.Error("submit without an open prompt must fail")
	}
	if state == GateUnlocked {
		t.Error("gate unlocked without the prompt being open")
	}
}

func TestHashedSecretVerification(t *testing.T) {
	hash, err := utils.HashPassword("Rudi123574")
	if err != nil {
		t.Fatal(err)
	}

	gates := NewAdminGateRegistry("ignored-when-hash-set", hash)
	gates.RequestAdmin("s")

	if _, err := gates.Submit("s", "wrong"); err == nil {
		t.Error("wrong password passed argon2 verification")
	}
	if state, err := gates.Submit("s", "Rudi123574"); err != nil || state != GateUnlocked {
		t.Errorf("correct password failed argon2 verification: state=%v err=%v", state, err)
	}
}

func TestGatesAreIndependentPerSession(t *testing.T) {
	gates := NewAdminGateRegistry("Rudi123574", "")
	gates.RequestAdmin("a")
	gates.Submit("a", "Rudi123574")

	if state := gates.State("b"); state != GateLocked {
		t.Errorf("session b inherited session a's state: %v", state)
	}
}
