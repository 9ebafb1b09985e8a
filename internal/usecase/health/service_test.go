package health

import (
	"errors"
	"testing"
)

// --- Mocks ---

type mockCorpus struct {
	err error
}

func (m *mockCorpus) Ping() error { return m.err }

// --- Tests ---

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockCorpus{})

	r := svc.Check()
	if r.Status != Healthy {
		t.Errorf("expected %s, got %s", Healthy, r.Status)
	}
	if r.Checks["corpus"] != CheckOK {
		t.Errorf("expected corpus ok, got %s", r.Checks["corpus"])
	}
}

func TestCheck_EmptyCorpusDegrades(t *testing.T) {
	svc := New(&mockCorpus{err: errors.New("corpus is empty")})

	r := svc.Check()
	if r.Status != Degraded {
		t.Errorf("expected %s, got %s", Degraded, r.Status)
	}
	if r.Checks["corpus"] != CheckError {
		t.Errorf("expected corpus error, got %s", r.Checks["corpus"])
	}
}
