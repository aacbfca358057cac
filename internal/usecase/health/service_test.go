package health

import (
	"context"
	"errors"
	"testing"
)

type mockCatalogPinger struct {
	err error
}

func (m *mockCatalogPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockCatalogPinger{}, true)
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["catalog"] != CheckOK {
		t.Errorf("expected catalog %q, got %q", CheckOK, r.Checks["catalog"])
	}
	if r.Checks["assistant"] != CheckOK {
		t.Errorf("expected assistant %q, got %q", CheckOK, r.Checks["assistant"])
	}
}

func TestCheck_CatalogDown(t *testing.T) {
	svc := New(&mockCatalogPinger{err: errors.New("connection refused")}, false)
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["catalog"] != CheckError {
		t.Errorf("expected catalog %q, got %q", CheckError, r.Checks["catalog"])
	}
}

func TestCheck_AssistantDisabled(t *testing.T) {
	svc := New(&mockCatalogPinger{}, false)
	r := svc.Check(context.Background())

	if _, ok := r.Checks["assistant"]; ok {
		t.Error("assistant check should be absent when disabled")
	}
	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
}
