package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	if m == nil {
		t.Fatal("New() returned nil")
	}

	// Verify all metric fields are initialized
	if m.SelectionsTotal == nil {
		t.Error("SelectionsTotal is nil")
	}
	if m.FeeCalculationsTotal == nil {
		t.Error("FeeCalculationsTotal is nil")
	}
	if m.OffersExportedTotal == nil {
		t.Error("OffersExportedTotal is nil")
	}
	if m.UnrecognizedDegreesTotal == nil {
		t.Error("UnrecognizedDegreesTotal is nil")
	}
	if m.HTTPDurationSeconds == nil {
		t.Error("HTTPDurationSeconds is nil")
	}
	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal is nil")
	}
}

func TestRecorderMethods(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)

	m.SelectionMatched("perfect")
	m.SelectionMatched("perfect")
	m.SelectionMatched("no-match")
	m.FeeCalculated("sharda", "scholarship")
	m.FeeCalculated("sharda", "no_scholarship")
	m.OfferExported("niu")
	m.UnrecognizedDegree()

	if got := testutil.ToFloat64(m.SelectionsTotal.WithLabelValues("perfect")); got != 2 {
		t.Errorf("perfect selections = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.FeeCalculationsTotal.WithLabelValues("sharda", "no_scholarship")); got != 1 {
		t.Errorf("no_scholarship calculations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.OffersExportedTotal.WithLabelValues("niu")); got != 1 {
		t.Errorf("offers exported = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.UnrecognizedDegreesTotal); got != 1 {
		t.Errorf("unrecognized degrees = %v, want 1", got)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry)

	defer func() {
		if r := recover(); r == nil {
			t.Error("registering the same metrics twice should panic")
		}
	}()
	New(registry)
}
