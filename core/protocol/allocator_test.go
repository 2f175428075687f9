// core/protocol/allocator_test.go
package protocol

import (
	"errors"
	"testing"

	"whispr-core/inventory"
	"whispr-core/plate"
)

func profile(t *testing.T, name string) plate.Profile {
	t.Helper()
	p, err := plate.ProfileFor(name)
	if err != nil {
		t.Fatalf("profile %s: %v", name, err)
	}
	return p
}

func TestAllocateStaysOnWellUnderBudget(t *testing.T) {
	entry := &inventory.Entry{Label: "B", Wells: []string{"W1", "W2"}, Concentration: 10, Volumes: []float64{40, 40}}
	a := NewAllocator(profile(t, "384PP_AQ_BP")) // budget 45

	for i := 0; i < 2; i++ {
		well, err := a.Allocate(entry, 20)
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		if well != "W1" {
			t.Fatalf("allocate %d: well = %s, want W1", i, well)
		}
	}
	if got := a.Used(entry); got != 40 {
		t.Fatalf("used = %v, want 40", got)
	}
}

func TestAllocateRotatesAtBudget(t *testing.T) {
	entry := &inventory.Entry{Label: "B", Wells: []string{"W1", "W2"}, Concentration: 10, Volumes: []float64{40, 40}}
	a := NewAllocator(profile(t, "384PP_AQ_BP"))

	a.Allocate(entry, 20)
	a.Allocate(entry, 20)
	// 40 + 20 >= 45: rotate, usage restarts at 20 on W2.
	well, err := a.Allocate(entry, 20)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if well != "W2" {
		t.Fatalf("well = %s, want W2", well)
	}
	if got := a.Used(entry); got != 20 {
		t.Fatalf("used = %v, want 20 after rotation", got)
	}
}

func TestAllocateExhaustsWells(t *testing.T) {
	entry := &inventory.Entry{Label: "B", Wells: []string{"W1"}, Concentration: 10, Volumes: []float64{40}}
	a := NewAllocator(profile(t, "384PP_AQ_BP"))

	a.Allocate(entry, 40)
	_, err := a.Allocate(entry, 20)
	var ee *inventory.ExhaustedError
	if !errors.As(err, &ee) {
		t.Fatalf("want ExhaustedError, got %v", err)
	}
	if ee.Label != "B" || !ee.OutOfWells {
		t.Fatalf("error context: %+v", ee)
	}
}

func TestAllocateRotationBoundaryIsInclusive(t *testing.T) {
	// used+v == budget must already rotate.
	entry := &inventory.Entry{Label: "X", Wells: []string{"W1", "W2"}, Concentration: 10, Volumes: []float64{10, 10}}
	a := NewAllocator(profile(t, "LDV")) // budget 9.5

	a.Allocate(entry, 5)
	well, err := a.Allocate(entry, 4.5)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if well != "W2" {
		t.Fatalf("well = %s, want W2 (5 + 4.5 >= 9.5)", well)
	}
}

func TestAllocatorTracksEntriesIndependently(t *testing.T) {
	a := NewAllocator(profile(t, "384PP_AQ_BP"))
	e1 := &inventory.Entry{Label: "A", Wells: []string{"W1"}, Concentration: 100, Volumes: []float64{40}}
	e2 := &inventory.Entry{Label: "B", Wells: []string{"W2"}, Concentration: 50, Volumes: []float64{40}}

	a.Allocate(e1, 30)
	a.Allocate(e2, 30)
	// Neither rotates: budgets are per entry, not global.
	if w, _ := a.Allocate(e1, 10); w != "W1" {
		t.Fatalf("entry A moved wells unexpectedly: %s", w)
	}
	if w, _ := a.Allocate(e2, 10); w != "W2" {
		t.Fatalf("entry B moved wells unexpectedly: %s", w)
	}
}
