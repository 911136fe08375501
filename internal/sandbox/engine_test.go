package sandbox

import "testing"

func neuronPieces() []Piece {
	return []Piece{
		{ID: "dendrite", Label: "Dendrit", Emoji: "🌿"},
		{ID: "soma", Label: "Badan Sel", Emoji: "🟡"},
		{ID: "axon", Label: "Akson", Emoji: "⚡"},
	}
}

func neuronRules() []Combination {
	return []Combination{
		{
			RequiredPieceIDs: []string{"dendrite", "soma"},
			Result:           Piece{ID: "receiver", Label: "Penerima Sinyal"},
			Explanation:      "Dendrit menerima sinyal dan meneruskannya ke badan sel.",
		},
		{
			RequiredPieceIDs: []string{"receiver", "axon"},
			Result:           Piece{ID: "neuron", Label: "Neuron Utuh"},
			Explanation:      "Akson membawa sinyal keluar dari badan sel.",
		},
	}
}

func TestCombineOrderIndependent(t *testing.T) {
	for _, order := range [][]string{
		{"dendrite", "soma"},
		{"soma", "dendrite"},
	} {
		e := NewEngine(neuronPieces(), neuronRules())
		for _, id := range order {
			if !e.Place(id) {
				t.Fatalf("Place(%q) = false", id)
			}
		}
		res := e.Combine()
		if !res.Matched {
			t.Errorf("Combine() with order %v did not match", order)
			continue
		}
		if res.Result.ID != "receiver" {
			t.Errorf("Combine() result = %q, want receiver", res.Result.ID)
		}
		if res.Explanation == "" {
			t.Error("Combine() returned no explanation")
		}
	}
}

func TestCombineSupersetDoesNotMatch(t *testing.T) {
	e := NewEngine(neuronPieces(), neuronRules())
	e.Place("dendrite")
	e.Place("soma")
	e.Place("axon")

	res := e.Combine()
	if res.Matched {
		t.Fatal("Combine() matched on a superset of a rule")
	}
	if res.Hint == "" {
		t.Error("non-match returned no hint")
	}
	if len(e.Zone()) != 3 {
		t.Errorf("zone has %d pieces after non-match, want 3 kept", len(e.Zone()))
	}
}

func TestCombineSingletonIsNotEvaluated(t *testing.T) {
	e := NewEngine(neuronPieces(), neuronRules())
	e.Place("dendrite")

	if e.State() != ZoneFilling {
		t.Errorf("State() = %q, want %q", e.State(), ZoneFilling)
	}
	res := e.Combine()
	if res.Matched || res.Hint != "" {
		t.Errorf("Combine() on a single piece = %+v, want empty result", res)
	}
}

func TestCombineResultJoinsInventory(t *testing.T) {
	e := NewEngine(neuronPieces(), neuronRules())
	e.Place("dendrite")
	e.Place("soma")
	e.Combine()

	if !e.Place("receiver") {
		t.Fatal("created piece is not placeable from inventory")
	}
	e.Place("axon")
	res := e.Combine()
	if !res.Matched || res.Result.ID != "neuron" {
		t.Fatalf("chained Combine() = %+v, want neuron", res)
	}
	if !e.Completed() {
		t.Error("Completed() = false after every rule result was created")
	}
}

func TestPlaceConsumesInventory(t *testing.T) {
	e := NewEngine(neuronPieces(), neuronRules())

	if !e.Place("axon") {
		t.Fatal("Place(axon) = false")
	}
	if e.Place("axon") {
		t.Error("Place(axon) succeeded twice with one copy in inventory")
	}
	if e.Place("tidak-ada") {
		t.Error("Place of unknown piece succeeded")
	}

	if !e.Remove("axon") {
		t.Fatal("Remove(axon) = false")
	}
	if !e.Place("axon") {
		t.Error("Place(axon) failed after Remove returned it")
	}
}

func TestDeconstructRestoresParts(t *testing.T) {
	e := NewEngine(neuronPieces(), neuronRules())
	e.Place("dendrite")
	e.Place("soma")
	e.Combine()

	restored, ok := e.Deconstruct("receiver")
	if !ok {
		t.Fatal("Deconstruct(receiver) = false")
	}
	if len(restored) != 2 {
		t.Fatalf("Deconstruct restored %d pieces, want 2", len(restored))
	}
	if len(e.Created()) != 0 {
		t.Errorf("Created() has %d pieces after deconstruct, want 0", len(e.Created()))
	}

	// The parts are usable again.
	e.Place("dendrite")
	e.Place("soma")
	if res := e.Combine(); !res.Matched {
		t.Error("Combine() failed after deconstruct round-trip")
	}
}

func TestDeconstructRequiresAvailablePiece(t *testing.T) {
	e := NewEngine(neuronPieces(), neuronRules())

	if _, ok := e.Deconstruct("receiver"); ok {
		t.Error("Deconstruct succeeded for a piece never created")
	}
	if _, ok := e.Deconstruct("dendrite"); ok {
		t.Error("Deconstruct succeeded for a starting piece with no rule")
	}
}

func TestZoneStates(t *testing.T) {
	e := NewEngine(neuronPieces(), neuronRules())

	if e.State() != ZoneIdle {
		t.Errorf("State() = %q, want %q", e.State(), ZoneIdle)
	}
	e.Place("dendrite")
	if e.State() != ZoneFilling {
		t.Errorf("State() = %q, want %q", e.State(), ZoneFilling)
	}
	e.Place("soma")
	if e.State() != ZoneEvaluating {
		t.Errorf("State() = %q, want %q", e.State(), ZoneEvaluating)
	}
	e.Combine()
	if e.State() != ZoneIdle {
		t.Errorf("State() after match = %q, want %q", e.State(), ZoneIdle)
	}
}

func TestBreakdownAdvance(t *testing.T) {
	levels := []Level{
		{Title: "Organ", Pieces: []Piece{{ID: "heart"}}},
		{Title: "Jaringan", Pieces: []Piece{{ID: "muscle"}}},
	}
	b := NewBreakdown(Piece{ID: "body", Label: "Tubuh"}, levels)

	if b.Exhausted() {
		t.Fatal("Exhausted() = true before any advance")
	}

	lvl, ok := b.Advance()
	if !ok || lvl.Title != "Organ" {
		t.Fatalf("first Advance() = %+v, %v", lvl, ok)
	}
	lvl, ok = b.Advance()
	if !ok || lvl.Title != "Jaringan" {
		t.Fatalf("second Advance() = %+v, %v", lvl, ok)
	}
	if _, ok := b.Advance(); ok {
		t.Error("Advance() succeeded past the last level")
	}
	if !b.Exhausted() {
		t.Error("Exhausted() = false after all levels revealed")
	}
	if got := len(b.Revealed()); got != 2 {
		t.Errorf("Revealed() has %d levels, want 2", got)
	}
}
