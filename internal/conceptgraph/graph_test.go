package conceptgraph

import (
	"testing"

	"github.com/diversifica/decies-platform-sub000/internal/store"
)

func testConcepts() []store.ConceptRecord {
	return []store.ConceptRecord{
		{Code: "a", Name: "Alpha", Subject: "mat", Term: "t1", Active: true},
		{Code: "b", Name: "Beta", Subject: "mat", Term: "t1", Active: true},
		{Code: "c", Name: "Gamma", Subject: "mat", Term: "t1", Active: true},
	}
}

func TestPrerequisites_DirectOnly(t *testing.T) {
	// c depends on b, b depends on a; c's prerequisites are direct only.
	g := New(testConcepts(), []store.EdgeRecord{
		{ConceptCode: "b", PrerequisiteCode: "a"},
		{ConceptCode: "c", PrerequisiteCode: "b"},
	})

	got := g.Prerequisites("c")
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("Prerequisites(c) = %v, want [b]", got)
	}
	if got := g.Prerequisites("a"); len(got) != 0 {
		t.Errorf("Prerequisites(a) = %v, want empty", got)
	}
}

func TestPrerequisites_CycleSafe(t *testing.T) {
	// a <-> b cycle: direct lookups still terminate and answer correctly.
	g := New(testConcepts(), []store.EdgeRecord{
		{ConceptCode: "a", PrerequisiteCode: "b"},
		{ConceptCode: "b", PrerequisiteCode: "a"},
	})

	if got := g.Prerequisites("a"); len(got) != 1 || got[0] != "b" {
		t.Errorf("Prerequisites(a) = %v, want [b]", got)
	}
	if got := g.Prerequisites("b"); len(got) != 1 || got[0] != "a" {
		t.Errorf("Prerequisites(b) = %v, want [a]", got)
	}
}

func TestNew_SkipsSelfEdges(t *testing.T) {
	g := New(testConcepts(), []store.EdgeRecord{
		{ConceptCode: "a", PrerequisiteCode: "a"},
	})
	if got := g.Prerequisites("a"); len(got) != 0 {
		t.Errorf("Prerequisites(a) = %v, want self-edge dropped", got)
	}
}

func TestName_FallsBackToCode(t *testing.T) {
	g := New(testConcepts(), nil)
	if got := g.Name("a"); got != "Alpha" {
		t.Errorf("Name(a) = %q, want Alpha", got)
	}
	if got := g.Name("zz"); got != "zz" {
		t.Errorf("Name(zz) = %q, want the code itself", got)
	}
}

func TestHas(t *testing.T) {
	g := New(testConcepts(), nil)
	if !g.Has("a") || g.Has("zz") {
		t.Error("Has misreports membership")
	}
}
