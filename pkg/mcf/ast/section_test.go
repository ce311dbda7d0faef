package ast

import "testing"

func buildTree() *Section {
	owner := NewOwner()
	root := NewSection("", owner)
	root.AddOption(&Option{Name: "first", Value: "1", Owner: owner})
	root.AddOption(&Option{Name: "second", Value: "2", Owner: owner})

	child := NewSection("child", owner)
	child.AddOption(&Option{Name: "inner", Value: "x", Owner: owner})
	root.AddSection(child)

	grand := NewSection("grand", owner)
	child.AddSection(grand)
	return root
}

func TestSection_Lookup(t *testing.T) {
	root := buildTree()

	if opt := root.Option("second"); opt == nil || opt.Value != "2" {
		t.Errorf("Option(second) = %+v, want value 2", opt)
	}
	if root.Option("missing") != nil {
		t.Error("Option(missing) should be nil")
	}
	if !root.HasOption("first") {
		t.Error("HasOption(first) = false, want true")
	}
	if got := root.Value("first", "d"); got != "1" {
		t.Errorf("Value(first) = %q, want %q", got, "1")
	}
	if got := root.Value("missing", "d"); got != "d" {
		t.Errorf("Value(missing) = %q, want fallback %q", got, "d")
	}
	if sec := root.Section("child"); sec == nil || sec.Name != "child" {
		t.Errorf("Section(child) = %+v, want named child", sec)
	}
	if root.Section("missing") != nil {
		t.Error("Section(missing) should be nil")
	}
}

func TestSection_OrderPreserved(t *testing.T) {
	root := buildTree()

	if root.Options[0].Name != "first" || root.Options[1].Name != "second" {
		t.Errorf("option order = %q, %q; want first, second",
			root.Options[0].Name, root.Options[1].Name)
	}
}

func TestSection_Counts(t *testing.T) {
	root := buildTree()

	if got := root.OptionCount(); got != 2 {
		t.Errorf("OptionCount() = %d, want 2", got)
	}
	if got := root.SectionCount(); got != 1 {
		t.Errorf("SectionCount() = %d, want 1", got)
	}
	if root.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !NewSection("x", NewOwner()).IsEmpty() {
		t.Error("fresh section should be empty")
	}
}

func TestSection_Walk(t *testing.T) {
	root := buildTree()

	var names []string
	root.Walk(func(s *Section) bool {
		names = append(names, s.Name)
		return true
	})

	want := []string{"", "child", "grand"}
	if len(names) != len(want) {
		t.Fatalf("Walk visited %d sections, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Walk order[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	// Early stop.
	count := 0
	root.Walk(func(s *Section) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("Walk with early stop visited %d, want 1", count)
	}
}

func TestOwner_SharedIdentity(t *testing.T) {
	owner := NewOwner()
	doc := NewDocument("main.cfg", owner)

	if doc.Owner != owner {
		t.Error("document should hold the owner it was created with")
	}
	if owner.ID() != doc.Owner.ID() {
		t.Error("owner identity should be stable")
	}
	if NewOwner().ID() == owner.ID() {
		t.Error("distinct owners should have distinct identities")
	}
}
