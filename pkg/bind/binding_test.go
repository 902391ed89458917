package bind_test

import (
	"testing"

	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/data"
)

func countValueProperty() bind.Property[knobNode, int] {
	return bind.Value[knobNode, int](countKnob{}, bind.RequestNone)
}

func TestValuePropertyDetectsDivergence(t *testing.T) {
	p := countValueProperty()
	node := &knobNode{count: 3}

	if change := p.Detect(node, 3); change != nil {
		t.Fatalf("Detect reported a change for equal values: %v", change)
	}
	if change := p.Detect(node, 4); change == nil {
		t.Fatal("Detect missed a divergence")
	}

	field := 4
	p.Fold(node, &field, bind.UnitChange)
	if field != 3 {
		t.Fatalf("Fold left field = %d, want 3", field)
	}
}

func TestReadOnlyPropertySuppressesWrites(t *testing.T) {
	p := bind.ReadOnly(countValueProperty())
	node := &knobNode{count: 3}

	p.Write(node, nil, 9)
	if node.count != 3 {
		t.Fatalf("node.count = %d, want 3 untouched by read-only write", node.count)
	}
	if change := p.Detect(node, 4); change == nil {
		t.Fatal("read-only property must still detect changes")
	}
	if got := p.Requests(); got != bind.RequestNone {
		t.Fatalf("Requests() = %v, want RequestNone", got)
	}
}

func TestWriteOnlyPropertySuppressesDetection(t *testing.T) {
	p := bind.WriteOnly(countValueProperty())
	node := &knobNode{count: 3}

	if change := p.Detect(node, 99); change != nil {
		t.Fatalf("write-only property detected a change: %v", change)
	}
	p.Write(node, nil, 9)
	if node.count != 9 {
		t.Fatalf("node.count = %d, want 9", node.count)
	}
}

func TestJoinCollapsesWhenNoLegDiverges(t *testing.T) {
	joined := bind.Join(countBinding(), titleBinding())
	node := &knobNode{count: 41, title: "a"}
	d := counterData{Count: 41, Title: "a"}

	var slot bind.Change
	joined.CollectChange(node, &d, &slot)
	if slot != nil {
		t.Fatalf("slot = %v, want nil when no leg diverges", slot)
	}
}

func TestJoinKeepsLegChangesSeparate(t *testing.T) {
	joined := bind.Join(countBinding(), titleBinding())
	node := &knobNode{count: 42, title: "a"}
	d := counterData{Count: 41, Title: "a"}

	var slot bind.Change
	joined.CollectChange(node, &d, &slot)
	slots, ok := slot.([]bind.Change)
	if !ok || len(slots) != 2 {
		t.Fatalf("slot = %v, want a two-leg slice", slot)
	}
	if slots[0] == nil || slots[1] != nil {
		t.Fatalf("slots = %v, want only leg 0 populated", slots)
	}

	joined.ConsumeChange(node, &d, slot, nil)
	if d.Count != 42 || d.Title != "a" {
		t.Fatalf("data = %+v, want Count 42 Title \"a\"", d)
	}
}

func TestJoinOfOneIsPassthrough(t *testing.T) {
	joined := bind.Join(countBinding())
	node := &knobNode{count: 42}
	d := counterData{Count: 41}

	var slot bind.Change
	joined.CollectChange(node, &d, &slot)
	if _, isSlice := slot.([]bind.Change); isSlice {
		t.Fatalf("single-leg join wrapped its change: %v", slot)
	}
	if slot == nil {
		t.Fatal("single-leg join missed the divergence")
	}
}

func TestForwardBindingCollectsNothing(t *testing.T) {
	forward := bind.Forward(countBinding())
	node := &knobNode{count: 42}
	d := counterData{Count: 41}

	var slot bind.Change
	forward.CollectChange(node, &d, &slot)
	if slot != nil {
		t.Fatalf("slot = %v, want nil from a forward-restricted binding", slot)
	}
}

func TestBackwardBindingNeverWritesNode(t *testing.T) {
	backward := bind.Backward(bind.Bind(
		data.Field(func(d *counterData) *int { return &d.Count }),
		bind.Value[knobNode, int](countKnob{}, bind.RequestNone),
	))
	node := &knobNode{count: 5}
	d := counterData{Count: 41}

	backward.ApplyDataToControlled(&d, node, nil)
	if node.count != 5 {
		t.Fatalf("node.count = %d, want 5 untouched", node.count)
	}

	var slot bind.Change
	backward.CollectChange(node, &d, &slot)
	if slot == nil {
		t.Fatal("backward binding must still collect node-side changes")
	}
}
