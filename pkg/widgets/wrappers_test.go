package widgets_test

import (
	"testing"

	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/data"
	"github.com/go-drift/bindings/pkg/tree"
	"github.com/go-drift/bindings/pkg/widgets"
)

type innerState struct {
	Note string
}

type shellState struct {
	Inner   innerState
	Caption string
}

func TestIdentityPreservesBindableReach(t *testing.T) {
	input := widgets.NewTextInput[appState]()
	wrapped := widgets.Identify[appState, widgets.TextInput[appState]](input)
	owner := tree.NewOwner[appState](
		bind.NewHost[appState, widgets.TextInput[appState]](wrapped, inputTitleBinding()),
		appState{Title: "seeded"},
	)
	defer owner.Detach()
	owner.Pump()

	if got := input.Text(); got != "seeded" {
		t.Fatalf("input text = %q through identity wrapper, want \"seeded\"", got)
	}
}

func TestBindableLensWrapPreservesReach(t *testing.T) {
	input := widgets.NewTextInput[innerState]()
	wrapped := widgets.WrapBindableLens[shellState, innerState, widgets.TextInput[innerState]](
		data.Field(func(s *shellState) *innerState { return &s.Inner }),
		input,
	)
	owner := tree.NewOwner[shellState](
		bind.NewHost[shellState, widgets.TextInput[innerState]](wrapped, bind.Bind(
			data.Field(func(s *shellState) *string { return &s.Caption }),
			widgets.InputTextProperty[innerState](),
		)),
		shellState{Caption: "outer"},
	)
	defer owner.Detach()
	owner.Pump()

	if got := input.Text(); got != "outer" {
		t.Fatalf("input text = %q through lens wrapper, want \"outer\"", got)
	}

	owner.DispatchEvent(tree.KeyEvent{Rune: '!'})
	if !owner.PumpUntilSettled(4) {
		t.Fatal("tree did not settle after typing through the wrapper")
	}
	if got := owner.Data().Caption; got != "outer!" {
		t.Fatalf("data.Caption = %q, want \"outer!\"", got)
	}
}
