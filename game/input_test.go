package game

import "testing"

func TestInput_HeldKeys(t *testing.T) {
	var in Input

	for _, key := range []string{"ArrowLeft", "w", " "} {
		if a := in.KeyDown(key); a != NoAction {
			t.Errorf("%q: expected no action, got %s", key, a)
		}
	}
	if !in.MoveLeft || !in.MoveUp || !in.Fire {
		t.Fatalf("Expected left, up and fire held, got %+v", in)
	}

	in.KeyUp("a")
	in.KeyUp("ArrowUp")
	if in.MoveLeft || in.MoveUp || !in.Fire {
		t.Errorf("Expected only fire held, got %+v", in)
	}
}

func TestInput_DiscreteActions(t *testing.T) {
	tests := map[string]Action{
		"Escape": ActionPause,
		"Esc":    ActionPause,
		"b":      ActionShop,
		"B":      ActionShop,
		"c":      ActionCamera,
		"h":      ActionBeam,
		"H":      ActionBeam,
		"x":      NoAction,
	}

	for key, want := range tests {
		var in Input
		if got := in.KeyDown(key); got != want {
			t.Errorf("%q: expected %s, got %s", key, want, got)
		}
		if in != (Input{}) {
			t.Errorf("%q: expected no held flags, got %+v", key, in)
		}
	}
}

func TestInput_Clear(t *testing.T) {
	in := Input{MoveLeft: true, MoveDown: true, Fire: true}
	in.Clear()

	if in != (Input{}) {
		t.Errorf("Expected all flags released, got %+v", in)
	}
}
