package ui

import (
	"testing"

	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/event"
)

func enter(d *event.Dispatcher, from, to component.Mode) {
	d.Dispatch(event.Event{Type: event.ModeEntered, Data: event.ModeChange{From: from, To: to}})
}

func TestModeIndicatorFollowsOnlyWhileAttached(t *testing.T) {
	d := event.NewDispatcher()
	i := NewModeIndicator(10, 10, 5)

	enter(d, component.ModeSearching, component.ModeAlert)
	if i.Mode() != component.ModeSearching {
		t.Fatalf("detached indicator changed to %s", i.Mode())
	}

	i.Attach(d)
	enter(d, component.ModeSearching, component.ModeAlert)
	if i.Mode() != component.ModeAlert {
		t.Fatalf("attached indicator shows %s, want alert", i.Mode())
	}
	if i.LastChangeTime.IsZero() {
		t.Error("mode change did not start a pulse")
	}

	i.Detach(d)
	enter(d, component.ModeAlert, component.ModeFiring)
	if i.Mode() != component.ModeAlert {
		t.Errorf("indicator still follows after Detach: %s", i.Mode())
	}

	i.Sync(component.ModeFiring)
	if i.Mode() != component.ModeFiring {
		t.Errorf("Sync left mode at %s", i.Mode())
	}
}

func TestModeColor(t *testing.T) {
	if ModeColor(component.ModeAlert) == ModeColor(component.ModeFiring) ||
		ModeColor(component.ModeSearching) == ModeColor(component.ModeAlert) {
		t.Error("each mode needs its own colour")
	}
}
