package main

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

func TestEndsDrag(t *testing.T) {
	tests := []struct {
		name string
		ev   xgb.Event
		want bool
	}{
		{"key press", xproto.KeyPressEvent{}, true},
		{"key release", xproto.KeyReleaseEvent{}, true},
		{"button press", xproto.ButtonPressEvent{}, true},
		{"button release", xproto.ButtonReleaseEvent{}, true},
		{"motion", xproto.MotionNotifyEvent{}, false},
		{"configure request", xproto.ConfigureRequestEvent{}, false},
		{"map request", xproto.MapRequestEvent{}, false},
		{"destroy notify", xproto.DestroyNotifyEvent{}, false},
		{"unmap notify", xproto.UnmapNotifyEvent{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := endsDrag(tt.ev); got != tt.want {
				t.Errorf("endsDrag(%T) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}
