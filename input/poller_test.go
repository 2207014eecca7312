// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"image"
	"slices"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rasteredit/pixel"
)

func eventTypes(evs []gpucontext.PointerEvent) []gpucontext.PointerEventType {
	out := make([]gpucontext.PointerEventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func TestPoller_Pointer(t *testing.T) {
	type frame struct {
		x, y    float64
		pressed bool
	}
	const (
		down  = gpucontext.PointerDown
		up    = gpucontext.PointerUp
		move  = gpucontext.PointerMove
		enter = gpucontext.PointerEnter
		leave = gpucontext.PointerLeave
	)
	tests := []struct {
		name   string
		frames []frame
		want   []gpucontext.PointerEventType
	}{
		{
			name:   "enter then idle",
			frames: []frame{{5, 5, false}, {5, 5, false}},
			want:   []gpucontext.PointerEventType{enter, move},
		},
		{
			name:   "click",
			frames: []frame{{5, 5, false}, {5, 5, true}, {5, 5, false}},
			want:   []gpucontext.PointerEventType{enter, move, down, up},
		},
		{
			name:   "drag",
			frames: []frame{{1, 1, true}, {2, 1, true}, {3, 1, true}, {3, 1, false}},
			want:   []gpucontext.PointerEventType{enter, move, down, move, move, up},
		},
		{
			name:   "drag out of bounds",
			frames: []frame{{1, 1, true}, {20, 1, true}, {20, 1, false}},
			want:   []gpucontext.PointerEventType{enter, move, down, leave, up},
		},
		{
			name:   "press outside",
			frames: []frame{{-3, 1, true}, {-3, 1, false}},
			want:   []gpucontext.PointerEventType{up},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPoller(image.Rect(0, 0, 10, 10))
			var got []gpucontext.PointerEvent
			p.OnPointer(func(ev gpucontext.PointerEvent) { got = append(got, ev) })
			for _, f := range tt.frames {
				p.Pointer(f.x, f.y, f.pressed, 0)
			}
			if types := eventTypes(got); !slices.Equal(types, tt.want) {
				t.Errorf("events = %v, want %v", types, tt.want)
			}
		})
	}
}

func TestPoller_EventFields(t *testing.T) {
	p := NewPoller(image.Rect(0, 0, 10, 10))
	var last gpucontext.PointerEvent
	p.OnPointer(func(ev gpucontext.PointerEvent) { last = ev })

	p.Pointer(4, 6, true, gpucontext.ModShift)
	if last.Type != gpucontext.PointerDown {
		t.Fatalf("last event = %v, want down", last.Type)
	}
	if last.X != 4 || last.Y != 6 || last.Button != gpucontext.ButtonLeft || !last.Buttons.HasLeft() {
		t.Errorf("down event = %+v", last)
	}
	if !last.IsPrimary || last.PointerID != pollerPointerID || last.Pressure != 0.5 {
		t.Errorf("down event identity = %+v", last)
	}
	if !last.Modifiers.HasShift() {
		t.Error("modifiers not forwarded")
	}
}

func TestPoller_DrivesController(t *testing.T) {
	buf, err := pixel.New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	r := &recorder{}
	c := New(r)
	p := NewPoller(buf.Bounds())
	c.Bind(p, p)

	p.Pointer(1, 1, true, 0)
	p.Pointer(2, 2, true, 0)
	p.Pointer(2, 2, false, 0)
	p.Key(gpucontext.KeyZ, gpucontext.ModControl)

	want := []string{"begin brush 5", "to 1,1", "to 2,2", "to 2,2", "end", "undo"}
	if !slices.Equal(r.calls, want) {
		t.Errorf("calls = %q, want %q", r.calls, want)
	}
}
