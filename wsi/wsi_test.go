// Copyright 2025 The go-gfx Authors. All rights reserved.

package wsi

import (
	"runtime"
	"testing"
)

func init() { runtime.LockOSThread() }

func TestBackend(t *testing.T) {
	// The backend registers its constructor on init; NewWindow
	// is unusable otherwise.
	if newWindow == nil {
		t.Fatal("newWindow:\nhave nil\nwant backend constructor")
	}
}

func TestWindow(t *testing.T) {
	win, err := NewWindow(480, 360, "wsi test")
	if err != nil {
		t.Skipf("NewWindow failed (no window system?):\n%v", err)
	}
	defer Terminate()

	if w := win.Width(); w != 480 {
		t.Errorf("win.Width:\nhave %d\nwant 480", w)
	}
	if h := win.Height(); h != 360 {
		t.Errorf("win.Height:\nhave %d\nwant 360", h)
	}
	if s := win.Title(); s != "wsi test" {
		t.Errorf("win.Title:\nhave %q\nwant \"wsi test\"", s)
	}

	if err := win.Resize(600, 600); err != nil {
		t.Errorf("win.Resize failed:\n%v", err)
	}
	if w, h := win.Width(), win.Height(); w != 600 || h != 600 {
		t.Errorf("win.Resize:\nhave %dx%d\nwant 600x600", w, h)
	}
	if err := win.Resize(0, 600); err == nil {
		t.Error("win.Resize:\nhave nil\nwant error")
	}

	if err := win.SetTitle("renamed"); err != nil {
		t.Errorf("win.SetTitle failed:\n%v", err)
	}
	if s := win.Title(); s != "renamed" {
		t.Errorf("win.SetTitle:\nhave %q\nwant \"renamed\"", s)
	}

	if n := len(Windows()); n != 1 {
		t.Errorf("Windows:\nhave %d\nwant 1", n)
	}
	win.Close()
	if wins := Windows(); wins != nil {
		t.Errorf("Windows:\nhave %v\nwant nil", wins)
	}
}

func TestWindowLimit(t *testing.T) {
	if _, err := NewWindow(64, 64, "w"); err != nil {
		t.Skipf("NewWindow failed (no window system?):\n%v", err)
	}
	defer Terminate()
	for i := 1; i < MaxWindows; i++ {
		if _, err := NewWindow(64, 64, "w"); err != nil {
			t.Fatalf("NewWindow failed:\n%v", err)
		}
	}
	if _, err := NewWindow(64, 64, "w"); err == nil {
		t.Error("NewWindow:\nhave nil\nwant error")
	}
}
