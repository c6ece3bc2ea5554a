// Copyright 2025 The go-gfx Authors. All rights reserved.

package wsi

import (
	"errors"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	newWindow = newWindowGLFW
}

// initGLFW initializes the GLFW library once.
// glfw.Init must run on the main thread, so window creation is
// expected to happen there as well.
func initGLFW() error {
	if glfwOK {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return err
	}
	glfwOK = true
	return nil
}

var glfwOK bool

// Dispatch processes pending window system events.
// It must be called from the main thread.
func Dispatch() {
	if glfwOK {
		glfw.PollEvents()
	}
}

// Terminate destroys all windows and unloads the window system.
func Terminate() {
	for _, w := range Windows() {
		w.Close()
	}
	if glfwOK {
		glfw.Terminate()
		glfwOK = false
	}
}

// windowGLFW implements Window.
type windowGLFW struct {
	win    *glfw.Window
	width  int
	height int
	title  string
	mapped bool
}

// newWindowGLFW creates a hidden window owning a core profile
// context of the highest version the system provides.
func newWindowGLFW(width, height int, title string) (Window, error) {
	if err := initGLFW(); err != nil {
		return nil, err
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	var win *glfw.Window
	var err error
	for _, v := range [...][2]int{{4, 6}, {4, 4}, {4, 2}, {3, 3}, {3, 0}} {
		glfw.WindowHint(glfw.ContextVersionMajor, v[0])
		glfw.WindowHint(glfw.ContextVersionMinor, v[1])
		win, err = glfw.CreateWindow(width, height, title, nil, nil)
		if err == nil {
			break
		}
	}
	if win == nil {
		return nil, errors.New("wsi: no usable context version: " + err.Error())
	}
	return &windowGLFW{
		win:    win,
		width:  width,
		height: height,
		title:  title,
	}, nil
}

// MakeCurrent binds the window's context to the calling thread.
func (w *windowGLFW) MakeCurrent() { w.win.MakeContextCurrent() }

// Present swaps the window's front and back buffers.
func (w *windowGLFW) Present() { w.win.SwapBuffers() }

// Map makes the window visible.
func (w *windowGLFW) Map() error {
	w.win.Show()
	w.mapped = true
	return nil
}

// Unmap hides the window.
func (w *windowGLFW) Unmap() error {
	w.win.Hide()
	w.mapped = false
	return nil
}

// Resize resizes the window.
func (w *windowGLFW) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("wsi: invalid window size")
	}
	w.win.SetSize(width, height)
	w.width = width
	w.height = height
	return nil
}

// SetTitle sets the window's title.
func (w *windowGLFW) SetTitle(title string) error {
	w.win.SetTitle(title)
	w.title = title
	return nil
}

// Close closes the window.
func (w *windowGLFW) Close() {
	if w.win == nil {
		return
	}
	closeWindow(w)
	w.win.Destroy()
	w.win = nil
}

// Width returns the window's width.
func (w *windowGLFW) Width() int { return w.width }

// Height returns the window's height.
func (w *windowGLFW) Height() int { return w.height }

// Title returns the window's title.
func (w *windowGLFW) Title() string { return w.title }
