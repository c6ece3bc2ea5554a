// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"errors"
	"testing"

	"github.com/go-gfx/gfx/driver"
)

const vsSource = `#version 330
void main() { gl_Position = vec4(0.0); }
`

const psSource = `#version 330
out vec4 color;
void main() { color = vec4(1.0); }
`

func TestCreateShader(t *testing.T) {
	fns, dev, f := testDevice(4, 6)
	s, err := f.CreateShader(driver.StageVertex, []byte(vsSource))
	if err != nil {
		t.Fatalf("CreateShader failed:\n%v", err)
	}
	if !fns.called("CreateShader(0x8b31)") {
		t.Errorf("CreateShader: vertex stage calls\nhave %v\nwant CreateShader(0x8b31)", fns.calls)
	}
	obj, info, err := dev.Handles().Resolve(s.Ref())
	if err != nil {
		t.Fatalf("Resolve failed:\n%v", err)
	}
	if got := fns.shaders[obj.(uint32)]; got != vsSource {
		t.Errorf("shader source:\nhave %q\nwant %q", got, vsSource)
	}
	if got := info.(driver.Stage); got != driver.StageVertex {
		t.Errorf("shader stage:\nhave %v\nwant %v", got, driver.StageVertex)
	}
}

func TestCreateShaderError(t *testing.T) {
	fns, dev, f := testDevice(4, 6)
	fns.failCompile = true
	_, err := f.CreateShader(driver.StagePixel, []byte("not glsl"))
	var serr *driver.ShaderError
	if !errors.As(err, &serr) {
		t.Fatalf("CreateShader:\nhave %v\nwant *driver.ShaderError", err)
	}
	if serr.Stage != driver.StagePixel || serr.Log == "" {
		t.Errorf("ShaderError:\nhave %+v\nwant pixel stage with log", serr)
	}
	if !fns.called("DeleteShader") {
		t.Error("CreateShader: failed shader object not deleted")
	}
	if n := dev.Handles().Count(); n != 0 {
		t.Errorf("registry count:\nhave %d\nwant 0", n)
	}
}

func TestCreateProgram(t *testing.T) {
	fns, dev, f := testDevice(4, 6)
	vs, err := f.CreateShader(driver.StageVertex, []byte(vsSource))
	if err != nil {
		t.Fatalf("CreateShader failed:\n%v", err)
	}
	ps, err := f.CreateShader(driver.StagePixel, []byte(psSource))
	if err != nil {
		t.Fatalf("CreateShader failed:\n%v", err)
	}
	p, err := f.CreateProgram(driver.SimpleSet(vs, ps))
	if err != nil {
		t.Fatalf("CreateProgram failed:\n%v", err)
	}
	obj, info, err := dev.Handles().Resolve(p.Ref())
	if err != nil {
		t.Fatalf("Resolve failed:\n%v", err)
	}
	// Stages are detached once the link completes.
	if got := len(fns.programs[obj.(uint32)]); got != 0 {
		t.Errorf("attached shaders after link:\nhave %d\nwant 0", got)
	}
	pi := info.(driver.ProgramInfo)
	want := driver.ProgramInfo{
		Stages:           driver.StageVertex | driver.StagePixel,
		ActiveAttributes: 2,
		ActiveUniforms:   3,
	}
	if pi != want {
		t.Errorf("ProgramInfo:\nhave %+v\nwant %+v", pi, want)
	}
}

func TestCreateProgramError(t *testing.T) {
	fns, dev, f := testDevice(4, 6)
	vs, _ := f.CreateShader(driver.StageVertex, []byte(vsSource))
	ps, _ := f.CreateShader(driver.StagePixel, []byte(psSource))
	fns.failLink = true
	_, err := f.CreateProgram(driver.SimpleSet(vs, ps))
	var perr *driver.ProgramError
	if !errors.As(err, &perr) {
		t.Fatalf("CreateProgram:\nhave %v\nwant *driver.ProgramError", err)
	}
	if perr.Log == "" {
		t.Error("ProgramError: empty link log")
	}
	if !fns.called("DeleteProgram") {
		t.Error("CreateProgram: failed program object not deleted")
	}
	if n := dev.Handles().Count(); n != 2 {
		t.Errorf("registry count:\nhave %d\nwant 2", n)
	}
}

func TestCreateProgramStaleShader(t *testing.T) {
	_, dev, f := testDevice(4, 6)
	vs, _ := f.CreateShader(driver.StageVertex, []byte(vsSource))
	ps, _ := f.CreateShader(driver.StagePixel, []byte(psSource))
	if err := dev.Handles().Release(ps.Ref()); err != nil {
		t.Fatalf("Release failed:\n%v", err)
	}
	if _, err := f.CreateProgram(driver.SimpleSet(vs, ps)); err == nil {
		t.Error("CreateProgram: released shader\nhave nil\nwant error")
	}
}
