// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"fmt"
	"strings"
)

// fakeGL implements Funcs in memory so that capability branching
// and call sequencing can be checked without a live context.
type fakeGL struct {
	major, minor int
	maxTexSize   int
	exts         []string

	calls []string

	next     uint32
	buffers  map[uint32][]byte
	shaders  map[uint32]string
	programs map[uint32][]uint32
	mapped   map[Enum]uint32
	bound    map[Enum]uint32

	failCompile bool
	failLink    bool
	errOnce     Enum
}

func newFakeGL(major, minor int, exts ...string) *fakeGL {
	return &fakeGL{
		major:      major,
		minor:      minor,
		maxTexSize: 16384,
		exts:       exts,
		buffers:    make(map[uint32][]byte),
		shaders:    make(map[uint32]string),
		programs:   make(map[uint32][]uint32),
		mapped:     make(map[Enum]uint32),
		bound:      make(map[Enum]uint32),
	}
}

func (f *fakeGL) call(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// called reports whether any recorded call starts with prefix.
func (f *fakeGL) called(prefix string) bool {
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (f *fakeGL) reset() { f.calls = nil }

func (f *fakeGL) gen() uint32 {
	f.next++
	return f.next
}

func (f *fakeGL) GetError() Enum {
	e := f.errOnce
	f.errOnce = NO_ERROR
	return e
}

func (f *fakeGL) GetInteger(pname Enum) int {
	switch pname {
	case MAJOR_VERSION:
		return f.major
	case MINOR_VERSION:
		return f.minor
	case NUM_EXTENSIONS:
		return len(f.exts)
	case MAX_TEXTURE_SIZE:
		return f.maxTexSize
	}
	return 0
}

func (f *fakeGL) GetStringi(pname Enum, index int) string {
	if pname == EXTENSIONS {
		return f.exts[index]
	}
	return ""
}

func (f *fakeGL) GenBuffer() uint32 {
	name := f.gen()
	f.buffers[name] = nil
	f.call("GenBuffer=%d", name)
	return name
}

func (f *fakeGL) DeleteBuffer(name uint32) {
	delete(f.buffers, name)
	f.call("DeleteBuffer(%d)", name)
}

func (f *fakeGL) BindBuffer(target Enum, name uint32) {
	f.bound[target] = name
	f.call("BindBuffer(%#x,%d)", uint32(target), name)
}

func (f *fakeGL) BufferData(target Enum, size int, data []byte, usage Enum) {
	b := make([]byte, size)
	copy(b, data)
	f.buffers[f.bound[target]] = b
	f.call("BufferData(%#x,%d,%#x)", uint32(target), size, uint32(usage))
}

func (f *fakeGL) BufferStorage(target Enum, size int, data []byte, flags Enum) {
	b := make([]byte, size)
	copy(b, data)
	f.buffers[f.bound[target]] = b
	f.call("BufferStorage(%#x,%d,%#x)", uint32(target), size, uint32(flags))
}

func (f *fakeGL) BufferSubData(target Enum, offset int, data []byte) {
	copy(f.buffers[f.bound[target]][offset:], data)
	f.call("BufferSubData(%#x,%d,%d)", uint32(target), offset, len(data))
}

func (f *fakeGL) MapBuffer(target Enum, access Enum) []byte {
	name, ok := f.bound[target]
	if !ok {
		return nil
	}
	f.mapped[target] = name
	f.call("MapBuffer(%#x,%#x)", uint32(target), uint32(access))
	return f.buffers[name]
}

func (f *fakeGL) UnmapBuffer(target Enum) bool {
	_, ok := f.mapped[target]
	delete(f.mapped, target)
	f.call("UnmapBuffer(%#x)", uint32(target))
	return ok
}

func (f *fakeGL) CreateShader(xtype Enum) uint32 {
	name := f.gen()
	f.shaders[name] = ""
	f.call("CreateShader(%#x)=%d", uint32(xtype), name)
	return name
}

func (f *fakeGL) DeleteShader(name uint32) {
	delete(f.shaders, name)
	f.call("DeleteShader(%d)", name)
}

func (f *fakeGL) ShaderSource(name uint32, src string) {
	f.shaders[name] = src
	f.call("ShaderSource(%d)", name)
}

func (f *fakeGL) CompileShader(name uint32) {
	f.call("CompileShader(%d)", name)
}

func (f *fakeGL) GetShaderi(name uint32, pname Enum) int {
	if pname == COMPILE_STATUS && f.failCompile {
		return 0
	}
	return 1
}

func (f *fakeGL) ShaderInfoLog(name uint32) string {
	return "0:1: fake compile error"
}

func (f *fakeGL) CreateProgram() uint32 {
	name := f.gen()
	f.programs[name] = nil
	f.call("CreateProgram=%d", name)
	return name
}

func (f *fakeGL) DeleteProgram(name uint32) {
	delete(f.programs, name)
	f.call("DeleteProgram(%d)", name)
}

func (f *fakeGL) AttachShader(prog, shader uint32) {
	f.programs[prog] = append(f.programs[prog], shader)
	f.call("AttachShader(%d,%d)", prog, shader)
}

func (f *fakeGL) DetachShader(prog, shader uint32) {
	s := f.programs[prog]
	for i := range s {
		if s[i] == shader {
			f.programs[prog] = append(s[:i], s[i+1:]...)
			break
		}
	}
	f.call("DetachShader(%d,%d)", prog, shader)
}

func (f *fakeGL) LinkProgram(name uint32) {
	f.call("LinkProgram(%d)", name)
}

func (f *fakeGL) GetProgrami(name uint32, pname Enum) int {
	switch pname {
	case LINK_STATUS:
		if f.failLink {
			return 0
		}
		return 1
	case ACTIVE_ATTRIBUTES:
		return 2
	case ACTIVE_UNIFORMS:
		return 3
	}
	return 0
}

func (f *fakeGL) ProgramInfoLog(name uint32) string {
	return "fake link error"
}

func (f *fakeGL) GenTexture() uint32 {
	name := f.gen()
	f.call("GenTexture=%d", name)
	return name
}

func (f *fakeGL) DeleteTexture(name uint32) {
	f.call("DeleteTexture(%d)", name)
}

func (f *fakeGL) BindTexture(target Enum, name uint32) {
	f.bound[target] = name
	f.call("BindTexture(%#x,%d)", uint32(target), name)
}

func (f *fakeGL) TexStorage1D(target Enum, levels int, ifmt Enum, w int) {
	f.call("TexStorage1D(%#x,%d,%#x,%d)", uint32(target), levels, uint32(ifmt), w)
}

func (f *fakeGL) TexStorage2D(target Enum, levels int, ifmt Enum, w, h int) {
	f.call("TexStorage2D(%#x,%d,%#x,%d,%d)", uint32(target), levels, uint32(ifmt), w, h)
}

func (f *fakeGL) TexStorage3D(target Enum, levels int, ifmt Enum, w, h, d int) {
	f.call("TexStorage3D(%#x,%d,%#x,%d,%d,%d)", uint32(target), levels, uint32(ifmt), w, h, d)
}

func (f *fakeGL) TexImage1D(target Enum, level int, ifmt Enum, w int, format, xtype Enum, data []byte) {
	f.call("TexImage1D(%#x,%d,%d)", uint32(target), level, w)
}

func (f *fakeGL) TexImage2D(target Enum, level int, ifmt Enum, w, h int, format, xtype Enum, data []byte) {
	f.call("TexImage2D(%#x,%d,%d,%d)", uint32(target), level, w, h)
}

func (f *fakeGL) TexImage3D(target Enum, level int, ifmt Enum, w, h, d int, format, xtype Enum, data []byte) {
	f.call("TexImage3D(%#x,%d,%d,%d,%d)", uint32(target), level, w, h, d)
}

func (f *fakeGL) TexImage2DMultisample(target Enum, samples int, ifmt Enum, w, h int) {
	f.call("TexImage2DMultisample(%#x,%d,%d,%d)", uint32(target), samples, w, h)
}

func (f *fakeGL) TexSubImage1D(target Enum, level, x, w int, format, xtype Enum, data []byte) {
	f.call("TexSubImage1D(%#x,%d,%d)", uint32(target), level, w)
}

func (f *fakeGL) TexSubImage2D(target Enum, level, x, y, w, h int, format, xtype Enum, data []byte) {
	f.call("TexSubImage2D(%#x,%d,%d,%d)", uint32(target), level, w, h)
}

func (f *fakeGL) TexSubImage3D(target Enum, level, x, y, z, w, h, d int, format, xtype Enum, data []byte) {
	f.call("TexSubImage3D(%#x,%d,%d,%d,%d)", uint32(target), level, w, h, d)
}

func (f *fakeGL) TexBuffer(target Enum, ifmt Enum, buffer uint32) {
	f.call("TexBuffer(%#x,%#x,%d)", uint32(target), uint32(ifmt), buffer)
}

func (f *fakeGL) GenRenderbuffer() uint32 {
	name := f.gen()
	f.call("GenRenderbuffer=%d", name)
	return name
}

func (f *fakeGL) DeleteRenderbuffer(name uint32) {
	f.call("DeleteRenderbuffer(%d)", name)
}

func (f *fakeGL) BindRenderbuffer(target Enum, name uint32) {
	f.bound[target] = name
	f.call("BindRenderbuffer(%#x,%d)", uint32(target), name)
}

func (f *fakeGL) RenderbufferStorage(target Enum, ifmt Enum, w, h int) {
	f.call("RenderbufferStorage(%#x,%#x,%d,%d)", uint32(target), uint32(ifmt), w, h)
}

func (f *fakeGL) RenderbufferStorageMultisample(target Enum, samples int, ifmt Enum, w, h int) {
	f.call("RenderbufferStorageMultisample(%#x,%d,%#x,%d,%d)", uint32(target), samples, uint32(ifmt), w, h)
}

func (f *fakeGL) GenSampler() uint32 {
	name := f.gen()
	f.call("GenSampler=%d", name)
	return name
}

func (f *fakeGL) DeleteSampler(name uint32) {
	f.call("DeleteSampler(%d)", name)
}

func (f *fakeGL) SamplerParameteri(name uint32, pname Enum, param int) {
	f.call("SamplerParameteri(%d,%#x,%d)", name, uint32(pname), param)
}

func (f *fakeGL) SamplerParameterf(name uint32, pname Enum, param float32) {
	f.call("SamplerParameterf(%d,%#x,%g)", name, uint32(pname), param)
}

func (f *fakeGL) SamplerParameterfv(name uint32, pname Enum, params *[4]float32) {
	f.call("SamplerParameterfv(%d,%#x,%v)", name, uint32(pname), *params)
}

// testDevice opens a device over a fake context of the given
// version and returns both ends.
func testDevice(major, minor int, exts ...string) (*fakeGL, *Device, *Factory) {
	fns := newFakeGL(major, minor, exts...)
	dev, err := Open(fns)
	if err != nil {
		panic(err)
	}
	fns.reset()
	return fns, dev, dev.NewFactory().(*Factory)
}
