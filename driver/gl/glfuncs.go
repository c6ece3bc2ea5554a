// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"unsafe"

	gl46 "github.com/go-gl/gl/v4.6-core/gl"
)

// loadFuncs loads the GL entry points for the current context
// and returns the real call surface.
func loadFuncs() (Funcs, error) {
	if err := gl46.Init(); err != nil {
		return nil, err
	}
	return nativeFuncs{}, nil
}

// nativeFuncs implements Funcs over the loaded GL entry points.
type nativeFuncs struct{}

func bytesPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl46.Ptr(data)
}

func (nativeFuncs) GetError() Enum {
	return Enum(gl46.GetError())
}

func (nativeFuncs) GetInteger(pname Enum) int {
	var v int32
	gl46.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (nativeFuncs) GetStringi(pname Enum, index int) string {
	return gl46.GoStr(gl46.GetStringi(uint32(pname), uint32(index)))
}

func (nativeFuncs) GenBuffer() uint32 {
	var name uint32
	gl46.GenBuffers(1, &name)
	return name
}

func (nativeFuncs) DeleteBuffer(name uint32) {
	gl46.DeleteBuffers(1, &name)
}

func (nativeFuncs) BindBuffer(target Enum, name uint32) {
	gl46.BindBuffer(uint32(target), name)
}

func (nativeFuncs) BufferData(target Enum, size int, data []byte, usage Enum) {
	gl46.BufferData(uint32(target), size, bytesPtr(data), uint32(usage))
}

func (nativeFuncs) BufferStorage(target Enum, size int, data []byte, flags Enum) {
	gl46.BufferStorage(uint32(target), size, bytesPtr(data), uint32(flags))
}

func (nativeFuncs) BufferSubData(target Enum, offset int, data []byte) {
	gl46.BufferSubData(uint32(target), offset, len(data), bytesPtr(data))
}

func (nativeFuncs) MapBuffer(target Enum, access Enum) []byte {
	p := gl46.MapBuffer(uint32(target), uint32(access))
	if p == nil {
		return nil
	}
	var size int32
	gl46.GetBufferParameteriv(uint32(target), uint32(BUFFER_SIZE), &size)
	return unsafe.Slice((*byte)(p), size)
}

func (nativeFuncs) UnmapBuffer(target Enum) bool {
	return gl46.UnmapBuffer(uint32(target))
}

func (nativeFuncs) CreateShader(xtype Enum) uint32 {
	return gl46.CreateShader(uint32(xtype))
}

func (nativeFuncs) DeleteShader(name uint32) {
	gl46.DeleteShader(name)
}

func (nativeFuncs) ShaderSource(name uint32, src string) {
	csrc, free := gl46.Strs(src + "\x00")
	defer free()
	gl46.ShaderSource(name, 1, csrc, nil)
}

func (nativeFuncs) CompileShader(name uint32) {
	gl46.CompileShader(name)
}

func (nativeFuncs) GetShaderi(name uint32, pname Enum) int {
	var v int32
	gl46.GetShaderiv(name, uint32(pname), &v)
	return int(v)
}

func (nativeFuncs) ShaderInfoLog(name uint32) string {
	var n int32
	gl46.GetShaderiv(name, gl46.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	log := make([]byte, n)
	gl46.GetShaderInfoLog(name, n, nil, &log[0])
	return string(log[:n-1])
}

func (nativeFuncs) CreateProgram() uint32 {
	return gl46.CreateProgram()
}

func (nativeFuncs) DeleteProgram(name uint32) {
	gl46.DeleteProgram(name)
}

func (nativeFuncs) AttachShader(prog, shader uint32) {
	gl46.AttachShader(prog, shader)
}

func (nativeFuncs) DetachShader(prog, shader uint32) {
	gl46.DetachShader(prog, shader)
}

func (nativeFuncs) LinkProgram(name uint32) {
	gl46.LinkProgram(name)
}

func (nativeFuncs) GetProgrami(name uint32, pname Enum) int {
	var v int32
	gl46.GetProgramiv(name, uint32(pname), &v)
	return int(v)
}

func (nativeFuncs) ProgramInfoLog(name uint32) string {
	var n int32
	gl46.GetProgramiv(name, gl46.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	log := make([]byte, n)
	gl46.GetProgramInfoLog(name, n, nil, &log[0])
	return string(log[:n-1])
}

func (nativeFuncs) GenTexture() uint32 {
	var name uint32
	gl46.GenTextures(1, &name)
	return name
}

func (nativeFuncs) DeleteTexture(name uint32) {
	gl46.DeleteTextures(1, &name)
}

func (nativeFuncs) BindTexture(target Enum, name uint32) {
	gl46.BindTexture(uint32(target), name)
}

func (nativeFuncs) TexStorage1D(target Enum, levels int, ifmt Enum, w int) {
	gl46.TexStorage1D(uint32(target), int32(levels), uint32(ifmt), int32(w))
}

func (nativeFuncs) TexStorage2D(target Enum, levels int, ifmt Enum, w, h int) {
	gl46.TexStorage2D(uint32(target), int32(levels), uint32(ifmt), int32(w), int32(h))
}

func (nativeFuncs) TexStorage3D(target Enum, levels int, ifmt Enum, w, h, d int) {
	gl46.TexStorage3D(uint32(target), int32(levels), uint32(ifmt), int32(w), int32(h), int32(d))
}

func (nativeFuncs) TexImage1D(target Enum, level int, ifmt Enum, w int, format, xtype Enum, data []byte) {
	gl46.TexImage1D(uint32(target), int32(level), int32(ifmt), int32(w), 0, uint32(format), uint32(xtype), bytesPtr(data))
}

func (nativeFuncs) TexImage2D(target Enum, level int, ifmt Enum, w, h int, format, xtype Enum, data []byte) {
	gl46.TexImage2D(uint32(target), int32(level), int32(ifmt), int32(w), int32(h), 0, uint32(format), uint32(xtype), bytesPtr(data))
}

func (nativeFuncs) TexImage3D(target Enum, level int, ifmt Enum, w, h, d int, format, xtype Enum, data []byte) {
	gl46.TexImage3D(uint32(target), int32(level), int32(ifmt), int32(w), int32(h), int32(d), 0, uint32(format), uint32(xtype), bytesPtr(data))
}

func (nativeFuncs) TexImage2DMultisample(target Enum, samples int, ifmt Enum, w, h int) {
	gl46.TexImage2DMultisample(uint32(target), int32(samples), uint32(ifmt), int32(w), int32(h), false)
}

func (nativeFuncs) TexSubImage1D(target Enum, level, x, w int, format, xtype Enum, data []byte) {
	gl46.TexSubImage1D(uint32(target), int32(level), int32(x), int32(w), uint32(format), uint32(xtype), bytesPtr(data))
}

func (nativeFuncs) TexSubImage2D(target Enum, level, x, y, w, h int, format, xtype Enum, data []byte) {
	gl46.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(w), int32(h), uint32(format), uint32(xtype), bytesPtr(data))
}

func (nativeFuncs) TexSubImage3D(target Enum, level, x, y, z, w, h, d int, format, xtype Enum, data []byte) {
	gl46.TexSubImage3D(uint32(target), int32(level), int32(x), int32(y), int32(z), int32(w), int32(h), int32(d), uint32(format), uint32(xtype), bytesPtr(data))
}

func (nativeFuncs) TexBuffer(target Enum, ifmt Enum, buffer uint32) {
	gl46.TexBuffer(uint32(target), uint32(ifmt), buffer)
}

func (nativeFuncs) GenRenderbuffer() uint32 {
	var name uint32
	gl46.GenRenderbuffers(1, &name)
	return name
}

func (nativeFuncs) DeleteRenderbuffer(name uint32) {
	gl46.DeleteRenderbuffers(1, &name)
}

func (nativeFuncs) BindRenderbuffer(target Enum, name uint32) {
	gl46.BindRenderbuffer(uint32(target), name)
}

func (nativeFuncs) RenderbufferStorage(target Enum, ifmt Enum, w, h int) {
	gl46.RenderbufferStorage(uint32(target), uint32(ifmt), int32(w), int32(h))
}

func (nativeFuncs) RenderbufferStorageMultisample(target Enum, samples int, ifmt Enum, w, h int) {
	gl46.RenderbufferStorageMultisample(uint32(target), int32(samples), uint32(ifmt), int32(w), int32(h))
}

func (nativeFuncs) GenSampler() uint32 {
	var name uint32
	gl46.GenSamplers(1, &name)
	return name
}

func (nativeFuncs) DeleteSampler(name uint32) {
	gl46.DeleteSamplers(1, &name)
}

func (nativeFuncs) SamplerParameteri(name uint32, pname Enum, param int) {
	gl46.SamplerParameteri(name, uint32(pname), int32(param))
}

func (nativeFuncs) SamplerParameterf(name uint32, pname Enum, param float32) {
	gl46.SamplerParameterf(name, uint32(pname), param)
}

func (nativeFuncs) SamplerParameterfv(name uint32, pname Enum, params *[4]float32) {
	gl46.SamplerParameterfv(name, uint32(pname), &params[0])
}
