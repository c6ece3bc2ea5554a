// Copyright 2025 The go-gfx Authors. All rights reserved.

package driver

import (
	"github.com/go-gfx/gfx/handle"
)

// Stage is a mask of programmable pipeline stages.
type Stage int

// Stages.
const (
	StageVertex Stage = 1 << iota
	StageHull
	StageDomain
	StageGeometry
	StagePixel
)

// ShaderSet is an ordered set of shader stage handles to be
// linked into one program. Only three shapes exist:
// vertex+pixel, vertex+geometry+pixel and
// vertex+hull+domain+pixel. The shape dictates exactly which
// stages participate in the link; no stage is dropped or
// reordered.
type ShaderSet struct {
	shaders []handle.Shader
	stages  Stage
}

// SimpleSet returns the vertex+pixel shader set.
func SimpleSet(vs, ps handle.Shader) *ShaderSet {
	return &ShaderSet{
		shaders: []handle.Shader{vs, ps},
		stages:  StageVertex | StagePixel,
	}
}

// GeometrySet returns the vertex+geometry+pixel shader set.
func GeometrySet(vs, gs, ps handle.Shader) *ShaderSet {
	return &ShaderSet{
		shaders: []handle.Shader{vs, gs, ps},
		stages:  StageVertex | StageGeometry | StagePixel,
	}
}

// TessellatedSet returns the vertex+hull+domain+pixel shader set.
func TessellatedSet(vs, hs, ds, ps handle.Shader) *ShaderSet {
	return &ShaderSet{
		shaders: []handle.Shader{vs, hs, ds, ps},
		stages:  StageVertex | StageHull | StageDomain | StagePixel,
	}
}

// Shaders returns the set's stage handles in link order.
func (s *ShaderSet) Shaders() []handle.Shader { return s.shaders }

// Stages returns the mask of stages the set declares.
func (s *ShaderSet) Stages() Stage { return s.stages }

// ProgramInfo is the usage metadata recorded for a linked
// program.
type ProgramInfo struct {
	// Stages is the set of stages linked into the program.
	Stages Stage
	// ActiveAttributes and ActiveUniforms are the counts
	// reported by the native linker.
	ActiveAttributes int
	ActiveUniforms   int
}

// ShaderError means that a shader stage failed to compile.
// Log carries the native compiler's diagnostic.
type ShaderError struct {
	Stage Stage
	Log   string
}

func (e *ShaderError) Error() string {
	return "driver: shader compilation failed: " + e.Log
}

// ProgramError means that a shader set failed to link.
// Log carries the native linker's diagnostic.
type ProgramError struct {
	Log string
}

func (e *ProgramError) Error() string {
	return "driver: program link failed: " + e.Log
}
