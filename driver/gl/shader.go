// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"errors"

	"github.com/go-gfx/gfx/driver"
	"github.com/go-gfx/gfx/handle"
)

// stageType converts a single driver.Stage to a GL shader type.
func stageType(stage driver.Stage) Enum {
	switch stage {
	case driver.StageVertex:
		return VERTEX_SHADER
	case driver.StageHull:
		return TESS_CONTROL_SHADER
	case driver.StageDomain:
		return TESS_EVALUATION_SHADER
	case driver.StageGeometry:
		return GEOMETRY_SHADER
	case driver.StagePixel:
		return FRAGMENT_SHADER
	}

	// Expected to be unreachable.
	return ^Enum(0)
}

// CreateShader compiles a single shader stage from source.
func (f *Factory) CreateShader(stage driver.Stage, src []byte) (handle.Shader, error) {
	f.begin()
	fns := f.dev.fns
	name := fns.CreateShader(stageType(stage))
	if name == 0 {
		return handle.Shader{}, errors.New("gl: shader object creation failed")
	}
	fns.ShaderSource(name, string(src))
	fns.CompileShader(name)
	if fns.GetShaderi(name, COMPILE_STATUS) == 0 {
		err := &driver.ShaderError{
			Stage: stage,
			Log:   fns.ShaderInfoLog(name),
		}
		fns.DeleteShader(name)
		return handle.Shader{}, err
	}
	driver.Logger().Debug("gl: compiled shader", "name", name)
	return f.dev.reg.RegisterShader(name, stage), nil
}

// CreateProgram links a shader set into a program object.
// All of the set's stages are attached before the link and
// detached after it, whether or not the link succeeds.
func (f *Factory) CreateProgram(set *driver.ShaderSet) (handle.Program, error) {
	f.begin()
	shaders := set.Shaders()
	names := make([]uint32, len(shaders))
	for i, h := range shaders {
		name, err := f.shaderName(h)
		if err != nil {
			return handle.Program{}, err
		}
		names[i] = name
	}
	fns := f.dev.fns
	prog := fns.CreateProgram()
	if prog == 0 {
		return handle.Program{}, errors.New("gl: program object creation failed")
	}
	for _, name := range names {
		fns.AttachShader(prog, name)
	}
	fns.LinkProgram(prog)
	for _, name := range names {
		fns.DetachShader(prog, name)
	}
	if fns.GetProgrami(prog, LINK_STATUS) == 0 {
		err := &driver.ProgramError{Log: fns.ProgramInfoLog(prog)}
		fns.DeleteProgram(prog)
		return handle.Program{}, err
	}
	info := driver.ProgramInfo{
		Stages:           set.Stages(),
		ActiveAttributes: int(fns.GetProgrami(prog, ACTIVE_ATTRIBUTES)),
		ActiveUniforms:   int(fns.GetProgrami(prog, ACTIVE_UNIFORMS)),
	}
	driver.Logger().Debug("gl: linked program", "name", prog,
		"attributes", info.ActiveAttributes, "uniforms", info.ActiveUniforms)
	return f.dev.reg.RegisterProgram(prog, info), nil
}
