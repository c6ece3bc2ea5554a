// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"fmt"

	"github.com/go-gfx/gfx/driver"
	"github.com/go-gfx/gfx/handle"
)

// pipelineState is the flattened, fully-defaulted aggregate a
// pipeline descriptor folds into. It is assembled once at
// creation and read-only afterwards; binding it later issues the
// state calls it records.
type pipelineState struct {
	program   uint32
	primitive driver.Primitive
	raster    driver.RasterState
	scissor   bool
	// vertexBuffers holds the populated buffer binding slots.
	// Slot index is the bind point.
	vertexBuffers [driver.MaxVertexBuffers]*driver.VertexBufferDesc
	// attributes pairs each populated attribute slot with the
	// layout of the buffer slot it reads from.
	attributes [driver.MaxVertexAttributes]*bufferElement
	stencil    *stencilState
	depth      *driver.DepthDesc
	output     outputMerger
}

// bufferElement is a vertex attribute resolved against its
// buffer binding slot.
type bufferElement struct {
	desc driver.VertexBufferDesc
	elem driver.Element
}

// stencilState holds the per-face stencil configuration with
// unspecified faces already defaulted.
type stencilState struct {
	front driver.StencilSide
	back  driver.StencilSide
}

// blendState holds the per-channel blend configuration of an
// enabled color slot.
type blendState struct {
	color driver.BlendChannel
	alpha driver.BlendChannel
}

// colorState is the folded state of one color target slot.
// A nil blend leaves blending disabled for the slot.
type colorState struct {
	mask  driver.ColorMask
	blend *blendState
}

// outputMerger records the per-target output state.
// drawMask has bit i set iff color slot i is populated.
type outputMerger struct {
	drawMask uint32
	colors   [driver.MaxColorTargets]colorState
}

// colorDefault is the state of an unpopulated color slot: all
// channels writable, blending disabled.
func colorDefault() colorState {
	return colorState{mask: driver.MaskAll}
}

// assemblePipeline folds a pipeline descriptor into a pipeline
// state aggregate. Assembly is pure: the same descriptor always
// folds into the same state, and no native call is issued.
func assemblePipeline(prog uint32, desc *driver.PipelineDesc) (*pipelineState, error) {
	ps := &pipelineState{
		program:   prog,
		primitive: desc.Primitive,
		raster:    desc.Rasterizer,
		scissor:   desc.Scissor,
	}
	// The aggregate must not alias the caller's descriptor.
	for i, vb := range desc.VertexBuffers {
		if vb != nil {
			v := *vb
			ps.vertexBuffers[i] = &v
		}
	}

	for i, at := range desc.Attributes {
		if at == nil {
			continue
		}
		if at.Buffer < 0 || at.Buffer >= driver.MaxVertexBuffers || desc.VertexBuffers[at.Buffer] == nil {
			return nil, fmt.Errorf("%w: attribute %d references vertex buffer slot %d",
				driver.ErrDescriptor, i, at.Buffer)
		}
		ps.attributes[i] = &bufferElement{
			desc: *desc.VertexBuffers[at.Buffer],
			elem: at.Elem,
		}
	}

	if ds := desc.DepthStencil; ds != nil {
		if ds.Depth != nil {
			d := *ds.Depth
			ps.depth = &d
		}
		if ds.Front != nil || ds.Back != nil {
			st := stencilState{
				front: driver.StencilDefault(),
				back:  driver.StencilDefault(),
			}
			if ds.Front != nil {
				st.front = *ds.Front
			}
			if ds.Back != nil {
				st.back = *ds.Back
			}
			ps.stencil = &st
		}
	}

	for i, ct := range desc.ColorTargets {
		if ct == nil {
			ps.output.colors[i] = colorDefault()
			continue
		}
		ps.output.drawMask |= 1 << i
		cs := colorState{mask: ct.Mask}
		if ct.Color != nil || ct.Alpha != nil {
			b := blendState{
				color: driver.BlendIdentity(),
				alpha: driver.BlendIdentity(),
			}
			if ct.Color != nil {
				b.color = *ct.Color
			}
			if ct.Alpha != nil {
				b.alpha = *ct.Alpha
			}
			cs.blend = &b
		}
		ps.output.colors[i] = cs
	}

	return ps, nil
}

// CreatePipeline folds a pipeline descriptor and a linked program
// into one immutable pipeline state aggregate.
// The program handle is recorded as the pipeline's metadata so
// that the program's lifetime can be tracked from the pipeline.
func (f *Factory) CreatePipeline(prog handle.Program, desc *driver.PipelineDesc) (handle.Pipeline, error) {
	f.begin()
	name, err := f.programName(prog)
	if err != nil {
		return handle.Pipeline{}, err
	}
	ps, err := assemblePipeline(name, desc)
	if err != nil {
		return handle.Pipeline{}, err
	}
	driver.Logger().Debug("gl: assembled pipeline", "program", name, "drawMask", ps.output.drawMask)
	return f.dev.reg.RegisterPipeline(ps, prog), nil
}
