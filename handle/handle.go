// Copyright 2025 The go-gfx Authors. All rights reserved.

// Package handle implements the registry that owns every native
// object created by a resource factory.
// Factories register the objects they create and resolve handles
// back to them; they never manage object lifetime themselves.
package handle

import (
	"errors"
	"sync"

	"github.com/go-gfx/gfx/internal/bitvec"
)

// Kind identifies the resource kind a Ref refers to.
type Kind int

// Resource kinds.
const (
	KInvalid Kind = iota
	KBuffer
	KShader
	KProgram
	KPipeline
	KTexture
	KShaderResource
	KRenderTarget
	KDepthStencil
	KUnorderedAccess
	KSampler
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KBuffer:
		return "buffer"
	case KShader:
		return "shader"
	case KProgram:
		return "program"
	case KPipeline:
		return "pipeline"
	case KTexture:
		return "texture"
	case KShaderResource:
		return "shader resource view"
	case KRenderTarget:
		return "render target view"
	case KDepthStencil:
		return "depth/stencil view"
	case KUnorderedAccess:
		return "unordered access view"
	case KSampler:
		return "sampler"
	}
	return "invalid"
}

// ErrInvalid means that a Ref does not identify a live registry
// entry. It is returned for zero refs and for refs whose entry
// has been released, possibly with the slot reused since.
var ErrInvalid = errors.New("handle: invalid or stale reference")

// ErrKind means that a Ref identifies a live entry of a
// different resource kind.
var ErrKind = errors.New("handle: resource kind mismatch")

// Ref is an opaque, generation-checked reference to a
// registry entry. The zero Ref is invalid.
type Ref struct {
	index int
	gen   uint32
	kind  Kind
}

// Kind returns the resource kind of the reference.
func (r Ref) Kind() Kind { return r.kind }

// IsZero returns whether the reference is the zero Ref.
func (r Ref) IsZero() bool { return r.gen == 0 }

type entry struct {
	gen  uint32
	kind Kind
	obj  any
	info any
}

// Registry maps opaque handles to native objects and their
// creation metadata. It is the sole owner of the objects
// registered with it.
// Registration and release are serialized; resolution may
// happen concurrently.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	used    bitvec.V[uint32]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Count returns the number of live entries.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.used.Len() - r.used.Rem()
}

func (r *Registry) register(k Kind, obj, info any) Ref {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.used.Search()
	if !ok {
		i = r.used.Grow(1)
	}
	r.used.Set(i)
	if i >= len(r.entries) {
		r.entries = append(r.entries, make([]entry, r.used.Len()-len(r.entries))...)
	}
	e := &r.entries[i]
	e.gen++
	e.kind = k
	e.obj = obj
	e.info = info
	return Ref{index: i, gen: e.gen, kind: k}
}

// Resolve returns the native object and creation metadata
// that ref identifies.
func (r *Registry) Resolve(ref Ref) (obj, info any, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, err := r.lookup(ref)
	if err != nil {
		return nil, nil, err
	}
	return e.obj, e.info, nil
}

// Release removes ref's entry from the registry.
// Any Ref to the entry, including ref itself, becomes stale.
func (r *Registry) Release(ref Ref) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, err := r.lookup(ref)
	if err != nil {
		return err
	}
	e.obj = nil
	e.info = nil
	r.used.Unset(ref.index)
	return nil
}

// lookup validates ref against the live entries.
// Callers must hold r.mu.
func (r *Registry) lookup(ref Ref) (*entry, error) {
	if ref.IsZero() || ref.index >= len(r.entries) || !r.used.IsSet(ref.index) {
		return nil, ErrInvalid
	}
	e := &r.entries[ref.index]
	if e.gen != ref.gen {
		return nil, ErrInvalid
	}
	if e.kind != ref.kind {
		return nil, ErrKind
	}
	return e, nil
}

// Typed handles wrap a Ref so that the resource kind is part of
// the type. The factory's public surface deals exclusively in
// these.

// Buffer is a handle to a registered buffer object.
type Buffer struct{ ref Ref }

// Shader is a handle to a registered shader object.
type Shader struct{ ref Ref }

// Program is a handle to a registered program object.
type Program struct{ ref Ref }

// Pipeline is a handle to a registered pipeline state object.
type Pipeline struct{ ref Ref }

// Texture is a handle to a registered texture or surface object.
type Texture struct{ ref Ref }

// ShaderResourceView is a handle to a registered shader resource view.
type ShaderResourceView struct{ ref Ref }

// RenderTargetView is a handle to a registered render target view.
type RenderTargetView struct{ ref Ref }

// DepthStencilView is a handle to a registered depth/stencil view.
type DepthStencilView struct{ ref Ref }

// UnorderedAccessView is a handle to a registered unordered access view.
type UnorderedAccessView struct{ ref Ref }

// Sampler is a handle to a registered sampler object.
type Sampler struct{ ref Ref }

// Ref accessors.

func (h Buffer) Ref() Ref              { return h.ref }
func (h Shader) Ref() Ref              { return h.ref }
func (h Program) Ref() Ref             { return h.ref }
func (h Pipeline) Ref() Ref            { return h.ref }
func (h Texture) Ref() Ref             { return h.ref }
func (h ShaderResourceView) Ref() Ref  { return h.ref }
func (h RenderTargetView) Ref() Ref    { return h.ref }
func (h DepthStencilView) Ref() Ref    { return h.ref }
func (h UnorderedAccessView) Ref() Ref { return h.ref }
func (h Sampler) Ref() Ref             { return h.ref }

// RegisterBuffer registers a buffer object and returns its handle.
func (r *Registry) RegisterBuffer(obj, info any) Buffer {
	return Buffer{r.register(KBuffer, obj, info)}
}

// RegisterShader registers a shader object and returns its handle.
func (r *Registry) RegisterShader(obj, info any) Shader {
	return Shader{r.register(KShader, obj, info)}
}

// RegisterProgram registers a program object and returns its handle.
func (r *Registry) RegisterProgram(obj, info any) Program {
	return Program{r.register(KProgram, obj, info)}
}

// RegisterPipeline registers a pipeline state object and returns
// its handle.
func (r *Registry) RegisterPipeline(obj, info any) Pipeline {
	return Pipeline{r.register(KPipeline, obj, info)}
}

// RegisterTexture registers a texture or surface object and
// returns its handle.
func (r *Registry) RegisterTexture(obj, info any) Texture {
	return Texture{r.register(KTexture, obj, info)}
}

// RegisterShaderResource registers a shader resource view and
// returns its handle.
func (r *Registry) RegisterShaderResource(obj, info any) ShaderResourceView {
	return ShaderResourceView{r.register(KShaderResource, obj, info)}
}

// RegisterRenderTarget registers a render target view and
// returns its handle.
func (r *Registry) RegisterRenderTarget(obj, info any) RenderTargetView {
	return RenderTargetView{r.register(KRenderTarget, obj, info)}
}

// RegisterDepthStencil registers a depth/stencil view and
// returns its handle.
func (r *Registry) RegisterDepthStencil(obj, info any) DepthStencilView {
	return DepthStencilView{r.register(KDepthStencil, obj, info)}
}

// RegisterSampler registers a sampler object and returns its handle.
func (r *Registry) RegisterSampler(obj, info any) Sampler {
	return Sampler{r.register(KSampler, obj, info)}
}
