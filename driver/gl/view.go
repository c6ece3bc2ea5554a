// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"fmt"

	"github.com/go-gfx/gfx/driver"
	"github.com/go-gfx/gfx/handle"
)

// shaderResource is the native record behind a shader resource
// view: the texture name to sample and the target to bind it to.
type shaderResource struct {
	name   uint32
	target Enum
}

// targetView is the native record behind a render target or
// depth/stencil view. layer is NoLayer for whole-level views.
type targetView struct {
	tex   texture
	level int
	layer int
}

// ViewTextureAsShaderResource derives a shader resource view.
// Any sampled texture can back one; surfaces cannot.
func (f *Factory) ViewTextureAsShaderResource(t handle.Texture) (handle.ShaderResourceView, error) {
	f.begin()
	tex, desc, err := f.texObject(t)
	if err != nil {
		return handle.ShaderResourceView{}, err
	}
	if tex.surface {
		return handle.ShaderResourceView{}, fmt.Errorf("%w: shader resource", driver.ErrNoBindFlag)
	}
	srv := shaderResource{name: tex.name, target: tex.target}
	return f.dev.reg.RegisterShaderResource(srv, desc), nil
}

// ViewBufferAsShaderResource derives a shader resource view over
// a buffer. The buffer's storage is exposed to shaders through a
// buffer texture.
func (f *Factory) ViewBufferAsShaderResource(b handle.Buffer) (handle.ShaderResourceView, error) {
	f.begin()
	name, info, err := f.bufferName(b)
	if err != nil {
		return handle.ShaderResourceView{}, err
	}
	if info.Bind&driver.BindShaderResource == 0 {
		return handle.ShaderResourceView{}, fmt.Errorf("%w: shader resource", driver.ErrNoBindFlag)
	}
	fns := f.dev.fns
	tex := fns.GenTexture()
	fns.BindTexture(TEXTURE_BUFFER, tex)
	fns.TexBuffer(TEXTURE_BUFFER, R8, name)
	if e := fns.GetError(); e != NO_ERROR {
		fns.DeleteTexture(tex)
		return handle.ShaderResourceView{}, fmt.Errorf("gl: buffer view creation failed (%#04x)", uint32(e))
	}
	srv := shaderResource{name: tex, target: TEXTURE_BUFFER}
	return f.dev.reg.RegisterShaderResource(srv, info), nil
}

// viewTarget validates a level/layer selection against the
// source texture and builds the view record. The bind flag must
// already have been checked by the caller.
func viewTarget(tex texture, desc *driver.TexDesc, level, layer int) (targetView, error) {
	if tex.surface {
		if level != 0 || layer != driver.NoLayer {
			return targetView{}, fmt.Errorf("%w: surfaces have a single unlayered level", driver.ErrUnsupported)
		}
		return targetView{tex: tex, layer: driver.NoLayer}, nil
	}
	if level < 0 || level >= desc.Levels {
		return targetView{}, fmt.Errorf("gl: mip level %d out of range", level)
	}
	if layer != driver.NoLayer {
		if !desc.Layered() {
			return targetView{}, fmt.Errorf("%w: texture kind has no array layers", driver.ErrUnsupported)
		}
		if n := max(desc.Layers, desc.Faces()); layer < 0 || layer >= n {
			return targetView{}, fmt.Errorf("gl: array layer %d out of range", layer)
		}
	}
	return targetView{tex: tex, level: level, layer: layer}, nil
}

// ViewTextureAsRenderTarget derives a render target view of one
// mip level, optionally restricted to a single array layer.
func (f *Factory) ViewTextureAsRenderTarget(t handle.Texture, level, layer int) (handle.RenderTargetView, error) {
	f.begin()
	tex, desc, err := f.texObject(t)
	if err != nil {
		return handle.RenderTargetView{}, err
	}
	if !tex.surface && desc.Bind&driver.BindRenderTarget == 0 {
		return handle.RenderTargetView{}, fmt.Errorf("%w: render target", driver.ErrNoBindFlag)
	}
	tv, err := viewTarget(tex, &desc, level, layer)
	if err != nil {
		return handle.RenderTargetView{}, err
	}
	return f.dev.reg.RegisterRenderTarget(tv, desc), nil
}

// ViewTextureAsDepthStencil derives a depth/stencil view under
// the same level/layer rules as render target views.
func (f *Factory) ViewTextureAsDepthStencil(t handle.Texture, level, layer int) (handle.DepthStencilView, error) {
	f.begin()
	tex, desc, err := f.texObject(t)
	if err != nil {
		return handle.DepthStencilView{}, err
	}
	if !tex.surface && desc.Bind&driver.BindDepthStencil == 0 {
		return handle.DepthStencilView{}, fmt.Errorf("%w: depth/stencil", driver.ErrNoBindFlag)
	}
	tv, err := viewTarget(tex, &desc, level, layer)
	if err != nil {
		return handle.DepthStencilView{}, err
	}
	return f.dev.reg.RegisterDepthStencil(tv, desc), nil
}

// ViewTextureAsUnorderedAccess derives an unordered access view.
// Image load/store is not wired into this backend yet.
func (f *Factory) ViewTextureAsUnorderedAccess(t handle.Texture) (handle.UnorderedAccessView, error) {
	f.begin()
	if _, _, err := f.texObject(t); err != nil {
		return handle.UnorderedAccessView{}, err
	}
	return handle.UnorderedAccessView{}, fmt.Errorf("%w: unordered access views", driver.ErrUnsupported)
}

// ViewBufferAsUnorderedAccess derives an unordered access view
// over a buffer. Image load/store is not wired into this backend
// yet.
func (f *Factory) ViewBufferAsUnorderedAccess(b handle.Buffer) (handle.UnorderedAccessView, error) {
	f.begin()
	if _, _, err := f.bufferName(b); err != nil {
		return handle.UnorderedAccessView{}, err
	}
	return handle.UnorderedAccessView{}, fmt.Errorf("%w: unordered access views", driver.ErrUnsupported)
}
