// Copyright 2025 The go-gfx Authors. All rights reserved.

package gl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-gfx/gfx/driver"
)

func TestCreateTextureBadSize(t *testing.T) {
	_, dev, f := testDevice(4, 6)

	_, err := f.CreateTexture(driver.TexDesc{
		Kind:  driver.Tex2D,
		Width: 64, Height: 64,
	}, driver.ChanUnorm, nil)
	var serr *driver.SizeError
	if !errors.As(err, &serr) || serr.Dim != 0 {
		t.Errorf("CreateTexture: zero levels\nhave %v\nwant SizeError(0)", err)
	}

	_, err = f.CreateTexture(driver.TexDesc{
		Kind:  driver.Tex2D,
		Width: 1 << 20, Height: 64,
		Levels: 1,
	}, driver.ChanUnorm, nil)
	if !errors.As(err, &serr) || serr.Dim != 1<<20 {
		t.Errorf("CreateTexture: oversize width\nhave %v\nwant SizeError(%d)", err, 1<<20)
	}

	if n := dev.Handles().Count(); n != 0 {
		t.Errorf("registry count:\nhave %d\nwant 0", n)
	}
}

func TestCreateTextureSurface(t *testing.T) {
	fns, dev, f := testDevice(4, 6)
	// Render-only, no data: gets the renderbuffer representation.
	h, err := f.CreateTexture(driver.TexDesc{
		Kind:  driver.Tex2D,
		Width: 800, Height: 600,
		Levels: 1,
		Bind:   driver.BindRenderTarget,
	}, driver.ChanUnorm, nil)
	if err != nil {
		t.Fatalf("CreateTexture failed:\n%v", err)
	}
	if !fns.called("RenderbufferStorage") {
		t.Errorf("CreateTexture: surface calls\nhave %v\nwant RenderbufferStorage", fns.calls)
	}
	if fns.called("GenTexture") {
		t.Error("CreateTexture: surface allocated a texture name")
	}
	obj, _, err := dev.Handles().Resolve(h.Ref())
	if err != nil {
		t.Fatalf("Resolve failed:\n%v", err)
	}
	if tex := obj.(texture); !tex.surface {
		t.Errorf("texture record:\nhave %+v\nwant surface", tex)
	}
}

func TestCreateTextureSampled(t *testing.T) {
	fns, dev, f := testDevice(4, 6)
	h, err := f.CreateTexture(driver.TexDesc{
		Kind:  driver.Tex2D,
		Width: 256, Height: 256,
		Levels: 9,
		Bind:   driver.BindShaderResource,
	}, driver.ChanSrgb, nil)
	if err != nil {
		t.Fatalf("CreateTexture failed:\n%v", err)
	}
	if !fns.called("TexStorage2D(0xde1,9,0x8c43,256,256)") {
		t.Errorf("CreateTexture: sampled calls\nhave %v\nwant TexStorage2D(0xde1,9,0x8c43,256,256)", fns.calls)
	}
	obj, _, err := dev.Handles().Resolve(h.Ref())
	if err != nil {
		t.Fatalf("Resolve failed:\n%v", err)
	}
	if tex := obj.(texture); tex.surface || tex.target != TEXTURE_2D {
		t.Errorf("texture record:\nhave %+v\nwant 2D texture", tex)
	}
}

func TestCreateTextureMutable(t *testing.T) {
	// 3.0 context: no immutable storage, each level is defined
	// with TexImage.
	fns, _, f := testDevice(3, 0)
	_, err := f.CreateTexture(driver.TexDesc{
		Kind:  driver.Tex2D,
		Width: 16, Height: 16,
		Levels: 3,
		Bind:   driver.BindShaderResource,
	}, driver.ChanUnorm, nil)
	if err != nil {
		t.Fatalf("CreateTexture failed:\n%v", err)
	}
	if fns.called("TexStorage2D") {
		t.Error("CreateTexture: mutable device called TexStorage2D")
	}
	for _, want := range [...]string{
		"TexImage2D(0xde1,0,16,16)",
		"TexImage2D(0xde1,1,8,8)",
		"TexImage2D(0xde1,2,4,4)",
	} {
		if !fns.called(want) {
			t.Errorf("CreateTexture: level images\nhave %v\nwant %s", fns.calls, want)
		}
	}
}

func TestCreateTextureData(t *testing.T) {
	fns, _, f := testDevice(4, 6)
	data := [][]byte{
		make([]byte, 4*4*4),
		make([]byte, 2*2*4),
		make([]byte, 1*1*4),
	}
	_, err := f.CreateTexture(driver.TexDesc{
		Kind:  driver.Tex2D,
		Width: 4, Height: 4,
		Levels: 3,
		Bind:   driver.BindRenderTarget,
	}, driver.ChanUnorm, data)
	if err != nil {
		t.Fatalf("CreateTexture failed:\n%v", err)
	}
	// Initial data forces the texture representation even
	// without a sampled bind flag.
	if fns.called("RenderbufferStorage") {
		t.Error("CreateTexture: initialized texture took the surface path")
	}
	for _, want := range [...]string{
		"TexSubImage2D(0xde1,0,4,4)",
		"TexSubImage2D(0xde1,1,2,2)",
		"TexSubImage2D(0xde1,2,1,1)",
	} {
		if !fns.called(want) {
			t.Errorf("CreateTexture: level uploads\nhave %v\nwant %s", fns.calls, want)
		}
	}
}

func TestCreateTextureCube(t *testing.T) {
	fns, _, f := testDevice(4, 6)
	data := make([][]byte, 6)
	for i := range data {
		data[i] = make([]byte, 8*8*4)
	}
	_, err := f.CreateTexture(driver.TexDesc{
		Kind:  driver.TexCube,
		Width: 8, Height: 8,
		Levels: 1,
		Bind:   driver.BindShaderResource,
	}, driver.ChanUnorm, data)
	if err != nil {
		t.Fatalf("CreateTexture failed:\n%v", err)
	}
	for face := 0; face < 6; face++ {
		want := fmt.Sprintf("TexSubImage2D(%#x,0,8,8)", uint32(TEXTURE_CUBE_MAP_POSITIVE_X)+uint32(face))
		if !fns.called(want) {
			t.Errorf("CreateTexture: cube face uploads\nhave %v\nwant %s", fns.calls, want)
		}
	}
}

func TestCreateTextureFailure(t *testing.T) {
	fns, dev, f := testDevice(4, 6)
	fns.errOnce = 0x0505 // OUT_OF_MEMORY
	_, err := f.CreateTexture(driver.TexDesc{
		Kind:  driver.Tex2D,
		Width: 64, Height: 64,
		Levels: 1,
		Bind:   driver.BindShaderResource,
	}, driver.ChanUnorm, nil)
	if err == nil {
		t.Fatal("CreateTexture: context error\nhave nil\nwant error")
	}
	if !fns.called("DeleteTexture") {
		t.Error("CreateTexture: failed texture object not deleted")
	}
	if n := dev.Handles().Count(); n != 0 {
		t.Errorf("registry count:\nhave %d\nwant 0", n)
	}
}
