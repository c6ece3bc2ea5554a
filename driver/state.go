// Copyright 2025 The go-gfx Authors. All rights reserved.

package driver

// Fixed slot maximums of a pipeline descriptor.
// Slot index is bind point: iteration order over slots is
// significant and preserved by backends.
const (
	MaxColorTargets     = 4
	MaxVertexBuffers    = 16
	MaxVertexAttributes = 16
)

// Primitive is the type of primitive topologies.
type Primitive int

// Primitive topologies.
const (
	PointList Primitive = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip
)

// CullMode determines primitive culling based on triangle facing
// direction.
type CullMode int

// Cull modes.
const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

// FillMode determines the final rasterization of triangles.
type FillMode int

// Triangle fill modes.
const (
	FillSolid FillMode = iota
	FillLines
	FillPoints
)

// RasterState defines the rasterization state of a pipeline.
type RasterState struct {
	// Winding order is either clockwise or counter-clockwise.
	Clockwise bool
	Cull      CullMode
	Fill      FillMode
	// DepthBias enables depth bias computation.
	DepthBias bool
	BiasValue float32
	BiasSlope float32
	Samples   int
}

// CmpFunc is the type of comparison functions.
type CmpFunc int

// Comparison functions.
const (
	CNever CmpFunc = iota
	CLess
	CEqual
	CLessEqual
	CGreater
	CNotEqual
	CGreaterEqual
	CAlways
)

// StencilOp is the type of stencil operations.
type StencilOp int

// Stencil operations.
const (
	SKeep StencilOp = iota
	SZero
	SReplace
	SIncClamp
	SDecClamp
	SInvert
	SIncWrap
	SDecWrap
)

// StencilSide defines stencil test parameters for one face.
type StencilSide struct {
	Cmp       CmpFunc
	ReadMask  uint32
	WriteMask uint32
	// FailOp, DepthFailOp and PassOp select the operation for
	// stencil fail, depth fail and pass, respectively.
	FailOp      StencilOp
	DepthFailOp StencilOp
	PassOp      StencilOp
}

// StencilDefault is the neutral always-pass configuration used
// for a face the descriptor leaves unspecified.
func StencilDefault() StencilSide {
	return StencilSide{
		Cmp:       CAlways,
		ReadMask:  ^uint32(0),
		WriteMask: ^uint32(0),
	}
}

// DepthDesc defines the depth test state of a pipeline.
type DepthDesc struct {
	Cmp   CmpFunc
	Write bool
}

// DepthStencilDesc defines the depth/stencil state of a pipeline
// descriptor. Any of the three parts may be nil independently.
type DepthStencilDesc struct {
	Depth *DepthDesc
	Front *StencilSide
	Back  *StencilSide
}

// BlendOp is the type of blend equations.
type BlendOp int

// Blend equations.
const (
	BAdd BlendOp = iota
	BSub
	BRevSub
	BMin
	BMax
)

// BlendFac is the type of blend factors.
type BlendFac int

// Blend factors.
const (
	FacZero BlendFac = iota
	FacOne
	FacSrcColor
	FacInvSrcColor
	FacSrcAlpha
	FacInvSrcAlpha
	FacDstColor
	FacInvDstColor
	FacDstAlpha
	FacInvDstAlpha
	FacSrcAlphaSaturated
)

// BlendChannel defines the blend equation and factors of one of
// the color/alpha channels of a target.
type BlendChannel struct {
	Op  BlendOp
	Src BlendFac
	Dst BlendFac
}

// BlendIdentity is the no-op blend value substituted for an
// unspecified channel when the other channel requests blending.
func BlendIdentity() BlendChannel {
	return BlendChannel{Op: BAdd, Src: FacOne, Dst: FacZero}
}

// ColorMask is a mask of writable color channels.
type ColorMask uint8

// Color write masks.
const (
	MaskRed ColorMask = 1 << iota
	MaskGreen
	MaskBlue
	MaskAlpha
	MaskAll ColorMask = 1<<iota - 1
)

// ColorTargetDesc configures one color target slot.
// A nil Color and Alpha leaves blending disabled for the slot;
// specifying either enables blending, with the missing channel
// defaulting to BlendIdentity.
type ColorTargetDesc struct {
	Mask  ColorMask
	Color *BlendChannel
	Alpha *BlendChannel
}

// VertexFmt describes the data format of a vertex attribute.
type VertexFmt int

// Vertex attribute formats.
const (
	VFInt8 VertexFmt = iota
	VFInt16
	VFInt32
	VFUint8
	VFUint16
	VFUint32
	VFFloat32
)

// Element locates one attribute within a vertex buffer element.
type Element struct {
	Format VertexFmt
	// Count is the component count, 1 through 4.
	Count int
	// Offset is the attribute's byte offset within an element.
	Offset int
	// Normalized maps integer formats to [0,1]/[-1,1].
	Normalized bool
}

// VertexBufferDesc configures one vertex buffer binding slot.
type VertexBufferDesc struct {
	// Stride is the byte distance between consecutive elements.
	Stride int
	// Rate is the instance step rate: 0 advances per vertex,
	// n > 0 advances once every n instances.
	Rate int
}

// AttributeDesc binds a vertex attribute slot to an element of a
// vertex buffer slot.
type AttributeDesc struct {
	// Buffer is the vertex buffer slot the attribute reads from.
	// It must reference a populated VertexBuffers slot of the
	// same descriptor.
	Buffer int
	Elem   Element
}

// PipelineDesc is the declarative descriptor a backend folds into
// one pipeline state aggregate. Nil slots are unpopulated.
type PipelineDesc struct {
	Primitive  Primitive
	Rasterizer RasterState
	// Scissor enables the scissor test.
	Scissor       bool
	DepthStencil  *DepthStencilDesc
	VertexBuffers [MaxVertexBuffers]*VertexBufferDesc
	Attributes    [MaxVertexAttributes]*AttributeDesc
	ColorTargets  [MaxColorTargets]*ColorTargetDesc
}
