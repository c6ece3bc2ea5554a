// Copyright 2025 The go-gfx Authors. All rights reserved.

// Package gl implements the driver interfaces using the OpenGL API.
// Resource creation is capability-gated: the storage strategy per
// resource kind is decided from the flags queried when the device
// is opened.
package gl

// Enum is a GL enumerant.
type Enum uint32

// The subset of GL enumerants this backend uses.
const (
	NO_ERROR Enum = 0
	NONE     Enum = 0

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	UNIFORM_BUFFER       Enum = 0x8A11
	TEXTURE_BUFFER       Enum = 0x8C2A

	STREAM_DRAW  Enum = 0x88E0
	STATIC_DRAW  Enum = 0x88E4
	DYNAMIC_DRAW Enum = 0x88E8

	MAP_READ_BIT        Enum = 0x0001
	MAP_WRITE_BIT       Enum = 0x0002
	DYNAMIC_STORAGE_BIT Enum = 0x0100

	READ_ONLY  Enum = 0x88B8
	WRITE_ONLY Enum = 0x88B9
	READ_WRITE Enum = 0x88BA

	BUFFER_SIZE Enum = 0x8764

	FRAGMENT_SHADER        Enum = 0x8B30
	VERTEX_SHADER          Enum = 0x8B31
	GEOMETRY_SHADER        Enum = 0x8DD9
	TESS_EVALUATION_SHADER Enum = 0x8E87
	TESS_CONTROL_SHADER    Enum = 0x8E88

	COMPILE_STATUS    Enum = 0x8B81
	LINK_STATUS       Enum = 0x8B82
	ACTIVE_UNIFORMS   Enum = 0x8B86
	ACTIVE_ATTRIBUTES Enum = 0x8B89

	TEXTURE_1D                  Enum = 0x0DE0
	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_3D                  Enum = 0x806F
	TEXTURE_1D_ARRAY            Enum = 0x8C18
	TEXTURE_2D_ARRAY            Enum = 0x8C1A
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_2D_MULTISAMPLE      Enum = 0x9100
	RENDERBUFFER                Enum = 0x8D41

	R8                Enum = 0x8229
	RGBA8             Enum = 0x8058
	SRGB8_ALPHA8      Enum = 0x8C43
	RGBA8_SNORM       Enum = 0x8F97
	RGBA8I            Enum = 0x8D8E
	RGBA8UI           Enum = 0x8D7C
	RGBA32F           Enum = 0x8814
	DEPTH_COMPONENT24 Enum = 0x81A6
	DEPTH24_STENCIL8  Enum = 0x88F0

	RED             Enum = 0x1903
	RGBA            Enum = 0x1908
	RGBA_INTEGER    Enum = 0x8D99
	DEPTH_COMPONENT Enum = 0x1902
	DEPTH_STENCIL   Enum = 0x84F9

	BYTE              Enum = 0x1400
	UNSIGNED_BYTE     Enum = 0x1401
	FLOAT             Enum = 0x1406
	UNSIGNED_INT_24_8 Enum = 0x84FA

	MAX_TEXTURE_SIZE Enum = 0x0D33
	MAJOR_VERSION    Enum = 0x821B
	MINOR_VERSION    Enum = 0x821C
	NUM_EXTENSIONS   Enum = 0x821D
	EXTENSIONS       Enum = 0x1F03

	TEXTURE_BORDER_COLOR   Enum = 0x1004
	TEXTURE_MAG_FILTER     Enum = 0x2800
	TEXTURE_MIN_FILTER     Enum = 0x2801
	TEXTURE_WRAP_S         Enum = 0x2802
	TEXTURE_WRAP_T         Enum = 0x2803
	TEXTURE_WRAP_R         Enum = 0x8072
	TEXTURE_MIN_LOD        Enum = 0x813A
	TEXTURE_MAX_LOD        Enum = 0x813B
	TEXTURE_LOD_BIAS       Enum = 0x8501
	TEXTURE_COMPARE_MODE   Enum = 0x884C
	TEXTURE_COMPARE_FUNC   Enum = 0x884D
	COMPARE_REF_TO_TEXTURE Enum = 0x884E

	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703

	REPEAT          Enum = 0x2901
	MIRRORED_REPEAT Enum = 0x8370
	CLAMP_TO_EDGE   Enum = 0x812F
	CLAMP_TO_BORDER Enum = 0x812D

	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207
)

// Funcs is the native call surface of the backend.
// It mirrors the GL entry points the factory issues, so that the
// capability-branching decision logic can be exercised against a
// fake implementation without a live context.
// All methods require a current GL context on the calling thread.
type Funcs interface {
	// State queries.
	GetError() Enum
	GetInteger(pname Enum) int
	GetStringi(pname Enum, index int) string

	// Buffers.
	GenBuffer() uint32
	DeleteBuffer(name uint32)
	BindBuffer(target Enum, name uint32)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferStorage(target Enum, size int, data []byte, flags Enum)
	BufferSubData(target Enum, offset int, data []byte)
	// MapBuffer maps the buffer's whole storage and returns it,
	// or nil on failure.
	MapBuffer(target Enum, access Enum) []byte
	UnmapBuffer(target Enum) bool

	// Shaders and programs.
	CreateShader(xtype Enum) uint32
	DeleteShader(name uint32)
	ShaderSource(name uint32, src string)
	CompileShader(name uint32)
	GetShaderi(name uint32, pname Enum) int
	ShaderInfoLog(name uint32) string
	CreateProgram() uint32
	DeleteProgram(name uint32)
	AttachShader(prog, shader uint32)
	DetachShader(prog, shader uint32)
	LinkProgram(name uint32)
	GetProgrami(name uint32, pname Enum) int
	ProgramInfoLog(name uint32) string

	// Textures and renderbuffers.
	GenTexture() uint32
	DeleteTexture(name uint32)
	BindTexture(target Enum, name uint32)
	TexStorage1D(target Enum, levels int, ifmt Enum, w int)
	TexStorage2D(target Enum, levels int, ifmt Enum, w, h int)
	TexStorage3D(target Enum, levels int, ifmt Enum, w, h, d int)
	TexImage1D(target Enum, level int, ifmt Enum, w int, format, xtype Enum, data []byte)
	TexImage2D(target Enum, level int, ifmt Enum, w, h int, format, xtype Enum, data []byte)
	TexImage3D(target Enum, level int, ifmt Enum, w, h, d int, format, xtype Enum, data []byte)
	TexImage2DMultisample(target Enum, samples int, ifmt Enum, w, h int)
	TexSubImage1D(target Enum, level, x, w int, format, xtype Enum, data []byte)
	TexSubImage2D(target Enum, level, x, y, w, h int, format, xtype Enum, data []byte)
	TexSubImage3D(target Enum, level, x, y, z, w, h, d int, format, xtype Enum, data []byte)
	TexBuffer(target Enum, ifmt Enum, buffer uint32)
	GenRenderbuffer() uint32
	DeleteRenderbuffer(name uint32)
	BindRenderbuffer(target Enum, name uint32)
	RenderbufferStorage(target Enum, ifmt Enum, w, h int)
	RenderbufferStorageMultisample(target Enum, samples int, ifmt Enum, w, h int)

	// Samplers.
	GenSampler() uint32
	DeleteSampler(name uint32)
	SamplerParameteri(name uint32, pname Enum, param int)
	SamplerParameterf(name uint32, pname Enum, param float32)
	SamplerParameterfv(name uint32, pname Enum, params *[4]float32)
}
