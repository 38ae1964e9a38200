package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"labyrinth/internal/maze"
	"labyrinth/internal/textures"
)

func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws one maze mesh as a single indexed triangle strip.
type Renderer struct {
	prog       uint32
	vao        uint32
	vbo        uint32
	ebo        uint32
	tex        uint32
	indexCount int32

	uProjection int32
	uView       int32
	uLightPos   int32
	uLightColor int32

	lightPos   [maze.NearbyLightCount * 4]float32
	lightColor [maze.NearbyLightCount * 4]float32
}

// NewRenderer links the maze program, creates the buffers and uploads the
// texture array painted from seed.
func NewRenderer(seed uint64) (*Renderer, error) {
	prog, err := linkProgram(mazeVertSrc, mazeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("maze program: %w", err)
	}
	r := &Renderer{prog: prog}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(unsafe.Sizeof(maze.Vertex{}))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)

	gl.UseProgram(prog)
	r.uProjection = gl.GetUniformLocation(prog, gl.Str("uProjection\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("uView\x00"))
	r.uLightPos = gl.GetUniformLocation(prog, gl.Str("uLightPos\x00"))
	r.uLightColor = gl.GetUniformLocation(prog, gl.Str("uLightColor\x00"))
	gl.Uniform1i(gl.GetUniformLocation(prog, gl.Str("uTex\x00")), 0)
	gl.Uniform1f(gl.GetUniformLocation(prog, gl.Str("uRange\x00")), LightRange)
	gl.Uniform1f(gl.GetUniformLocation(prog, gl.Str("uAmbient\x00")), AmbientLight)
	gl.Uniform1f(gl.GetUniformLocation(prog, gl.Str("uGlowLayer\x00")), textures.Glow)

	r.tex = uploadTextureArray(seed)
	return r, nil
}

// uploadTextureArray creates a mipmapped 2D array texture with every layer
// the maze samples.
func uploadTextureArray(seed uint64) uint32 {
	pix := textures.Array(seed)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, tex)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8,
		textures.Size, textures.Size, textures.LayerCount,
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.GenerateMipmap(gl.TEXTURE_2D_ARRAY)
	return tex
}

// UploadMesh replaces the geometry on the GPU.
func (r *Renderer) UploadMesh(m maze.Mesh) {
	r.indexCount = int32(len(m.Indices))
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return
	}
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(unsafe.Sizeof(maze.Vertex{})), gl.Ptr(&m.Vertices[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(&m.Indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
}

// SetLights flattens the light slots into the uniform arrays.
func (r *Renderer) SetLights(slots [maze.NearbyLightCount]maze.LightSlot) {
	for i, s := range slots {
		copy(r.lightPos[i*4:], s.Position[:])
		copy(r.lightColor[i*4:], s.Color[:])
	}
}

// Draw renders the mesh from the given camera.
func (r *Renderer) Draw(projection, view mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.indexCount == 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.UniformMatrix4fv(r.uProjection, 1, false, &projection[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.Uniform4fv(r.uLightPos, maze.NearbyLightCount, &r.lightPos[0])
	gl.Uniform4fv(r.uLightColor, maze.NearbyLightCount, &r.lightColor[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, r.tex)
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLE_STRIP, r.indexCount, gl.UNSIGNED_INT, glOffset(0))
	gl.BindVertexArray(0)
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.vbo, r.ebo} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
}

// Projection returns the perspective matrix for a framebuffer size.
func Projection(fbW, fbH int) mgl32.Mat4 {
	aspect := float32(fbW) / float32(fbH)
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, NearPlane, FarPlane)
}
