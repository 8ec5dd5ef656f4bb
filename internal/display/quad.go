package display

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"soft-raster/internal/logger"
)

// Quad draws a CPU-rendered framebuffer as a texture on a fullscreen quad.
type Quad struct {
	program uint32
	vao     uint32
	vbo     uint32
	texture uint32

	texWidth  int
	texHeight int
}

// NewQuad initializes OpenGL and builds the quad geometry, the passthrough
// shader program and the destination texture.
// Must be called after the GL context exists.
func NewQuad(texWidth, texHeight int) (*Quad, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("display: OpenGL init: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	q := &Quad{texWidth: texWidth, texHeight: texHeight}

	program, err := createProgram()
	if err != nil {
		return nil, err
	}
	q.program = program

	q.createGeometry()
	q.createTexture()

	gl.ClearColor(1, 1, 1, 1)

	return q, nil
}

// Upload copies the RGBA pixel buffer into the quad's texture. The buffer
// must be texWidth*texHeight*4 bytes.
func (q *Quad) Upload(pix []byte) {
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(q.texWidth), int32(q.texHeight),
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))
}

// Draw clears the target and draws the textured quad.
func (q *Quad) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(q.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// Close releases the GL resources.
func (q *Quad) Close() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
	if q.texture != 0 {
		gl.DeleteTextures(1, &q.texture)
	}
	if q.program != 0 {
		gl.DeleteProgram(q.program)
	}
}

// createGeometry uploads the fullscreen triangle strip: clip-space
// positions with texture coordinates flipped so the buffer's top-left
// origin lands at the window's top-left.
func (q *Quad) createGeometry() {
	vertices := []float32{
		// Position   // TexCoord
		-1, -1, 0, 1,
		1, -1, 1, 1,
		-1, 1, 0, 0,
		1, 1, 1, 0,
	}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute (location = 1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// createTexture allocates the RGBA destination texture. Nearest filtering
// keeps the rasterizer's pixels hard-edged when the window scales them up.
func (q *Quad) createTexture() {
	gl.GenTextures(1, &q.texture)
	gl.BindTexture(gl.TEXTURE_2D, q.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(q.texWidth), int32(q.texHeight), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func createProgram() (uint32, error) {
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec2 aPos;
		layout (location = 1) in vec2 aTexCoord;

		out vec2 texCoord;

		void main() {
			gl_Position = vec4(aPos, 0.0, 1.0);
			texCoord = aTexCoord;
		}
	` + "\x00"

	fragmentShaderSource := `
		#version 410 core

		in vec2 texCoord;
		out vec4 FragColor;

		uniform sampler2D frame;

		void main() {
			FragColor = texture(frame, texCoord);
		}
	` + "\x00"

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("display: vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("display: fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("display: link failed: %s", log)
	}

	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", log)
	}

	return shader, nil
}
