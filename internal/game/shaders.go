package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Maze vertex shader: world-space position plus (u, v, layer) into the array.
const mazeVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aTex;

uniform mat4 uProjection;
uniform mat4 uView;

out vec3 vWorld;
out vec3 vTex;

void main() {
    vWorld = aPos;
    vTex = aTex;
    gl_Position = uProjection * uView * vec4(aPos, 1.0);
}
` + "\x00"

// Maze fragment shader: texture lit by the nearby torch slots with a squared
// linear falloff. The glow layer is self-lit and alpha-blended.
const mazeFragSrc = `#version 410 core

#define LIGHTS 8

uniform sampler2DArray uTex;
uniform vec4 uLightPos[LIGHTS];
uniform vec4 uLightColor[LIGHTS];
uniform float uRange;
uniform float uAmbient;
uniform float uGlowLayer;

in vec3 vWorld;
in vec3 vTex;
out vec4 FragColor;

void main() {
    vec4 t = texture(uTex, vTex);
    if (abs(vTex.z - uGlowLayer) < 0.5) {
        if (t.a < 0.02) discard;
        FragColor = t;
        return;
    }

    vec3 light = vec3(uAmbient);
    for (int i = 0; i < LIGHTS; i++) {
        float d = distance(vWorld, uLightPos[i].xyz);
        float f = clamp(1.0 - d / uRange, 0.0, 1.0);
        light += uLightColor[i].rgb * f * f;
    }
    FragColor = vec4(t.rgb * light, 1.0);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
