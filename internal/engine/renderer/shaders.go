package renderer

const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vWorldPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;
	gl_Position = uProjection * uView * world;
}
`

const meshFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 uLightDir;
uniform vec3 uLightColor;
uniform vec3 uAmbient;
uniform vec3 uCameraPos;
uniform vec4 uColor;
uniform float uSpecular;
uniform float uShininess;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	vec3 l = normalize(uLightDir);
	vec3 v = normalize(uCameraPos - vWorldPos);
	vec3 h = normalize(l + v);

	float diff = max(dot(n, l), 0.0);
	// Soft wrap so the unlit side keeps some shape.
	float wrap = max(dot(n, l) * 0.5 + 0.5, 0.0) * 0.25;
	float spec = pow(max(dot(n, h), 0.0), uShininess) * uSpecular;

	vec3 color = uColor.rgb * (uAmbient + uLightColor * (diff + wrap)) + uLightColor * spec;
	FragColor = vec4(color, uColor.a);
}
`

const cursorVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uViewProjection;

void main() {
	gl_Position = uViewProjection * vec4(aPos, 1.0);
}
`

const cursorFragmentShader = `
#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
	FragColor = uColor;
}
`
