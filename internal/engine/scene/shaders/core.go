package shaders

// CoreVertexShader transforms the inner glow sphere.
const CoreVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uProjection * uView * world;
}
`

// CoreFragmentShader lights the core with the scene's ambient + point rig.
// Mirrors lighting.Rig.Irradiance.
const CoreFragmentShader = `#version 410 core

#define MAX_POINT_LIGHTS 4

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 uColor;
uniform float uAmbient;
uniform int uLightCount;
uniform vec3 uLightPositions[MAX_POINT_LIGHTS];
uniform vec3 uLightColors[MAX_POINT_LIGHTS];

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 e = vec3(uAmbient);
    for (int i = 0; i < uLightCount; i++) {
        vec3 l = normalize(uLightPositions[i] - vWorldPos);
        e += uLightColors[i] * clamp(dot(n, l), 0.0, 1.0);
    }
    FragColor = vec4(uColor * e, 1.0);
}
`
