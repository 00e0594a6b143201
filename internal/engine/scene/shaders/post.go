package shaders

// FullscreenVertexShader emits one oversized triangle from gl_VertexID, so
// post passes draw with an empty VAO and three vertices.
const FullscreenVertexShader = `#version 410 core

out vec2 vUV;

void main() {
    vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
    vUV = pos;
    gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
`

// BrightPassFragmentShader keeps pixels above the luminance threshold.
// Mirrors postfx.BrightPass.
const BrightPassFragmentShader = `#version 410 core

in vec2 vUV;

uniform sampler2D uScene;
uniform float uThreshold;
uniform float uSmoothing;

out vec4 FragColor;

void main() {
    vec3 c = texture(uScene, vUV).rgb;
    float l = dot(c, vec3(0.2126, 0.7152, 0.0722));
    FragColor = vec4(c * smoothstep(uThreshold, uThreshold + uSmoothing, l), 1.0);
}
`

// BlurFragmentShader is one direction of a separable gaussian.
// uWeights[0] is the centre tap.
const BlurFragmentShader = `#version 410 core

#define TAPS 5

in vec2 vUV;

uniform sampler2D uImage;
uniform vec2 uDirection; // texel step along one axis, scaled by radius
uniform float uWeights[TAPS];

out vec4 FragColor;

void main() {
    vec3 sum = texture(uImage, vUV).rgb * uWeights[0];
    for (int i = 1; i < TAPS; i++) {
        vec2 off = uDirection * float(i);
        sum += texture(uImage, vUV + off).rgb * uWeights[i];
        sum += texture(uImage, vUV - off).rgb * uWeights[i];
    }
    FragColor = vec4(sum, 1.0);
}
`

// CompositeFragmentShader applies bloom, chromatic aberration, grain and
// vignette in that order. Each step mirrors a function in package postfx.
const CompositeFragmentShader = `#version 410 core

in vec2 vUV;

uniform sampler2D uScene;
uniform sampler2D uBloom;
uniform bool uEnabled;
uniform float uBloomIntensity;
uniform vec2 uAberration;
uniform float uGrainOpacity;
uniform float uTime;
uniform vec2 uVignette; // offset, darkness

out vec4 FragColor;

float rand(vec2 co) {
    return fract(sin(dot(co, vec2(12.9898, 78.233))) * 43758.5453);
}

void main() {
    if (!uEnabled) {
        FragColor = vec4(texture(uScene, vUV).rgb, 1.0);
        return;
    }

    vec3 c;
    c.r = texture(uScene, vUV + uAberration).r + texture(uBloom, vUV + uAberration).r * uBloomIntensity;
    c.g = texture(uScene, vUV).g + texture(uBloom, vUV).g * uBloomIntensity;
    c.b = texture(uScene, vUV - uAberration).b + texture(uBloom, vUV - uAberration).b * uBloomIntensity;

    vec3 n = vec3(rand(vUV * (1.0 + fract(uTime))));
    vec3 screen = 1.0 - (1.0 - clamp(c, 0.0, 1.0)) * (1.0 - n);
    c = mix(c, screen, uGrainOpacity);

    float d = distance(vUV, vec2(0.5));
    c *= smoothstep(0.8, uVignette.x * 0.799, d * (uVignette.y + uVignette.x));

    FragColor = vec4(c, 1.0);
}
`
