// Package shaders holds the GLSL sources for the scene and post chain.
package shaders

// simplexNoise3D is the Ashima Arts / Stefan Gustavson 3D simplex noise
// (MIT licensed), range roughly [-1, 1].
const simplexNoise3D = `
vec3 mod289(vec3 x) { return x - floor(x * (1.0 / 289.0)) * 289.0; }
vec4 mod289(vec4 x) { return x - floor(x * (1.0 / 289.0)) * 289.0; }
vec4 permute(vec4 x) { return mod289(((x * 34.0) + 1.0) * x); }
vec4 taylorInvSqrt(vec4 r) { return 1.79284291400159 - 0.85373472095314 * r; }

float snoise(vec3 v) {
    const vec2 C = vec2(1.0 / 6.0, 1.0 / 3.0);
    const vec4 D = vec4(0.0, 0.5, 1.0, 2.0);

    vec3 i = floor(v + dot(v, C.yyy));
    vec3 x0 = v - i + dot(i, C.xxx);

    vec3 g = step(x0.yzx, x0.xyz);
    vec3 l = 1.0 - g;
    vec3 i1 = min(g.xyz, l.zxy);
    vec3 i2 = max(g.xyz, l.zxy);

    vec3 x1 = x0 - i1 + C.xxx;
    vec3 x2 = x0 - i2 + C.yyy;
    vec3 x3 = x0 - D.yyy;

    i = mod289(i);
    vec4 p = permute(permute(permute(
                i.z + vec4(0.0, i1.z, i2.z, 1.0))
              + i.y + vec4(0.0, i1.y, i2.y, 1.0))
              + i.x + vec4(0.0, i1.x, i2.x, 1.0));

    float n_ = 0.142857142857;
    vec3 ns = n_ * D.wyz - D.xzx;

    vec4 j = p - 49.0 * floor(p * ns.z * ns.z);
    vec4 x_ = floor(j * ns.z);
    vec4 y_ = floor(j - 7.0 * x_);

    vec4 x = x_ * ns.x + ns.yyyy;
    vec4 y = y_ * ns.x + ns.yyyy;
    vec4 h = 1.0 - abs(x) - abs(y);

    vec4 b0 = vec4(x.xy, y.xy);
    vec4 b1 = vec4(x.zw, y.zw);
    vec4 s0 = floor(b0) * 2.0 + 1.0;
    vec4 s1 = floor(b1) * 2.0 + 1.0;
    vec4 sh = -step(h, vec4(0.0));

    vec4 a0 = b0.xzyw + s0.xzyw * sh.xxyy;
    vec4 a1 = b1.xzyw + s1.xzyw * sh.zzww;

    vec3 p0 = vec3(a0.xy, h.x);
    vec3 p1 = vec3(a0.zw, h.y);
    vec3 p2 = vec3(a1.xy, h.z);
    vec3 p3 = vec3(a1.zw, h.w);

    vec4 norm = taylorInvSqrt(vec4(dot(p0, p0), dot(p1, p1), dot(p2, p2), dot(p3, p3)));
    p0 *= norm.x;
    p1 *= norm.y;
    p2 *= norm.z;
    p3 *= norm.w;

    vec4 m = max(0.6 - vec4(dot(x0, x0), dot(x1, x1), dot(x2, x2), dot(x3, x3)), 0.0);
    m = m * m;
    return 42.0 * dot(m * m, vec4(dot(p0, x0), dot(p1, x1), dot(p2, x2), dot(p3, x3)));
}
`

// BrainVertexShader sculpts the icosphere. Band uniforms are
// (frequency, drift, weight); uTime arrives already wrapped.
const BrainVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform float uTime;

uniform vec2 uAxisScale;
uniform vec3 uLargeBand;
uniform vec3 uFineBand;
uniform vec2 uFissure;
uniform vec2 uFloor;
uniform float uAmplitude;

out float vHeight;
out vec3 vNormal;
` + simplexNoise3D + `
void main() {
    vNormal = aNormal;

    vec3 pos = aPosition;
    pos.x *= uAxisScale.x;
    pos.z *= uAxisScale.y;

    float d = snoise(pos * uLargeBand.x + uTime * uLargeBand.y) * uLargeBand.z
            + snoise(pos * uFineBand.x + uTime * uFineBand.y) * uFineBand.z;

    float split = smoothstep(0.0, uFissure.x, abs(pos.x));
    d *= split;
    pos.x += (pos.x > 0.0 ? -uFissure.y : uFissure.y) * (1.0 - split);

    if (pos.y < uFloor.x) {
        d *= uFloor.y;
    }

    vHeight = d;
    gl_Position = uProjection * uView * uModel * vec4(pos + aNormal * d * uAmplitude, 1.0);
}
`

// BrainFragmentShader is the GPU twin of shading.Params.Shade.
const BrainFragmentShader = `#version 410 core

in float vHeight;
in vec3 vNormal;

uniform float uTime;
uniform vec3 uBaseColor;
uniform vec3 uRidgeColor;
uniform float uBaseDim;
uniform vec2 uHeightRange;
uniform vec3 uRimAxis;
uniform vec3 uRimTint;
uniform vec2 uRim; // strength, power
uniform vec4 uScan; // frequency, speed, threshold, boost

out vec4 FragColor;

void main() {
    float mixStrength = smoothstep(uHeightRange.x, uHeightRange.y, vHeight);
    vec3 color = mix(uBaseColor * uBaseDim, uRidgeColor, mixStrength);

    float fresnel = pow(1.0 - abs(dot(vNormal, uRimAxis)), uRim.y);
    color += fresnel * uRimTint * uRim.x;

    float scan = sin(gl_FragCoord.y * uScan.x - uTime * uScan.y);
    if (scan > uScan.z) {
        color += vec3(uScan.w);
    }

    FragColor = vec4(color, 1.0);
}
`
