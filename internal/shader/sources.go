package shader

// MaxPoints is the compile-time bound of the point arrays in the fragment
// stage. It must match render.MaxPoints.
const MaxPoints = 12

// VertexSource maps the unit quad straight to clip space. It never changes;
// only the fragment source travels through the init message.
const VertexSource = `#version 410 core

layout(location = 0) in vec2 a_position;

void main() {
    gl_Position = vec4(a_position, 0.0, 1.0);
}
`

// FragmentSource computes the warped multi-point gradient. The Go mirror of
// this program lives in internal/render (fragment.go); keep the two in sync.
const FragmentSource = `#version 410 core

#define MAX_POINTS 12

uniform vec2  u_resolution;
uniform float u_time;
uniform int   u_pointCount;
uniform vec3  u_colors[MAX_POINTS];
uniform vec2  u_positions[MAX_POINTS];
uniform float u_radius;
uniform float u_intensity;
uniform int   u_warpMode;
uniform float u_warpAmount;
uniform float u_warpSize;
uniform float u_seed;
uniform float u_grainAmount;
uniform float u_grainSize;

out vec4 fragColor;

float hash21(vec2 p) {
    return fract(sin(dot(p, vec2(127.1, 311.7))) * 43758.5453123);
}

vec2 gradDir(vec2 p) {
    float a = hash21(p) * 6.28318530718;
    return vec2(cos(a), sin(a));
}

float gnoise(vec2 p) {
    vec2 i = floor(p);
    vec2 f = fract(p);
    vec2 u = f * f * (3.0 - 2.0 * f);
    float a = dot(gradDir(i), f);
    float b = dot(gradDir(i + vec2(1.0, 0.0)), f - vec2(1.0, 0.0));
    float c = dot(gradDir(i + vec2(0.0, 1.0)), f - vec2(0.0, 1.0));
    float d = dot(gradDir(i + vec2(1.0, 1.0)), f - vec2(1.0, 1.0));
    return mix(mix(a, b, u.x), mix(c, d, u.x), u.y) * 1.41421356;
}

float fbm(vec2 p) {
    float sum = 0.0;
    float amp = 0.5;
    for (int i = 0; i < 5; i++) {
        sum += amp * gnoise(p);
        p *= 2.0;
        amp *= 0.5;
    }
    return sum;
}

vec2 warp(vec2 uv, float aspect) {
    if (u_warpMode == 0 || u_warpAmount <= 0.0) {
        return uv;
    }

    vec2 seedOff = vec2(u_seed * 43.17, u_seed * 17.43);

    if (u_warpMode == 5) {
        // swirl: rotate the centered coordinate by an angle growing with
        // radius and drifting with time
        vec2 c = uv - 0.5;
        c.x *= aspect;
        float r = length(c);
        float ang = u_warpAmount * (r * u_warpSize * 3.0 + u_time * 0.3);
        float s = sin(ang);
        float co = cos(ang);
        c = vec2(c.x * co - c.y * s, c.x * s + c.y * co);
        c.x /= aspect;
        return c + 0.5;
    }
    if (u_warpMode == 6) {
        // radial: perturb the polar radius by a wave of radius and time
        vec2 c = uv - 0.5;
        c.x *= aspect;
        float r = length(c);
        float theta = atan(c.y, c.x);
        r += sin(r * u_warpSize * 12.0 - u_time) * u_warpAmount * 0.05;
        c = vec2(cos(theta), sin(theta)) * r;
        c.x /= aspect;
        return c + 0.5;
    }

    vec2 d = vec2(0.0);
    if (u_warpMode == 1) {
        // wave: orthogonal sine/cosine waves phase-shifted by a noise field
        float phase = gnoise(uv * u_warpSize * 2.0 + seedOff) * 6.28318530718;
        d.x = sin(uv.y * 6.28318530718 * u_warpSize + u_time + phase);
        d.y = cos(uv.x * 6.28318530718 * u_warpSize + u_time + phase);
        d *= u_warpAmount * 0.05;
    } else if (u_warpMode == 2) {
        vec2 p = uv * u_warpSize * 2.0 + seedOff + u_time * 0.1;
        d = vec2(gnoise(p), gnoise(p + vec2(37.2, 11.9))) * u_warpAmount * 0.1;
    } else if (u_warpMode == 3) {
        vec2 p = uv * u_warpSize * 1.5 + seedOff + u_time * 0.05;
        d = vec2(fbm(p), fbm(p + vec2(19.3, 71.7))) * u_warpAmount * 0.2;
    } else if (u_warpMode == 4) {
        vec2 p = uv * u_warpSize * 1.5 + seedOff + u_time * 0.05;
        d = vec2(1.0 - abs(fbm(p)), 1.0 - abs(fbm(p + vec2(19.3, 71.7))));
        d = (d - 0.5) * u_warpAmount * 0.3;
    }
    d.x /= aspect;
    return uv + d;
}

void main() {
    vec2 uv = gl_FragCoord.xy / u_resolution;
    uv.y = 1.0 - uv.y;
    float aspect = u_resolution.x / u_resolution.y;
    vec2 centered = uv - 0.5;

    vec2 suv = warp(uv, aspect);

    vec3 acc = vec3(0.0);
    float total = 0.0;
    float r2 = u_radius * u_radius;
    float k = max(0.001, u_intensity);
    for (int i = 0; i < MAX_POINTS; i++) {
        if (i >= u_pointCount) {
            break;
        }
        vec2 diff = suv - u_positions[i];
        diff.x *= aspect;
        float w = exp(-dot(diff, diff) / r2);
        w = pow(w, k);
        acc += w * u_colors[i];
        total += w;
    }

    vec3 color;
    if (total > 1e-6) {
        color = acc / total;
    } else {
        color = vec3(0.98);
    }

    color *= 1.0 - dot(centered, centered) * 0.25;

    if (u_grainAmount > 0.0) {
        vec2 cell = floor(gl_FragCoord.xy / max(u_grainSize, 1.0));
        color += (hash21(cell + u_seed * 91.7) - 0.5) * u_grainAmount;
    }

    fragColor = vec4(clamp(color, 0.0, 1.0), 1.0);
}
`
