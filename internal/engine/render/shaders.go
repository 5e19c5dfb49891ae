package render

const strokeVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aColor;
layout (location = 3) in vec2 aUV;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec4 vColor;
out vec2 vUV;

void main() {
    gl_Position = uViewProj * vec4(aPos, 1.0);
    vNormal = aNormal;
    vColor = aColor;
    vUV = aUV;
}
`

const strokeFragmentShader = `#version 410 core
in vec3 vNormal;
in vec4 vColor;
in vec2 vUV;

uniform vec3 uLightDir;

out vec4 fragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, -uLightDir), 0.0);
    float light = 0.35 + 0.65 * diffuse;
    fragColor = vec4(vColor.rgb * light, vColor.a);
}
`

const gridVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 uViewProj;

void main() {
    gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const gridFragmentShader = `#version 410 core
out vec4 fragColor;

void main() {
    fragColor = vec4(0.3, 0.3, 0.34, 1.0);
}
`
