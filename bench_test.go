package toyglsl

import "testing"

var benchShader = `
// seascape-ish test shader
float noise(vec2 p) {
	return fract(sin(dot(p, vec2(12.9898, 78.233))) * 43758.5453);
}

void mainImage(out vec4 fragColor, in vec2 fragCoord) {
	vec2 uv = fragCoord / iResolution.xy;
	vec3 col = vec3(0.0);
	for (int i = 0; i < 4; i++) {
		col += texture(iChannel0, uv + float(i) * 0.01).rgb;
	}
	col *= 0.5 + 0.5 * sin(iTime + uv.x * float(iFrame));
	fragColor = vec4(col, 1.0);
}
`

func BenchmarkConvert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Convert(benchShader)
	}
}
