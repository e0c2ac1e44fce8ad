package geometry

import "github.com/radityarh/pulseband/domain/entities"

// Sanitize replaces every non-finite vertex, normal and color value with 0
// and returns how many values were repaired. Sanitizing clean data changes
// nothing, so the pass is idempotent. The count is the NumericAnomaly signal
// callers are expected to log rather than swallow.
func Sanitize(mesh *entities.Mesh) int {
	repaired := SanitizeValues(mesh.Vertices)
	repaired += SanitizeValues(mesh.Normals)
	repaired += SanitizeValues(mesh.Colors)
	return repaired
}

// SanitizeValues repairs a single flat buffer in place.
func SanitizeValues(values []float64) int {
	repaired := 0
	for i, v := range values {
		if !isFinite(v) {
			values[i] = 0
			repaired++
		}
	}
	return repaired
}
