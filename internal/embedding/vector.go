package embedding

import "math"

// cosineEpsilon guards the denominator against degenerate zero vectors.
const cosineEpsilon = 1e-10

// CosineSimilarity returns dot(a,b) / (‖a‖·‖b‖). Mismatched lengths and
// zero vectors yield 0 rather than an error; similarity against nothing is
// simply a no-match.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + cosineEpsilon)
}

// normalize scales vec to unit length in place. The zero vector is left
// unchanged.
func normalize(vec []float32) {
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
}
