package service

import (
	"log"
	"math"
)

// CosineSimilarity returns the cosine of the angle between two vectors.
// A zero-magnitude vector yields 0 rather than NaN. Vectors of different
// dimensions indicate a bug upstream; the pair scores 0 and the mismatch is
// logged so the surrounding search can continue.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		log.Printf("embedding dimension mismatch: %d vs %d", len(a), len(b))
		return 0
	}
	if len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
