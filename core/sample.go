package core

import (
	"math/rand/v2"

	"github.com/gpagano/graphpoint/schema"
)

// annotationSampleCount is how many random points are highlighted on
// the chart per draw.
const annotationSampleCount = 2

// samplePoints picks up to k points uniformly at random without
// replacement, preserving index distinctness. Datasets smaller than k
// yield as many points as are available.
func samplePoints(ds schema.Dataset, k int) []schema.Point {
	if k > len(ds) {
		k = len(ds)
	}
	if k == 0 {
		return nil
	}

	picked := make([]schema.Point, 0, k)
	for _, idx := range rand.Perm(len(ds))[:k] {
		picked = append(picked, ds[idx])
	}
	return picked
}
