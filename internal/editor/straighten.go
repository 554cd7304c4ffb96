package editor

import (
	"gonum.org/v1/gonum/stat"

	"ship-editor/pkg/geometry"
)

// DefaultStraightenThreshold is the coordinate tolerance, in shape-relative
// units, used when straightening from the UI.
const DefaultStraightenThreshold = 0.1

// Straighten cleans up near-symmetric geometry in two best-effort passes
// and returns the number of coordinate adjustments made. Pass one snaps
// coordinates that sit almost on an axis to exactly zero. Pass two greedily
// pairs vertices that approximately mirror each other across either axis
// and rewrites both to an exact mirror of their averaged position. The scan
// is a single left-to-right greedy pass, not a global optimum, and repeated
// application is only guaranteed to settle, not to improve.
func Straighten(l *Layer, threshold float64) int {
	adjusted := 0

	// Pass 1: axis snap.
	for i, v := range l.Vertices {
		if v.X != 0 && abs(v.X) < threshold/2 {
			l.Vertices[i].X = 0
			adjusted++
		}
		if v.Y != 0 && abs(v.Y) < threshold/2 {
			l.Vertices[i].Y = 0
			adjusted++
		}
	}

	// Pass 2: mirror pairing. Each vertex participates in at most one pair.
	matched := make([]bool, len(l.Vertices))
	for i := 0; i < len(l.Vertices); i++ {
		if matched[i] {
			continue
		}
		for j := i + 1; j < len(l.Vertices); j++ {
			if matched[j] {
				continue
			}
			a, b := l.Vertices[i], l.Vertices[j]
			switch {
			case mirrorMatch(a.X, b.X, a.Y, b.Y, threshold):
				na, nb := mirrorPair(a.X, b.X, a.Y, b.Y)
				adjusted += applyPair(&l.Vertices[i], &l.Vertices[j],
					geometry.Point2D{X: na.shared, Y: na.mirrored},
					geometry.Point2D{X: nb.shared, Y: nb.mirrored})
			case mirrorMatch(a.Y, b.Y, a.X, b.X, threshold):
				na, nb := mirrorPair(a.Y, b.Y, a.X, b.X)
				adjusted += applyPair(&l.Vertices[i], &l.Vertices[j],
					geometry.Point2D{X: na.mirrored, Y: na.shared},
					geometry.Point2D{X: nb.mirrored, Y: nb.shared})
			default:
				continue
			}
			matched[i], matched[j] = true, true
			break
		}
	}
	return adjusted
}

// mirrorMatch tests approximate mirror symmetry: the shared coordinates sit
// within the threshold of each other, the mirrored coordinates sum to near
// zero, and at least one mirrored magnitude is large enough that the pair
// is not just two near-axis points.
func mirrorMatch(shared1, shared2, mirrored1, mirrored2, threshold float64) bool {
	return abs(shared1-shared2) < threshold &&
		abs(mirrored1+mirrored2) < threshold &&
		(abs(mirrored1) > threshold/4 || abs(mirrored2) > threshold/4)
}

type mirrorHalf struct {
	shared   float64
	mirrored float64
}

// mirrorPair computes the exact mirrored replacement for a matched pair:
// the shared coordinate is averaged, the mirrored magnitude is averaged,
// and signs come from whichever vertex had a definitive nonzero sign.
func mirrorPair(shared1, shared2, mirrored1, mirrored2 float64) (mirrorHalf, mirrorHalf) {
	avg := stat.Mean([]float64{shared1, shared2}, nil)
	mag := stat.Mean([]float64{abs(mirrored1), abs(mirrored2)}, nil)
	s1, s2 := sign(mirrored1), sign(mirrored2)
	switch {
	case s1 == 0 && s2 == 0:
		s1, s2 = 1, -1
	case s1 == 0:
		s1 = -s2
	case s2 == 0:
		s2 = -s1
	}
	return mirrorHalf{shared: avg, mirrored: s1 * mag},
		mirrorHalf{shared: avg, mirrored: s2 * mag}
}

func applyPair(a, b *geometry.Point2D, na, nb geometry.Point2D) int {
	adjusted := 0
	if *a != na {
		*a = na
		adjusted++
	}
	if *b != nb {
		*b = nb
		adjusted++
	}
	return adjusted
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
