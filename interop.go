package aabb

import "github.com/paulmach/orb"

// ToOrbBound converts a float64 Box to an orb.Bound, for interop with
// code built on github.com/paulmach/orb (geometry loaded from GeoJSON,
// WKT, or any of orb's other encodings).
func ToOrbBound(b Box[float64]) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinX, b.MinY},
		Max: orb.Point{b.MaxX, b.MaxY},
	}
}

// FromOrbBound converts an orb.Bound to a float64 Box.
func FromOrbBound(b orb.Bound) Box[float64] {
	return Box[float64]{
		MinX: b.Min[0], MinY: b.Min[1],
		MaxX: b.Max[0], MaxY: b.Max[1],
	}
}

// AddBound stages an orb.Bound on a float64-coordinate index the same way
// Add does, returning its item id.
func AddBound(idx *Index[float64], b orb.Bound) int {
	return idx.Add(b.Min[0], b.Min[1], b.Max[0], b.Max[1])
}

// GetBound returns the stored box for item id as an orb.Bound.
func GetBound(idx *Index[float64], id int) orb.Bound {
	return ToOrbBound(idx.Get(id))
}
