// Package aabb implements a static, cache-friendly spatial index over
// axis-aligned bounding boxes, organized as a packed Hilbert R-tree.
//
// An Index is populated with Add/AddPoint, frozen once with Build, and
// then queried with any of the Query* methods. There is no supported way
// to mutate an Index after Build: this is a bulk-load structure, not a
// dynamic one.
package aabb
