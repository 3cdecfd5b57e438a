// Package stroke converts stroked polylines into fillable outlines.
//
// Input geometry is already flattened: each Polyline is a run of points,
// optionally closed. Outline returns a set of polygons whose union under
// the non-zero winding rule covers the stroked area:
//   - one quadrilateral per segment, offset by half the width on each side
//   - one join polygon per interior vertex (miter, round or bevel)
//   - one cap polygon per open end (square or round; butt adds nothing)
//
// Every polygon is emitted counter-clockwise so overlapping pieces never
// cancel each other out.
//
// # Line Joins
//
//   - JoinMiter: sharp corner, falling back to bevel when the miter length
//     exceeds MiterLimit times the width
//   - JoinRound: circular arc around the vertex
//   - JoinBevel: straight line across the corner
//
// Dash splits polylines into dash runs before outlining.
//
// # Usage
//
//	style := stroke.Style{Width: 2, Cap: stroke.CapRound, Join: stroke.JoinMiter, MiterLimit: 4}
//	lines := []stroke.Polyline{{Points: []stroke.Point{{0, 0}, {100, 0}, {100, 100}}}}
//	polys := stroke.Outline(lines, style)
package stroke
