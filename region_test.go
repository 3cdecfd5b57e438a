package svg

import (
	"math"
	"testing"
)

// lShape returns an L with its corner at (x, y): a horizontal and a
// vertical bar of the given length and thickness.
func lShape(x, y, length, arm float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+length, y)
	p.LineTo(x+length, y+arm)
	p.LineTo(x+arm, y+arm)
	p.LineTo(x+arm, y+length)
	p.LineTo(x, y+length)
	p.Close()
	return p
}

func pentagram(cx, cy, r float64, rule FillRule) *Path {
	p := NewPath()
	for k := range 5 {
		a := -math.Pi/2 + float64(k)*4*math.Pi/5
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if k == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	p.FillRule = rule
	return p
}

func regionArea(polys [][]Point) float64 {
	var a float64
	for _, poly := range polys {
		a += signedArea(poly)
	}
	return math.Abs(a)
}

func TestIntersectRegionsConcaveDisjoint(t *testing.T) {
	got := intersectRegions(lShape(0, 0, 10, 2), lShape(4, 4, 4, 1))
	if !got.IsEmpty() {
		t.Errorf("disjoint L shapes: got %s, want empty path", PathData(got, nil))
	}
}

func TestIntersectRegionsConcaveOverlap(t *testing.T) {
	got := intersectRegions(lShape(0, 0, 10, 2), lShape(1, 1, 10, 2))
	polys := got.Polygons(flattenTolerance)
	if a := regionArea(polys); math.Abs(a-17) > 1e-9 {
		t.Errorf("area = %v, want 17\n%s", a, PathData(got, nil))
	}

	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 1.5), true},
		{Pt(1.5, 5), true},
		{Pt(1.5, 1.5), true},
		{Pt(0.5, 0.5), false},
		{Pt(5, 2.5), false},
		{Pt(2.5, 2.5), false},
		{Pt(5, 5), false},
	}
	for _, tt := range tests {
		if in := insideRegion(polys, got.FillRule, tt.pt); in != tt.want {
			t.Errorf("inside(%v) = %v, want %v", tt.pt, in, tt.want)
		}
	}
}

func TestIntersectRegionsSharedEdges(t *testing.T) {
	got := intersectRegions(lShape(0, 0, 10, 2), rectPath(0, 0, 10, 2))
	polys := got.Polygons(flattenTolerance)
	if len(polys) != 1 || len(polys[0]) != 4 {
		t.Fatalf("got %v, want one four-vertex loop", polys)
	}
	if a := regionArea(polys); math.Abs(a-20) > 1e-9 {
		t.Errorf("area = %v, want 20", a)
	}
}

func TestIntersectRegionsSelfIntersecting(t *testing.T) {
	// A concave frame that contains the whole star.
	frame := NewPath()
	frame.MoveTo(0, 0)
	frame.LineTo(200, 0)
	frame.LineTo(200, 150)
	frame.LineTo(150, 150)
	frame.LineTo(150, 200)
	frame.LineTo(0, 200)
	frame.Close()

	tests := []struct {
		name       string
		rule       FillRule
		wantCenter bool
	}{
		{"nonzero", FillNonZero, true},
		{"evenodd", FillEvenOdd, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intersectRegions(pentagram(50, 50, 40, tt.rule), frame)
			polys := got.Polygons(flattenTolerance)
			if in := insideRegion(polys, got.FillRule, Pt(50, 50)); in != tt.wantCenter {
				t.Errorf("center inside = %v, want %v", in, tt.wantCenter)
			}
			if !insideRegion(polys, got.FillRule, Pt(50, 15)) {
				t.Error("point in the top tip should be inside")
			}
			if insideRegion(polys, got.FillRule, Pt(10, 10)) {
				t.Error("point outside the star should be outside")
			}
		})
	}
}

func TestInsideRegionFillRules(t *testing.T) {
	star := pentagram(0, 0, 10, FillNonZero).Polygons(flattenTolerance)
	if !insideRegion(star, FillNonZero, Pt(0, 0)) {
		t.Error("nonzero star should cover its center")
	}
	if insideRegion(star, FillEvenOdd, Pt(0, 0)) {
		t.Error("even-odd star should leave its center empty")
	}
}

func TestClipConcaveShapes(t *testing.T) {
	dc := newTestContext()
	dc.Clip(lShape(0, 0, 10, 2))
	dc.Clip(lShape(4, 4, 4, 1))
	if !dc.GetClip().IsEmpty() {
		t.Errorf("disjoint concave clips: GetClip() = %s, want empty", PathData(dc.GetClip(), nil))
	}

	dc.ResetClip()
	dc.Clip(lShape(0, 0, 10, 2))
	dc.Clip(lShape(1, 1, 10, 2))
	if a := regionArea(dc.GetClip().Polygons(flattenTolerance)); math.Abs(a-17) > 1e-9 {
		t.Errorf("clip area = %v, want 17", a)
	}
}
