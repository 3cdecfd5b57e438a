package svg

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// PathData renders p in SVG path-data syntax (M, L, Q, C and Z commands
// with absolute coordinates, tokens separated by single spaces). A nil
// formatter means ShortestFormatter.
func PathData(p *Path, f NumberFormatter) string {
	if f == nil {
		f = ShortestFormatter{}
	}
	var sb strings.Builder
	pt := func(q Point) {
		sb.WriteByte(' ')
		sb.WriteString(f.Format(q.X))
		sb.WriteByte(' ')
		sb.WriteString(f.Format(q.Y))
	}
	for i, s := range p.segs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.Op {
		case SegmentOpMoveTo:
			sb.WriteByte('M')
			pt(s.Args[0])
		case SegmentOpLineTo:
			sb.WriteByte('L')
			pt(s.Args[0])
		case SegmentOpQuadTo:
			sb.WriteByte('Q')
			pt(s.Args[0])
			pt(s.Args[1])
		case SegmentOpCubeTo:
			sb.WriteByte('C')
			pt(s.Args[0])
			pt(s.Args[1])
			pt(s.Args[2])
		case SegmentOpClose:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// pathDataArity is the number of values each command consumes.
var pathDataArity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'Q': 4, 'T': 2, 'C': 6, 'S': 4,
	'Z': 0,
}

// ParsePathData parses SVG path data into a Path. Absolute and relative
// M, L, H, V, Q, T, C, S and Z commands are supported, including implicit
// command repetition. Elliptical arcs are rejected with ErrInvalidArgument.
func ParsePathData(d string) (*Path, error) {
	p := NewPath()
	b := []byte(d)
	i := skipSeparators(b, 0)
	if i == len(b) {
		return p, nil
	}

	var (
		cmd       byte
		args      [6]float64
		pos       Point // current point
		subStart  Point
		lastCtrl  Point // reflected by S and T
		lastUpper byte
	)
	for i < len(b) {
		c := b[i]
		switch {
		case isCommandByte(c):
			cmd = c
			i = skipSeparators(b, i+1)
		case cmd == 0:
			return nil, fmt.Errorf("svg: path data must start with a command, got %q: %w", c, ErrInvalidArgument)
		case cmd == 'Z' || cmd == 'z':
			return nil, fmt.Errorf("svg: unexpected number after close at offset %d: %w", i, ErrInvalidArgument)
		}

		upper := cmd &^ 0x20
		if upper == 'A' {
			return nil, fmt.Errorf("svg: elliptical arc commands are not supported: %w", ErrInvalidArgument)
		}
		n, ok := pathDataArity[upper]
		if !ok {
			return nil, fmt.Errorf("svg: unknown path command %q at offset %d: %w", cmd, i-1, ErrInvalidArgument)
		}
		for j := range n {
			v, m := strconv.ParseFloat(b[i:])
			if m == 0 {
				return nil, fmt.Errorf("svg: command %q needs %d numbers at offset %d: %w", cmd, n, i, ErrInvalidArgument)
			}
			args[j] = v
			i = skipSeparators(b, i+m)
		}

		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Point{X: pos.X + x, Y: pos.Y + y}
			}
			return Point{X: x, Y: y}
		}
		// Reflection only applies after a curve of the same family.
		reflect := func(family ...byte) Point {
			for _, f := range family {
				if lastUpper == f {
					return pos.Mul(2).Sub(lastCtrl)
				}
			}
			return pos
		}

		switch upper {
		case 'M':
			pos = abs(args[0], args[1])
			subStart = pos
			p.MoveTo(pos.X, pos.Y)
			// Further pairs are implicit line-tos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			pos = abs(args[0], args[1])
			p.LineTo(pos.X, pos.Y)
		case 'H':
			if rel {
				pos.X += args[0]
			} else {
				pos.X = args[0]
			}
			p.LineTo(pos.X, pos.Y)
		case 'V':
			if rel {
				pos.Y += args[0]
			} else {
				pos.Y = args[0]
			}
			p.LineTo(pos.X, pos.Y)
		case 'Q':
			ctrl := abs(args[0], args[1])
			end := abs(args[2], args[3])
			p.QuadraticTo(ctrl.X, ctrl.Y, end.X, end.Y)
			lastCtrl, pos = ctrl, end
		case 'T':
			ctrl := reflect('Q', 'T')
			end := abs(args[0], args[1])
			p.QuadraticTo(ctrl.X, ctrl.Y, end.X, end.Y)
			lastCtrl, pos = ctrl, end
		case 'C':
			c1 := abs(args[0], args[1])
			c2 := abs(args[2], args[3])
			end := abs(args[4], args[5])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			lastCtrl, pos = c2, end
		case 'S':
			c1 := reflect('C', 'S')
			c2 := abs(args[0], args[1])
			end := abs(args[2], args[3])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			lastCtrl, pos = c2, end
		case 'Z':
			p.Close()
			pos = subStart
		}
		lastUpper = upper
	}
	return p, nil
}

func isCommandByte(c byte) bool {
	_, ok := pathDataArity[c&^0x20]
	return ok || c&^0x20 == 'A'
}

func skipSeparators(b []byte, i int) int {
	for i < len(b) {
		switch b[i] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			i++
		default:
			return i
		}
	}
	return i
}
