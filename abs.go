// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

// ToAbsolute returns a copy of the path in which every command is absolute.
// Relative arcs only have their end point translated; radii, rotation and
// flags do not depend on the current point.
func (p Path) ToAbsolute() Path {
	if len(p) == 0 {
		return nil
	}
	res := make(Path, 0, len(p))
	var x, y, mx, my float64
	start := 0
	if first := p[0]; first.Letter == 'M' && len(first.Args) >= 2 {
		x, y = first.Args[0], first.Args[1]
		mx, my = x, y
		res = append(res, Command{Letter: 'M', Args: []float64{x, y}})
		start = 1
	}
	for _, pc := range p[start:] {
		r := Command{Letter: toUpper(pc.Letter)}
		if len(pc.Args) > 0 {
			r.Args = make([]float64, len(pc.Args))
			copy(r.Args, pc.Args)
		}
		if r.Letter != pc.Letter {
			switch r.Letter {
			case 'A':
				if len(r.Args) == 7 {
					r.Args[5] += x
					r.Args[6] += y
				}
			case 'V':
				for i := range r.Args {
					r.Args[i] += y
				}
			case 'H':
				for i := range r.Args {
					r.Args[i] += x
				}
			default:
				for i := range r.Args {
					if i%2 == 0 {
						r.Args[i] += x
					} else {
						r.Args[i] += y
					}
				}
			}
		}
		switch r.Letter {
		case 'Z':
			x, y = mx, my
		case 'H':
			if l := len(r.Args); l > 0 {
				x = r.Args[l-1]
			}
		case 'V':
			if l := len(r.Args); l > 0 {
				y = r.Args[l-1]
			}
		case 'M':
			if ex, ey, ok := r.end(); ok {
				mx, my = ex, ey
			}
			fallthrough
		default:
			if ex, ey, ok := r.end(); ok {
				x, y = ex, ey
			}
		}
		res = append(res, r)
	}
	return res
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
