// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

// Interpolate converts both paths to curves and aligns them so that they have
// the same length and the same letter at every index, which lets a caller
// tween them coordinate by coordinate. The alignment is structural only:
//
//   - a move-to present on one side only gets a synthetic move-to at the
//     other side's current point;
//   - when one command fans out into more curves than its counterpart (an
//     arc split in pieces), the shorter side is padded with zero length
//     curves at its current point;
//   - the shorter path is padded at the end the same way.
func Interpolate(from, to Path) (Path, Path) {
	p := from.ToAbsolute()
	p2 := to.ToAbsolute()
	a, a2 := &pathCursor{}, &pathCursor{}
	for i := 0; i < len(p) || i < len(p2); i++ {
		p = fixM(p, p2, a, i)
		p2 = fixM(p2, p, a2, i)
		s, s2 := a.curvesAt(p, p2, i), a2.curvesAt(p2, p, i)
		for len(s) < len(s2) {
			s = append(s, a.degenerate())
		}
		for len(s2) < len(s) {
			s2 = append(s2, a2.degenerate())
		}
		p = splice(p, i, s)
		p2 = splice(p2, i, s2)
		i += len(s) - 1
	}
	return p, p2
}

// fixM inserts a move-to at index i of p when other has one there and p
// does not.
func fixM(p, other Path, c *pathCursor, i int) Path {
	if i >= len(other) || other[i].Letter != 'M' {
		return p
	}
	if i < len(p) && p[i].Letter == 'M' {
		return p
	}
	m := Command{Letter: 'M', Args: []float64{c.x, c.y}}
	if i >= len(p) {
		return append(p, m)
	}
	res := make(Path, 0, len(p)+1)
	res = append(res, p[:i]...)
	res = append(res, m)
	return append(res, p[i:]...)
}

// curvesAt converts p[i] and advances the cursor. Past the end of p it
// yields padding that matches the letter other has at i.
func (c *pathCursor) curvesAt(p, other Path, i int) []Command {
	if i < len(p) {
		return c.convert(p[i])
	}
	if i < len(other) && other[i].Letter == 'M' {
		return c.convert(Command{Letter: 'M', Args: []float64{c.x, c.y}})
	}
	return []Command{c.degenerate()}
}

// splice replaces p[i] with segs, or appends them when i is past the end.
func splice(p Path, i int, segs []Command) Path {
	if i >= len(p) {
		return append(p, segs...)
	}
	if len(segs) == 1 {
		p[i] = segs[0]
		return p
	}
	res := make(Path, 0, len(p)+len(segs)-1)
	res = append(res, p[:i]...)
	res = append(res, segs...)
	return append(res, p[i+1:]...)
}
