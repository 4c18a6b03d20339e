package cloth

// collide resolves overlaps between projectiles and everything else. Cloth
// particles do not collide with each other and projectiles do not collide
// with each other. Pairs are visited in creation order so the result is
// reproducible.
func (w *World) collide() int {
	ps := w.particles
	threshold := w.params.ProjectileMass
	resolved := 0
	for i := range ps {
		a := &ps[i]
		if !a.IsProjectile(threshold) {
			continue
		}
		for j := range ps {
			b := &ps[j]
			if i == j || b.IsProjectile(threshold) {
				continue
			}
			if resolvePair(a, b) {
				resolved++
			}
		}
	}
	return resolved
}

// resolvePair pushes two overlapping particles apart and exchanges momentum
// along the contact normal as a perfectly elastic collision. Anchored
// particles take part but are never moved. Coincident particles have no
// normal and are left alone.
func resolvePair(a, b *Particle) bool {
	delta := a.Pos.Sub(b.Pos)
	dist := delta.Len()
	minDist := a.Radius + b.Radius
	if dist >= minDist || dist == 0 {
		return false
	}

	overlap := minDist - dist
	n := delta.Mul(1 / dist)
	push := n.Mul(overlap * 0.5)
	if a.Role != Anchored {
		a.Pos = a.Pos.Add(push)
	}
	if b.Role != Anchored {
		b.Pos = b.Pos.Sub(push)
	}

	impulse := 2 * (a.Vel.Dot(n) - b.Vel.Dot(n)) / (a.Mass + b.Mass)
	if a.Role != Anchored {
		a.Vel = a.Vel.Sub(n.Mul(impulse * b.Mass))
	}
	if b.Role != Anchored {
		b.Vel = b.Vel.Add(n.Mul(impulse * a.Mass))
	}
	return true
}
