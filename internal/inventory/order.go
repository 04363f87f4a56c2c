package inventory

import "sort"

// SortLights returns a copy of lights in canonical order: color-capable
// lights first, then by name. The ID breaks remaining ties so the order is
// total and identical on every call.
//
// Every list of lights that a cursor indexes into must come from this
// function, otherwise the cursor and the rendering drift apart.
func SortLights(lights []Light) []Light {
	sorted := make([]Light, len(lights))
	copy(sorted, lights)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lightLess(sorted[i], sorted[j])
	})
	return sorted
}

func lightLess(a, b Light) bool {
	if a.SupportsColor != b.SupportsColor {
		return a.SupportsColor
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}
