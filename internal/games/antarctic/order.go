package antarctic

import "sort"

// DepthOrder returns the objects sorted far to near, so drawing them in
// order lets nearer objects cover farther ones. Objects at equal depth
// keep their insertion order (a fish stays on top of its hole).
func DepthOrder(objs []*WorldObject) []*WorldObject {
	sorted := make([]*WorldObject, len(objs))
	copy(sorted, objs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Z > sorted[j].Z
	})
	return sorted
}
