package caption

// VisibleAt returns the captions whose interval contains t, in source
// order. Both bounds are inclusive. Overlapping captions are all
// returned; no precedence rule is applied.
func VisibleAt(captions []Caption, t float64) []Caption {
	var visible []Caption
	for _, c := range captions {
		if c.Start <= t && t <= c.End {
			visible = append(visible, c)
		}
	}
	return visible
}
