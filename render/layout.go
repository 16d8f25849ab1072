package render

// SplitH splits region horizontally by ratios (0.0-1.0)
// Ratios are normalized if they don't sum to 1.0
func SplitH(r Region, ratios ...float64) []Region {
	if len(ratios) == 0 {
		return nil
	}

	var sum float64
	for _, ratio := range ratios {
		sum += ratio
	}
	if sum <= 0 {
		sum = 1
	}

	regions := make([]Region, len(ratios))
	x := 0
	remaining := r.W

	for i, ratio := range ratios {
		var w int
		if i == len(ratios)-1 {
			w = remaining // Last one gets remainder to avoid rounding gaps
		} else {
			w = int((float64(r.W) * ratio / sum) + 0.5) // Round to nearest cell
			if w > remaining {
				w = remaining
			}
		}
		regions[i] = r.Sub(x, 0, w, r.H)
		x += w
		remaining -= w
	}

	return regions
}

// SplitHFixed splits off a fixed-width left column, the right region fills the rest
func SplitHFixed(r Region, leftW int) (Region, Region) {
	leftW = max(0, min(leftW, r.W))
	return r.Sub(0, 0, leftW, r.H), r.Sub(leftW, 0, r.W-leftW, r.H)
}

// SplitVFixed splits off a fixed-height top row band, the bottom region fills the rest
func SplitVFixed(r Region, topH int) (Region, Region) {
	topH = max(0, min(topH, r.H))
	return r.Sub(0, 0, r.W, topH), r.Sub(0, topH, r.W, r.H-topH)
}
