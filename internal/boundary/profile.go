package boundary

// maskProfiles projects a binary mask onto both axes.
//
// rowProfile[i] is the mean of mask row i; colProfile[j] is the mean of mask
// column j. A row or column is touched by the illuminated region exactly when
// its profile entry is nonzero.
func maskProfiles(mask [][]uint8) (rowProfile, colProfile []float64) {
	height := len(mask)
	width := len(mask[0])

	rowProfile = make([]float64, height)
	colProfile = make([]float64, width)

	for i, row := range mask {
		var sum float64
		for j, v := range row {
			sum += float64(v)
			colProfile[j] += float64(v)
		}
		rowProfile[i] = sum / float64(width)
	}
	for j := range colProfile {
		colProfile[j] /= float64(height)
	}
	return rowProfile, colProfile
}

// nonzeroSpan returns the first and last index holding a nonzero entry.
// ok is false when every entry is zero.
func nonzeroSpan(profile []float64) (lo, hi int, ok bool) {
	lo, hi = -1, -1
	for i, v := range profile {
		if v == 0 {
			continue
		}
		if lo < 0 {
			lo = i
		}
		hi = i
	}
	return lo, hi, lo >= 0
}

// centerOfMass returns the profile-weighted mean index position.
// ok is false when the profile sums to zero.
func centerOfMass(profile []float64) (com float64, ok bool) {
	var weighted, total float64
	for i, v := range profile {
		weighted += float64(i) * v
		total += v
	}
	if total == 0 {
		return 0, false
	}
	return weighted / total, true
}
