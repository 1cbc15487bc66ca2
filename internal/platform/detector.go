package platform

// Detect classifies a table header against the given profiles. The
// profile with the most signature-column hits wins; ties keep the
// earlier profile, so the slice order is the configured priority
// order. Headers with fewer than minHits overlapping columns for every
// profile yield the custom sentinel.
func Detect(header []string, profiles []Profile, minHits int) Profile {
	if minHits < 1 {
		minHits = 1
	}

	best := CustomProfile()
	bestHits := 0

	for _, p := range profiles {
		hits := p.SignatureHits(header)
		if hits > bestHits {
			best = p
			bestHits = hits
		}
	}

	if bestHits < minHits {
		return CustomProfile()
	}
	return best
}
