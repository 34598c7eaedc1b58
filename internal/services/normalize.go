package services

// MinMaxNormalize rescales the present values of a series into [0, 1]
// independently of any other series. Nil values stay nil and do not take
// part in the min and max. When every present value is equal they all map to 1.
func MinMaxNormalize(values []*float64) []*float64 {
	out := make([]*float64, len(values))

	var lo, hi float64
	seen := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if !seen {
			lo, hi, seen = *v, *v, true
			continue
		}
		lo = min(lo, *v)
		hi = max(hi, *v)
	}
	if !seen {
		return out
	}

	for i, v := range values {
		if v == nil {
			continue
		}
		n := 1.0
		if hi != lo {
			n = (*v - lo) / (hi - lo)
		}
		out[i] = &n
	}
	return out
}
