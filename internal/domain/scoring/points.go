package scoring

// Points computes fantasy points for one raw stat line: the weighted sum over
// categories present in both the line and the config. Categories missing from
// either side contribute nothing.
func Points(stats map[string]float64, cfg Config) float64 {
	var total float64
	for category, weight := range cfg.Weights {
		count, ok := stats[category]
		if !ok {
			continue
		}
		total += count * weight
	}
	return total
}
