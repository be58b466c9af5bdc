package scoring

import "testing"

func TestPointsAllZeroStatsScoreZero(t *testing.T) {
	cfg := Config{Variant: VariantRegular, Weights: map[string]float64{
		"points": 1.0, "rebound": 1.2, "assist": 1.0, "steal": 2.0, "turnover": -1.0,
	}}
	stats := map[string]float64{"points": 0, "rebound": 0, "assist": 0, "steal": 0, "turnover": 0}

	if got := Points(stats, cfg); got != 0 {
		t.Fatalf("expected exactly 0 for all-zero stats, got %v", got)
	}
}

func TestPointsWeightedSum(t *testing.T) {
	cfg := Config{Variant: VariantRegular, Weights: map[string]float64{
		"points": 1.0, "rebound": 1.2, "assist": 1.0, "steal": 2.0, "turnover": -1.0,
	}}
	stats := map[string]float64{"points": 10, "rebound": 5, "assist": 3, "steal": 1, "turnover": 2}

	if got := Points(stats, cfg); got != 19.0 {
		t.Fatalf("expected 19.0, got %v", got)
	}
}

func TestPointsLinearInWeights(t *testing.T) {
	stats := map[string]float64{"rebound": 7}
	base := Points(stats, Config{Weights: map[string]float64{"rebound": 1.2}})
	doubled := Points(stats, Config{Weights: map[string]float64{"rebound": 2.4}})

	if doubled != 2*base {
		t.Fatalf("doubling a weight must double its contribution: %v vs %v", base, doubled)
	}
}

func TestPointsIgnoresCategoriesMissingFromEitherSide(t *testing.T) {
	cfg := Config{Weights: map[string]float64{"points": 1.0, "block": 2.0}}
	stats := map[string]float64{"points": 4, "assist": 9}

	if got := Points(stats, cfg); got != 4.0 {
		t.Fatalf("only categories in both row and config may contribute, got %v", got)
	}
}
