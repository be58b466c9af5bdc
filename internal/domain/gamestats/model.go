package gamestats

// Row is one uploaded box-score line: raw per-category counts for one player
// in one real-world game. Rows are append-only per upload; re-uploading a
// (date, game) pair fully supersedes its prior rows.
type Row struct {
	GameID   string
	GameDate string
	PlayerID int
	Stats    map[string]float64
}

// CloneStats returns an independent copy of the raw category counts.
func (r Row) CloneStats() map[string]float64 {
	if r.Stats == nil {
		return nil
	}
	out := make(map[string]float64, len(r.Stats))
	for k, v := range r.Stats {
		out[k] = v
	}
	return out
}
