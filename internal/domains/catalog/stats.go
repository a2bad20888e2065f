package catalog

// Stats resume el estado del catálogo para el dashboard admin.
type Stats struct {
	Total      int              `json:"total"`
	Active     int              `json:"active"`
	Featured   int              `json:"featured"`
	ByCategory map[Category]int `json:"byCategory"`
	Source     Source           `json:"source"`
}

// ComputeStats calcula las métricas sobre un listado ya adaptado.
func ComputeStats(entries []Entry, source Source) Stats {
	stats := Stats{
		ByCategory: make(map[Category]int, len(Categories())),
		Source:     source,
	}
	for _, cat := range Categories() {
		stats.ByCategory[cat] = 0
	}

	for _, e := range entries {
		stats.Total++
		if e.IsActive {
			stats.Active++
		}
		if e.IsFeatured {
			stats.Featured++
		}
		stats.ByCategory[e.Category]++
	}

	return stats
}
