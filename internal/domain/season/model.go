package season

import "fmt"

// Season is one college basketball season. Year identifies the season
// by its ending calendar year, e.g. 2026 for 2025-26.
type Season struct {
	Year        int
	DisplayName string
	StartDate   string
	EndDate     string
}

func (s Season) Validate() error {
	if s.Year <= 0 {
		return fmt.Errorf("season year is required")
	}
	return nil
}

// Find returns the season with the given year from list.
func Find(list []Season, year int) (Season, bool) {
	for _, s := range list {
		if s.Year == year {
			return s, true
		}
	}
	return Season{}, false
}
