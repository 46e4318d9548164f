package countries

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s used for all name comparisons
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Match returns the countries whose region code equals query, or whose name
// contains query, ignoring case. Upstream order is kept.
func Match(list []Country, query string) []Country {
	q := Fold(query)
	if q == "" {
		return nil
	}

	var out []Country
	for _, c := range list {
		if Fold(c.Code) == q || strings.Contains(Fold(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// Suggest returns up to limit countries whose names are closest to query by
// edit distance. Ties keep upstream order.
func Suggest(list []Country, query string, limit int) []Country {
	q := Fold(query)
	if q == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		country  Country
		distance int
	}
	candidates := make([]scored, 0, len(list))
	for _, c := range list {
		candidates = append(candidates, scored{
			country:  c,
			distance: levenshtein.ComputeDistance(q, Fold(c.Name)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]Country, len(candidates))
	for i, s := range candidates {
		out[i] = s.country
	}
	return out
}
