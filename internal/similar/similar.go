package similar

import (
	"sort"
	"strings"

	"github.com/yogatools/asanascrape/internal/manifest"
)

// prefixBoost is added when two names share the text before their first '-'.
// It groups variants of the same pose (e.g. "pose-a", "pose-b") above names
// that merely look alike. Boosted scores may exceed 1.0; only the ordering
// matters downstream, so they are not clamped.
const prefixBoost = 0.2

// DefaultMaxSimilar is used when the caller does not bound the result size.
const DefaultMaxSimilar = 4

// Ratio returns the Ratcliff/Obershelp similarity of a and b in [0, 1]:
// twice the total length of common matching blocks over the combined length.
// Matching blocks are found by locating the longest common contiguous
// substring and recursing on the unmatched remainders on either side.
// Two empty strings score 1.
func Ratio(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchedLen(ar, br)) / float64(total)
}

func matchedLen(a, b []rune) int {
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size + matchedLen(a[:ai], b[:bi]) + matchedLen(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common contiguous run, preferring the
// earliest start in a, then in b.
func longestMatch(a, b []rune) (ai, bi, size int) {
	for i := 0; i < len(a); i++ {
		if len(a)-i <= size {
			break
		}
		for j := 0; j < len(b); j++ {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > size {
				ai, bi, size = i, j, k
			}
		}
	}
	return ai, bi, size
}

// score is the boosted similarity of two already-lowercased names.
func score(targetName, name string) float64 {
	s := Ratio(targetName, name)
	targetBase, _, _ := strings.Cut(targetName, "-")
	base, _, _ := strings.Cut(name, "-")
	if targetBase == base {
		s += prefixBoost
	}
	return s
}

type scored struct {
	id    string
	score float64
}

// FindSimilar returns the ids of up to max records whose names are most
// similar to target's, excluding target itself. Names are compared
// case-insensitively. Equal scores order by id ascending.
func FindSimilar(target manifest.Record, all []manifest.Record, max int) []string {
	targetName := strings.ToLower(target.Name)

	ranked := make([]scored, 0, len(all))
	for _, r := range all {
		if r.ID == target.ID {
			continue
		}
		ranked = append(ranked, scored{id: r.ID, score: score(targetName, strings.ToLower(r.Name))})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})

	if max < 0 {
		max = 0
	}
	if max > len(ranked) {
		max = len(ranked)
	}
	out := make([]string, 0, max)
	for _, s := range ranked[:max] {
		out = append(out, s.id)
	}
	return out
}

// Process derives a ProcessedRecord for every record, ranking the rest of the
// set by name similarity. The pass is single-threaded and quadratic over the
// set; it runs after all downloads complete.
func Process(records []manifest.Record, maxSimilar int) []manifest.ProcessedRecord {
	if maxSimilar <= 0 {
		maxSimilar = DefaultMaxSimilar
	}
	out := make([]manifest.ProcessedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, manifest.ProcessedRecord{
			Record:     r,
			SimilarIDs: FindSimilar(r, records, maxSimilar),
		})
	}
	return out
}
