package matching

import "context"

// ctxCheckEvery is how many window comparisons run between context checks.
const ctxCheckEvery = 256

// PartialRatio returns the best similarity (0-100) between the shorter string and
// any alignment of it against the longer one. Alignments are every equal-length
// window plus the partial windows hanging off either end. Similarity is
// 200*LCS/(len(a)+len(b)) on runes. Two empty strings score 100.
func PartialRatio(a, b string) float64 {
	score, _ := partialRatio(context.Background(), a, b)
	return score
}

func partialRatio(ctx context.Context, a, b string) (float64, error) {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100, nil
		}
		return 0, nil
	}

	m := len(short)
	best := 0.0
	checked := 0
	consider := func(window []rune) (bool, error) {
		checked++
		if checked%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		if r := indelRatio(short, window); r > best {
			best = r
		}
		return best >= 100, nil
	}

	for i := 0; i+m <= len(long); i++ {
		if done, err := consider(long[i : i+m]); done || err != nil {
			return best, err
		}
	}
	for k := 1; k < m && k <= len(long); k++ {
		if done, err := consider(long[:k]); done || err != nil {
			return best, err
		}
	}
	for k := len(long) - m + 1; k < len(long); k++ {
		if done, err := consider(long[k:]); done || err != nil {
			return best, err
		}
	}
	return best, nil
}

// indelRatio is the normalized Indel similarity of a and b, 0-100.
func indelRatio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	return 200 * float64(lcsLength(a, b)) / float64(total)
}

func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
