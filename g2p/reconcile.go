package g2p

import (
	"fmt"

	"japaneseg2p/model"
)

// diffSeg is one non-common region between the generated and given phoneme
// lists: the generated index it starts at and the two replaced runs.
type diffSeg struct {
	genBegin int
	genLen   int
	givenLen int
}

// Reconcile adjusts word2ph after the caller substituted a different phoneme
// list (given) for the one this package generated. The element count of
// word2ph stays fixed; values shift by the local phoneme-count differences
// so the sum matches len(given), attributing each changed region to the
// character whose phonemes it replaced. Two repair sweeps then keep every
// element within [1, 6], borrowing from or pushing onto the elements to the
// right.
//
// All three inputs carry the framing elements ("_" phones, 1 counts); the
// result carries them too. Inputs too far apart to repair within the bounds
// fail with ErrReconcile.
func Reconcile(word2ph []int, generated, given []string) ([]int, error) {
	if len(word2ph) < 2 || len(generated) < 2 || len(given) < 2 {
		return nil, fmt.Errorf("%w: inputs missing framing elements", model.ErrReconcile)
	}
	w2ph := word2ph[1 : len(word2ph)-1]
	gen := generated[1 : len(generated)-1]
	giv := given[1 : len(given)-1]

	diffs := extractDiffs(gen, giv)

	adjusted := make([]int, len(w2ph))
	genIndex := 0
	for i, n := range w2ph {
		for k := 0; k < n; k++ {
			for _, d := range diffs {
				if d.genBegin == genIndex {
					adjusted[i] += d.givenLen - d.genLen
					break
				}
			}
			adjusted[i]++
			genIndex++
		}
	}
	// a pure insertion after the last generated phone has no phone to ride
	// on in the loop above, so it lands on the last character
	if len(adjusted) > 0 {
		for _, d := range diffs {
			if d.genBegin == len(gen) && d.genLen == 0 {
				adjusted[len(adjusted)-1] += d.givenLen
			}
		}
	}

	if sum(adjusted) != len(giv) {
		return nil, fmt.Errorf("%w: adjusted counts sum to %d for %d phones",
			model.ErrReconcile, sum(adjusted), len(giv))
	}

	// deletions can push a count below 1; raise it and take the excess from
	// the nearest element to the right that can spare it
	for i, v := range adjusted {
		if v >= 1 {
			continue
		}
		diff := 1 - v
		adjusted[i] = 1
		for j := i + 1; j < len(adjusted); j++ {
			if adjusted[j]-diff >= 1 {
				adjusted[j] -= diff
				diff = 0
				break
			}
			diff -= adjusted[j] - 1
			adjusted[j] = 1
			if diff == 0 {
				break
			}
		}
	}

	// insertions can push a count above 6; cap it and push the excess onto
	// the elements to the right
	for i, v := range adjusted {
		if v <= 6 {
			continue
		}
		diff := v - 6
		adjusted[i] = 6
		for j := i + 1; j < len(adjusted); j++ {
			if adjusted[j]+diff <= 6 {
				adjusted[j] += diff
				diff = 0
				break
			}
			diff -= 6 - adjusted[j]
			adjusted[j] = 6
			if diff == 0 {
				break
			}
		}
	}

	if sum(adjusted) != len(giv) {
		return nil, fmt.Errorf("%w: counts irreparable within [1, 6]", model.ErrReconcile)
	}

	out := make([]int, 0, len(adjusted)+2)
	out = append(out, 1)
	out = append(out, adjusted...)
	out = append(out, 1)
	return out, nil
}

// extractDiffs lists the regions where gen and giv disagree, anchored on
// their longest common subsequence.
func extractDiffs(gen, giv []string) []diffSeg {
	pairs := lcsPairs(gen, giv)

	var diffs []diffSeg
	prevX, prevY := -1, -1
	for _, p := range pairs {
		seg := diffSeg{
			genBegin: prevX + 1,
			genLen:   p.x - (prevX + 1),
			givenLen: p.y - (prevY + 1),
		}
		if seg.genLen > 0 || seg.givenLen > 0 {
			diffs = append(diffs, seg)
		}
		prevX, prevY = p.x, p.y
	}
	if prevX+1 < len(gen) || prevY+1 < len(giv) {
		diffs = append(diffs, diffSeg{
			genBegin: prevX + 1,
			genLen:   len(gen) - (prevX + 1),
			givenLen: len(giv) - (prevY + 1),
		})
	}
	return diffs
}

type indexPair struct{ x, y int }

// lcsPairs returns the index pairs of one longest common subsequence of X
// and Y, in order.
func lcsPairs(X, Y []string) []indexPair {
	m, n := len(X), len(Y)
	L := make([][]int, m+1)
	for i := range L {
		L[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if X[i-1] == Y[j-1] {
				L[i][j] = L[i-1][j-1] + 1
			} else if L[i-1][j] >= L[i][j-1] {
				L[i][j] = L[i-1][j]
			} else {
				L[i][j] = L[i][j-1]
			}
		}
	}

	var pairs []indexPair
	i, j := m, n
	for i > 0 && j > 0 {
		switch {
		case X[i-1] == Y[j-1]:
			pairs = append(pairs, indexPair{i - 1, j - 1})
			i--
			j--
		case L[i-1][j] >= L[i][j-1]:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(pairs)-1; l < r; l, r = l+1, r-1 {
		pairs[l], pairs[r] = pairs[r], pairs[l]
	}
	return pairs
}
