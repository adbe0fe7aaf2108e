package g2p

// distributePhones spreads nPhones over nWords counters as evenly as
// possible, each new phone going to the currently smallest counter and ties
// breaking leftwards. 7 phones over 3 words gives [3 2 2].
func distributePhones(nPhones, nWords int) []int {
	counts := make([]int, nWords)
	for i := 0; i < nPhones; i++ {
		min := 0
		for j := 1; j < nWords; j++ {
			if counts[j] < counts[min] {
				min = j
			}
		}
		counts[min]++
	}
	return counts
}
