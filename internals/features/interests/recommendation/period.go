package recommendation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// InferCurrentPeriod menebak semester berjalan: 1 kalau belum ada nilai,
// selain itu semester terbesar di riwayat + 1. Label yang tidak diawali
// angka dihitung 0, jadi tidak pernah gagal.
func InferCurrentPeriod(labels []string) int {
	if len(labels) == 0 {
		return 1
	}
	maxPeriod := parseLeadingInt(labels[0])
	for _, l := range labels[1:] {
		if p := parseLeadingInt(l); p > maxPeriod {
			maxPeriod = p
		}
	}
	return maxPeriod + 1
}

// parseLeadingInt: "3 (Fast Track)" → 3, " 12abc" → 12, "x" → 0.
func parseLeadingInt(label string) int {
	s := strings.TrimLeftFunc(label, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		// label raksasa tetap dianggap besar; MaxInt-1 supaya max+1 tidak overflow
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt - 1
	}
	if err != nil {
		return 0
	}
	return n
}
