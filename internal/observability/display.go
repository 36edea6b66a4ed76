package observability

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/jonathan/recipe-finder/internal/types"
)

// tagPalette is the fixed set of badge colors a tag can map to.
var tagPalette = [...]string{"blue", "green", "purple", "orange", "pink", "indigo", "teal"}

// TagColor maps a tag to a palette color. The hash runs over UTF-16 code
// units with 32-bit wraparound so web clients computing h = h*31 + c agree.
func TagColor(tag string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(tag)) {
		h = h*31 + int32(c)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return tagPalette[n%int64(len(tagPalette))]
}

// DifficultyColor returns the indicator color for a difficulty level.
func DifficultyColor(d types.Difficulty) string {
	switch strings.ToLower(string(d)) {
	case "beginner":
		return "green"
	case "intermediate":
		return "yellow"
	case "advanced":
		return "red"
	default:
		return "gray"
	}
}

// FormatRating renders a rating stored in tenths, e.g. 48 -> "4.8".
func FormatRating(tenths int) string {
	return strconv.FormatFloat(float64(tenths)/10, 'f', 1, 64)
}

// FormatDownloads renders a download count in thousands, e.g. 1200 -> "1.2k".
// Zero renders as "0".
func FormatDownloads(n int) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "k"
}
