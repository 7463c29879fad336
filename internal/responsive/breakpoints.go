package responsive

import (
	"regexp"
	"slices"
	"strconv"
)

var (
	defaultDeviceBreakpoints = []int{480, 640, 750, 828, 1080, 1200, 1920, 2048, 3840}
	defaultImageBreakpoints  = []int{16, 32, 48, 64, 96, 128, 256, 384}
)

// DefaultDeviceBreakpoints returns the common device viewport widths used
// when Options.DeviceBreakpoints is nil.
func DefaultDeviceBreakpoints() []int {
	return slices.Clone(defaultDeviceBreakpoints)
}

// DefaultImageBreakpoints returns the common icon and thumbnail widths used
// when Options.ImageBreakpoints is nil.
func DefaultImageBreakpoints() []int {
	return slices.Clone(defaultImageBreakpoints)
}

// vwPattern matches an integer viewport-width length such as "50vw".
var vwPattern = regexp.MustCompile(`(\d+)vw`)

// uniqueSorted merges the given lists into one ascending list of positive
// widths without duplicates. The inputs are not modified.
func uniqueSorted(lists ...[]int) []int {
	var out []int
	for _, l := range lists {
		for _, w := range l {
			if w > 0 {
				out = append(out, w)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// minViewportFraction returns the smallest vw value in sizes as a fraction
// of the viewport. ok is false when sizes has no vw lengths.
func minViewportFraction(sizes string) (frac float64, ok bool) {
	minVW := -1
	for _, m := range vwPattern.FindAllStringSubmatch(sizes, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if minVW < 0 || n < minVW {
			minVW = n
		}
	}
	if minVW < 0 {
		return 0, false
	}
	return float64(minVW) / 100, true
}

// filterBelow drops every breakpoint strictly below threshold.
func filterBelow(breakpoints []int, threshold float64) []int {
	out := make([]int, 0, len(breakpoints))
	for _, bp := range breakpoints {
		if float64(bp) >= threshold {
			out = append(out, bp)
		}
	}
	return out
}
