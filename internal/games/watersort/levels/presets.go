package levels

import "slices"

// Sandbox presets keyed by vial count. Each fills all but two vials.
var presets = map[int][]string{
	9: {
		"ABCD", "ABCD", "ABCD", "ABCD",
		"EEFG", "EFFG", "EFGG",
		"", "",
	},
	11: {
		"ABCD", "ABCD", "ABCD", "ABCD",
		"EFGH", "EFGH", "EFGH", "EFGH",
		"IIII",
		"", "",
	},
	14: {
		"ABCD", "ABCD", "ABCD", "ABCD",
		"EFGH", "EFGH", "EFGH", "EFGH",
		"IJKL", "IJKL", "IJKL", "IJKL",
		"", "",
	},
}

// DefaultPresetSize is the vial count the sandbox starts with.
const DefaultPresetSize = 14

// PresetSizes returns the available preset vial counts in ascending order.
func PresetSizes() []int {
	sizes := make([]int, 0, len(presets))
	for n := range presets {
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)
	return sizes
}

// Preset returns a copy of the preset with n vials.
func Preset(n int) ([]string, bool) {
	p, ok := presets[n]
	if !ok {
		return nil, false
	}
	return slices.Clone(p), true
}

// NextPresetSize returns the preset size after n, wrapping around.
func NextPresetSize(n int) int {
	sizes := PresetSizes()
	for i, s := range sizes {
		if s == n {
			return sizes[(i+1)%len(sizes)]
		}
	}
	return sizes[0]
}
