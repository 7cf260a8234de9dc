package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "Title"},
		[][]string{{"watersort", "Water Sort"}, {"watersort_sandbox", "Sandbox"}},
	)

	for _, want := range []string{"ID", "Title", "watersort", "Water Sort", "watersort_sandbox", "Sandbox"} {
		assert.Contains(t, out, want)
	}

	lines := strings.Split(out, "\n")
	headerAt := -1
	for i, l := range lines {
		if strings.Contains(l, "Title") {
			headerAt = i
		}
	}
	assert.GreaterOrEqual(t, headerAt, 0)
	for i, l := range lines {
		if strings.Contains(l, "Water Sort") {
			assert.Greater(t, i, headerAt, "rows come after the header")
		}
	}
}

func TestRenderTableWithoutRows(t *testing.T) {
	out := renderTable([]string{"Rank", "Score"}, nil)
	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "Score")
}
