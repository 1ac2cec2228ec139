package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractComponentsNumberedBoldItems(t *testing.T) {
	analysis := "2. **Key Components**:\n" +
		"1. **Engine Block** sits at the center.\n" +
		"2. **Radiator** up front.\n"

	got := ExtractComponents("1. **Engine Block** ...\n2. **Radiator** ...")
	require.Len(t, got, 2)
	assert.Equal(t, Component{Name: "Engine Block", X: 30, Y: 30}, got[0])
	assert.Equal(t, Component{Name: "Radiator", X: 70, Y: 30}, got[1])

	// Section headers that match the pattern are extracted too; the parser
	// is a text heuristic with no understanding of document structure.
	got = ExtractComponents(analysis)
	require.Len(t, got, 3)
	assert.Equal(t, "Key Components", got[0].Name)
}

func TestExtractComponentsAllFiveSlots(t *testing.T) {
	analysis := "1. **A**\n2. **B**\n3. **C**\n4. **D**\n5. **E**\n"
	got := ExtractComponents(analysis)
	require.Len(t, got, 5)
	want := []Component{
		{Name: "A", X: 30, Y: 30},
		{Name: "B", X: 70, Y: 30},
		{Name: "C", X: 30, Y: 70},
		{Name: "D", X: 70, Y: 70},
		{Name: "E", X: 50, Y: 50},
	}
	assert.Equal(t, want, got)
}

func TestExtractComponentsDropsOrdinalBeyondTable(t *testing.T) {
	got := ExtractComponents("5. **Last** ok\n6. **Extra** dropped\n12. **Way Off** dropped")
	require.Len(t, got, 1)
	assert.Equal(t, "Last", got[0].Name)
}

func TestExtractComponentsDuplicateOrdinalsKeepAppearanceOrder(t *testing.T) {
	got := ExtractComponents("2. **First Seen**\n1. **Second Seen**\n2. **Third Seen**")
	require.Len(t, got, 3)
	assert.Equal(t, "First Seen", got[0].Name)
	assert.Equal(t, Component{Name: "First Seen", X: 70, Y: 30}, got[0])
	assert.Equal(t, Component{Name: "Second Seen", X: 30, Y: 30}, got[1])
	assert.Equal(t, Component{Name: "Third Seen", X: 70, Y: 30}, got[2])
}

func TestExtractComponentsNoMatches(t *testing.T) {
	assert.Empty(t, ExtractComponents(""))
	assert.Empty(t, ExtractComponents("plain prose with **bold** but no numbering"))
	assert.Empty(t, ExtractComponents("1. plain numbered item without bold label"))
}
