package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeInitialAnalysisStructure(t *testing.T) {
	got := ComposeInitialAnalysis(DifficultyExpert)
	assert.Contains(t, got, "DIFFICULTY LEVEL: Expert")
	assert.Contains(t, got, InstructionsFor(DifficultyExpert))
	for _, section := range []string{
		"**Overview**",
		"**Key Components**",
		"**How It Works**",
		"**Interesting Facts**",
		"**Next Steps**",
	} {
		assert.Contains(t, got, section)
	}
	assert.Contains(t, got, "200-400 words")
}

func TestComposeFollowUpEmbedsHistoryAndQuestion(t *testing.T) {
	history := []Message{
		{Role: RoleAssistant, Content: "Initial analysis."},
		{Role: RoleUser, Content: "What is this part?"},
	}
	got := ComposeFollowUp(history, "How does it spin?", nil, DifficultyIntermediate)

	assert.Contains(t, got, "ASSISTANT: Initial analysis.")
	assert.Contains(t, got, "USER: What is this part?")
	assert.Contains(t, got, "NEW QUESTION: How does it spin?")
	assert.Contains(t, got, "150-300 words")
	assert.NotContains(t, got, "USER CLICKED ON THE IMAGE")
	// History turns are separated by blank lines, chronological order.
	assert.Less(t,
		strings.Index(got, "ASSISTANT: Initial analysis."),
		strings.Index(got, "USER: What is this part?"))
}

func TestComposeFollowUpTapPointBlock(t *testing.T) {
	tap := &TapPoint{X: 80.4, Y: 9.6}
	got := ComposeFollowUp(nil, "What is here?", tap, DifficultyBeginner)

	assert.Contains(t, got, "USER CLICKED ON THE IMAGE")
	assert.Contains(t, got, "(80%, 10%)")
	// The band table is spelled out so the model can anchor itself.
	assert.Contains(t, got, "RIGHT side of image")
	assert.Contains(t, got, "TOP of image")
	assert.Contains(t, got, "top-right area")
}

func TestComposeWhatIfStructure(t *testing.T) {
	history := makeHistory(4)
	got := ComposeWhatIf(WindowFor(ModeWhatIf, history), "What if the belt snaps?", DifficultyNovice)

	assert.Contains(t, got, "What-If Mode")
	assert.Contains(t, got, "WHAT-IF SCENARIO: What if the belt snaps?")
	for _, section := range []string{
		"**Scenario Understanding**",
		"**Immediate Effects**",
		"**Chain Reactions**",
		"**Real-World Implications**",
		"**Prevention/Solution**",
	} {
		assert.Contains(t, got, section)
	}
	assert.Contains(t, got, "200-350 words")
}

func TestComposersAreDeterministic(t *testing.T) {
	history := makeHistory(7)
	tap := &TapPoint{X: 12, Y: 88}

	assert.Equal(t,
		ComposeInitialAnalysis(DifficultyAdvanced),
		ComposeInitialAnalysis(DifficultyAdvanced))
	assert.Equal(t,
		ComposeFollowUp(history, "q", tap, DifficultyExpert),
		ComposeFollowUp(history, "q", tap, DifficultyExpert))
	assert.Equal(t,
		ComposeWhatIf(history, "s", DifficultyNovice),
		ComposeWhatIf(history, "s", DifficultyNovice))
}
