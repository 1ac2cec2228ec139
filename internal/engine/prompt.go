package engine

import (
	"fmt"
	"math"
	"strings"
)

// The three prompt composers below are pure: identical inputs produce
// byte-identical text. The image payload itself travels beside the prompt
// in the inference request and is never embedded here.

// ComposeInitialAnalysis builds the prompt for the first look at an
// uploaded image.
func ComposeInitialAnalysis(difficulty Difficulty) string {
	var b strings.Builder
	b.WriteString("You are Visualize.AI, an expert multimodal learning assistant that helps people understand how things work by analyzing images.\n\n")
	b.WriteString("TASK: Analyze this image and provide a comprehensive yet accessible explanation.\n\n")
	writeDifficultyBlock(&b, difficulty)
	b.WriteString(`ANALYSIS STRUCTURE:
1. **Overview**: What is this image showing? Identify the main subject.
2. **Key Components**: List the main visible parts/components (number them).
3. **How It Works**: Explain the basic function or purpose.
4. **Interesting Facts**: Share 1-2 interesting details about what's shown.
5. **Next Steps**: Suggest what the user might want to explore by clicking on specific parts.

IMPORTANT GUIDELINES:
- Be engaging and educational
- Match your language complexity to the difficulty level
- If you can identify specific components, mention their approximate positions (left, right, top, bottom, center)
- Encourage the user to tap/click on specific parts to learn more
- Keep the response focused and not too long (aim for 200-400 words)

Analyze the image now:`)
	return b.String()
}

// ComposeFollowUp builds the prompt for a conversational question about an
// already-analyzed image. The history passed in is the window selected by
// the caller; a tap point, when present, is translated into a spatial hint
// so the model anchors on the right area.
func ComposeFollowUp(history []Message, question string, tap *TapPoint, difficulty Difficulty) string {
	var b strings.Builder
	b.WriteString("You are Visualize.AI, continuing a conversation about an image.\n\n")
	writeDifficultyBlock(&b, difficulty)
	writeHistoryBlock(&b, history)

	if tap != nil {
		region := ResolveRegion(*tap)
		fmt.Fprintf(&b, `USER CLICKED ON THE IMAGE:
The user clicked at position (%d%%, %d%%) of the image.
- If x is 0-33%%: LEFT side of image
- If x is 34-66%%: CENTER of image
- If x is 67-100%%: RIGHT side of image
- If y is 0-33%%: TOP of image
- If y is 34-66%%: MIDDLE of image
- If y is 67-100%%: BOTTOM of image

This position falls in the %s area of the image.
Focus your answer on what is visible at or near this position.

`, roundPercent(tap.X), roundPercent(tap.Y), region)
	}

	b.WriteString("NEW QUESTION: ")
	b.WriteString(question)
	b.WriteString(`

INSTRUCTIONS:
- Answer the question directly and helpfully
- Reference the specific part of the image if relevant
- Maintain the appropriate difficulty level
- Keep your response focused (150-300 words unless the question requires more detail)
- If you cannot determine exactly what the user clicked on, describe what you can see in that general area

Respond now:`)
	return b.String()
}

// ComposeWhatIf builds the prompt for a hypothetical scenario about the
// image. Callers pass the what-if window, not the full history.
func ComposeWhatIf(history []Message, scenario string, difficulty Difficulty) string {
	var b strings.Builder
	b.WriteString("You are Visualize.AI in \"What-If Mode\" - exploring hypothetical scenarios about an image.\n\n")
	writeDifficultyBlock(&b, difficulty)
	writeHistoryBlock(&b, history)

	b.WriteString("WHAT-IF SCENARIO: ")
	b.WriteString(scenario)
	b.WriteString(`

WHAT-IF ANALYSIS STRUCTURE:
1. **Scenario Understanding**: Briefly restate the hypothetical situation
2. **Immediate Effects**: What would happen right away?
3. **Chain Reactions**: What secondary effects might occur?
4. **Real-World Implications**: Why does this matter? What could go wrong?
5. **Prevention/Solution**: How to avoid this issue or fix it?

GUIDELINES:
- Be educational and thought-provoking
- Ground your analysis in the actual image components
- Explain cause and effect relationships clearly
- Match complexity to the difficulty level
- Keep response focused (200-350 words)
- If the scenario doesn't apply to the image, politely redirect

Analyze this what-if scenario:`)
	return b.String()
}

func writeDifficultyBlock(b *strings.Builder, difficulty Difficulty) {
	fmt.Fprintf(b, "DIFFICULTY LEVEL: %s\n", difficulty)
	b.WriteString(InstructionsFor(difficulty))
	b.WriteString("\n\n")
}

func writeHistoryBlock(b *strings.Builder, history []Message) {
	b.WriteString("CONVERSATION HISTORY:\n")
	for i, msg := range history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.ToUpper(msg.Role))
		b.WriteString(": ")
		b.WriteString(msg.Content)
	}
	b.WriteString("\n\n")
}

func roundPercent(v float64) int {
	return int(math.Round(v))
}
