package engine

import "strings"

// Difficulty selects one of the five fixed explanation tiers.
type Difficulty string

const (
	DifficultyNovice       Difficulty = "Novice"
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

// DefaultDifficulty is the tier applied when a request carries no
// recognizable difficulty value.
const DefaultDifficulty = DifficultyBeginner

var difficultyInstructions = map[Difficulty]string{
	DifficultyNovice: `Explain like I'm a complete beginner with no technical background.
Use simple everyday analogies and comparisons.
Avoid all technical jargon - if you must use a term, explain it immediately.
Keep sentences short and clear.
Focus on "what it does" rather than "how it works technically."`,
	DifficultyBeginner: `Explain for someone with basic knowledge who is learning.
Introduce simple technical terms with brief explanations.
Use relatable examples from everyday life.
Balance simplicity with accuracy.`,
	DifficultyIntermediate: `Explain for a hobbyist or someone with moderate technical knowledge.
Use appropriate technical terminology.
Include relevant details about how things work.
Assume familiarity with basic concepts.`,
	DifficultyAdvanced: `Explain for someone with strong technical background.
Use precise technical language and specifications.
Include detailed explanations of mechanisms and principles.
Reference relevant standards or best practices.`,
	DifficultyExpert: `Explain for a professional or specialist in the field.
Use full technical depth with specifications.
Include theoretical principles and advanced concepts.
Discuss edge cases, optimizations, and professional considerations.`,
}

// ParseDifficulty maps a raw request value to a known tier. Anything
// unrecognized (including empty input) resolves to the default tier.
func ParseDifficulty(raw string) Difficulty {
	d := Difficulty(strings.TrimSpace(raw))
	if _, ok := difficultyInstructions[d]; ok {
		return d
	}
	return DefaultDifficulty
}

// InstructionsFor returns the tone and vocabulary guidance for a tier.
// Unknown tiers fall back to the default tier's instructions.
func InstructionsFor(d Difficulty) string {
	if text, ok := difficultyInstructions[d]; ok {
		return text
	}
	return difficultyInstructions[DefaultDifficulty]
}
