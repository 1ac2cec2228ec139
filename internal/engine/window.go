package engine

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Mode identifies which conversational contract a request follows.
type Mode string

const (
	ModeFollowUp Mode = "follow-up"
	ModeWhatIf   Mode = "what-if"
)

// whatIfWindowSize caps how much history a what-if prompt carries. The mode
// only needs recent grounding context, so the window bounds prompt size.
const whatIfWindowSize = 6

// WindowFor selects the history slice included in an outbound prompt:
// the full history for follow-ups, the most recent entries (in original
// order) for what-if requests. The returned slice aliases history and must
// be treated as read-only.
func WindowFor(mode Mode, history []Message) []Message {
	if mode != ModeWhatIf {
		return history
	}
	if len(history) <= whatIfWindowSize {
		return history
	}
	return history[len(history)-whatIfWindowSize:]
}
