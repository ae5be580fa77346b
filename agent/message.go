package agent

// Role identifies the author of a message in the conversation history.
type Role string

const (
	RoleHuman Role = "human"
)

// Message is one conversational turn. It is treated as immutable once appended to a state.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// HumanMessage builds a caller-authored turn.
func HumanMessage(content string) Message {
	return Message{
		Role:    RoleHuman,
		Content: content,
	}
}

// CloneMessages returns a copy of the history that does not alias the input backing array.
func CloneMessages(in []Message) []Message {
	if in == nil {
		return nil
	}
	out := make([]Message, len(in))
	copy(out, in)
	return out
}
