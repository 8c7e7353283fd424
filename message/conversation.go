package message

// Conversation is an ordered sequence of messages. Append order is the
// only ordering; nothing here reorders or deduplicates.
type Conversation struct {
	messages []*Message
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a message to the end of the conversation.
func (c *Conversation) Append(msg *Message) *Conversation {
	if msg != nil {
		c.messages = append(c.messages, msg)
	}
	return c
}

// System appends a system message.
func (c *Conversation) System(content string) *Conversation {
	return c.Append(NewMessage(RoleSystem, content))
}

// User appends a user message.
func (c *Conversation) User(content string) *Conversation {
	return c.Append(NewMessage(RoleUser, content))
}

// Assistant appends an assistant message.
func (c *Conversation) Assistant(content string) *Conversation {
	return c.Append(NewMessage(RoleAssistant, content))
}

// Messages returns a copy of the conversation history.
func (c *Conversation) Messages() []*Message {
	return CloneMessages(c.messages)
}

// Len returns the number of messages in the conversation.
func (c *Conversation) Len() int {
	return len(c.messages)
}
