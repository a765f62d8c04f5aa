package chat

// request payload for one chat message
type Request struct {
	Message             string    `json:"message" binding:"required"`
	PlatformID          string    `json:"platformId"`
	ConversationHistory []Message `json:"conversationHistory"`
}

// conversation message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// response payload for one chat message
type Response struct {
	Response  string `json:"response"`
	XPEarned  int    `json:"xpEarned"`
	QueryType string `json:"queryType"`
}
