package server

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Query string `json:"query"`
}

// chatResponse is returned by POST /api/chat and POST /api/more.
type chatResponse struct {
	SessionID string          `json:"session_id"`
	Text      string          `json:"text"`
	Results   []resultPayload `json:"results"`
	Remaining int             `json:"remaining"`
}

// resultPayload is one catalog record in a chat response.
type resultPayload struct {
	Title        string `json:"title"`
	Speaker      string `json:"speaker,omitempty"`
	Date         string `json:"date,omitempty"`
	DownloadLink string `json:"download_link"`
	MatchType    string `json:"match_type"`
	MatchScore   int    `json:"match_score"`
}

// clearResponse is returned by POST /api/clear.
type clearResponse struct {
	SessionID string `json:"session_id"`
	Cleared   bool   `json:"cleared"`
}

// errorResponse is the unified error body.
type errorResponse struct {
	Error string `json:"error"`
}
