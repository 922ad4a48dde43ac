package response

// AuthorRef is the shared "has an author" shape composed into review and
// comment responses.
type AuthorRef struct {
	AuthorID       string `json:"author_id"`
	AuthorUsername string `json:"author,omitempty"`
}
