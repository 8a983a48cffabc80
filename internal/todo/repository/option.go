package repository

// GetOrCreateSessionOptions holds parameters for fetching a session.
type GetOrCreateSessionOptions struct {
	ID string
}
