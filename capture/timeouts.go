package capture

import "time"

// Request timeouts
const (
	// requestTimeout bounds every HTTP round trip the client makes.
	// Exceeding it surfaces as a network error, not a distinct timeout
	// kind; callers needing retries wrap calls externally (see pkg/poll).
	requestTimeout = 30 * time.Second
)
