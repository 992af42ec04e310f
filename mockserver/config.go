package mockserver

// Config is the mock server configuration.
type Config struct {
	// Address to listen on (e.g., ":8089")
	ListenAddr string

	// APIKey, when set, is the only key accepted. Otherwise any non-empty
	// key is accepted.
	APIKey string

	// Reply is returned as the candidate text. Empty echoes the last
	// message back.
	Reply string

	// FailStatus makes every generate call fail with this HTTP status.
	FailStatus int
}
