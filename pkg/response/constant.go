package response

const (
	DefaultStackTraceDepth = 32
	DiscordMaxMessageLen   = 4000
)

// ContextKeyRequestID is the gin context key holding the request id.
const ContextKeyRequestID = "request_id"
