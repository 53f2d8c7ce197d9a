package ws

const (
	// client - server
	MsgStatus = "status"
	MsgPing   = "ping"

	// server - client
	MsgProgress  = "progress"
	MsgCompleted = "completed"
	MsgError     = "error"
)
