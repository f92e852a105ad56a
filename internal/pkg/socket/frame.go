package socket

import "encoding/json"

// Frame is the wire format of the push channel: a named event with a JSON
// payload. Seq is an optional monotonic ordering token attached by the
// server; zero means none was attached.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
	Seq   int64           `json:"seq,omitempty"`
}

// Handler consumes one inbound event. Handlers for a single connection are
// invoked sequentially in delivery order; anything slow belongs in a
// goroutine owned by the handler.
type Handler func(data json.RawMessage, seq int64)

// Events receives connection lifecycle signals.
type Events interface {
	Connected()
	Disconnected(reason string)
	ConnectError(message string)
}
