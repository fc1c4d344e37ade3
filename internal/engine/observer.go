package engine

import "time"

// EventType represents different lifecycle phases in query processing
type EventType string

const (
	EventLexStart   EventType = "lex_start"
	EventLexEnd     EventType = "lex_end"
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventPlanStart  EventType = "plan_start"
	EventPlanEnd    EventType = "plan_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
)

// Event represents a lifecycle event in query processing
type Event struct {
	Type      EventType   // Type of event
	QueryID   string      // Query ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., query, token count, plan cost, hit count)
}

// Observer interface for event subscribers
// Observers receive events at major processing phases
type Observer interface {
	OnEvent(event Event)
}
