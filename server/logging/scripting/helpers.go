package scripting

import (
	"context"

	"sandboxcore/server/logging"
)

const (
	// EventError is emitted when a script call raises or exceeds its time budget.
	EventError logging.EventType = "scripting.error"
	// EventReset is emitted when an errored script is returned to running state.
	EventReset logging.EventType = "scripting.reset"
)

// ErrorPayload captures the call that failed and why.
type ErrorPayload struct {
	Entrypoint string `json:"entrypoint"`
	Reason     string `json:"reason"`
	BudgetMs   int64  `json:"budgetMs,omitempty"`
}

// ResetPayload captures the reason a script was reset back to running.
type ResetPayload struct {
	Reason string `json:"reason"`
}

// Error publishes a script-error event for an entity.
func Error(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload ErrorPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventError,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityError,
		Category: "scripting",
		Payload:  payload,
		Extra:    extra,
	})
}

// Reset publishes a script-reset event for an entity.
func Reset(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload ResetPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventReset,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: "scripting",
		Payload:  payload,
		Extra:    extra,
	})
}
