package replication

import (
	"context"

	"sandboxcore/server/logging"
)

const (
	// EventSchemaMismatch is emitted when received delta bytes are shorter than the
	// receiving schema demands and the connection is dropped.
	EventSchemaMismatch logging.EventType = "replication.schema_mismatch"
	// EventEntityDestroyed is emitted when the manager tells clients an entity is gone.
	EventEntityDestroyed logging.EventType = "replication.entity_destroyed"
)

// SchemaMismatchPayload records the version gap that triggered the drop.
type SchemaMismatchPayload struct {
	FromVersion uint64 `json:"fromVersion"`
	GotBytes    int    `json:"gotBytes"`
	WantBytes   int    `json:"wantBytes"`
}

// EntityDestroyedPayload records why an entity left replication.
type EntityDestroyedPayload struct {
	Reason string `json:"reason"`
}

// SchemaMismatch publishes an event for a dropped connection.
func SchemaMismatch(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload SchemaMismatchPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventSchemaMismatch,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityError,
		Category: "replication",
		Payload:  payload,
		Extra:    extra,
	})
}

// EntityDestroyed publishes an event when an entity leaves replication.
func EntityDestroyed(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload EntityDestroyedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventEntityDestroyed,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: "replication",
		Payload:  payload,
		Extra:    extra,
	})
}
