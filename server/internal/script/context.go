package script

import (
	"context"
	"fmt"
	"time"

	"sandboxcore/server/internal/core"
	"sandboxcore/server/logging"
	"sandboxcore/server/logging/scripting"
)

// Config configures a per-entity script host.
type Config struct {
	// UpdateDelta is the tick interval between script.update(...) calls.
	// Zero and one both mean "every tick".
	UpdateDelta uint64
	// CallBudget bounds how long a single Update or HandleMessage call may
	// run before it is reported as errored. Zero disables the budget.
	CallBudget time.Duration
}

// QueuedMessage is one pending receiveMessage(sender, name, args) call.
type QueuedMessage struct {
	Sender    string
	Name      string
	Args      core.Json
	PromiseID string
}

// MessageResult pairs a dispatched message's promise id with its outcome,
// ready for the manager to route back over the wire.
type MessageResult struct {
	PromiseID string
	Value     core.Json
	Handled   bool
	Err       error
}

// Context is the per-entity script host: the loaded script and its
// installed bindings, the cadence it updates on, and its incoming message
// queue — the runtime state named in the script-host design, kept
// separate from the script implementation itself so the same cadence and
// budget policy applies uniformly whether the script is native, Lua, or
// Wasm.
type Context struct {
	id       logging.EntityRef
	script   Script
	bindings Bindings
	cfg      Config
	pub      logging.Publisher

	accumulated time.Duration
	queue       []QueuedMessage
}

// NewContext wires a script to its bindings and cadence. Init is called
// immediately; an init error marks the host permanently errored (it is
// never created, mirroring InvalidConfig's construction-time contract).
func NewContext(id logging.EntityRef, s Script, bindings Bindings, cfg Config, pub logging.Publisher) (*Context, error) {
	if pub == nil {
		pub = logging.NopPublisher{}
	}
	if err := s.Init(bindings); err != nil {
		return nil, fmt.Errorf("script init for %s: %w", id.ID, err)
	}
	return &Context{id: id, script: s, bindings: bindings, cfg: cfg, pub: pub}, nil
}

// Enqueue queues an incoming message for dispatch on the next Tick.
func (c *Context) Enqueue(msg QueuedMessage) {
	c.queue = append(c.queue, msg)
}

// Tick dispatches any queued messages, then — if due this tick per
// UpdateDelta — calls the script's Update with the time accumulated since
// the last call. Both calls are timed against CallBudget; an overrun is
// published as a scripting error event only. The host neither cancels the
// call nor marks the script errored for it, so a script that overruns
// without returning an error keeps receiving Update calls. Native scripts
// are plain Go closures running on the tick goroutine, so there is no safe
// point to interrupt one mid-call without risking shared state.
func (c *Context) Tick(ctx context.Context, tick uint64, dt time.Duration) []MessageResult {
	results := c.drainMessages(ctx, tick)
	c.accumulated += dt

	delta := c.cfg.UpdateDelta
	if delta == 0 {
		delta = 1
	}
	if tick%delta != 0 || c.script.ShouldDie() {
		return results
	}

	elapsed := c.accumulated
	c.accumulated = 0
	start := time.Now()
	err := c.script.Update(elapsed)
	c.reportIfOverBudget(ctx, tick, "update", start)
	if err != nil {
		scripting.Error(ctx, c.pub, tick, c.id, scripting.ErrorPayload{
			Entrypoint: "update",
			Reason:     err.Error(),
		}, nil)
	}
	return results
}

func (c *Context) drainMessages(ctx context.Context, tick uint64) []MessageResult {
	if len(c.queue) == 0 {
		return nil
	}
	pending := c.queue
	c.queue = nil
	results := make([]MessageResult, 0, len(pending))
	for _, msg := range pending {
		start := time.Now()
		value, err := c.script.HandleMessage(msg.Sender, msg.Name, msg.Args)
		c.reportIfOverBudget(ctx, tick, "receiveMessage:"+msg.Name, start)
		v, handled := value.Get()
		result := MessageResult{PromiseID: msg.PromiseID, Value: v, Handled: handled, Err: err}
		results = append(results, result)
		if err != nil {
			scripting.Error(ctx, c.pub, tick, c.id, scripting.ErrorPayload{
				Entrypoint: "receiveMessage:" + msg.Name,
				Reason:     err.Error(),
			}, nil)
		}
	}
	return results
}

func (c *Context) reportIfOverBudget(ctx context.Context, tick uint64, entrypoint string, start time.Time) {
	if c.cfg.CallBudget <= 0 {
		return
	}
	elapsed := time.Since(start)
	if elapsed <= c.cfg.CallBudget {
		return
	}
	scripting.Error(ctx, c.pub, tick, c.id, scripting.ErrorPayload{
		Entrypoint: entrypoint,
		Reason:     "call exceeded time budget",
		BudgetMs:   c.cfg.CallBudget.Milliseconds(),
	}, nil)
}

// Reset clears the script's errored state (if it implements Resettable)
// and publishes a reset event, mirroring the explicit
// message-or-reinitialisation recovery path a ScriptError requires.
func (c *Context) Reset(ctx context.Context, tick uint64, reason string) {
	if resettable, ok := c.script.(interface{ Reset() }); ok {
		resettable.Reset()
	}
	scripting.Reset(ctx, c.pub, tick, c.id, scripting.ResetPayload{Reason: reason}, nil)
}

// Shutdown runs the script's shutdown hook.
func (c *Context) Shutdown() { c.script.Shutdown() }

// Storage returns the script's persisted storage for serialisation with
// the owning entity.
func (c *Context) Storage() core.Json { return c.script.GetStorage() }

// SetStorage restores previously persisted storage, e.g. on entity load.
func (c *Context) SetStorage(v core.Json) { c.script.SetStorage(v) }
