// Package dispatcher routes resolved commands to their behaviors and
// coordinates execution: platform and input gating, page delegation,
// event suspension, and the spoken finalization that follows every
// navigation command.
package dispatcher

import (
	"fmt"
	"time"

	"github.com/auricle/auricle/internal/command"
	"github.com/auricle/auricle/internal/delegate"
	"github.com/auricle/auricle/internal/dispatcher/execctx"
	"github.com/auricle/auricle/internal/dispatcher/handler"
)

// Dispatcher is the command execution engine. It is single-threaded by
// contract: all dispatch entry points run on the extension's event
// thread, so no locking happens here.
type Dispatcher struct {
	registry  *Registry
	commands  *command.Registry
	delegator *delegate.Delegator

	ctx *execctx.Context

	config  Config
	metrics *Metrics

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a dispatcher over a command registry and an execution
// context. The context's collaborators may be filled in later via the
// Set methods, but must be complete before the first Dispatch.
func New(config Config, commands *command.Registry, ctx *execctx.Context) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		commands: commands,
		ctx:      ctx,
		config:   config,
	}
	if ctx != nil {
		ctx.Platform = config.Platform
	}
	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// Registry returns the handler registry for behavior registration.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Commands returns the command descriptor registry.
func (d *Dispatcher) Commands() *command.Registry { return d.commands }

// Context returns the execution context.
func (d *Dispatcher) Context() *execctx.Context { return d.ctx }

// Metrics returns the metrics collector, or nil if metrics are
// disabled.
func (d *Dispatcher) Metrics() *Metrics { return d.metrics }

// SetDelegator installs the page delegator. Without one every command
// runs locally.
func (d *Dispatcher) SetDelegator(del *delegate.Delegator) { d.delegator = del }

// AddPreHook adds a pre-dispatch hook.
func (d *Dispatcher) AddPreHook(h PreDispatchHook) {
	d.preHooks = append(d.preHooks, h)
}

// AddPostHook adds a post-dispatch hook.
func (d *Dispatcher) AddPostHook(h PostDispatchHook) {
	d.postHooks = append(d.postHooks, h)
}

// Dispatch runs the command with the given identifier. The returned
// bool reports whether the caller should let the native key action
// proceed; it is true for unresolvable or gated-out commands so unbound
// keys fall through to the browser.
func (d *Dispatcher) Dispatch(id string) (doDefault bool, err error) {
	desc, err := d.commands.Resolve(id)
	if err != nil {
		return true, err
	}

	if !d.admit(desc) {
		return true, nil
	}

	if err := d.ctx.Validate(); err != nil {
		return false, err
	}

	// Two-phase delegation: a command the page has claimed is offered
	// to it instead of running locally. The native action is suppressed
	// while the offer is outstanding.
	if d.shouldDelegate(desc) {
		d.delegator.Offer(desc.ID, d.ctx.Nav.CurrentNode())
		if d.metrics != nil {
			d.metrics.RecordDelegated(desc.ID)
		}
		inv := execctx.NewInvocation(desc)
		res := handler.Delegated()
		for _, h := range d.postHooks {
			h.PostDispatch(inv, d.ctx, &res)
		}
		return false, nil
	}

	return d.execute(execctx.NewInvocation(desc))
}

// HandleReply consumes a delegation reply event from the page and
// resumes (or freshly runs) the command it names. A pending-status echo
// is ignored.
func (d *Dispatcher) HandleReply(detailJSON string) (doDefault bool, err error) {
	if d.delegator == nil {
		return false, ErrNoDelegator
	}

	detail, _, err := d.delegator.Resume(detailJSON)
	if err != nil {
		return false, err
	}
	if detail.Status == execctx.StatusPending {
		return false, nil
	}

	desc, err := d.commands.Resolve(detail.Command)
	if err != nil {
		return false, err
	}

	// An unmatched reply runs through the same path as a matched one:
	// the terminal status it carries already tells the executor what
	// the page did.
	inv := execctx.NewInvocation(desc)
	inv.Status = detail.Status
	inv.ResultNode = detail.ResultNode
	return d.execute(inv)
}

// admit applies the eligibility gate: modal widgets swallow everything,
// platform masks filter descriptors, and text-input focus suppresses
// commands bound to printable keys.
func (d *Dispatcher) admit(desc command.Descriptor) bool {
	if d.ctx.Widgets != nil && d.ctx.Widgets.ModalActive() {
		return false
	}
	if !desc.Platform.Matches(d.ctx.Platform) {
		return false
	}
	if desc.SkipInput && d.ctx.FocusInTextInput() {
		return false
	}
	return true
}

func (d *Dispatcher) shouldDelegate(desc command.Descriptor) bool {
	if d.config.DisableDelegation || d.delegator == nil {
		return false
	}
	return d.delegator.ShouldDelegate(desc.ID)
}

// execute runs one invocation locally. Every step between entering and
// leaving the suspension scope may fail or panic; the deferred Exit
// keeps the scope balanced on all paths.
func (d *Dispatcher) execute(inv *execctx.Invocation) (doDefault bool, err error) {
	if err := d.ctx.Validate(); err != nil {
		return false, err
	}

	start := time.Now()

	// Commands suppress the events their own DOM work raises; the few
	// that exist to produce events (tab handling) opt out.
	if !inv.Desc.AllowEvents {
		d.ctx.Suspension.Enter()
		defer d.ctx.Suspension.Exit()
	}

	if inv.Desc.DisallowContinuation {
		d.ctx.Nav.StopReading()
	}

	if inv.Desc.Directional() {
		d.ctx.Nav.SetReversed(inv.Desc.Backward)
	}

	d.rewrite(inv)

	for _, h := range d.preHooks {
		if !h.PreDispatch(inv, d.ctx) {
			return false, nil
		}
	}

	var res handler.Result
	switch {
	case inv.Status == execctx.StatusSuccess:
		// The page already performed the command. Adopt its result
		// position and fall straight through to finalization.
		if inv.ResultNode != nil {
			d.ctx.Nav.MoveTo(inv.ResultNode)
		}
		res = handler.OK()
	default:
		h := d.registry.Get(inv.ID)
		if h == nil {
			return false, fmt.Errorf("%w: %q", ErrUndefinedBehavior, inv.ID)
		}
		res = d.run(h, inv)
	}

	for _, h := range d.postHooks {
		h.PostDispatch(inv, d.ctx, &res)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(inv.ID, time.Since(start), res.Status)
	}

	if res.IsFatal() {
		return false, res.Err
	}

	d.finalize(inv, res)

	return inv.Desc.DoDefault || res.DoDefault, nil
}

// rewrite applies the per-invocation identifier rewrites. The shared
// descriptor is never touched; concurrent instances of the same command
// each rewrite their own working copy.
func (d *Dispatcher) rewrite(inv *execctx.Invocation) {
	if inv.Desc.FindNext != nil {
		inv.ID = command.IDFind
		inv.NodeType = inv.Desc.FindNext
		inv.Announce = true
		return
	}

	// Backward row/column shifts fold onto the forward behavior; the
	// reversed flag set above carries the direction.
	switch inv.ID {
	case "previousRow":
		inv.ID = command.IDNextRow
	case "previousCol":
		inv.ID = command.IDNextCol
	}
}

// finalize performs the post-dispatch spoken feedback, in priority
// order: a recoverable error message beats everything, continuous
// reading beats a plain announcement.
func (d *Dispatcher) finalize(inv *execctx.Invocation, res handler.Result) {
	switch {
	case res.SpokenError != "":
		d.ctx.Speech.SpeakAnnotation(res.SpokenError, execctx.QueueFlush)
	case d.ctx.Nav.IsReading():
		if inv.Desc.DisallowContinuation {
			d.ctx.Nav.StopReading()
		} else {
			d.ctx.Nav.AdvanceReading()
		}
	case inv.Announce && !res.SuppressAnnounce:
		d.ctx.Nav.FinishNavCommand(res.Prefix)
	}
}

// run invokes the handler, recovering a panic into a fatal result when
// the config asks for it.
func (d *Dispatcher) run(h handler.Handler, inv *execctx.Invocation) (res handler.Result) {
	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				if d.metrics != nil {
					d.metrics.RecordPanic(inv.ID)
				}
				res = handler.Fatal(fmt.Errorf("%w: %s: %v", ErrHandlerPanic, inv.ID, r))
			}
		}()
	}
	return h.Handle(inv, d.ctx)
}
