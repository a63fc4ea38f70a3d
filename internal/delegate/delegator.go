package delegate

import (
	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/command"
	"github.com/auricle/auricle/internal/dispatcher/execctx"
)

// EventTarget dispatches custom events into the hosted document. at is
// the node to dispatch at; nil means the document root.
type EventTarget interface {
	DispatchEvent(name string, at *html.Node, detailJSON string)
}

// EventTargetFunc adapts a function to the EventTarget interface.
type EventTargetFunc func(name string, at *html.Node, detailJSON string)

// DispatchEvent implements EventTarget.
func (f EventTargetFunc) DispatchEvent(name string, at *html.Node, detailJSON string) {
	f(name, at, detailJSON)
}

// pendingRecord tracks one outstanding offer.
type pendingRecord struct {
	token   string
	command string
	seq     uint64
}

// Delegator issues command offers to the page and correlates replies.
//
// Each offer carries a generated token echoed in the reply, so two
// in-flight instances of the same command resolve independently; a
// tokenless reply falls back to the most recent outstanding offer for
// that command id. All calls happen on the single UI thread.
type Delegator struct {
	target  EventTarget
	enabled bool
	public  map[string]bool

	pending map[string]pendingRecord // token -> record
	seq     uint64
}

// New creates a delegator over an event target. Delegation starts
// disabled; the public set comes from PublicIDs unless overridden with
// SetPublic.
func New(target EventTarget) *Delegator {
	return &Delegator{
		target:  target,
		public:  PublicIDs(command.BuiltinTable()),
		pending: make(map[string]pendingRecord),
	}
}

// SetEnabled turns page delegation on or off.
func (d *Delegator) SetEnabled(enabled bool) { d.enabled = enabled }

// Enabled reports whether page delegation is on.
func (d *Delegator) Enabled() bool { return d.enabled }

// SetPublic replaces the public command set.
func (d *Delegator) SetPublic(ids map[string]bool) { d.public = ids }

// ShouldDelegate reports whether an invocation of id must be offered to
// the page instead of executed locally.
func (d *Delegator) ShouldDelegate(id string) bool {
	return d.enabled && d.public[id]
}

// Offer dispatches a pending-status offer event at the given node (nil
// falls back to the document) and records the outstanding delegation.
// Returns the per-dispatch token. No local side effects occur.
func (d *Delegator) Offer(id string, at *html.Node) string {
	token := uuid.NewString()
	d.seq++
	d.pending[token] = pendingRecord{token: token, command: id, seq: d.seq}

	detail := Detail{Command: id, Status: execctx.StatusPending, Token: token}
	d.target.DispatchEvent(OfferEvent, at, detail.Encode())
	return token
}

// PendingCount returns the number of outstanding offers.
func (d *Delegator) PendingCount() int { return len(d.pending) }

// Resume consumes an inbound reply detail. The returned bool reports
// whether the reply matched an outstanding offer; an unmatched reply is
// still returned so the caller can process it as newly dispatched.
func (d *Delegator) Resume(detailJSON string) (Detail, bool, error) {
	detail, err := ParseDetail(detailJSON)
	if err != nil {
		return Detail{}, false, err
	}

	// A pending reply is just an echo; nothing resumes on it.
	if detail.Status == execctx.StatusPending {
		return detail, false, nil
	}

	if detail.Token != "" {
		if _, ok := d.pending[detail.Token]; ok {
			delete(d.pending, detail.Token)
			return detail, true, nil
		}
		// Stale or fabricated token: process as newly dispatched.
		return detail, false, nil
	}

	// Tokenless reply: match the most recent outstanding offer for the
	// command id.
	var best pendingRecord
	for _, rec := range d.pending {
		if rec.command == detail.Command && rec.seq > best.seq {
			best = rec
		}
	}
	if best.token != "" {
		delete(d.pending, best.token)
		return detail, true, nil
	}
	return detail, false, nil
}

// PublicIDs derives the public (delegable) command set from a table:
// plain navigation and structural jump commands are offered to the
// page; widget, speech, and side-effect commands never are.
func PublicIDs(table []command.Descriptor) map[string]bool {
	public := make(map[string]bool)
	for _, desc := range table {
		switch desc.Category {
		case command.CategoryNavigation, command.CategoryJump:
			public[desc.ID] = true
		}
	}
	// The generic find only exists as a rewrite target; the page sees
	// the original jump id instead.
	delete(public, command.IDFind)
	// Tab handling must run locally for focus recovery to work.
	delete(public, "handleTab")
	delete(public, "handleTabPrev")
	return public
}
