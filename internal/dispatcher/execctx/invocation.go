package execctx

import (
	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/command"
)

// DelegationStatus is the completion state a delegated command reports
// back from the page.
type DelegationStatus string

// Delegation statuses; these values cross the extension/page boundary.
const (
	StatusPending DelegationStatus = "pending"
	StatusSuccess DelegationStatus = "success"
	StatusFailure DelegationStatus = "failure"
)

// Invocation is the per-invocation working state of one command
// execution. It starts as a copy of the immutable descriptor's fields
// and absorbs the mid-dispatch rewrites (find rewrite, forced announce,
// previous-to-next folding) that must never touch the shared descriptor.
type Invocation struct {
	// ID is the working command identifier; pre-dispatch rewrites may
	// change it (e.g., a findNext command becomes "find").
	ID string

	// Desc is the resolved descriptor, read-only.
	Desc command.Descriptor

	// NodeType is the node type a rewritten find operates on.
	NodeType *command.NodeType

	// Announce is the working announce flag; a find rewrite forces it.
	Announce bool

	// Status is the delegation completion state for invocations
	// re-entered by a page reply; StatusPending for plain local runs.
	Status DelegationStatus

	// ResultNode is a node the page's own handling already produced for
	// a successful delegation.
	ResultNode *html.Node
}

// NewInvocation builds the working state for a descriptor.
func NewInvocation(desc command.Descriptor) *Invocation {
	return &Invocation{
		ID:       desc.ID,
		Desc:     desc,
		Announce: desc.Announce,
		Status:   StatusPending,
	}
}

// Resolved reports whether the invocation carries a terminal delegation
// status from the page.
func (inv *Invocation) Resolved() bool {
	return inv.Status == StatusSuccess || inv.Status == StatusFailure
}
