// Package delegate implements the two-phase delegation protocol: public
// commands are offered to the hosted page via a custom event and resume
// locally when (and if) the page reports a terminal status.
package delegate

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/dispatcher/execctx"
)

// Event names crossing the extension/page boundary.
const (
	// OfferEvent is dispatched at the current navigation node (or the
	// document) to offer a command to the page.
	OfferEvent = "reader.command"

	// ReplyEvent is the inbound event a page dispatches to report a
	// command's completion.
	ReplyEvent = "reader.commandReply"
)

// Protocol errors.
var (
	ErrBadDetail      = errors.New("delegate: malformed event detail")
	ErrMissingCommand = errors.New("delegate: event detail without command")
)

// Detail is the payload exchanged in the delegation protocol. It crosses
// the extension/page boundary as JSON. ResultNode never does; it is a
// non-owning reference the page-side plumbing resolves separately.
type Detail struct {
	Command string
	Status  execctx.DelegationStatus
	Token   string

	ResultNode *html.Node
}

// Encode renders the serializable fields as event-detail JSON.
func (d Detail) Encode() string {
	out, _ := sjson.Set("{}", "command", d.Command)
	out, _ = sjson.Set(out, "status", string(d.Status))
	if d.Token != "" {
		out, _ = sjson.Set(out, "token", d.Token)
	}
	return out
}

// ParseDetail parses inbound page-supplied detail JSON. Page input is
// untrusted: unknown fields are ignored, a missing status defaults to
// pending, and anything unparseable is rejected.
func ParseDetail(data string) (Detail, error) {
	if !gjson.Valid(data) {
		return Detail{}, ErrBadDetail
	}
	v := gjson.Parse(data)

	cmd := v.Get("command").String()
	if cmd == "" {
		return Detail{}, ErrMissingCommand
	}

	d := Detail{
		Command: cmd,
		Status:  execctx.StatusPending,
		Token:   v.Get("token").String(),
	}

	switch s := v.Get("status").String(); s {
	case "", string(execctx.StatusPending):
	case string(execctx.StatusSuccess):
		d.Status = execctx.StatusSuccess
	case string(execctx.StatusFailure):
		d.Status = execctx.StatusFailure
	default:
		return Detail{}, fmt.Errorf("%w: status %q", ErrBadDetail, s)
	}

	return d, nil
}
