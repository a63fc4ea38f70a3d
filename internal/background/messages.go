// Package background defines the message records the engine sends to the
// host's background context and the interface used to send them.
package background

// Target selects the background subsystem a message is addressed to.
type Target string

// Background subsystems.
const (
	TargetPrefs           Target = "Prefs"
	TargetHelpDocs        Target = "HelpDocs"
	TargetBookmarkManager Target = "BookmarkManager"
	TargetOptions         Target = "Options"
	TargetKbExplorer      Target = "KbExplorer"
	TargetOpenTab         Target = "OpenTab"
)

// Message is a plain record sent to the background context. Only the
// fields relevant to the target subsystem are populated.
type Message struct {
	Target Target `json:"target"`
	Action string `json:"action,omitempty"`

	// Preference round-trips.
	Pref string `json:"pref,omitempty"`

	// Whether the background side should announce the change.
	Announce bool `json:"announce,omitempty"`

	// Page-opening requests.
	URL string `json:"url,omitempty"`
}

// Sender delivers messages to the background context. Implementations
// must not block; delivery is fire-and-forget.
type Sender interface {
	Send(msg Message)
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(msg Message)

// Send implements Sender.
func (f SenderFunc) Send(msg Message) {
	f(msg)
}

// OpenTab builds a request to open a URL in a new tab.
func OpenTab(url string) Message {
	return Message{Target: TargetOpenTab, Action: "openTab", URL: url}
}

// Open builds a request to open one of the auxiliary extension pages.
func Open(target Target) Message {
	return Message{Target: target, Action: "open"}
}
