package dispatcher

import (
	"github.com/auricle/auricle/internal/dispatcher/handlers/actions"
	"github.com/auricle/auricle/internal/dispatcher/handlers/find"
	"github.com/auricle/auricle/internal/dispatcher/handlers/movement"
	"github.com/auricle/auricle/internal/dispatcher/handlers/tablenav"
	"github.com/auricle/auricle/internal/dispatcher/handlers/tabkey"
	"github.com/auricle/auricle/internal/dispatcher/handlers/tts"
)

// RegisterDefaults installs the built-in handler groups, covering every
// command in the built-in descriptor table.
func (d *Dispatcher) RegisterDefaults() {
	d.registry.RegisterGroup(movement.New())
	d.registry.RegisterGroup(find.New())
	d.registry.RegisterGroup(tablenav.New())
	d.registry.RegisterGroup(tts.New())
	d.registry.RegisterGroup(actions.New().Group)
	d.registry.RegisterGroup(tabkey.New())
}
