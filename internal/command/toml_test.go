package command_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/auricle/auricle/internal/command"
)

const sampleOverlay = `
[commands.nextWord]
announce = false
skip_input = true

[commands.handleTab]
platform = ["wml"]
doc = "Tab, desktop only"
`

func TestOverlayLoadAndApply(t *testing.T) {
	loader := command.NewOverlayLoader("unused")
	overlay, err := loader.LoadFromReader(strings.NewReader(sampleOverlay))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if len(overlay) != 2 {
		t.Fatalf("overlay entries = %d, want 2", len(overlay))
	}

	table, err := command.Apply(command.BuiltinTable(), overlay)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	r, err := command.NewRegistry(table)
	if err != nil {
		t.Fatal(err)
	}

	d, err := r.Resolve("nextWord")
	if err != nil {
		t.Fatal(err)
	}
	if d.Announce {
		t.Error("overlay should have cleared announce on nextWord")
	}
	if !d.SkipInput {
		t.Error("overlay should have set skip_input on nextWord")
	}
	// Untouched flags keep their builtin values.
	if !d.Forward {
		t.Error("overlay must not clear builtin direction")
	}

	tab, err := r.Resolve("handleTab")
	if err != nil {
		t.Fatal(err)
	}
	if tab.Platform.Matches(command.PlatformChromeOS) {
		t.Error("overlay platform should have narrowed handleTab to wml")
	}
	if tab.Doc != "Tab, desktop only" {
		t.Errorf("doc = %q", tab.Doc)
	}
}

func TestOverlayRejectsUnknownCommand(t *testing.T) {
	overlay := map[string]command.Patch{"definitelyNotACommand": {}}

	_, err := command.Apply(command.BuiltinTable(), overlay)
	if !errors.Is(err, command.ErrUnknownCommand) {
		t.Errorf("Apply error = %v, want ErrUnknownCommand", err)
	}
}

func TestOverlayRejectsUnknownPlatform(t *testing.T) {
	overlay, err := command.NewOverlayLoader("x").LoadFromReader(strings.NewReader(`
[commands.nextWord]
platform = ["beos"]
`))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}

	if _, err := command.Apply(command.BuiltinTable(), overlay); err == nil {
		t.Error("unknown platform name should be rejected")
	}
}

func TestOverlayBadTOML(t *testing.T) {
	_, err := command.NewOverlayLoader("x").LoadFromReader(strings.NewReader("not [valid"))
	if err == nil {
		t.Error("malformed TOML should error")
	}
}
