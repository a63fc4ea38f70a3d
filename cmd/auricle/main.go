// Package main is a command-line driver for the Auricle engine. It
// loads an HTML document and dispatches command identifiers read from
// standard input, printing what a synthesizer would speak. It exists
// for exercising the engine outside a browser.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/auricle/auricle/internal/app"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		url         string
		listCmds    bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&url, "url", "file:///page.html", "URL reported for the document")
	flag.BoolVar(&listCmds, "list", false, "List command identifiers and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("auricle %s (%s)\n", version, commit)
		return 0
	}

	if flag.NArg() != 1 {
		usage()
		return 2
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	doc, err := html.Parse(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: parse %s: %v\n", flag.Arg(0), err)
		return 1
	}

	a, err := app.New(app.Options{
		ConfigPath: configPath,
		Document:   doc,
		URL:        url,
		Output:     os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer a.Close()

	if listCmds {
		for _, id := range a.Commands().List() {
			desc, _ := a.Commands().Resolve(id)
			fmt.Printf("%-32s %s\n", id, desc.Doc)
		}
		return 0
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" || strings.HasPrefix(id, "#") {
			continue
		}
		if id == "quit" {
			break
		}
		if id == "stats" {
			printStats(a)
			continue
		}
		doDefault, err := a.Dispatch(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if doDefault {
			fmt.Println("[native action]")
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printStats(a *app.App) {
	m := a.Dispatcher().Metrics()
	if m == nil {
		fmt.Println("metrics disabled")
		return
	}
	fmt.Printf("dispatches=%d errors=%d panics=%d delegated=%d avg=%s\n",
		m.TotalDispatches(), m.TotalErrors(), m.TotalPanics(), m.TotalDelegated(), m.AverageDuration())
	for _, cm := range m.TopCommands(10) {
		fmt.Printf("%-32s %d\n", cm.ID, cm.DispatchCount)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: auricle [options] page.html

Reads command identifiers from stdin, one per line, and prints the
spoken output. Use -list for the available identifiers; type "stats"
at the prompt for dispatch counters.

Options:
`)
	flag.PrintDefaults()
}
