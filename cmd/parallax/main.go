// Command parallax runs the news coverage pipeline from the terminal.
//
// Usage:
//
//	parallax                  Show help
//	parallax run              Fetch, score, and rank a topic across a lens
//	parallax graph            Extract a semantic graph for a term list
//	parallax lenses           List available lenses and their columns
//	parallax history          List, show, or delete saved runs
package main

import (
	"fmt"
	"os"

	"github.com/abelbrown/parallax/internal/logging"
)

const usage = `parallax — multi-perspective news research CLI

Usage:
  parallax <command> [flags]

Commands:
  run       Fetch a lens's feeds, score against a topic, print ranked columns
  graph     Extract semantic relationships for a term list and lay out strands
  lenses    List available lenses and their columns
  history   List, show, or delete saved runs

Environment:
  OPENAI_API_KEY         OpenAI key (graph extraction)
  PARALLAX_LLM_ENDPOINT  OpenAI-compatible endpoint for local models
  BRAVE_API_KEY          Brave news search key (run -search)

Run 'parallax <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "parallax: logging init failed: %v\n", err)
	}
	defer logging.Close()

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "run":
		runPipeline()
	case "graph":
		runGraph()
	case "lenses":
		runLenses()
	case "history":
		runHistory()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "parallax: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
