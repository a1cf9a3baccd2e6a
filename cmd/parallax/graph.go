package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/abelbrown/parallax/internal/layout"
	"github.com/abelbrown/parallax/internal/lens"
	"github.com/abelbrown/parallax/internal/run"
	"github.com/abelbrown/parallax/internal/semantic"
)

func runGraph() {
	fs := flag.NewFlagSet("graph", flag.ExitOnError)
	topic := fs.String("topic", "", "Research topic (required)")
	termsFile := fs.String("terms", "", "JSON file with the term list (required)")
	disciplines := fs.String("disciplines", "", "Comma-separated discipline names")
	timeout := fs.Duration("timeout", 3*time.Minute, "Extraction timeout")
	points := fs.Bool("points", false, "Also print refined 3D positions")
	fs.Parse(os.Args[1:])

	if *topic == "" || *termsFile == "" {
		fmt.Fprintln(os.Stderr, "parallax graph: -topic and -terms are required")
		fs.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*termsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parallax graph: %v\n", err)
		os.Exit(1)
	}
	var terms []semantic.Term
	if err := json.Unmarshal(data, &terms); err != nil {
		fmt.Fprintf(os.Stderr, "parallax graph: bad terms file: %v\n", err)
		os.Exit(1)
	}
	if len(terms) == 0 {
		fmt.Fprintln(os.Stderr, "parallax graph: terms file is empty")
		os.Exit(1)
	}

	cfg := loadConfig()
	provider := buildProvider(cfg)
	if provider == nil {
		fmt.Fprintln(os.Stderr, "parallax graph: no LLM provider configured (set OPENAI_API_KEY or PARALLAX_LLM_ENDPOINT)")
		os.Exit(1)
	}

	var disc []string
	if *disciplines != "" {
		for _, d := range strings.Split(*disciplines, ",") {
			disc = append(disc, strings.TrimSpace(d))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	session := run.NewSession(*topic, lens.Lens{}, nil, time.Time{}, nil)
	set := session.ExtractGraph(ctx, provider, terms, disc)
	if set == nil {
		fmt.Fprintln(os.Stderr, "parallax graph: extraction produced nothing")
		os.Exit(1)
	}

	fmt.Printf("Terms: %d    Batches: %d    Relationships: %d\n\n",
		set.TermCount, set.BatchCount, len(set.Relationships))
	for _, e := range set.Relationships {
		fmt.Printf("  %-14s %s <-> %s  (%.2f)\n", e.Type, e.TermA, e.TermB, e.Strength)
		if e.Rationale != "" {
			fmt.Printf("                 %s\n", e.Rationale)
		}
	}

	strands := session.BuildStrands(terms)
	fmt.Printf("\nStrands: %d\n", len(strands))
	for i, s := range strands {
		kind := "semantic"
		if s.Discipline >= 0 {
			kind = fmt.Sprintf("discipline %d", s.Discipline)
		}
		fmt.Printf("  #%d  anchor=%s  nodes=%d  edges=%d  (%s)\n",
			i+1, s.Anchor, len(s.Nodes), len(s.Edges), kind)
	}

	if *points {
		refined := layout.RefinePositions(sphereSeed(len(terms)), terms, set.Relationships)
		fmt.Println("\nRefined positions:")
		for i, p := range refined {
			fmt.Printf("  %-30s % .3f % .3f % .3f\n", terms[i].Label, p[0], p[1], p[2])
		}
	}
}

// sphereSeed places n points on a Fibonacci sphere as the initial cloud
// for force refinement. Deterministic so repeated runs agree.
func sphereSeed(n int) []layout.Point {
	points := make([]layout.Point, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := range points {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		theta := float64(i) * golden
		points[i] = layout.Point{r * math.Cos(theta), y, r * math.Sin(theta)}
	}
	return points
}
