package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

func runHistory() {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("n", 20, "Runs to list")
	show := fs.Int64("show", 0, "Print one run's full document")
	del := fs.Int64("delete", 0, "Delete one run")
	fs.Parse(os.Args[1:])

	st, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parallax history: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	switch {
	case *show != 0:
		rec, err := st.LoadRun(*show)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parallax history: %v\n", err)
			os.Exit(1)
		}
		var pretty json.RawMessage = rec.Document
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			out = rec.Document
		}
		fmt.Printf("Run %d  %s  (%s, %s)\n%s\n",
			rec.ID, rec.Topic, rec.LensID, rec.CreatedAt.Format("2006-01-02 15:04"), out)

	case *del != 0:
		if err := st.DeleteRun(*del); err != nil {
			fmt.Fprintf(os.Stderr, "parallax history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted run %d\n", *del)

	default:
		runs, err := st.ListRuns(*limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parallax history: %v\n", err)
			os.Exit(1)
		}
		if len(runs) == 0 {
			fmt.Println("No saved runs.")
			return
		}
		for _, r := range runs {
			fmt.Printf("%4d  %s  %-12s %s\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.LensID, r.Topic)
		}
	}
}
