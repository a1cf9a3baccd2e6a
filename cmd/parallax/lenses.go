package main

import (
	"flag"
	"fmt"
	"os"
)

func runLenses() {
	fs := flag.NewFlagSet("lenses", flag.ExitOnError)
	feedsToo := fs.Bool("feeds", false, "Also print each column's feed URLs")
	fs.Parse(os.Args[1:])

	cfg := loadConfig()
	catalog := loadCatalog(cfg)

	for _, id := range sortedLensIDs(catalog) {
		l := catalog[id]
		fmt.Printf("%s — %s (%d columns)\n", id, l.Label, len(l.Columns))
		for _, col := range l.Columns {
			fmt.Printf("  %-14s %s\n", col.ID, col.Label)
			if *feedsToo {
				for _, f := range col.Feeds {
					fmt.Printf("                 %s\n", f)
				}
			}
		}
		fmt.Println()
	}
}
