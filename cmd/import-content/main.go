// Command import-content refreshes the champion reference table from an
// external stat dump, for example a Riot Data Dragon champion.json.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kperrault/ganksense/internal/importer"
	"github.com/kperrault/ganksense/internal/importer/ddragon"
)

func main() {
	format := flag.String("format", "ddragon", "source format: ddragon")
	sourcePath := flag.String("source", "", "path to source stat dump")
	outputDir := flag.String("output", "content", "path to output content directory")
	flag.Parse()

	if *sourcePath == "" {
		fmt.Fprintln(os.Stderr, "usage: import-content -source <champion.json> [-format ddragon] [-output <dir>]")
		os.Exit(1)
	}

	var src importer.Source
	switch *format {
	case "ddragon":
		src = ddragon.NewSource()
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (supported: ddragon)\n", *format)
		os.Exit(1)
	}

	start := time.Now()
	imp := importer.New(src)
	if err := imp.Run(*sourcePath, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("import complete in %s\n", time.Since(start).Round(time.Millisecond))
}
