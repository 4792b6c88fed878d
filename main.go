// beetdump reads a beets music-library database and writes it as JSON.
// The database is opened read-only and is never modified.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/llehouerou/beetdump/internal/beets"
	"github.com/llehouerou/beetdump/internal/config"
	"github.com/llehouerou/beetdump/internal/errmsg"
	"github.com/llehouerou/beetdump/internal/export"
)

func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	library := flag.String("library", cfg.Library, "path to the beets library database")
	pretty := flag.Bool("pretty", cfg.Pretty, "indent the JSON output")
	attributes := flag.Bool("attributes", cfg.Attributes, "include flexible attributes")
	outPath := flag.String("o", "", "write to this file instead of stdout")
	flag.Parse()

	path := *library
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	db, err := beets.Open(path)
	if err != nil {
		log.Fatal(errmsg.FormatWith(errmsg.OpLibraryOpen, path, err))
	}
	defer db.Close()

	dump, err := export.Load(db, *attributes)
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpLibraryRead, err))
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal(errmsg.FormatWith(errmsg.OpDumpWrite, *outPath, err))
		}
		defer f.Close()
		out = f
	}

	if err := export.Write(out, dump, export.Options{Pretty: *pretty}); err != nil {
		log.Fatal(errmsg.Format(errmsg.OpDumpWrite, err))
	}

	fmt.Fprintln(os.Stderr, export.Summary(dump))
}
