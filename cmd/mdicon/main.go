package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/esimov/mdicon"
	"github.com/esimov/mdicon/utils"
)

const HelpBanner = `
┌┬┐┌┬┐┬┌─┐┌─┐┌┐┌
│││ │││  │ ││││
┴ ┴─┴┘┴└─┘└─┘┘└┘

Markdown "M↓" icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", mdicon.DefaultDir, "Destination directory")
	extension   = flag.String("ext", ".png", "Output file extension (.png, .bmp, .tiff)")
	filterName  = flag.String("filter", "lanczos", "Resampling filter (lanczos, catmullrom, mitchell, linear, box)")
	makeDir     = flag.Bool("mkdir", false, "Create the destination directory if missing")
	quiet       = flag.Bool("quiet", false, "Suppress the status output")
	version     = flag.Bool("version", false, "Print the version and exit")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(Version)
		return
	}

	filter, err := mdicon.FilterByName(*filterName)
	if err != nil {
		log.Fatalf(utils.DecorateText("%v", utils.ErrorMessage), err)
	}

	backend := mdicon.NewRasterBackend()
	backend.Filter = filter
	proc := &mdicon.Processor{Backend: backend}

	ops := &mdicon.Ops{
		Dir:     *destination,
		Ext:     *extension,
		MakeDir: *makeDir,
		Quiet:   *quiet,
	}

	now := time.Now()
	if err := ops.Execute(proc); err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the icons: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
	}
	if !*quiet && utils.IsTerminal(os.Stderr) {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
		)
	}
}
