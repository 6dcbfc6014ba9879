package mdicon

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/esimov/mdicon/utils"
)

// DefaultDir is the destination directory used when Ops.Dir is empty.
const DefaultDir = "manifest"

// Ops holds the options of a generation run.
type Ops struct {
	// Dir is the destination directory of the icons. Defaults to DefaultDir.
	Dir string
	// Ext is the file extension, selecting the output format. Defaults to ".png".
	Ext string
	// Variants are rendered in order. Defaults to Variants().
	Variants []Variant
	// MakeDir creates the destination directory when it's missing.
	MakeDir bool
	// Quiet suppresses the status lines and the progress indicator.
	Quiet bool

	Stdout io.Writer
	Stderr io.Writer
}

// Execute renders every variant into the destination directory.
// It stops at the first failure; icons written before it are left in place.
func (op *Ops) Execute(p *Processor) error {
	op.defaults()

	format, err := FormatFromPath(op.Ext)
	if err != nil {
		return err
	}

	if op.MakeDir {
		if err := os.MkdirAll(op.Dir, 0755); err != nil {
			return fmt.Errorf("unable to create the destination directory: %w", err)
		}
	}

	for _, v := range op.Variants {
		path := filepath.Join(op.Dir, v.Name+op.Ext)

		var spinner *utils.Spinner
		if !op.Quiet && utils.IsTerminal(op.Stderr) {
			msg := fmt.Sprintf("%s %s",
				utils.DecorateText("M↓ MDICON", utils.StatusMessage),
				utils.DecorateText(fmt.Sprintf("⇢ rendering the %s icon...", v.Name), utils.DefaultMessage),
			)
			spinner = utils.NewSpinner(op.Stderr, msg, 80*time.Millisecond, true)
			spinner.Start()
		}

		err := op.write(p, v, path, format)
		if spinner != nil {
			spinner.Stop()
		}
		if err != nil {
			return err
		}
		op.printOpStatus(path, v)
	}

	if !op.Quiet {
		fmt.Fprintln(op.Stdout, op.decorate("Done!", utils.SuccessMessage))
	}
	return nil
}

func (op *Ops) defaults() {
	if op.Dir == "" {
		op.Dir = DefaultDir
	}
	if op.Ext == "" {
		op.Ext = ".png"
	}
	if op.Variants == nil {
		op.Variants = Variants()
	}
	if op.Stdout == nil {
		op.Stdout = os.Stdout
	}
	if op.Stderr == nil {
		op.Stderr = os.Stderr
	}
}

// write renders a variant into a newly created file. The file is removed if encoding fails.
func (op *Ops) write(p *Processor, v Variant, path string, format imaging.Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil {
			if err == nil {
				err = fmt.Errorf("could not close the destination file: %w", cerr)
			} else {
				log.Printf("could not close the destination file: %v", cerr)
			}
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return p.Process(f, v, format)
}

// printOpStatus displays the path and dimensions of a generated icon.
func (op *Ops) printOpStatus(path string, v Variant) {
	if op.Quiet {
		return
	}
	fmt.Fprintf(op.Stdout, "Created %s (%dx%d)\n",
		op.decorate(path, utils.SuccessMessage), v.Size, v.Size,
	)
}

func (op *Ops) decorate(s string, msgType utils.MessageType) string {
	if !utils.IsTerminal(op.Stdout) {
		return s
	}
	return utils.DecorateText(s, msgType)
}
