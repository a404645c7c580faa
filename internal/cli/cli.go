package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mstreet/img2ascii/internal/render"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Run parses args (the program arguments without the binary name),
// performs the conversion, and writes the art to stdout. It returns the
// process exit code; the caller decides when to os.Exit.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("img2ascii", flag.ContinueOnError)
	fs.SetOutput(stderr)

	width := fs.Int("width", render.DefaultWidth, "output width in characters per row")
	charset := fs.String("charset", string(render.DefaultPalette), "brightness ramp, darkest bucket first")
	modeName := fs.String("mode", render.ModeLuminance.String(), "grayscale conversion: luminance, lightness, or average")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: img2ascii [options] <image>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Converts a raster image (PNG, JPEG, BMP, GIF) to ASCII art on stdout.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		// flag already printed the problem and usage to stderr.
		return ExitUsage
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "img2ascii: expected exactly one image path")
		fs.Usage()
		return ExitUsage
	}
	path := fs.Arg(0)

	palette, err := render.ParsePalette(*charset)
	if err != nil {
		fmt.Fprintf(stderr, "img2ascii: invalid -charset: %v\n", err)
		return ExitUsage
	}

	mode, err := render.ParseIntensityMode(*modeName)
	if err != nil {
		fmt.Fprintf(stderr, "img2ascii: invalid -mode: %v\n", err)
		return ExitUsage
	}

	art, err := render.Render(path, render.Options{
		Width:   *width,
		Palette: palette,
		Mode:    mode,
	})
	if err != nil {
		fmt.Fprintf(stderr, "img2ascii: %s\n", describe(err))
		return ExitError
	}

	fmt.Fprint(stdout, art)
	return ExitOK
}

// describe turns a render error into a user-facing message, branching on
// the error kind rather than message text.
func describe(err error) string {
	var rerr *render.Error
	if !errors.As(err, &rerr) {
		return err.Error()
	}
	switch rerr.Kind {
	case render.KindNotFound:
		return fmt.Sprintf("image %q not found", rerr.Path)
	case render.KindDecode:
		return fmt.Sprintf("cannot decode %q: %v", rerr.Path, rerr.Err)
	case render.KindInvalidParameter:
		return fmt.Sprintf("invalid parameter: %v", rerr.Err)
	default:
		return err.Error()
	}
}
