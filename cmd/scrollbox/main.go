// Package main is a terminal viewer for scrollable text panels. It renders
// the panel's two-color raster with half-block cells and scrolls it with the
// arrow and paging keys.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"golang.org/x/image/font/basicfont"

	"github.com/dshills/scrollbox"
	"github.com/dshills/scrollbox/display"
	"github.com/dshills/scrollbox/glyph"
	"github.com/dshills/scrollbox/internal/config"
)

// Version information (set via ldflags during build).
var version = "dev"

type options struct {
	configPath string
	textFile   string
	width      int
	height     int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, args := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if opts.textFile != "" {
		cfg.TextFile = opts.textFile
	}

	text, err := loadText(cfg, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term, err := display.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer term.Fini()

	box, err := buildBox(cfg, text, term)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	term.Attach(box.Bitmap(), box.Palette(), 1, 1)
	term.Present()

	return eventLoop(term, box)
}

func parseFlags() (options, []string) {
	var opts options
	var showVersion bool

	pflag.StringVarP(&opts.configPath, "config", "c", "scrollbox.toml", "Path to configuration file")
	pflag.StringVarP(&opts.textFile, "file", "f", "", "Text file to display")
	pflag.IntVarP(&opts.width, "width", "W", 0, "Panel width in pixels (overrides config)")
	pflag.IntVarP(&opts.height, "height", "H", 0, "Panel height in pixels (overrides config)")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scrollbox - scrollable text panel viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scrollbox [options] [text...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: Up/Down scroll a line, PgUp/PgDn a window, Home/End jump, q quits\n")
	}

	pflag.Parse()

	if showVersion {
		fmt.Printf("scrollbox %s\n", version)
		os.Exit(0)
	}

	return opts, pflag.Args()
}

// loadText picks the panel text: command line arguments win, then the
// configured text file, then inline config text, then a short notice.
func loadText(cfg config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if cfg.TextFile != "" {
		data, err := os.ReadFile(cfg.TextFile)
		if err != nil {
			return "", fmt.Errorf("reading text file: %w", err)
		}
		return string(data), nil
	}
	if cfg.Text != "" {
		return cfg.Text, nil
	}
	return "No text given. Pass words on the command line or set text_file in the config.", nil
}

func buildBox(cfg config.Config, text string, term *display.Terminal) (*scrollbox.ScrollBox, error) {
	fg, err := config.ParseColor(cfg.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	ease, err := config.EasingFunction(cfg.Easing)
	if err != nil {
		return nil, err
	}

	bc := scrollbox.DefaultConfig()
	bc.Width = cfg.Width
	bc.Height = cfg.Height
	bc.XOffset = cfg.XOffset
	bc.YOffset = cfg.YOffset
	bc.Text = text
	bc.Font = glyph.New(basicfont.Face7x13)
	bc.Color = fg
	bc.BackgroundColor = bg
	bc.BackgroundTransparent = cfg.BackgroundTransparent
	bc.LineSpacing = cfg.LineSpacing
	bc.AnimationTime = time.Duration(cfg.AnimationMS) * time.Millisecond
	bc.Easing = ease
	bc.Surface = term

	return scrollbox.New(bc)
}

func eventLoop(term *display.Terminal, box *scrollbox.ScrollBox) int {
	line := lineStride(box)
	page := box.Height()

	for {
		drawStatus(term, box)
		term.Present()

		ev := term.Screen().PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			term.Screen().Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return 0
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
				box.Scroll(-line)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
				box.Scroll(line)
			case ev.Key() == tcell.KeyPgUp:
				box.Scroll(-page)
			case ev.Key() == tcell.KeyPgDn || ev.Rune() == ' ':
				box.Scroll(page)
			case ev.Key() == tcell.KeyHome || ev.Rune() == 'g':
				box.ScrollToRow(0)
			case ev.Key() == tcell.KeyEnd || ev.Rune() == 'G':
				box.ScrollToRow(box.MaxRow())
			}
		}
	}
}

// lineStride recovers the per-line pixel step from the font so the arrow
// keys move exactly one text line.
func lineStride(box *scrollbox.ScrollBox) int {
	ascent, descent := box.FontFace().LineMetrics()
	stride := ascent + descent
	if stride < 1 {
		stride = 1
	}
	return stride
}

// drawStatus writes a dimmed position indicator under the panel.
func drawStatus(term *display.Terminal, box *scrollbox.ScrollBox) {
	screen := term.Screen()
	_, rows := screen.Size()
	if rows == 0 {
		return
	}

	status := fmt.Sprintf(" row %d/%d  (q quits) ", box.CurrentRow(), box.MaxRow())
	style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(display.Dimmed(0xFFFFFF, 0.4))))
	for i, r := range status {
		screen.SetContent(i, rows-1, r, nil, style)
	}
}
