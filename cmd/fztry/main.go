package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ehalferty/mupdf/fitz"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD866"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	fatalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// styledSink renders diagnostic lines with lipgloss instead of raw stderr.
type styledSink struct{}

func (styledSink) Warning(line string)  { fmt.Println(warnStyle.Render("warning: " + line)) }
func (styledSink) Error(line string)    { fmt.Println(errorStyle.Render("error: " + line)) }
func (styledSink) Uncaught(line string) { fmt.Println(fatalStyle.Render("uncaught exception: " + line)) }

func main() {
	var (
		scenario    = flag.String("scenario", "all", "Scenario to run (warn|mask|nested|overflow|uncaught|all)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx := fitz.New(fitz.Options{Sink: styledSink{}, Exit: os.Exit})

	switch *scenario {
	case "warn":
		runWarn(ctx)
	case "mask":
		runMask(ctx)
	case "nested":
		runNested(ctx)
	case "overflow":
		runOverflow(ctx)
	case "uncaught":
		runUncaught(ctx)
	case "all":
		runWarn(ctx)
		runMask(ctx)
		runNested(ctx)
		runOverflow(ctx)
		fmt.Println(helpStyle.Render("(run with -scenario uncaught to see the fatal path)"))
	default:
		fmt.Fprintf(os.Stderr, "unknown scenario %q\n", *scenario)
		os.Exit(1)
	}
}

func runWarn(ctx *fitz.Context) {
	fmt.Println(headerStyle.Render("warning deduplication"))
	for i := 0; i < 3; i++ {
		ctx.Warn("cannot load system font %q", "Helvetica")
	}
	ctx.Warn("image resolution too high")
	ctx.FlushWarnings()
	fmt.Println()
}

func runMask(ctx *fitz.Context) {
	fmt.Println(headerStyle.Render("cleanup error masks the original"))
	ctx.Do(func() {
		ctx.Throw(fitz.KindSyntax, "malformed object stream")
	}, func() {
		ctx.Throw(fitz.KindGeneric, "failed to drop buffer during cleanup")
	}, func() {
		fmt.Println(noteStyle.Render(fmt.Sprintf("caught: kind=%s message=%q",
			ctx.Caught(), ctx.CaughtMessage())))
	})
	fmt.Println()
}

func runNested(ctx *fitz.Context) {
	fmt.Println(headerStyle.Render("nested regions with rethrow-if"))
	ctx.Do(func() {
		ctx.Do(func() {
			ctx.Throw(fitz.KindTryLater, "page not ready")
		}, nil, func() {
			fmt.Println(noteStyle.Render("inner catch forwards trylater errors"))
			ctx.RethrowIf(fitz.KindTryLater)
		})
	}, nil, func() {
		fmt.Println(noteStyle.Render(fmt.Sprintf("outer caught: kind=%s message=%q",
			ctx.Caught(), ctx.CaughtMessage())))
	})
	fmt.Println()
}

func runOverflow(ctx *fitz.Context) {
	fmt.Println(headerStyle.Render("exception stack exhaustion"))
	var depth int
	var dive func()
	dive = func() {
		ctx.Do(func() {
			depth++
			dive()
		}, nil, func() {
			ctx.RethrowIf(fitz.KindStackOverflow)
		})
	}
	ctx.Do(func() {
		dive()
	}, nil, func() {
		fmt.Println(noteStyle.Render(fmt.Sprintf("caught at the outermost region after %d levels: %s",
			depth, ctx.CaughtMessage())))
	})
	fmt.Println()
}

func runUncaught(ctx *fitz.Context) {
	fmt.Println(headerStyle.Render("uncaught exception (terminates the process)"))
	ctx.Throw(fitz.KindGeneric, "thrown with no guarded region open")
}
