package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ehalferty/mupdf/fitz"
)

const maxLogLines = 12

type logLine struct {
	level string
	text  string
}

// sinkLog records diagnostic lines for the inspector view.
type sinkLog struct {
	lines []logLine
}

func (l *sinkLog) Warning(line string)  { l.add("warning", line) }
func (l *sinkLog) Error(line string)    { l.add("error", line) }
func (l *sinkLog) Uncaught(line string) { l.add("uncaught", line) }

func (l *sinkLog) add(level, text string) {
	l.lines = append(l.lines, logLine{level: level, text: text})
	if len(l.lines) > maxLogLines {
		l.lines = l.lines[len(l.lines)-maxLogLines:]
	}
}

// exitSignal is panicked by the injected exit func so the inspector can
// report an uncaught error without terminating.
type exitSignal struct{ code int }

type inspectorModel struct {
	ctx    *fitz.Context
	log    *sinkLog
	input  textinput.Model
	status string
}

func newInspector() inspectorModel {
	log := &sinkLog{}
	ctx := fitz.New(fitz.Options{
		Sink: log,
		Exit: func(code int) { panic(exitSignal{code}) },
	})

	ti := textinput.New()
	ti.Placeholder = "warn <msg> | throw <kind> <msg> | nested <depth> <kind> | overflow | flush | reset | quit"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 80

	return inspectorModel{
		ctx:    ctx,
		log:    log,
		input:  ti,
		status: "ready",
	}
}

func runInteractive() error {
	_, err := tea.NewProgram(newInspector()).Run()
	return err
}

func (m inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" || line == "q" {
				return m, tea.Quit
			}
			if line != "" {
				m.status = m.execute(line)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one inspector command against the live context and reports
// the outcome for the status line.
func (m *inspectorModel) execute(line string) (status string) {
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(exitSignal); ok {
				status = fmt.Sprintf("uncaught: process would exit(%d)", sig.code)
				return
			}
			panic(r)
		}
	}()

	fields := strings.Fields(line)
	switch fields[0] {
	case "warn":
		if len(fields) < 2 {
			return "usage: warn <message>"
		}
		m.ctx.Warn("%s", strings.Join(fields[1:], " "))
		return "warned"

	case "flush":
		m.ctx.FlushWarnings()
		return "flushed"

	case "throw":
		if len(fields) < 3 {
			return "usage: throw <kind> <message>"
		}
		kind, ok := parseKind(fields[1])
		if !ok {
			return fmt.Sprintf("unknown kind %q", fields[1])
		}
		var caught string
		m.ctx.Do(func() {
			m.ctx.Throw(kind, "%s", strings.Join(fields[2:], " "))
		}, nil, func() {
			caught = fmt.Sprintf("caught kind=%s message=%q", m.ctx.Caught(), m.ctx.CaughtMessage())
		})
		return caught

	case "nested":
		if len(fields) < 3 {
			return "usage: nested <depth> <kind>"
		}
		depth, err := strconv.Atoi(fields[1])
		if err != nil || depth < 1 {
			return "depth must be a positive integer"
		}
		kind, ok := parseKind(fields[2])
		if !ok {
			return fmt.Sprintf("unknown kind %q", fields[2])
		}
		levels := 0
		var dive func(n int)
		dive = func(n int) {
			m.ctx.Do(func() {
				if n > 1 {
					dive(n - 1)
					return
				}
				m.ctx.Throw(kind, "thrown %d levels deep", depth)
			}, nil, func() {
				levels++
				m.ctx.RethrowIf(kind)
			})
		}
		var caught string
		m.ctx.Do(func() {
			dive(depth)
		}, nil, func() {
			caught = fmt.Sprintf("rethrown through %d levels, caught %s", levels, m.ctx.Caught())
		})
		return caught

	case "overflow":
		var depth int
		var dive func()
		dive = func() {
			m.ctx.Do(func() {
				depth++
				dive()
			}, nil, func() {
				m.ctx.RethrowIf(fitz.KindStackOverflow)
			})
		}
		var caught string
		m.ctx.Do(func() {
			dive()
		}, nil, func() {
			caught = fmt.Sprintf("overflow after %d levels: %s", depth, m.ctx.CaughtMessage())
		})
		return caught

	case "reset":
		fresh := newInspector()
		m.ctx = fresh.ctx
		m.log = fresh.log
		return "reset"
	}
	return fmt.Sprintf("unknown command %q", fields[0])
}

func parseKind(name string) (fitz.Kind, bool) {
	for _, k := range []fitz.Kind{
		fitz.KindGeneric, fitz.KindSyntax, fitz.KindTryLater,
		fitz.KindStackOverflow, fitz.KindAbort,
	} {
		if k.String() == name {
			return k, true
		}
	}
	return fitz.KindNone, false
}

func (m inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("fitz exception inspector"))
	b.WriteString("\n\n")

	if len(m.log.lines) == 0 {
		b.WriteString(helpStyle.Render("(no diagnostics yet)"))
		b.WriteString("\n")
	}
	for _, l := range m.log.lines {
		switch l.level {
		case "warning":
			b.WriteString(warnStyle.Render("warning: " + l.text))
		case "error":
			b.WriteString(errorStyle.Render("error: " + l.text))
		case "uncaught":
			b.WriteString(fatalStyle.Render("uncaught exception: " + l.text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(noteStyle.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("kinds: generic syntax trylater stackoverflow abort · esc to quit"))
	b.WriteString("\n")

	return b.String()
}
