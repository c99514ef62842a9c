// Package terminal implements an interactive tcell inspector for the bit
// operation unit.
package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/jeebie-bitunit/jeebie/backend"
	"github.com/valerio/jeebie-bitunit/jeebie/backend/terminal/render"
	"github.com/valerio/jeebie-bitunit/jeebie/cpu"
	"github.com/valerio/jeebie-bitunit/jeebie/debug"
	"github.com/valerio/jeebie-bitunit/jeebie/input"
	"github.com/valerio/jeebie-bitunit/jeebie/input/action"
)

const (
	minTermWidth  = 60
	minTermHeight = 20
	logCapacity   = 100

	registersY = 2
	operandY   = 9
	bitsY      = 11
	lastY      = 14
	helpY      = 16
	logsY      = 18
)

const helpText = "↑↓ operand  ←→ bit  t BIT  r RES  s SET  p snapshot  +/- log  q quit"

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen    tcell.Screen
	running   bool
	config    backend.Config
	session   *backend.Session
	logBuffer *render.LogBuffer
	logLevel  *slog.LevelVar
	prevLog   *slog.Logger
	input     *input.Manager

	operand int   // index into cpu.Operands()
	bit     uint8 // selected bit index
	status  string
}

// New creates a terminal backend drawing on screen. A nil screen opens the
// controlling terminal during Init.
func New(screen tcell.Screen) *Backend {
	t := &Backend{
		screen:   screen,
		logLevel: new(slog.LevelVar),
		input:    input.NewManager(),
	}
	t.registerActions()
	return t
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.Config) error {
	t.config = config
	t.logLevel.Set(config.LogLevel)

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Logs go to the log pane while the screen owns the terminal.
	t.logBuffer = render.NewLogBuffer(logCapacity)
	t.prevLog = slog.Default()
	slog.SetDefault(slog.New(render.NewHandler(t.logBuffer, slog.LevelDebug)))

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()
	t.running = true

	slog.Info("Terminal backend initialized")
	return nil
}

// Run draws the session and processes key events until quit.
func (t *Backend) Run(session *backend.Session) error {
	t.Attach(session)
	for t.running {
		t.Draw()
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		t.HandleEvent(ev)
	}
	return nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.prevLog != nil {
		slog.SetDefault(t.prevLog)
	}
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

// Attach sets the session operations are applied to.
func (t *Backend) Attach(session *backend.Session) {
	t.session = session
}

// Selected returns the operand and bit the next operation applies to.
func (t *Backend) Selected() (cpu.Target, uint8) {
	return cpu.Operands()[t.operand], t.bit
}

// Running reports whether the inspector is still accepting input.
func (t *Backend) Running() bool {
	return t.running
}

// HandleEvent applies a single tcell event.
func (t *Backend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		t.input.TriggerKey(keyName(ev))
	}
}

// keyName converts a tcell key to its name in input.DefaultKeyMap.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyLeft:
		return "Left"
	case tcell.KeyRight:
		return "Right"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyCtrlC:
		return "Ctrl+C"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

func (t *Backend) registerActions() {
	operands := len(cpu.Operands())

	t.input.On(action.SelectPrevOperand, func() { t.operand = (t.operand + operands - 1) % operands })
	t.input.On(action.SelectNextOperand, func() { t.operand = (t.operand + 1) % operands })
	t.input.On(action.SelectHigherBit, func() {
		if t.bit < 7 {
			t.bit++
		}
	})
	t.input.On(action.SelectLowerBit, func() {
		if t.bit > 0 {
			t.bit--
		}
	})

	t.input.On(action.ApplyTest, func() { t.apply(cpu.OpTest) })
	t.input.On(action.ApplyReset, func() { t.apply(cpu.OpReset) })
	t.input.On(action.ApplySet, func() { t.apply(cpu.OpSet) })

	t.input.On(action.InspectorSnapshot, t.snapshot)
	t.input.On(action.InspectorQuit, func() { t.running = false })
	t.input.On(action.DebugLogLevelIncrease, func() { t.changeLogLevel(1) })
	t.input.On(action.DebugLogLevelDecrease, func() { t.changeLogLevel(-1) })
}

func (t *Backend) apply(op cpu.Op) {
	if t.session == nil {
		return
	}
	target, index := t.Selected()
	step, err := t.session.Apply(op, index, target)
	if err != nil {
		t.status = err.Error()
		slog.Error("Operation failed", "error", err)
		return
	}
	t.status = ""
	slog.Info("Executed", "instruction", step.Instruction.String(), "cycles", step.Cycles)
}

func (t *Backend) snapshot() {
	if t.session == nil {
		return
	}
	path, err := debug.SaveToDir(debug.Capture(t.session.State()), "bitunit_state", t.config.SnapshotDir)
	if err != nil {
		t.status = err.Error()
		slog.Error("Failed to save snapshot", "error", err)
		return
	}
	t.status = "saved " + path
}

// changeLogLevel moves the log pane filter, +1 shows more and -1 shows less.
func (t *Backend) changeLogLevel(direction int) {
	levels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	current := 0
	for i, l := range levels {
		if l == t.logLevel.Level() {
			current = i
		}
	}

	next := current - direction
	if next < 0 || next >= len(levels) {
		return
	}

	oldLevel := t.logLevel.Level()
	t.logLevel.Set(levels[next])
	slog.Info("Log filter changed", "from", oldLevel, "to", levels[next])
}

// LogLevel returns the minimum level shown in the log pane.
func (t *Backend) LogLevel() slog.Level {
	return t.logLevel.Level()
}

// Draw renders the current session state and shows it.
func (t *Backend) Draw() {
	t.screen.Clear()
	defer t.screen.Show()

	termWidth, termHeight := t.screen.Size()
	if termWidth < minTermWidth || termHeight < minTermHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d), need %dx%d", termWidth, termHeight, minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
		return
	}

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	helpStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	t.drawText(1, 0, termWidth-1, " Bit Operation Unit ", titleStyle)
	t.drawText(1, helpY, termWidth-1, helpText, helpStyle)

	if t.session == nil {
		return
	}

	state := debug.Capture(t.session.State())
	for i, line := range state.Lines() {
		t.drawText(2, registersY+i, termWidth-2, line, textStyle)
	}

	t.drawOperands(termWidth)
	t.drawBits(termWidth)

	last := "Last: -"
	if step, ok := t.session.Last(); ok {
		last = fmt.Sprintf("Last: %s (%d cycles)", step.Instruction, step.Cycles)
	}
	t.drawText(2, lastY, termWidth-2, last, textStyle)
	if t.status != "" {
		t.drawText(2, lastY+1, termWidth-2, t.status, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	t.drawLogs(termWidth, termHeight)
}

func (t *Backend) drawOperands(termWidth int) {
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	x := 2 + t.drawText(2, operandY, termWidth-2, "Operand:", labelStyle)
	for i, target := range cpu.Operands() {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if i == t.operand {
			style = style.Reverse(true)
		}
		x += 1 + t.drawText(x+1, operandY, termWidth-x-1, target.String(), style)
	}
}

func (t *Backend) drawBits(termWidth int) {
	target, index := t.Selected()
	value := t.session.State().ReadByte(target)

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	t.drawText(2, bitsY-1, termWidth-2, fmt.Sprintf("%s = 0x%02X", target, value), labelStyle)
	t.drawText(2, bitsY, termWidth-2, render.BitHeader, tcell.StyleDefault.Foreground(tcell.ColorGray))
	t.drawText(2, bitsY+1, termWidth-2, render.BitCells(value), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	x := 2 + render.BitColumn(index)
	mainc, _, style, _ := t.screen.GetContent(x, bitsY+1)
	t.screen.SetContent(x, bitsY+1, mainc, nil, style.Reverse(true))
}

func (t *Backend) drawLogs(termWidth, termHeight int) {
	available := termHeight - logsY
	if available <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.Recent(available, t.logLevel.Level()) {
		style := infoStyle
		switch {
		case entry.Level >= slog.LevelError:
			style = errStyle
		case entry.Level >= slog.LevelWarn:
			style = warnStyle
		case entry.Level < slog.LevelInfo:
			style = debugStyle
		}
		t.drawText(1, logsY+i, termWidth-1, render.FormatLogEntry(entry), style)
	}
}

// drawText writes text at x, y clipped to width and returns the runes drawn.
func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) int {
	text = render.Truncate(text, width)
	n := 0
	for _, ch := range text {
		t.screen.SetContent(x+n, y, ch, nil, style)
		n++
	}
	return n
}
