// Package app wires the editing core, the gutter overlay and the terminal
// screen into the demo application.
package app

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/etchlab/etch/caret"
	"github.com/etchlab/etch/clipboard"
	"github.com/etchlab/etch/dom"
	"github.com/etchlab/etch/editor"
	"github.com/etchlab/etch/gutter"
	"github.com/etchlab/etch/highlight"
	"github.com/etchlab/etch/input"
	"github.com/etchlab/etch/internal/config"
	"github.com/etchlab/etch/internal/event"
	"github.com/etchlab/etch/internal/logger"
	"github.com/etchlab/etch/internal/tui"
	"github.com/etchlab/etch/internal/utils"
	"github.com/etchlab/etch/selection"
)

// App owns the demo's editor instance and terminal screen.
type App struct {
	tui     *tui.TUI
	editor  *editor.Editor
	root    *dom.Node
	mapper  *caret.Mapper
	overlay *gutter.Overlay
}

// NewApp builds the application for an optional file path.
func NewApp(filePath string, cfg *config.Config) (*App, error) {
	root := dom.NewElement("pre")

	var fn highlight.Func
	if sitter, err := highlight.NewGo(); err != nil {
		logger.Warnf("app: go highlighter unavailable, coloring disabled: %v", err)
		fn = highlight.Plain()
	} else {
		fn = sitter.Highlight
	}

	selHost := selection.NewMemoryHost()
	var clip clipboard.Host
	if cfg.Editor.SystemClipboard {
		clip = clipboard.NewSystem()
	}

	ed := editor.New(root, fn, editor.Options{
		Tab:            cfg.Editor.Tab,
		MaxHistory:     cfg.Editor.MaxHistory,
		HighlightDelay: utils.Millis(cfg.Editor.HighlightDelayMS),
		RecordDelay:    utils.Millis(cfg.Editor.RecordDelayMS),
		Selection:      selHost,
		Clipboard:      clip,
	})

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", filePath, err)
		}
		ed.SetText(string(data))
	}

	a := &App{
		root:    root,
		editor:  ed,
		mapper:  caret.NewMapper(root, selHost),
		overlay: gutter.New(),
	}
	a.overlay.Update(ed.Text())

	// Start with a collapsed cursor at the top of the document.
	if err := a.mapper.Restore(caret.Position{}); err != nil {
		logger.Debugf("app: initial cursor restore: %v", err)
	}
	ed.SetFocused(true)

	t, err := tui.New()
	if err != nil {
		return nil, err
	}
	a.tui = t

	// The debounced highlight pass runs off the event loop; bounce redraws
	// back through the screen's event queue.
	ed.Events().Subscribe(event.TypeHighlighted, func(e event.Event) bool {
		if data, ok := e.Data.(event.HighlightedData); ok {
			a.overlay.Update(data.Text)
		}
		a.tui.Interrupt()
		return false
	})
	ed.Events().Subscribe(event.TypeContentChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.ContentChangedData); ok {
			a.overlay.Update(data.Text)
		}
		return false
	})
	return a, nil
}

// Run drives the event loop until Ctrl+Q.
func (a *App) Run() error {
	defer a.tui.Close()
	defer a.editor.Close()
	a.draw()

	for {
		switch ev := a.tui.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlQ {
				return nil
			}
			if ev.Key() == tcell.KeyCtrlV {
				a.editor.HandlePaste()
				a.draw()
				continue
			}
			kev := input.FromTcell(ev)
			if !a.editor.HandleKeyDown(kev) {
				a.moveCursor(kev)
			}
			a.editor.HandleKeyUp(kev)
			a.draw()
		case *tcell.EventResize:
			a.tui.GetScreen().Sync()
			a.draw()
		case *tcell.EventInterrupt:
			a.draw()
		}
	}
}

// moveCursor applies plain cursor movement for keys the controller leaves to
// the host. It runs under the editor's render lock since it reads the tree
// and moves the selection while the debounce timers may be live.
func (a *App) moveCursor(ev input.Event) {
	a.editor.Render(func(root *dom.Node) {
		a.moveCursorLocked(root, ev)
	})
}

func (a *App) moveCursorLocked(root *dom.Node, ev input.Event) {
	pos, err := a.mapper.Save()
	if err != nil {
		return
	}
	_, end := pos.Normalized()
	text := dom.Text(root)

	target := end
	switch ev.Key {
	case input.KeyLeft:
		if end > 0 {
			_, size := utf8.DecodeLastRuneInString(text[:end])
			target = end - size
		}
	case input.KeyRight:
		if end < len(text) {
			_, size := utf8.DecodeRuneInString(text[end:])
			target = end + size
		}
	case input.KeyUp, input.KeyDown:
		line, col := utils.OffsetToLineCol(text, end)
		if ev.Key == input.KeyUp {
			line--
		} else {
			line++
		}
		target = offsetAt(text, line, col)
		if target < 0 {
			return
		}
	case input.KeyEnd:
		line, _ := utils.OffsetToLineCol(text, end)
		target = offsetAt(text, line, len(text)) // clamps to line end
	default:
		return
	}
	if err := a.mapper.Restore(caret.Position{Start: target, End: target}); err != nil {
		logger.Debugf("app: cursor move restore: %v", err)
	}
}

// offsetAt returns the flat offset of (line, col), clamping col to the line
// length. Lines outside the text return -1.
func offsetAt(text string, line, col int) int {
	if line < 0 {
		return -1
	}
	start := 0
	for l := 0; l < line; l++ {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			return -1
		}
		start += nl + 1
	}
	lineEnd := len(text)
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		lineEnd = start + nl
	}
	if col > lineEnd-start {
		col = lineEnd - start
	}
	return start + col
}

func (a *App) draw() {
	a.editor.Render(func(root *dom.Node) {
		line, col := 0, 0
		if pos, err := a.mapper.Save(); err == nil {
			_, end := pos.Normalized()
			line, col = utils.OffsetToLineCol(dom.Text(root), end)
		}
		tui.DrawEditor(a.tui, root, a.overlay, line, col)
	})
}
