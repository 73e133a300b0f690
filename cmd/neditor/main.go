// Command neditor is a terminal host for the neditor editing core: it wires
// the editor surface onto a tcell screen, maps terminal key events onto
// editor key events, and runs the diagnostics WebSocket bridge so external
// linters can push checker overlays.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/ninja-ide/neditor/diag"
	"github.com/ninja-ide/neditor/editor"
)

type app struct {
	screen    tcell.Screen
	view      *view
	tabs      *editor.TabManager
	editors   map[*editor.File]*editor.Editor
	languages *editor.Languages
	config    *editor.Config
	checkers  map[string]*diag.ReportChecker
	events    chan func()
	quit      bool
}

func main() {
	diagAddr := flag.String("diag", "", "listen address for the diagnostics bridge (e.g. :8750)")
	langConfig := flag.String("languages", "", "YAML file with language overrides")
	flag.Parse()

	languages := editor.DefaultLanguages()
	if *langConfig != "" {
		data, err := os.ReadFile(*langConfig)
		if err != nil {
			log.Fatalf("read language config: %v", err)
		}
		if err := languages.LoadYAML(data); err != nil {
			log.Fatalf("load language config: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a := &app{
		screen:    screen,
		view:      newView(screen),
		tabs:      editor.NewTabManager(languages),
		editors:   make(map[*editor.File]*editor.Editor),
		languages: languages,
		config:    editor.DefaultConfig(),
		checkers:  make(map[string]*diag.ReportChecker),
		events:    make(chan func(), 64),
	}

	for _, path := range flag.Args() {
		if _, err := a.tabs.Open(path); err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
			os.Exit(1)
		}
	}
	if a.tabs.Count() == 0 {
		a.tabs.NewUntitled()
	}
	if err := a.activateTab(a.tabs.Active()); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *diagAddr != "" {
		bridge := diag.NewServer()
		bridge.Subscribe(a.onReport)
		go func() {
			if err := http.ListenAndServe(*diagAddr, bridge); err != nil {
				log.Printf("diag bridge: %v", err)
			}
		}()
	}

	a.run()
}

// dispatch posts fn onto the event loop, keeping the editor single-threaded.
func (a *app) dispatch(fn func()) {
	select {
	case a.events <- fn:
		a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	default:
	}
}

// onReport feeds a diagnostics report into the matching open file's checker
// and refreshes the overlay.
func (a *app) onReport(report diag.Report) {
	a.dispatch(func() {
		for _, f := range a.tabs.Files() {
			if f.Path() != report.Path {
				continue
			}
			rc, ok := a.checkers[report.Checker]
			if !ok {
				rc = diag.NewReportChecker(report.Checker)
				a.checkers[report.Checker] = rc
				f.RegisterChecker(editor.CheckerEntry{
					Checker:  rc,
					Color:    report.Color,
					Priority: report.Priority,
				})
			}
			rc.Update(report)
			if ed := a.editors[f]; ed != nil {
				ed.HighlightCheckers()
			}
		}
	})
}

// activateTab binds the view to the editor of the active tab, creating the
// editor on first visit.
func (a *app) activateTab(index int) error {
	a.tabs.SetActive(index)
	f := a.tabs.ActiveFile()
	if f == nil {
		return fmt.Errorf("no open file")
	}
	ed, ok := a.editors[f]
	if !ok {
		var err error
		ed, err = editor.New(f, a.config, a.view,
			editor.WithLanguages(a.languages),
			editor.WithDispatch(a.dispatch))
		if err != nil {
			return err
		}
		a.editors[f] = ed
	}
	a.view.attach(ed, f.Language(), a.config.ColorScheme)
	return nil
}

func (a *app) run() {
	for !a.quit {
		a.view.render()
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			a.drainEvents()
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
	for _, ed := range a.editors {
		ed.Close()
	}
}

// drainEvents runs every callback posted from timer goroutines.
func (a *app) drainEvents() {
	for {
		select {
		case fn := <-a.events:
			fn()
		default:
			return
		}
	}
}

func modifiers(ev *tcell.EventKey) editor.Modifier {
	var mod editor.Modifier
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= editor.ModShift
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= editor.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= editor.ModAlt
	}
	return mod
}

func (a *app) handleKey(ev *tcell.EventKey) {
	ed := a.view.ed
	cursor := ed.Cursor()
	mod := modifiers(ev)
	shift := mod&editor.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		a.quit = true
	case tcell.KeyCtrlS:
		if f := a.tabs.ActiveFile(); f != nil {
			if err := f.Save(); err == nil {
				ed.SideArea().MarkSaved()
			}
		}
	case tcell.KeyCtrlZ:
		ed.Undo()
	case tcell.KeyCtrlY:
		ed.Redo()
	case tcell.KeyCtrlD:
		ed.ToggleComment()
	case tcell.KeyCtrlR:
		ed.ShowRunCursor()
	case tcell.KeyCtrlB:
		ed.SideArea().ToggleBookmark(cursor.Line())
	case tcell.KeyCtrlN:
		if line, ok := ed.SideArea().NextBookmark(cursor.Line()); ok {
			cursor.MoveToLineColumn(line, 0, false)
			ed.MoveCursor(cursor.Position(), false)
		}
	case tcell.KeyCtrlC:
		if cursor.HasSelection() {
			_ = clipboard.WriteAll(cursor.SelectedText())
		}
	case tcell.KeyCtrlX:
		if cursor.HasSelection() {
			if clipboard.WriteAll(cursor.SelectedText()) == nil {
				cursor.DeleteSelection()
			}
		}
	case tcell.KeyCtrlV:
		if text, err := clipboard.ReadAll(); err == nil {
			cursor.InsertText(text)
			ed.MoveCursor(cursor.Position(), false)
		}
	case tcell.KeyLeft:
		ed.MoveCursor(cursor.Position()-1, shift)
	case tcell.KeyRight:
		ed.MoveCursor(cursor.Position()+1, shift)
	case tcell.KeyUp:
		a.moveVertical(-1, shift)
	case tcell.KeyDown:
		a.moveVertical(1, shift)
	case tcell.KeyHome:
		ed.HandleKey(&editor.KeyEvent{Key: editor.KeyHome, Mod: mod})
	case tcell.KeyEnd:
		line := cursor.Line()
		cursor.MoveToLineColumn(line, ed.Document().LineEnd(line)-ed.Document().LineStart(line), shift)
		ed.MoveCursor(cursor.Position(), shift)
	case tcell.KeyEnter:
		ed.HandleKey(&editor.KeyEvent{Key: editor.KeyEnter, Mod: mod})
	case tcell.KeyTab:
		ed.HandleKey(&editor.KeyEvent{Key: editor.KeyTab, Mod: mod})
	case tcell.KeyBacktab:
		ed.HandleKey(&editor.KeyEvent{Key: editor.KeyBacktab, Mod: mod})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ed.HandleKey(&editor.KeyEvent{Key: editor.KeyBackspace, Mod: mod})
	case tcell.KeyDelete:
		ed.HandleKey(&editor.KeyEvent{Key: editor.KeyDelete, Mod: mod})
	case tcell.KeyRune:
		ed.HandleKey(&editor.KeyEvent{Key: editor.KeyRune, Rune: ev.Rune(), Mod: mod})
	}
}

// moveVertical moves the cursor a line up or down, keeping the column.
func (a *app) moveVertical(delta int, extend bool) {
	ed := a.view.ed
	cursor := ed.Cursor()
	line := cursor.Line() + delta
	if line < 0 || line >= ed.Document().LineCount() {
		return
	}
	col := cursor.Column()
	cursor.MoveToLineColumn(line, col, extend)
	ed.MoveCursor(cursor.Position(), extend)
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	ed := a.view.ed
	x, y := ev.Position()
	gutter := a.view.gutterWidth(ed.Document())
	line := a.view.topLine + y
	col := x - gutter
	if col < 0 {
		col = 0
	}
	var mod editor.Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= editor.ModCtrl
	}
	switch ev.Buttons() {
	case tcell.Button1:
		if line < ed.Document().LineCount() {
			ed.Cursor().MoveToLineColumn(line, col, false)
			ed.MoveCursor(ed.Cursor().Position(), false)
		}
	case tcell.ButtonNone:
		if tooltip := ed.HandleMouseMove(line, col, mod); tooltip != "" {
			a.view.message(tooltip)
		}
	}
}
