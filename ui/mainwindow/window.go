// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ship-editor/internal/app"
	"ship-editor/internal/catalog"
	"ship-editor/internal/editor"
	"ship-editor/internal/version"
	"ship-editor/ui/canvas"
	"ship-editor/ui/panels"
	"ship-editor/ui/prefs"
)

const (
	prefKeyZoomSize   = "zoomSize"
	prefKeyLastDesign = "lastDesign"
	prefKeyStatusBar  = "showStatusBar"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.ShipCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	undoItem   *fyne.MenuItem
	statusItem *fyne.MenuItem
	mainMenu   *fyne.MainMenu
	statusWrap *fyne.Container

	// shiftHeld mirrors the keyboard modifier for typed-key events, which
	// do not carry modifier information themselves.
	shiftHeld bool
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Ship Editor")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupKeys()
	mw.setupEventHandlers()
	mw.restoreSession()

	win.Resize(fyne.NewSize(900, 640))
	win.SetCloseIntercept(func() {
		mw.saveSession()
		fyneApp.Quit()
	})
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewShipCanvas(mw.state)
	mw.sidePanel = panels.NewSidePanel(mw.state)
	mw.sidePanel.SetWindow(mw.Window)
	mw.statusBar = widget.NewLabel("Ready")

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		mw.canvas,
	)
	split.SetOffset(0.3)

	mw.statusWrap = container.NewPadded(mw.statusBar)
	content := container.NewBorder(
		nil,
		mw.statusWrap,
		nil,
		nil,
		split,
	)
	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Blank Design", func() { mw.state.LoadBlank() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			mw.saveSession()
			mw.app.Quit()
		}),
	)

	mw.undoItem = fyne.NewMenuItem("Undo", func() { mw.state.Undo() })
	mw.undoItem.Shortcut = &desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: fyne.KeyModifierControl,
	}
	mw.undoItem.Disabled = true
	editMenu := fyne.NewMenu("Edit", mw.undoItem)

	mw.statusItem = fyne.NewMenuItem("Show Status Bar", mw.onToggleStatusBar)
	mw.statusItem.Checked = true
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Actual Size", mw.onZoomReset),
		fyne.NewMenuItemSeparator(),
		mw.statusItem,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.mainMenu = fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu)
	mw.SetMainMenu(mw.mainMenu)
}

// setupKeys wires keyboard handling: delete operations and shift tracking
// for axis-constrained drags.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			mw.deleteSelection()
		case fyne.KeyA:
			mw.state.Session.ToggleAddVertexMode()
			mw.state.Emit(app.EventModeChanged, nil)
		case fyne.KeyEqual:
			mw.onZoomIn()
		case fyne.KeyMinus:
			mw.onZoomOut()
		}
	})

	if deskCanvas, ok := mw.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if isShift(ev.Name) {
				mw.shiftHeld = true
				mw.canvas.SetShiftHeld(true)
			}
		})
		deskCanvas.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			if isShift(ev.Name) {
				mw.shiftHeld = false
				mw.canvas.SetShiftHeld(false)
			}
		})
	}
}

// deleteSelection removes the selected vertices, or the whole selected
// layer when shift is held.
func (mw *MainWindow) deleteSelection() {
	if mw.shiftHeld {
		mw.state.Session.DeleteSelectedLayer()
	} else {
		mw.state.Session.DeleteSelectedVertices()
	}
	mw.state.Emit(app.EventShapeChanged, nil)
	mw.state.Emit(app.EventSelectionChanged, nil)
	mw.state.Emit(app.EventHistoryChanged, nil)
}

func isShift(key fyne.KeyName) bool {
	return key == desktop.KeyShiftLeft || key == desktop.KeyShiftRight
}

// setupEventHandlers subscribes to application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventHistoryChanged, func(interface{}) {
		disabled := !mw.state.Session.CanUndo()
		if mw.undoItem.Disabled != disabled {
			mw.undoItem.Disabled = disabled
			mw.mainMenu.Refresh()
		}
	})
	for _, ev := range []app.EventType{
		app.EventDesignLoaded,
		app.EventShapeChanged,
		app.EventSelectionChanged,
		app.EventZoomChanged,
	} {
		mw.state.On(ev, func(interface{}) { mw.updateStatus() })
	}
}

func (mw *MainWindow) updateStatus() {
	session := mw.state.Session
	name := "(blank)"
	if d := session.Design(); d != nil {
		name = d.Name
	}
	mw.statusBar.SetText(fmt.Sprintf("%s  |  zoom %.0fpx  |  %d layer(s)",
		name, session.View().ZoomSize(), len(session.Shapes())))
}

func (mw *MainWindow) onZoomIn() {
	mw.state.Session.View().ZoomIn()
	mw.state.Emit(app.EventZoomChanged, nil)
}

func (mw *MainWindow) onZoomOut() {
	mw.state.Session.View().ZoomOut()
	mw.state.Emit(app.EventZoomChanged, nil)
}

func (mw *MainWindow) onZoomReset() {
	mw.state.Session.View().SetZoomSize(editor.DefaultZoomSize)
	mw.state.Emit(app.EventZoomChanged, nil)
}

func (mw *MainWindow) onToggleStatusBar() {
	show := !mw.statusItem.Checked
	mw.statusItem.Checked = show
	if show {
		mw.statusWrap.Show()
	} else {
		mw.statusWrap.Hide()
	}
	mw.prefs.SetBool(prefKeyStatusBar, show)
	mw.mainMenu.Refresh()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About",
		fmt.Sprintf("Ship Editor %s\nBuilt %s (%s)",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}

// restoreSession reloads the zoom level and last design from preferences.
func (mw *MainWindow) restoreSession() {
	mw.state.Session.View().SetZoomSize(
		mw.prefs.FloatWithFallback(prefKeyZoomSize, mw.state.Session.View().ZoomSize()))

	if !mw.prefs.Bool(prefKeyStatusBar, true) {
		mw.statusItem.Checked = false
		mw.statusWrap.Hide()
		mw.mainMenu.Refresh()
	}

	last := mw.prefs.String(prefKeyLastDesign)
	if catalog.Get(last) == nil {
		last = "Sidewinder"
	}
	mw.sidePanel.SelectDesign(last)
}

// saveSession persists the zoom level and current design.
func (mw *MainWindow) saveSession() {
	mw.prefs.SetFloat(prefKeyZoomSize, mw.state.Session.View().ZoomSize())
	if d := mw.state.Session.Design(); d != nil {
		mw.prefs.SetString(prefKeyLastDesign, d.Name)
	}
	if err := mw.prefs.Save(); err != nil {
		log.Printf("saving preferences: %v", err)
	}
}
