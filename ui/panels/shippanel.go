// Package panels provides UI panels for the application.
package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"ship-editor/internal/app"
	"ship-editor/internal/catalog"
	"ship-editor/internal/export"
	"ship-editor/pkg/colorutil"
)

// blankOption is the design-picker entry for starting from scratch.
const blankOption = "(blank design)"

// SidePanel provides the ship picker and editing controls.
type SidePanel struct {
	state     *app.State
	window    fyne.Window
	container *container.AppTabs

	shipPanel *ShipPanel
	editPanel *EditPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{state: state}

	sp.shipPanel = NewShipPanel(state)
	sp.editPanel = NewEditPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Ship", sp.shipPanel.Container()),
		container.NewTabItem("Edit", sp.editPanel.Container()),
	)
	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.shipPanel.window = w
	sp.editPanel.window = w
}

// SelectDesign drives the ship picker programmatically, e.g. when restoring
// the last session.
func (sp *SidePanel) SelectDesign(name string) {
	sp.shipPanel.designSelect.SetSelected(name)
}

// ShipPanel handles design selection, metadata display, and export.
type ShipPanel struct {
	state     *app.State
	window    fyne.Window
	container fyne.CanvasObject

	designSelect *widget.Select
	kindLabel    *widget.Label
	sizeLabel    *widget.Label
	statsLabel   *widget.Label
	descLabel    *widget.Label
	exportButton *widget.Button
}

// NewShipPanel creates a new ship panel.
func NewShipPanel(state *app.State) *ShipPanel {
	p := &ShipPanel{state: state}

	p.kindLabel = widget.NewLabel("")
	p.sizeLabel = widget.NewLabel("")
	p.statsLabel = widget.NewLabel("")
	p.descLabel = widget.NewLabel("")
	p.descLabel.Wrapping = fyne.TextWrapWord

	options := append(catalog.Names(), blankOption)
	p.designSelect = widget.NewSelect(options, p.onDesignSelected)

	p.exportButton = widget.NewButton("Export as Go Source...", p.onExport)

	p.container = container.NewVBox(
		widget.NewLabel("Design:"),
		p.designSelect,
		widget.NewSeparator(),
		p.kindLabel,
		p.sizeLabel,
		p.statsLabel,
		p.descLabel,
		widget.NewSeparator(),
		p.exportButton,
	)

	state.On(app.EventDesignLoaded, func(interface{}) { p.sync() })
	state.On(app.EventShapeChanged, func(interface{}) { p.syncExportState() })
	p.sync()
	return p
}

// Container returns the panel content.
func (p *ShipPanel) Container() fyne.CanvasObject {
	return p.container
}

func (p *ShipPanel) onDesignSelected(name string) {
	if name == blankOption {
		p.state.LoadBlank()
		return
	}
	if err := p.state.LoadDesign(name); err != nil && p.window != nil {
		dialog.ShowError(err, p.window)
	}
}

func (p *ShipPanel) sync() {
	d := p.state.Session.Design()
	if d == nil {
		p.kindLabel.SetText("Kind: Custom")
		p.sizeLabel.SetText(fmt.Sprintf("Size: %g", catalog.FallbackSize))
		p.statsLabel.SetText("")
		p.descLabel.SetText("A blank design. Drag vertices to shape the hull.")
	} else {
		p.kindLabel.SetText("Kind: " + d.Kind.String())
		p.sizeLabel.SetText(fmt.Sprintf("Size: %g", d.Size))
		p.statsLabel.SetText(fmt.Sprintf("Speed %d  Turn %d  Hull %d  Shield %d",
			d.Stats.Speed, d.Stats.Turn, d.Stats.Hull, d.Stats.Shield))
		p.descLabel.SetText(d.Description)
	}
	p.syncExportState()
}

func (p *ShipPanel) syncExportState() {
	if p.state.Session.Editable() {
		p.exportButton.Enable()
	} else {
		p.exportButton.Disable()
	}
}

func (p *ShipPanel) onExport() {
	session := p.state.Session
	if !session.Editable() {
		return
	}

	name := "Custom"
	size := catalog.FallbackSize
	if d := session.Design(); d != nil {
		name = d.Name
		size = d.Size
	}
	src := export.GoSource(name, size, session.Shapes())

	entry := widget.NewMultiLineEntry()
	entry.SetText(src)
	entry.Wrapping = fyne.TextWrapOff

	content := container.NewBorder(
		widget.NewLabel("Copy this snippet into a source file:"),
		nil, nil, nil,
		container.NewScroll(entry),
	)
	d := dialog.NewCustom("Export "+name, "Close", content, p.window)
	d.Resize(fyne.NewSize(520, 420))
	d.Show()
}

// EditPanel holds the layer, style, and cleanup controls.
type EditPanel struct {
	state     *app.State
	window    fyne.Window
	container fyne.CanvasObject

	selectionLabel *widget.Label
	addVertexCheck *widget.Check
	undoButton     *widget.Button

	addLayerButton    *widget.Button
	deleteLayerButton *widget.Button
	deleteVertsButton *widget.Button
	straightenButton  *widget.Button

	fillSliders   [3]*widget.Slider
	strokeSliders [3]*widget.Slider
	strokeWSlider *widget.Slider

	// syncing suppresses slider callbacks while control positions are
	// being refreshed from state.
	syncing bool
}

// NewEditPanel creates a new edit panel.
func NewEditPanel(state *app.State) *EditPanel {
	p := &EditPanel{state: state}

	p.selectionLabel = widget.NewLabel("Nothing selected")
	p.selectionLabel.Wrapping = fyne.TextWrapWord

	p.addVertexCheck = widget.NewCheck("Add vertex on edge click", func(bool) {
		if p.syncing {
			return
		}
		p.state.Session.ToggleAddVertexMode()
		p.state.Emit(app.EventModeChanged, nil)
	})

	p.undoButton = widget.NewButton("Undo", func() { p.state.Undo() })

	p.addLayerButton = widget.NewButton("Add Layer", func() {
		p.state.Session.AddLayer()
		p.emitShapeAndSelection()
	})
	p.deleteLayerButton = widget.NewButton("Delete Layer", func() {
		p.state.Session.DeleteSelectedLayer()
		p.emitShapeAndSelection()
	})
	p.deleteVertsButton = widget.NewButton("Delete Vertices", func() {
		p.state.Session.DeleteSelectedVertices()
		p.emitShapeAndSelection()
	})
	p.straightenButton = widget.NewButton("Straighten", func() {
		p.state.Session.StraightenSelected()
		p.emitShapeAndSelection()
	})

	for i := range p.fillSliders {
		p.fillSliders[i] = newChannelSlider(p.applyFill)
		p.strokeSliders[i] = newChannelSlider(p.applyStroke)
	}
	p.strokeWSlider = widget.NewSlider(0, 0.15)
	p.strokeWSlider.Step = 0.005
	p.strokeWSlider.OnChangeEnded = func(v float64) {
		if p.syncing {
			return
		}
		p.state.Session.SetStrokeWeight(v)
		p.emitShapeAndSelection()
	}

	p.container = container.NewVBox(
		p.selectionLabel,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, p.addLayerButton, p.deleteLayerButton),
		container.NewGridWithColumns(2, p.deleteVertsButton, p.straightenButton),
		p.addVertexCheck,
		p.undoButton,
		widget.NewSeparator(),
		widget.NewLabel("Fill (R/G/B):"),
		p.fillSliders[0], p.fillSliders[1], p.fillSliders[2],
		widget.NewLabel("Stroke (R/G/B):"),
		p.strokeSliders[0], p.strokeSliders[1], p.strokeSliders[2],
		widget.NewLabel("Stroke weight:"),
		p.strokeWSlider,
	)

	for _, ev := range []app.EventType{
		app.EventDesignLoaded,
		app.EventShapeChanged,
		app.EventSelectionChanged,
		app.EventHistoryChanged,
		app.EventModeChanged,
	} {
		state.On(ev, func(interface{}) { p.sync() })
	}
	p.sync()
	return p
}

func newChannelSlider(apply func()) *widget.Slider {
	s := widget.NewSlider(0, 255)
	s.Step = 1
	s.OnChangeEnded = func(float64) { apply() }
	return s
}

// Container returns the panel content.
func (p *EditPanel) Container() fyne.CanvasObject {
	return p.container
}

func (p *EditPanel) emitShapeAndSelection() {
	p.state.Emit(app.EventShapeChanged, nil)
	p.state.Emit(app.EventSelectionChanged, nil)
	p.state.Emit(app.EventHistoryChanged, nil)
}

func (p *EditPanel) applyFill() {
	if p.syncing {
		return
	}
	p.state.Session.SetFillColor(colorutil.NewRGB(
		uint8(p.fillSliders[0].Value),
		uint8(p.fillSliders[1].Value),
		uint8(p.fillSliders[2].Value)))
	p.emitShapeAndSelection()
}

func (p *EditPanel) applyStroke() {
	if p.syncing {
		return
	}
	p.state.Session.SetStrokeColor(colorutil.NewRGB(
		uint8(p.strokeSliders[0].Value),
		uint8(p.strokeSliders[1].Value),
		uint8(p.strokeSliders[2].Value)))
	p.emitShapeAndSelection()
}

func (p *EditPanel) sync() {
	p.syncing = true
	defer func() { p.syncing = false }()

	session := p.state.Session
	l := session.SelectedLayer()

	p.undoButton.Enable()
	if !session.CanUndo() {
		p.undoButton.Disable()
	}

	if !session.Editable() {
		p.selectionLabel.SetText("This design is procedural and cannot be edited.")
		p.setEditControlsEnabled(false, false)
		return
	}
	if l == nil {
		p.selectionLabel.SetText(fmt.Sprintf("%d layer(s). Click a layer to select it.",
			len(session.Shapes())))
		p.setEditControlsEnabled(true, false)
		p.addVertexCheck.SetChecked(false)
		return
	}

	p.selectionLabel.SetText(fmt.Sprintf("Layer %d of %d: %d vertices, %d selected",
		session.SelectedLayerIndex()+1, len(session.Shapes()),
		len(l.Vertices), len(session.SelectedVertices())))
	p.setEditControlsEnabled(true, true)

	p.addVertexCheck.SetChecked(session.AddVertexMode())
	p.fillSliders[0].SetValue(float64(l.Fill.R))
	p.fillSliders[1].SetValue(float64(l.Fill.G))
	p.fillSliders[2].SetValue(float64(l.Fill.B))
	p.strokeSliders[0].SetValue(float64(l.Stroke.R))
	p.strokeSliders[1].SetValue(float64(l.Stroke.G))
	p.strokeSliders[2].SetValue(float64(l.Stroke.B))
	p.strokeWSlider.SetValue(l.StrokeW)
}

func (p *EditPanel) setEditControlsEnabled(editable, hasLayer bool) {
	setEnabled := func(w interface {
		Enable()
		Disable()
	}, on bool) {
		if on {
			w.Enable()
		} else {
			w.Disable()
		}
	}

	setEnabled(p.addLayerButton, editable)
	setEnabled(p.deleteLayerButton, hasLayer)
	setEnabled(p.deleteVertsButton, hasLayer)
	setEnabled(p.straightenButton, hasLayer)
	setEnabled(p.addVertexCheck, hasLayer)
	// Style sliders stay live; the session ignores style changes while no
	// layer is selected.
}
