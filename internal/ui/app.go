// Package ui implements the interactive scene viewer window. The App hosts
// a view.Controller: it feeds the controller pointer and key events, lets it
// compose the view transform before the scene is drawn, and acts as its
// Surface (viewport size + redraw scheduling).
package ui

import (
	"fmt"
	"image"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/menu"
	gvtheme "github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/viewtk/viewtk/pkg/render"
	"github.com/viewtk/viewtk/pkg/scene"
	"github.com/viewtk/viewtk/pkg/view"
)

// toolbarZoomFactor is the per-click zoom step of the toolbar buttons.
const toolbarZoomFactor = 1.2

// App is the viewer window. It owns the transform controller and the
// currently loaded scene.
type App struct {
	window *app.Window
	ops    op.Ops

	ctrl     *view.Controller
	doc      *scene.Document
	title    string
	theme    render.Theme
	viewport image.Point
	fitted   bool

	matTheme *material.Theme
	gvTheme  *gvtheme.Theme

	viewMenu    *menu.DropdownMenu
	viewMenuBtn widget.Clickable

	openBtn    widget.Clickable
	zoomInBtn  widget.Clickable
	zoomOutBtn widget.Clickable
	fitBtn     widget.Clickable
	centerBtn  widget.Clickable

	openIcon    *widget.Icon
	zoomInIcon  *widget.Icon
	zoomOutIcon *widget.Icon
	fitIcon     *widget.Icon
	centerIcon  *widget.Icon

	picker *explorer.Explorer

	logs []string
}

// NewApp creates a viewer for the given scene.
func NewApp(title string, doc *scene.Document, th render.Theme) *App {
	a := &App{
		doc:   doc,
		title: title,
		theme: th,
	}

	a.matTheme = material.NewTheme()
	a.matTheme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	a.gvTheme = gvtheme.NewTheme("", nil, true)

	a.ctrl = view.NewController(a)
	a.setFocusFromScene()

	if icon, err := widget.NewIcon(icons.FileFolderOpen); err == nil {
		a.openIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ActionZoomIn); err == nil {
		a.zoomInIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ActionZoomOut); err == nil {
		a.zoomOutIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ActionHome); err == nil {
		a.fitIcon = icon
	}
	if icon, err := widget.NewIcon(icons.ImageCenterFocusStrong); err == nil {
		a.centerIcon = icon
	}

	a.viewMenu = a.buildViewMenu()

	return a
}

// Size reports the canvas area in pixels; part of view.Surface.
func (a *App) Size() (float64, float64) {
	return float64(a.viewport.X), float64(a.viewport.Y)
}

// Invalidate schedules a redraw; part of view.Surface.
func (a *App) Invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

// Run opens the window and drives the frame loop until the window closes.
func (a *App) Run() error {
	a.window = new(app.Window)
	a.window.Option(app.Title("viewtk - " + a.title))
	a.window.Option(app.Size(unit.Dp(1000), unit.Dp(800)))

	a.picker = explorer.NewExplorer(a.window)

	a.Logf("[INFO] Loaded %q: %d shapes", a.title, len(a.doc.Shapes))
	a.Logf("[INFO] Drag to pan, scroll to zoom, Ctrl-drag to rotate")

	for {
		ev := a.window.Event()
		a.picker.ListenEvents(ev)

		switch e := ev.(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			a.ops.Reset()
			gtx := layout.Context{
				Ops:         &a.ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, a.layoutCanvas),
		layout.Rigid(a.layoutStatus),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	if a.openBtn.Clicked(gtx) {
		a.openScene()
	}
	if a.zoomInBtn.Clicked(gtx) {
		a.zoomAtViewportCenter(toolbarZoomFactor)
	}
	if a.zoomOutBtn.Clicked(gtx) {
		a.zoomAtViewportCenter(1 / toolbarZoomFactor)
	}
	if a.fitBtn.Clicked(gtx) {
		a.ctrl.Fit()
	}
	if a.centerBtn.Clicked(gtx) {
		a.ctrl.Center()
	}
	if a.viewMenuBtn.Clicked(gtx) {
		a.viewMenu.ToggleVisibility(gtx)
	}

	iconBtn := func(btn *widget.Clickable, icon *widget.Icon, desc string) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if icon == nil {
				return layout.Dimensions{}
			}
			b := material.IconButton(a.matTheme, btn, icon, desc)
			b.Size = unit.Dp(20)
			b.Inset = layout.UniformInset(unit.Dp(6))
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, b.Layout)
		})
	}

	bar := layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		iconBtn(&a.openBtn, a.openIcon, "Open scene"),
		iconBtn(&a.zoomInBtn, a.zoomInIcon, "Zoom in"),
		iconBtn(&a.zoomOutBtn, a.zoomOutIcon, "Zoom out"),
		iconBtn(&a.fitBtn, a.fitIcon, "Fit scene"),
		iconBtn(&a.centerBtn, a.centerIcon, "Center scene"),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(a.matTheme, &a.viewMenuBtn, "View")
			btn.Inset = layout.UniformInset(unit.Dp(6))
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, btn.Layout)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.Body1(a.matTheme, a.sceneSummary())
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, lbl.Layout)
		}),
	)

	// The dropdown draws over whatever follows it.
	if a.viewMenu != nil {
		a.viewMenu.Layout(gtx, a.gvTheme)
	}

	return bar
}

func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	a.viewport = size

	// The initial fit needs a viewport size, so it runs on the first frame
	// rather than at construction.
	if !a.fitted {
		a.fitted = true
		a.ctrl.Fit()
	}

	a.handleKeys(gtx)

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	defer area.Pop()
	event.Op(gtx.Ops, a)

	a.ctrl.Update(gtx, a)

	paint.Fill(gtx.Ops, a.theme.Background())
	render.Grid(gtx, a.ctrl.View(), size, a.theme)
	render.RenderScene(gtx, a.ctrl, a.doc, a.theme)

	return layout.Dimensions{Size: size}
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	line := ""
	if n := len(a.logs); n > 0 {
		line = a.logs[n-1]
	}

	tx, ty := a.ctrl.Translation()
	state := fmt.Sprintf("scale %.2f  rot %.2f  at (%.0f, %.0f)",
		a.ctrl.Scale(), a.ctrl.Rotation(), tx, ty)

	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.Caption(a.matTheme, line)
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, lbl.Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			lbl := material.Caption(a.matTheme, state)
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, lbl.Layout)
		}),
	)
}

// handleKeys processes the viewer shortcuts: C center, F fit, R reset,
// T cycles the color theme. The rotation modifier is handled by the
// controller itself.
func (a *App) handleKeys(gtx layout.Context) {
	type binding struct {
		name   key.Name
		action func()
	}

	bindings := []binding{
		{"C", a.ctrl.Center},
		{"F", a.ctrl.Fit},
		{"R", a.ctrl.Reset},
		{"T", a.cycleTheme},
	}

	for _, b := range bindings {
		for {
			ev, ok := gtx.Event(key.Filter{Name: b.name})
			if !ok {
				break
			}
			if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
				b.action()
			}
		}
	}
}

func (a *App) buildViewMenu() *menu.DropdownMenu {
	entry := func(label string, action func()) menu.MenuOption {
		return menu.MenuOption{
			OnClicked: func() error {
				action()
				return nil
			},
			Layout: func(gtx menu.C, th *gvtheme.Theme) menu.D {
				lbl := material.Body1(th.Theme, label)
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		}
	}

	actions := []menu.MenuOption{
		entry("Center", a.ctrl.Center),
		entry("Fit", a.ctrl.Fit),
		entry("Reset view", a.ctrl.Reset),
	}

	themes := make([]menu.MenuOption, 0, len(render.ThemeNames))
	for _, th := range []render.Theme{render.ThemeDark, render.ThemeLight, render.ThemeNord} {
		th := th
		themes = append(themes, entry("Theme: "+render.ThemeNames[th], func() {
			a.theme = th
			a.Invalidate()
		}))
	}

	drop := menu.NewDropdownMenu([][]menu.MenuOption{actions, themes})
	drop.MaxWidth = unit.Dp(180)
	return drop
}

func (a *App) cycleTheme() {
	switch a.theme {
	case render.ThemeDark:
		a.theme = render.ThemeLight
	case render.ThemeLight:
		a.theme = render.ThemeNord
	default:
		a.theme = render.ThemeDark
	}
	a.Logf("[INFO] Theme: %s", render.ThemeNames[a.theme])
	a.Invalidate()
}

func (a *App) zoomAtViewportCenter(factor float64) {
	w, h := a.Size()
	a.ctrl.Zoom(factor, w/2, h/2)
	a.Invalidate()
}

// openScene shows the file picker and swaps in the chosen scene. The picker
// blocks, so it runs off the event loop and invalidates when done.
func (a *App) openScene() {
	go func() {
		file, err := a.picker.ChooseFile("scene")
		if err != nil {
			if err != explorer.ErrUserDecline {
				a.Logf("[ERROR] File picker failed: %v", err)
			}
			return
		}
		defer file.Close()

		name := "scene"
		if named, ok := file.(interface{ Name() string }); ok {
			name = named.Name()
		}

		parser, err := scene.NewParser()
		if err != nil {
			a.Logf("[ERROR] Failed to create parser: %v", err)
			return
		}
		doc, err := parser.Parse(file)
		if err != nil {
			a.Logf("[ERROR] Failed to parse %s: %v", name, err)
			return
		}

		a.doc = doc
		a.title = name
		a.setFocusFromScene()
		a.ctrl.Fit()
		a.Logf("[INFO] Loaded %s: %d shapes", name, len(doc.Shapes))
	}()
}

// setFocusFromScene points the controller's focus rectangle at the scene's
// bounding box.
func (a *App) setFocusFromScene() {
	bbox := a.doc.BoundingBox()
	if bbox.IsEmpty() {
		a.ctrl.SetFocus(view.Rect{})
		return
	}
	a.ctrl.SetFocus(view.Rect{
		X:      bbox.Min.X,
		Y:      bbox.Min.Y,
		Width:  bbox.Width(),
		Height: bbox.Height(),
	})
}

func (a *App) sceneSummary() string {
	title := a.doc.Title
	if title == "" {
		title = a.title
	}
	return fmt.Sprintf("%s (%d shapes)", title, len(a.doc.Shapes))
}

// Logf appends a timestamped line to the status log.
func (a *App) Logf(format string, args ...any) {
	prefix := time.Now().Format(time.Stamp)
	entry := fmt.Sprintf("[%s] %s", prefix, fmt.Sprintf(format, args...))
	a.logs = append(a.logs, entry)
	a.Invalidate()
}
