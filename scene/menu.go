package scene

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/common"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

var (
	gameOverBackground = color.RGBA{R: 0x1a, G: 0x0e, B: 0x12, A: 0xff}
	winBackground      = color.RGBA{R: 0x0e, G: 0x1f, B: 0x14, A: 0xff}
)

// MenuScene is the end screen shown for GameOver and Win. Its two buttons
// reload Game or quit.
type MenuScene struct {
	kind    common.SceneName
	ui      *ebitenui.UI
	logger  *zap.Logger
	next    common.SceneName
	hasNext bool
	quit    bool
}

func NewGameOverScreen(summary string, logger *zap.Logger) *MenuScene {
	return newMenuScene(common.SceneGameOver, "Game Over", summary, logger)
}

func NewWinScreen(summary string, logger *zap.Logger) *MenuScene {
	return newMenuScene(common.SceneWin, "You Win!", summary, logger)
}

func newMenuScene(kind common.SceneName, title, summary string, logger *zap.Logger) *MenuScene {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &MenuScene{kind: kind, logger: logger}
	m.ui = newMenuUI(title, summary, m.PlayAgain, m.Quit)
	return m
}

// PlayAgain loads a fresh Game scene once the current update finishes.
func (m *MenuScene) PlayAgain() {
	m.next = common.SceneGame
	m.hasNext = true
}

// Quit ends the process from the next Update.
func (m *MenuScene) Quit() {
	m.logger.Info("quit")
	m.quit = true
}

func (m *MenuScene) Kind() common.SceneName {
	return m.kind
}

func (m *MenuScene) Update() error {
	if m.ui != nil {
		m.ui.Update()
	}
	if m.quit {
		return ebiten.Termination
	}
	return nil
}

func (m *MenuScene) NextScene() (common.SceneName, bool) {
	return m.next, m.hasNext
}

func (m *MenuScene) Draw(screen *ebiten.Image) {
	if m.kind == common.SceneWin {
		screen.Fill(winBackground)
	} else {
		screen.Fill(gameOverBackground)
	}
	if m.ui != nil {
		m.ui.Draw(screen)
	}
}

func (m *MenuScene) Close() error {
	return nil
}

// newMenuUI builds a centred panel with a title, an optional summary line
// and the two buttons. Buttons use coloured nine-slices so no theme fonts
// are needed.
func newMenuUI(title, summary string, onPlayAgain, onQuit func()) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, white),
		widget.TextOpts.WidgetOpts(centered),
	))
	if summary != "" {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(summary, &face, color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}),
			widget.TextOpts.WidgetOpts(centered),
		))
	}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnIdle}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered, widget.WidgetOpts.MinSize(160, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}
	panel.AddChild(button("Play Again", onPlayAgain))
	panel.AddChild(button("Quit", onQuit))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
