// Package view draws a tesseract.App in an Ebitengine window.
package view

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/tesseract"
	"github.com/solarlune/tesseract/colors"
	"golang.org/x/image/font/basicfont"
)

// ErrQuit is returned from Game.Update when the user asks to quit; Run treats it as a clean exit.
var ErrQuit = errors.New("quit")

const helpText = "F1: Toggle this text\nSpace: Pause rotation\nR: Reset\nF4: Toggle fullscreen\nF12: Screenshot\nESC: Quit"

// Game adapts a tesseract.App to ebiten.Game.
type Game struct {
	App           *tesseract.App
	Background    tesseract.Color
	DrawDebugText bool
	ScreenshotDir string

	Now func() time.Time // Clock for the animation; defaults to time.Now

	faceImage      *ebiten.Image
	vertices       []ebiten.Vertex
	indices        []uint16
	takeScreenshot bool
}

// NewGame creates a new Game drawing app.
func NewGame(app *tesseract.App) *Game {
	return &Game{
		App:           app,
		Background:    colors.Slate(),
		DrawDebugText: true,
		ScreenshotDir: ".",
		Now:           time.Now,
	}
}

func (g *Game) Update() error {

	var err error

	// Quit if we press Escape.
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		err = ErrQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.DrawDebugText = !g.DrawDebugText
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.App.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.App.Reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.takeScreenshot = true
	}

	g.App.SetMouse(ebiten.CursorPosition())

	if updateErr := g.App.Update(g.Now()); updateErr != nil {
		return updateErr
	}

	return err

}

func (g *Game) Draw(screen *ebiten.Image) {

	screen.Fill(g.Background)

	frame := g.App.Frame()

	g.drawFaces(screen, frame.Faces)

	for _, seg := range frame.Segments {
		vector.StrokeLine(screen,
			float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1),
			float32(g.App.Config.LineWidth), seg.Color, true)
	}

	if g.takeScreenshot {
		g.takeScreenshot = false
		if path, err := g.saveScreenshot(screen); err != nil {
			log.Errf("Screenshot failed: %v", err)
		} else {
			log.Infof("Screenshot saved to %s", path)
		}
	}

	if g.DrawDebugText {
		txt := fmt.Sprintf("FPS: %.1f\nAngle: %.2f rad\nEdges: %d\n\n%s", ebiten.ActualFPS(), frame.Angle, len(frame.Segments), helpText)
		if g.App.Paused() {
			txt += "\n\n[paused]"
		}
		text.Draw(screen, txt, basicfont.Face7x13, 8, 16, colors.LightGray())
	}

}

// drawFaces fills the given faces as translucent triangles pairs, in order.
func (g *Game) drawFaces(screen *ebiten.Image, faces []tesseract.Face) {

	if len(faces) == 0 {
		return
	}

	if g.faceImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.faceImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]

	for _, face := range faces {

		// ebiten expects premultiplied vertex colors.
		a := face.Color.A
		r, gr, b := face.Color.R*a, face.Color.G*a, face.Color.B*a

		base := uint16(len(g.vertices))
		for _, p := range face.Points {
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX:   float32(p[0]),
				DstY:   float32(p[1]),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: gr,
				ColorB: b,
				ColorA: a,
			})
		}
		g.indices = append(g.indices, base, base+1, base+2, base, base+2, base+3)

	}

	screen.DrawTriangles(g.vertices, g.indices, g.faceImage, nil)

}

func (g *Game) saveScreenshot(screen *ebiten.Image) (string, error) {
	path := filepath.Join(g.ScreenshotDir, "tesseract-"+g.Now().Format("2006-01-02-150405")+".png")
	return path, savePNG(path, screen)
}

// savePNG writes img to path, reporting a failed Close as well as a failed encode.
func savePNG(path string, img image.Image) (err error) {

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return png.Encode(f, img)

}

func (g *Game) Layout(w, h int) (int, int) {
	// The viewport always matches the window.
	g.App.Resize(w, h)
	return w, h
}

// Run opens a window and runs app until the window is closed or the user quits, then closes app.
func Run(app *tesseract.App, title string) error {

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(app.Config.Width, app.Config.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.Config.TPS)

	game := NewGame(app)

	err := ebiten.RunGame(game)

	if closeErr := app.Close(); closeErr != nil && !errors.Is(closeErr, tesseract.ErrAppClosed) {
		log.Warnf("Closing app: %v", closeErr)
	}

	if errors.Is(err, ErrQuit) {
		return nil
	}

	return err

}
