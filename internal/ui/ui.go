package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nevisdale/coco3/internal/coco"
)

// P - pause
// R - one step and stop
// N - NMI
// I - IRQ
// C - next foreground color

type UI struct {
	machine *coco.Machine
	screen  *image.RGBA

	fg uint8
}

func New(machine *coco.Machine) *UI {
	return &UI{
		machine: machine,
		screen:  image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight)),
	}
}

var foregrounds = []color.RGBA{
	{0, 255, 0, 255},
	{255, 255, 0, 255},
	{0, 0, 255, 255},
	{255, 0, 0, 255},
	{255, 255, 255, 255},
	{0, 255, 255, 255},
	{255, 0, 255, 255},
	{255, 128, 0, 255},
}

func (ui *UI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		ui.fg = (ui.fg + 1) % uint8(len(foregrounds))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ui.machine.TogglePause()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ui.machine.OneStepAndStop()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		ui.machine.CPU().ScheduleNMI()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		ui.machine.CPU().ScheduleIRQ()
	}

	ui.machine.Tic()
	return nil
}

// renderScreen draws the video buffer as a 1bpp bitmap, 32 bytes per line.
func (ui *UI) renderScreen() {
	start := ui.machine.ScreenStart()
	fg := foregrounds[ui.fg]
	bg := color.RGBA{0, 0, 0, 255}

	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x += 8 {
			b := ui.machine.ReadPhysicalByte(start + uint32(y*screenWidth/8+x/8))
			for bit := 0; bit < 8; bit++ {
				if b&(0x80>>bit) != 0 {
					ui.screen.SetRGBA(x+bit, y, fg)
				} else {
					ui.screen.SetRGBA(x+bit, y, bg)
				}
			}
		}
	}
}

func (ui *UI) Draw(screen *ebiten.Image) {
	info := ui.machine.DebugInfo()

	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " STATE: %s", info.State)
	if info.Paused {
		infoStr.WriteString(" (paused)")
	}
	infoStr.WriteString("\n")
	fmt.Fprintf(&infoStr, " CYCLES: %d\n", info.Cycles)
	fmt.Fprintf(&infoStr, " CC: %s\n", info.FlagsString())
	fmt.Fprintf(&infoStr, " PC: $%04X  DP: $%02X\n", info.PC, info.DP)
	fmt.Fprintf(&infoStr, " A: $%02X  B: $%02X  D: $%04X\n", info.A, info.B, info.D())
	fmt.Fprintf(&infoStr, " X: $%04X  Y: $%04X\n", info.X, info.Y)
	fmt.Fprintf(&infoStr, " U: $%04X  S: $%04X\n", info.U, info.S)
	fmt.Fprintf(&infoStr, " MMU: %t  TASK: %t\n", info.MMU, info.Task)
	fmt.Fprintf(&infoStr, " ALLRAM: %t  ROM: %d\n", info.AllRAM, info.ROMMode)
	if info.Err != nil {
		fmt.Fprintf(&infoStr, " ERR: %s\n", info.Err)
	}
	infoStr.WriteString("\n")

	to := info.PC + disasmBytes
	if to < info.PC {
		to = 0xffff
	}
	disasm := ui.machine.Disassemble(info.PC, to)
	lines := 0
	for off := 0; off <= disasmBytes && lines < disasmLines; off++ {
		addr := info.PC + uint16(off)
		if addr < info.PC {
			break
		}
		text, ok := disasm[addr]
		if !ok {
			continue
		}
		marker := " "
		if lines == 0 {
			marker = "*"
		}
		infoStr.WriteString(marker + text + "\n")
		lines++
	}

	debugScreenOffsetX := float32(screenWidth * screenScale)
	vector.DrawFilledRect(screen, debugScreenOffsetX, 0, debugScreenWidth, debugScreenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(debugScreenOffsetX), 0)

	ui.renderScreen()
	img := ebiten.NewImageFromImage(ui.screen)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(screenScale, screenScale)
	screen.DrawImage(img, op)
}

const (
	screenScale  = 2
	screenWidth  = 256
	screenHeight = 192

	debugScreenWidth  = 286
	debugScreenHeight = screenHeight * screenScale

	disasmLines = 12
	disasmBytes = disasmLines * 5
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return screenWidth*screenScale + debugScreenWidth, screenHeight * screenScale
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	screenSizeX, screenSizeY := screenWidth*screenScale+debugScreenWidth, screenHeight*screenScale
	screenSizeX *= 2
	screenSizeY *= 2
	ebiten.SetWindowSize(screenSizeX, screenSizeY)
	ebiten.SetWindowTitle("coco3")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
