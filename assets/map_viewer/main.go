package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"sort"

	"consolefps/internal/config"
	"consolefps/internal/game"
	"consolefps/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300

	fanRays = 32
)

type mapInfo struct {
	Key  string
	Data *world.MapData
	Err  error
}

type viewer struct {
	cfg      *config.Config
	caster   *game.Caster
	maps     []mapInfo
	mapIndex int
	heading  float64
	lastErr  string
}

// rayEnd is where one ray of the preview fan stopped, in world units
type rayEnd struct {
	X, Y     float64
	Distance float64
	Capped   bool
	Boundary bool
}

func main() {
	ensureRuntimeCWD()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
		cfg = config.DefaultConfig()
	}

	maps := loadMaps(cfg, filepath.Join("assets", "maps"))

	v := &viewer{
		cfg:     cfg,
		caster:  game.NewCaster(cfg.GetViewDistance(), cfg.Camera.StepSize, cfg.Camera.BoundaryThreshold),
		maps:    maps,
		heading: cfg.World.StartAngle,
	}
	if len(maps) == 0 {
		v.lastErr = "no maps loaded"
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("consolefps Map Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if len(v.maps) > 0 {
			v.mapIndex = (v.mapIndex + 1) % len(v.maps)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if len(v.maps) > 0 {
			v.mapIndex--
			if v.mapIndex < 0 {
				v.mapIndex = len(v.maps) - 1
			}
		}
	}

	// Q/E turn the preview fan at the in-game rotation speed
	turn := turnStep(v.cfg, ebiten.TPS())
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		v.heading -= turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		v.heading += turn
	}
	return nil
}

// turnStep is the heading change per update at tps updates per second
func turnStep(cfg *config.Config, tps int) float64 {
	if tps <= 0 {
		return 0
	}
	return cfg.GetRotSpeed() / float64(tps)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	if len(v.maps) == 0 {
		msg := v.lastErr
		if msg == "" {
			msg = "no maps loaded"
		}
		ebitenutil.DebugPrintAt(screen, msg, 16, 16)
		return
	}

	m := v.maps[v.mapIndex]
	if m.Err != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("map %s failed to load: %v", m.Key, m.Err), 16, 16)
		return
	}

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	mapAreaX := padding
	mapAreaY := padding
	sidebarX := mapAreaX + mapAreaW + padding
	sidebarY := padding

	fan := castFan(m.Data.Grid, v.caster, m.Data.StartX, m.Data.StartY, v.heading, v.cfg.GetCameraFOV(), fanRays)

	drawMapPanel(screen, m, fan, mapAreaX, mapAreaY, mapAreaW, mapAreaH)
	drawSidebar(screen, m, fan, v.heading, sidebarX, sidebarY, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

// castFan casts rays evenly across fov around heading from (x, y)
func castFan(grid *world.Grid, caster *game.Caster, x, y, heading, fov float64, rays int) []rayEnd {
	ends := make([]rayEnd, 0, rays)
	for i := 0; i < rays; i++ {
		angle := game.RayAngle(heading, fov, i, rays)
		hit := caster.Cast(grid, x, y, angle)
		dx, dy := game.NewObserver(x, y, angle, 0).GetViewDirection()
		ends = append(ends, rayEnd{
			X:        x + dx*hit.Distance,
			Y:        y + dy*hit.Distance,
			Distance: hit.Distance,
			Capped:   hit.Capped,
			Boundary: hit.Boundary,
		})
	}
	return ends
}

// toScreen maps world (x, y) to pixels. X runs down the rows, Y across the columns.
func toScreen(originX, originY, tileSize int, x, y float64) (float32, float32) {
	return float32(float64(originX) + y*float64(tileSize)), float32(float64(originY) + x*float64(tileSize))
}

func drawMapPanel(screen *ebiten.Image, m mapInfo, fan []rayEnd, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	if m.Data == nil || m.Data.Grid == nil {
		ebitenutil.DebugPrintAt(screen, "map data missing", x+12, y+12)
		return
	}

	grid := m.Data.Grid
	worldW := grid.Width()
	worldH := grid.Height()

	tileSize := w / worldW
	if alt := h / worldH; alt < tileSize {
		tileSize = alt
	}
	if tileSize < 2 {
		tileSize = 2
	}

	originX := x + (w-worldW*tileSize)/2
	originY := y + (h-worldH*tileSize)/2

	for row := 0; row < worldH; row++ {
		for col := 0; col < worldW; col++ {
			cell, _ := grid.CellAt(col, row)
			drawX := originX + col*tileSize
			drawY := originY + row*tileSize
			vector.DrawFilledRect(screen, float32(drawX), float32(drawY), float32(tileSize), float32(tileSize), getMapTileColor(cell), false)
		}
	}

	drawFan(screen, m, fan, originX, originY, tileSize)
	drawMapHeader(screen, m, x, y)
}

func drawFan(screen *ebiten.Image, m mapInfo, fan []rayEnd, originX, originY, tileSize int) {
	sx, sy := toScreen(originX, originY, tileSize, m.Data.StartX, m.Data.StartY)
	for _, end := range fan {
		clr := color.RGBA{240, 200, 80, 160}
		switch {
		case end.Boundary:
			clr = color.RGBA{255, 255, 255, 220}
		case end.Capped:
			clr = color.RGBA{120, 120, 140, 120}
		}
		ex, ey := toScreen(originX, originY, tileSize, end.X, end.Y)
		vector.StrokeLine(screen, sx, sy, ex, ey, 1, clr, true)
	}

	// Start position
	radius := float32(tileSize) * 0.35
	vector.DrawFilledCircle(screen, sx, sy, radius, color.RGBA{50, 200, 255, 255}, true)
	vector.StrokeCircle(screen, sx, sy, radius, 1, color.RGBA{255, 255, 255, 255}, true)
}

func drawMapHeader(screen *ebiten.Image, m mapInfo, x, y int) {
	ebitenutil.DebugPrintAt(screen, m.Key, x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) to switch maps, Q/E to turn, Esc to quit", x+12, y+24)
}

func drawSidebar(screen *ebiten.Image, m mapInfo, fan []rayEnd, heading float64, x, y, w, h int) {
	drawFilledRect(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})
	drawRectBorder(screen, x, y, w, h, 2, color.RGBA{70, 70, 90, 255})

	row := y + 12
	if m.Data == nil {
		return
	}

	grid := m.Data.Grid
	nearest, farthest, capped := fanStats(fan)
	stats := []string{
		fmt.Sprintf("Tiles: %dx%d", grid.Width(), grid.Height()),
		fmt.Sprintf("Walls: %d", countWalls(grid)),
		fmt.Sprintf("Start: X=%.2f Y=%.2f", m.Data.StartX, m.Data.StartY),
		fmt.Sprintf("Heading: %.2f", heading),
		fmt.Sprintf("Rays: %d (%d capped)", len(fan), capped),
		fmt.Sprintf("Nearest wall: %.2f", nearest),
		fmt.Sprintf("Farthest wall: %.2f", farthest),
	}
	for _, line := range stats {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}

	row += 8
	ebitenutil.DebugPrintAt(screen, "Markers:", x+12, row)
	row += 16
	ebitenutil.DebugPrintAt(screen, "Cyan: start  Yellow: rays", x+12, row)
	row += 16
	ebitenutil.DebugPrintAt(screen, "White: corner  Grey: capped", x+12, row)
}

// fanStats returns the nearest and farthest wall hit and the number of capped rays
func fanStats(fan []rayEnd) (nearest, farthest float64, capped int) {
	first := true
	for _, end := range fan {
		if end.Capped {
			capped++
			continue
		}
		if first || end.Distance < nearest {
			nearest = end.Distance
		}
		if first || end.Distance > farthest {
			farthest = end.Distance
		}
		first = false
	}
	return nearest, farthest, capped
}

func countWalls(grid *world.Grid) int {
	walls := 0
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if cell, _ := grid.CellAt(col, row); cell == world.CellWall {
				walls++
			}
		}
	}
	return walls
}

func getMapTileColor(cell world.Cell) color.RGBA {
	if cell == world.CellWall {
		return color.RGBA{50, 50, 60, 255}
	}
	return color.RGBA{90, 80, 60, 255}
}

// loadMaps returns the built-in level followed by every .map file in dir, sorted by name
func loadMaps(cfg *config.Config, dir string) []mapInfo {
	maps := []mapInfo{{
		Key: "built-in",
		Data: &world.MapData{
			Grid:     world.NewDefaultGrid(),
			StartX:   cfg.World.StartX,
			StartY:   cfg.World.StartY,
			HasStart: true,
		},
	}}

	paths, err := filepath.Glob(filepath.Join(dir, "*.map"))
	if err != nil {
		log.Printf("Warning: failed to list maps: %v", err)
		return maps
	}
	sort.Strings(paths)

	loader := world.NewMapLoader()
	for _, path := range paths {
		data, err := loader.LoadMap(path)
		if err == nil && !data.HasStart {
			// Without a marker the level is previewed from its centre
			data.StartX = float64(data.Grid.Height()) / 2
			data.StartY = float64(data.Grid.Width()) / 2
		}
		maps = append(maps, mapInfo{
			Key:  filepath.Base(path),
			Data: data,
			Err:  err,
		})
	}

	return maps
}

func drawFilledRect(screen *ebiten.Image, x, y, w, h int, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func drawRectBorder(screen *ebiten.Image, x, y, w, h, thickness int, clr color.RGBA) {
	t := float32(thickness)
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy+fh-t, fw, t, clr, false)
	vector.DrawFilledRect(screen, fx, fy, t, fh, clr, false)
	vector.DrawFilledRect(screen, fx+fw-t, fy, t, fh, clr, false)
}

func ensureRuntimeCWD() {
	if _, err := os.Stat("config.yaml"); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(exe)
	_ = os.Chdir(execDir)
}
