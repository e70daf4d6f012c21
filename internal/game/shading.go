package game

// Wall glyphs from nearest to farthest
const (
	ShadeFull   = '█'
	ShadeDark   = '▓'
	ShadeMedium = '▒'
	ShadeLight  = '░'
	ShadeNone   = ' '
)

// Column is the vertical profile of one screen column
type Column struct {
	CeilingRow int // Rows y <= CeilingRow are blank
	FloorRow   int // Rows CeilingRow < y <= FloorRow are wall, the rest floor
	Wall       rune
	Glyphs     []rune
}

// Shader converts ray hits into glyph columns
type Shader struct {
	Depth float64
}

// NewShader creates a shader for the given render depth
func NewShader(depth float64) *Shader {
	return &Shader{Depth: depth}
}

// Shade builds a fresh column of height glyphs for hit
func (s *Shader) Shade(hit RayHit, height int) Column {
	return s.ShadeInto(nil, hit, height)
}

// ShadeInto is Shade writing into dst, which is reallocated if too small
func (s *Shader) ShadeInto(dst []rune, hit RayHit, height int) Column {
	if height < 0 {
		height = 0
	}
	if cap(dst) < height {
		dst = make([]rune, height)
	}
	dst = dst[:height]

	ceiling, floor := ProjectRows(hit.Distance, height)
	wall := WallGlyph(hit.Distance, s.Depth)
	if hit.Boundary {
		wall = ShadeNone
	}

	for y := 0; y < height; y++ {
		switch {
		case y <= ceiling:
			dst[y] = ShadeNone
		case y <= floor:
			dst[y] = wall
		default:
			dst[y] = FloorGlyph(y, height)
		}
	}

	return Column{
		CeilingRow: ceiling,
		FloorRow:   floor,
		Wall:       wall,
		Glyphs:     dst,
	}
}

// ProjectRows returns the ceiling and floor rows for a wall at distance.
// A non-positive distance means the wall fills the column. The ceiling row
// never goes below -1, which keeps the int conversion in range.
func ProjectRows(distance float64, height int) (ceiling, floor int) {
	h := float64(height)
	if !(distance > 0) {
		return -1, height + 1
	}

	c := h/2 - h/distance
	if c < -1 {
		c = -1
	}
	ceiling = int(c)
	return ceiling, height - ceiling
}

// WallGlyph picks the wall tier for distance within depth
func WallGlyph(distance, depth float64) rune {
	switch {
	case distance <= depth/4:
		return ShadeFull
	case distance < depth/3:
		return ShadeDark
	case distance < depth/2:
		return ShadeMedium
	case distance < depth:
		return ShadeLight
	default:
		return ShadeNone
	}
}

// FloorGlyph picks the floor glyph for row y. Rows near the bottom of the
// screen are densest; the gradient ignores the ray distance.
func FloorGlyph(y, height int) rune {
	if height <= 0 {
		return ShadeNone
	}
	half := float64(height) / 2
	b := 1.0 - (float64(y)-half)/half
	switch {
	case b < 0.25:
		return '#'
	case b < 0.5:
		return 'x'
	case b < 0.75:
		return '.'
	case b < 0.9:
		return '-'
	default:
		return ' '
	}
}
