package obj

import (
	"errors"
	"fmt"

	"github.com/milk9111/glitchknight/common"
)

var ErrEmptyArena = errors.New("obj: arena has no rows")

// Arena layout cells.
const (
	CellEmpty  = '.'
	CellSolid  = '#'
	CellHazard = '^'
	CellPlayer = 'P'
	CellEnemy  = 'E'
)

// Arena is a fighting room built from a character grid. One cell is one
// world unit; row 0 of the layout is the top of the room and world y grows
// upward from the bottom row.
type Arena struct {
	Width  int
	Height int

	// Solids are merged runs of solid cells.
	Solids  []common.Rect
	Hazards []common.Rect

	PlayerSpawn common.Vec2
	EnemySpawns []common.Vec2
}

// ParseArena reads a layout. Rows shorter than the widest are padded with
// empty cells. Spawn positions sit on the center of their cell.
func ParseArena(rows []string) (*Arena, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyArena
	}
	a := &Arena{Height: len(rows)}
	for _, r := range rows {
		if len(r) > a.Width {
			a.Width = len(r)
		}
	}
	grid := make([]byte, a.Width*a.Height)
	havePlayer := false
	for row, line := range rows {
		y := a.Height - 1 - row
		for x := 0; x < a.Width; x++ {
			c := byte(CellEmpty)
			if x < len(line) {
				c = line[x]
			}
			switch c {
			case CellEmpty, ' ':
				c = CellEmpty
			case CellSolid, CellHazard:
			case CellPlayer:
				if havePlayer {
					return nil, fmt.Errorf("obj: arena row %d: second player spawn", row)
				}
				havePlayer = true
				a.PlayerSpawn = common.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
				c = CellEmpty
			case CellEnemy:
				a.EnemySpawns = append(a.EnemySpawns, common.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5})
				c = CellEmpty
			default:
				return nil, fmt.Errorf("obj: arena row %d col %d: unknown cell %q", row, x, c)
			}
			grid[y*a.Width+x] = c
		}
	}
	a.Solids = mergeCells(grid, a.Width, a.Height, CellSolid)
	a.Hazards = mergeCells(grid, a.Width, a.Height, CellHazard)
	return a, nil
}

// mergeCells greedily grows rectangles of kind, first along x then along y,
// so the physics space holds few large boxes instead of one per cell.
func mergeCells(grid []byte, width, height int, kind byte) []common.Rect {
	processed := make([]bool, len(grid))
	var out []common.Rect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if processed[idx] || grid[idx] != kind {
				continue
			}
			w := 1
			for x+w < width {
				i := y*width + x + w
				if processed[i] || grid[i] != kind {
					break
				}
				w++
			}
			h := 1
		grow:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					i := (y+h)*width + xi
					if processed[i] || grid[i] != kind {
						break grow
					}
				}
				h++
			}
			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
			out = append(out, common.Rect{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)})
		}
	}
	return out
}

// Bounds returns the room rectangle.
func (a *Arena) Bounds() common.Rect {
	if a == nil {
		return common.Rect{}
	}
	return common.Rect{Width: float64(a.Width), Height: float64(a.Height)}
}
