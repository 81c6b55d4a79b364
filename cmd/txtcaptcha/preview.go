package main

import "strings"

import "github.com/gdamore/tcell/v2"

// Shows the art centered on a full terminal screen until a key is
// pressed. The terminal is restored before returning.
func previewArt(art string) error {
	screen, err := tcell.NewScreen()
	if err != nil { return err }
	if err := screen.Init(); err != nil { return err }
	defer screen.Fini()
	return runPreview(screen, art)
}

func runPreview(screen tcell.Screen, art string) error {
	drawPreview(screen, art)
	for {
		switch screen.PollEvent().(type) {
		case nil:
			return nil // screen finalized
		case *tcell.EventResize:
			screen.Sync()
			drawPreview(screen, art)
		case *tcell.EventKey:
			return nil
		}
	}
}

func drawPreview(screen tcell.Screen, art string) {
	screen.Clear()
	width, height := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, cell := range layoutPreview(art, width, height) {
		screen.SetContent(cell.x, cell.y, cell.symbol, nil, style)
	}

	hint := "press any key to exit"
	hintStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, codePoint := range []rune(hint) {
		if i >= width { break }
		screen.SetContent(i, height - 1, codePoint, nil, hintStyle)
	}
	screen.Show()
}

type previewCell struct {
	x, y   int
	symbol rune
}

// Returns the non-space cells of the art centered on a screen of the
// given size, clipping whatever doesn't fit. The last screen row is
// reserved for the exit hint.
func layoutPreview(art string, width, height int) []previewCell {
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	if art == "" { lines = nil }
	artWidth := 0
	for _, line := range lines {
		artWidth = max(artWidth, len([]rune(line)))
	}

	usableHeight := height - 1
	offsetX := max((width - artWidth)/2, 0)
	offsetY := max((usableHeight - len(lines))/2, 0)
	var cells []previewCell
	for row, line := range lines {
		y := offsetY + row
		if y >= usableHeight { break }
		for column, symbol := range []rune(line) {
			x := offsetX + column
			if x >= width { break }
			if symbol == ' ' { continue }
			cells = append(cells, previewCell{ x: x, y: y, symbol: symbol })
		}
	}
	return cells
}
