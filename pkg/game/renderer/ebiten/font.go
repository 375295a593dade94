package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the Go fonts bundled with x/image
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("mono font: %w", err)
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("sans font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("bold font: %w", err)
	}
	return nil
}

func (e *EbitenRenderer) fontsLoaded() bool {
	return e.monoFontSource != nil && e.sansFontSource != nil && e.sansBoldFontSource != nil
}

// getMonoFontFace returns the monospace face used for the board, console and prompt
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   baseFontSize,
		}
	}
	return e.cachedMonoFace
}

// getSansFontFace returns the sans-serif face for status lights and tool buttons
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   baseFontSize,
		}
	}
	return e.cachedSansFace
}

// getSansBoldTitleFontFace returns a bold face 2pt larger for titles
func (e *EbitenRenderer) getSansBoldTitleFontFace() *text.GoTextFace {
	if e.cachedSansBoldTitleFace == nil {
		e.cachedSansBoldTitleFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   baseFontSize + 2,
		}
	}
	return e.cachedSansBoldTitleFace
}

// cellWidth is the advance of one Go Mono glyph, which is 0.6em for every glyph
func cellWidth() float64 {
	return baseFontSize * monoAdvance
}

// columns returns how many monospace glyphs fit in width pixels
func columns(width int) int {
	return max(int(float64(width)/cellWidth()), 1)
}
