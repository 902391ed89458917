package graphics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextAlignment controls horizontal placement of text within its bounds.
type TextAlignment int

const (
	TextAlignStart TextAlignment = iota
	TextAlignCenter
	TextAlignEnd
)

func (a TextAlignment) String() string {
	switch a {
	case TextAlignCenter:
		return "center"
	case TextAlignEnd:
		return "end"
	default:
		return "start"
	}
}

// LineBreaking controls what happens when text exceeds its max width.
type LineBreaking int

const (
	LineBreakClip LineBreaking = iota
	LineBreakWordWrap
	LineBreakOverflow
)

func (l LineBreaking) String() string {
	switch l {
	case LineBreakWordWrap:
		return "wordWrap"
	case LineBreakOverflow:
		return "overflow"
	default:
		return "clip"
	}
}

// textFace is the fixed-metric face used for headless measurement.
var textFace font.Face = basicfont.Face7x13

// lineHeight is the logical height of one text line for the fixed face.
const lineHeight = 13.0

// MeasureText returns the size of a single line of text.
func MeasureText(text string) Size {
	advance := font.MeasureString(textFace, text)
	return Size{Width: float64(advance >> 6), Height: lineHeight}
}

// MeasureParagraph returns the size of text wrapped to maxWidth according to
// the line breaking mode. Clip and overflow modes measure a single line;
// word wrap breaks greedily on spaces.
func MeasureParagraph(text string, maxWidth float64, mode LineBreaking) Size {
	if mode != LineBreakWordWrap || maxWidth <= 0 {
		size := MeasureText(text)
		if mode == LineBreakClip && size.Width > maxWidth && maxWidth > 0 {
			size.Width = maxWidth
		}
		return size
	}
	lines := wrapText(text, maxWidth)
	width := 0.0
	for _, line := range lines {
		if w := MeasureText(line).Width; w > width {
			width = w
		}
	}
	return Size{Width: width, Height: float64(len(lines)) * lineHeight}
}

// wrapText breaks text greedily on spaces so each line fits maxWidth.
func wrapText(text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if MeasureText(candidate).Width > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
