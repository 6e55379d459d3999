package formatter

import (
	"fmt"
	"strings"
	"time"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// ElapsedShare returns how much of the period from ref to due has passed at
// today, clamped to [0, 1].
func ElapsedShare(ref, due, today time.Time) float64 {
	total := due.Sub(ref).Hours()
	if total <= 0 {
		return 1
	}
	share := today.Sub(ref).Hours() / total
	if share < 0 {
		return 0
	}
	if share > 1 {
		return 1
	}
	return share
}

// RenderElapsed renders a bar like [████░░░░] 45% for the used share of a
// period. It turns yellow past two thirds and red past 90%.
func RenderElapsed(share float64, width int) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(share * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case share >= 0.9:
		style = StyleRed
	case share >= 2.0/3.0:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %s", style.Render(bar), Dim(fmt.Sprintf("%d%%", int(share*100))))
}
