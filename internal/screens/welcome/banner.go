package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/hawarnekar/pyquiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗ ██████╗ ██╗   ██╗██╗███████╗
 ██╔══██╗╚██╗ ██╔╝██╔═══██╗██║   ██║██║╚══███╔╝
 ██████╔╝ ╚████╔╝ ██║   ██║██║   ██║██║  ███╔╝
 ██╔═══╝   ╚██╔╝  ██║▄▄ ██║██║   ██║██║ ███╔╝
 ██║        ██║   ╚██████╔╝╚██████╔╝██║███████╗
 ╚═╝        ╚═╝    ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "P Y Q U I Z"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 50

// RenderBanner returns the banner in the primary color, or the compact
// form on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
