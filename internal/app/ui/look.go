package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"fanmenu/internal/config"
	"fanmenu/internal/menu"
)

// hubInset keeps the hub off the canvas edge it expands away from
const hubInset = 1.0

// LookFromConfig translates the menu section of the configuration
func LookFromConfig(cfg *config.Config) (menu.Look, error) {
	look := menu.DefaultLook()

	direction, err := menu.ParseDirection(cfg.Menu.Direction)
	if err != nil {
		return look, err
	}

	side, err := menu.ParseTitleSide(cfg.Menu.TitleSide)
	if err != nil {
		return look, err
	}

	expanding, err := menu.ParseAnimationOptions(cfg.Menu.ExpandingAnimations)
	if err != nil {
		return look, fmt.Errorf("expanding_animations: %w", err)
	}

	folding, err := menu.ParseAnimationOptions(cfg.Menu.FoldingAnimations)
	if err != nil {
		return look, fmt.Errorf("folding_animations: %w", err)
	}

	look.Direction = direction
	look.ItemMargin = cfg.Menu.ItemMargin
	look.AnimationDuration = cfg.Menu.AnimationDuration
	look.FoldRatio = cfg.Menu.FoldRatio
	look.TitleSide = side
	look.TitleTapEnabled = cfg.Menu.TitleTapEnabled
	look.ScrimColor = cfg.Menu.Scrim.Color
	look.ScrimAlpha = cfg.Menu.Scrim.Alpha
	look.Expanding = expanding
	look.Folding = folding
	look.Bounce = menu.Bounce{Far: cfg.Menu.Bounce.Far, Near: cfg.Menu.Bounce.Near, Backward: cfg.Menu.Bounce.Backward}
	look.SoundsEnabled = cfg.Sounds.Enabled
	look.MeasureTitle = measureTitle

	return look, nil
}

// measureTitle sizes a title in terminal cells
func measureTitle(text string) menu.Size {
	return menu.Size{Width: float64(lipgloss.Width(text)), Height: float64(max(lipgloss.Height(text), 1))}
}

// ItemsFromConfig creates the configured items; onTap receives the tapped item's title
func ItemsFromConfig(cfg *config.Config, onTap func(title string)) ([]*menu.Item, error) {
	items := make([]*menu.Item, 0, len(cfg.Items))

	for i, ic := range cfg.Items {
		color := ic.TitleColor
		if color == "" {
			color = cfg.Menu.TitleColor
		}

		title := ic.Title

		item, err := menu.NewItem(menu.ItemConfig{
			Size:       menu.Size{Width: ic.Width, Height: ic.Height},
			Image:      NewGlyph(ic.Glyph, 0, 0),
			Title:      title,
			TitleColor: color,
			OnTap: func() {
				if onTap != nil {
					onTap(title)
				}
			},
		})
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		item.SetTitleMargin(cfg.Menu.TitleMargin)
		items = append(items, item)
	}

	return items, nil
}

// HubFrame places the hub on the canvas edge opposite to the expanding direction
func HubFrame(direction menu.Direction, bounds menu.Rect, hub menu.Size) menu.Rect {
	var center menu.Point

	switch direction {
	case menu.DirectionBottom:
		center = menu.Point{X: bounds.Center().X, Y: bounds.Origin.Y + hubInset + hub.Height/2}
	case menu.DirectionLeft:
		center = menu.Point{X: bounds.Origin.X + bounds.Size.Width - hubInset - hub.Width/2, Y: bounds.Center().Y}
	default:
		center = menu.Point{X: bounds.Center().X, Y: bounds.Origin.Y + bounds.Size.Height - hubInset - hub.Height/2}
	}

	return menu.RectAround(center, hub)
}
