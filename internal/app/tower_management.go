// internal/app/tower_management.go
package app

import (
	"math"

	"github.com/amirh0ss3in/TD0/internal/component"
	"github.com/amirh0ss3in/TD0/internal/defs"
	"github.com/amirh0ss3in/TD0/internal/event"
	"github.com/amirh0ss3in/TD0/pkg/gridmap"
)

// ActionResult is the reason code handed back for every player intent.
// Rejections leave the simulation untouched; they are feedback, not
// errors.
type ActionResult int

const (
	ActionOK ActionResult = iota
	ReasonInsufficientFunds
	ReasonNotBuildable
	ReasonCellOccupied
	ReasonNoTowerSelected
	ReasonMaxLevel
	ReasonWrongPhase
)

func (r ActionResult) String() string {
	switch r {
	case ActionOK:
		return "ok"
	case ReasonInsufficientFunds:
		return "insufficient funds"
	case ReasonNotBuildable:
		return "not a buildable cell"
	case ReasonCellOccupied:
		return "cell already occupied"
	case ReasonNoTowerSelected:
		return "no tower selected"
	case ReasonMaxLevel:
		return "already at max level"
	case ReasonWrongPhase:
		return "not allowed in this phase"
	}
	return "unknown"
}

// Denied dispatches the rejection for UI/audio feedback and passes the
// reason through.
func Denied(r ActionResult, d *event.Dispatcher) ActionResult {
	d.Dispatch(event.Event{Type: event.ActionDenied, Data: r})
	return r
}

// PlaceTower builds a tower of the given kind on a cell. Towers go on
// wall cells only, one per cell, and cost the kind's level-0 price.
func (g *Game) PlaceTower(kind defs.TowerKind, cell gridmap.Cell) ActionResult {
	if !cell.InBounds() || !g.Grid.Walls[cell.X][cell.Y] {
		return Denied(ReasonNotBuildable, g.Dispatcher)
	}
	if g.Towers.At(cell) != nil {
		return Denied(ReasonCellOccupied, g.Dispatcher)
	}
	cost := defs.TowerLibrary[kind].Levels[0].Cost
	if g.Player.Gold < cost {
		return Denied(ReasonInsufficientFunds, g.Dispatcher)
	}

	g.Player.Gold -= cost
	g.Towers[cell.X][cell.Y] = component.Tower{
		Active:     true,
		Kind:       kind,
		Cell:       cell,
		Level:      0,
		TargetSlot: component.NoTarget,
		Invested:   cost,
	}
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: kind})
	return ActionOK
}

// SelectTower marks the tower on a cell as selected for upgrade/sell.
func (g *Game) SelectTower(cell gridmap.Cell) ActionResult {
	if g.Towers.At(cell) == nil {
		g.hasSel = false
		return Denied(ReasonNoTowerSelected, g.Dispatcher)
	}
	g.selected = cell
	g.hasSel = true
	return ActionOK
}

// SelectedTower returns the current selection, if any.
func (g *Game) SelectedTower() (*component.Tower, bool) {
	if !g.hasSel {
		return nil, false
	}
	t := g.Towers.At(g.selected)
	if t == nil {
		g.hasSel = false
		return nil, false
	}
	return t, true
}

// UpgradeSelected raises the selected tower one level, paying the next
// level's cost. The stat table changes take effect immediately.
func (g *Game) UpgradeSelected() ActionResult {
	tower, ok := g.SelectedTower()
	if !ok {
		return Denied(ReasonNoTowerSelected, g.Dispatcher)
	}
	def := defs.TowerLibrary[tower.Kind]
	if tower.Level >= def.MaxLevel() {
		return Denied(ReasonMaxLevel, g.Dispatcher)
	}
	cost := def.Levels[tower.Level+1].Cost
	if g.Player.Gold < cost {
		return Denied(ReasonInsufficientFunds, g.Dispatcher)
	}

	g.Player.Gold -= cost
	tower.Level++
	tower.Invested += cost
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: tower.Kind})
	return ActionOK
}

// SellSelected removes the selected tower and refunds a fixed fraction
// of everything paid for it, rounded down.
func (g *Game) SellSelected() ActionResult {
	tower, ok := g.SelectedTower()
	if !ok {
		return Denied(ReasonNoTowerSelected, g.Dispatcher)
	}
	// Integer math so the floor is exact: 0.7 is not representable and
	// int(0.7*50) would truncate to 34.
	ratePct := int(math.Round(g.Settings.SellRefundRate * 100))
	refund := tower.Invested * ratePct / 100
	g.Player.Gold += refund
	g.Towers[tower.Cell.X][tower.Cell.Y] = component.Tower{}
	g.hasSel = false
	g.Dispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: refund})
	return ActionOK
}
