package engine

import (
	"slices"

	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/internal/systems"
	"github.com/Namek/battle-tactics/pkg/api"
)

// View создает "снимок" партии для рендерера. Конусы и достижимые клетки
// считаются для активного игрока из его запланированной клетки.
func (s *Simulator) View() api.FrameView {
	st := s.state
	view := api.FrameView{
		GameID:       st.ID.String(),
		Round:        st.Round,
		Phase:        st.Phase.String(),
		ActivePlayer: st.Active,
		Winner:       st.Winner,
		Grid: api.GridMeta{
			Width:    s.grid.Width,
			Height:   s.grid.Height,
			TileSize: s.grid.TileSize,
			Walls:    s.grid.Rows(),
		},
		Players: make([]api.PlayerView, 0, len(st.Players)),
	}

	// 1. Игроки и их очереди
	for i, p := range st.Players {
		t := st.Turns[i]
		pv := api.PlayerView{
			Index:  p.Index,
			Cell:   p.Cell,
			Cursor: t.Cursor,
			Alive:  p.Alive,
			Ready:  t.Ready,
			ActionPoints: api.APView{
				Max:       s.cfg.MaxActionPoints,
				Spent:     t.Spent(s.cfg.Rules),
				Available: t.Available(s.cfg.Rules),
			},
			Actions: make([]string, 0, len(t.Actions)),
		}
		for _, a := range t.Actions {
			pv.Actions = append(pv.Actions, a.Type.String())
		}
		view.Players = append(view.Players, pv)
	}

	// 2. Подсказки для активного игрока
	if st.Phase == PhaseAwaitingActions {
		view.Reachable = sortedCells(s.Reachable(st.Active).Each)
		if cone, ok := s.Frustum(st.Active); ok {
			cv := coneView(cone)
			view.Frustum = &cv
		}
		for _, c := range s.PeekCones(st.Active) {
			view.PeekCones = append(view.PeekCones, coneView(c))
		}
	}

	// 3. События последнего розыгрыша
	view.Events = lastRoundEvents(st.Events)
	return view
}

func coneView(c systems.Cone) api.ConeView {
	return api.ConeView{Cell: c.Viewer, Origin: c.Origin, Points: slices.Clone(c.Points)}
}

// sortedCells drains a set iterator in row-major order so views are stable.
func sortedCells(each func(func(domain.Cell))) []domain.Cell {
	var cells []domain.Cell
	each(func(c domain.Cell) { cells = append(cells, c) })
	slices.SortFunc(cells, func(a, b domain.Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return cells
}

// lastRoundEvents returns the events stamped with the highest round number.
func lastRoundEvents(events []domain.Event) []domain.Event {
	if len(events) == 0 {
		return nil
	}
	round := events[len(events)-1].Round
	start := len(events)
	for start > 0 && events[start-1].Round == round {
		start--
	}
	return slices.Clone(events[start:])
}
