package engine

import (
	"github.com/Namek/battle-tactics/internal/domain"
	"github.com/Namek/battle-tactics/pkg/logger"
	"github.com/sirupsen/logrus"
)

// addEvent добавляет событие в журнал партии и дублирует его в лог процесса
func (s *GameState) addEvent(e domain.Event) domain.Event {
	e.Seq = len(s.Events)
	e.Round = s.Round
	s.Events = append(s.Events, e)

	entry := logger.Log.WithFields(logrus.Fields{
		"game":       s.ID,
		"component":  "game_log",
		"event_type": e.Type,
		"round":      e.Round,
		"step":       e.Step,
	})
	if e.Type == domain.EventPlayerMoved {
		entry.Debug(e.Describe())
	} else {
		entry.Info(e.Describe())
	}
	return e
}
