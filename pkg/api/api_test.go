package api

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Namek/battle-tactics/internal/domain"
)

func TestCellPayload_Validate(t *testing.T) {
	tests := []struct {
		p       CellPayload
		wantErr bool
	}{
		{CellPayload{Col: 0, Row: 0}, false},
		{CellPayload{Col: 28, Row: 8}, false},
		{CellPayload{Col: -1, Row: 3}, true},
		{CellPayload{Col: 3, Row: -1}, true},
	}
	for _, tt := range tests {
		if err := tt.p.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.p, err, tt.wantErr)
		}
	}
}

func TestCommand_Validate(t *testing.T) {
	move, err := NewCommand(CmdMove, 0, CellPayload{Col: 2, Row: 1})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{"move", move, false},
		{"move without payload", Command{Action: CmdMove}, true},
		{"finish", Command{Action: CmdFinish, Player: 1}, false},
		{"empty action", Command{}, true},
		{"unknown action", Command{Action: "ATTACK"}, true},
		{"negative player", Command{Action: CmdWait, Player: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("MsgPack"); err != nil || f != FormatMsgpack {
		t.Errorf("Expected msgpack, got %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestCodec_FrameView(t *testing.T) {
	view := FrameView{
		GameID:       "3d3c0a4e-7a43-4b4e-9a7b-1b8f3f1c2d11",
		Round:        2,
		Phase:        "AWAITING_ACTIONS",
		ActivePlayer: 1,
		Winner:       domain.NoPlayer,
		Grid:         GridMeta{Width: 2, Height: 1, TileSize: 30, Walls: [][]bool{{false, true}}},
		Players: []PlayerView{
			{Index: 0, Cell: domain.Cell{Col: 0, Row: 0}, Alive: true, ActionPoints: APView{Max: 5, Spent: 3, Available: 2}, Actions: []string{"SHOOT"}},
		},
		Events: []domain.Event{
			{Seq: 0, Round: 1, Step: 0, Type: domain.EventTookDownEnemy, Player: 0, Target: 1, Distance: 42.5},
		},
	}

	for _, f := range []Format{FormatJSON, FormatMsgpack} {
		t.Run(string(f), func(t *testing.T) {
			data, err := Encode(f, view)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			var got FrameView
			if err := Decode(f, data, &got); err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(got, view) {
				t.Errorf("Round trip mismatch:\n got %+v\nwant %+v", got, view)
			}
		})
	}
}
