package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"sagetrail/internal/app"
	"sagetrail/internal/bot"
	"sagetrail/internal/config"
	"sagetrail/internal/domain"
	"sagetrail/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastOpCode     int64
	lastData       []byte
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	return nil
}

// mockMatchData is a client message addressed to the match handler.
type mockMatchData struct {
	userID string
	opCode int64
	data   []byte
}

func (m *mockMatchData) GetUserId() string                  { return m.userID }
func (m *mockMatchData) GetSessionId() string               { return "session-" + m.userID }
func (m *mockMatchData) GetNodeId() string                  { return "node" }
func (m *mockMatchData) GetHidden() bool                    { return false }
func (m *mockMatchData) GetPersistence() bool               { return false }
func (m *mockMatchData) GetUsername() string                { return m.userID }
func (m *mockMatchData) GetStatus() string                  { return "" }
func (m *mockMatchData) GetReason() runtime.PresenceReason  { return runtime.PresenceReasonUnknown }
func (m *mockMatchData) GetOpCode() int64                   { return m.opCode }
func (m *mockMatchData) GetData() []byte                    { return m.data }
func (m *mockMatchData) GetReliable() bool                  { return true }
func (m *mockMatchData) GetReceiveTime() int64              { return 0 }

type mockEconomy struct {
	updates []ports.WalletUpdate
}

func (me *mockEconomy) GetBalance(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (me *mockEconomy) UpdateBalances(ctx context.Context, updates []ports.WalletUpdate) error {
	me.updates = append(me.updates, updates...)
	return nil
}

func newTestState() *MatchState {
	return &MatchState{
		OwnerSeat: -1,
		Presences: make(map[string]runtime.Presence),
		Engine:    app.New(app.Options{AutoPresent: true}),
		Cfg: config.Config{
			BotsEnabled:  true,
			SwapTarget:   "Zilu",
			DefaultGoal:  10,
			DefaultMode:  "normal",
			VictoryHonor: 25,
		},
	}
}

func startGamePayload(t *testing.T, req StartGameRequest) []byte {
	t.Helper()
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal start request: %v", err)
	}
	return b
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.IdentityAt(0).ID
	bot2 := bot.IdentityAt(1).ID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{
			name:  "FirstHumanAfterBot",
			seats: []string{bot1, "user-1", "", "", "", ""},
			want:  1,
		},
		{
			name:  "AllBots",
			seats: []string{bot1, bot2, "", "", "", ""},
			want:  -1,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", "", "", ""},
			want:  -1,
		},
		{
			name:  "FirstHumanIsSeatZero",
			seats: []string{"user-1", bot1, "user-2", "", "", ""},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	bot1 := bot.IdentityAt(0).ID
	bot2 := bot.IdentityAt(1).ID

	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{
			name:  "BotsOnly",
			seats: []string{bot1, bot2, "", "", "", ""},
			want:  true,
		},
		{
			name:  "HumansPresent",
			seats: []string{bot1, "user-1", "", "", "", ""},
			want:  false,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", "", "", ""},
			want:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestMatchLabelMarshal(t *testing.T) {
	label := MatchLabel{Open: 3, Game: labelGame, Phase: string(domain.PhaseLobby)}
	data, err := json.Marshal(label)
	if err != nil {
		t.Fatalf("Failed to marshal label: %v", err)
	}
	want := `{"open":3,"game":"sagetrail","phase":"lobby"}`
	if string(data) != want {
		t.Fatalf("Got %s, want %s", data, want)
	}
}

func TestHandleStartGameRejectsNonOwner(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState()
	state.Seats[0] = "owner"
	state.Seats[1] = "guest"
	state.OwnerSeat = 0

	msg := &mockMatchData{userID: "guest", opCode: OpStartGame}
	events := handler.handleStartGame(state, &mockDispatcher{}, noopLogger{}, msg)

	if len(events) != 0 {
		t.Fatalf("Expected no events for non-owner start, got %d", len(events))
	}
	if state.Engine.Session().Phase != domain.PhaseLobby {
		t.Fatal("Game must not start for a non-owner request")
	}
}

func TestHandleStartGameSeatsHumansAndBots(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState()
	state.Seats[0] = "owner"
	state.Seats[1] = "guest"
	state.OwnerSeat = 0

	msg := &mockMatchData{
		userID: "owner",
		opCode: OpStartGame,
		data:   startGamePayload(t, StartGameRequest{Goal: 5, Mode: "quick", AIOpponents: 2}),
	}
	events := handler.handleStartGame(state, &mockDispatcher{}, noopLogger{}, msg)

	if len(events) == 0 {
		t.Fatal("Expected start events")
	}

	s := state.Engine.Session()
	if s.Phase != domain.PhasePlaying {
		t.Fatalf("Expected playing phase, got %q", s.Phase)
	}
	if len(s.Players) != 4 {
		t.Fatalf("Expected 2 humans + 2 bots, got %d players", len(s.Players))
	}
	if s.WinGoal != 5 || s.Mode != domain.ModeQuick {
		t.Fatalf("Expected goal 5 quick mode, got goal=%d mode=%q", s.WinGoal, s.Mode)
	}
	if s.Players[0].Character != "Confucius" || s.Players[0].IsAI {
		t.Fatalf("First human should be Confucius, got %q (ai=%v)", s.Players[0].Character, s.Players[0].IsAI)
	}
	if !s.Players[2].IsAI || !s.Players[3].IsAI {
		t.Fatal("Last two roster entries should be bots")
	}
	if state.GetOccupiedSeatCount() != 4 {
		t.Fatalf("Bots should claim seats, got %d occupied", state.GetOccupiedSeatCount())
	}
	if state.Settled {
		t.Fatal("Settled flag should reset at game start")
	}
}

func TestHandleStartGameIgnoresBotsWhenDisabled(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState()
	state.Cfg.BotsEnabled = false
	state.Seats[0] = "owner"
	state.OwnerSeat = 0

	msg := &mockMatchData{
		userID: "owner",
		opCode: OpStartGame,
		data:   startGamePayload(t, StartGameRequest{AIOpponents: 3}),
	}
	handler.handleStartGame(state, &mockDispatcher{}, noopLogger{}, msg)

	if got := len(state.Engine.Session().Players); got != 1 {
		t.Fatalf("Expected bots suppressed, got %d players", got)
	}
}

func TestHandleMessageRejectsRollOutOfTurn(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState()
	state.Seats[0] = "owner"
	state.Seats[1] = "guest"
	state.OwnerSeat = 0

	start := &mockMatchData{userID: "owner", opCode: OpStartGame}
	handler.handleStartGame(state, &mockDispatcher{}, noopLogger{}, start)

	// Seat 0 (owner) opens the game, so the guest may not roll.
	events := handler.handleMessage(state, &mockDispatcher{}, noopLogger{}, &mockMatchData{userID: "guest", opCode: OpRequestRoll})
	if len(events) != 0 {
		t.Fatalf("Expected out-of-turn roll to be ignored, got %d events", len(events))
	}

	events = handler.handleMessage(state, &mockDispatcher{}, noopLogger{}, &mockMatchData{userID: "owner", opCode: OpRequestRoll})
	if len(events) == 0 {
		t.Fatal("Expected the current player's roll to produce events")
	}
	if !state.Engine.Session().Rolling {
		t.Fatal("Expected the roll to be in flight")
	}
}

func TestHandleMessageSendsErrorForMalformedPayload(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState()
	state.Seats[0] = "owner"
	state.OwnerSeat = 0
	state.Presences["owner"] = &mockMatchData{userID: "owner"}

	handler.handleStartGame(state, dispatcher, noopLogger{}, &mockMatchData{userID: "owner", opCode: OpStartGame})

	events := handler.handleMessage(state, dispatcher, noopLogger{}, &mockMatchData{
		userID: "owner",
		opCode: OpSelectTrialOption,
		data:   []byte("not-json"),
	})
	if len(events) != 0 {
		t.Fatalf("Expected no events for a malformed payload, got %d", len(events))
	}
	if dispatcher.lastOpCode != OpError {
		t.Fatalf("Expected error opcode %d, got %d", OpError, dispatcher.lastOpCode)
	}
}

func TestHandleMessageIgnoresUnseatedUser(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState()
	state.Seats[0] = "owner"
	state.OwnerSeat = 0

	events := handler.handleMessage(state, &mockDispatcher{}, noopLogger{}, &mockMatchData{userID: "stranger", opCode: OpRequestRoll})
	if len(events) != 0 {
		t.Fatalf("Expected unseated user to be ignored, got %d events", len(events))
	}
}

func TestSettleVictoryPaysHumanWinnerOnce(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState()
	economy := &mockEconomy{}
	state.Economy = economy

	players := []*domain.Player{
		{ID: "user-1", Character: "Confucius", Meat: 10},
		{ID: bot.IdentityAt(0).ID, Character: "Zilu", IsAI: true},
	}
	ev := app.Event{Kind: app.EventGameWon, Payload: app.GameWonPayload{Winner: 0, Players: players}}

	handler.settleVictory(context.Background(), state, noopLogger{}, ev)
	handler.settleVictory(context.Background(), state, noopLogger{}, ev)

	if len(economy.updates) != 1 {
		t.Fatalf("Expected exactly one honor settlement, got %d", len(economy.updates))
	}
	if economy.updates[0].UserID != "user-1" || economy.updates[0].Amount != 25 {
		t.Fatalf("Expected 25 honor for user-1, got %d for %s", economy.updates[0].Amount, economy.updates[0].UserID)
	}
}

func TestSettleVictorySkipsBotWinner(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState()
	economy := &mockEconomy{}
	state.Economy = economy

	players := []*domain.Player{
		{ID: "user-1", Character: "Confucius"},
		{ID: bot.IdentityAt(0).ID, Character: "Zilu", IsAI: true, Meat: 10},
	}
	ev := app.Event{Kind: app.EventGameWon, Payload: app.GameWonPayload{Winner: 1, Players: players}}

	handler.settleVictory(context.Background(), state, noopLogger{}, ev)

	if len(economy.updates) != 0 {
		t.Fatalf("Expected no settlement for a bot winner, got %d", len(economy.updates))
	}
}

func TestBroadcastSnapshotNamesBotSeats(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState()
	botID := bot.IdentityAt(0).ID
	state.Seats[0] = "user-1"
	state.Seats[1] = botID
	state.OwnerSeat = 0
	state.Tick = 42

	handler.broadcastSnapshot(state, dispatcher, noopLogger{})

	if dispatcher.lastOpCode != OpMatchSnapshot {
		t.Fatalf("Expected opcode %d, got %d", OpMatchSnapshot, dispatcher.lastOpCode)
	}

	var snapshot MatchSnapshot
	if err := json.Unmarshal(dispatcher.lastData, &snapshot); err != nil {
		t.Fatalf("Failed to unmarshal snapshot: %v", err)
	}
	if len(snapshot.Players) != 2 {
		t.Fatalf("Expected 2 seated players, got %d", len(snapshot.Players))
	}
	if snapshot.Players[1].DisplayName != "Zilu" || !snapshot.Players[1].IsBot {
		t.Fatalf("Expected bot seat named Zilu, got %+v", snapshot.Players[1])
	}
	if !snapshot.Players[0].IsOwner {
		t.Fatal("Expected seat 0 to be the owner")
	}
}

func TestHandleRestartFreesBotSeats(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState()
	state.Seats[0] = "owner"
	state.OwnerSeat = 0

	start := &mockMatchData{
		userID: "owner",
		opCode: OpStartGame,
		data:   startGamePayload(t, StartGameRequest{AIOpponents: 2}),
	}
	handler.handleStartGame(state, &mockDispatcher{}, noopLogger{}, start)

	events := handler.handleRestart(state, noopLogger{}, &mockMatchData{userID: "owner", opCode: OpRestart})
	if len(events) == 0 {
		t.Fatal("Expected reset events")
	}
	if state.Engine.Session().Phase != domain.PhaseLobby {
		t.Fatal("Expected lobby phase after restart")
	}
	if state.GetOccupiedSeatCount() != 1 {
		t.Fatalf("Expected bot seats freed, got %d occupied", state.GetOccupiedSeatCount())
	}
}
