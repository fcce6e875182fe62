package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"sagetrail/internal/app"
	"sagetrail/internal/bot"
	"sagetrail/internal/config"
	"sagetrail/internal/content"
	"sagetrail/internal/domain"
	"sagetrail/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const labelGame = "sagetrail"

// MatchLabel is the indexed JSON label used by quick-match queries.
type MatchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// humanCharacters are assigned to human seats in join order. None of them
// appear in the bot identity pool, so character names stay unique per table.
var humanCharacters = [MaxSeats]string{"Confucius", "Boniu", "Zhonggong", "Ziyou", "Zixia", "Sima Niu"}

// humanColors follow the same seat order; the bot identity pool carries its
// own palette.
var humanColors = [MaxSeats]string{"#dc2626", "#0e7490", "#65a30d", "#9333ea", "#ea580c", "#334155"}

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats     [MaxSeats]string            `json:"seats"`      // Array of user IDs, empty string means seat is empty
	OwnerSeat int                         `json:"owner_seat"` // Seat index of the match owner
	Tick      int64                       `json:"tick"`       // Current match tick
	Presences map[string]runtime.Presence `json:"-"`          // Map UserId -> Presence for targeted messaging
	Engine    *app.Engine                 `json:"-"`          // Turn engine with the game logic
	Cfg       config.Config               `json:"-"`          // Module settings from the runtime env
	Economy   ports.EconomyPort           `json:"-"`          // Interface to the Nakama honor ledger
	Settled   bool                        `json:"settled"`    // Whether the current game's victory honor was paid
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// isCurrentPlayer reports whether the user occupies the seat whose turn it is.
func (ms *MatchState) isCurrentPlayer(userID string) bool {
	p := ms.Engine.Session().CurrentPlayer()
	return p != nil && p.ID == userID
}

// seatOf returns the seat index for the user or -1.
func (ms *MatchState) seatOf(userID string) int {
	for i, seatUserId := range ms.Seats {
		if seatUserId == userID {
			return i
		}
	}
	return -1
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	// Load content and pacing overrides from the data folder
	if err := content.LoadTables("data/content.json"); err != nil {
		logger.Warn("MatchInit: Could not load content tables: %v", err)
	}
	if err := config.LoadPacing("data/pacing.json"); err != nil {
		logger.Warn("MatchInit: Could not load pacing config: %v", err)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromRuntimeEnv(env)
	if err != nil {
		logger.Warn("MatchInit: Could not parse runtime env: %v", err)
	}

	pacing := config.GetPacing()
	state := &MatchState{
		OwnerSeat: -1,
		Presences: make(map[string]runtime.Presence),
		Engine: app.New(app.Options{
			Tables:     content.GetTables(),
			Pacing:     pacing,
			SwapTarget: cfg.SwapTarget,
		}),
		Cfg:     cfg,
		Economy: NewNakamaEconomyAdapter(nk),
	}

	label := MatchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  labelGame,
		Phase: string(domain.PhaseLobby),
	}
	labelBytes, err := json.Marshal(label)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	return state, pacing.TickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace while the
	// table is between games.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Engine.Session().Phase != domain.PhasePlaying {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		// Assign seat: try empty seats first, then bots if no game is running
		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Engine.Session().Phase != domain.PhasePlaying {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
			continue
		}
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	ownerLeft := false
	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserId := range matchState.Seats {
			if seatUserId == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)

				if matchState.OwnerSeat == i {
					ownerLeft = true
				}
				break
			}
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		} else if ownerLeft {
			logger.Debug("MatchLeave: Owner left and no human owner is available.")
		}
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	var events []app.Event
	for _, msg := range messages {
		events = append(events, mh.handleMessage(matchState, dispatcher, logger, msg)...)
	}

	events = append(events, matchState.Engine.Tick(tick)...)

	for _, ev := range events {
		mh.broadcastEvent(ctx, matchState, dispatcher, logger, ev)
	}

	return matchState
}

func (mh *matchHandler) handleMessage(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) []app.Event {
	senderID := msg.GetUserId()
	if state.seatOf(senderID) < 0 {
		logger.Warn("handleMessage: Message from unseated user %s ignored.", senderID)
		return nil
	}

	switch msg.GetOpCode() {
	case OpStartGame:
		return mh.handleStartGame(state, dispatcher, logger, msg)

	case OpRequestRoll:
		if !state.isCurrentPlayer(senderID) {
			logger.Warn("handleMessage: User %s requested a roll out of turn.", senderID)
			return nil
		}
		return state.Engine.RequestRoll()

	case OpSelectTrialOption:
		if !state.isCurrentPlayer(senderID) {
			return nil
		}
		var req struct {
			Option int `json:"option"`
		}
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			logger.Warn("handleMessage: Invalid trial option payload from %s: %v", senderID, err)
			mh.sendError(state, dispatcher, logger, senderID, 400, "invalid trial option payload")
			return nil
		}
		return state.Engine.SelectTrialOption(req.Option)

	case OpConfirmTrial:
		if !state.isCurrentPlayer(senderID) {
			return nil
		}
		return state.Engine.ConfirmTrial()

	case OpResolveFate:
		if !state.isCurrentPlayer(senderID) {
			return nil
		}
		return state.Engine.ResolveFate()

	case OpResolveChance:
		if !state.isCurrentPlayer(senderID) {
			return nil
		}
		return state.Engine.ResolveChance()

	case OpResolveEvent:
		if !state.isCurrentPlayer(senderID) {
			return nil
		}
		return state.Engine.ResolveEvent()

	case OpConfirmAIAction:
		// Any seated human may confirm a waiting AI decision.
		if isBotUserId(senderID) {
			return nil
		}
		return state.Engine.ConfirmAIAction()

	case OpEffectDone:
		var req struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(msg.GetData(), &req); err != nil {
			logger.Warn("handleMessage: Invalid effect ack payload from %s: %v", senderID, err)
			mh.sendError(state, dispatcher, logger, senderID, 400, "invalid effect ack payload")
			return nil
		}
		return state.Engine.EffectCompleted(req.ID)

	case OpRestart:
		return mh.handleRestart(state, logger, msg)

	default:
		logger.Warn("handleMessage: Unknown opcode received: %d", msg.GetOpCode())
		return nil
	}
}

// StartGameRequest is the OpStartGame payload sent by the match owner.
type StartGameRequest struct {
	Goal        int    `json:"goal"`
	Mode        string `json:"mode"`
	AIOpponents int    `json:"ai_opponents"`
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) []app.Event {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)",
		senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return nil
	}

	request := StartGameRequest{}
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), &request); err != nil {
			logger.Warn("StartGame: Invalid StartGameRequest from %s: %v", senderID, err)
			mh.sendError(state, dispatcher, logger, senderID, 400, "invalid start game payload")
			return nil
		}
	}

	goal := request.Goal
	if goal < 1 {
		goal = state.Cfg.DefaultGoal
	}
	mode := domain.Mode(request.Mode)
	if mode != domain.ModeQuick && mode != domain.ModeNormal {
		mode = domain.Mode(state.Cfg.DefaultMode)
	}

	aiCount := request.AIOpponents
	if !state.Cfg.BotsEnabled {
		aiCount = 0
	}

	roster := make([]app.PlayerSetup, 0, MaxSeats)
	humanIdx := 0
	for _, seatUserId := range state.Seats {
		if seatUserId == "" || isBotUserId(seatUserId) {
			continue
		}
		roster = append(roster, app.PlayerSetup{
			ID:          seatUserId,
			Character:   humanCharacters[humanIdx%MaxSeats],
			AvatarIndex: humanIdx,
			Color:       humanColors[humanIdx%MaxSeats],
		})
		humanIdx++
	}

	for i := 0; i < aiCount && len(roster) < MaxSeats; i++ {
		identity := bot.IdentityAt(i)
		seat := mh.claimSeat(state, identity.ID)
		if seat < 0 {
			break
		}
		roster = append(roster, app.PlayerSetup{
			ID:          identity.ID,
			Character:   identity.Character,
			IsAI:        true,
			AvatarIndex: identity.AvatarIndex,
			Color:       identity.Color,
		})
	}

	events, err := state.Engine.StartGame(roster, goal, mode)
	if err != nil {
		logger.Warn("StartGame: Failed to start game: %v", err)
		return nil
	}

	state.Settled = false
	logger.Info("StartGame: Game started with %d players (goal=%d, mode=%s).", len(roster), goal, mode)
	return events
}

// claimSeat places a bot user id in the first empty seat and returns its index.
func (mh *matchHandler) claimSeat(state *MatchState, userID string) int {
	for i, seatUserId := range state.Seats {
		if seatUserId == "" {
			state.Seats[i] = userID
			return i
		}
	}
	return -1
}

func (mh *matchHandler) handleRestart(state *MatchState, logger runtime.Logger, msg runtime.MatchData) []app.Event {
	senderID := msg.GetUserId()
	if state.seatOf(senderID) != state.OwnerSeat {
		logger.Warn("Restart: User %s tried to restart but is not owner.", senderID)
		return nil
	}

	// Free bot seats so the next start can pick its own roster.
	for i, seatUserId := range state.Seats {
		if isBotUserId(seatUserId) {
			state.Seats[i] = ""
		}
	}

	logger.Info("Restart: Table reset by owner %s.", senderID)
	return state.Engine.Reset()
}

// ErrorPayload is sent to a single user whose message could not be handled.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// sendError delivers an error payload to one user only.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	data, err := json.Marshal(ErrorPayload{Code: code, Message: message})
	if err != nil {
		logger.Error("sendError: Failed to marshal error payload: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("sendError: Cannot send error to %s: presence not found.", userID)
		return
	}
	if err := dispatcher.BroadcastMessage(OpError, data, []runtime.Presence{presence}, nil, true); err != nil {
		logger.Error("sendError: Broadcast failed: %v", err)
	}
}

// broadcastEvent converts an engine event to its wire form and dispatches it.
// Every event is broadcast to the whole table.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	switch ev.Kind {
	case app.EventGameStarted, app.EventGameReset:
		mh.updateLabel(state, dispatcher, logger)
	case app.EventGameWon:
		mh.settleVictory(ctx, state, logger, ev)
		mh.updateLabel(state, dispatcher, logger)
	}

	opCode, data, ok := marshalEvent(ev)
	if !ok {
		logger.Warn("broadcastEvent: Could not convert event kind %q.", ev.Kind)
		return
	}

	dispatcher.BroadcastMessage(opCode, data, nil, nil, true)
}

// settleVictory pays the victory honor to a human winner, once per game.
func (mh *matchHandler) settleVictory(ctx context.Context, state *MatchState, logger runtime.Logger, ev app.Event) {
	if state.Settled || state.Economy == nil || state.Cfg.VictoryHonor <= 0 {
		return
	}
	payload, ok := ev.Payload.(app.GameWonPayload)
	if !ok || payload.Winner < 0 || payload.Winner >= len(payload.Players) {
		return
	}

	winner := payload.Players[payload.Winner]
	state.Settled = true
	if winner.IsAI || isBotUserId(winner.ID) {
		return
	}

	updates := []ports.WalletUpdate{{
		UserID: winner.ID,
		Amount: state.Cfg.VictoryHonor,
		Metadata: map[string]interface{}{
			"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
			"reason":   "journey_victory",
		},
	}}
	if err := state.Economy.UpdateBalances(ctx, updates); err != nil {
		logger.Error("settleVictory: Failed to pay victory honor to %s: %v", winner.ID, err)
	}
}

// SeatInfo is one occupied seat in a match snapshot.
type SeatInfo struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
	DisplayName string `json:"display_name"`
}

// MatchSnapshot is the seat-level view broadcast on join and leave.
type MatchSnapshot struct {
	Seats     []string     `json:"seats"`
	OwnerSeat int          `json:"owner_seat"`
	Tick      int64        `json:"tick"`
	Phase     domain.Phase `json:"phase"`
	Players   []SeatInfo   `json:"players"`
}

func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var players []SeatInfo
	for i, userId := range state.Seats {
		if userId == "" {
			continue
		}

		displayName := userId
		if p, exists := state.Presences[userId]; exists {
			displayName = p.GetUsername()
		} else if name := bot.DisplayNameFor(userId); name != "" {
			displayName = name
		}

		players = append(players, SeatInfo{
			UserID:      userId,
			Seat:        i,
			IsOwner:     i == state.OwnerSeat,
			IsBot:       isBotUserId(userId),
			DisplayName: displayName,
		})
	}

	snapshot := MatchSnapshot{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Tick:      state.Tick,
		Phase:     state.Engine.Session().Phase,
		Players:   players,
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastSnapshot: Failed to marshal snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchSnapshot, data, nil, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label := MatchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  labelGame,
		Phase: string(state.Engine.Session().Phase),
	}
	labelBytes, err := json.Marshal(label)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
