package nakama

import (
	"encoding/json"

	"sagetrail/internal/app"
)

// eventOpCodes maps engine event kinds to wire op codes. Every engine event
// is public; nothing in the game is hidden information.
var eventOpCodes = map[app.EventKind]int64{
	app.EventLog:                  OpLog,
	app.EventGameStarted:          OpGameStarted,
	app.EventGameReset:            OpGameReset,
	app.EventDiceRolled:           OpDiceRolled,
	app.EventPieceMoved:           OpPieceMoved,
	app.EventTileLanded:           OpTileLanded,
	app.EventIntroShown:           OpIntroShown,
	app.EventModalOpened:          OpModalOpened,
	app.EventTrialRevealed:        OpTrialRevealed,
	app.EventEffectRequested:      OpEffectRequested,
	app.EventCue:                  OpCue,
	app.EventPauseShown:           OpPauseShown,
	app.EventRecoveryShown:        OpRecoveryShown,
	app.EventTurnStarted:          OpTurnStarted,
	app.EventTurnSkipped:          OpTurnSkipped,
	app.EventAIDecided:            OpAIDecided,
	app.EventAwaitingConfirmation: OpAwaitingConfirmation,
	app.EventGameWon:              OpGameWon,
}

// marshalEvent converts one engine event into its wire opcode and JSON body.
func marshalEvent(ev app.Event) (int64, []byte, bool) {
	opCode, ok := eventOpCodes[ev.Kind]
	if !ok {
		return 0, nil, false
	}
	if ev.Payload == nil {
		return opCode, []byte("{}"), true
	}
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return 0, nil, false
	}
	return opCode, data, true
}
