package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// RpcVoiceToken is the Nakama RPC id clients call to sign a voice chat token.
	RpcVoiceToken = "voice_token"

	// MatchName is the authoritative match handler name registered with Nakama.
	MatchName = "sagetrail_match"

	// MaxSeats caps the table size.
	MaxSeats = 6
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame         int64 = 1
	OpRequestRoll       int64 = 2
	OpSelectTrialOption int64 = 3
	OpConfirmTrial      int64 = 4
	OpResolveFate       int64 = 5
	OpResolveChance     int64 = 6
	OpResolveEvent      int64 = 7
	OpConfirmAIAction   int64 = 8
	OpEffectDone        int64 = 9
	OpRestart           int64 = 10

	// Server -> Client events
	OpError                int64 = 100
	OpLog                  int64 = 101
	OpGameStarted          int64 = 102
	OpGameReset            int64 = 103
	OpDiceRolled           int64 = 104
	OpPieceMoved           int64 = 105
	OpTileLanded           int64 = 106
	OpIntroShown           int64 = 107
	OpModalOpened          int64 = 108
	OpTrialRevealed        int64 = 109
	OpEffectRequested      int64 = 110
	OpCue                  int64 = 111
	OpPauseShown           int64 = 112
	OpTurnStarted          int64 = 113
	OpTurnSkipped          int64 = 114
	OpAIDecided            int64 = 115
	OpAwaitingConfirmation int64 = 116
	OpGameWon              int64 = 117
	OpMatchSnapshot        int64 = 118
	OpRecoveryShown        int64 = 119
)
