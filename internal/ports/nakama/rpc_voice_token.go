package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"sagetrail/internal/app"
	"sagetrail/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// VoiceTokenRequest is the payload for the voice_token RPC.
// Action is "login" or "join"; Channel is the match id for join tokens.
type VoiceTokenRequest struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
}

// VoiceTokenResponse carries the signed token back to the client.
type VoiceTokenResponse struct {
	Token string `json:"token"`
}

func rpcVoiceToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("User id required", 3) // INVALID_ARGUMENT
	}

	var req VoiceTokenRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromRuntimeEnv(env)
	if err != nil {
		logger.Error("rpcVoiceToken: Failed to parse runtime env: %v", err)
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}

	svc := app.NewVoiceService(cfg.VoiceSecret, cfg.VoiceIssuer, cfg.VoiceDomain)
	token, err := svc.GenerateToken(userID, req.Action, req.Channel)
	if err != nil {
		logger.Warn("rpcVoiceToken: Failed to generate token for %s: %v", userID, err)
		return "", runtime.NewError("Failed to generate voice token", 3)
	}

	b, _ := json.Marshal(VoiceTokenResponse{Token: token})
	return string(b), nil
}
