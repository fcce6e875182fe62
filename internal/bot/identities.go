package bot

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// botIDPrefix marks user ids that belong to simulated players.
const botIDPrefix = "bot-"

// Identity describes a simulated player available to fill a seat.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Character   string `json:"character"`
	AvatarIndex int    `json:"avatar_index"`
	Color       string `json:"color"`
}

// identityPool is the built-in roster of simulated disciples. Seat fill
// walks it in order so characters stay stable across games on one table.
var identityPool = []Identity{
	{ID: botIDPrefix + "zilu", DisplayName: "Zilu", Character: "Zilu", AvatarIndex: 1, Color: "#b45309"},
	{ID: botIDPrefix + "yanhui", DisplayName: "Yan Hui", Character: "Yan Hui", AvatarIndex: 2, Color: "#1d4ed8"},
	{ID: botIDPrefix + "zigong", DisplayName: "Zigong", Character: "Zigong", AvatarIndex: 3, Color: "#047857"},
	{ID: botIDPrefix + "zengzi", DisplayName: "Zengzi", Character: "Zengzi", AvatarIndex: 4, Color: "#7c3aed"},
	{ID: botIDPrefix + "ranqiu", DisplayName: "Ran Qiu", Character: "Ran Qiu", AvatarIndex: 5, Color: "#be123c"},
}

// IdentityAt returns the pool identity for a seat index. Indices beyond the
// pool get a generated identity with a unique id.
func IdentityAt(index int) Identity {
	if index >= 0 && index < len(identityPool) {
		return identityPool[index]
	}
	n := index + 1
	return Identity{
		ID:          botIDPrefix + uuid.NewString(),
		DisplayName: fmt.Sprintf("Wanderer %d", n),
		Character:   fmt.Sprintf("Wanderer %d", n),
		AvatarIndex: index,
	}
}

// DisplayNameFor returns the pool display name for a bot user id, or "" when
// the id is not in the pool.
func DisplayNameFor(userID string) string {
	for _, identity := range identityPool {
		if identity.ID == userID {
			return identity.DisplayName
		}
	}
	return ""
}

// IsBot reports whether the user id belongs to a simulated player.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, botIDPrefix)
}

// PoolSize returns how many built-in identities exist.
func PoolSize() int {
	return len(identityPool)
}
