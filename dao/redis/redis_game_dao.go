package redis

import (
	"encoding/json"
	"fmt"

	"tour-planner/db"
	"tour-planner/game"
)

const GAME_STATE_KEY_FORMAT_V1 = "game_state_v1:%d_%d"

// RedisGameDAO persists guess-game states in Redis, keyed by chat then user.
// It implements game.StateStore.
type RedisGameDAO struct {
	client db.RedisClient
}

// NewRedisGameDAO initializes a RedisGameDAO with the Redis client.
func NewRedisGameDAO(client db.RedisClient) *RedisGameDAO {
	return &RedisGameDAO{client: client}
}

// Get returns the stored state, or nil when the player has none yet.
func (dao *RedisGameDAO) Get(chatID, userID int64) (*game.State, error) {
	key := gameStateKey(chatID, userID)
	str, err := dao.client.Get(key)
	if err != nil {
		// Missing key: the player simply has no game yet.
		return nil, nil
	}
	var st game.State
	if err := json.Unmarshal([]byte(str), &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state JSON: %w", err)
	}
	return &st, nil
}

// Put stores the state for the chat/user pair.
func (dao *RedisGameDAO) Put(chatID, userID int64, st game.State) error {
	key := gameStateKey(chatID, userID)
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal game state for key %s: %w", key, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set game state in redis: %w", err)
	}
	return nil
}

func gameStateKey(chatID, userID int64) string {
	return fmt.Sprintf(GAME_STATE_KEY_FORMAT_V1, chatID, userID)
}
