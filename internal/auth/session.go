package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	TokenHeader      = "X-LIFEDASH-TOKEN"
	sessionKeyPrefix = "lifedash-session||"
	tokensSetKey     = "lifedash-sessions"
)

// login session value stored in redis: "<userID>:<createdAtUnix>"
func encodeSession(userID int, createdAt time.Time) string {
	return fmt.Sprintf("%d:%d", userID, createdAt.Unix())
}

func decodeSession(val string) (userID int, createdAt time.Time, err error) {
	idStr, createdStr, found := strings.Cut(val, ":")
	if !found {
		return 0, time.Time{}, fmt.Errorf("malformed session value [%s]", val)
	}
	userID, err = strconv.Atoi(idStr)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("parse session user id: %w", err)
	}
	createdAtUnix, err := strconv.ParseInt(createdStr, 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("parse session created at: %w", err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}
