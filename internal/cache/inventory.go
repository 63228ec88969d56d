package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix       = "user:%d"
	EventKeyPrefix      = "event:%d"
	EventListsKeyPrefix = "event:%d:lists"
	SettingsKey         = "site:settings"
)

const (
	UserTTL     = 5 * time.Minute
	EventTTL    = 10 * time.Minute
	SettingsTTL = 10 * time.Minute
	ListTTL     = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func EventKey(eventID uint) string {
	return fmt.Sprintf(EventKeyPrefix, eventID)
}

func EventListsKey(eventID uint) string {
	return fmt.Sprintf(EventListsKeyPrefix, eventID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateEvent(ctx context.Context, eventID uint) {
	Invalidate(ctx, EventKey(eventID))
	Invalidate(ctx, EventListsKey(eventID))
}

func InvalidateSettings(ctx context.Context) {
	Invalidate(ctx, SettingsKey)
}
