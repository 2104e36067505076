package services

import (
	"fmt"
	"time"
)

// Key families in the kv store. Activity keys embed the submission
// time so records sort and scan naturally per user.
func profileKey(userID string) string {
	return "user:" + userID
}

func nicknameKey(nickname string) string {
	return "user_nickname:" + nickname
}

func activityPrefix(userID string) string {
	return "activity:" + userID + ":"
}

func activityKey(userID string, submittedAt time.Time) string {
	return fmt.Sprintf("activity:%s:%d", userID, submittedAt.UnixMilli())
}

func deviceKey(userID string) string {
	return "device:" + userID
}
