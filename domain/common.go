package domain

import (
	"errors"
	"os"
)

const (
	RoleUser = "user"

	UnitSystemImperial = "imperial"
	UnitSystemMetric   = "metric"
)

// MealTimes is the canonical meal-time ordering used when iterating a plan.
var MealTimes = []string{"breakfast", "lunch", "dinner", "snack", "custom"}

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// MealTimeRank returns the position of a meal time in the canonical order.
// Unknown values sort after "custom".
func MealTimeRank(mealTime string) int {
	for i, mt := range MealTimes {
		if mt == mealTime {
			return i
		}
	}
	return len(MealTimes)
}

// IsValidMealTime reports whether mealTime is one of the known slots.
func IsValidMealTime(mealTime string) bool {
	return MealTimeRank(mealTime) < len(MealTimes)
}
