package validation

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type awardPayload struct {
	UserID  int    `json:"user_id" binding:"required,min=1"`
	BadgeID int    `json:"badge_id" binding:"required,min=1"`
	Name    string `json:"name" binding:"omitempty,max=5"`
}

func validate(t *testing.T, payload interface{}) error {
	t.Helper()

	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v.Struct(payload)
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestToDetailsUsesJSONTagNames(t *testing.T) {
	err := validate(t, awardPayload{UserID: 0, BadgeID: 3})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details, "user_id")
	assert.NotContains(t, details, "UserID")
	assert.NotContains(t, details, "badge_id")
}

func TestToDetailsMinMessage(t *testing.T) {
	err := validate(t, awardPayload{UserID: -2, BadgeID: 3})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be at least 1", details["user_id"])
}

func TestToDetailsStringMaxMessage(t *testing.T) {
	err := validate(t, awardPayload{UserID: 1, BadgeID: 1, Name: "too long"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be at most 5 characters long", details["name"])
}

func TestToDetailsTypeError(t *testing.T) {
	var payload awardPayload
	err := json.Unmarshal([]byte(`{"user_id": "one"}`), &payload)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details["user_id"], "must be of type")
}

func TestToDetailsSyntaxError(t *testing.T) {
	var payload awardPayload
	err := json.Unmarshal([]byte(`{not json`), &payload)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "invalid json", details["payload"])
}
