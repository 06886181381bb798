package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinTags_RoundTrip(t *testing.T) {
	cases := [][]string{
		{"nature", "classic"},
		{"one"},
		{},
		{"with space", "UPPER", "öäü"},
	}

	for _, tags := range cases {
		stored, err := JoinTags(tags)
		assert.NoError(t, err)
		assert.Equal(t, tags, SplitTags(stored))
	}
}

func TestJoinTags_RejectsDelimiter(t *testing.T) {
	_, err := JoinTags([]string{"nature", "a,b"})
	assert.Error(t, err)
}

func TestSplitTags_Empty(t *testing.T) {
	assert.Equal(t, []string{}, SplitTags(""))
}

func TestSplitTags_Single(t *testing.T) {
	assert.Equal(t, []string{"nature"}, SplitTags("nature"))
}

func TestUserModel_BeforeCreate_DefaultAvatar(t *testing.T) {
	user := &UserModel{
		Username:       "basho",
		Email:          "basho@example.com",
		HashedPassword: "hash",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, DefaultAvatarURL, user.Avatar)
}

func TestUserModel_BeforeCreate_KeepsAvatar(t *testing.T) {
	user := &UserModel{
		Username:       "basho",
		Email:          "basho@example.com",
		HashedPassword: "hash",
		Avatar:         "https://example.com/me.png",
	}

	err := user.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/me.png", user.Avatar)
}

func TestHaikuModel_BeforeCreate_Defaults(t *testing.T) {
	haiku := &HaikuModel{
		Text:    "old pond / a frog jumps in / sound of water",
		OwnerID: 1,
	}

	err := haiku.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, DefaultColor, haiku.Color)
	assert.False(t, haiku.Date.IsZero())
}

func TestHaikuModel_BeforeCreate_KeepsColor(t *testing.T) {
	haiku := &HaikuModel{
		Text:    "text",
		Color:   "bg-rose-100",
		OwnerID: 1,
	}

	err := haiku.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, "bg-rose-100", haiku.Color)
}
