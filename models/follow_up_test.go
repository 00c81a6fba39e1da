package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFollowUpState(t *testing.T) {
	for _, state := range []string{"draft", "sent", "replied", "closed"} {
		assert.True(t, IsValidFollowUpState(state), "状态 %s 应该有效", state)
	}

	for _, state := range []string{"", "open", "SENT", "done"} {
		assert.False(t, IsValidFollowUpState(state), "状态 %s 应该无效", state)
	}
}

func TestIsValidRating(t *testing.T) {
	for rating := RatingMin; rating <= RatingMax; rating++ {
		assert.True(t, IsValidRating(rating), "评分 %d 应该有效", rating)
	}

	for _, rating := range []int{0, 11, -5, 100} {
		assert.False(t, IsValidRating(rating), "评分 %d 应该无效", rating)
	}
}
