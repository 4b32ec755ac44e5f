package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

func TestTransitionTable_Can(t *testing.T) {
	assert.True(t, testTransitions.Can(shaheen.StatusUnderReview, shaheen.StatusOpen))
	assert.True(t, testTransitions.Can(shaheen.StatusUnderReview, shaheen.StatusRejected))
	assert.False(t, testTransitions.Can(shaheen.StatusOpen, shaheen.StatusRejected))
	assert.False(t, testTransitions.Can(shaheen.StatusRejected, shaheen.StatusOpen))
}

func TestTransitionTable_Allowed(t *testing.T) {
	out := testTransitions.Allowed(shaheen.StatusUnderReview)
	assert.Len(t, out, 2)
	assert.Empty(t, testTransitions.Allowed(shaheen.StatusSold))
}

func TestTransitionTable_RequiresReasonKeyedOnTarget(t *testing.T) {
	assert.True(t, testTransitions.RequiresReason(shaheen.StatusRejected))
	assert.False(t, testTransitions.RequiresReason(shaheen.StatusOpen))
	assert.False(t, testTransitions.RequiresReason(shaheen.StatusClosed))
}
