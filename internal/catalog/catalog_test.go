package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleComplete_CoversAllTwentyOne(t *testing.T) {
	for i := 1; i <= 21; i++ {
		c, ok := ModuleComplete(i)
		assert.True(t, ok, "module %d should have content", i)
		assert.NotEmpty(t, c.Text, "module %d text", i)
		if c.HasVoice {
			assert.NotEmpty(t, c.VoiceScript, "module %d voice script", i)
		}
	}

	_, ok := ModuleComplete(0)
	assert.False(t, ok)
	_, ok = ModuleComplete(22)
	assert.False(t, ok)
}

func TestMiniDiplomaModuleComplete_ExcludesFinalExamRange(t *testing.T) {
	for i := 0; i <= 3; i++ {
		_, ok := MiniDiplomaModuleComplete(i)
		assert.True(t, ok, "mini-diploma module %d should have content", i)
	}

	for _, i := range []int{4, 5, 10} {
		_, ok := MiniDiplomaModuleComplete(i)
		assert.False(t, ok, "mini-diploma module %d belongs to the final-exam flow", i)
	}
}

func TestWHLessonComplete_MilestonesOnly(t *testing.T) {
	for _, milestone := range []int{3, 6, 9} {
		_, ok := WHLessonComplete(milestone)
		assert.True(t, ok, "lesson %d is a milestone", milestone)
	}

	for _, other := range []int{1, 2, 4, 5, 7, 8, 10} {
		_, ok := WHLessonComplete(other)
		assert.False(t, ok, "lesson %d is not a milestone", other)
	}
}

func TestDayKeyedTables(t *testing.T) {
	_, ok := WHAccessExpiring("1")
	assert.True(t, ok)
	_, ok = WHAccessExpiring("2")
	assert.True(t, ok)
	_, ok = WHAccessExpiring("3")
	assert.False(t, ok)

	_, ok = WHInactivity("2")
	assert.True(t, ok)
	_, ok = WHInactivity("30")
	assert.False(t, ok)
}

func TestNamed_SequenceDays(t *testing.T) {
	for day := 2; day <= 7; day++ {
		_, ok := Named("sequence_day_" + string(rune('0'+day)))
		assert.True(t, ok, "sequence day %d", day)
	}

	_, ok := Named("sequence_day_8")
	assert.False(t, ok)
	_, ok = Named("unknown_trigger")
	assert.False(t, ok)
}

func TestWelcome_HasVoice(t *testing.T) {
	c := Welcome()
	assert.True(t, c.HasVoice)
	assert.Contains(t, c.Text, "{{firstName}}")
	assert.Contains(t, c.VoiceScript, "{{firstName}}")
}

func TestPersonalize(t *testing.T) {
	got := Personalize("Hi {{firstName}}, welcome {{firstName}}!", "Anna")
	assert.Equal(t, "Hi Anna, welcome Anna!", got)
	assert.False(t, strings.Contains(got, "{{"))
}
