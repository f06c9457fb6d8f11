package fitlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	assert.NoError(t, CategoryWorkout.Validate())
	assert.NoError(t, CategoryEating.Validate())
	assert.ErrorIs(t, Category("sleep").Validate(), ErrUnknownCategory)

	assert.Equal(t, "workoutLogs", CategoryWorkout.Collection())
	assert.Equal(t, "eatingLogs", CategoryEating.Collection())

	assert.Equal(t, "workoutLogs:u1", CategoryWorkout.CacheKey("u1"))
	assert.Equal(t, "eatingLogs:local", CategoryEating.CacheKey(""))

	assert.Equal(t, CategoryEating, CategoryWorkout.Other())
	assert.Equal(t, CategoryWorkout, CategoryEating.Other())

	assert.True(t, CategoryWorkout.ValidKind("Strength"))
	assert.False(t, CategoryWorkout.ValidKind("Breakfast"))
	assert.True(t, CategoryEating.ValidKind("Snack"))
	assert.False(t, CategoryEating.ValidKind("Cardio"))
}
