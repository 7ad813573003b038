package people

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeople(t *testing.T) {
	early := date(2020, time.January, 6)
	late := date(2020, time.January, 10)

	rows := ConstituentEmails{
		{Email: "a@example.com", Source: "google", ConsCreated: &early, ConsModified: &late, ConsMatched: true},
		// Source rows with creation after modification resolve to the
		// earlier/later pair
		{Email: "b@example.com", Source: "bing", Unsub: true, ConsCreated: &late, ConsModified: &early, ConsMatched: true},
		// No constituent match: timestamps stay nil
		{Email: "c@example.com"},
	}

	persons := ResolvePeople(rows)
	require.Len(t, persons, 3)

	require.NotNil(t, persons[0].CreatedAt)
	assert.Equal(t, early, *persons[0].CreatedAt)
	assert.Equal(t, late, *persons[0].UpdatedAt)
	assert.Equal(t, "google", persons[0].Code)

	require.NotNil(t, persons[1].CreatedAt)
	assert.Equal(t, early, *persons[1].CreatedAt)
	assert.Equal(t, late, *persons[1].UpdatedAt)
	assert.True(t, persons[1].Unsub)

	assert.Nil(t, persons[2].CreatedAt)
	assert.Nil(t, persons[2].UpdatedAt)

	for _, p := range persons {
		if p.CreatedAt != nil && p.CreatedAt.After(*p.UpdatedAt) {
			t.Errorf("person %s: created %v after updated %v", p.Email, p.CreatedAt, p.UpdatedAt)
		}
	}
}

func TestResolvePeopleEqualTimestamps(t *testing.T) {
	ts := date(2019, time.March, 5)
	rows := ConstituentEmails{
		{Email: "a@example.com", ConsCreated: &ts, ConsModified: &ts, ConsMatched: true},
	}

	persons := ResolvePeople(rows)
	require.Len(t, persons, 1)
	assert.Equal(t, ts, *persons[0].CreatedAt)
	assert.Equal(t, ts, *persons[0].UpdatedAt)
}
