package people

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSubscriptions(t *testing.T) {
	emails := PrimaryEmails{
		{EmailID: 10, ConsID: 1, IsPrimary: true, Email: "a@example.com", Created: date(2020, time.January, 1), Modified: date(2020, time.January, 2)},
		{EmailID: 11, ConsID: 2, IsPrimary: true, Email: "b@example.com", Created: date(2020, time.January, 1), Modified: date(2020, time.January, 1)},
		{EmailID: 12, ConsID: 3, IsPrimary: true, Email: "c@example.com", Created: date(2020, time.January, 1), Modified: date(2020, time.January, 1)},
	}
	chapterOne := int64(1)
	unsubbed := true
	modified := date(2021, time.September, 18)
	subs := ChapterSubscriptions{
		{EmailID: 10, ChapterID: &chapterOne, Unsub: &unsubbed, Modified: &modified},
		{EmailID: 12, ChapterID: &chapterOne},
		{EmailID: 12, ChapterID: &chapterOne},
	}

	merged := MergeSubscriptions(emails, subs, 1)
	require.Len(t, merged, 4)

	// Matched row carries its subscription state
	assert.True(t, merged[0].SubMatched)
	assert.True(t, merged[0].Unsub)
	assert.Equal(t, int64(1), merged[0].ChapterID)
	require.NotNil(t, merged[0].SubModified)
	assert.Equal(t, modified, *merged[0].SubModified)

	// Unmatched row gets the default-subscribed fill
	assert.Equal(t, int64(11), merged[1].EmailID)
	assert.False(t, merged[1].SubMatched)
	assert.False(t, merged[1].Unsub)
	assert.Equal(t, int64(1), merged[1].ChapterID)
	assert.Nil(t, merged[1].UnsubAt)

	// Duplicate subscription keys expand into one row each, and a matched
	// row with a missing flag fills to subscribed as well
	assert.Equal(t, int64(12), merged[2].EmailID)
	assert.Equal(t, int64(12), merged[3].EmailID)
	assert.True(t, merged[2].SubMatched)
	assert.False(t, merged[2].Unsub)

	// Email fields carry through untouched
	assert.Equal(t, "a@example.com", merged[0].Email)
	assert.Equal(t, int64(1), merged[0].ConsID)
	assert.Equal(t, date(2020, time.January, 2), merged[0].EmailModified)
}

func TestMergeSubscriptionsNoSubs(t *testing.T) {
	emails := PrimaryEmails{
		{EmailID: 10, ConsID: 1, Email: "a@example.com"},
		{EmailID: 11, ConsID: 2, Email: "b@example.com"},
	}

	merged := MergeSubscriptions(emails, nil, 1)
	require.Len(t, merged, 2)
	for _, m := range merged {
		assert.False(t, m.SubMatched)
		assert.False(t, m.Unsub)
		assert.Equal(t, int64(1), m.ChapterID)
	}
}

func TestMergeConstituents(t *testing.T) {
	cons := Constituents{
		{ID: 1, Source: "google", Created: date(2020, time.January, 1), Modified: date(2020, time.January, 3)},
		{ID: 9, Source: "no-email", Created: date(2020, time.January, 1), Modified: date(2020, time.January, 1)},
	}
	merged := EmailSubscriptions{
		{EmailID: 10, ConsID: 1, Email: "a@example.com", ChapterID: 1},
		{EmailID: 11, ConsID: 2, Email: "b@example.com", ChapterID: 1, Unsub: true},
	}

	full := MergeConstituents(cons, merged)
	require.Len(t, full, 2)

	assert.True(t, full[0].ConsMatched)
	assert.Equal(t, "google", full[0].Source)
	require.NotNil(t, full[0].ConsCreated)
	assert.Equal(t, date(2020, time.January, 1), *full[0].ConsCreated)
	require.NotNil(t, full[0].ConsModified)
	assert.Equal(t, date(2020, time.January, 3), *full[0].ConsModified)

	// Email rows with no constituent are kept, with nil timestamps; the
	// constituent with no email contributes no row at all
	assert.False(t, full[1].ConsMatched)
	assert.Equal(t, "", full[1].Source)
	assert.Nil(t, full[1].ConsCreated)
	assert.Nil(t, full[1].ConsModified)
	assert.True(t, full[1].Unsub)
}

func TestMergeConstituentsDuplicateIDs(t *testing.T) {
	cons := Constituents{
		{ID: 1, Source: "first", Created: date(2020, time.January, 1), Modified: date(2020, time.January, 1)},
		{ID: 1, Source: "second", Created: date(2020, time.January, 2), Modified: date(2020, time.January, 2)},
	}
	merged := EmailSubscriptions{
		{EmailID: 10, ConsID: 1, Email: "a@example.com", ChapterID: 1},
	}

	full := MergeConstituents(cons, merged)
	require.Len(t, full, 2)
	assert.Equal(t, "first", full[0].Source)
	assert.Equal(t, "second", full[1].Source)
}
