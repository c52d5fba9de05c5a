package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses_KnownBuckets(t *testing.T) {
	clearCache()

	for _, bucket := range []string{BucketSummary, BucketExperience, BucketEducation, BucketSkills} {
		t.Run(bucket, func(t *testing.T) {
			responses, err := Responses(bucket)
			require.NoError(t, err)
			assert.Len(t, responses, 3)
			for _, r := range responses {
				assert.NotEmpty(t, r)
			}
		})
	}
}

func TestResponses_UnknownBucket(t *testing.T) {
	clearCache()

	_, err := Responses("hobbies")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResponses_ReturnsCopy(t *testing.T) {
	clearCache()

	first, err := Responses(BucketSkills)
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := Responses(BucketSkills)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0])
}

func TestBuckets(t *testing.T) {
	clearCache()

	buckets, err := Buckets()
	require.NoError(t, err)
	assert.Equal(t, []string{"education", "experience", "skills", "summary"}, buckets)
}

func TestHint(t *testing.T) {
	clearCache()

	assert.Contains(t, Hint("personal-info"), "Software developer")
	assert.Contains(t, Hint("experience"), "Led a team")
	assert.Empty(t, Hint("skills"))
}

func TestCache(t *testing.T) {
	clearCache()

	_, err := Responses(BucketSummary)
	require.NoError(t, err)

	cacheMu.RLock()
	_, cached := responsesCache[ResponsesFile]
	cacheMu.RUnlock()
	assert.True(t, cached, "file should be cached after first load")

	clearCache()

	cacheMu.RLock()
	_, cached = responsesCache[ResponsesFile]
	cacheMu.RUnlock()
	assert.False(t, cached, "cache should be empty after clear")
}
