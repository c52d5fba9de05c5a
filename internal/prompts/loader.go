// Package prompts provides a loader for the embedded canned-response corpus
// and the prompt hints shown next to each generation trigger.
// Both are stored as JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

const (
	// ResponsesFile maps a bucket name to its candidate responses
	ResponsesFile = "responses.json"
	// HintsFile maps a generation target kind to its placeholder hint
	HintsFile = "hints.json"
)

// Response buckets in the canned corpus
const (
	BucketSummary    = "summary"
	BucketExperience = "experience"
	BucketEducation  = "education"
	BucketSkills     = "skills"
)

//go:embed *.json
var promptFiles embed.FS

// cache stores parsed files to avoid repeated JSON parsing
var (
	responsesCache = make(map[string]map[string][]string)
	hintsCache     = make(map[string]map[string]string)
	cacheMu        sync.RWMutex
)

// Responses returns the candidate responses for a bucket.
// Returns an error if the bucket is not found.
func Responses(bucket string) ([]string, error) {
	all, err := loadResponses(ResponsesFile)
	if err != nil {
		return nil, err
	}

	responses, exists := all[bucket]
	if !exists || len(responses) == 0 {
		return nil, fmt.Errorf("response bucket %q not found in %s", bucket, ResponsesFile)
	}

	out := make([]string, len(responses))
	copy(out, responses)
	return out, nil
}

// Buckets returns all bucket names in the corpus, sorted.
func Buckets() ([]string, error) {
	all, err := loadResponses(ResponsesFile)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(all))
	for key := range all {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Hint returns the placeholder prompt for a target kind ("personal-info" or a section type).
// Unknown kinds yield an empty string.
func Hint(kind string) string {
	hints, err := loadHints(HintsFile)
	if err != nil {
		return ""
	}
	return hints[kind]
}

func loadResponses(filename string) (map[string][]string, error) {
	cacheMu.RLock()
	if cached, exists := responsesCache[filename]; exists {
		cacheMu.RUnlock()
		return cached, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var parsed map[string][]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	responsesCache[filename] = parsed
	cacheMu.Unlock()

	return parsed, nil
}

func loadHints(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if cached, exists := hintsCache[filename]; exists {
		cacheMu.RUnlock()
		return cached, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	hintsCache[filename] = parsed
	cacheMu.Unlock()

	return parsed, nil
}

// clearCache drops the parsed files so the next call re-reads them
func clearCache() {
	cacheMu.Lock()
	responsesCache = make(map[string]map[string][]string)
	hintsCache = make(map[string]map[string]string)
	cacheMu.Unlock()
}
