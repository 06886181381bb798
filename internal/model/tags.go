package model

import (
	"fmt"
	"strings"
)

// tagDelimiter separates tags in their stored form. JoinTags rejects any
// tag containing it, so SplitTags(JoinTags(tags)) always reproduces the
// original list.
const tagDelimiter = ","

// JoinTags encodes a tag list into its stored single-string form.
func JoinTags(tags []string) (string, error) {
	for _, tag := range tags {
		if strings.Contains(tag, tagDelimiter) {
			return "", fmt.Errorf("tag %q must not contain %q", tag, tagDelimiter)
		}
	}
	return strings.Join(tags, tagDelimiter), nil
}

// SplitTags decodes the stored form back into a tag list. An empty stored
// value decodes to an empty list, not [""].
func SplitTags(stored string) []string {
	if stored == "" {
		return []string{}
	}
	return strings.Split(stored, tagDelimiter)
}
