package usecase

import (
	"context"
	"fmt"
	"strings"
)

// maxSlugAttempts bounds the numeric suffix search in uniqueSlug.
const maxSlugAttempts = 100

// Slugify derives the URL slug of a name: lower-cased, every space replaced by a hyphen.
// No other characters are stripped or transliterated.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// slugExists reports whether slug is already used by another row.
type slugExists func(ctx context.Context, slug string) (bool, error)

// uniqueSlug returns Slugify(name), or the first free "<slug>-N" for N >= 2.
func uniqueSlug(ctx context.Context, name string, exists slugExists) (string, error) {
	base := Slugify(name)
	candidate := base
	for n := 2; n <= maxSlugAttempts+1; n++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
	return "", ErrSlugTaken
}
