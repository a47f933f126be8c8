package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded cursor from the creation time and id
// of the last item on a page.
func EncodeToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.Format(timeFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded cursor back into creation time and id.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return createdAt, parts[1], nil
}

// Page returns up to limit items following the cursor in token, and the cursor
// of the next page, nil on the last one. items must be ordered most recent
// first. When the cursor item no longer exists the page resumes at the first
// item created before it. limit <= 0 returns everything after the cursor.
func Page[T any](items []T, limit int, token string, key func(T) (time.Time, string)) ([]T, *string, error) {
	start := 0
	if token != "" {
		createdAt, id, err := DecodeToken(token)
		if err != nil {
			return nil, nil, err
		}
		start = len(items)
		for i, item := range items {
			at, itemID := key(item)
			if itemID == id {
				start = i + 1
				break
			}
			if at.Before(createdAt) {
				start = i
				break
			}
		}
	}

	rest := items[start:]
	if limit <= 0 || len(rest) <= limit {
		return rest, nil, nil
	}
	page := rest[:limit]
	at, id := key(page[limit-1])
	next := EncodeToken(at, id)
	return page, &next, nil
}
