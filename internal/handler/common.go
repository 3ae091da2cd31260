package handler

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// getUserID extracts the user_id from echo.Context and converts it to a
// string suitable for audit fields. JWT numeric claims arrive as
// float64; external issuers sometimes use string subjects.
func getUserID(c echo.Context) (string, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case string:
		if t != "" {
			return t, nil
		}
	case float64:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	}
	return "", errors.New("invalid user_id in context")
}

// isRelationalID reports whether a roster id belongs to relational
// storage. Relational ids are decimal row ids; archive ids are
// 24-char ObjectID hex strings. An ObjectID can consist entirely of
// decimal digits, so the length is checked before the digit scan —
// a MySQL BIGINT never needs 24 digits.
func isRelationalID(s string) bool {
	return len(s) != 24 && isAllDigits(s)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// invalidateBrowseCache clears the cached browse responses under the
// given prefix after roster state changes. This is a non-critical side
// effect: only cache errors are swallowed, and each is logged so a
// persistently broken cache is visible. Failures never affect the
// caller's result.
func invalidateBrowseCache(ctx context.Context, rdb *redis.Client, prefix string) {
	if rdb == nil || prefix == "" {
		return
	}
	var cursor uint64
	for {
		keys, next, err := rdb.Scan(ctx, cursor, prefix+":*", 100).Result()
		if err != nil {
			log.Printf("cache: invalidation scan failed: %v", err)
			return
		}
		if len(keys) > 0 {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				log.Printf("cache: invalidation delete failed: %v", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
