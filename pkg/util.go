package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// GenerateRandomBytes returns securely generated random bytes.
// It will return an error if the system's secure random
// number generator fails to function correctly, in which
// case the caller should not continue
func GenerateRandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid random bytes length: %d", n)
	}

	b := make([]byte, n)
	// Note that err == nil only if we read len(b) bytes.
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}

	return b, nil
}

// GenerateRandomString returns a URL-safe, base64 encoded
// securely generated random string.
func GenerateRandomString(s int) (string, error) {
	b, err := GenerateRandomBytes(s)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

const maxPageSize = 200

// ParsePageAndSize reads "page" and "size" route vars, both must be positive.
func ParsePageAndSize(vars map[string]string) (page, size int, err error) {
	page, err = strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		return 0, 0, errors.New("error, invalid page")
	}
	size, err = strconv.Atoi(vars["size"])
	if err != nil || size < 1 || size > maxPageSize {
		return 0, 0, errors.New("error, invalid size")
	}
	return page, size, nil
}

// ParseTimeRange reads RFC3339 "from" and "to" query params.
// Missing "to" means now, missing "from" means defaultSpan before "to".
func ParseTimeRange(query url.Values, defaultSpan time.Duration) (from, to time.Time, err error) {
	to = time.Now()
	if raw := query.Get("to"); raw != "" {
		to, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("error, invalid to")
		}
	}
	from = to.Add(-defaultSpan)
	if raw := query.Get("from"); raw != "" {
		from, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("error, invalid from")
		}
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, errors.New("error, from after to")
	}
	return from, to, nil
}
