package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// tokenSeparator splits the two parts of a composite token. It cannot appear
// in an RFC3339 timestamp, and record IDs are restricted to URL-safe characters.
const tokenSeparator = "|"

// EncodeDateIDBasedToken creates a token for keyset pagination over a
// (date, id) composite sort key. The id part disambiguates rows that share a
// timestamp at a page boundary. Used by product listings ordered by creation time.
func EncodeDateIDBasedToken(date time.Time, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(date.Format(timeFormat) + tokenSeparator + id))
}

// DecodeDateIDBasedToken decodes a composite (date, id) pagination token.
func DecodeDateIDBasedToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	parts := strings.SplitN(string(decodedBytes), tokenSeparator, 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (missing id part)")
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	return date, parts[1], nil
}

// EncodeEntryNumberToken creates a token pointing at the last journal entry
// number included in a page. Journal history is ordered by entry number, so
// the cursor is the sequence position itself.
func EncodeEntryNumberToken(entryNumber uint64) string {
	return base64.StdEncoding.EncodeToString([]byte(strconv.FormatUint(entryNumber, 10)))
}

// DecodeEntryNumberToken decodes an entry-number pagination token.
func DecodeEntryNumberToken(token string) (uint64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	n, err := strconv.ParseUint(string(decodedBytes), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (entry number parse): %w", err)
	}

	return n, nil
}
