package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeDateIDBasedToken(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeDateIDBasedToken(createdAt, "SKU-2024.001")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeDateIDBasedToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, createdAt, decodedDate, "Date should match after decode")
	assert.Equal(t, "SKU-2024.001", decodedID, "ID should match after decode")

	// Zero time round-trips too
	zeroToken := EncodeDateIDBasedToken(time.Time{}, "p1")
	decodedZero, decodedZeroID, err := DecodeDateIDBasedToken(zeroToken)
	assert.NoError(t, err)
	assert.Equal(t, time.Time{}, decodedZero)
	assert.Equal(t, "p1", decodedZeroID)
}

func TestDateIDTokenDistinguishesRowsSharingTimestamp(t *testing.T) {
	// Two rows created at the same instant must produce distinct cursors,
	// otherwise one of them gets skipped at a page boundary.
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 0, time.UTC)

	tokenA := EncodeDateIDBasedToken(createdAt, "product-a")
	tokenB := EncodeDateIDBasedToken(createdAt, "product-b")
	assert.NotEqual(t, tokenA, tokenB)

	_, idA, err := DecodeDateIDBasedToken(tokenA)
	assert.NoError(t, err)
	_, idB, err := DecodeDateIDBasedToken(tokenB)
	assert.NoError(t, err)
	assert.Equal(t, "product-a", idA)
	assert.Equal(t, "product-b", idB)
}

func TestEncodeDecodeEntryNumberToken(t *testing.T) {
	for _, n := range []uint64{0, 1, 42, 18446744073709551615} {
		token := EncodeEntryNumberToken(n)
		decoded, err := DecodeEntryNumberToken(token)
		assert.NoError(t, err, "Decoding should not return an error")
		assert.Equal(t, n, decoded, "Entry number should match after decode")
	}
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, _, err := DecodeDateIDBasedToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	_, err = DecodeEntryNumberToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Valid base64 but missing the id part
	noID := EncodeEntryNumberToken(7)
	_, _, err = DecodeDateIDBasedToken(noID)
	assert.Error(t, err, "Should return an error when the id part is missing")
	assert.Contains(t, err.Error(), "missing id part")

	// Separator present but the date part is not a date
	garbage := base64.StdEncoding.EncodeToString([]byte("not-a-date|x"))
	_, _, err = DecodeDateIDBasedToken(garbage)
	assert.Error(t, err, "Should return an error for invalid date format")
	assert.Contains(t, err.Error(), "date parse")

	notANumber := EncodeDateIDBasedToken(time.Now(), "x")
	_, err = DecodeEntryNumberToken(notANumber)
	assert.Error(t, err, "Should return an error for invalid entry number")
	assert.Contains(t, err.Error(), "entry number parse")
}
