package storage

import (
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"zscore/cmd/internal/contract"
)

type fakeS3 struct {
	keys  []string
	blobs [][]byte
	err   error
}

func (f *fakeS3) UploadFile(data []byte, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	f.blobs = append(f.blobs, data)
	return key, nil
}

func TestArchiveDisabled(t *testing.T) {
	archive := NewFinancialsArchive(nil)

	key, err := archive.Archive("GB", "12345678", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, key)
	assert.False(t, archive.Enabled())
}

func TestArchiveUploadsDocument(t *testing.T) {
	client := &fakeS3{}
	archive := NewFinancialsArchive(client)
	financials := []contract.Financials{{Year: 2020, TotalAssets: 10, TotalLiabilities: 5}}
	scores := []*contract.ScoreResult{{Year: 2020, ZScore: 1.23}}

	key, err := archive.Archive("GB", "AB123456", financials, scores)
	require.NoError(t, err)
	require.Len(t, client.keys, 1)
	assert.Equal(t, key, client.keys[0])
	assert.True(t, strings.HasPrefix(key, "financials/GB/AB123456/"))
	assert.True(t, strings.HasSuffix(key, ".json"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(client.blobs[0], &doc))
	assert.Equal(t, "GB", doc["country_alpha_2_iso_code"])
	assert.Equal(t, "AB123456", doc["company_number"])
	assert.Len(t, doc["financials"], 1)
	assert.Len(t, doc["scores"], 1)
}

func TestArchivePropagatesUploadError(t *testing.T) {
	archive := NewFinancialsArchive(&fakeS3{err: errors.New("boom")})

	_, err := archive.Archive("GB", "1", nil, nil)
	assert.Error(t, err)
}

func TestArchiveKeyEscapesNumber(t *testing.T) {
	assert.Equal(t, "financials/US/a%2Fb/x.json", ArchiveKey("US", "a/b", "x"))
}
