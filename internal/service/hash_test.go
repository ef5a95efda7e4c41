package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/fnurozcetin/lexStamp/pkg/errors"
)

func TestHashDocument_KnownVector(t *testing.T) {
	hash, err := HashDocument(strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", hash)
}

func TestHashDocument_Deterministic(t *testing.T) {
	content := "%PDF-1.4 some document body"

	first, err := HashDocument(strings.NewReader(content))
	require.NoError(t, err)
	second, err := HashDocument(strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestHashDocument_SensitiveToSingleByteChange(t *testing.T) {
	first, err := HashDocument(strings.NewReader("%PDF-1.4 version A"))
	require.NoError(t, err)
	second, err := HashDocument(strings.NewReader("%PDF-1.4 version B"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("truncated mid-read")
}

func TestHashDocument_UnreadableInput(t *testing.T) {
	_, err := HashDocument(brokenReader{})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeProcessing))
}
