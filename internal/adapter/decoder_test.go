package adapter

import (
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestLookupEncoding(t *testing.T) {
	enc, err := LookupEncoding("")
	require.NoError(t, err)
	assert.Equal(t, unicode.UTF8, enc)

	enc, err = LookupEncoding("latin1")
	require.NoError(t, err)
	assert.Equal(t, charmap.ISO8859_1, enc)

	enc, err = LookupEncoding("windows-1252")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1252, enc)

	_, err = LookupEncoding("not-an-encoding")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.Contains(t, err.Error(), "not-an-encoding")
}

func TestDecodeText(t *testing.T) {
	text, err := decodeText([]byte("plain ascii"), "")
	require.NoError(t, err)
	assert.Equal(t, "plain ascii", text)

	_, err = decodeText([]byte{0xc3, 0x28}, "utf-8")
	assert.Error(t, err)

	text, err = decodeText([]byte{0x93, 'q', 0x94}, "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "“q”", text)
}
