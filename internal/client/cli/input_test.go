package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("hawes\n"))

	text, err := GetSimpleText(reader, "Enter slug", &out)
	require.NoError(t, err)
	assert.Equal(t, "hawes", text)
	assert.Contains(t, out.String(), "Enter slug")
}

func TestGetSimpleTextPartialLineOnEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("no newline"))

	text, err := GetSimpleText(reader, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", text)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer

	assert.True(t, Confirm(bufio.NewReader(strings.NewReader("y\n")), "Delete?", &out))
	assert.True(t, Confirm(bufio.NewReader(strings.NewReader("Y\n")), "Delete?", &out))
	assert.False(t, Confirm(bufio.NewReader(strings.NewReader("n\n")), "Delete?", &out))
	assert.False(t, Confirm(bufio.NewReader(strings.NewReader("\n")), "Delete?", &out))
}
