package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = GetPassword(&out)
	require.Error(t, err)
}

func TestGetFieldValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		current  string
		options  []string
		want     string
		keep     bool
		wantText string
	}{
		{name: "keep current", input: "\n", current: "STAFF", options: []string{"ADMIN", "STAFF"}, want: "STAFF", keep: true, wantText: "Role (ADMIN/STAFF) [STAFF]: "},
		{name: "new value", input: " MANAGER \n", current: "STAFF", want: "MANAGER", wantText: "Role [STAFF]: "},
		{name: "no current", input: "x\n", want: "x", wantText: "Role: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, keep, err := GetFieldValue(bufio.NewReader(strings.NewReader(tt.input)), "Role", tt.current, tt.options, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.keep, keep)
			assert.Equal(t, tt.wantText, out.String())
		})
	}
}

func TestConfirm(t *testing.T) {
	for in, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "sure\n": false} {
		var out bytes.Buffer
		got, err := Confirm(bufio.NewReader(strings.NewReader(in)), "Delete?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
