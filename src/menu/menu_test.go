package menu

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestRender_NumbersItemsFromOne(t *testing.T) {
	got := Render("Things", []string{"alpha", "beta", "gamma"})
	assert.Equal(t, "Things\n1) alpha\n2) beta\n3) gamma\n", got)
}

func TestParseSelection_Valid(t *testing.T) {
	idx, err := ParseSelection("2\n", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestParseSelection_Bounds(t *testing.T) {
	for _, input := range []string{"0", "4", "-1"} {
		_, err := ParseSelection(input, 3)
		assert.ErrorContains(t, err, "invalid selection", "input %q", input)
	}
}

func TestParseSelection_NotANumber(t *testing.T) {
	_, err := ParseSelection("two", 3)
	assert.ErrorContains(t, err, "not a number")
}

func TestParseSelection_Empty(t *testing.T) {
	_, err := ParseSelection("  \n", 3)
	assert.ErrorContains(t, err, "empty input")
}

func TestSelect_ReadsOneLine(t *testing.T) {
	in := strings.NewReader("3\n")
	var out bytes.Buffer
	idx, err := Select(in, &out, "Pick", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Contains(t, out.String(), "Select [1-3]: ")
}

func TestSelect_SharedReaderKeepsRemainingInput(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("1\n2\n"))
	var out bytes.Buffer

	first, err := Select(in, &out, "First", []string{"a", "b"})
	require.NoError(t, err)
	second, err := Select(in, &out, "Second", []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer

	ok, err := Confirm(strings.NewReader("y\n"), &out, "Proceed?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Confirm(strings.NewReader("\n"), &out, "Proceed?", false)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Confirm(strings.NewReader(""), &out, "Proceed?", true)
	require.NoError(t, err)
	assert.True(t, ok)
}
