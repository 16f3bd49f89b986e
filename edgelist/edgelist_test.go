package edgelist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstprim/core"
	"github.com/katalvlaran/mstprim/edgelist"
)

func TestParse_Triangle(t *testing.T) {
	res, err := edgelist.Parse(strings.NewReader("3 3\n0 1 4\n1 2 2\n0 2 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Order)
	assert.Equal(t, 3, res.Declared)
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, []core.Edge{
		{Src: 0, Dest: 1, Weight: 4},
		{Src: 1, Dest: 2, Weight: 2},
		{Src: 0, Dest: 2, Weight: 5},
	}, res.Edges)
}

func TestParse_SingleVertexNoEdges(t *testing.T) {
	res, err := edgelist.Parse(strings.NewReader("1 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Order)
	assert.Empty(t, res.Edges)
	assert.Empty(t, res.Diagnostics)
}

func TestParse_WhitespaceAndExtraFields(t *testing.T) {
	// Leading/trailing blanks and tabs are tolerated; a fourth field is ignored.
	res, err := edgelist.Parse(strings.NewReader("  2\t1  extra\n\t0   1 7 trailing\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{Src: 0, Dest: 1, Weight: 7}}, res.Edges)
}

func TestParse_InvalidEdgesSkipped(t *testing.T) {
	input := strings.Join([]string{
		"3 5",
		"0 1 0",  // zero weight
		"0 1 -3", // negative weight
		"0 3 2",  // vertex N
		"-1 2 2", // negative vertex
		"1 2 6",  // valid
	}, "\n")

	res, err := edgelist.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{Src: 1, Dest: 2, Weight: 6}}, res.Edges)
	require.Len(t, res.Diagnostics, 4)
	assert.Equal(t, 4, res.Skipped())

	want := []edgelist.Diagnostic{
		{Line: 2, Kind: edgelist.KindInvalidEdge, Message: "Error: Invalid edge (0, 1, 0). Skipping."},
		{Line: 3, Kind: edgelist.KindInvalidEdge, Message: "Error: Invalid edge (0, 1, -3). Skipping."},
		{Line: 4, Kind: edgelist.KindInvalidEdge, Message: "Error: Invalid edge (0, 3, 2). Skipping."},
		{Line: 5, Kind: edgelist.KindInvalidEdge, Message: "Error: Invalid edge (-1, 2, 2). Skipping."},
	}
	assert.Equal(t, want, res.Diagnostics)
}

func TestParse_MalformedLinesSkipped(t *testing.T) {
	input := "2 3\nzero one two\n0 1\n0 1 3\n"
	res, err := edgelist.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []core.Edge{{Src: 0, Dest: 1, Weight: 3}}, res.Edges)
	require.Len(t, res.Diagnostics, 2)
	for i, d := range res.Diagnostics {
		assert.Equal(t, edgelist.KindFormat, d.Kind)
		assert.Equal(t, "Error: Invalid format in input file. Skipping line.", d.Message)
		assert.Equal(t, i+2, d.Line)
	}
}

func TestParse_MissingLinesCollapsed(t *testing.T) {
	// Header declares 3 edges but only one is present.
	res, err := edgelist.Parse(strings.NewReader("2 3\n0 1 1\n"))
	require.NoError(t, err)
	assert.Len(t, res.Edges, 1)
	assert.Equal(t, 2, res.Missing)
	assert.Equal(t, 2, res.Skipped())
	assert.Equal(t, []edgelist.Diagnostic{{
		Line:    3,
		Kind:    edgelist.KindMissing,
		Message: "Error: Input file ends early, 2 edge line(s) missing. Skipping.",
	}}, res.Diagnostics)
}

func TestParse_HugeDeclaredCountSingleDiagnostic(t *testing.T) {
	// A wildly inflated edge count must not produce one entry per absent line.
	res, err := edgelist.Parse(strings.NewReader("2 2000000000\n0 1 1\nbad\n"))
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 2)
	assert.Equal(t, edgelist.KindFormat, res.Diagnostics[0].Kind)
	assert.Equal(t, edgelist.KindMissing, res.Diagnostics[1].Kind)
	assert.Equal(t, 2000000000-2, res.Missing)
	assert.Equal(t, 2000000000-1, res.Skipped())
}

func TestParse_WeightBounds(t *testing.T) {
	// The largest 32-bit weight is accepted as-is.
	res, err := edgelist.Parse(strings.NewReader("3 2\n0 1 2147483647\n1 2 2147483647\n"))
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, []core.Edge{
		{Src: 0, Dest: 1, Weight: 2147483647},
		{Src: 1, Dest: 2, Weight: 2147483647},
	}, res.Edges)

	// Tokens beyond int32, including the int64 maximum, are format errors.
	input := strings.Join([]string{
		"2 3",
		"0 1 2147483648",
		"0 1 9223372036854775807",
		"0 4294967296 1",
	}, "\n")
	res, err = edgelist.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	require.Len(t, res.Diagnostics, 3)
	for _, d := range res.Diagnostics {
		assert.Equal(t, edgelist.KindFormat, d.Kind)
	}
}

func TestParse_NumericPrefixRejected(t *testing.T) {
	// Tokens must be whole integers; "4.7" and "1x" are not read as 4 and 1.
	res, err := edgelist.Parse(strings.NewReader("2 3\n0 1 4.7\n0 1x 2\n0 1 5\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{Src: 0, Dest: 1, Weight: 5}}, res.Edges)
	require.Len(t, res.Diagnostics, 2)
	assert.Equal(t, edgelist.KindFormat, res.Diagnostics[0].Kind)
	assert.Equal(t, edgelist.KindFormat, res.Diagnostics[1].Kind)

	_, err = edgelist.Parse(strings.NewReader("3 3x\n0 1 1\n"))
	assert.ErrorIs(t, err, edgelist.ErrInvalidHeader)
}

func TestParse_LinesAfterDeclaredCountIgnored(t *testing.T) {
	res, err := edgelist.Parse(strings.NewReader("2 1\n0 1 1\ngarbage\n0 1 9\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{Src: 0, Dest: 1, Weight: 1}}, res.Edges)
	assert.Empty(t, res.Diagnostics)
}

func TestParse_InvalidHeader(t *testing.T) {
	cases := map[string]string{
		"missing":     "",
		"one field":   "3\n",
		"not numbers": "three three\n",
		"bad edges":   "3 x\n",
		"negative":    "-1 0\n",
		"blank":       "\n0 1 1\n",
		"too large":   "2147483648 0\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := edgelist.Parse(strings.NewReader(input))
			assert.ErrorIs(t, err, edgelist.ErrInvalidHeader)
		})
	}
}

func TestParseFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := edgelist.ParseFile(filepath.Join(dir, "absent.txt"))
	assert.ErrorIs(t, err, edgelist.ErrOpenInput)

	_, err = edgelist.ParseFile(dir)
	assert.ErrorIs(t, err, edgelist.ErrOpenInput)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = edgelist.ParseFile(empty)
	assert.ErrorIs(t, err, edgelist.ErrEmptyInput)
}

func TestParseFile_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 3\n0 1 4\n1 2 2\n0 2 5\n"), 0o600))

	res, err := edgelist.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, res.Edges, 3)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "format", edgelist.KindFormat.String())
	assert.Equal(t, "invalid_edge", edgelist.KindInvalidEdge.String())
	assert.Equal(t, "missing", edgelist.KindMissing.String())
	assert.Equal(t, "unknown", edgelist.Kind(0).String())
}
