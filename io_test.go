package neuralnet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YazanAlHariri/neuralnet/initializers"
)

func TestEncode_Format(t *testing.T) {
	net := smallNet(t)

	want := `[[0,2],[1,[[[0.5,-0.5],0],[[0.2,0.3],0]]],[2,[[[1,1],0]]]]` + "\n"
	assert.Equal(t, want, encoded(t, net))
}

func TestDecode_SpacedDocument(t *testing.T) {
	doc := `[[0, 2], [1, [[[0.5, -0.5], 0], [[0.2, 0.3], 0]]], [2, [[[1, 1], 0.25]]]]`

	net, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2, 1}, net.Widths())
	assert.Equal(t, []float64{0.2, 0.3}, net.Neuron(1, 1).Weights())
	assert.Equal(t, 0.25, net.Neuron(2, 0).Bias())
	assert.Equal(t, 2, net.Neuron(2, 0).LayerIndex())
	assert.Same(t, net, net.Neuron(2, 0).host)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	net, err := New(5, 2, 4, 3, initializers.Seeded(21))
	require.NoError(t, err)
	require.NoError(t, net.Train([]Datum{{[]float64{1, 0, 1, 0, 1}, []float64{1, 0, 1}}}, 10))

	inputs := [][]float64{
		{1, 0, 1, 0, 1},
		{0, 1, 0, 1, 0},
		{0.123456789, -3.5, 1e-7, 42, -0.1},
	}

	want := make([][]float64, len(inputs))
	for i := range inputs {
		want[i], err = net.Evaluate(inputs[i])
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "net.json")
	require.NoError(t, net.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, net.Widths(), loaded.Widths())
	assert.Equal(t, DefaultLearningRate, loaded.LearningRate)

	for i := range inputs {
		got, err := loaded.Evaluate(inputs[i])
		require.NoError(t, err)
		assert.Equal(t, want[i], got, "outputs differ for input %d", i)
	}

	assert.Equal(t, encoded(t, net), encoded(t, loaded))
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.json")
	require.NoError(t, os.WriteFile(path, []byte("something else entirely"), 0600))

	net := smallNet(t)
	require.NoError(t, net.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, encoded(t, net), string(data))
}

func TestSave_BadPath(t *testing.T) {
	net := smallNet(t)
	err := net.Save(filepath.Join(t.TempDir(), "missing", "net.json"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	net, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Nil(t, net)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		is   error
	}{
		{"not json", `this is not json`, nil},
		{"not an array", `{"layers": []}`, nil},
		{"empty", `[]`, ErrBadRecord},
		{"only inputs", `[[0, 2]]`, ErrNoLayers},
		{"zero inputs", `[[0, 0], [1, [[[], 0]]]]`, ErrNonPositiveWidth},
		{"wrong first index", `[[1, 2], [1, [[[1, 1], 0]]]]`, ErrBadRecord},
		{"wrong layer index", `[[0, 2], [2, [[[1, 1], 0]]]]`, ErrBadRecord},
		{"long record", `[[0, 2, 3], [1, [[[1, 1], 0]]]]`, ErrBadRecord},
		{"empty layer", `[[0, 2], [1, []]]`, ErrEmptyLayer},
		{"short neuron", `[[0, 2], [1, [[[1, 1]]]]]`, ErrBadRecord},
		{"null weights", `[[0, 2], [1, [[null, 0]]]]`, ErrBadRecord},
		{"string bias", `[[0, 2], [1, [[[1, 1], "0"]]]]`, nil},
		{"truncated", `[[0, 2], [1, [[[1, 1], 0]]]`, nil},
		{"trailing garbage", `[[0, 1], [1, [[[1], 0]]]] garbage{`, ErrTrailingData},
		{"second document", `[[0, 1], [1, [[[1], 0]]]] [[0, 1]]`, ErrTrailingData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := Decode(strings.NewReader(tt.doc))
			assert.Nil(t, net)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestDecode_WeightCountMismatch(t *testing.T) {
	doc := `[[0, 2], [1, [[[1, 1], 0], [[1, 1], 0]]], [2, [[[1, 1, 1], 0]]]]`

	_, err := Decode(strings.NewReader(doc))
	var sizeErr SizeMismatchError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, SizeMismatchError{2, 3, "neuron weights"}, sizeErr)
}

func TestDecode_TrailingWhitespace(t *testing.T) {
	net, err := Decode(strings.NewReader("[[0, 1], [1, [[[1], 0]]]]\n\t \n"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, net.Widths())
}
