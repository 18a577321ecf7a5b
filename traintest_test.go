package neuralnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YazanAlHariri/neuralnet/costfuncs"
	"github.com/YazanAlHariri/neuralnet/initializers"
)

var patterns = []Datum{
	{[]float64{1, 0, 1, 0, 1}, []float64{1, 0}},
	{[]float64{0, 1, 0, 1, 0}, []float64{0, 1}},
}

func TestDatum_Fits(t *testing.T) {
	net, err := New(5, 1, 3, 2, initializers.Seeded(1))
	require.NoError(t, err)

	assert.True(t, patterns[0].Fits(net))
	assert.False(t, Datum{[]float64{1}, []float64{1, 0}}.Fits(net))
	assert.False(t, Datum{[]float64{1, 0, 1, 0, 1}, []float64{1}}.Fits(net))
}

func TestTrain_MatchesBackpropagate(t *testing.T) {
	a, err := New(5, 1, 3, 2, initializers.Seeded(6))
	require.NoError(t, err)
	b := a.Copy()

	require.NoError(t, a.Train(patterns, 25))
	for i := 0; i < 25; i++ {
		for _, d := range patterns {
			_, err := b.Backpropagate(d.Inputs, d.Outputs)
			require.NoError(t, err)
		}
	}

	assert.Equal(t, encoded(t, b), encoded(t, a))
}

func TestTrain_RejectsBadData(t *testing.T) {
	net, err := New(5, 1, 3, 2, initializers.Seeded(1))
	require.NoError(t, err)
	saved := encoded(t, net)

	data := append([]Datum{}, patterns...)
	data = append(data, Datum{[]float64{1, 0}, []float64{1, 0}})

	err = net.Train(data, 3)
	var sizeErr SizeMismatchError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, SizeMismatchError{5, 2, "inputs"}, sizeErr)
	assert.Equal(t, saved, encoded(t, net))

	err = net.Train([]Datum{{[]float64{1, 0, 1, 0, 1}, nil}}, 1)
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, SizeMismatchError{2, 0, "outputs"}, sizeErr)
}

func TestTest(t *testing.T) {
	net, err := New(5, 2, 10, 2, initializers.Seeded(3))
	require.NoError(t, err)
	net.LearningRate = 0.1

	before, _, err := net.Test(patterns, costfuncs.MSE(), CorrectHighest)
	require.NoError(t, err)

	saved := encoded(t, net)
	_, _, err = net.Test(patterns, costfuncs.MSE(), nil)
	require.NoError(t, err)
	assert.Equal(t, saved, encoded(t, net), "Test must not train")

	require.NoError(t, net.Train(patterns, 2000))

	after, percent, err := net.Test(patterns, costfuncs.MSE(), CorrectHighest)
	require.NoError(t, err)
	assert.Less(t, after, before)
	assert.Equal(t, 100.0, percent)

	_, percent, err = net.Test(patterns, costfuncs.MSE(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, percent)
}

func TestTest_Errors(t *testing.T) {
	net, err := New(5, 1, 3, 2, initializers.Seeded(1))
	require.NoError(t, err)

	_, _, err = net.Test(patterns, nil, nil)
	assert.Equal(t, NilArgError{"CostFunction"}, err)

	cost, percent, err := net.Test(nil, costfuncs.MSE(), CorrectRound)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Zero(t, percent)

	_, _, err = net.Test([]Datum{{[]float64{1}, []float64{1, 0}}}, costfuncs.MSE(), nil)
	assert.Error(t, err)
}

func TestCorrectRound(t *testing.T) {
	assert.True(t, CorrectRound([]float64{0.9, 0.2}, []float64{1, 0}))
	assert.False(t, CorrectRound([]float64{0.9, 0.6}, []float64{1, 0}))
	assert.True(t, CorrectRound(nil, nil))
}

func TestCorrectHighest(t *testing.T) {
	assert.True(t, CorrectHighest([]float64{0.1, 0.7, 0.6}, []float64{0, 1, 0}))
	assert.False(t, CorrectHighest([]float64{0.8, 0.7, 0.6}, []float64{0, 1, 0}))
	assert.True(t, CorrectHighest([]float64{0.5, 0.5}, []float64{1, 1}), "ties go to the first index")
}
