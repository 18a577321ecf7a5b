package main

import (
	nn "github.com/YazanAlHariri/neuralnet"
	"github.com/YazanAlHariri/neuralnet/costfuncs"
	"github.com/YazanAlHariri/neuralnet/initializers"

	"fmt"
	"os"
	"path/filepath"
)

const (
	seed int64 = 1

	// main hyperparameters
	hiddenLayers  int = 5
	hiddenSize    int = 10
	iterations    int = 10000
	retrainRounds int = 100

	// where to save/load the network
	saveFile string = "net3.json"
)

func must(err error) {
	if err != nil {
		panic(err.Error())
	}
}

func show(net *nn.Network, data []nn.Datum) {
	for _, d := range data {
		outs, err := net.Evaluate(d.Inputs)
		must(err)
		fmt.Println(outs)
	}

	cost, percent, err := net.Test(data, costfuncs.MSE(), nn.CorrectRound)
	must(err)
	fmt.Printf("mse: %v, correct: %v%%\n\n", cost, percent)
}

// flip swaps the inputs and outputs of every Datum
func flip(data []nn.Datum) []nn.Datum {
	flipped := make([]nn.Datum, len(data))
	for i, d := range data {
		flipped[i] = nn.Datum{Inputs: d.Outputs, Outputs: d.Inputs}
	}

	return flipped
}

func main() {
	dataset := []nn.Datum{
		{Inputs: []float64{1, 0, 1, 0, 1}, Outputs: []float64{1, 0}},
		{Inputs: []float64{0, 1, 0, 1, 0}, Outputs: []float64{0, 1}},
	}
	reversed := flip(dataset)

	fmt.Println("Setting up network...")
	net, err := nn.New(5, hiddenLayers, hiddenSize, 2, initializers.Seeded(seed))
	must(err)

	fmt.Println("Training...")
	must(net.Train(dataset, iterations))
	show(net, dataset)

	fmt.Println("Reversing...")
	net2 := net.Reverse()
	show(net2, reversed)

	fmt.Println("Retraining reversed network...")
	must(net2.Train(reversed, retrainRounds))
	show(net2, reversed)

	fmt.Println("Transplanting into a new network...")
	net3, err := nn.New(2, hiddenLayers, hiddenSize, 5, initializers.Seeded(seed+1))
	must(err)
	fmt.Println(net2.Widths(), net3.Widths())
	must(net3.Transplant(net2))
	show(net3, reversed)

	path := filepath.Join(os.TempDir(), saveFile)
	fmt.Println("Saving to", path)
	must(net3.Save(path))

	fmt.Println("Loading...")
	net4, err := nn.Load(path)
	must(err)
	show(net4, reversed)

	fmt.Println("Done!")
}
