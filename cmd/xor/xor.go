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
	statusFrequency int = 500

	// main hyperparameters
	learningRate  float64 = 0.5
	hiddenSize    int     = 4
	maxIterations int     = 5000

	// where to save/load the network
	saveFile string = "xor save.json"
)

func train(net *nn.Network, dataset []nn.Datum) {
	fmt.Println("Starting training...")
	fmt.Println("Iteration, Cost, Percent")

	for it := 0; it < maxIterations; it += statusFrequency {
		if err := net.Train(dataset, statusFrequency); err != nil {
			panic(err.Error())
		}

		cost, percent, err := net.Test(dataset, costfuncs.MSE(), nn.CorrectRound)
		if err != nil {
			panic(err.Error())
		}

		fmt.Printf("%d, %v, %v\n", it+statusFrequency, cost, percent)
	}

	fmt.Println("Done training!")
}

func test(net *nn.Network, dataset []nn.Datum) {
	fmt.Println("Testing...")
	for _, d := range dataset {
		outs, err := net.Evaluate(d.Inputs)
		if err != nil {
			panic(err.Error())
		}

		fmt.Println(d.Inputs, "->", outs)
	}
}

func save(net *nn.Network, path string) {
	fmt.Println("Saving...")
	if err := net.Save(path); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")
}

func load(path string) *nn.Network {
	fmt.Println("Loading...")
	net, err := nn.Load(path)
	if err != nil {
		panic(err.Error())
	}
	net.LearningRate = learningRate
	fmt.Println("Done!")

	return net
}

func main() {
	dataset := []nn.Datum{
		{Inputs: []float64{0, 0}, Outputs: []float64{0}},
		{Inputs: []float64{0, 1}, Outputs: []float64{1}},
		{Inputs: []float64{1, 0}, Outputs: []float64{1}},
		{Inputs: []float64{1, 1}, Outputs: []float64{0}},
	}

	fmt.Println("Setting up network...")
	net, err := nn.New(2, 1, hiddenSize, 1, initializers.Seeded(1))
	if err != nil {
		panic(err.Error())
	}
	net.LearningRate = learningRate
	fmt.Println("Done!")

	path := filepath.Join(os.TempDir(), saveFile)

	train(net, dataset)
	test(net, dataset)
	save(net, path)
	net = load(path)
	train(net, dataset)
	test(net, dataset)
}
