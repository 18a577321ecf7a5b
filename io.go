package neuralnet

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// The saved form of a Network is a JSON array with one record per layer. Record 0 is
// [0, inputSize]. Every other record is [index, neurons], where neurons has one entry
// [weights, bias] for each Neuron of the layer, in order.

// Encode writes the Network to w as a single JSON document, followed by a newline.
func (net *Network) Encode(w io.Writer) error {
	records := make([]interface{}, len(net.layers))
	records[0] = []interface{}{0, net.InputSize()}

	for l := 1; l < len(net.layers); l++ {
		ns := make([]interface{}, len(net.layers[l].neurons))
		for i, n := range net.layers[l].neurons {
			ns[i] = []interface{}{n.weights, n.bias}
		}

		records[l] = []interface{}{l, ns}
	}

	if err := json.NewEncoder(w).Encode(records); err != nil {
		return errors.Wrapf(err, "Couldn't encode network")
	}

	return nil
}

// Decode reads a Network written by Encode. Either the whole Network is read and checked, or an
// error is returned.
func Decode(r io.Reader) (*Network, error) {
	dec := json.NewDecoder(r)

	var records []json.RawMessage
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Wrapf(err, "Couldn't decode network")
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.Wrapf(ErrTrailingData, "Couldn't decode network")
	}

	if len(records) == 0 {
		return nil, errors.Wrapf(ErrBadRecord, "Couldn't decode network, no records")
	}

	var inputSize int
	if err := decodeRecord(records[0], 0, &inputSize); err != nil {
		return nil, err
	}

	layers := make([][]*Neuron, len(records)-1)
	for l := 1; l < len(records); l++ {
		var ns []json.RawMessage
		if err := decodeRecord(records[l], l, &ns); err != nil {
			return nil, err
		}

		layers[l-1] = make([]*Neuron, len(ns))
		for i := range ns {
			n, err := decodeNeuron(ns[i], l)
			if err != nil {
				return nil, errors.Wrapf(err, "Couldn't decode neuron %d of layer %d", i, l)
			}

			layers[l-1][i] = n
		}
	}

	net, err := FromNeurons(inputSize, layers...)
	if err != nil {
		return nil, errors.Wrapf(err, "Decoded network is invalid")
	}

	return net, nil
}

// decodeRecord checks that the record is a pair whose first element is index, and decodes the
// second element into content
func decodeRecord(raw json.RawMessage, index int, content interface{}) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return errors.Wrapf(err, "Couldn't decode record %d", index)
	} else if len(pair) != 2 {
		return errors.Wrapf(ErrBadRecord, "Record %d has %d elements, expected 2", index, len(pair))
	}

	var got int
	if err := json.Unmarshal(pair[0], &got); err != nil {
		return errors.Wrapf(err, "Couldn't decode index of record %d", index)
	} else if got != index {
		return errors.Wrapf(ErrBadRecord, "Record %d has index %d", index, got)
	}

	if err := json.Unmarshal(pair[1], content); err != nil {
		return errors.Wrapf(err, "Couldn't decode contents of record %d", index)
	}

	return nil
}

func decodeNeuron(raw json.RawMessage, layerIndex int) (*Neuron, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, err
	} else if len(pair) != 2 {
		return nil, errors.Wrapf(ErrBadRecord, "Neuron record has %d elements, expected 2", len(pair))
	}

	var ws []float64
	var bias float64
	if err := json.Unmarshal(pair[0], &ws); err != nil {
		return nil, errors.Wrapf(err, "Couldn't decode weights")
	} else if ws == nil {
		return nil, errors.Wrapf(ErrBadRecord, "Neuron has no weights")
	}

	if err := json.Unmarshal(pair[1], &bias); err != nil {
		return nil, errors.Wrapf(err, "Couldn't decode bias")
	}

	return NewNeuron(layerIndex, ws, bias), nil
}

// Save writes the Network to the file at path, replacing it if it exists.
func (net *Network) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't create file %q", path)
	}

	if err = net.Encode(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "Can't save network to %q", path)
	}

	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't close %q", path)
	}

	return nil
}

// Load reads a Network from a file written by Save. The LearningRate of the result is
// DefaultLearningRate.
func Load(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network, couldn't open %q", path)
	}
	defer f.Close()

	net, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network from %q", path)
	}

	return net, nil
}
