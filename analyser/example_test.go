package analyser_test

import (
	"context"
	"fmt"

	"github.com/nnir/tensorplan/analyser"
	"github.com/nnir/tensorplan/analyser/config"
	"github.com/nnir/tensorplan/fact"
	"github.com/nnir/tensorplan/graph"
	"github.com/nnir/tensorplan/model"
	"github.com/nnir/tensorplan/op"
)

// Example hints a shape onto a graph's single input and runs propagation
// forward through an Identity node to its output.
func Example() {
	m := model.New([]model.NodeSpec{
		{Name: "x", OpName: "Placeholder", Op: op.Placeholder{}},
		{Name: "y", OpName: "Identity", Op: op.Identity{}, Inputs: []graph.Input{{Producer: 0}}},
	})

	a, err := analyser.New(m, 1, config.Default(), nil, nil)
	if err != nil {
		panic(err)
	}

	hinted := fact.Tensor{
		Type:  fact.OnlyType(fact.F32),
		Shape: fact.ClosedShape(fact.OnlyDim(3)),
		Value: fact.AnyValue,
	}
	if err := a.Hint(0, hinted); err != nil {
		panic(err)
	}

	if _, err := a.Run(context.Background()); err != nil {
		panic(err)
	}

	g := a.Graph()
	edges := g.NextEdges(1)
	fmt.Println(g.Edge(edges[0]).Fact.Shape)
	// Output: [3]
}
