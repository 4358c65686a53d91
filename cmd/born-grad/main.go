// Package main provides the born-grad CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/grad/internal/autodiff"
	"github.com/born-ml/grad/internal/config"
	"github.com/born-ml/grad/internal/features"
	"github.com/born-ml/grad/internal/nn"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("born-grad: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "born-grad %s\n", version)
		return nil
	case "demo":
		return runDemo(stdout)
	case "forward":
		return runForward(args[1:], stdout)
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "born-grad - scalar reverse-mode autodiff")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  demo       Differentiate log((a*b)^2) at a=5, b=10")
	fmt.Fprintln(w, "  forward    Build a network, run one forward/backward pass")
}

// runDemo differentiates e = log((a*b)^2) and prints the graph.
func runDemo(w io.Writer) error {
	tape := autodiff.NewTape()
	a := tape.Leaf(5)
	b := tape.Leaf(10)
	c := tape.Mul(a, b)
	d := tape.Pow(c, 2)
	e := tape.Log(d)

	tape.Backward(e)

	if err := tape.Print(w, e); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nde/da = %.6g\nde/db = %.6g\n", tape.Grad(a), tape.Grad(b))
	return nil
}

func runForward(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("forward", flag.ContinueOnError)
	fs.SetOutput(w)
	var (
		configPath = fs.String("config", "", "YAML network config")
		inputs     = fs.Int("inputs", 0, "number of inputs (overrides config)")
		layers     = fs.String("layers", "", "comma-separated layer sizes (overrides config)")
		seed       = fs.Uint64("seed", 0, "initialization seed (overrides config)")
		activation = fs.String("activation", "", "output activation: none or sigmoid (overrides config)")
		x          = fs.String("x", "", "comma-separated input values (default all ones)")
		text       = fs.String("text", "", "featurize text into the inputs instead of -x")
		encoding   = fs.String("encoding", features.DefaultEncoding, "tiktoken encoding for -text")
		graph      = fs.Bool("graph", false, "print the computation graph")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "inputs":
			cfg.Inputs = *inputs
		case "seed":
			cfg.Seed = *seed
		case "activation":
			cfg.Activation = *activation
		}
	})
	if *layers != "" {
		sizes, err := parseInts(*layers)
		if err != nil {
			return fmt.Errorf("invalid -layers: %w", err)
		}
		cfg.Layers = sizes
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := inputData(cfg.Inputs, *x, *text, *encoding)
	if err != nil {
		return err
	}

	tape := autodiff.NewTape()
	net := nn.NewNetwork(tape, cfg.Inputs, cfg.Layers, nn.NewRand(cfg.Seed))
	params := net.Parameters()
	fmt.Fprintf(w, "%s, %d parameters\n", net, len(params))

	out, err := nn.Activate(tape, cfg.Activation, net.Forward(nn.Inputs(tape, data...)))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Output: %v\n", nn.Data(tape, out))

	tape.Backward(out[0])
	if *graph {
		if err := tape.Print(w, out[0]); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Gradients before zero_grad:")
	for _, p := range params {
		fmt.Fprintln(w, p)
	}

	net.ZeroGrad()

	fmt.Fprintln(w, "Gradients after zero_grad:")
	for _, p := range params {
		fmt.Fprintln(w, p)
	}
	return nil
}

// inputData resolves the network input from -x, -text or the all-ones default.
func inputData(n int, x, text, encoding string) ([]float64, error) {
	switch {
	case x != "" && text != "":
		return nil, errors.New("-x and -text are mutually exclusive")
	case text != "":
		enc, err := features.NewTikToken(encoding)
		if err != nil {
			return nil, err
		}
		return features.Featurize(enc, text, n)
	case x != "":
		values, err := parseFloats(x)
		if err != nil {
			return nil, fmt.Errorf("invalid -x: %w", err)
		}
		if len(values) != n {
			return nil, fmt.Errorf("invalid -x: expected %d values, got %d", n, len(values))
		}
		return values, nil
	default:
		ones := make([]float64, n)
		for i := range ones {
			ones[i] = 1
		}
		return ones, nil
	}
}

func parseInts(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
