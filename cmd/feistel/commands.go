package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedisct1/go-feistel"
	"github.com/urfave/cli"
)

var (
	keyFlag = cli.StringFlag{
		Name:   "key, k",
		Usage:  "the key as 16 binary digits",
		EnvVar: "FEISTEL_KEY",
	}
	modeFlag = cli.StringFlag{
		Name:   "mode, m",
		Value:  feistel.Encrypt.String(),
		Usage:  "the direction, either encrypt or decrypt",
		EnvVar: "FEISTEL_MODE",
	}
)

var encryptCommand = cli.Command{
	Name:      "encrypt",
	Usage:     "Encrypt a block.",
	ArgsUsage: "--key=K block",
	Description: `
	Encrypt a block given as 16 binary digits, most significant bit first,
	and print the ciphertext in the same form.

	feistel encrypt --key=1010101001010101 1010110010101010
	`,
	Flags: []cli.Flag{keyFlag},
	Action: func(ctx *cli.Context) error {
		return runTransform(ctx, feistel.Encrypt.String())
	},
}

var decryptCommand = cli.Command{
	Name:      "decrypt",
	Usage:     "Decrypt a block.",
	ArgsUsage: "--key=K block",
	Description: `
	Decrypt a ciphertext block given as 16 binary digits and print the
	plaintext in the same form.
	`,
	Flags: []cli.Flag{keyFlag},
	Action: func(ctx *cli.Context) error {
		return runTransform(ctx, feistel.Decrypt.String())
	},
}

var transformCommand = cli.Command{
	Name:      "transform",
	Usage:     "Encrypt or decrypt a block depending on --mode.",
	ArgsUsage: "--key=K [--mode=M] block",
	Flags:     []cli.Flag{keyFlag, modeFlag},
	Action: func(ctx *cli.Context) error {
		return runTransform(ctx, ctx.String("mode"))
	},
}

var traceCommand = cli.Command{
	Name:      "trace",
	Usage:     "Show the state after every round.",
	ArgsUsage: "--key=K [--mode=M] block",
	Description: `
	Run the transform and print a table with the left and right halves
	after entry and after each round, together with the subkey and the
	round function output mixed in at that round.
	`,
	Flags:  []cli.Flag{keyFlag, modeFlag},
	Action: trace,
}

var sboxCommand = cli.Command{
	Name:   "sbox",
	Usage:  "Print the substitution box and its inverse.",
	Action: printSBox,
}

// blockArg returns the single positional block argument.
func blockArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one block argument, "+
			"got %d", ctx.NArg())
	}
	return ctx.Args().First(), nil
}

func runTransform(ctx *cli.Context, mode string) error {
	block, err := blockArg(ctx)
	if err != nil {
		return err
	}
	key := ctx.String("key")

	if ctx.GlobalBool("compat") {
		fmt.Fprintln(ctx.App.Writer, feistel.TransformCompat(block, key, mode))
		return nil
	}

	out, err := feistel.Transform(block, key, mode)
	if err != nil {
		return fmt.Errorf("transform failed: %w", err)
	}
	fmt.Fprintln(ctx.App.Writer, out)

	return nil
}

func trace(ctx *cli.Context) error {
	blockStr, err := blockArg(ctx)
	if err != nil {
		return err
	}
	block, err := feistel.ParseBlock(blockStr)
	if err != nil {
		return err
	}
	key, err := feistel.ParseKey(ctx.String("key"))
	if err != nil {
		return err
	}
	mode, err := feistel.ParseMode(ctx.String("mode"))
	if err != nil {
		return err
	}

	tr, err := feistel.NewCipher(key).Trace(mode, block)
	if err != nil {
		return err
	}
	renderTrace(ctx.App.Writer, tr)

	return nil
}

func renderTrace(w io.Writer, tr *feistel.Trace) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("%s %s", tr.Mode, feistel.FormatBlock(tr.Input))
	t.AppendHeader(table.Row{"Step", "Round", "Subkey", "F", "L", "R"})

	for _, r := range tr.Rounds {
		if r.Step == 0 {
			t.AppendRow(table.Row{
				0, "entry", "", "",
				feistel.FormatHalf(r.L), feistel.FormatHalf(r.R),
			})
			continue
		}
		t.AppendRow(table.Row{
			r.Step, r.Number,
			feistel.FormatHalf(r.Subkey), feistel.FormatHalf(r.F),
			feistel.FormatHalf(r.L), feistel.FormatHalf(r.R),
		})
	}

	t.AppendFooter(table.Row{
		"", "", "", "", "Output", feistel.FormatBlock(tr.Output),
	})
	t.Render()
}

func printSBox(ctx *cli.Context) error {
	t := table.NewWriter()
	t.SetOutputMirror(ctx.App.Writer)
	t.AppendHeader(table.Row{"Nibble", "S", "S^-1"})
	for n := uint8(0); n < 16; n++ {
		t.AppendRow(table.Row{
			fmt.Sprintf("%04b", n),
			fmt.Sprintf("%04b", feistel.SBox(n)),
			fmt.Sprintf("%04b", feistel.InverseSBox(n)),
		})
	}
	t.Render()

	return nil
}
