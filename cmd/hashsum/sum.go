package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/cli/sflags"
	"github.com/streamingfast/hasher"
	"github.com/streamingfast/hasher/blake2b"
	"github.com/streamingfast/hasher/checksum"
)

var sumCmd = Command(sumE,
	"sum [<input>...]",
	"Print the BLAKE2b digest of each input",
	Description(`
		Hash every input and print one checksum line per input, in the same layout
		as b2sum so the output can be fed back to 'hashsum check'.

		Inputs are local paths or any URL supported by dstore (file://, s3://, gs://, az://).
		Use '-' or no input at all to read standard input.
	`),
	Flags(func(flags *pflag.FlagSet) {
		flags.Uint64P("length", "l", 512, "Digest length in bits, either 256 or 512")
		flags.String("format", "hex", "Digest rendering, either 'hex' or 'multibase' (base32 multihash)")
		flags.Uint64("parallelism", 4, "Number of inputs hashed concurrently")
	}),
)

func sumE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{checksum.Stdin}
	}

	format, err := checksum.ParseFormat(sflags.MustGetString(cmd, "format"))
	if err != nil {
		return err
	}

	return dispatchLength(
		sflags.MustGetUint64(cmd, "length"),
		int(sflags.MustGetUint64(cmd, "parallelism")),
		func(summer *checksum.Summer[hasher.Size32]) error { return printSums(ctx, summer, inputs, format) },
		func(summer *checksum.Summer[hasher.Size64]) error { return printSums(ctx, summer, inputs, format) },
	)
}

func printSums[L blake2b.Length](ctx context.Context, summer *checksum.Summer[L], inputs []string, format checksum.Format) error {
	results, err := summer.SumAll(ctx, inputs)
	if err != nil {
		return err
	}

	for _, result := range results {
		digest, err := checksum.Encode(result.Digest, format)
		if err != nil {
			return fmt.Errorf("encoding digest of %q: %w", result.Input, err)
		}

		fmt.Println(checksum.Line{Digest: digest, Name: result.Input})
	}

	return nil
}
