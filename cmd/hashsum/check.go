package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/cli/sflags"
	"github.com/streamingfast/hasher"
	"github.com/streamingfast/hasher/blake2b"
	"github.com/streamingfast/hasher/checksum"
	"go.uber.org/zap"
)

var checkCmd = Command(checkE,
	"check <checksum-file>",
	"Verify inputs against a checksum file produced by 'hashsum sum' or b2sum",
	Description(`
		Read checksum lines from <checksum-file> ('-' for standard input), hash every
		named input again and report whether it still matches. Digests may be hex or
		multibase encoded, their length must match --length.
	`),
	ExactArgs(1),
	Flags(func(flags *pflag.FlagSet) {
		flags.Uint64P("length", "l", 512, "Digest length in bits, either 256 or 512")
		flags.Uint64("parallelism", 4, "Number of inputs hashed concurrently")
		flags.Bool("quiet", false, "Do not print OK for each successfully verified input")
	}),
)

func checkE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	quiet := sflags.MustGetBool(cmd, "quiet")

	return dispatchLength(
		sflags.MustGetUint64(cmd, "length"),
		int(sflags.MustGetUint64(cmd, "parallelism")),
		func(summer *checksum.Summer[hasher.Size32]) error { return verify(ctx, summer, args[0], quiet) },
		func(summer *checksum.Summer[hasher.Size64]) error { return verify(ctx, summer, args[0], quiet) },
	)
}

func verify[L blake2b.Length](ctx context.Context, summer *checksum.Summer[L], checksumFile string, quiet bool) error {
	in, err := checksum.Open(ctx, checksumFile)
	if err != nil {
		return err
	}
	defer in.Close()

	report, err := summer.Verify(ctx, in)
	if err != nil {
		return err
	}

	for _, verification := range report.Verifications {
		if verification.Status == checksum.StatusOK && quiet {
			continue
		}

		fmt.Printf("%s: %s\n", verification.Line.Name, verification.Status)
		if verification.Err != nil {
			zlog.Debug("unable to hash input", zap.String("input", verification.Line.Name), zap.Error(verification.Err))
		}
	}

	if report.Malformed > 0 {
		fmt.Fprintf(os.Stderr, "WARNING: %d lines are improperly formatted\n", report.Malformed)
	}
	if report.Unread > 0 {
		fmt.Fprintf(os.Stderr, "WARNING: %d listed files could not be read\n", report.Unread)
	}
	if report.Failed > 0 {
		fmt.Fprintf(os.Stderr, "WARNING: %d computed checksums did NOT match\n", report.Failed)
	}

	if !report.OK() {
		return fmt.Errorf("verification of %q failed", checksumFile)
	}

	return nil
}
