package main

import (
	"github.com/streamingfast/cli"
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.RootLogger("hashsum", "github.com/streamingfast/hasher/cmd/hashsum")

func init() {
	cli.SetLogger(zlog, tracer)
}
