package main

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/dmetrics"
	"github.com/streamingfast/hasher/checksum"
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

// Version value, injected via go build `ldflags` at build time
var version = "dev"

func init() {
	logging.InstantiateLoggers(logging.WithDefaultLevel(zap.InfoLevel))
}

func main() {
	Run("hashsum", "Compute and check BLAKE2b digests of local or remote files",
		sumCmd,
		checkCmd,

		ConfigureViper("HASHSUM"),
		ConfigureVersion(version),

		PersistentFlags(
			func(flags *pflag.FlagSet) {
				flags.String("metrics-listen-addr", "", "[OPERATOR] If non-empty, the process will listen on this address for Prometheus metrics request(s)")
				flags.String("pprof-listen-addr", "", "[OPERATOR] If non-empty, the process will listen on this address for pprof analysis (see https://golang.org/pkg/net/http/pprof/)")
			},
		),
		AfterAllHook(func(cmd *cobra.Command) {
			cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
				checksum.RegisterMetrics()

				if v := viper.GetString("global-metrics-listen-addr"); v != "" {
					zlog.Info("starting prometheus metrics server", zap.String("listen_addr", v))
					go dmetrics.Serve(v)
				}

				if v := viper.GetString("global-pprof-listen-addr"); v != "" {
					go func() {
						zlog.Info("starting pprof server", zap.String("listen_addr", v))
						err := http.ListenAndServe(v, nil)
						if err != nil {
							zlog.Debug("unable to start profiling server", zap.Error(err), zap.String("listen_addr", v))
						}
					}()
				}
			}
		}),
	)
}
