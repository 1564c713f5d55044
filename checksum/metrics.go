package checksum

import "github.com/streamingfast/dmetrics"

var metrics = dmetrics.NewSet()

var HashedInputsCount = metrics.NewCounter("hashsum_hashed_inputs", "The amount of inputs fully hashed so far")
var HashedBytesCount = metrics.NewCounter("hashsum_hashed_bytes", "The amount of bytes fed to hashers so far")
var VerifyFailuresCount = metrics.NewCounter("hashsum_verify_failures", "The amount of checksum lines that did not match")

func RegisterMetrics() {
	metrics.Register()
}
