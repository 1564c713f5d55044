package checksum

import (
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.PackageLogger("hasher-checksum", "github.com/streamingfast/hasher/checksum")
