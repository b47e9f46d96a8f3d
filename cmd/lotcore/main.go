// Command lotcore runs the lot lifecycle core as a single process: a
// migration runner and the offline-queue reconciler, started concurrently
// by the launcher. The HTTP
// transport that binds requests to the command and query use cases is an
// external collaborator, per §1's Non-goals.
package main

import (
	"fmt"
	"os"

	"github.com/foodtrace/lotcore/bootstrap"
	"github.com/foodtrace/lotcore/common"
)

func main() {
	common.InitLocalEnvConfig()

	service, err := bootstrap.InitServers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize lotcore: %v\n", err)
		os.Exit(1)
	}

	defer service.Telemetry.ShutdownTelemetry()

	defer func() {
		_ = service.Logger.Sync()
	}()

	service.Run()
}
