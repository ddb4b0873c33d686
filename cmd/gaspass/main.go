package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/gaspass/internal/client"
	"github.com/MKhiriev/gaspass/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gaspass:", err)
		stop()
		os.Exit(1)
	}
}
