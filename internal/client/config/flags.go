package config

import (
	"flag"
	"os"

	"github.com/dalesbridge/chronicle/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Args are
// filtered through flagx.FilterArgs so flags handled elsewhere (like the
// -c config path) do not trip the flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the content server")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
