package config

import (
	"flag"
	"os"
	"time"

	"github.com/dalesbridge/chronicle/internal/flagx"
	"github.com/dalesbridge/chronicle/internal/timex"
)

// parseDuration accepts "12h" style strings for duration settings.
func parseDuration(s string) (time.Duration, error) {
	var d timex.Duration
	if err := d.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		return 0, err
	}
	return d.Duration, nil
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t string   session token validity (e.g., "12h")
//	-u string   blob storage access key
//	-p string   blob storage secret key
//	-b string   blob bucket name
//	-g string   blob region
//	-e string   blob base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Args are filtered through flagx.FilterArgs first so flags owned by other
// components do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.String("t", config.SessionValidityDuration.String(), "session token validity")

	fs.StringVar(&config.BlobAccessKey, "u", config.BlobAccessKey, "blob storage access key")
	fs.StringVar(&config.BlobSecretKey, "p", config.BlobSecretKey, "blob storage secret key")
	fs.StringVar(&config.BlobBucket, "b", config.BlobBucket, "blob bucket")
	fs.StringVar(&config.BlobRegion, "g", config.BlobRegion, "blob region")
	fs.StringVar(&config.BlobBaseEndpoint, "e", config.BlobBaseEndpoint, "blob base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if d, err := parseDuration(*sessionValidity); err == nil {
		config.SessionValidityDuration = d
	}
}
