package config

import (
	"flag"
	"os"

	"github.com/digislides/mediup/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   bind address
//	-b string   S3 bucket
//	-e string   S3 base endpoint ("" = AWS)
//	-k string   manifest object key
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-e", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "address and port to listen on")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.ManifestObjectKey, "k", cfg.ManifestObjectKey, "manifest object key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
