package config

import (
	"flag"
	"os"
	"time"

	"github.com/digislides/mediup/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-p string   presign endpoint
//	-u string   upload endpoint
//	-w string   manifest write endpoint ("" = presigned PUT)
//	-k string   manifest object key
//	-f string   upload folder
//	-t int      request timeout in seconds
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-u", "-w", "-k", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.PresignEndpoint, "p", cfg.PresignEndpoint, "presign endpoint")
	fs.StringVar(&cfg.UploadEndpoint, "u", cfg.UploadEndpoint, "upload endpoint")
	fs.StringVar(&cfg.ManifestWriteEndpoint, "w", cfg.ManifestWriteEndpoint, "manifest write endpoint")
	fs.StringVar(&cfg.ManifestObjectKey, "k", cfg.ManifestObjectKey, "manifest object key")
	fs.StringVar(&cfg.UploadFolder, "f", cfg.UploadFolder, "upload folder")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
