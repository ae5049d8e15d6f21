// Command loginrake recovers saved login records from a raw SQLite-format
// database snapshot, such as a browser "Login Data" file. The snapshot is
// decoded byte by byte; no database engine is involved.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forensitools/loginrake/internal/extract"
	"github.com/forensitools/loginrake/internal/pkg/logging"
	"github.com/forensitools/loginrake/internal/reveal"
	"github.com/forensitools/loginrake/internal/snapshot"
	"github.com/forensitools/loginrake/internal/sqlite"
)

const version = "0.1.0"

var CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" env:"LOG_LEVEL"`

	Scan    ScanCmd    `cmd:"" help:"Scan a database snapshot for saved logins."`
	Header  HeaderCmd  `cmd:"" help:"Print the parsed file header of a snapshot."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type ScanCmd struct {
	File    string `arg:"" type:"path" help:"Path to the database snapshot (optionally gzip or xz compressed)."`
	Format  string `help:"Output format." enum:"text,json" default:"text"`
	Machine bool   `help:"Treat secrets as protected under the machine identity instead of the current user."`
}

type HeaderCmd struct {
	File string `arg:"" type:"path" help:"Path to the database snapshot."`
}

type VersionCmd struct{}

func (c VersionCmd) Run(*zap.Logger) error {
	fmt.Println("loginrake", version)
	return nil
}

func (c HeaderCmd) Run(logger *zap.Logger) error {
	aSnapshot, err := snapshot.Load(c.File)
	if err != nil {
		return err
	}
	header, err := sqlite.ParseHeader(aSnapshot.Data)
	if err != nil {
		return err
	}
	fmt.Printf("page size:  %d\npage count: %d\nblake3:     %s\n", header.PageSize, header.PageCount, aSnapshot.Digest)
	return nil
}

func (c ScanCmd) Run(logger *zap.Logger) error {
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	aSnapshot, err := snapshot.Load(c.File)
	if err != nil {
		return err
	}
	logger.Info("snapshot loaded",
		zap.String("path", aSnapshot.Path),
		zap.String("blake3", aSnapshot.Digest),
		zap.Bool("compressed", aSnapshot.Compressed),
		zap.Int("bytes", len(aSnapshot.Data)))

	scanner, err := sqlite.NewScanner(aSnapshot.Data, logger)
	if err != nil {
		return err
	}

	scope := reveal.CurrentUser
	if c.Machine {
		scope = reveal.LocalMachine
	}
	extractor := extract.NewExtractor(extract.ChromeLogins, reveal.DPAPI{}, logger, extract.WithScope(scope))

	enc := json.NewEncoder(os.Stdout)
	scanner.Scan(func(aRecord sqlite.Record) bool {
		aLogin, ok := extractor.Extract(aRecord)
		if !ok {
			return true
		}
		if c.Format == "json" {
			_ = enc.Encode(aLogin)
		} else {
			fmt.Printf("%s\t%s\t%s\n", aLogin.URL, aLogin.Username, aLogin.Secret)
		}
		return true
	})

	scanStats, extractStats := scanner.Stats(), extractor.Stats()
	logger.Info("scan finished",
		zap.Int("pages", scanStats.PagesScanned),
		zap.Int("leaf_pages", scanStats.LeafPages),
		zap.Int("records", scanStats.Records),
		zap.Int("overflow_cells_skipped", scanStats.OverflowCells),
		zap.Int("bad_pointers", scanStats.BadPointers),
		zap.Int("bad_records", scanStats.BadRecords),
		zap.Int("reveal_failures", extractStats.RevealFailures),
		zap.Int("logins", extractStats.Emitted))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("loginrake"),
		kong.Description("Recover saved logins from raw database snapshots."),
		kong.UsageOnError())

	logConf := logging.DefaultConfig()
	level, err := logging.ParseLevel(CLI.LogLevel)
	ctx.FatalIfErrorf(err)
	logConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := logConf.Build()
	ctx.FatalIfErrorf(err)
	defer logger.Sync()

	ctx.FatalIfErrorf(ctx.Run(logger))
}
