// Command cavegen generates a cave level and writes it out as TMX, with an
// optional PNG preview, ASCII dump and reachability report.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/cavern/config"
	"github.com/automoto/cavern/shared/cavegen"
	"github.com/automoto/cavern/shared/leveldata"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("cavegen: %v", err)
	}
}

type options struct {
	seed       int64
	configPath string
	out        string
	png        string
	scale      int
	ascii      bool
	report     bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	o := &options{}
	fs.Int64Var(&o.seed, "seed", 0, "Generation seed (0 = time-based)")
	fs.StringVar(&o.configPath, "config", "", "YAML generation config (empty = built-in defaults)")
	fs.StringVar(&o.out, "out", "", "Write the level as TMX to this path")
	fs.StringVar(&o.png, "png", "", "Write a PNG preview to this path")
	fs.IntVar(&o.scale, "scale", 4, "Pixels per tile in the PNG preview")
	fs.BoolVar(&o.ascii, "ascii", false, "Print the grid to stdout")
	fs.BoolVar(&o.report, "report", false, "Print which enemy spawns can reach and see the player")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.scale < 1 {
		return nil, fmt.Errorf("scale must be positive, got %d", o.scale)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	return o, nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	gen := config.DefaultGenerationConfig()
	if o.configPath != "" {
		loaded, err := config.LoadGenerationConfig(o.configPath)
		if err != nil {
			return err
		}
		gen = *loaded
	}

	start := time.Now()
	level, attempts, err := cavegen.GenerateRetry(gen.Params(o.seed), gen.MaxAttempts)
	if err != nil {
		return err
	}
	log.Printf("Generated %dx%d cave from seed %d in %v (%d attempts): %d colliders, %d enemy spawns",
		level.Grid.Width(), level.Grid.Height(), level.Seed, time.Since(start).Round(time.Millisecond),
		attempts, len(level.Colliders), len(level.Spawns.Enemies))

	data := leveldata.FromLevel(level)

	if o.out != "" {
		if err := writeFile(o.out, func(w io.Writer) error { return leveldata.WriteTMX(w, data) }); err != nil {
			return err
		}
		log.Printf("Wrote %s", o.out)
	}

	if o.png != "" {
		if err := writeFile(o.png, func(w io.Writer) error { return writePreview(w, level, o.scale) }); err != nil {
			return err
		}
		log.Printf("Wrote %s", o.png)
	}

	if o.ascii {
		if _, err := fmt.Fprintln(stdout, asciiDump(level)); err != nil {
			return err
		}
	}

	if o.report {
		if err := writeReport(stdout, data, level, gen.SightRange); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
