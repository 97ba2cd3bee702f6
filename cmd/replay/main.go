package main

// #region imports
import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/statecraft/go-sim/internal/norm"
	"github.com/danielpatrickdp/statecraft/go-sim/internal/replay"
)

// #endregion

// #region main

func main() {
	transcriptDir := flag.String("transcripts", "", "dir containing turns-*.jsonl.zst archives")
	maxShow := flag.Int("max-mismatches", 20, "cap on mismatches printed")
	flag.Parse()

	if *transcriptDir == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --transcripts path/to/transcripts")
		os.Exit(2)
	}

	result, err := replay.Verify(*transcriptDir, norm.DefaultSeeds())
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(1)
	}

	if result.OK() {
		fmt.Printf("replay ok: %d turn(s) verified\n", result.TurnsChecked)
		return
	}

	fmt.Printf("replay found %d mismatch(es) over %d turn(s):\n", len(result.Mismatches), result.TurnsChecked)
	for i, m := range result.Mismatches {
		if i >= *maxShow {
			fmt.Printf("  ... and %d more\n", len(result.Mismatches)-i)
			break
		}
		fmt.Printf("  %s\n", m)
	}
	os.Exit(1)
}

// #endregion main
