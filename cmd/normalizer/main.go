// Command normalizer detects the character encoding of one or more files
// and prints the result, optionally rewriting the file as UTF-8.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/badu/normalizer"
	lognorm "github.com/badu/normalizer/log"
)

type cliResult struct {
	Path                  string   `json:"path"`
	Encoding              string   `json:"encoding"`
	EncodingAliases       []string `json:"encoding_aliases"`
	AlternativeEncodings  []string `json:"alternative_encodings,omitempty"`
	Language              string   `json:"language"`
	Alphabets             []string `json:"alphabets"`
	HasSigOrBOM           bool     `json:"has_sig_or_bom"`
	Chaos                 float32  `json:"chaos"`
	Coherence             float32  `json:"coherence"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("normalizer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	verbose := fs.Bool("v", false, "verbose logging")
	withAlternative := fs.Bool("a", false, "include alternative/submatch encodings in the output")
	normalize := fs.Bool("n", false, "rewrite the file as UTF-8 once detected")
	minimal := fs.Bool("m", false, "print only the comma-joined detected encoding names")
	replace := fs.Bool("r", false, "overwrite the original file instead of writing a sibling; requires -n")
	force := fs.Bool("f", false, "skip the overwrite confirmation prompt; requires -r")
	threshold := fs.Float64("t", float64(normalizer.DefaultSettings().Threshold), "chaos threshold in [0,1]")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *replace && !*normalize {
		fmt.Fprintln(stderr, "normalizer: -r requires -n")
		return 2
	}
	if *force && !*replace {
		fmt.Fprintln(stderr, "normalizer: -f requires -r")
		return 2
	}
	if *threshold < 0 || *threshold > 1 {
		fmt.Fprintln(stderr, "normalizer: -t must be in [0,1]")
		return 2
	}

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "normalizer: no files given")
		return 2
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.TraceLevel
	}
	lognorm.InitLogger(level)

	settings := normalizer.DefaultSettings()
	settings.Threshold = float32(*threshold)

	var results []cliResult
	var exitCode int

	for _, path := range files {
		matches, err := normalizer.FromPath(path, settings)
		if err != nil {
			fmt.Fprintf(stderr, "normalizer: %s: %v\n", path, err)
			exitCode = 1
			continue
		}
		best, ok := matches.GetBest()
		if !ok {
			fmt.Fprintf(stderr, "normalizer: %s: no encoding detected\n", path)
			exitCode = 1
			continue
		}

		if *minimal {
			fmt.Fprintln(stdout, joinComma(best.SuitableEncodings()))
		} else {
			res := cliResult{
				Path:            path,
				Encoding:        best.Encoding(),
				EncodingAliases: best.EncodingAliases(),
				Language:        string(best.MostProbablyLanguage()),
				Alphabets:       best.UnicodeRanges(),
				HasSigOrBOM:     best.BOM(),
				Chaos:           best.ChaosPercents(),
				Coherence:       best.CoherencePercents(),
			}
			if *withAlternative {
				for _, sub := range best.Submatch() {
					res.AlternativeEncodings = append(res.AlternativeEncodings, sub.Encoding())
				}
			}
			results = append(results, res)
		}

		if *normalize {
			if err := normalizeFile(path, best, *replace, *force, stdin, stdout); err != nil {
				fmt.Fprintf(stderr, "normalizer: %s: %v\n", path, err)
				exitCode = 1
			}
		}
	}

	if !*minimal && len(results) > 0 {
		printJSON(stdout, results)
	}

	return exitCode
}

func joinComma(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ","
		}
		out += n
	}
	return out
}

func printJSON(stdout *os.File, results []cliResult) {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		_ = enc.Encode(results[0])
		return
	}
	_ = enc.Encode(results)
}

// normalizeFile rewrites path's detected text as UTF-8. Without -f, it asks
// for confirmation on stdin before touching anything. The new content is
// written to a temporary sibling file and renamed into place, so a crash
// mid-write never leaves a half-written file at the destination.
func normalizeFile(path string, best *normalizer.CharsetMatch, replaceOriginal, force bool, stdin, stdout *os.File) error {
	dest := path
	if !replaceOriginal {
		dest = path + ".utf8"
	}

	if !force {
		fmt.Fprintf(stdout, "rewrite %s as UTF-8 (detected %s) -> %s? [y/N] ", path, best.Encoding(), dest)
		reader := bufio.NewReader(stdin)
		line, _ := reader.ReadString('\n')
		if line != "y\n" && line != "Y\n" && line != "y" && line != "Y" {
			fmt.Fprintln(stdout, "skipped")
			return nil
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(best.DecodedPayload()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, dest)
}
