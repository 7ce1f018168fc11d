package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pior/vcard"
)

type config struct {
	check       bool
	reserialize bool
	stats       bool
}

func main() {
	cfg := config{}
	flag.BoolVar(&cfg.check, "check", false, "validate only, print errors and the final tally")
	flag.BoolVar(&cfg.reserialize, "reserialize", false, "print every card in canonical wire form")
	flag.BoolVar(&cfg.stats, "stats", false, "print decoder counters per input")
	flag.Parse()

	exitCode := 0
	if flag.NArg() == 0 {
		if !inspect(os.Stdin, "stdin", cfg) {
			exitCode = 1
		}
	}
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			exitCode = 1
			continue
		}
		if !inspect(f, name, cfg) {
			exitCode = 1
		}
		f.Close()
	}
	os.Exit(exitCode)
}

// inspect decodes every card in r and reports whether all of them were
// valid. Errors go to stderr, summaries to stdout.
func inspect(r io.Reader, name string, cfg config) bool {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	scanner.Split(splitCards)

	var total vcard.DecoderStats
	cards, invalid := 0, 0

	for scanner.Scan() {
		cards++

		dec := vcard.NewDecoder(strings.NewReader(scanner.Text()))
		card, err := dec.Decode()

		stats := dec.Stats()
		total.PropertiesDecoded += stats.PropertiesDecoded
		total.ProprietaryProperties += stats.ProprietaryProperties
		total.CardsDecoded += stats.CardsDecoded
		total.DecodeErrors += stats.DecodeErrors

		if err != nil {
			invalid++
			fmt.Fprintf(os.Stderr, "%s: card %d: %v\n", name, cards, err)
			continue
		}

		if cfg.reserialize {
			fmt.Print(card.String())
			continue
		}
		if !cfg.check {
			fn := "(no FN)"
			if p, ok := card.FN.GetPreferred(); ok {
				fn = p.Value
			}
			fmt.Printf("%s: card %d: version %s, %d properties, %s\n",
				name, cards, card.Version.Value, stats.PropertiesDecoded, fn)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return false
	}

	if cfg.stats {
		fmt.Printf("%s: %d properties, %d proprietary, %d decode errors\n",
			name, total.PropertiesDecoded, total.ProprietaryProperties, total.DecodeErrors)
	}
	if !cfg.reserialize {
		fmt.Printf("%s: %d cards, %d invalid\n", name, cards, invalid)
	}
	return invalid == 0
}

// splitCards chunks a stream at END:VCARD line boundaries so every token
// holds one card. Values never contain line terminators, so a terminator
// followed by END:VCARD is always a real card boundary.
func splitCards(data []byte, atEOF bool) (int, []byte, error) {
	marker := []byte("\nEND:VCARD")
	if i := bytes.Index(data, marker); i >= 0 {
		end := i + len(marker)
		if n := bytes.IndexByte(data[end:], '\n'); n >= 0 {
			return end + n + 1, data[:end+n+1], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}
