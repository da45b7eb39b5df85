package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/domino14/gordon/config"
	"github.com/domino14/gordon/lexicon"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	filename := pflag.String("filename", "", "filename of the word list")
	out := pflag.String("out", "", "where to write the gaddag; defaults to the word list with a .gaddag extension")
	dist := pflag.String("letter-distribution", "english", "letter distribution whose alphabet the words use")
	encoding := pflag.String("encoding", "utf-8", "character encoding of the word list")
	ldPath := pflag.String(config.ConfigLetterDistributionPath, "./data/letterdistributions", "directory holding letter distribution files")
	pflag.Parse()

	if *filename == "" {
		fmt.Fprintln(os.Stderr, "usage: make_gaddag --filename <word list> [--out <file>]")
		pflag.PrintDefaults()
		os.Exit(2)
	}
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigLetterDistributionPath, *ldPath)

	ld, err := lexicon.LetterDistribution(cfg, *dist)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load letter distribution")
	}
	t := time.Now()
	gd, err := lexicon.GenerateFromFile(*filename, *encoding, ld.Alphabet())
	if err != nil {
		log.Fatal().Err(err).Msg("could not build gaddag")
	}
	if *out == "" {
		*out = strings.TrimSuffix(*filename, filepath.Ext(*filename)) + lexicon.GaddagExtension
	}
	if err := gd.SaveFile(*out); err != nil {
		log.Fatal().Err(err).Msg("could not save gaddag")
	}
	log.Info().Str("lexicon", gd.LexiconName()).Int("nodes", gd.NumNodes()).
		Int("arcs", gd.NumArcs()).Dur("elapsed", time.Since(t)).
		Str("out", *out).Msg("wrote gaddag")
}
