// Package lexicon finds, decodes and caches word lists and the gaddags
// built from them.
package lexicon

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/domino14/gordon/cache"
	"github.com/domino14/gordon/config"
	"github.com/domino14/gordon/gaddag"
	"github.com/domino14/gordon/tilemapping"
)

// GaddagExtension and WordListExtension are the file extensions looked for
// in the lexicon path.
const (
	GaddagExtension   = ".gaddag"
	WordListExtension = ".txt"
)

// NewDecodingReader returns a reader that turns text in the named encoding
// (an IANA or HTML label such as "utf-8", "latin1" or "windows-1252") into
// UTF-8.
func NewDecodingReader(r io.Reader, encoding string) (io.Reader, error) {
	if encoding == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("unknown lexicon encoding %q: %w", encoding, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// GenerateFromFile builds a gaddag from a word list in the given encoding.
func GenerateFromFile(path, encoding string, alph *tilemapping.Alphabet) (*gaddag.Gaddag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := NewDecodingReader(f, encoding)
	if err != nil {
		return nil, err
	}
	g, err := gaddag.GenerateFromReader(r, alph)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	g.SetLexiconName(gaddag.LexiconNameFromPath(path))
	return g, nil
}

// LetterDistribution returns the named letter distribution from the
// configured path, caching it.
func LetterDistribution(cfg *config.Config, name string) (*tilemapping.LetterDistribution, error) {
	obj, err := cache.Load(cfg, "ld:"+strings.ToLower(name), func(cfg *config.Config, key string) (any, error) {
		return tilemapping.NamedLetterDistribution(
			cfg.GetString(config.ConfigLetterDistributionPath), strings.TrimPrefix(key, "ld:"))
	})
	if err != nil {
		return nil, err
	}
	return obj.(*tilemapping.LetterDistribution), nil
}

// Get returns the gaddag for a named lexicon, caching it. A prebuilt
// <name>.gaddag in the lexicon path is preferred; otherwise <name>.txt is
// read with the configured encoding. The alphabet of the distribution must
// match the one a prebuilt gaddag was built with.
func Get(cfg *config.Config, name string, ld *tilemapping.LetterDistribution) (*gaddag.Gaddag, error) {
	key := "gaddag:" + ld.Name + ":" + name
	obj, err := cache.Load(cfg, key, func(cfg *config.Config, _ string) (any, error) {
		return load(cfg, name, ld.Alphabet())
	})
	if err != nil {
		return nil, err
	}
	return obj.(*gaddag.Gaddag), nil
}

func load(cfg *config.Config, name string, alph *tilemapping.Alphabet) (*gaddag.Gaddag, error) {
	dir := cfg.GetString(config.ConfigLexiconPath)
	gpath := filepath.Join(dir, name+GaddagExtension)
	g, err := gaddag.LoadFile(gpath, alph)
	if err == nil {
		g.SetLexiconName(name)
		return g, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	wpath := filepath.Join(dir, name+WordListExtension)
	log.Debug().Str("path", wpath).Msg("no prebuilt gaddag; building from word list")
	return GenerateFromFile(wpath, cfg.GetString(config.ConfigLexiconEncoding), alph)
}
