package game

import (
	"fmt"

	"github.com/domino14/gordon/board"
	"github.com/domino14/gordon/config"
	"github.com/domino14/gordon/gaddag"
	"github.com/domino14/gordon/lexicon"
	"github.com/domino14/gordon/tilemapping"
)

const (
	CrosswordGameLayout = "CrosswordGame"
)

// GameRules is a simple struct that encapsulates the instantiated objects
// needed to actually play a game.
type GameRules struct {
	cfg       *config.Config
	boardDesc []string
	dist      *tilemapping.LetterDistribution
	gaddag    *gaddag.Gaddag
	boardname string
	distname  string
}

func (g GameRules) Config() *config.Config {
	return g.cfg
}

// Board makes a new empty board with the rules' layout.
func (g GameRules) Board() (*board.Board, error) {
	return board.MakeBoard(g.boardDesc)
}

func (g GameRules) LetterDistribution() *tilemapping.LetterDistribution {
	return g.dist
}

func (g GameRules) Gaddag() *gaddag.Gaddag {
	return g.gaddag
}

func (g GameRules) LexiconName() string {
	return g.gaddag.LexiconName()
}

func (g GameRules) BoardName() string {
	return g.boardname
}

func (g GameRules) LetterDistributionName() string {
	return g.distname
}

// NewBasicGameRules loads the named lexicon and letter distribution from
// the paths in cfg.
func NewBasicGameRules(cfg *config.Config, lexiconName, boardLayoutName,
	letterDistributionName string) (*GameRules, error) {

	dist, err := lexicon.LetterDistribution(cfg, letterDistributionName)
	if err != nil {
		return nil, err
	}
	var bd []string
	switch boardLayoutName {
	case CrosswordGameLayout, "":
		bd = board.CrosswordGameBoard
		boardLayoutName = CrosswordGameLayout
	default:
		return nil, fmt.Errorf("unsupported board layout: %v", boardLayoutName)
	}
	gd, err := lexicon.Get(cfg, lexiconName, dist)
	if err != nil {
		return nil, err
	}
	return &GameRules{
		cfg:       cfg,
		boardDesc: bd,
		dist:      dist,
		gaddag:    gd,
		boardname: boardLayoutName,
		distname:  letterDistributionName,
	}, nil
}

// NewGameFromRules starts a game on an empty board.
func NewGameFromRules(rules *GameRules) (*Game, error) {
	b, err := rules.Board()
	if err != nil {
		return nil, err
	}
	return NewGame(b, rules.dist.Alphabet(), rules.gaddag), nil
}
