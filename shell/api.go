package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/gordon/board"
	"github.com/domino14/gordon/config"
	"github.com/domino14/gordon/game"
	"github.com/domino14/gordon/move"
	"github.com/domino14/gordon/tilemapping"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func msg(message string) *Response {
	return &Response{message: message}
}

func moveTableHeader() string {
	return "     Move                Leave    Score"
}

func MoveTableRow(idx int, m *move.Move, leave string, alph *tilemapping.Alphabet) string {
	return fmt.Sprintf("%3d: %-20s%-9s%-5d", idx+1, m.ShortDescription(alph), leave, m.Score())
}

func (sc *ShellController) leave(m *move.Move) string {
	if sc.rack == nil {
		return ""
	}
	l, err := tilemapping.Leave(sc.rack.TilesOn(), m.Tiles())
	if err != nil {
		return ""
	}
	return l.UserVisible(sc.game.Alphabet())
}

func (sc *ShellController) lexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: lexicon <name> [-ld <letter distribution>] [-board <layout>]")
	}
	ld := cmd.options.String("ld")
	if ld == "" {
		ld = sc.config.GetString(config.ConfigDefaultLetterDistribution)
	}
	rules, err := game.NewBasicGameRules(sc.config, cmd.args[0], cmd.options.String("board"), ld)
	if err != nil {
		return nil, err
	}
	sc.rules = rules
	if err := sc.startGame(); err != nil {
		return nil, err
	}
	log.Info().Str("lexicon", rules.LexiconName()).Str("ld", ld).Msg("loaded lexicon")
	return msg("loaded " + rules.LexiconName() + "\n" + sc.game.ToDisplayText(false)), nil
}

func (sc *ShellController) startGame() error {
	g, err := game.NewGameFromRules(sc.rules)
	if err != nil {
		return err
	}
	sc.game = g
	sc.bag = sc.rules.LetterDistribution().MakeBag()
	sc.rack = nil
	sc.curPlays = nil
	return nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	if sc.rules == nil {
		return nil, errNoGame
	}
	if err := sc.startGame(); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText(false)), nil
}

func (sc *ShellController) setRack(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		if sc.rack == nil {
			return nil, errNoRack
		}
		return msg(sc.rack.String()), nil
	}
	r, err := tilemapping.RackFromString(cmd.args[0], sc.game.Alphabet())
	if err != nil {
		return nil, err
	}
	if r.NumTiles() > board.RackTileLimit {
		return nil, fmt.Errorf("a rack holds at most %d tiles", board.RackTileLimit)
	}
	sc.rack = r
	return msg("rack: " + r.String()), nil
}

// draw fills the rack up from the bag.
func (sc *ShellController) draw(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if sc.rack == nil {
		sc.rack = tilemapping.NewRack(sc.game.Alphabet())
	}
	drawn := sc.bag.DrawAtMost(board.RackTileLimit - sc.rack.NumTiles())
	for _, t := range drawn {
		sc.rack.Add(t)
	}
	log.Debug().Int("drawn", len(drawn)).Int("remaining", sc.bag.TilesRemaining()).Msg("drew tiles")
	return msg(fmt.Sprintf("rack: %v (%d in bag)", sc.rack.String(), sc.bag.TilesRemaining())), nil
}

func (sc *ShellController) generate(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if sc.rack == nil {
		return nil, errNoRack
	}
	numPlays := defaultNumPlays
	if len(cmd.args) == 1 {
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		numPlays = n
	}
	plays, err := sc.game.GenerateContext(context.Background(), sc.rack)
	if err != nil {
		return nil, err
	}
	sc.curPlays = plays
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d plays for %v\n", len(plays), sc.rack.String()))
	sb.WriteString(moveTableHeader())
	for i, p := range lo.Slice(plays, 0, numPlays) {
		sb.WriteString("\n")
		sb.WriteString(MoveTableRow(i, p, sc.leave(p), sc.game.Alphabet()))
	}
	return msg(sb.String()), nil
}

// add plays a generated move (#n) or a move given by coordinates and word.
// Played tiles come off the rack when it has them.
func (sc *ShellController) add(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	var m *move.Move
	switch {
	case len(cmd.args) == 1 && strings.HasPrefix(cmd.args[0], "#"):
		idx, err := strconv.Atoi(cmd.args[0][1:])
		if err != nil {
			return nil, err
		}
		if idx < 1 || idx > len(sc.curPlays) {
			return nil, errors.New("play outside range")
		}
		m = sc.curPlays[idx-1]
	case len(cmd.args) == 2:
		var err error
		m, err = move.FromString(cmd.args[0], cmd.args[1], sc.game.Alphabet())
		if err != nil {
			return nil, err
		}
		if err := sc.game.Board().ValidateMove(m, sc.game.Alphabet()); err != nil {
			return nil, err
		}
		m.SetScore(sc.game.Board().ScoreMove(m, sc.game.Alphabet()))
	default:
		return nil, errors.New("unrecognized arguments to `add`")
	}
	if !sc.game.PlayMove(m) {
		return nil, fmt.Errorf("cannot place %v", m.ShortDescription(sc.game.Alphabet()))
	}
	if sc.rack != nil {
		for _, t := range m.Tiles() {
			if t.IsBlanked() {
				t = 0
			}
			if sc.rack.Has(t) {
				sc.rack.Take(t)
			}
		}
	}
	sc.curPlays = nil
	return msg(fmt.Sprintf("played %v for %d\n%v",
		m.ShortDescription(sc.game.Alphabet()), m.Score(), sc.game.ToDisplayText(false))), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText(false)), nil
}

func (sc *ShellController) anchors(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText(true)), nil
}

// cross shows the letters allowed on a square in each direction.
func (sc *ShellController) cross(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: cross <square>, e.g. cross 8H")
	}
	row, col, _, err := move.FromBoardGameCoords(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if !sc.game.Board().PosExists(row, col) {
		return nil, errors.New("square is off the board")
	}
	alph := sc.game.Alphabet()
	sq := sc.game.Grid().At(row, col)
	display := func(ls tilemapping.LetterSet) string {
		if ls == alph.AllLetters() {
			return "*"
		}
		if ls == 0 {
			return "-"
		}
		return ls.UserVisible(alph)
	}
	return msg(fmt.Sprintf("across: %v\ndown:   %v\nanchor: across=%v down=%v",
		display(sq.CrossSet().Across()), display(sq.CrossSet().Down()),
		sq.Anchor().Across(), sq.Anchor().Down())), nil
}

type exportedMove struct {
	Coords      string `yaml:"coords"`
	Word        string `yaml:"word"`
	Score       int    `yaml:"score"`
	TilesPlayed int    `yaml:"tiles_played"`
	Leave       string `yaml:"leave,omitempty"`
}

type exportedGen struct {
	Lexicon string         `yaml:"lexicon"`
	Rack    string         `yaml:"rack"`
	Moves   []exportedMove `yaml:"moves"`
}

// export writes the last generated plays to a YAML file.
func (sc *ShellController) export(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: export <file>")
	}
	if sc.curPlays == nil {
		return nil, errors.New("please generate some plays first")
	}
	alph := sc.game.Alphabet()
	out := exportedGen{
		Lexicon: sc.game.Gaddag().LexiconName(),
		Rack:    sc.rack.String(),
		Moves: lo.Map(sc.curPlays, func(m *move.Move, _ int) exportedMove {
			coords, word, _ := strings.Cut(m.ShortDescription(alph), " ")
			return exportedMove{
				Coords:      coords,
				Word:        word,
				Score:       m.Score(),
				TilesPlayed: m.TilesPlayed(),
				Leave:       sc.leave(m),
			}
		}),
	}
	bts, err := yaml.Marshal(out)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(cmd.args[0], bts, 0o644); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("wrote %d plays to %v", len(out.Moves), cmd.args[0])), nil
}

// batch generates for several racks at once and shows the best play for
// each.
func (sc *ShellController) batch(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: batch <rack> [<rack> ...] [-workers n]")
	}
	workers, err := cmd.options.IntDefault("workers", sc.config.GetInt(config.ConfigGenWorkers))
	if err != nil {
		return nil, err
	}
	alph := sc.game.Alphabet()
	racks := make([]*tilemapping.Rack, len(cmd.args))
	for i, a := range cmd.args {
		racks[i], err = tilemapping.RackFromString(a, alph)
		if err != nil {
			return nil, err
		}
	}
	results, err := sc.game.GenerateBatch(context.Background(), racks, workers)
	if err != nil {
		return nil, err
	}
	lines := lo.Map(results, func(plays []*move.Move, i int) string {
		best := "(none)"
		if len(plays) > 0 {
			best = fmt.Sprintf("%v %d", plays[0].ShortDescription(alph), plays[0].Score())
		}
		return fmt.Sprintf("%-9s%5d plays  best: %v", racks[i].String(), len(plays), best)
	})
	return msg(strings.Join(lines, "\n")), nil
}
