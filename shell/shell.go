// Package shell is the interactive front end: a readline loop that sets up
// positions, asks the solver for moves and plays games out.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/config"
	"github.com/domino14/rookery/evaluation"
	"github.com/domino14/rookery/game"
	"github.com/domino14/rookery/move"
	"github.com/domino14/rookery/movegen"
	"github.com/domino14/rookery/piece"
	"github.com/domino14/rookery/search"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format for option")
	errExit              = errors.New("exit requested")
)

type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	gen       movegen.MoveGenerator
	evaluator *evaluation.StaticEvaluator
	game      *game.Game

	// moves from the last `gen`, numbered for `play`.
	curGenMoves []move.Move
	searchLog   *os.File
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController sets up readline and a game at the starting position.
func NewShellController(cfg *config.Config) *ShellController {
	sc := newController(cfg, nil)
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mrookery>\033[0m ",
		HistoryFile:     "/tmp/rookery_readline.tmp",
		AutoComplete:    &ShellCompleter{},
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

// newController builds everything but the readline instance.
func newController(cfg *config.Config, out io.Writer) *ShellController {
	sc := &ShellController{
		out:       out,
		config:    cfg,
		gen:       movegen.NewGenerator(),
		evaluator: evaluation.NewStaticEvaluator(),
	}
	sc.newGame(board.NewStartingPosition())
	if path := cfg.GetString(config.ConfigSearchLog); path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Err(err).Str("path", path).Msg("could-not-open-search-log")
		} else {
			sc.searchLog = f
			sc.game.Solver().SetLogStream(f)
		}
	}
	return sc
}

func (sc *ShellController) newGame(pos *board.Position) {
	solver := search.NewSolver(sc.gen, sc.evaluator)
	if sc.searchLog != nil {
		solver.SetLogStream(sc.searchLog)
	}
	sc.game = game.NewGame(pos, sc.gen, solver)
	sc.curGenMoves = nil
	sc.applyConfig()
}

// applyConfig pushes search settings from the config into the current game.
func (sc *ShellController) applyConfig() {
	solver := sc.game.Solver()
	solver.SetThreads(sc.config.GetInt(config.ConfigThreads))
	solver.SetSideAware(sc.config.GetBool(config.ConfigSideAware))
	sc.game.SetDepth(piece.White, sc.config.DepthFor("white"))
	sc.game.SetDepth(piece.Black, sc.config.DepthFor("black"))
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, positional arguments and
// -key value options. Quoting follows the shell.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		return nil, errExit
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newPosition(cmd)
	case "layouts":
		return msg(strings.Join(board.SampleLayoutNames(), "\n")), nil
	case "show":
		return msg(sc.game.ToDisplayText()), nil
	case "set":
		return sc.set(cmd)
	case "gen":
		return sc.generate(cmd)
	case "eval":
		return sc.eval(cmd)
	case "best":
		return sc.best(cmd)
	case "play":
		return sc.play(cmd)
	case "engine":
		return sc.engineTurn(cmd)
	case "undo":
		return sc.undo(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "svg":
		return sc.svg(cmd)
	case "perft":
		return sc.perft(cmd)
	case "cache":
		return sc.cache(cmd)
	default:
		log.Debug().Msgf("you said: %v", line)
		return nil, fmt.Errorf("unrecognized command %q; type help", cmd.cmd)
	}
}

// Execute runs one line. An exit command sends the quit signal.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line)
	if errors.Is(err, errExit) {
		sig <- syscall.SIGINT
		return
	}
	if err == errNoData {
		return
	}
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		sc.Execute(sig, line)
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup closes the search log.
func (sc *ShellController) Cleanup() {
	if sc.searchLog != nil {
		if err := sc.searchLog.Close(); err != nil {
			log.Err(err).Msg("closing-search-log")
		}
	}
}
