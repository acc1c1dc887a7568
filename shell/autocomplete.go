package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/rookery/board"
	"github.com/domino14/rookery/config"
)

var commandNames = []string{
	"autoplay", "best", "cache", "engine", "eval", "exit", "gen", "help",
	"layouts", "new", "perft", "play", "set", "show", "svg", "undo",
}

var settableKeys = []string{
	config.ConfigDepth, config.ConfigWhiteDepth, config.ConfigBlackDepth,
	config.ConfigThreads, config.ConfigSideAware, config.ConfigMaxTurns,
	config.ConfigRandomOpeningPlies, config.ConfigDebug,
}

// ShellCompleter implements readline.AutoCompleter.
type ShellCompleter struct{}

func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	default:
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		argIdx := len(fields) - 1
		if endsWithSpace {
			argIdx = len(fields)
		}
		if argIdx != 1 {
			return nil, 0
		}
		switch fields[0] {
		case "new":
			completions = board.SampleLayoutNames()
		case "set":
			completions = settableKeys
		case "help":
			completions = []string{"autoplay", "best", "set"}
		case "cache":
			completions = []string{"clear"}
		}
	}

	matches := lo.Filter(completions, func(s string, _ int) bool {
		return strings.HasPrefix(s, prefix)
	})
	return lo.Map(matches, func(s string, _ int) []rune {
		return []rune(s[len(prefix):])
	}), len([]rune(prefix))
}
