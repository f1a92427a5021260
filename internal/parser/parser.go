// Package parser puts os.Args into AppInit structure and validates it for any issues
package parser

import (
	"errors"
	"flag"
	"fmt"

	"github.com/UnendingLoop/GrepLite/internal/model"
)

func InitAppMode(args []string) (*model.AppInit, error) {
	var appInit model.AppInit
	flagParser := flag.NewFlagSet("GrepLite", flag.ContinueOnError)

	mode := flagParser.String("mode", "search", "specify mode of the app: 'search'(default) or 'serve'")
	addr := flagParser.String("address", model.DefaultServeAddress, "specify address to listen on in 'serve'-mode")
	a := flagParser.Bool("ignore-case", false, "all input lines will be lower-cased for search as well as the query itself")
	b := flagParser.Bool("invert-match", false, "report only lines that DON'T match the specified query")
	c := flagParser.Bool("word", false, "query must match a whole word of the line")
	d := flagParser.Bool("line", false, "query must match the whole line")
	e := flagParser.Bool("c", false, "show only total number of matching lines")

	// парсим аргументы
	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	appInit.Mode = model.AppMode(*mode)

	// проверяем режим
	switch appInit.Mode {
	case model.ModeServe:
		if *addr == "" {
			return nil, errors.New("empty serve-mode address")
		}
		appInit.Address = *addr
		return &appInit, nil
	case model.ModeSearch:
	default:
		return nil, fmt.Errorf("unknown mode %q specified", *mode)
	}

	appInit.SearchParam = model.SearchParam{
		IgnoreCase:   *a,
		InvertResult: *b,
		CountFound:   *e,
	}

	// режимы сравнения взаимоисключающие; без флагов работает substring
	appInit.SearchParam.Mode = model.MatchSubstring
	switch {
	case *c && *d:
		return nil, errors.New("flags --word and --line are mutually exclusive")
	case *c:
		appInit.SearchParam.Mode = model.MatchWord
	case *d:
		appInit.SearchParam.Mode = model.MatchLine
	}

	// Разбираемся с запросом и входом
	switch len(flagParser.Args()) {
	case 0:
		return nil, errors.New("query not specified!\nUsage: GrepLite [flags] query [file]")
	case 1: // файл не указан - читаем stdin
		appInit.SearchParam.Query = flagParser.Args()[0]
	case 2:
		appInit.SearchParam.Query = flagParser.Args()[0]
		appInit.SearchParam.Source = flagParser.Args()[1]
	default:
		return nil, errors.New("too many arguments: expected query and at most one file")
	}

	return &appInit, nil
}
