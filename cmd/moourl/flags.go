package main

import (
	"flag"
	"fmt"
	"os"
)

// Valid values for the -mode flag.
const (
	ModeParse    = "parse"
	ModeGuess    = "guess"
	ModeCheck    = "check"
	ModeAbsolute = "absolute"
	ModeRelative = "relative"
	ModeAnchor   = "anchor"
	ModeDomain   = "domain"
	ModeExtract  = "extract"
)

type AppFlags struct {
	Mode             string
	GlobalConfigFile string
	TargetsFile      string
	ParentURL        string
	Targets          []string
}

func ParseFlags() AppFlags {
	modeFlag := flag.String("mode", "", "Operation to run: parse, guess, check, absolute, relative, anchor, domain or extract")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	targetsFile := flag.String("file", "", "Path to a text file containing target URLs, one per line. Lines starting with '#' are skipped.")
	targetsFileAlias := flag.String("f", "", "Alias for -file")

	parentURL := flag.String("parent", "", "Parent URL for absolute/relative modes and source URL for extract mode")
	parentURLAlias := flag.String("p", "", "Alias for -parent")

	flag.Parse()

	flags := AppFlags{Targets: flag.Args()}

	if *modeFlag != "" {
		flags.Mode = *modeFlag
	} else if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *targetsFile != "" {
		flags.TargetsFile = *targetsFile
	} else if *targetsFileAlias != "" {
		flags.TargetsFile = *targetsFileAlias
	}

	if *parentURL != "" {
		flags.ParentURL = *parentURL
	} else if *parentURLAlias != "" {
		flags.ParentURL = *parentURLAlias
	}

	if flags.Mode == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] -mode argument is required (parse, guess, check, absolute, relative, anchor, domain or extract)")
		os.Exit(1)
	}

	return flags
}
