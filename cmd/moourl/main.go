package main

import (
	"encoding/json"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edutools/moourl/internal/config"
	"github.com/edutools/moourl/internal/extractor"
	"github.com/edutools/moourl/internal/logger"
	"github.com/edutools/moourl/internal/site"
	"github.com/edutools/moourl/internal/urlhandler"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		log.Fatalf("[FATAL] Main: Invalid configuration: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Main: Could not initialize logger: %v", err)
	}

	registerWellKnownURLs(gCfg.WellKnownConfig, zLogger)

	targets, err := collectTargets(flags)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not collect targets")
	}
	if len(targets) == 0 {
		zLogger.Fatal().Msg("No targets given: pass URLs as arguments or via -file")
	}

	if err := run(flags, gCfg, targets, zLogger); err != nil {
		zLogger.Fatal().Err(err).Str("mode", flags.Mode).Msg("Run failed")
	}
}

func run(flags AppFlags, gCfg *config.GlobalConfig, targets []string, zLogger zerolog.Logger) error {
	switch flags.Mode {
	case ModeParse:
		return runParse(targets)
	case ModeGuess:
		for _, target := range targets {
			fmt.Println(urlhandler.GuessMoodleDomain(target))
		}
	case ModeCheck:
		for _, target := range targets {
			fmt.Printf("%s\t%t\n", target, urlhandler.IsValidMoodleURL(target))
		}
	case ModeAbsolute:
		if flags.ParentURL == "" {
			return fmt.Errorf("absolute mode requires -parent")
		}
		for _, target := range targets {
			fmt.Println(urlhandler.ToAbsoluteURL(flags.ParentURL, target))
		}
	case ModeRelative:
		if flags.ParentURL == "" {
			return fmt.Errorf("relative mode requires -parent")
		}
		for _, target := range targets {
			fmt.Println(urlhandler.ToRelativeURL(flags.ParentURL, target))
		}
	case ModeAnchor:
		for _, target := range targets {
			fmt.Println(urlhandler.GetURLAnchor(target))
		}
	case ModeDomain:
		for _, target := range targets {
			fmt.Println(baseDomainOf(target))
		}
	case ModeExtract:
		return runExtract(flags, gCfg, targets, zLogger)
	default:
		return fmt.Errorf("unknown mode '%s'", flags.Mode)
	}
	return nil
}

func runParse(targets []string) error {
	for _, target := range targets {
		parts := urlhandler.Parse(target)
		if parts == nil {
			fmt.Println("null")
			continue
		}
		encoded, err := json.Marshal(parts)
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
	}
	return nil
}

// baseDomainOf reduces a target to the registrable base domain of its host.
// Scheme-less targets are retried as https URLs so bare hostnames work.
func baseDomainOf(target string) string {
	parts := urlhandler.Parse(target)
	if parts == nil || parts.Domain == "" {
		parts = urlhandler.Parse("https://" + target)
	}
	if parts == nil || parts.Domain == "" {
		return ""
	}

	base, err := urlhandler.BaseDomain(parts.Domain)
	if err != nil {
		return parts.Domain
	}
	return base
}

// runExtract treats targets as local content file paths, analyzing each
// with -parent as the source URL.
func runExtract(flags AppFlags, gCfg *config.GlobalConfig, targets []string, zLogger zerolog.Logger) error {
	if flags.ParentURL == "" {
		return fmt.Errorf("extract mode requires -parent as the content's source URL")
	}

	var platformSite urlhandler.Site
	if gCfg.SiteConfig.BaseURL != "" {
		configuredSite, err := site.New(gCfg.SiteConfig)
		if err != nil {
			return err
		}
		platformSite = configuredSite
	}

	linkExtractor := extractor.NewLinkExtractor(gCfg.ExtractorConfig, platformSite, zLogger)

	for _, path := range targets {
		content, err := os.ReadFile(path)
		if err != nil {
			zLogger.Error().Err(err).Str("path", path).Msg("Could not read content file")
			continue
		}

		contentType := mime.TypeByExtension(filepath.Ext(path))
		links, err := linkExtractor.ExtractLinks(flags.ParentURL, contentType, content)
		if err != nil {
			zLogger.Error().Err(err).Str("path", path).Msg("Extraction failed")
			continue
		}

		for _, link := range links {
			encoded, err := json.Marshal(link)
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
		}

		for baseDomain, group := range extractor.GroupByBaseDomain(links) {
			zLogger.Info().Str("path", path).Str("base_domain", baseDomain).Int("count", len(group)).Msg("Extracted links")
		}
	}
	return nil
}

func registerWellKnownURLs(cfg config.WellKnownConfig, zLogger zerolog.Logger) {
	for _, entry := range cfg.Entries {
		urlhandler.RegisterWellKnownURL(entry.URL, urlhandler.URLParts{
			Protocol:    entry.Protocol,
			Domain:      entry.Domain,
			Port:        entry.Port,
			Credentials: entry.Credentials,
			Path:        entry.Path,
			Query:       entry.Query,
			Fragment:    entry.Fragment,
		})
	}
	if len(cfg.Entries) > 0 {
		zLogger.Info().Int("count", len(cfg.Entries)).Msg("Registered well-known URLs from config")
	}
}

// collectTargets merges positional arguments with entries from the targets
// file, if given.
func collectTargets(flags AppFlags) ([]string, error) {
	targets := append([]string{}, flags.Targets...)

	if flags.TargetsFile == "" {
		return targets, nil
	}

	data, err := os.ReadFile(flags.TargetsFile)
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}
	return targets, nil
}
