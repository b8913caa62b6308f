// Package factory creates format parsers by name. It lives apart from the
// parser package so format packages can embed parser plumbing without an
// import cycle.
package factory

import (
	"fmt"
	"strings"

	"msalas/statement-csv/internal/banamexparser"
	"msalas/statement-csv/internal/chaseparser"
	"msalas/statement-csv/internal/citiparser"
	"msalas/statement-csv/internal/logging"
	"msalas/statement-csv/internal/models"
	"msalas/statement-csv/internal/wellsfargoparser"
)

// ParserType names a supported statement format.
type ParserType string

const (
	Banamex    ParserType = "banamex"
	Chase      ParserType = "chase"
	Citi       ParserType = "citi"
	WellsFargo ParserType = "wellsfargo"
)

// All lists every supported parser type.
func All() []ParserType {
	return []ParserType{Banamex, Chase, Citi, WellsFargo}
}

// ParseType resolves a user-supplied format name, case-insensitively.
func ParseType(name string) (ParserType, error) {
	switch ParserType(strings.ToLower(strings.TrimSpace(name))) {
	case Banamex:
		return Banamex, nil
	case Chase:
		return Chase, nil
	case Citi:
		return Citi, nil
	case WellsFargo:
		return WellsFargo, nil
	default:
		return "", fmt.Errorf("unknown statement format: %s", name)
	}
}

// GetParser returns a parser for the given type with a default logger.
func GetParser(parserType ParserType) (models.Parser, error) {
	return GetParserWithLogger(parserType, logging.NewLogrusAdapter("info", "text"))
}

// DetectType probes every known format against the file and returns the
// first one whose section markers match.
func DetectType(filePath string, logger logging.Logger) (ParserType, error) {
	for _, parserType := range All() {
		p, err := GetParserWithLogger(parserType, logger)
		if err != nil {
			return "", err
		}
		ok, err := p.ValidateFormat(filePath)
		if err != nil {
			return "", err
		}
		if ok {
			logger.Info("Detected statement format",
				logging.Field{Key: logging.FieldFormat, Value: string(parserType)})
			return parserType, nil
		}
	}
	return "", fmt.Errorf("no known statement format matches %s", filePath)
}

// GetParserWithLogger returns a parser for the given type using the
// provided logger.
func GetParserWithLogger(parserType ParserType, logger logging.Logger) (models.Parser, error) {
	switch parserType {
	case Banamex:
		return banamexparser.NewAdapter(logger), nil
	case Chase:
		return chaseparser.NewAdapter(logger), nil
	case Citi:
		return citiparser.NewAdapter(logger), nil
	case WellsFargo:
		return wellsfargoparser.NewAdapter(logger), nil
	default:
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
}
