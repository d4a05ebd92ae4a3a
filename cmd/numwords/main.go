// Command numwords spells numbers as words.
//
//	numwords -lang fr 1234.5
//	NUMWORDS_LANGUAGE=ar numwords 42
//	numwords -lexicon testdata/en-gb.yaml -lang en-GB 115
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/goliatone/go-numwords"
)

type stringsFlag struct {
	items []string
}

func (f *stringsFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *stringsFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

type options struct {
	lang     string
	lexicons []string
	exact    bool
	list     bool
	verbose  bool
	logLevel string
	numbers  []string
}

func main() {
	os.Exit(run(os.Args[1:], nil, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code. A nil environ
// reads the process environment.
func run(args []string, environ map[string]string, stdout, stderr io.Writer) int {
	envCfg, err := loadEnvConfig(".env", environ)
	if err != nil {
		fmt.Fprintf(stderr, "numwords: %v\n", err)
		return 2
	}

	opts, err := parseFlags(args, envCfg, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level, err := parseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "numwords: %v\n", err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfgOpts := []numwords.Option{
		numwords.WithDefaultLanguage(numwords.Language(opts.lang)),
		numwords.WithHooks(loggingHook(logger)),
	}
	if len(opts.lexicons) > 0 {
		cfgOpts = append(cfgOpts, numwords.WithLexiconFiles(opts.lexicons...))
	}

	cfg, err := numwords.NewConfig(cfgOpts...)
	if err != nil {
		logger.Error("invalid configuration", errorAttr(err))
		return 1
	}

	converter, err := cfg.BuildConverter()
	if err != nil {
		logger.Error("build converter", errorAttr(err))
		return 1
	}

	if opts.list {
		for _, lang := range converter.Registry().Languages() {
			module, _ := converter.Registry().Module(lang)
			fmt.Fprintf(stdout, "%s\t%s\n", lang, module.Name)
		}
		return 0
	}

	if len(opts.numbers) == 0 {
		fmt.Fprintln(stderr, "numwords: at least one NUMBER is required")
		return 2
	}

	status := 0
	for _, input := range opts.numbers {
		result, err := convert(converter, input, opts.exact)
		if err != nil {
			fmt.Fprintf(stderr, "numwords: %s: %v\n", input, err)
			status = 1
			continue
		}

		if opts.verbose {
			fmt.Fprintf(stdout, "%s\t%s\n", formatNumeral(result), result.Words)
			continue
		}
		fmt.Fprintln(stdout, result.Words)
	}

	return status
}

func parseFlags(args []string, envCfg envConfig, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("numwords", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := options{}
	lexicons := &stringsFlag{}

	fs.StringVar(&opts.lang, "lang", envCfg.Language, "output language code (en, fr, ar, es or a loaded lexicon)")
	fs.Var(lexicons, "lexicon", "lexicon file (YAML/JSON) to register; repeatable or comma separated")
	fs.BoolVar(&opts.exact, "exact", false, "read NUMBER as an exact decimal, keeping trailing fractional zeros")
	fs.BoolVar(&opts.list, "list", false, "list available languages and exit")
	fs.BoolVar(&opts.verbose, "v", false, "print the formatted numeral next to the words")
	fs.StringVar(&opts.logLevel, "log-level", envCfg.LogLevel, "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: numwords [-lang xx] [-lexicon file]... [-exact] [-list] [-v] NUMBER...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.lexicons = append(append([]string(nil), envCfg.Lexicons...), lexicons.items...)
	opts.numbers = fs.Args()
	return opts, nil
}

func convert(converter *numwords.Converter, input string, exact bool) (numwords.ConversionResult, error) {
	if exact {
		return converter.ConvertString(input)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return numwords.ConversionResult{}, fmt.Errorf("%w: %q", numwords.ErrInvalidInput, input)
	}
	return converter.Convert(value)
}

// formatNumeral renders the number with the digit grouping of its language.
func formatNumeral(result numwords.ConversionResult) string {
	tag, err := language.Parse(string(result.Language))
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprint(number.Decimal(result.Number))
}
