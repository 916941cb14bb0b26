package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"hyspell/internal/app"
	"hyspell/internal/config"
	"hyspell/internal/corpus"
	sc "hyspell/internal/corrector"
	"hyspell/pkg/options"
)

const (
	msgNoTypo       = "Վրիպակ չկա"
	msgNoCorrection = "Շտկման տարբերակ չկա"
)

type listFlag []string

func (l *listFlag) String() string     { return strings.Join(*l, ",") }
func (l *listFlag) Set(v string) error { *l = append(*l, v); return nil }

func main() {
	var (
		csvFiles  listFlag
		textFiles listFlag
		columns   = flag.String("columns", "target", "Comma-separated CSV columns to read")
		top       = flag.Int("top", 5, "Maximum suggestions to print per word (0 prints all)")
		workers   = flag.Int("workers", 1, "Parallel vocabulary scan chunks")
		debug     = flag.Bool("debug", false, "Log at debug level")
	)
	flag.Var(&csvFiles, "csv", "CSV corpus file (repeatable)")
	flag.Var(&textFiles, "text", "Plain-text corpus file (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] word...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 || (len(csvFiles) == 0 && len(textFiles) == 0) {
		flag.Usage()
		os.Exit(2)
	}

	level := "warn"
	if *debug {
		level = "debug"
	}
	logger := app.NewLogger(config.LogConfig{Level: level, Format: "text"})

	cc := config.CorpusConfig{TextPaths: textFiles}
	if len(csvFiles) > 0 {
		cc.Groups = []corpus.Group{{Paths: csvFiles, Columns: strings.Split(*columns, ",")}}
	}
	vocab, err := app.BuildFromCorpus(cc, logger)
	if err != nil {
		log.Fatalf("corpus error: %v", err)
	}
	corrector := sc.New(vocab, options.WithWorkers(*workers))

	for _, word := range flag.Args() {
		res := corrector.Correct(word)
		switch res.Status {
		case sc.AlreadyCorrect:
			fmt.Printf("%s: %s\n", word, msgNoTypo)
		case sc.NoSuggestion:
			fmt.Printf("%s: %s\n", word, msgNoCorrection)
		default:
			list := res.Candidates
			if *top > 0 && len(list) > *top {
				list = list[:*top]
			}
			parts := make([]string, len(list))
			for i, c := range list {
				parts[i] = fmt.Sprintf("%s (%.2f)", c.Word, c.Score)
			}
			fmt.Printf("%s: %s\n", word, strings.Join(parts, ", "))
		}
	}
}
