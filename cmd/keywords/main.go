package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"wordslurp/internal/keywords"
	"wordslurp/internal/pdf"
)

var (
	app  = kingpin.New("keywords", "consume a pdf file and extract scored keyword phrases")
	args = struct {
		input *string
		num   *int
		floor *float64
	}{
		input: app.Flag("in", "input file to process").Short('i').Required().String(),
		num:   app.Flag("num", "maximum phrases to report (0 = no limit)").Short('n').Default("0").Int(),
		floor: app.Flag("floor", "drop phrases scoring below this").Default("1.0").Float64(),
	}
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	logrus.Infof("input: %s", *args.input)

	raw, err := pdf.Extract(*args.input, pdf.AllPages)
	if err != nil {
		logrus.Fatal(err)
	}

	for _, kw := range keywords.Extract(raw, *args.num, *args.floor) {
		fmt.Printf("%s (%f)\n", kw.Phrase, kw.Score)
	}
}
