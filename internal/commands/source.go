package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/moneyovertime/mot/internal/config"
	"github.com/moneyovertime/mot/internal/model"
	"github.com/moneyovertime/mot/internal/movements"
	"github.com/moneyovertime/mot/internal/report"
	"github.com/moneyovertime/mot/internal/tabular"
)

// sourceFlags are the per-file reading options. Diff registers two sets
// under "source-" and "reference-" prefixes; plot registers one unprefixed.
type sourceFlags struct {
	file    string
	profile string
	config.Source
}

func (s *sourceFlags) bind(fs *pflag.FlagSet, prefix, fileName, fileShort, profileName string) {
	fs.StringVarP(&s.file, fileName, fileShort, "", "path of the records file")
	fs.StringVar(&s.profile, profileName, "", "named profile from the config file")

	delimShort := ""
	if prefix == "" {
		delimShort = "d"
	}
	fs.StringVarP(&s.Delimiter, prefix+"delimiter", delimShort, "", `column delimiter (default ",")`)
	fs.StringVar(&s.DateFormat, prefix+"date-format", "", `strftime pattern of the date values (default "%d/%m/%Y")`)
	fs.StringVar(&s.DateLabel, prefix+"date-label", "", `label of the date column (default "date")`)
	fs.StringVar(&s.AmountLabel, prefix+"amount-label", "", `label of the amount column (default "amount")`)
}

// options layers the flags over the selected profile and the config file
// defaults.
func (s *sourceFlags) options(cfg *config.Config, filter *model.Filter) (movements.Options, error) {
	base, err := cfg.Resolve(s.profile)
	if err != nil {
		return movements.Options{}, err
	}
	src := s.Source.Merge(base)

	delim, err := tabular.ParseDelimiter(src.Delimiter)
	if err != nil {
		return movements.Options{}, err
	}

	return movements.Options{
		Delimiter: delim,
		Date: model.DateColumn{
			Column: model.Column{Label: src.DateLabel},
			Format: src.DateFormat,
		},
		Amount: model.Column{Label: src.AmountLabel},
		Filter: filter,
	}, nil
}

// filterFlags is a label/value pair selecting rows by one column.
type filterFlags struct {
	label string
	value string
}

func (f *filterFlags) bind(fs *pflag.FlagSet, kind, verb string) {
	fs.StringVar(&f.label, kind+"-label", "", "label of the column whose value selects the rows to "+verb)
	fs.StringVar(&f.value, kind+"-value", "", "value of the rows to "+verb)
}

func (f filterFlags) set() bool {
	return strings.TrimSpace(f.label) != "" || strings.TrimSpace(f.value) != ""
}

func (f filterFlags) filter(mode model.FilterMode) *model.Filter {
	if !f.set() {
		return nil
	}
	return &model.Filter{
		Column: model.Column{Label: f.label},
		Value:  f.value,
		Mode:   mode,
	}
}

// outputFlags select the renderer and the pager.
type outputFlags struct {
	format  string
	style   string
	width   int
	noPager bool
}

func (o *outputFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.format, "output", "o", "text", "output format: text, markdown or csv")
	fs.StringVar(&o.style, "style", "", `markdown style: a glamour style such as "dark", "light" or "notty", or "raw" for markdown source (default: detected from the terminal)`)
	fs.IntVar(&o.width, "width", 0, "markdown word-wrap width")
	fs.BoolVar(&o.noPager, "no-pager", false, "never page output")
}

func (o outputFlags) renderer() (report.Renderer, error) {
	if o.width < 0 {
		return nil, fmt.Errorf("--width must not be negative, got %d", o.width)
	}
	return report.New(o.format, report.Options{Style: o.style, Width: o.width})
}
