// Package wizard implements the interactive project setup form used by
// the init command.
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/pitehu/simbench/internal/projectconfig"
)

// sortKeys are the explorer sort orders the wizard offers, paired with the
// labels shown in the interactive form.
var sortKeys = []struct {
	key   string
	label string
}{
	{"index", "original order"},
	{"score-desc", "score, high to low"},
	{"score-asc", "score, low to high"},
	{"entropy-asc", "entropy, low to high"},
	{"entropy-desc", "entropy, high to low"},
	{"dataset", "dataset name"},
}

// answers holds the raw wizard responses before they are folded into a
// ProjectConfig. Empty answers keep the defaults.
type answers struct {
	source  string
	portRaw string
	sizeRaw string
	sortKey string
	openWeb bool
}

// RunSetupWizard collects the settings for a new .simbench.yaml. On a
// terminal it runs an interactive huh form; for piped or scripted input it
// falls back to plain line prompts, one answer per question.
func RunSetupWizard(in io.Reader, out io.Writer) (*projectconfig.ProjectConfig, error) {
	a := answers{openWeb: true}

	var err error
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		err = a.collectForm(in, out)
	} else {
		err = a.collectPlain(in, out)
	}
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	return a.config(), nil
}

// collectForm runs the interactive huh form.
func (a *answers) collectForm(in io.Reader, out io.Writer) error {
	options := make([]huh.Option[string], len(sortKeys))
	for i, s := range sortKeys {
		options[i] = huh.NewOption(s.label, s.key)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Results source").
				Description("Path to a results JSON file, a directory of shards, or an HTTP(S) URL").
				Placeholder(projectconfig.DefaultDataPath).
				Value(&a.source),
			huh.NewInput().
				Title("Server port").
				Description("Port for the explorer web server").
				Placeholder(strconv.Itoa(projectconfig.DefaultServerPort)).
				Value(&a.portRaw).
				Validate(validatePort),
			huh.NewInput().
				Title("Page size").
				Description("Questions per explorer page").
				Placeholder(strconv.Itoa(projectconfig.DefaultPageSize)).
				Value(&a.sizeRaw).
				Validate(validateCount),
			huh.NewSelect[string]().
				Title("Default sort order").
				Options(options...).
				Value(&a.sortKey),
			huh.NewConfirm().
				Title("Open browser on serve?").
				Value(&a.openWeb),
		),
	).
		WithInput(in).
		WithOutput(out)

	return form.Run()
}

// collectPlain prompts line by line on out and reads one answer per question
// from in. Invalid answers are re-prompted; EOF keeps the remaining defaults.
func (a *answers) collectPlain(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	prompt := func(label string, validate func(string) error) (string, error) {
		for {
			fmt.Fprintf(out, "%s: ", label) //nolint:errcheck
			if !sc.Scan() {
				return "", sc.Err()
			}
			v := strings.TrimSpace(sc.Text())
			if validate != nil {
				if err := validate(v); err != nil {
					fmt.Fprintln(out, err) //nolint:errcheck
					continue
				}
			}
			return v, nil
		}
	}

	var err error
	if a.source, err = prompt("Results source ["+projectconfig.DefaultDataPath+"]", nil); err != nil {
		return err
	}
	if a.portRaw, err = prompt(fmt.Sprintf("Server port [%d]", projectconfig.DefaultServerPort), validatePort); err != nil {
		return err
	}
	if a.sizeRaw, err = prompt(fmt.Sprintf("Page size [%d]", projectconfig.DefaultPageSize), validateCount); err != nil {
		return err
	}
	if a.sortKey, err = prompt("Default sort order ["+sortKeyList()+"]", validateSort); err != nil {
		return err
	}

	openRaw, err := prompt("Open browser on serve? [Y/n]", nil)
	if err != nil {
		return err
	}
	if strings.EqualFold(openRaw, "n") || strings.EqualFold(openRaw, "no") {
		a.openWeb = false
	}
	return nil
}

// config folds the collected answers into a ProjectConfig, keeping the
// defaults for any answer left empty.
func (a *answers) config() *projectconfig.ProjectConfig {
	cfg := projectconfig.New()
	if s := strings.TrimSpace(a.source); s != "" {
		cfg.Data.Source = s
	}
	if p := strings.TrimSpace(a.portRaw); p != "" {
		cfg.Server.Port, _ = strconv.Atoi(p)
	}
	if s := strings.TrimSpace(a.sizeRaw); s != "" {
		cfg.Explorer.PageSize, _ = strconv.Atoi(s)
	}
	if a.sortKey != "" {
		cfg.Explorer.Sort = a.sortKey
	}
	noBrowser := !a.openWeb
	cfg.Server.NoBrowser = &noBrowser
	return cfg
}

func sortKeyList() string {
	keys := make([]string, len(sortKeys))
	for i, s := range sortKeys {
		keys[i] = s.key
	}
	return strings.Join(keys, ", ")
}

// validatePort accepts an empty answer (keep the default) or a valid TCP
// port number.
func validatePort(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}

// validateCount accepts an empty answer or a positive integer.
func validateCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

// validateSort accepts an empty answer or one of the known sort keys.
func validateSort(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, k := range sortKeys {
		if s == k.key {
			return nil
		}
	}
	return fmt.Errorf("sort must be one of: %s", sortKeyList())
}
