// Package output renders bannerkit results for people and for machines.
//
// Structured formats (json, yaml, toml) encode the result values directly.
// The text format prints one plain line per item and the terminal format
// adds lipgloss styling and pterm tables.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/bannerkit/pkg/game"
	"github.com/arthur-debert/bannerkit/pkg/installers"
	"github.com/arthur-debert/bannerkit/pkg/notifier"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Encode writes v in a structured format. TOML needs a table at the top
// level, so v must be a struct or map for FormatTOML.
func Encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("format %s is not a structured format", f)
	}
}

func isStructured(f Format) bool {
	return f == FormatJSON || f == FormatYAML || f == FormatTOML
}

// Plan renders a deployment plan.
func Plan(w io.Writer, f Format, plan installers.Plan) error {
	if isStructured(f) {
		return Encode(w, f, plan)
	}

	if f != FormatTerminal {
		fmt.Fprintf(w, "installer: %s\n", plan.Installer)
		for _, ins := range plan.Instructions {
			fmt.Fprintf(w, "%s %s -> %s\n", ins.Type, ins.Source, ins.Destination)
		}
		return nil
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Plan (%s)", plan.Installer)))
	if len(plan.Instructions) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("nothing to copy"))
		return nil
	}

	data := pterm.TableData{{"Type", "Source", "Destination"}}
	for _, ins := range plan.Instructions {
		data = append(data, []string{string(ins.Type), ins.Source, successStyle.Render(ins.Destination)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d file(s)", len(plan.Instructions))))
	return nil
}

// verdictList wraps verdicts so every structured format has a top-level table
type verdictList struct {
	Verdicts []installers.Verdict `json:"verdicts" yaml:"verdicts" toml:"verdicts"`
}

// Verdicts renders installer test results.
func Verdicts(w io.Writer, f Format, verdicts []installers.Verdict) error {
	if isStructured(f) {
		return Encode(w, f, verdictList{Verdicts: verdicts})
	}

	for _, v := range verdicts {
		mark := "no"
		if v.Result.Supported {
			mark = "yes"
		}
		if f == FormatTerminal {
			if v.Result.Supported {
				mark = successStyle.Render(mark)
			} else {
				mark = mutedStyle.Render(mark)
			}
		}
		fmt.Fprintf(w, "%-22s priority %-3d supported: %s\n", v.Installer, v.Priority, mark)
	}
	return nil
}

// Registration renders the game registration metadata.
func Registration(w io.Writer, f Format, reg game.Registration) error {
	if isStructured(f) {
		return Encode(w, f, reg)
	}

	if f == FormatTerminal {
		fmt.Fprintln(w, titleStyle.Render(reg.Name))
	} else {
		fmt.Fprintln(w, reg.Name)
	}
	fmt.Fprintf(w, "id:           %s\n", reg.ID)
	fmt.Fprintf(w, "executable:   %s\n", reg.Executable)
	fmt.Fprintf(w, "steam app id: %d\n", reg.Details.SteamAppID)
	fmt.Fprintf(w, "mods path:    %s\n", reg.Details.CustomOpenModsPath)
	for k, v := range reg.Environment {
		fmt.Fprintf(w, "env:          %s=%s\n", k, v)
	}
	return nil
}

// Launcher renders the launcher probe result.
func Launcher(w io.Writer, f Format, launcher game.Launcher) error {
	if isStructured(f) {
		return Encode(w, f, launcher)
	}
	if launcher.Kind == "" {
		fmt.Fprintln(w, "no launcher required")
		return nil
	}
	fmt.Fprintf(w, "launcher required: %s\n", launcher.Kind)
	return nil
}

// Notification renders a launcher notification as it would be shown.
func Notification(w io.Writer, f Format, n notifier.Notification) error {
	if isStructured(f) {
		return Encode(w, f, n)
	}
	if f == FormatTerminal {
		fmt.Fprintf(w, "%s %s\n", warnStyle.Render("["+string(n.Type)+"]"), n.Message)
		return nil
	}
	fmt.Fprintf(w, "[%s] %s\n", n.Type, n.Message)
	return nil
}
