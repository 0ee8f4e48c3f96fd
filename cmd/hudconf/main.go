// Command `hudconf` inspects and edits the HUD overlay configuration file
// outside the game.
//
// Usage:
//
//	hudconf show                         - Print general options and both module columns
//	hudconf init                         - Write the built-in defaults if no file exists
//	hudconf migrate [--to <format>]      - Rewrite the file in the current schema
//	hudconf set <option> <value>         - Change one general option
//	hudconf toggle <module> [line]       - Flip a module, or one of its lines, on or off
//
// Examples:
//
//	hudconf --dir ~/.minecraft show
//	hudconf --format toml migrate --to json
//	hudconf set fontScale 1.25
//	hudconf toggle coords chunk_coords
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/lc/hudconf/internal/buildinfo"
	"github.com/lc/hudconf/internal/config"
	"github.com/lc/hudconf/internal/filesys"
	"github.com/lc/hudconf/internal/hud"
	"github.com/lc/hudconf/internal/log"
)

func main() {
	var (
		dir      string
		format   string
		modName  string
		logLevel string
	)

	// open loads the configuration in the selected format.
	open := func() (*config.Store, *config.State, *config.Report, error) {
		ft, err := config.ParseFileType(format)
		if err != nil {
			return nil, nil, nil, err
		}
		store := config.New(filesys.OS(), dir, modName)
		st := config.NewState(hud.Builtin())
		rep, err := store.Load(st, ft)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, st, rep, nil
	}

	root := &cobra.Command{
		Use:   "hudconf",
		Short: "HUD overlay configuration tool",
		Long: `hudconf reads and writes the configuration file of the HUD overlay mod.
It understands both the legacy "modules" layout and the current ordered
modules_left / modules_right layout, in TOML, JSON or YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return log.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&dir, "dir", ".", "game directory holding config/")
	root.PersistentFlags().StringVar(&format, "format", "json", "config file format (json, toml, yaml)")
	root.PersistentFlags().StringVar(&modName, "mod", config.DefaultModName, "config file base name")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	// ---- version command ----
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("version: %s\n", buildinfo.Version)
			fmt.Printf("commit: %s\n", buildinfo.Commit)
		},
	}

	// ---- show command ----
	showCmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the effective configuration",
		Example: "hudconf --dir ~/.minecraft show",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, st, rep, err := open()
			if err != nil {
				return err
			}
			if rep.Absent {
				color.Yellow("No file at %s, showing built-in defaults.", store.Path(store.FileType()))
			} else {
				color.New(color.FgHiBlack).Printf("%s (%s schema)\n", rep.Path, rep.Schema)
			}
			printIssues(rep)

			color.New(color.Bold).Println("GENERAL:")
			for _, key := range config.OptionKeys() {
				v, _ := st.General.Get(key)
				color.New(color.FgHiCyan).Printf("  %-18s", key)
				fmt.Println(v)
			}
			fmt.Println()
			for _, col := range []config.Column{config.Left, config.Right} {
				color.New(color.Bold).Printf("%s COLUMN:\n", strings.ToUpper(col.String()))
				renderColumn(col, st.Column(col))
				fmt.Println()
			}
			return nil
		},
	}

	// ---- init command ----
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in defaults if no file exists",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, st, rep, err := open()
			if err != nil {
				return err
			}
			if !rep.Absent {
				color.Yellow("%s already exists, leaving it alone.", rep.Path)
				return nil
			}
			if err := store.Save(st); err != nil {
				return err
			}
			color.New(color.FgGreen, color.Bold).Printf("✓ Wrote defaults to %s\n", rep.Path)
			return nil
		},
	}

	// ---- migrate command ----
	var to string
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite the file in the current schema",
		Long: `Load the config file (legacy or current schema) and save it back in the
current schema. With --to the result is written in another format; the
source file is left in place.`,
		Example: "hudconf --format toml migrate --to json",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, st, rep, err := open()
			if err != nil {
				return err
			}
			if rep.Absent {
				return fmt.Errorf("nothing to migrate: %s does not exist", rep.Path)
			}
			printIssues(rep)
			target := store.FileType()
			if to != "" {
				if target, err = config.ParseFileType(to); err != nil {
					return err
				}
			}
			if err := store.SaveAs(st, target); err != nil {
				return err
			}
			color.New(color.FgGreen, color.Bold).Printf("✓ Migrated %s schema ", rep.Schema)
			color.New(color.FgHiGreen, color.Bold).Printf("%s ", rep.Path)
			color.New(color.FgGreen, color.Bold).Printf("to ")
			color.New(color.FgHiYellow, color.Bold).Printf("%s\n", store.Path(target))
			return nil
		},
	}
	migrateCmd.Flags().StringVar(&to, "to", "", "target format (json, toml, yaml)")

	// ---- set command ----
	setCmd := &cobra.Command{
		Use:   "set <option> <value>",
		Short: "Change one general option",
		Long: fmt.Sprintf(`Change one general option and save the file.

Options: %s`, strings.Join(config.OptionKeys(), ", ")),
		Example: "hudconf set fontScale 1.25",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			store, st, _, err := open()
			if err != nil {
				return err
			}
			if err := st.General.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := store.Save(st); err != nil {
				return err
			}
			v, _ := st.General.Get(args[0])
			color.New(color.FgGreen, color.Bold).Printf("✓ %s = %s\n", args[0], v)
			return nil
		},
	}

	// ---- toggle command ----
	toggleCmd := &cobra.Command{
		Use:   "toggle <module> [line]",
		Short: "Flip a module or one of its lines on or off",
		Long: `Flip the enabled flag of a module, or of one of its lines, and save the file.
A module is named by its position as printed by "show" (for example
"right:0") or by its id, which picks the first module of that kind.`,
		Example: "hudconf toggle coords chunk_coords",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			store, st, _, err := open()
			if err != nil {
				return err
			}
			m, _, ok := st.Find(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", hud.ErrUnknownModule, args[0])
			}
			what, now := m.ID(), false
			if len(args) == 2 {
				line := m.Line(args[1])
				if line == nil {
					return fmt.Errorf("module %s has no line %q", m.ID(), args[1])
				}
				line.Enabled = !line.Enabled
				what, now = m.ID()+"."+line.ID(), line.Enabled
			} else {
				m.SetEnabled(!m.Enabled())
				now = m.Enabled()
			}
			if err := store.Save(st); err != nil {
				return err
			}
			state := color.New(color.FgHiRed, color.Bold).Sprint("disabled")
			if now {
				state = color.New(color.FgHiGreen, color.Bold).Sprint("enabled")
			}
			fmt.Printf("✓ %s %s\n", what, state)
			return nil
		},
	}

	root.AddCommand(showCmd, initCmd, migrateCmd, setCmd, toggleCmd, versionCmd)
	err := root.Execute()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func printIssues(rep *config.Report) {
	if rep.Issues == nil {
		return
	}
	color.New(color.FgHiRed, color.Bold).Print("WARNING: ")
	color.New(color.FgYellow).Printf("%d record(s) dropped, %d placeholder(s)\n", rep.Dropped, rep.Placeholders)
	for _, err := range multierr.Errors(rep.Issues) {
		color.New(color.FgYellow).Printf("  - %v\n", err)
	}
}

func renderColumn(col config.Column, ms []hud.Module) {
	if len(ms) == 0 {
		color.Yellow("  (empty)")
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Slot", "Module", "Enabled", "Lines", "Colors"})
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgHiCyanColor},
	)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnColor(
		tablewriter.Colors{tablewriter.FgHiBlackColor},
		tablewriter.Colors{tablewriter.FgGreenColor},
		tablewriter.Colors{tablewriter.FgYellowColor},
		tablewriter.Colors{tablewriter.FgHiWhiteColor},
		tablewriter.Colors{tablewriter.FgHiWhiteColor},
	)
	for i, m := range ms {
		on := 0
		for _, l := range m.Lines() {
			if l.Enabled {
				on++
			}
		}
		lines := fmt.Sprintf("%d/%d", on, len(m.Lines()))
		if e, ok := m.(*hud.Empty); ok {
			lines = strconv.Itoa(e.EmptyLines) + " blank"
		}
		var colors []string
		for _, slot := range m.Colors() {
			if c, ok := slot.Value(); ok {
				colors = append(colors, slot.Key()+"="+c.String())
			}
		}
		enabled := "No"
		if m.Enabled() {
			enabled = "Yes"
		}
		table.Append([]string{col.Ref(i), m.ID(), enabled, lines, strings.Join(colors, " ")})
	}
	table.Render()
}
