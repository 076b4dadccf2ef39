package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/appengine-ltd/timberline/internal/console"
	"github.com/appengine-ltd/timberline/internal/sim"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TIMBERLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "timberline",
		Short: "Quarterly forestry company simulator",
		Long: "Timberline runs a turn-based forestry operation: permits, harvest\n" +
			"planning, community consultation, certification, and the quarterly\n" +
			"grind of keeping a mill town employed without losing your license.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(v)
		},
	}

	flags := root.Flags()
	flags.String("company", "", "company name (prompted when empty)")
	flags.String("region", "", "operating region: SBS, IDF, or MS (prompted when empty)")
	flags.Int64("seed", 0, "deterministic RNG seed (0 = random)")
	flags.Int("years", 0, "maximum years to simulate")
	flags.Int("budget", 0, "starting budget in dollars")
	flags.Bool("plain", false, "disable interactive menus, use numbered prompts")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("timberline %s (%s) %s\n", version, commit, date)
		},
	})

	return root
}

func runGame(v *viper.Viper) error {
	interactive := !v.GetBool("plain") && stdinIsTTY()
	ui := console.NewTerminal(os.Stdin, os.Stdout, interactive)

	ui.Section("TIMBERLINE - INTERIOR FORESTRY SIMULATOR")
	ui.Printf("Navigate permits, consultation, certification, disasters, and the")
	ui.Printf("occasional opportunity your lawyers would rather not hear about.")

	company := v.GetString("company")
	if company == "" {
		company = ui.ReadLine("Name your forestry company:")
	}

	region := sim.RegionID(strings.ToUpper(v.GetString("region")))
	if _, ok := sim.RegionByID(region); !ok {
		region = chooseRegion(ui)
	}

	session, err := sim.NewSession(sim.Config{
		CompanyName:    company,
		Region:         region,
		Seed:           v.GetInt64("seed"),
		StartingBudget: v.GetInt("budget"),
		MaxYears:       v.GetInt("years"),
	}, ui)
	if err != nil {
		return err
	}

	session.Run()
	return nil
}

func chooseRegion(ui *console.Terminal) sim.RegionID {
	regions := sim.BuiltInRegions()
	options := make([]string, len(regions))
	for i, r := range regions {
		options[i] = fmt.Sprintf("%s (%s) - %s", r.Name, r.ID, r.Summary)
	}
	return regions[ui.Choose("Where will you operate?", options)].ID
}

func stdinIsTTY() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
