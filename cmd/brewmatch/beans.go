package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/brewmatch/internal/cli"
	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/flavor"
	"github.com/joshsymonds/brewmatch/internal/model"
)

func beansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beans",
		Short: "Browse and match catalog beans",
	}

	cmd.AddCommand(beansListCmd())
	cmd.AddCommand(beansMatchCmd())

	return cmd
}

func beansListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog beans",
		Long: `List the beans in the catalog, optionally narrowed to a flavor
category (chocolate-nutty, fruity-bright, balanced, bold-strong).`,
		Args: cobra.NoArgs,
		RunE: runBeansList,
	}

	cmd.Flags().String("flavor", "", "flavor category to filter by")
	addOutputFlag(cmd)

	return cmd
}

func runBeansList(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	category, err := flavorFlag(cmd)
	if err != nil {
		return err
	}

	eng, err := initEngine()
	if err != nil {
		return err
	}

	beans := flavor.Filter(eng.Catalog().Beans(), category)
	if format == cli.FormatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), beans)
	}
	return cli.RenderBeans(cmd.OutOrStdout(), beans)
}

func beansMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank beans for your equipment",
		Long: `Score catalog beans against your machine and grinder and show the
best matches with the reasons behind each score and brewing tips.

Pass --machine and --grinder with catalog IDs to use their full details,
or describe your gear with --machine-type, --grinder-type and --burr.`,
		Args: cobra.NoArgs,
		RunE: runBeansMatch,
	}

	cmd.Flags().String("flavor", "", "flavor category to filter by")
	cmd.Flags().String("machine", "", "catalog machine ID")
	cmd.Flags().String("grinder", "", "catalog grinder ID")
	cmd.Flags().String("machine-type", "", "machine type (manual, semi-automatic, automatic, super-automatic, pour-over, french-press, moka-pot, aeropress)")
	cmd.Flags().String("grinder-type", "", "grinder type (manual, electric)")
	cmd.Flags().String("burr", "", "burr type (flat, conical)")
	addOutputFlag(cmd)

	return cmd
}

func runBeansMatch(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	category, err := flavorFlag(cmd)
	if err != nil {
		return err
	}

	machineID, _ := cmd.Flags().GetString("machine")
	grinderID, _ := cmd.Flags().GetString("grinder")
	machineType, _ := cmd.Flags().GetString("machine-type")
	grinderType, _ := cmd.Flags().GetString("grinder-type")
	burr, _ := cmd.Flags().GetString("burr")

	profile := model.EquipmentProfile{
		MachineID:   machineID,
		MachineType: model.MachineType(machineType),
		GrinderID:   grinderID,
		GrinderKind: model.GrinderKind(grinderType),
		BurrType:    model.BurrType(burr),
	}

	eng, err := initEngine()
	if err != nil {
		return err
	}

	matches, err := eng.MatchBeansForFlavor(profile, category)
	if err != nil {
		return common.NewUserError("Unknown equipment; run `brewmatch equipment recommend` to see catalog IDs", err)
	}

	common.LogDebug("Matched beans", common.Fields{
		"flavor":       category,
		"machine_type": profile.MachineType,
		"matches":      len(matches),
	})

	if format == cli.FormatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), matches)
	}
	return cli.RenderBeanMatches(cmd.OutOrStdout(), matches)
}

func flavorFlag(cmd *cobra.Command) (flavor.Category, error) {
	name, _ := cmd.Flags().GetString("flavor")
	if name == "" {
		return flavor.None, nil
	}
	category := flavor.ParseCategory(name)
	if category == flavor.None {
		return flavor.None, common.NewUserError(fmt.Sprintf("Unknown flavor %q (valid: %v)", name, flavor.Categories()), common.ErrInvalidConfig)
	}
	return category, nil
}
