package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshsymonds/brewmatch/internal/cli"
	"github.com/joshsymonds/brewmatch/internal/common"
	"github.com/joshsymonds/brewmatch/internal/model"
	"github.com/joshsymonds/brewmatch/internal/recommend"
)

func equipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Recommend espresso machines and grinders",
	}

	cmd.AddCommand(equipmentRecommendCmd())
	cmd.AddCommand(equipmentScoreCmd())

	return cmd
}

func equipmentRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend machines and grinders for a budget",
		Long: `Rank catalog machines and grinders by how well they fit your budget
tier and what you want to brew.

Example:
  brewmatch equipment recommend --budget mid --purpose milk-drinks --experience beginner`,
		Args: cobra.NoArgs,
		RunE: runEquipmentRecommend,
	}

	addBudgetFlags(cmd)
	cmd.Flags().String("experience", "", "experience level (beginner, intermediate, advanced)")
	addOutputFlag(cmd)

	return cmd
}

func runEquipmentRecommend(cmd *cobra.Command, _ []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	budget, purposes, err := budgetFlags(cmd)
	if err != nil {
		return err
	}
	experienceName, _ := cmd.Flags().GetString("experience")
	experience := recommend.ParseExperience(experienceName)
	if experienceName != "" && experience == recommend.ExperienceUnset {
		return common.NewUserError(fmt.Sprintf("Unknown experience level %q", experienceName), common.ErrInvalidConfig)
	}

	eng, err := initEngine()
	if err != nil {
		return err
	}

	rec := eng.GetEquipmentRecommendations(budget, purposes, experience)
	if format == cli.FormatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), rec)
	}

	percentage := func(item model.CatalogItem) int {
		return eng.CalculateMatchPercentage(item, budget, purposes)
	}
	return cli.RenderRecommendation(cmd.OutOrStdout(), rec, percentage)
}

type scoreOutput struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Tier       model.PriceTier `json:"tier"`
	Percentage int             `json:"percentage"`
}

func equipmentScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <id>",
		Short: "Show how well one machine or grinder fits a budget",
		Args:  cobra.ExactArgs(1),
		RunE:  runEquipmentScore,
	}

	addBudgetFlags(cmd)
	addOutputFlag(cmd)

	return cmd
}

func runEquipmentScore(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	budget, purposes, err := budgetFlags(cmd)
	if err != nil {
		return err
	}

	eng, err := initEngine()
	if err != nil {
		return err
	}

	item, err := eng.FindItem(args[0])
	if err != nil {
		return common.NewUserError(fmt.Sprintf("No machine or grinder with ID %q", args[0]), err)
	}

	out := scoreOutput{
		ID:         item.ItemID(),
		Name:       item.ItemName(),
		Tier:       item.Tier(),
		Percentage: eng.CalculateMatchPercentage(item, budget, purposes),
	}

	if format == cli.FormatJSON {
		return cli.WriteJSON(cmd.OutOrStdout(), out)
	}

	line := fmt.Sprintf("%s (%s tier): %d%% match", out.Name, out.Tier, out.Percentage)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(line)+"\n"+cli.Bar(float64(out.Percentage)/100, cli.BarWidth))
	return err
}
