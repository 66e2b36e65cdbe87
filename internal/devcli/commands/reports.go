package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steven3002/pbi-go/internal/devcli"
	"github.com/steven3002/pbi-go/pbi"
)

func newReportsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Report commands",
	}
	cmd.AddCommand(newReportsListCmd(a), newEmbedTokenCmd(a), newRebindCmd(a))
	return cmd
}

func newReportsListCmd(a *app) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reports in a workspace, or in My workspace when --group is omitted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := devcli.Ctx(cmd.Context(), a.settings)
			defer cancel()

			list, err := pbi.Decode[pbi.ReportList](a.client.Reports().List(ctx, group))
			if err != nil {
				return err
			}
			if a.output == "json" {
				return devcli.PrintJSON(cmd.OutOrStdout(), list.Value)
			}
			return devcli.PrintReports(cmd.OutOrStdout(), list.Value)
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "Workspace ID")
	return cmd
}

func newEmbedTokenCmd(a *app) *cobra.Command {
	var group, report, accessLevel string
	cmd := &cobra.Command{
		Use:   "embed-token",
		Short: "Generate an embed token for a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := devcli.Ctx(cmd.Context(), a.settings)
			defer cancel()

			tok, err := pbi.Decode[pbi.EmbedToken](a.client.Reports().EmbedToken(ctx, report, group, accessLevel))
			if err != nil {
				return err
			}
			if a.output == "json" {
				return devcli.PrintJSON(cmd.OutOrStdout(), tok)
			}
			return devcli.PrintEmbedToken(cmd.OutOrStdout(), tok)
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "Workspace ID")
	cmd.Flags().StringVarP(&report, "report", "r", "", "Report ID")
	cmd.Flags().StringVar(&accessLevel, "access-level", "", "Access level, sent as given (default \"view\")")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("report")
	return cmd
}

func newRebindCmd(a *app) *cobra.Command {
	var group, report, dataset string
	cmd := &cobra.Command{
		Use:   "rebind",
		Short: "Rebind a report to another dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := devcli.Ctx(cmd.Context(), a.settings)
			defer cancel()

			res, err := a.client.Reports().Rebind(ctx, group, report, dataset)
			if err != nil {
				return err
			}
			if a.output == "json" {
				return devcli.PrintResponse(cmd.OutOrStdout(), res)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Report %s rebound to dataset %s.\n", report, dataset)
			return err
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", "", "Workspace ID")
	cmd.Flags().StringVarP(&report, "report", "r", "", "Report ID")
	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Target dataset ID")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("report")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}
