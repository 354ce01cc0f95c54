package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-petr/fund-manager/internal/demo"
	"github.com/go-petr/fund-manager/internal/domain"
	"github.com/go-petr/fund-manager/internal/ledgerrepo"
	"github.com/go-petr/fund-manager/internal/ledgerservice"
	"github.com/go-petr/fund-manager/pkg/idpkg"
)

func newOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print the demo ledger with objective progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledger, err := ledgerservice.New(ledgerrepo.NewRepoMem(), idpkg.UUID{})
			if err != nil {
				return err
			}

			if err := demo.Load(ctx, ledger); err != nil {
				return fmt.Errorf("loading demo ledger: %w", err)
			}

			o, err := ledger.Overview(ctx)
			if err != nil {
				return err
			}

			return printOverview(cmd.OutOrStdout(), o)
		},
	}
}

func printOverview(out io.Writer, o domain.Overview) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Total balance\t%s\n", o.TotalBalance.StringFixed(2))

	for _, b := range o.Banks {
		fmt.Fprintf(w, "\n%s\t%s\t%s\t%s\n", b.Bank.Icon, b.Bank.Name, b.Bank.AccountType, b.Bank.Balance.StringFixed(2))

		for _, op := range b.Objectives {
			obj := op.Objective
			fmt.Fprintf(w, "  %s\t%s / %s\t%d%%\t%s\n",
				obj.Name, obj.CurrentAmount.StringFixed(2), obj.TargetAmount.StringFixed(2), op.Progress, obj.Icon)
		}
	}

	return w.Flush()
}
