package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/notargets/DGDiffusion/diffusion"
)

// OrdersCmd represents the orders command
var OrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List the compiled (dimension, dofs, quadrature) specializations",
	RunE: func(cmd *cobra.Command, args []string) error {
		uncertified, _ := cmd.Flags().GetBool("uncertified")
		var opts []diffusion.Option
		if uncertified {
			opts = append(opts, diffusion.WithUncertified())
		}
		PrintOrders(cmd.OutOrStdout(), diffusion.NewRegistry(opts...))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(OrdersCmd)
	OrdersCmd.Flags().BoolP("uncertified", "u", false, "include the uncertified hexahedral orders")
}

func PrintOrders(w io.Writer, reg *diffusion.Registry) {
	fmt.Fprintf(w, "%-9s %3s %6s %6s  %-20s %s\n", "code", "dim", "dofs1D", "quad1D", "kernel", "certified")
	for _, key := range reg.Keys() {
		entry, _ := reg.Lookup(key)
		fmt.Fprintf(w, "0x%-7X %3d %6d %6d  %-20s %t\n",
			key.Code(), key.Dim, key.Dofs1D, key.Quad1D, entry.Signature, entry.Certified)
	}
}
