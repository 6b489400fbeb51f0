// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/OpenCivil-Project/OpenCivil/fem"
	"github.com/OpenCivil-Project/OpenCivil/inp"
	"github.com/spf13/cobra"
)

var (
	// mass inputs
	massSource  string
	massVerbose bool
)

var massCmd = &cobra.Command{
	Use:   "mass <model.ocm>",
	Short: "Assemble the lumped mass matrix of a model",
	Long: `Read a frame model file, assemble the global lumped mass matrix M from a
named mass source, and report the total translational mass per direction.

Examples:
  # Use the model's default mass source
  opencivil mass frame.ocm

  # Use a specific source
  opencivil mass frame.ocm --source Seismic`,
	Args: cobra.ExactArgs(1),
	Run:  runMass,
}

func init() {
	rootCmd.AddCommand(massCmd)
	massCmd.Flags().StringVarP(&massSource, "source", "s", "Default", "Mass source name")
	massCmd.Flags().BoolVarP(&massVerbose, "verbose", "v", false, "Echo diagnostics during assembly")
}

func runMass(cmd *cobra.Command, args []string) {

	// model
	m := inp.ReadModel(args[0])

	// assemble
	asm := fem.NewMassAssembler(m)
	asm.Rep.Verbose = massVerbose
	M := asm.BuildMassMatrix(massSource)

	// total mass per translational direction
	mx, my, mz := fem.MassTotals(M, m.Ndofs)

	// report
	fmt.Println()
	fmt.Println("MASS RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Model:\t%s\n", m.Data.Desc)
	fmt.Fprintf(w, "  Mass source:\t%s\n", massSource)
	fmt.Fprintf(w, "  Equations:\t%d\n", m.Ndofs)
	fmt.Fprintf(w, "  Total mass (X, Y, Z):\t(%g, %g, %g)\n", mx, my, mz)
	w.Flush()
	printReport(asm.Rep)
}
