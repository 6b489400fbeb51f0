// Copyright 2025 The OpenCivil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the opencivil command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "opencivil",
	Short: "3D frame assembly engine",
	Long: `opencivil - structural frame assembly engine

Assembles the global stiffness matrix, load vector and lumped mass matrix
of 3D frame models read from JSON (.ocm) model files.

Member features handled during assembly:
  - Timoshenko shear deformation and torsion
  - End releases by static condensation
  - Rigid end zones and insertion-point offsets
  - Distributed, projected and concentrated member loads

Use 'opencivil --help' to see available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
