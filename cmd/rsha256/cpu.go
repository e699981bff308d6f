package main

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/zeebo/rsha256"
)

func (a *app) cpuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show the cpu and the compiled-in backend",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cpu:         %s (%v)\n", cpuid.CPU.BrandName, cpuid.CPU.VendorID)
			fmt.Fprintf(w, "cores:       %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
			fmt.Fprintf(w, "features:    %s\n", strings.Join(cpuid.CPU.FeatureSet(), " "))
			fmt.Fprintf(w, "backend:     %s\n", rsha256.Backend())
			fmt.Fprintf(w, "accelerated: %v\n", rsha256.Accelerated())
		},
	}
}
