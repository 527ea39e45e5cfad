package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockberries/stateberry/key"
)

var rightsCmd = &cobra.Command{
	Use:   "rights",
	Short: "Evaluate the access-rights lattice",
	Long:  `Compare and merge access-rights values by name.`,
}

var rightsMergeCmd = &cobra.Command{
	Use:   "merge <a> <b>",
	Short: "Widen two access-rights values",
	Long: `Merge two access-rights values into the capability set carrying
every right either operand grants.

Example:
  stateberry rights merge Read Add`,
	Args: cobra.ExactArgs(2),
	RunE: runRightsMerge,
}

var rightsCompareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two access-rights values",
	Long: `Place two access-rights values in the capability partial order.
Prints one of: less, equal, greater, incomparable.

Example:
  stateberry rights compare Read ReadWrite`,
	Args: cobra.ExactArgs(2),
	RunE: runRightsCompare,
}

func init() {
	rightsCmd.AddCommand(rightsMergeCmd)
	rightsCmd.AddCommand(rightsCompareCmd)
}

func parseRightsArgs(args []string) (key.AccessRights, key.AccessRights, error) {
	a, err := key.ParseAccessRights(args[0])
	if err != nil {
		return key.Eqv, key.Eqv, err
	}
	b, err := key.ParseAccessRights(args[1])
	if err != nil {
		return key.Eqv, key.Eqv, err
	}
	return a, b, nil
}

func runRightsMerge(cmd *cobra.Command, args []string) error {
	a, b, err := parseRightsArgs(args)
	if err != nil {
		return err
	}
	fmt.Println(a.Merge(b))
	return nil
}

func runRightsCompare(cmd *cobra.Command, args []string) error {
	a, b, err := parseRightsArgs(args)
	if err != nil {
		return err
	}
	fmt.Println(a.Compare(b))
	return nil
}
