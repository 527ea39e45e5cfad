package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockberries/stateberry/key"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode state keys into canonical bytes",
	Long:  `Build a state key from its parts and print the canonical hex encoding.`,
}

var encodeAccountCmd = &cobra.Command{
	Use:   "account <20-byte-hex-id>",
	Short: "Encode an account key",
	Long: `Encode an account key from its 20-byte hex identifier.

Example:
  stateberry encode account 1111111111111111111111111111111111111111`,
	Args: cobra.ExactArgs(1),
	RunE: runEncodeAccount,
}

var encodeHashCmd = &cobra.Command{
	Use:   "hash <32-byte-hex-id>",
	Short: "Encode a hash key",
	Long: `Encode a content-addressed hash key from its 32-byte hex identifier.

Example:
  stateberry encode hash 2222...22`,
	Args: cobra.ExactArgs(1),
	RunE: runEncodeHash,
}

var encodeCapRefCmd = &cobra.Command{
	Use:   "capref <32-byte-hex-id> <rights>",
	Short: "Encode a capability-reference key",
	Long: `Encode a capability-reference key from its 32-byte hex identifier
and an access-rights name (Eqv, Read, Add, Write, ReadAdd, ReadWrite,
AddWrite).

Example:
  stateberry encode capref aaaa...aa ReadWrite`,
	Args: cobra.ExactArgs(2),
	RunE: runEncodeCapRef,
}

func init() {
	encodeCmd.AddCommand(encodeAccountCmd)
	encodeCmd.AddCommand(encodeHashCmd)
	encodeCmd.AddCommand(encodeCapRefCmd)
}

func parseID32(arg string) ([key.IDSize]byte, error) {
	var id [key.IDSize]byte
	b, err := decodeHexArg(arg)
	if err != nil {
		return id, err
	}
	if len(b) != key.IDSize {
		return id, fmt.Errorf("identifier is %d bytes, want %d", len(b), key.IDSize)
	}
	copy(id[:], b)
	return id, nil
}

func printKey(k key.Key) error {
	b, err := k.ToBytes()
	if err != nil {
		return fmt.Errorf("encoding key: %w", err)
	}
	fmt.Println(hex.EncodeToString(b))
	return nil
}

func runEncodeAccount(cmd *cobra.Command, args []string) error {
	b, err := decodeHexArg(args[0])
	if err != nil {
		return err
	}
	if len(b) != key.AccountIDSize {
		return fmt.Errorf("account id is %d bytes, want %d", len(b), key.AccountIDSize)
	}
	var id [key.AccountIDSize]byte
	copy(id[:], b)
	return printKey(key.NewAccount(id))
}

func runEncodeHash(cmd *cobra.Command, args []string) error {
	id, err := parseID32(args[0])
	if err != nil {
		return err
	}
	return printKey(key.NewHash(id))
}

func runEncodeCapRef(cmd *cobra.Command, args []string) error {
	id, err := parseID32(args[0])
	if err != nil {
		return err
	}
	rights, err := key.ParseAccessRights(args[1])
	if err != nil {
		return err
	}
	return printKey(key.NewCapRef(id, rights))
}
