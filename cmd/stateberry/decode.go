package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockberries/stateberry/key"
	"github.com/blockberries/stateberry/logging"
	"github.com/blockberries/stateberry/value"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode canonical state encodings",
	Long:  `Decode hex-encoded canonical bytes into their structural form.`,
}

var decodeKeyCmd = &cobra.Command{
	Use:   "key <hex>",
	Short: "Decode a state key",
	Long: `Decode a hex-encoded state key.

Example:
  stateberry decode key 02aaaa...aa06`,
	Args: cobra.ExactArgs(1),
	RunE: runDecodeKey,
}

var decodeValueCmd = &cobra.Command{
	Use:   "value <hex>",
	Short: "Decode a storable value",
	Long: `Decode a hex-encoded storable value.

Example:
  stateberry decode value 0007000000`,
	Args: cobra.ExactArgs(1),
	RunE: runDecodeValue,
}

var decodeRightsCmd = &cobra.Command{
	Use:   "rights <hex>",
	Short: "Decode an access-rights tag",
	Long: `Decode a hex-encoded access-rights tag byte.

Example:
  stateberry decode rights 06`,
	Args: cobra.ExactArgs(1),
	RunE: runDecodeRights,
}

func init() {
	decodeCmd.AddCommand(decodeKeyCmd)
	decodeCmd.AddCommand(decodeValueCmd)
	decodeCmd.AddCommand(decodeRightsCmd)
}

func decodeHexArg(arg string) ([]byte, error) {
	data, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

func runDecodeKey(cmd *cobra.Command, args []string) error {
	logger := newLogger().WithComponent("decode")

	data, err := decodeHexArg(args[0])
	if err != nil {
		return err
	}

	k, rest, err := key.ReadKey(data)
	if err != nil {
		return fmt.Errorf("decoding key: %w", err)
	}

	logger.Debug("decoded key", logging.KeyKind(k), logging.Remaining(len(rest)))
	fmt.Println(k)
	if len(rest) > 0 {
		fmt.Printf("remaining: %d bytes (%s)\n", len(rest), hex.EncodeToString(rest))
	}
	return nil
}

func runDecodeValue(cmd *cobra.Command, args []string) error {
	logger := newLogger().WithComponent("decode")

	data, err := decodeHexArg(args[0])
	if err != nil {
		return err
	}

	v, rest, err := value.ReadValue(data)
	if err != nil {
		return fmt.Errorf("decoding value: %w", err)
	}

	logger.Debug("decoded value", logging.ValueType(v), logging.Remaining(len(rest)))
	fmt.Printf("%s: %v\n", v.TypeName(), v)
	if len(rest) > 0 {
		fmt.Printf("remaining: %d bytes (%s)\n", len(rest), hex.EncodeToString(rest))
	}
	return nil
}

func runDecodeRights(cmd *cobra.Command, args []string) error {
	data, err := decodeHexArg(args[0])
	if err != nil {
		return err
	}

	r, rest, err := key.ReadAccessRights(data)
	if err != nil {
		return fmt.Errorf("decoding access rights: %w", err)
	}

	fmt.Println(r)
	if len(rest) > 0 {
		fmt.Printf("remaining: %d bytes (%s)\n", len(rest), hex.EncodeToString(rest))
	}
	return nil
}
