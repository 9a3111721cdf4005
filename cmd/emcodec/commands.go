package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/emcodec/internal/compare"
	"github.com/muurk/emcodec/internal/password"
	"github.com/muurk/emcodec/internal/protocol"
	"github.com/muurk/emcodec/internal/ui"
)

var encodeOpts encodeOptions

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(passwordCmd)
	rootCmd.AddCommand(errorsCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(commandsCmd)
}

// show prints a datagram or result either boxed or as plain lines.
func show(title, subtitle string, fields []ui.Field) {
	if plain || !ui.IsTerminal() {
		fmt.Print(ui.RenderPlain(fields))
		return
	}
	fmt.Println(ui.NewHeader(title, subtitle, fields).Render())
}

// encodeCmd builds a request (or response) frame
var encodeCmd = &cobra.Command{
	Use:       "encode <kind>",
	Short:     "Encode a datagram to hex",
	ValidArgs: encodeKinds,
	Args:      cobra.ExactArgs(1),
	Long: `Build a datagram from flags and print its wire frame as hex.

Kinds: ` + strings.Join(encodeKinds, ", ") + `

For SET the --value flag is required; GET ignores it. A SET of system-time
without a value sends the current time.`,
	Example: `  # Read the station language
  emcodec encode language --action get

  # Limit charging current to 16 A on a 20 A station
  emcodec encode output-electricity --action set --value 16 --device-max 20

  # Reserve a charge for 22:00
  emcodec encode charge-start --line 1 --user emuser --charge-id 2406012200 \
      --at 2024-06-01T22:00:00+02:00 --max-amps 16`,
	RunE: runEncode,
}

func init() {
	f := encodeCmd.Flags()
	f.StringVar(&encodeOpts.Action, "action", "get", "Action (get, set)")
	f.StringVar(&encodeOpts.Value, "value", "", "Setting to write with --action set")
	f.BoolVar(&encodeOpts.Response, "response", false, "Encode the response datagram instead of the request")
	f.Uint8Var(&encodeOpts.DeviceMax, "device-max", 0, "Station maximum current for output-electricity (0 = skip check)")

	f.Uint8Var(&encodeOpts.Line, "line", 1, "charge-start: line id")
	f.StringVar(&encodeOpts.User, "user", "", "charge-start: user id")
	f.StringVar(&encodeOpts.ChargeID, "charge-id", "", "charge-start: charge id")
	f.StringVar(&encodeOpts.At, "at", "", "charge-start: reservation time, RFC 3339 (default: start now)")
	f.Uint8Var(&encodeOpts.StartType, "start-type", 1, "charge-start: start type")
	f.Uint8Var(&encodeOpts.ChargeType, "charge-type", 1, "charge-start: charge type")
	f.Uint16Var(&encodeOpts.MaxMinutes, "max-minutes", 0, "charge-start: max duration in minutes (0 = unlimited)")
	f.Float64Var(&encodeOpts.MaxEnergy, "max-energy", 0, "charge-start: max energy in kWh (0 = unlimited)")
	f.Uint8Var(&encodeOpts.MaxAmps, "max-amps", 0, "charge-start: max current in A (0 = station setting)")
	f.BoolVar(&encodeOpts.SinglePhase, "single-phase", false, "charge-start: charge on one phase")
}

func runEncode(cmd *cobra.Command, args []string) error {
	m, err := buildMessage(args[0], encodeOpts)
	if err != nil {
		return err
	}

	frame, err := codec.Encode(m)
	if err != nil {
		return fmt.Errorf("encode failed: %w", err)
	}

	if plain || !ui.IsTerminal() {
		fmt.Printf("%x\n", frame)
		return nil
	}
	fields := append(describe(m), ui.Field{Key: "Frame", Value: fmt.Sprintf("% x", frame)})
	fmt.Println(ui.NewHeader("Encoded frame", fmt.Sprintf("%d bytes", len(frame)), fields).Render())
	return nil
}

// decodeCmd parses a captured frame
var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a hex frame",
	Long: `Decode a frame (command code followed by payload) and print its fields.

Spaces, colons and dashes in the hex are ignored.`,
	Example: `  emcodec decode 010f0203
  emcodec decode "81 07 01 10"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	frame, err := parseHex(strings.Join(args, ""))
	if err != nil {
		return err
	}

	m, err := codec.DecodeFrame(frame)
	if err != nil {
		if !plain && ui.IsTerminal() {
			fmt.Println(ui.RenderFailure("Decode failed", err, decodeHints(err)))
		}
		return err
	}

	show("Decoded frame", fmt.Sprintf("%d bytes", len(frame)), describe(m))
	return nil
}

func decodeHints(err error) []string {
	switch {
	case errors.Is(err, protocol.ErrUnknownCommand):
		return []string{"Run 'emcodec commands' to list known command codes"}
	case errors.Is(err, protocol.ErrPayloadTooShort):
		return []string{"The frame must start with the 2-byte command code", "Check the capture was not truncated"}
	default:
		return nil
	}
}

// passwordCmd converts stored passwords
var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Obfuscate or reveal a stored station password",
}

var passwordEncodeCmd = &cobra.Command{
	Use:   "encode <password>",
	Short: "Obfuscate a password for storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(*password.Encode(&args[0]))
		return nil
	},
}

var passwordDecodeCmd = &cobra.Command{
	Use:   "decode [stored]",
	Short: "Reveal an obfuscated password (default: the one in the config file)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var pw *string
		var err error
		if len(args) == 1 {
			pw, err = password.Decode(&args[0])
		} else {
			pw, err = cfg.Password()
		}
		if err != nil {
			return err
		}
		if pw == nil {
			return fmt.Errorf("no station password configured")
		}
		fmt.Println(*pw)
		return nil
	},
}

var passwordSetCmd = &cobra.Command{
	Use:   "set <password>",
	Short: "Store a password in the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		before := *cfg
		cfg.SetPassword(args[0])
		if compare.Equal(before, *cfg) {
			fmt.Println("password unchanged")
			return nil
		}
		return cfg.Save(configPath)
	},
}

func init() {
	passwordCmd.AddCommand(passwordEncodeCmd)
	passwordCmd.AddCommand(passwordDecodeCmd)
	passwordCmd.AddCommand(passwordSetCmd)
}

// errorsCmd expands an error state word
var errorsCmd = &cobra.Command{
	Use:   "errors <state>",
	Short: "List the error bits set in a station error state",
	Long: `Split a 32-bit error state word into its error bits.

The state may be decimal, or hex with a 0x prefix.`,
	Example: `  emcodec errors 0x48`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return fmt.Errorf("invalid error state %q: %w", args[0], err)
		}

		errs := protocol.ParseErrorState(uint32(state))
		if len(errs) == 0 {
			fmt.Println("no errors")
			return nil
		}

		fields := make([]ui.Field, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, ui.Field{Key: fmt.Sprintf("bit %d", uint8(e)), Value: e.String()})
		}
		show("Error state", fmt.Sprintf("0x%08x", state), fields)
		return nil
	},
}

// timeCmd converts device timestamps
var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Convert between device timestamps and real time",
}

var timeToDeviceCmd = &cobra.Command{
	Use:   "to-device [RFC3339|now]",
	Short: "Convert a time to a device timestamp",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := time.Now()
		if len(args) == 1 && args[0] != "now" {
			var err error
			if t, err = time.Parse(time.RFC3339, args[0]); err != nil {
				return fmt.Errorf("invalid time %q (want RFC 3339): %w", args[0], err)
			}
		}

		ts, err := codec.Time.ToDevice(t)
		if err != nil {
			return err
		}
		fmt.Println(ts)
		return nil
	},
}

var timeFromDeviceCmd = &cobra.Command{
	Use:   "from-device <timestamp>",
	Short: "Convert a device timestamp to your local time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return fmt.Errorf("invalid device timestamp %q: %w", args[0], err)
		}
		fmt.Println(codec.Time.FromDevice(uint32(ts)).Format(time.RFC3339))
		return nil
	},
}

func init() {
	timeCmd.AddCommand(timeToDeviceCmd)
	timeCmd.AddCommand(timeFromDeviceCmd)
}

// commandsCmd lists the registered command codes
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List known command codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var fields []ui.Field
		for _, c := range protocol.Commands() {
			fields = append(fields, ui.Field{
				Key:   fmt.Sprintf("%5d 0x%04x", uint16(c), uint16(c)),
				Value: c.String(),
			})
		}
		show("Commands", "", fields)
	},
}
