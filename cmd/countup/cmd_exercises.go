package main

import (
	"fmt"
	"unicode/utf8"

	"countup/internal/exercises"

	"github.com/spf13/cobra"
)

// shiftCmd replaces every character with the next code point
var shiftCmd = &cobra.Command{
	Use:   "shift TEXT",
	Short: "Shift every character to the next code point",
	Long: `Replaces every character with the one whose code point is one
higher. There is no wraparound: "z" becomes "{".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), exercises.ShiftCharacters(args[0]))
		return nil
	},
}

// sliceCmd keeps the ends of a string
var sliceCmd = &cobra.Command{
	Use:   "slice TEXT",
	Short: "Print the first three and last three characters",
	Long: `Joins the first three and the last three characters of TEXT.
Text shorter than three characters is printed unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), exercises.GenerateString(args[0]))
		return nil
	},
}

// freqCmd checks a character's frequency
var freqCmd = &cobra.Command{
	Use:   "freq TEXT CHAR",
	Short: "Report whether CHAR occurs between 2 and 4 times in TEXT",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if utf8.RuneCountInString(args[1]) != 1 {
			return fmt.Errorf("CHAR must be a single character, got %q", args[1])
		}
		ch, _ := utf8.DecodeRuneInString(args[1])
		fmt.Fprintln(cmd.OutOrStdout(), exercises.CountFreq(args[0], ch))
		return nil
	},
}
