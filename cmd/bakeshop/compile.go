package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bakeshop/internal/compiler"
	"bakeshop/internal/models"
	"bakeshop/internal/themepack"
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <pack-file>",
		Short: "Compile a theme pack to CSS",
		Long: `Parse a theme pack (block YAML or JSON), merge it over the built-in
theme, and print the compiled CSS. Use "-" to read the pack from stdin.

Without --mode the flat stylesheet with both :root and dark blocks is
printed.`,
		Args: cobra.ExactArgs(1),
		RunE: runCompile,
	}
	cmd.Flags().String("mode", "", `Print the single-mode variables for "light" or "dark"`)
	cmd.Flags().Bool("recipes", false, "Append the component recipe CSS")
	cmd.Flags().String("id", "preview", "Theme id the recipe selectors are scoped to")
	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	text, err := readPack(cmd, args[0])
	if err != nil {
		return err
	}

	pack, err := themepack.Parse(text)
	if err != nil {
		return err
	}

	theme := models.DefaultTheme()
	theme.ID, _ = cmd.Flags().GetString("id")
	pack.Apply(theme)
	compiler.Compile(theme)

	out := cmd.OutOrStdout()
	mode, _ := cmd.Flags().GetString("mode")
	switch mode {
	case "":
		fmt.Fprint(out, theme.CSSVariables)
	case string(models.ModeLight):
		fmt.Fprint(out, theme.LightModeVariables)
	case string(models.ModeDark):
		fmt.Fprint(out, theme.DarkModeVariables)
	default:
		return fmt.Errorf("unknown mode %q: want light or dark", mode)
	}

	if recipes, _ := cmd.Flags().GetBool("recipes"); recipes && theme.ComponentCSS != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.ComponentCSS)
	}
	return nil
}

func readPack(cmd *cobra.Command, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(cmd.InOrStdin())
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading pack: %w", err)
	}
	return string(b), nil
}
