package main

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/prompt"
	"github.com/StephanyArroyo/AlfabetizacionAsist/internal/simplify"
)

var textCmd = &cobra.Command{
	Use:   "texto <texto...>",
	Short: "Simplifica un texto a Lectura Fácil.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := simplify.New(buildGenerator(cfg), slog.Default())
		res, err := svc.SimplifyText(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Simplified)
		slog.Debug("done", "tokens", res.TokensUsed)
		return nil
	},
}

var termCmd = &cobra.Command{
	Use:   "termino <termino...>",
	Short: "Explica un término difícil con palabras sencillas.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := simplify.New(buildGenerator(cfg), slog.Default())
		res, err := svc.ExplainTerm(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Explanation)
		return nil
	},
}

var imageCmd = &cobra.Command{
	Use:   "imagen <archivo>",
	Short: "Extrae el texto de una imagen y lo simplifica.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uri, err := imageDataURI(args[0])
		if err != nil {
			return err
		}

		svc := simplify.New(buildGenerator(cfg), slog.Default())
		res, err := svc.SimplifyImage(cmd.Context(), uri)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		sections, ok := simplify.SplitImageResponse(res.Response)
		if !ok {
			fmt.Fprintln(out, sections.Simplified)
			return nil
		}
		fmt.Fprintf(out, "%s\n%s\n\n%s\n%s\n", prompt.ExtractedHeader, sections.Extracted, prompt.SimplifiedHeader, sections.Simplified)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(textCmd, termCmd, imageCmd)
}

// imageDataURI reads an image file and encodes it as a base64 data URI
// using the sniffed content type.
func imageDataURI(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("imagen: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("imagen: %s is %s, not an image", path, mtype.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("imagen: %w", err)
	}
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
