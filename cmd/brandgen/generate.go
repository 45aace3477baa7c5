package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/brandgen/internal/domain"
)

// requestOptions are the flags of generate and refresh.
type requestOptions struct {
	industry    string
	keywords    string
	style       string
	logoStyle   string
	colorScheme string
	outDir      string
	asJSON      bool
}

func (o *requestOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.industry, "industry", envString("INDUSTRY", "tech"), "Industry [$BRANDGEN_INDUSTRY]")
	flags.StringVar(&o.keywords, "keywords", envString("KEYWORDS", ""), "Comma-separated keywords [$BRANDGEN_KEYWORDS]")
	flags.StringVar(&o.style, "style", envString("STYLE", "modern"), "Naming style [$BRANDGEN_STYLE]")
	flags.StringVar(&o.logoStyle, "logo-style", envString("LOGO_STYLE", "minimal"), "Logo style [$BRANDGEN_LOGO_STYLE]")
	flags.StringVar(&o.colorScheme, "color-scheme", envString("COLOR_SCHEME", "blues"), "Color scheme [$BRANDGEN_COLOR_SCHEME]")
	flags.StringVarP(&o.outDir, "out", "o", envString("OUT", ""), "Directory to write the SVG logos to [$BRANDGEN_OUT]")
	flags.BoolVar(&o.asJSON, "json", false, "Print results as JSON, logos included")
}

func (o *requestOptions) request() domain.GenerationRequest {
	return domain.GenerationRequest{
		Industry:    domain.Industry(o.industry),
		Keywords:    o.keywords,
		Style:       domain.NamingStyle(o.style),
		LogoStyle:   domain.LogoStyle(o.logoStyle),
		ColorScheme: domain.ColorScheme(o.colorScheme),
	}
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &requestOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate three names with taglines and logos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(cmd, global)
			if err != nil {
				return err
			}

			results, err := svc.Generate(cmd.Context(), opts.request())
			if err != nil {
				return err
			}

			return emit(cmd.Context(), cmd.OutOrStdout(), opts, results)
		},
	}
	opts.bind(cmd)

	return cmd
}

func newRefreshCmd(global *globalOptions) *cobra.Command {
	opts := &requestOptions{}

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Generate a single replacement name with tagline and logo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(cmd, global)
			if err != nil {
				return err
			}

			result, err := svc.Refresh(cmd.Context(), opts.request())
			if err != nil {
				return err
			}

			return emit(cmd.Context(), cmd.OutOrStdout(), opts, []domain.GeneratedResult{result})
		},
	}
	opts.bind(cmd)

	return cmd
}

// emit writes logos when --out is set, then prints the results.
func emit(ctx context.Context, w io.Writer, opts *requestOptions, results []domain.GeneratedResult) error {
	var paths []string
	if opts.outDir != "" {
		var err error
		if paths, err = writeLogos(ctx, opts.outDir, results); err != nil {
			return err
		}
	}

	if opts.asJSON {
		return writeJSON(w, newResultsView(results))
	}

	for i, r := range results {
		fmt.Fprintf(w, "%d. %s\n   %s\n   logo: %s", i+1, r.Name, r.Tagline, r.LogoVariant)
		if paths != nil {
			fmt.Fprintf(w, " -> %s", paths[i])
		}
		fmt.Fprintln(w)
	}

	return nil
}

// writeLogos writes one SVG file per result concurrently and returns the paths
// in result order. Files are prefixed with their position so duplicate names
// never collide.
func writeLogos(ctx context.Context, dir string, results []domain.GeneratedResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	paths := make([]string, len(results))
	g, gCtx := errgroup.WithContext(ctx)

	for i, r := range results {
		paths[i] = filepath.Join(dir, fmt.Sprintf("%d-%s.svg", i+1, slug(r.Name)))

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if err := os.WriteFile(paths[i], []byte(r.Logo), 0o644); err != nil {
				return fmt.Errorf("writing logo for %q: %w", r.Name, err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

// slug lower-cases name and replaces anything but letters and digits with '-'.
// A name with no letters or digits becomes "logo".
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}

	if strings.Trim(b.String(), "-") == "" {
		return "logo"
	}

	return b.String()
}
