package commands

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sportsterminal/internal/formula"
	"sportsterminal/internal/logging"
)

const defaultManifest = "packaging/sportsterminal.yml"

func formulaCmd() *cobra.Command {
	var manifest string
	cmd := &cobra.Command{
		Use:   "formula",
		Short: "Work with the packaging recipe",
		// Replaces the root hook: the recipe tools never read the app's home
		// or config, so a broken config.toml cannot stop them.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl := zerolog.InfoLevel
			if logLevel != "" {
				var err error
				if lvl, err = logging.ParseLevel(logLevel); err != nil {
					return err
				}
			}
			log := logging.NewWriter(cmd.ErrOrStderr(), lvl, false)
			cmd.SetContext(log.WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&manifest, "manifest", defaultManifest, "path of the formula manifest")

	load := func() (*formula.Formula, error) {
		f, err := formula.Load(manifest)
		if err != nil {
			return nil, err
		}
		return f, f.Validate()
	}
	fetcher := func(cmd *cobra.Command) *formula.Fetcher {
		// Downloads are bounded by the command context, not a client timeout.
		return &formula.Fetcher{HTTP: &http.Client{}, Progress: cmd.ErrOrStderr()}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "check",
			Short: "Validate the manifest; an unset checksum is an error",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := load()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n  url: %s\n", f.Name, f.Version, f.URL)
				if f.ChecksumUnset() {
					return eris.Wrapf(formula.ErrChecksumUnset, "%s (run \"sportsterminal formula checksum --update\")", manifest)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  sha256: %s\n", f.SHA256)
				return nil
			},
		},
		formulaFetchCmd(load, fetcher),
		formulaChecksumCmd(&manifest, load, fetcher),
		formulaInstallCmd(load, fetcher),
		formulaSmokeCmd(load),
		formulaRenderCmd(load),
	)
	return cmd
}

type (
	loadFunc    func() (*formula.Formula, error)
	fetcherFunc func(*cobra.Command) *formula.Fetcher
)

func formulaFetchCmd(load loadFunc, fetcher fetcherFunc) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the source archive and verify its checksum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load()
			if err != nil {
				return err
			}
			dest := filepath.Join(outDir, f.ArchiveName())
			if err := fetcher(cmd).Fetch(cmd.Context(), f, dest); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s verified\n", dest)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to store the archive in")
	return cmd
}

func formulaChecksumCmd(manifest *string, load loadFunc, fetcher fetcherFunc) *cobra.Command {
	var update bool
	cmd := &cobra.Command{
		Use:   "checksum",
		Short: "Compute the archive checksum, optionally writing it to the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if update {
				digest, changed, err := formula.UpdateChecksum(cmd.Context(), *manifest, fetcher(cmd))
				if err != nil {
					return err
				}
				if changed {
					fmt.Fprintf(out, "updated %s: sha256 %s\n", *manifest, digest)
				} else {
					fmt.Fprintf(out, "%s is up to date: sha256 %s\n", *manifest, digest)
				}
				return nil
			}

			f, err := load()
			if err != nil {
				return err
			}
			digest, err := fetcher(cmd).Digest(cmd.Context(), f.URL)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, digest)
			switch {
			case f.ChecksumUnset():
				return eris.Wrapf(formula.ErrChecksumUnset, "%s (use --update to write it)", *manifest)
			case f.SHA256 != digest:
				return eris.Wrapf(formula.ErrChecksumMismatch, "manifest has %s", f.SHA256)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&update, "update", "u", false, "write the computed checksum to the manifest")
	return cmd
}

func formulaInstallCmd(load loadFunc, fetcher fetcherFunc) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Fetch, build and smoke test the formula into a prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load()
			if err != nil {
				return err
			}
			in := &formula.Installer{Fetcher: fetcher(cmd), Builder: formula.GoBuilder{}}
			bin, err := in.Install(cmd.Context(), f, prefix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "installed %s\n", bin)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "install prefix; the binary goes to <prefix>/bin")
	_ = cmd.MarkFlagRequired("prefix")
	return cmd
}

func formulaSmokeCmd(load loadFunc) *cobra.Command {
	var prefix, binary string
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run the smoke test against an installed binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load()
			if err != nil {
				return err
			}
			bin := binary
			if bin == "" {
				if prefix == "" {
					return eris.New("either --binary or --prefix is required")
				}
				bin = filepath.Join(prefix, "bin", f.Binary)
			}
			if _, err := os.Stat(bin); err != nil {
				return eris.Wrapf(err, "smoke test %s", bin)
			}
			if err := formula.Smoke(cmd.Context(), bin, f.Test); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "smoke test passed: %s exited %d with %q\n", bin, f.Test.ExpectExit, f.Test.ExpectOutput)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "install prefix of the binary")
	cmd.Flags().StringVar(&binary, "binary", "", "path of the binary (overrides --prefix)")
	return cmd
}

func formulaRenderCmd(load loadFunc) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the Homebrew Ruby formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := load()
			if err != nil {
				return err
			}
			if outPath == "" {
				return formula.Render(cmd.OutOrStdout(), f)
			}
			file, err := os.Create(outPath)
			if err != nil {
				return eris.Wrapf(err, "create %s", outPath)
			}
			if err := formula.Render(file, f); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return eris.Wrapf(err, "write %s", outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to a file instead of stdout")
	return cmd
}
