package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codecheck/core/config"
	"codecheck/core/logger"
	"codecheck/feature/checker"
	"codecheck/feature/checker/checks"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	manifestFlag string
	rootFlag     string
	watchFlag    bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the scaffolded command files",
	Long: `Checks that the expected files exist and that source files pass the
brace, parenthesis and package-declaration checks, then verifies the
entry-point wiring. Findings are reported but never change the exit code;
only an unreadable file aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		fsys := afero.NewOsFs()

		manifest := checks.Default()
		if manifestFlag != "" {
			manifest, err = checks.LoadManifest(fsys, manifestFlag)
			if err != nil {
				return err
			}
		}
		if rootFlag != "" {
			manifest.Root = rootFlag
		}

		svc := checker.NewService(fsys, manifest, logg)
		printer := checker.NewPrinter(os.Stdout)

		report, err := svc.Run(cmd.Context())
		if err != nil {
			return err
		}
		printer.Print(report)

		if !watchFlag {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return svc.Watch(ctx, 0, func(report checks.Report, err error) {
			if err != nil {
				logg.Error("Validation run failed", zap.Error(err))
				return
			}
			printer.Print(report)
		})
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&manifestFlag, "manifest", "", "YAML manifest overriding the built-in expected files")
	checkCmd.Flags().StringVar(&rootFlag, "root", "", "Directory to resolve expected paths against (default \".\")")
	checkCmd.Flags().BoolVar(&watchFlag, "watch", false, "Re-run validation on file changes")
}
