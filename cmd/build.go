package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/refnav/internal/progress"
	"github.com/ziadkadry99/refnav/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static reference site",
	Long:  `Writes one page per visible reference entry of every configured library version, plus stylesheet, script and search index.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Bool("serve", false, "preview the generated site over HTTP")
	buildCmd.Flags().Int("port", 8080, "port for the preview server")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	st, err := loadStack()
	if err != nil {
		return err
	}
	defer st.log.Sync()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = st.cfg.OutputDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := &site.Generator{
		Catalog:     st.catalog,
		Pages:       st.pages,
		OutputDir:   outputDir,
		Theme:       st.cfg.Theme,
		Concurrency: st.cfg.Concurrency,
		Reporter:    progress.NewReporter(),
		Log:         st.log,
	}
	count, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, count)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")
		fmt.Printf("Serving %s at http://localhost:%d (Ctrl+C to stop)\n", outputDir, port)
		return site.Preview(ctx, outputDir, port, open, st.log)
	}
	return nil
}
