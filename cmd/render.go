package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/refnav/internal/refnav"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the sidebar markup for one route",
	Long: `Renders the sidebar of a library for the given request path and writes
the HTML to stdout. The version comes from the first path segment after the
library; --active names the active entry by slug or id and defaults to the
slug in the path.`,
	Example: `  refnav render --library javascript --path /reference/javascript/v1/select --active select`,
	RunE:    runRender,
}

func init() {
	renderCmd.Flags().String("library", "", "library key (javascript, dart, python, ...)")
	renderCmd.Flags().String("path", "", "request path (defaults to the library root)")
	renderCmd.Flags().String("active", "", "active entry slug or id")
	renderCmd.Flags().String("theme", "", "light or dark (defaults to config theme)")
	renderCmd.MarkFlagRequired("library")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	st, err := loadStack()
	if err != nil {
		return err
	}
	defer st.log.Sync()

	key, _ := cmd.Flags().GetString("library")
	path, _ := cmd.Flags().GetString("path")
	active, _ := cmd.Flags().GetString("active")
	theme, _ := cmd.Flags().GetString("theme")
	if path == "" {
		path = "/reference/" + key
	}

	lib, err := st.catalog.Library(refnav.LibraryKey(key))
	if err != nil {
		return err
	}
	v, slug, err := lib.Locate(path)
	if err != nil {
		return err
	}

	if active == "" {
		active = slug
	}
	if e, ok := refnav.FindBySlug(lib.Sections, active); ok {
		slug = e.URLSlug()
		active = e.ID
	}

	return st.renderer.Render(cmd.OutOrStdout(), lib.Props(v, slug, st.cfg.BasePath), refnav.Route{
		Path:     lib.RootPath(v),
		BasePath: st.cfg.BasePath,
		ActiveID: active,
		Level:    v.Menu,
		Theme:    refnav.ParseTheme(theme, st.cfg.Theme),
	})
}
