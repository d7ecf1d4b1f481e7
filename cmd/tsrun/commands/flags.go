package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tsrun/internal/app"
)

// addRequestFlags registers the compile flags shared by every compiling command.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("project", "P", "", "Configuration file name to search for (default tsconfig.json)")
	cmd.Flags().Bool("skip-project", false, "Do not look for a project configuration")
	cmd.Flags().BoolP("transpile-only", "T", false, "Skip type checking")
	cmd.Flags().StringP("compiler-options", "O", "", "JSON object of compiler option overrides")
	cmd.Flags().IntSlice("ignore-diagnostics", nil, "Diagnostic codes to ignore")
	cmd.Flags().Bool("no-cache", false, "Bypass the output cache")
	cmd.Flags().String("cache-dir", "", "Output cache directory")
	cmd.Flags().Bool("warn", false, "Report diagnostics without failing")
	cmd.Flags().Bool("pretty", true, "Show diagnostics with source context and colors")
}

func requestOptions(cmd *cobra.Command) app.RequestOptions {
	project, _ := cmd.Flags().GetString("project")
	skipProject, _ := cmd.Flags().GetBool("skip-project")
	transpileOnly, _ := cmd.Flags().GetBool("transpile-only")
	compilerOptions, _ := cmd.Flags().GetString("compiler-options")
	ignore, _ := cmd.Flags().GetIntSlice("ignore-diagnostics")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	warn, _ := cmd.Flags().GetBool("warn")
	pretty, _ := cmd.Flags().GetBool("pretty")

	return app.RequestOptions{
		Project:           project,
		SkipProject:       skipProject,
		TranspileOnly:     transpileOnly,
		CompilerOptions:   compilerOptions,
		IgnoreDiagnostics: ignore,
		NoCache:           noCache,
		CacheDir:          cacheDir,
		Warn:              warn,
		Pretty:            pretty,
	}
}

func addBuildFlags(cmd *cobra.Command) {
	addRequestFlags(cmd)
	cmd.Flags().StringP("module", "m", "", "Module format of the output, e.g. commonjs or esnext")
	cmd.Flags().StringP("target", "t", "", "Language level of the output, e.g. es2020")
	cmd.Flags().IntP("jobs", "j", 0, "Parallel compiles (default number of CPUs)")
}

func buildOptions(cmd *cobra.Command) app.BuildOptions {
	module, _ := cmd.Flags().GetString("module")
	target, _ := cmd.Flags().GetString("target")
	jobs, _ := cmd.Flags().GetInt("jobs")

	return app.BuildOptions{
		RequestOptions: requestOptions(cmd),
		Module:         module,
		Target:         target,
		Jobs:           jobs,
	}
}
