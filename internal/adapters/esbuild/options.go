package esbuild

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/tsrun/internal/core/domain"
)

// tsconfigPassthrough are options esbuild reads from a raw tsconfig to decide how to lower
// TypeScript-specific syntax.
var tsconfigPassthrough = []string{
	"experimentalDecorators",
	"emitDecoratorMetadata",
	"importsNotUsedAsValues",
	"jsx",
	"jsxFactory",
	"jsxFragmentFactory",
	"jsxImportSource",
	"preserveValueImports",
	"target",
	"useDefineForClassFields",
	"verbatimModuleSyntax",
}

var targets = map[string]api.Target{
	"es3":    api.ES2015,
	"es5":    api.ES2015,
	"es6":    api.ES2015,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
}

func loaderFor(fileName string) api.Loader {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".tsx":
		return api.LoaderTSX
	case ".jsx":
		return api.LoaderJSX
	case ".js", ".mjs", ".cjs":
		return api.LoaderJS
	default:
		return api.LoaderTS
	}
}

func targetFor(s domain.CompilerSettings) api.Target {
	if t, ok := targets[s.Target()]; ok {
		return t
	}
	return api.ESNext
}

// formatFor maps the module setting. Node-style module modes follow the file extension;
// module systems esbuild cannot produce fall back to CommonJS.
func formatFor(fileName string, s domain.CompilerSettings) api.Format {
	switch s.Module() {
	case "es6", "es2015", "es2020", "es2022", "esnext", "preserve":
		return api.FormatESModule
	case "node16", "node18", "nodenext":
		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".mts", ".mjs":
			return api.FormatESModule
		}
		return api.FormatCommonJS
	default:
		return api.FormatCommonJS
	}
}

// outputPath mirrors the compiler's output location: next to the source, or under outDir
// relative to rootDir.
func outputPath(fileName, projectDir string, s domain.CompilerSettings) string {
	out := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + domain.OutputExtension(fileName, s)

	outDir := s.String("outDir")
	if outDir == "" {
		return out
	}
	rootDir := s.String("rootDir")
	if rootDir == "" {
		rootDir = projectDir
	}
	rel, err := filepath.Rel(rootDir, out)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(out)
	}
	return filepath.Join(outDir, rel)
}

// transformOptions builds the esbuild options for one file. outputFile locates the source map
// relative to the source.
func transformOptions(fileName, outputFile string, s domain.CompilerSettings) api.TransformOptions {
	sourcefile := filepath.Base(fileName)
	if rel, err := filepath.Rel(filepath.Dir(outputFile), fileName); err == nil {
		sourcefile = filepath.ToSlash(rel)
	}

	opts := api.TransformOptions{
		Loader:      loaderFor(fileName),
		Format:      formatFor(fileName, s),
		Target:      targetFor(s),
		Sourcefile:  sourcefile,
		Charset:     api.CharsetUTF8,
		LogLevel:    api.LogLevelSilent,
		TsconfigRaw: tsconfigRaw(s),
	}

	switch s.SourceMapMode() {
	case domain.SourceMapInline:
		opts.Sourcemap = api.SourceMapInline
	case domain.SourceMapSeparate:
		opts.Sourcemap = api.SourceMapExternal
	default:
		opts.Sourcemap = api.SourceMapNone
	}
	opts.SourcesContent = api.SourcesContentExclude
	if s.Bool("inlineSources") {
		opts.SourcesContent = api.SourcesContentInclude
	}
	opts.SourceRoot = s.String("sourceRoot")

	switch s.JSX() {
	case "preserve", "react-native":
		opts.JSX = api.JSXPreserve
	case "react-jsx":
		opts.JSX = api.JSXAutomatic
	case "react-jsxdev":
		opts.JSX = api.JSXAutomatic
		opts.JSXDev = true
	default:
		opts.JSX = api.JSXTransform
	}
	opts.JSXFactory = s.String("jsxFactory")
	opts.JSXFragment = s.String("jsxFragmentFactory")
	opts.JSXImportSource = s.String("jsxImportSource")

	if opts.Format == api.FormatCommonJS && (s.Bool("alwaysStrict") || s.Bool("strict")) {
		opts.Banner = `"use strict";`
	}

	return opts
}

func tsconfigRaw(s domain.CompilerSettings) string {
	compilerOptions := make(map[string]any)
	for _, name := range tsconfigPassthrough {
		if v, ok := s.Get(name); ok {
			compilerOptions[name] = v
		}
	}
	if len(compilerOptions) == 0 {
		return ""
	}
	raw, err := json.Marshal(map[string]any{"compilerOptions": compilerOptions})
	if err != nil {
		return ""
	}
	return string(raw)
}
