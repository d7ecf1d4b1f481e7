package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/tsrun/internal/core/domain"
)

// enumOptions lists the accepted values of enum-like compiler options, lowercased.
var enumOptions = map[string][]string{
	"target": {
		"es3", "es5", "es6", "es2015", "es2016", "es2017", "es2018", "es2019", "es2020",
		"es2021", "es2022", "es2023", "es2024", "esnext",
	},
	"module": {
		"none", "commonjs", "amd", "umd", "system", "es6", "es2015", "es2020", "es2022",
		"esnext", "node16", "node18", "nodenext", "preserve",
	},
	"jsx":                    {"preserve", "react", "react-native", "react-jsx", "react-jsxdev"},
	"moduleResolution":       {"classic", "node", "node10", "node16", "nodenext", "bundler"},
	"newLine":                {"crlf", "lf"},
	"importsNotUsedAsValues": {"remove", "preserve", "error"},
}

var booleanOptions = []string{
	"allowJs", "allowSyntheticDefaultImports", "alwaysStrict", "checkJs", "declaration",
	"declarationMap", "downlevelIteration", "emitDecoratorMetadata", "esModuleInterop",
	"experimentalDecorators", "importHelpers", "incremental", "inlineSourceMap", "inlineSources",
	"isolatedModules", "noEmit", "noEmitOnError", "noImplicitAny", "noUnusedLocals",
	"noUnusedParameters", "preserveValueImports", "removeComments", "resolveJsonModule",
	"skipLibCheck", "sourceMap", "strict", "strictNullChecks", "useDefineForClassFields",
	"verbatimModuleSyntax",
}

var stringOptions = []string{
	"baseUrl", "declarationDir", "jsxFactory", "jsxFragmentFactory", "jsxImportSource", "mapRoot",
	"outDir", "rootDir", "sourceRoot", "tsBuildInfoFile",
}

// pathOptions are resolved against the directory of the configuration that sets them.
var pathOptions = []string{"baseUrl", "declarationDir", "outDir", "rootDir", "tsBuildInfoFile"}

// ValidateCompilerOptions checks option types and enum values.
// Unknown options pass through untouched.
func ValidateCompilerOptions(file string, options map[string]any) []domain.Diagnostic {
	var diags []domain.Diagnostic

	for _, name := range sortedKeys(options) {
		value := options[name]

		if allowed, ok := enumOptions[name]; ok {
			s, isString := value.(string)
			switch {
			case !isString:
				diags = append(diags, optionTypeDiagnostic(file, name, "string"))
			case !slices.Contains(allowed, strings.ToLower(s)):
				diags = append(diags, domain.Diagnostic{
					File:     file,
					Code:     domain.CodeOptionValue,
					Category: domain.CategoryError,
					Kind:     domain.KindConfig,
					Message: fmt.Sprintf("Argument for '--%s' option must be: %s.",
						name, quoteJoin(allowed)),
				})
			}
			continue
		}

		if slices.Contains(booleanOptions, name) {
			if _, ok := value.(bool); !ok {
				diags = append(diags, optionTypeDiagnostic(file, name, "boolean"))
			}
			continue
		}

		if slices.Contains(stringOptions, name) {
			if _, ok := value.(string); !ok {
				diags = append(diags, optionTypeDiagnostic(file, name, "string"))
			}
		}
	}

	return diags
}

func optionTypeDiagnostic(file, name, typ string) domain.Diagnostic {
	return domain.Diagnostic{
		File:     file,
		Code:     domain.CodeOptionType,
		Category: domain.CategoryError,
		Kind:     domain.KindConfig,
		Message:  fmt.Sprintf("Compiler option '%s' requires a value of type %s.", name, typ),
	}
}

func quoteJoin(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
