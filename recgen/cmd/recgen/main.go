// recgen generates Go record type declarations from schema files.
//
// Usage:
//
//	recgen -schema schema.rsd [-out models_gen.go] [-pkg models] [-acronyms]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/CaliLuke/go-sqlrecord/recgen"
)

const version = "0.1.0"

func main() {
	schemaFile := flag.String("schema", "", "Path to schema file (required)")
	outFile := flag.String("out", "", "Output Go file (default: stdout)")
	pkg := flag.String("pkg", "models", "Package name for generated code")
	modulePath := flag.String("module-path", "", "Import path of the record package")
	acronyms := flag.Bool("acronyms", true, "Apply Go naming conventions for acronyms (ID, URL, etc.)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	versionStr := flag.String("schema-version", "", "Schema version string (included in generated header)")

	flag.Parse()

	if *showVersion {
		fmt.Printf("recgen %s\n", version)
		os.Exit(0)
	}

	if *schemaFile == "" {
		fmt.Fprintln(os.Stderr, "error: -schema flag is required")
		flag.Usage()
		os.Exit(1)
	}

	schema, err := recgen.ParseFile(*schemaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var w *os.File
	if *outFile != "" {
		w, err = os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating output: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = w.Close() }()
	} else {
		w = os.Stdout
	}

	cfg := recgen.DefaultConfig()
	cfg.PackageName = *pkg
	cfg.UseAcronyms = *acronyms
	cfg.SchemaVersion = *versionStr
	if *modulePath != "" {
		cfg.ModulePath = *modulePath
	}

	if err := recgen.Render(w, schema, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error rendering: %v\n", err)
		os.Exit(1)
	}
}
