// Package commands wires the matstack CLI: inspecting matrix documents,
// multiplying their matrices and rendering sparsity spy plots.
package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	backendName string
	verbose     bool

	log = logrus.New()
)

func Execute() error {
	root := &cobra.Command{
		Use:           "matstack",
		Short:         "Compose, multiply and inspect matrices from documents",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(logrus.WarnLevel)
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&backendName, "backend", "", "document backend (default: by file extension)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(backendsCmd(), showCmd(), prodCmd(), spyCmd())

	return root.Execute()
}

// backendFor picks the backend name: explicit flag first, then the file
// extension (.xml, .yaml/.yml).
func backendFor(path string) (string, error) {
	if backendName != "" {
		return backendName, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return "xml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("cannot infer backend for %q; pass --backend", path)
	}
}
