package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cigen/internal/cigen/ios"
	"cigen/pkg/logger"
	"cigen/pkg/tree"
)

func NewGenerateCmd() *cobra.Command {
	var outputPath string
	var wrap bool

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the iOS build-job configuration",
		Long: `Render the compiled-in job catalog as a YAML sequence of job records,
one record per catalog entry, in catalog order.

With --wrap the sequence is nested under a top-level "jobs" key so the
output can be included in a workflow document as-is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, outputPath, wrap)
		},
	}

	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Write the generated YAML to a file instead of stdout")
	generateCmd.Flags().BoolVar(&wrap, "wrap", false,
		"Nest the job sequence under a top-level jobs key")

	return generateCmd
}

func runGenerate(cmd *cobra.Command, outputPath string, wrap bool) error {
	jobs, err := ios.GetWorkflowJobs()
	if err != nil {
		return fmt.Errorf("failed to generate workflow jobs: %w", err)
	}

	var doc interface{} = jobs
	if wrap {
		root := tree.New()
		root.Set("jobs", jobs)
		doc = root
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode workflow jobs: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		logger.Info("generated workflow configuration", "jobs", len(jobs), "output", outputPath)
		return nil
	}

	logger.Debug("generated workflow configuration", "jobs", len(jobs))
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
