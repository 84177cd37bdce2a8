package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	starterSchemaFlagName = "schema"
	starterSchemaName     = "functions.yaml"
)

const starterSchema = `required_env: [AUDIENCE]
functions:
  - name: Greet
    params: [name]
    prompt: 'Hello {{ .name }}, this message is for {{ env "AUDIENCE" }}.'
    tests:
      - name: world
        args:
          name: '"World"'
`

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var withSchema bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a default playground.yaml configuration file",
		Long: `Create a playground.yaml in dir (the current working directory by default)
populated with the current CLI defaults so it can be edited manually.

With --schema a starter functions.yaml project file is written next to it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := configFolderPath
			if len(args) == 1 {
				dir = args[0]
			}

			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}

			targetPath := filepath.Join(dir, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s\n", targetPath)

			if !withSchema {
				return nil
			}

			schemaPath := filepath.Join(dir, starterSchemaName)
			if err := writeNewFile(schemaPath, starterSchema); err != nil {
				return fmt.Errorf("failed to write starter schema: %w", err)
			}

			cmd.Printf("wrote %s\n", schemaPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&withSchema, starterSchemaFlagName, false, "also write a starter "+starterSchemaName)

	return cmd
}

// writeNewFile refuses to overwrite an existing file.
func writeNewFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644) // #nosec G302 - project files are meant to be shared
	if err != nil {
		return err
	}

	_, err = f.WriteString(content)

	return errors.Join(err, f.Close())
}

func init() {
	rootCmd.AddCommand(initCmd)
}
