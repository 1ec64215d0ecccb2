package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/adl-lang/adl/internal/project"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Show the detected project manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject()
		},
	}

	return cmd
}

func runProject() error {
	proj, err := project.LoadFrom("")
	if err != nil {
		return errors.Wrap(err, "load project")
	}
	if proj == nil {
		return fmt.Errorf("no adl.config.yaml found in this directory or any ancestor")
	}

	m := proj.Manifest
	fmt.Printf("Project:  %s\n", m.Name)
	fmt.Printf("Root:     %s\n", proj.RootDir)
	if m.Namespace != "" {
		fmt.Printf("Namespace: %s\n", m.Namespace)
	}

	fmt.Printf("\nEntry files:\n")
	for _, path := range proj.EntryPaths() {
		fmt.Printf("  %s\n", path)
	}

	if len(m.Emitters) > 0 {
		fmt.Printf("\nEmitters:\n")
		for _, e := range m.Emitters {
			fmt.Printf("  %s\n", e)
		}
	}

	fmt.Printf("\nOptions:\n")
	fmt.Printf("  warnings-as-errors: %v\n", m.Options.WarningsAsErrors)
	fmt.Printf("  no-emit:            %v\n", m.Options.NoEmit)

	return nil
}
