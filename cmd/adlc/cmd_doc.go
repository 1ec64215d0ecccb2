package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/doc"
	"github.com/adl-lang/adl/internal/parser"
	"github.com/adl-lang/adl/internal/printer"
	"github.com/adl-lang/adl/internal/project"
)

func newDocCmd() *cobra.Command {
	var file string
	var html bool

	cmd := &cobra.Command{
		Use:   "doc <name>",
		Short: "Show the declaration and doc comment for a model, enum, interface, or similar symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			var files []string
			if file != "" {
				files = []string{file}
			} else {
				proj, err := project.LoadFrom("")
				if err != nil {
					return errors.Wrap(err, "load project")
				}
				if proj == nil {
					return fmt.Errorf("no adl.config.yaml found; pass --file explicitly")
				}
				files = proj.EntryPaths()
			}

			for _, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "read %s", path)
				}
				result := parser.Parse(path, string(data))
				decl := findDeclaration(result.Script, name)
				if decl == nil {
					continue
				}

				if html {
					return printDocHTML(decl)
				}
				fmt.Print(printer.Print(decl))
				return nil
			}

			return fmt.Errorf("no declaration named %s found", name)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "search only this file instead of the project's entry files")
	cmd.Flags().BoolVar(&html, "html", false, "render the doc comment as HTML instead of plain text")

	return cmd
}

func printDocHTML(decl *cst.Node) error {
	docNode := decl.FirstChildOfKind(cst.KindDoc)
	if docNode == nil {
		return fmt.Errorf("%s has no doc comment", decl.Children[0].TokenLiteral())
	}
	rendered, err := doc.RenderHTML(docNode)
	if err != nil {
		return errors.Wrap(err, "render doc html")
	}
	fmt.Print(rendered)
	return nil
}

var declarationKinds = map[cst.Kind]bool{
	cst.KindModelStatement:               true,
	cst.KindScalarStatement:              true,
	cst.KindInterfaceStatement:           true,
	cst.KindUnionStatement:               true,
	cst.KindEnumStatement:                true,
	cst.KindAliasStatement:               true,
	cst.KindOperationStatement:           true,
	cst.KindFunctionDeclarationStatement: true,
}

// findDeclaration walks the whole tree (nested namespaces included) and
// returns the first declaration named name, matching on the first
// Identifier child of each declaration node.
func findDeclaration(root *cst.Node, name string) *cst.Node {
	var found *cst.Node
	var walk func(n *cst.Node) bool
	walk = func(n *cst.Node) bool {
		if found != nil {
			return false
		}
		if declarationKinds[n.Kind] && len(n.Children) > 0 {
			if id := n.Children[0]; id.Kind == cst.KindIdentifier && id.TokenLiteral() == name {
				found = n
				return false
			}
		}
		for _, c := range n.Children {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(root)
	return found
}
