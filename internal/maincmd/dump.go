package maincmd

import (
	"context"
	"fmt"
	"io"

	"github.com/mna/mainer"

	"github.com/algol68/scopechecker/lang/scope"
	"github.com/algol68/scopechecker/lang/tree"
)

func (c *Cmd) Dump(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return DumpFiles(ctx, stdio, args...)
}

// DumpFiles loads each fixture file, runs the scope checker over it so its
// scope decorations get written, and prints the resulting tree.
func DumpFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	var failed bool
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		root, err := loadFixture(name)
		if err != nil {
			fmt.Fprintf(stdio.Stderr, "%s: %s\n", name, err)
			failed = true
			continue
		}

		scope.CheckProgram(root)
		fmt.Fprintf(stdio.Stdout, "%s:\n", name)
		printNode(stdio.Stdout, root, 0)
	}

	if failed {
		return fmt.Errorf("dump: one or more fixtures failed to load")
	}
	return nil
}

func printNode(w io.Writer, n *tree.Node, depth int) {
	if n == nil {
		return
	}
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintf(w, "%s", n.Kind)
	if n.Tax != nil {
		fmt.Fprintf(w, " %q scope=%d", n.Tax.Name, n.Tax.Scope)
		if n.Tax.ScopeAssigned {
			fmt.Fprint(w, " (assigned)")
		}
	}
	if n.Lit != "" {
		fmt.Fprintf(w, " %q", n.Lit)
	}
	fmt.Fprintln(w)

	for child := n.Sub; child != nil; child = child.Next {
		printNode(w, child, depth+1)
	}
}
