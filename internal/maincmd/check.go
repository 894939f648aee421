package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/algol68/scopechecker/internal/fixture"
	"github.com/algol68/scopechecker/lang/scope"
	"github.com/algol68/scopechecker/lang/tree"
)

func (c *Cmd) Check(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CheckFiles(ctx, stdio, c.WarningsAsErrors, args...)
}

// CheckFiles loads each fixture file, runs the scope checker over the tree
// it describes, and prints every diagnostic to stdio.Stdout. It returns a
// non-nil error if any file failed to load, or if any tree produced an
// Error-severity diagnostic (or any diagnostic at all, when
// warningsAsErrors is set).
func CheckFiles(ctx context.Context, stdio mainer.Stdio, warningsAsErrors bool, files ...string) error {
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

		diags := scope.CheckProgram(root)
		for _, d := range diags {
			fmt.Fprintf(stdio.Stdout, "%s: %s\n", name, d)
			if d.Severity == scope.SeverityError || warningsAsErrors {
				failed = true
			}
		}
	}

	if failed {
		return fmt.Errorf("check: one or more fixtures failed scope checking")
	}
	return nil
}

func loadFixture(name string) (*tree.Node, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fixture.Load(f)
}
