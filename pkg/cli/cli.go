package cli

import (
	"io"
	"os"

	"github.com/khalid-nowaf/radix/pkg/radix"
)

// CLI is the kong command tree for the radix tool. Every command loads a
// tree from prefix files and runs one family of queries against it.
var CLI struct {
	Lookup  LookupCmd  `cmd:"" help:"Longest, shortest or exact prefix match for addresses"`
	Covered CoveredCmd `cmd:"" help:"Containment queries: prefixes covered by, covering or intersecting a CIDR"`
	Dump    DumpCmd    `cmd:"" help:"Enumerate every stored prefix as JSON or CSV"`
}

// Context carries the output stream so commands stay testable.
type Context struct {
	Out io.Writer
}

func (ctx *Context) out() io.Writer {
	if ctx.Out != nil {
		return ctx.Out
	}
	return os.Stdout
}

// loadOpts is shared by every command: the prefix files to build the
// tree from and the record field holding the CIDR.
type loadOpts struct {
	Files   []string `arg:"" type:"existingfile" help:"CSV or JSON files containing prefixes"`
	CidrKey string   `help:"Record field holding the CIDR" default:"cidr"`
}

func (o *loadOpts) tree() (*radix.Tree, error) {
	return loadTree(o.Files, o.CidrKey)
}
