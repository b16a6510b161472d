package cli

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/khalid-nowaf/radix/pkg/radix"
)

// LookupCmd answers routing-table style lookups for one or more
// addresses or CIDRs.
type LookupCmd struct {
	loadOpts
	Addr  []string `help:"Addresses or CIDRs to look up" required:"" name:"addr"`
	Worst bool     `help:"Return the least specific match instead of the most specific"`
	Exact bool     `help:"Require an exact prefix match"`
}

func (cmd *LookupCmd) Run(ctx *Context) error {
	tree, err := cmd.tree()
	if err != nil {
		return err
	}
	for _, addr := range cmd.Addr {
		p, err := radix.ParsePrefix(addr)
		if err != nil {
			return errors.Wrapf(err, "looking up %s", addr)
		}
		var node *radix.Node
		switch {
		case cmd.Exact:
			node = tree.SearchExact(p)
		case cmd.Worst:
			node = tree.SearchWorst(p)
		default:
			node = tree.SearchBest(p)
		}
		if node == nil {
			fmt.Fprintf(ctx.out(), "%s: no match\n", addr)
			continue
		}
		fmt.Fprintf(ctx.out(), "%s: %s\n", addr, node)
	}
	return nil
}
