package cli

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/khalid-nowaf/radix/pkg/radix"
)

// CoveredCmd answers containment queries for one or more CIDRs.
type CoveredCmd struct {
	loadOpts
	Cidr      []string `help:"CIDRs to query" required:"" name:"cidr"`
	Covering  bool     `help:"List the less specific prefixes containing the CIDR instead"`
	Intersect bool     `help:"List both directions, the exact match excluded"`
}

func (cmd *CoveredCmd) Run(ctx *Context) error {
	tree, err := cmd.tree()
	if err != nil {
		return err
	}
	for _, cidr := range cmd.Cidr {
		p, err := radix.ParsePrefix(cidr)
		if err != nil {
			return errors.Wrapf(err, "querying %s", cidr)
		}
		var nodes []*radix.Node
		switch {
		case cmd.Intersect:
			nodes = tree.SearchIntersect(p)
		case cmd.Covering:
			nodes = tree.SearchCovering(p)
		default:
			nodes = tree.SearchCovered(p)
		}
		fmt.Fprintf(ctx.out(), "%s:\n", cidr)
		for _, node := range nodes {
			fmt.Fprintf(ctx.out(), "  %s\n", node)
		}
	}
	return nil
}
