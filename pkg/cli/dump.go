package cli

import (
	"encoding/csv"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/khalid-nowaf/radix/pkg/radix"
)

// DumpCmd enumerates the whole tree, v4 prefixes then v6 in trie
// pre-order, to JSON or CSV.
type DumpCmd struct {
	loadOpts
	Format string `help:"Output format" enum:"json,csv" default:"json"`
}

func (cmd *DumpCmd) Run(ctx *Context) error {
	tree, err := cmd.tree()
	if err != nil {
		return err
	}
	nodes := tree.Nodes()
	log.Infof("dumping %d prefixes as %s", len(nodes), cmd.Format)
	if cmd.Format == "csv" {
		return dumpCSV(ctx, nodes, cmd.CidrKey)
	}
	return dumpJSON(ctx, nodes, cmd.CidrKey)
}

func dumpJSON(ctx *Context, nodes []*radix.Node, cidrKey string) error {
	out := make([]map[string]any, 0, len(nodes))
	for _, node := range nodes {
		record := make(map[string]any, len(node.Data())+1)
		for k, v := range node.Data() {
			record[k] = v
		}
		record[cidrKey] = node.String()
		out = append(out, record)
	}
	encoder := json.NewEncoder(ctx.out())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func dumpCSV(ctx *Context, nodes []*radix.Node, cidrKey string) error {
	writer := csv.NewWriter(ctx.out())

	// union of payload keys, sorted for a stable header
	headerSet := map[string]bool{cidrKey: true}
	for _, node := range nodes {
		for k := range node.Data() {
			headerSet[k] = true
		}
	}
	headers := make([]string, 0, len(headerSet))
	for k := range headerSet {
		headers = append(headers, k)
	}
	sort.Strings(headers)
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, node := range nodes {
		record := make([]string, len(headers))
		for i, header := range headers {
			if header == cidrKey {
				record[i] = node.String()
				continue
			}
			if v, ok := node.Data()[header]; ok {
				if s, ok := v.(string); ok {
					record[i] = s
				}
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
