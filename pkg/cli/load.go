package cli

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/khalid-nowaf/radix/pkg/radix"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is one row of an input file: the CIDR column plus arbitrary
// extra columns that become the node's payload.
type Record map[string]string

// loadTree reads every file into one tree. JSON files hold an array of
// objects; anything else is read as CSV with a header row. Extra record
// fields are copied into the node payload, so a prefix appearing twice
// merges its fields onto the same node.
func loadTree(files []string, cidrKey string) (*radix.Tree, error) {
	tree := radix.New()
	for _, file := range files {
		records, err := readRecords(file)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", file)
		}
		for _, record := range records {
			if err := insertRecord(tree, record, cidrKey); err != nil {
				return nil, errors.Wrapf(err, "inserting from %s", file)
			}
		}
		log.Infof("loaded %d records from %s", len(records), file)
	}
	log.Infof("tree holds %d prefixes", tree.Len())
	return tree, nil
}

func insertRecord(tree *radix.Tree, record Record, cidrKey string) error {
	cidr, ok := record[cidrKey]
	if !ok {
		return errors.Errorf("record has no %q field: %v", cidrKey, record)
	}
	p, err := radix.ParsePrefix(cidr)
	if err != nil {
		return err
	}
	node := tree.Insert(p)
	for k, v := range record {
		if k != cidrKey {
			node.Data()[k] = v
		}
	}
	return nil
}

func readRecords(file string) ([]Record, error) {
	if strings.EqualFold(filepath.Ext(file), ".json") {
		return readJSON(file)
	}
	return readCSV(file)
}

func readJSON(file string) ([]Record, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func readCSV(file string) ([]Record, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// first row is the header
	headers := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(Record, len(headers))
		for i, value := range row {
			record[headers[i]] = value
		}
		records = append(records, record)
	}
	return records, nil
}
