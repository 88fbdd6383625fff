// Package sitefile reads the delimited site description consumed by the
// bulk importer: a header row plus one row per site to provision.
package sitefile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one site description from the input table.
type Row struct {
	Name          string
	Longname      string
	Tags          string
	StreetAddress string
	City          string
	Country       string
	Timezone      string
	ZoneName      string
	ZoneIP        string
	VLAN          string
	InternetIP    string
	InternetGW    string
	WANName       string
	WANIP         string
	WANGW         string
}

// requiredColumns is the fixed column set, in no particular order; extra
// columns in the input are ignored.
var requiredColumns = []string{
	"name", "longname", "tags", "street_address", "city", "country",
	"timezone", "zone_name", "zone_ip", "vlan", "internet_ip", "internet_gw",
	"wan_name", "wan_ip", "wan_gw",
}

// ReadFile reads and parses the site table at path.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("opening site file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

// Read parses a site table from r. The first record is the header; every
// required column must be present. Site names are trimmed of surrounding
// whitespace.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		field := func(col string) string {
			return record[index[col]]
		}
		rows = append(rows, Row{
			Name:          strings.TrimSpace(field("name")),
			Longname:      field("longname"),
			Tags:          field("tags"),
			StreetAddress: field("street_address"),
			City:          field("city"),
			Country:       field("country"),
			Timezone:      field("timezone"),
			ZoneName:      field("zone_name"),
			ZoneIP:        field("zone_ip"),
			VLAN:          field("vlan"),
			InternetIP:    field("internet_ip"),
			InternetGW:    field("internet_gw"),
			WANName:       field("wan_name"),
			WANIP:         field("wan_ip"),
			WANGW:         field("wan_gw"),
		})
	}
	return rows, nil
}
