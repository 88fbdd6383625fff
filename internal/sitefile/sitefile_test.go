package sitefile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "name,longname,tags,street_address,city,country,timezone," +
	"zone_name,zone_ip,vlan,internet_ip,internet_gw,wan_name,wan_ip,wan_gw\n"

func TestRead_ParsesRows(t *testing.T) {
	input := header +
		" BR-Oslo ,Oslo Branch,branch,Main St 1,Oslo,Norway,Europe/Oslo," +
		"LAN,10.1.0.0/24,100,198.51.100.2/28,198.51.100.1,MPLS,10.9.0.2/30,10.9.0.1\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "BR-Oslo", row.Name, "name must be trimmed")
	assert.Equal(t, "Oslo Branch", row.Longname)
	assert.Equal(t, "Europe/Oslo", row.Timezone)
	assert.Equal(t, "LAN", row.ZoneName)
	assert.Equal(t, "10.1.0.0/24", row.ZoneIP)
	assert.Equal(t, "100", row.VLAN)
	assert.Equal(t, "MPLS", row.WANName)
	assert.Equal(t, "10.9.0.1", row.WANGW)
}

func TestRead_HeaderOrderDoesNotMatter(t *testing.T) {
	input := "city,name,longname,tags,street_address,country,timezone," +
		"zone_name,zone_ip,vlan,internet_ip,internet_gw,wan_name,wan_ip,wan_gw\n" +
		"Oslo,BR-Oslo,Oslo Branch,,,Norway,Europe/Oslo,LAN,10.1.0.0/24,100,dhcp,,,,\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Oslo", rows[0].City)
	assert.Equal(t, "BR-Oslo", rows[0].Name)
	assert.Equal(t, "dhcp", rows[0].InternetIP)
}

func TestRead_MissingColumn(t *testing.T) {
	input := "name,longname\nBR-Oslo,Oslo Branch\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "tags"`)
}

func TestRead_EmptyTable(t *testing.T) {
	rows, err := Read(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead_ShortRecordReportsLine(t *testing.T) {
	input := header + "BR-Oslo,Oslo Branch\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile("testdata/does-not-exist.csv")
	require.Error(t, err)
}
