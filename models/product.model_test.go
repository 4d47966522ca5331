package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedIdentifiers(t *testing.T) {
	p := Product{ID: "prod-1001"}

	assert.Equal(t, "TECH-PROD-1001", p.SKU())
	assert.Equal(t, "VINPROD1001", p.SerialNumber())

	long := Product{ID: "prod-123456789012345678"}
	assert.Equal(t, "VINPROD1234567890123", long.SerialNumber())
}

func TestDisplayColor(t *testing.T) {
	assert.Equal(t, "Silver", Product{Color: "Silver", Specifications: Specifications{"color": Text("Gray")}}.DisplayColor())
	assert.Equal(t, "Gray", Product{Specifications: Specifications{"color": Text("Gray")}}.DisplayColor())
	assert.Equal(t, "Black", Product{}.DisplayColor())
}

func TestCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("bogus").Valid())
	assert.False(t, Category("Laptops").Valid())
	assert.Equal(t, "Smartwatches", CategorySmartwatches.Label())
	assert.Equal(t, "bogus", Category("bogus").Label())
}

func TestSpecificationsJSON(t *testing.T) {
	var specs Specifications
	require.NoError(t, json.Unmarshal([]byte(`{"ram":"16GB","features":["GPS","NFC"],"empty":[]}`), &specs))

	assert.Equal(t, Text("16GB"), specs["ram"])
	assert.Equal(t, []string{"GPS", "NFC"}, specs["features"].List)
	assert.True(t, specs["empty"].IsList())

	flat := specs.Flatten()
	assert.Equal(t, "GPS, NFC", flat["features"])
	assert.Equal(t, "16GB", flat["ram"])
	assert.Equal(t, "", flat["empty"])

	out, err := json.Marshal(specs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ram":"16GB","features":["GPS","NFC"],"empty":[]}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"ram":42}`), &specs))
}

func TestCloneDoesNotAlias(t *testing.T) {
	p := Product{ID: "prod-1", Specifications: Specifications{"features": List("a", "b")}}
	c := p.Clone()

	c.Specifications["features"].List[0] = "changed"
	c.Specifications["new"] = Text("x")

	assert.Equal(t, "a", p.Specifications["features"].List[0])
	assert.NotContains(t, p.Specifications, "new")
}
