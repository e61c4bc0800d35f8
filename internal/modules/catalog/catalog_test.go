package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sensei/internal/types"
)

func TestDefault_BuildsBuiltinTables(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.Len(t, c.Templates(), 50)
	assert.Equal(t, "battery_dead", c.Templates()[0].ID)
	assert.Len(t, c.Roads(), 8)
	assert.Equal(t, "mombasa_road", c.Roads()[0].Key)
	assert.Len(t, c.Zones(), 3)
	assert.Len(t, c.CarCategories(), 4)
	assert.Len(t, c.Services(), 13)
	assert.Equal(t, 20, c.Coverage().MobileMechanicMaxKm)

	assert.Same(t, c, Default(), "Default must return the same instance")
}

func TestDefault_EveryTemplatePricesAKnownService(t *testing.T) {
	c := Default()
	for _, tpl := range c.Templates() {
		_, ok := c.Service(tpl.PriceService)
		assert.True(t, ok, "template %s prices unknown service %s", tpl.ID, tpl.PriceService)
		_, ok = c.Profile(tpl.RecommendedService)
		assert.True(t, ok, "template %s recommends %s without profile", tpl.ID, tpl.RecommendedService)
	}
}

func TestKeywordIndex(t *testing.T) {
	c := Default()
	idx := c.KeywordIndex()

	positions := idx["won't start"]
	require.NotEmpty(t, positions)
	assert.Equal(t, "battery_dead", c.Template(positions[0]).ID)

	ids := make([]string, 0, len(positions))
	for _, p := range positions {
		ids = append(ids, c.Template(p).ID)
	}
	assert.Contains(t, ids, "car_wont_start_fuel")

	assert.Len(t, c.Keywords(), len(idx))
	for kw := range idx {
		assert.Equal(t, normalize(kw), kw, "index keys are lowercased")
	}
}

func TestService_Variants(t *testing.T) {
	c := Default()

	p, ok := c.Service(ServiceBatteryReplacement)
	require.True(t, ok)
	std, ok := p.(StandardPricing)
	require.True(t, ok)
	assert.Equal(t, types.NewRange(1000, 4000), std.Labor)

	p, _ = c.Service(ServiceMobileCallout)
	assert.Equal(t, KindFlatPlusDistance, p.Kind())
	p, _ = c.Service(ServicePickAndDrop)
	assert.Equal(t, KindRoundTrip, p.Kind())
	p, _ = c.Service(ServiceTowing)
	assert.Equal(t, KindFixedRange, p.Kind())
	p, _ = c.Service(ServiceTransmission)
	assert.Equal(t, KindDiagnosisRequired, p.Kind())

	_, ok = c.Service("spaceship_repair")
	assert.False(t, ok)
}

func TestBuild_CopiesSource(t *testing.T) {
	src := Builtin()
	c, err := Build(src)
	require.NoError(t, err)

	src.Templates[0].Keywords[0] = "mutated"
	src.Roads[0].Bands[0].Estates[0] = "mutated"

	assert.Equal(t, "won't start", c.Templates()[0].Keywords[0])
	assert.Equal(t, "Industrial Area", c.Roads()[0].Bands[0].Estates[0])
}

func TestBuild_RejectsUnknownPriceService(t *testing.T) {
	src := Builtin()
	src.Templates[3].PriceService = "teleport"

	_, err := Build(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestBuild_ReportsEveryProblem(t *testing.T) {
	src := Builtin()
	src.Templates[0].Keywords = nil
	src.Templates[1].ID = src.Templates[0].ID
	src.Templates[2].Confidence = "CERTAIN"
	src.Roads[0].Bands[1].FromKm = 2
	src.Roads[1].Bands[3].ToKm = 40
	src.Zones[0].Multiplier = 0

	_, err := Build(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCatalog)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.GreaterOrEqual(t, len(joined.Unwrap()), 6)
}

func TestBuild_RejectsDuplicateKeyword(t *testing.T) {
	src := Builtin()
	src.Templates[0].Keywords = append(src.Templates[0].Keywords, "Won't Start")

	_, err := Build(src)
	assert.ErrorIs(t, err, ErrMalformedCatalog)
}

func TestBuild_RejectsInvertedRange(t *testing.T) {
	src := Builtin()
	src.Services[0] = EntryFor(ServiceBatteryReplacement, StandardPricing{
		Labor:    types.NewRange(4000, 1000),
		Parts:    types.NewRange(6500, 28000),
		TimeMins: types.NewRange(20, 60),
	})

	_, err := Build(src)
	assert.ErrorIs(t, err, ErrMalformedCatalog)
}

func TestServiceEntry_RoundTrip(t *testing.T) {
	for _, key := range Default().Services() {
		p, _ := Default().Service(key)
		got, err := EntryFor(key, p).Pricing()
		require.NoError(t, err, key)
		assert.Equal(t, p, got, key)
	}

	_, err := ServiceEntry{Key: "x", Kind: KindStandard}.Pricing()
	assert.Error(t, err)
	_, err = ServiceEntry{Key: "x", Kind: "barter"}.Pricing()
	assert.Error(t, err)
}

func TestDecode_JSONSource(t *testing.T) {
	data, err := json.Marshal(Builtin())
	require.NoError(t, err)

	src, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	c, err := Build(src)
	require.NoError(t, err)
	assert.Equal(t, Default().Templates(), c.Templates())
	assert.Equal(t, Default().Roads(), c.Roads())

	_, err = DecodeBytes([]byte(`{"templates": [], "wormholes": []}`))
	assert.ErrorIs(t, err, ErrMalformedCatalog)
}

func TestDecode_SingleFigureLabor(t *testing.T) {
	src, err := DecodeBytes([]byte(`{"services": [{"key": "bulb", "kind": "standard", "labor": 500, "parts_range": [100, 300], "time_mins": [10, 15]}]}`))
	require.NoError(t, err)

	p, err := src.Services[0].Pricing()
	require.NoError(t, err)
	assert.Equal(t, types.Single(500), p.(StandardPricing).Labor)
}

func TestLoadFile(t *testing.T) {
	data, err := json.Marshal(Default().Source())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Templates(), 50)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
