// internal/selector/chain_test.go
package selector

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/common/logger"
	"github.com/yusufwahabraotech/DatacaptureApp-sub000/internal/models"
)

type fakeDirectory struct {
	mu       sync.Mutex
	feeCalls int

	statesFn      func(country string) ([]string, error)
	lgasFn        func(country, state string) ([]string, error)
	citiesFn      func(country, state, lga string) ([]string, error)
	cityRegionsFn func(country, state, lga, city string) ([]models.CityRegion, error)
	feeFn         func(country, state, lga, city, cityRegion string) (*models.Fee, error)
}

func (f *fakeDirectory) States(_ context.Context, country string) ([]string, error) {
	if f.statesFn != nil {
		return f.statesFn(country)
	}
	return []string{"Lagos", "Oyo"}, nil
}

func (f *fakeDirectory) LGAs(_ context.Context, country, state string) ([]string, error) {
	if f.lgasFn != nil {
		return f.lgasFn(country, state)
	}
	return []string{"Ikeja", "Epe"}, nil
}

func (f *fakeDirectory) Cities(_ context.Context, country, state, lga string) ([]string, error) {
	if f.citiesFn != nil {
		return f.citiesFn(country, state, lga)
	}
	return []string{"Ikeja City"}, nil
}

func (f *fakeDirectory) CityRegions(_ context.Context, country, state, lga, city string) ([]models.CityRegion, error) {
	if f.cityRegionsFn != nil {
		return f.cityRegionsFn(country, state, lga, city)
	}
	return []models.CityRegion{{Name: "Alausa", Fee: 1500}}, nil
}

func (f *fakeDirectory) CityRegionFee(_ context.Context, country, state, lga, city, cityRegion string) (*models.Fee, error) {
	f.mu.Lock()
	f.feeCalls++
	f.mu.Unlock()
	if f.feeFn != nil {
		return f.feeFn(country, state, lga, city, cityRegion)
	}
	return &models.Fee{Amount: 1500, Source: models.FeeSourceCityRegion}, nil
}

func (f *fakeDirectory) feeCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.feeCalls
}

func selectAll(ctx context.Context, c *Chain) {
	c.SelectCountry(ctx, Selected("Nigeria"))
	c.SelectState(ctx, Selected("Lagos"))
	c.SelectLGA(ctx, Selected("Ikeja"))
	c.SelectCity(ctx, Selected("Ikeja City"))
	c.SelectCityRegion(ctx, Selected("Alausa"))
}

func TestChainPopulatesOptionsLevelByLevel(t *testing.T) {
	ctx := context.Background()
	chain := NewChain(&fakeDirectory{}, logger.NewTestLogger(t))

	chain.SelectCountry(ctx, Selected("Nigeria"))
	snap := chain.Snapshot()
	assert.Equal(t, []string{"Lagos", "Oyo"}, snap.StateOptions)
	assert.Empty(t, snap.LGAOptions)

	chain.SelectState(ctx, Selected("Lagos"))
	snap = chain.Snapshot()
	assert.Equal(t, []string{"Ikeja", "Epe"}, snap.LGAOptions)

	chain.SelectLGA(ctx, Selected("Ikeja"))
	snap = chain.Snapshot()
	assert.Equal(t, []string{"Ikeja City"}, snap.CityOptions)
}

func TestChainChangingCountryClearsDownstream(t *testing.T) {
	ctx := context.Background()
	chain := NewChain(&fakeDirectory{}, logger.NewTestLogger(t))
	selectAll(ctx, chain)

	require.True(t, chain.Snapshot().IsComplete())
	require.NotNil(t, chain.Snapshot().Fee)

	chain.SelectCountry(ctx, Selected("Ghana"))
	snap := chain.Snapshot()
	assert.True(t, snap.State.IsZero())
	assert.True(t, snap.LGA.IsZero())
	assert.True(t, snap.City.IsZero())
	assert.True(t, snap.CityRegion.IsZero())
	assert.Empty(t, snap.LGAOptions)
	assert.Empty(t, snap.CityOptions)
	assert.Empty(t, snap.CityRegionOptions)
	assert.Nil(t, snap.Fee)
}

func TestChainClearingCountryIssuesNoFetch(t *testing.T) {
	ctx := context.Background()
	fetched := false
	dir := &fakeDirectory{
		statesFn: func(string) ([]string, error) {
			fetched = true
			return nil, nil
		},
	}
	chain := NewChain(dir, logger.NewTestLogger(t))

	chain.SelectCountry(ctx, None())
	assert.False(t, fetched)
	assert.True(t, chain.Snapshot().Country.IsZero())
}

func TestChainStateFetchFailureLeavesOptionsEmpty(t *testing.T) {
	ctx := context.Background()
	dir := &fakeDirectory{
		statesFn: func(string) ([]string, error) {
			return nil, assert.AnError
		},
	}
	chain := NewChain(dir, logger.NewTestLogger(t))

	chain.SelectCountry(ctx, Selected("Nigeria"))
	snap := chain.Snapshot()
	assert.Equal(t, "Nigeria", snap.Country.Value())
	assert.Empty(t, snap.StateOptions)
}

func TestChainCityFetchFailureFallsBackToOthers(t *testing.T) {
	ctx := context.Background()
	dir := &fakeDirectory{
		citiesFn: func(string, string, string) ([]string, error) {
			return nil, assert.AnError
		},
	}
	chain := NewChain(dir, logger.NewTestLogger(t))

	chain.SelectCountry(ctx, Selected("Nigeria"))
	chain.SelectState(ctx, Selected("Lagos"))
	chain.SelectLGA(ctx, Selected("Ikeja"))

	assert.Equal(t, []string{OthersOption}, chain.Snapshot().CityOptions)
}

func TestChainCityRegionsAlwaysCarryCustomEntry(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, string, string, string) ([]models.CityRegion, error)
		want []models.CityRegion
	}{
		{
			name: "appended after fetched regions",
			fn:   nil,
			want: []models.CityRegion{
				{Name: "Alausa", Fee: 1500},
				{Name: OthersCustomEntry, Fee: 0},
			},
		},
		{
			name: "sole entry on fetch failure",
			fn: func(string, string, string, string) ([]models.CityRegion, error) {
				return nil, assert.AnError
			},
			want: []models.CityRegion{{Name: OthersCustomEntry, Fee: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			chain := NewChain(&fakeDirectory{cityRegionsFn: tt.fn}, logger.NewTestLogger(t))

			chain.SelectCountry(ctx, Selected("Nigeria"))
			chain.SelectState(ctx, Selected("Lagos"))
			chain.SelectLGA(ctx, Selected("Ikeja"))
			chain.SelectCity(ctx, Selected("Ikeja City"))

			assert.Equal(t, tt.want, chain.Snapshot().CityRegionOptions)
		})
	}
}

func TestChainFeeResolution(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, string, string, string, string) (*models.Fee, error)
		want models.Fee
	}{
		{
			name: "region fee",
			fn: func(string, string, string, string, string) (*models.Fee, error) {
				return &models.Fee{Amount: 2500, Source: models.FeeSourceCityRegion}, nil
			},
			want: models.Fee{Amount: 2500, Source: models.FeeSourceCityRegion},
		},
		{
			name: "default fallback",
			fn: func(string, string, string, string, string) (*models.Fee, error) {
				return &models.Fee{Amount: 1000, Source: models.FeeSourceDefault}, nil
			},
			want: models.Fee{Amount: 1000, Source: models.FeeSourceDefault},
		},
		{
			name: "lookup failure degrades to zero",
			fn: func(string, string, string, string, string) (*models.Fee, error) {
				return nil, assert.AnError
			},
			want: models.Fee{Amount: 0, Source: models.FeeSourceError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			chain := NewChain(&fakeDirectory{feeFn: tt.fn}, logger.NewTestLogger(t))
			selectAll(ctx, chain)

			snap := chain.Snapshot()
			require.NotNil(t, snap.Fee)
			assert.Equal(t, tt.want, *snap.Fee)
		})
	}
}

func TestChainFeeLookupRequiresCompleteHierarchy(t *testing.T) {
	ctx := context.Background()
	dir := &fakeDirectory{}
	chain := NewChain(dir, logger.NewTestLogger(t))

	// City region set while the levels above are still empty: the value is
	// dropped so a level can never be filled under an empty parent.
	chain.SelectCityRegion(ctx, Custom("Back Gate"))
	assert.Equal(t, 0, dir.feeCallCount())
	snap := chain.Snapshot()
	assert.True(t, snap.CityRegion.IsZero())
	assert.Nil(t, snap.Fee)
}

func TestChainCustomValuesFlowIntoFeeLookup(t *testing.T) {
	ctx := context.Background()
	var gotRegion string
	dir := &fakeDirectory{
		feeFn: func(_, _, _, _, cityRegion string) (*models.Fee, error) {
			gotRegion = cityRegion
			return &models.Fee{Amount: 0, Source: models.FeeSourceDefault}, nil
		},
	}
	chain := NewChain(dir, logger.NewTestLogger(t))

	chain.SelectCountry(ctx, Selected("Nigeria"))
	chain.SelectState(ctx, Selected("Lagos"))
	chain.SelectLGA(ctx, Selected("Ikeja"))
	chain.SelectCity(ctx, Selected("Ikeja City"))
	chain.SelectCityRegion(ctx, Custom("Back Gate"))

	assert.Equal(t, "Back Gate", gotRegion)

	result, ok := chain.Result()
	require.True(t, ok)
	assert.Equal(t, "Back Gate", result.CityRegion)
}

func TestChainDiscardsStaleOptionFetch(t *testing.T) {
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})
	dir := &fakeDirectory{
		statesFn: func(country string) ([]string, error) {
			if country == "Nigeria" {
				close(entered)
				<-release
				return []string{"Lagos"}, nil
			}
			return []string{"Ashanti"}, nil
		},
	}
	chain := NewChain(dir, logger.NewTestLogger(t))

	done := make(chan struct{})
	go func() {
		defer close(done)
		chain.SelectCountry(ctx, Selected("Nigeria"))
	}()
	<-entered

	// A newer selection lands while the first fetch is still in flight.
	chain.SelectCountry(ctx, Selected("Ghana"))
	require.Equal(t, []string{"Ashanti"}, chain.Snapshot().StateOptions)

	close(release)
	<-done

	// The late response for Nigeria must not overwrite Ghana's options.
	snap := chain.Snapshot()
	assert.Equal(t, "Ghana", snap.Country.Value())
	assert.Equal(t, []string{"Ashanti"}, snap.StateOptions)
}

func TestChainResultIncludesAddressDetails(t *testing.T) {
	ctx := context.Background()
	chain := NewChain(&fakeDirectory{}, logger.NewTestLogger(t))

	_, ok := chain.Result()
	assert.False(t, ok)

	selectAll(ctx, chain)
	chain.SetAddressDetails("12B", "Allen Avenue", "Opposite the mall")

	result, ok := chain.Result()
	require.True(t, ok)
	assert.Equal(t, "Nigeria", result.Country)
	assert.Equal(t, "Alausa", result.CityRegion)
	assert.Equal(t, "12B", result.HouseNumber)
	assert.Equal(t, "Allen Avenue", result.Street)
	assert.Equal(t, "Opposite the mall", result.Landmark)
	require.NotNil(t, result.Fee)
	assert.Equal(t, models.FeeSourceCityRegion, result.Fee.Source)
}
