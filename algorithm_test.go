package clustermaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"kmeans", AlgorithmKMeans},
		{"K-Means", AlgorithmKMeans},
		{"kmeans++", AlgorithmKMeansPlusPlus},
		{"sklearn_kmeans", AlgorithmKMeansPlusPlus},
		{" agglomerative ", AlgorithmAgglomerative},
		{"hierarchical", AlgorithmAgglomerative},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseAlgorithm("dbscan")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	require.ErrorIs(t, err, ErrParameter)
}

func TestParseLinkage(t *testing.T) {
	for _, in := range []string{"ward", "single", "complete", "average"} {
		got, err := ParseLinkage(in)
		require.NoError(t, err)
		assert.Equal(t, Linkage(in), got)
	}

	got, err := ParseLinkage("WARD")
	require.NoError(t, err)
	assert.Equal(t, LinkageWard, got)

	_, err = ParseLinkage("centroid")
	require.ErrorIs(t, err, ErrUnknownLinkage)
	require.ErrorIs(t, err, ErrParameter)
}

func TestAlgorithm_CentroidBased(t *testing.T) {
	assert.True(t, AlgorithmKMeans.CentroidBased())
	assert.True(t, AlgorithmKMeansPlusPlus.CentroidBased())
	assert.False(t, AlgorithmAgglomerative.CentroidBased())
}
