package huffman

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestDistribution() Distribution[string] {
	return Distribution[string]{
		{0.5, "a"},
		{0.25, "b"},
		{0.125, "c"},
		{0.125, "d"},
	}
}

func collectLengths[S comparable](root Node[S]) map[S]int {
	out := make(map[S]int)
	for symbol, length := range Lengths(root) {
		out[symbol] = length
	}
	return out
}

// countNodes returns the number of leaves and internal nodes below n, and
// checks that every internal node weighs as much as its two children.
func countNodes[S any](t *testing.T, n Node[S]) (leaves int, internals int) {
	t.Helper()
	switch x := n.(type) {
	case *Leaf[S]:
		return 1, 0
	case *Internal[S]:
		require.NotNil(t, x.Left)
		require.NotNil(t, x.Right)
		require.Equal(t, x.Left.Weight()+x.Right.Weight(), x.Weight())
		ll, li := countNodes(t, x.Left)
		rl, ri := countNodes(t, x.Right)
		return ll + rl, li + ri + 1
	default:
		t.Fatalf("unknown node type %T", n)
		return 0, 0
	}
}

func sumInternalWeights[S any](n Node[S]) float64 {
	if x, ok := n.(*Internal[S]); ok {
		return x.Weight() + sumInternalWeights(x.Left) + sumInternalWeights(x.Right)
	}
	return 0
}

func randomDistribution(rng *rand.Rand, n int) Distribution[int] {
	symbols := make([]int, n)
	counts := make([]uint64, n)
	for i := range symbols {
		symbols[i] = i
		counts[i] = uint64(1 + rng.Intn(1000))
	}
	dist, err := FromCounts(symbols, counts)
	if err != nil {
		panic(err)
	}
	return dist
}

func TestBuild(t *testing.T) {
	root, err := Build(makeTestDistribution())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3, "d": 3}, collectLengths(root))
	assert.Equal(t, 1.75, AverageLength(root))
	assert.Equal(t, 1.0, root.Weight())
	assert.Equal(t, "(a (b (c d)))", String(root))
}

func TestBuild_SingleSymbol(t *testing.T) {
	root, err := Build(Distribution[string]{{1.0, "x"}})
	require.NoError(t, err)

	leaf, ok := root.(*Leaf[string])
	require.True(t, ok, "root should be a leaf, got %T", root)
	assert.Equal(t, "x", leaf.Symbol)
	assert.True(t, root.IsLeaf())

	var symbols []string
	var lengths []int
	for symbol, length := range Lengths(root) {
		symbols = append(symbols, symbol)
		lengths = append(lengths, length)
	}
	assert.Equal(t, []string{"x"}, symbols)
	assert.Equal(t, []int{0}, lengths)
	assert.Equal(t, 0.0, AverageLength(root))
}

func TestBuild_InvalidDistribution(t *testing.T) {
	type testRow struct {
		name string
		dist Distribution[string]
	}

	testData := [...]testRow{
		{name: "short-sum", dist: Distribution[string]{{0.4, "a"}, {0.4, "b"}}},
		{name: "long-sum", dist: Distribution[string]{{0.7, "a"}, {0.7, "b"}}},
		{name: "empty", dist: nil},
		{name: "negative", dist: Distribution[string]{{1.5, "a"}, {-0.5, "b"}}},
		{name: "nan", dist: Distribution[string]{{math.NaN(), "a"}, {1, "b"}}},
		{name: "inf", dist: Distribution[string]{{math.Inf(1), "a"}}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			root, err := Build(row.dist)
			require.ErrorIs(t, err, ErrInvalidDistribution)
			assert.Nil(t, root)
		})
	}
}

func TestBuild_Options(t *testing.T) {
	dist := Distribution[string]{{0.4, "a"}, {0.4, "b"}}

	root, err := Build(dist, WithTolerance(0.25))
	require.NoError(t, err)
	assert.InDelta(t, 0.8, root.Weight(), 1e-12)

	root, err = Build(dist, WithNormalize())
	require.NoError(t, err)
	assert.Equal(t, 1.0, root.Weight())
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, collectLengths(root))

	_, err = Build(Distribution[string]{{0, "a"}, {0, "b"}}, WithNormalize())
	require.ErrorIs(t, err, ErrInvalidDistribution)

	require.PanicsWithValue(t, ErrBadTolerance.Error(), func() {
		WithTolerance(-1)
	})
}

func TestBuild_Counts(t *testing.T) {
	symbols := []int{0, 1, 2, 3, 4, 5}
	dist, err := FromCounts(symbols, []uint64{5, 9, 12, 13, 16, 45})
	require.NoError(t, err)

	root, err := Build(dist)
	require.NoError(t, err)

	lengths := collectLengths(root)
	actual := make([]int, len(symbols))
	for _, symbol := range symbols {
		actual[symbol] = lengths[symbol]
	}
	assert.Equal(t, []int{4, 4, 3, 3, 3, 1}, actual)
}

func TestBuild_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(200)
		dist := randomDistribution(rng, n)

		root, err := Build(dist)
		require.NoError(t, err)

		leaves, internals := countNodes(t, root)
		require.Equal(t, n, leaves, "round %d", round)
		require.Equal(t, n-1, internals, "round %d", round)
		require.InDelta(t, 1.0, root.Weight(), 1e-9)

		// Every symbol appears on exactly one leaf.
		seen := make(map[int]int, n)
		var kraft float64
		for symbol, length := range Lengths(root) {
			seen[symbol]++
			kraft += math.Ldexp(1, -length)
		}
		require.Len(t, seen, n)
		for symbol, count := range seen {
			require.Equal(t, 1, count, "symbol %d", symbol)
		}

		// A full binary tree satisfies the Kraft inequality with
		// equality.
		require.InDelta(t, 1.0, kraft, 1e-12)

		// The weighted average depth equals the total weight of the
		// internal nodes.
		require.InDelta(t, sumInternalWeights(root), AverageLength(root), 1e-9)
	}
}

func TestBuild_PermutationInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		n := 2 + rng.Intn(100)
		dist := randomDistribution(rng, n)

		shuffled := make(Distribution[int], n)
		copy(shuffled, dist)
		rng.Shuffle(n, func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		a, err := Build(dist)
		require.NoError(t, err)
		b, err := Build(shuffled)
		require.NoError(t, err)

		require.InDelta(t, AverageLength(a), AverageLength(b), 1e-9, "round %d", round)
	}
}

func TestBuild_RepeatedWeights(t *testing.T) {
	dist := make(Distribution[int], 8)
	for i := range dist {
		dist[i] = WeightedSymbol[int]{Weight: 0.125, Symbol: i}
	}

	root, err := Build(dist)
	require.NoError(t, err)

	for symbol, length := range Lengths(root) {
		assert.Equal(t, 3, length, "symbol %d", symbol)
	}
	assert.Equal(t, 3.0, AverageLength(root))
}
