package hashtable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type color string

type point struct {
	x, y int
	tag  string
}

type pair struct {
	a, b string
}

func TestHashKey_EqualKeysHashEqual(t *testing.T) {
	assert.Equal(t, hashKey("chain"), hashKey(string([]byte("chain"))))
	assert.Equal(t, hashKey(color("red")), hashKey(color("r"+"ed")))
	assert.Equal(t, hashKey(point{1, 2, "p"}), hashKey(point{1, 2, "p"}))
	assert.Equal(t, hashKey([3]int{1, 2, 3}), hashKey([3]int{1, 2, 3}))
	assert.Equal(t, hashKey(uint16(9)), hashKey(uint16(9)))

	negZero := math.Copysign(0, -1)
	assert.Equal(t, hashKey(0.0), hashKey(negZero))

	var a, b any = 5, 5
	assert.Equal(t, hashKey(a), hashKey(b))
	var none any
	assert.Equal(t, hashKey(none), hashKey(none))

	v := 3
	assert.Equal(t, hashKey(&v), hashKey(&v))
}

func TestHashKey_DistinguishesKeys(t *testing.T) {
	assert.NotEqual(t, hashKey(1), hashKey(2))
	assert.NotEqual(t, hashKey('a'), hashKey('b'))
	assert.NotEqual(t, hashKey(point{1, 2, ""}), hashKey(point{2, 1, ""}))
	assert.NotEqual(t, hashKey(pair{"ab", ""}), hashKey(pair{"a", "b"}))
	assert.NotEqual(t, hashKey(true), hashKey(false))
}

func TestHashKey_Spread(t *testing.T) {
	const capacity = 10
	used := make(map[uint64]int)
	for i := 0; i < 1000; i++ {
		used[hashKey(i)%capacity]++
	}
	assert.Len(t, used, capacity)
	for idx, n := range used {
		assert.Greater(t, n, 50, "bucket %d", idx)
	}
}
