package intern_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frengels/ely/internal/intern"
)

func TestIntern(t *testing.T) {
	data := []string{"", "a", "abc", "?", "xy.z", "define", "quote", "very long identifier"}

	var table intern.Table
	ids := make(map[string]intern.ID)
	for _, s := range data {
		id := table.Intern(s)
		ids[s] = id
		assert.Equal(t, s, table.Value(id), "round-trip for %q", s)
	}

	for _, s := range data {
		t.Run(fmt.Sprintf("idempotent/%s", s), func(t *testing.T) {
			assert.Equal(t, ids[s], table.Intern(s))
		})
	}
}

func TestInternEmptyIsZero(t *testing.T) {
	var table intern.Table
	assert.Equal(t, intern.ID(0), table.Intern(""))
	assert.Equal(t, "", table.Value(0))
}

func TestInternKeyedDistinguishesHygienicCopies(t *testing.T) {
	var table intern.Table
	a := table.InternKeyed("x#1", "x")
	b := table.InternKeyed("x#2", "x")
	assert.NotEqual(t, a, b)
	assert.Equal(t, "x", table.Value(a))
	assert.Equal(t, "x", table.Value(b))
}

func TestInternConcurrent(t *testing.T) {
	var table intern.Table
	var wg sync.WaitGroup
	ids := make([]intern.ID, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = table.Intern("shared")
		}(i)
	}
	wg.Wait()
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}
