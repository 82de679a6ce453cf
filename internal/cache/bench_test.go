package cache

import (
	"strconv"
	"testing"
)

func BenchmarkBoundedGet(b *testing.B) {
	c := NewBounded[string, int](1000)
	for i := 0; i < 100; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}

func BenchmarkBoundedSet(b *testing.B) {
	c := NewBounded[string, int](1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(strconv.Itoa(i%100), i)
	}
}

func BenchmarkBoundedGetOrCreate(b *testing.B) {
	c := NewBounded[string, int](1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() (int, error) {
			return i, nil
		})
	}
}
