// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import (
	"strconv"
	"testing"
)

func BenchmarkFIFOGet(b *testing.B) {
	c := NewFIFO[string, int](1000)
	for i := 0; i < 100; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}

func BenchmarkFIFOSetEvicting(b *testing.B) {
	c := NewFIFO[int, int](100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(i, i)
	}
}

func BenchmarkFIFOGetOrCreate(b *testing.B) {
	c := NewFIFO[string, int](1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(strconv.Itoa(i%100), func() int {
			return i
		})
	}
}
