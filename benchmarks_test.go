package sboxlat_test

import (
	"testing"

	"github.com/codahale/sboxlat"
	"github.com/codahale/sboxlat/sbox"
)

func BenchmarkBias(b *testing.B) {
	set := sbox.DES()
	b.ReportAllocs()
	for b.Loop() {
		_ = sboxlat.Bias(&set[4], sbox.Outer, 0x10, 0x0f)
	}
}

func BenchmarkBuild(b *testing.B) {
	set := sbox.DES()
	for _, c := range conventions {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = sboxlat.Build(&set, c)
			}
		})
	}
}

func BenchmarkBuildConcurrent(b *testing.B) {
	set := sbox.DES()
	for _, c := range conventions {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = sboxlat.BuildConcurrent(&set, c)
			}
		})
	}
}
