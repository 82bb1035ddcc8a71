// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command main is a profiling driver: it builds a large random tree and
// hammers the O(n) operations under the CPU profiler.
package main

import (
	"math/rand/v2"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/gaissmai/apter"
	"github.com/gaissmai/apter/internal/tests/random"
)

const (
	treeSize = 100_000
	rounds   = 1_000
)

var (
	prng = rand.New(rand.NewPCG(42, 42))
	tree = new(apter.Tree[int])
)

func main() {
	defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()

	start := time.Now()
	tree.Grow(treeSize)
	for i, p := range random.DeepParents(prng, treeSize) {
		tree.Insert(i, p)
	}

	if err := tree.Validate(); err != nil {
		log.WithError(err).Fatal("random tree is not well-formed")
	}

	log.WithFields(log.Fields{
		"elements": humanize.Comma(int64(tree.Len())),
		"took":     time.Since(start),
	}).Info("tree built")

	report("children", measure(func() {
		for range tree.Children(prng.IntN(tree.Len())) {
		}
	}))

	report("ancestors", measure(func() {
		for range tree.Ancestors(prng.IntN(tree.Len())) {
		}
	}))

	report("leaves", measure(func() {
		for range tree.Leaves() {
		}
	}))

	report("delete+insert", measure(func() {
		idx := prng.IntN(tree.Len())
		if !tree.IsLeaf(idx) {
			return
		}
		val, _ := tree.Delete(idx)
		tree.Insert(val, tree.ParentOf(prng.IntN(tree.Len())))
	}))
}

// measure runs fn rounds times and records the latencies in µs.
func measure(fn func()) *hdrhistogram.Histogram {
	hist := hdrhistogram.New(1, int64(time.Minute/time.Microsecond), 3)
	for range rounds {
		start := time.Now()
		fn()
		_ = hist.RecordValue(max(1, time.Since(start).Microseconds()))
	}
	return hist
}

func report(op string, hist *hdrhistogram.Histogram) {
	log.WithFields(log.Fields{
		"op":     op,
		"count":  humanize.Comma(hist.TotalCount()),
		"p50_µs": hist.ValueAtQuantile(50),
		"p99_µs": hist.ValueAtQuantile(99),
		"max_µs": hist.Max(),
	}).Info("latency")
}
