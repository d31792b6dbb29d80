// Copyright 2025 The raceplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"testing"
)

func TestBoxStats(t *testing.T) {
	b := newBoxStats([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if b.median != 5 {
		t.Errorf("median: want 5, have %g", b.median)
	}
	if b.q1 >= b.median || b.q3 <= b.median {
		t.Errorf("quartiles out of order: q1 %g median %g q3 %g", b.q1, b.median, b.q3)
	}
	// No outliers here, so whiskers reach the extremes.
	if b.lo != 1 || b.hi != 9 {
		t.Errorf("whiskers: want [1 9], have [%g %g]", b.lo, b.hi)
	}
}

func TestBoxStatsOutlier(t *testing.T) {
	// 100 is far outside 1.5 IQR of the rest; the upper whisker
	// must stop at the last value inside the fence.
	xs := []float64{10, 11, 12, 13, 14, 15, 16, 100}
	b := newBoxStats(xs)
	if b.hi == 100 {
		t.Errorf("upper whisker: want < 100, have %g", b.hi)
	}
	if b.hi < 16-1e-9 {
		t.Errorf("upper whisker: want 16, have %g", b.hi)
	}
	if b.lo != 10 {
		t.Errorf("lower whisker: want 10, have %g", b.lo)
	}
}

func TestBoxStatsSingle(t *testing.T) {
	b := newBoxStats([]float64{92.5})
	for _, v := range []float64{b.q1, b.median, b.q3, b.lo, b.hi} {
		if math.Abs(v-92.5) > 1e-9 {
			t.Errorf("want all stats 92.5, have %+v", b)
			break
		}
	}
}
