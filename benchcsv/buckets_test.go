// Copyright 2025 The Timber Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeToken(t *testing.T) {
	for _, test := range []struct {
		log     string
		want    string
		wantErr error
	}{
		{"app_10k.json", "10k", nil},
		{"app_100k.log", "100k", nil},
		{"nested_1m.tar.gz", "1m", nil},
		{"multi_10k_extra.json", "10k", nil},
		{"app_10k", "10k", nil},
		{"noseparator.json", "", ErrMalformedLog},
		{"", "", ErrMalformedLog},
	} {
		tok, err := SizeToken(test.log)
		if test.wantErr != nil {
			require.ErrorIs(t, err, test.wantErr, "log %q", test.log)
			continue
		}
		require.NoError(t, err, "log %q", test.log)
		require.Equal(t, test.want, tok, "log %q", test.log)
	}
}

func TestSizeTableOrder(t *testing.T) {
	sizes := DefaultSizes()

	require.Equal(t, []string{"10k", "100k", "1m"}, sizes.Labels())

	lines, ok := sizes.Lines("100k")
	require.True(t, ok)
	require.Equal(t, 100_000, lines)

	_, ok = sizes.Lines("5g")
	require.False(t, ok)

	// "10k" must sort before "100k" despite lexical order.
	i10k, _ := sizes.Index("10k")
	i100k, _ := sizes.Index("100k")
	require.Less(t, i10k, i100k)
}

func TestNewSizeTableRejectsBadBuckets(t *testing.T) {
	_, err := NewSizeTable()
	require.Error(t, err)

	_, err = NewSizeTable(Bucket{"10k", 10_000}, Bucket{"10k", 20_000})
	require.Error(t, err, "duplicate label")

	_, err = NewSizeTable(Bucket{"1m", 1_000_000}, Bucket{"10k", 10_000})
	require.Error(t, err, "descending order")

	_, err = NewSizeTable(Bucket{"zero", 0})
	require.Error(t, err, "non-positive size")
}
