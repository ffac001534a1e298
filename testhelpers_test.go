// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package plist_test

import "github.com/creachadair/mds/mapset"

func topLevelKeySet(keys ...string) mapset.Set[string] {
	return mapset.New(keys...)
}
