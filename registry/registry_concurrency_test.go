/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package registry_test

import (
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"

	"dirpx.dev/qtty/config"
	"dirpx.dev/qtty/definition"
	"dirpx.dev/qtty/registry"
)

// TestConcurrentLookups verifies that a frozen table serves concurrent
// readers consistently.
func TestConcurrentLookups(t *testing.T) {
	cfg := config.DefaultConfig()
	defs, err := definition.Default(cfg)
	if err != nil {
		t.Fatalf("default listing: %v", err)
	}
	tab, err := registry.New(cfg, defs)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	want := tab.Descriptors()

	var g errgroup.Group
	workers := runtime.GOMAXPROCS(0) * 4
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < 5000; i++ {
				exp := want[i%len(want)]
				got, err := tab.Lookup(exp.ID)
				if err != nil {
					return err
				}
				if got != exp {
					t.Errorf("Lookup(%d) = %+v, want %+v", exp.ID, got, exp)
					return nil
				}
				_ = tab.IsValid(exp.ID + 1)
				_ = tab.Count()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent lookup: %v", err)
	}
}
