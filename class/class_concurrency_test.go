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

package class_test

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"dirpx.dev/rfield/class"
)

// TestConcurrentInitialize races many first uses of one class: the
// declarations must run exactly once and every caller must observe the
// complete table.
func TestConcurrentInitialize(t *testing.T) {
	var runs atomic.Int32
	c := scratchClass(lenient, func(d *class.Declarer[scratch]) {
		runs.Add(1)
		class.Field(d, "a", func(x *scratch) *int32 { return &x.A })
		class.Field(d, "b", func(x *scratch) *string { return &x.B })
	})

	workers := runtime.GOMAXPROCS(0) * 8
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			if n := c.Fields().Len(); n != 2 {
				t.Errorf("Fields().Len() = %d, want 2", n)
			}
			if !c.Initialized() {
				t.Errorf("Initialized() = false after Fields()")
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := runs.Load(); got != 1 {
		t.Fatalf("declarations ran %d times, want 1", got)
	}
}

// TestConcurrentLocate reads and writes distinct instances through shared
// field descriptors.
func TestConcurrentLocate(t *testing.T) {
	id, _ := ringClass.Fields().Lookup("id")
	inner, _ := ringClass.Fields().Lookup("inner")

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			r := &ring{}
			for i := 0; i < 500; i++ {
				loc, _ := id.Locate(r)
				id.Value().Set(loc, uint32(w))
				loc, _ = inner.Locate(r)
				inner.Value().Set(loc, int64(i))
			}
			if r.ID != uint32(w) || r.Inner != 499 {
				t.Errorf("worker %d: ring = %+v", w, r)
			}
		}(w)
	}
	wg.Wait()
}
