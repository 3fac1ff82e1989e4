package strqueue

import (
	"slices"
	"testing"
)

// FuzzQueue_RemoveHead verifies the truncation contract of RemoveHead.
//
// For any stored string and buffer capacity it checks that:
//   - exactly min(len(s), capacity-1) bytes are copied
//   - a zero byte follows the copied bytes
//   - no byte outside the buffer is written
func FuzzQueue_RemoveHead(f *testing.F) {
	f.Add("", uint16(1))
	f.Add("a", uint16(1))
	f.Add("abc", uint16(3))
	f.Add("abc", uint16(4))
	f.Add("hello\x00world", uint16(8))
	f.Add(string(make([]byte, 2048)), uint16(1024))

	f.Fuzz(func(t *testing.T, s string, capacity uint16) {
		if capacity == 0 {
			capacity = 1
		}

		q := New()
		if err := q.InsertHead(s); err != nil {
			t.Fatalf("InsertHead failed: %v", err)
		}

		full, dst := guardedBuffer(int(capacity))
		n, err := q.RemoveHead(dst)
		if err != nil {
			t.Fatalf("RemoveHead failed: %v", err)
		}

		want := min(len(s), int(capacity)-1)
		if n != want {
			t.Fatalf("copied %d bytes, want %d", n, want)
		}
		if string(dst[:n]) != s[:want] {
			t.Fatalf("copied %q, want %q", dst[:n], s[:want])
		}
		if dst[n] != 0 {
			t.Fatalf("missing terminator at %d", n)
		}
		requireGuardsIntact(t, full, int(capacity))

		if err := checkInvariants(q); err != nil {
			t.Fatal(err)
		}
	})
}

// FuzzQueue_Operations drives a queue with an arbitrary operation sequence and
// compares it against a slice model after every step.
func FuzzQueue_Operations(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5})
	f.Add([]byte{1, 1, 1, 5, 4, 2, 2, 2, 2})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, ops []byte) {
		q := New()
		var model []string
		buf := make([]byte, 8)

		for i, op := range ops {
			val := string(rune('a' + (int(op)>>3)%26))
			switch op % 6 {
			case 0:
				_ = q.InsertHead(val)
				model = append([]string{val}, model...)
			case 1:
				_ = q.InsertTail(val)
				model = append(model, val)
			case 2:
				_, err := q.RemoveHead(buf)
				if len(model) == 0 {
					if err == nil {
						t.Fatalf("step %d: remove from empty queue succeeded", i)
					}
					continue
				}
				if err != nil {
					t.Fatalf("step %d: %v", i, err)
				}
				if got := cString(buf); got != model[0] {
					t.Fatalf("step %d: removed %q, want %q", i, got, model[0])
				}
				model = model[1:]
			case 3:
				q.Reverse()
				slices.Reverse(model)
			case 4:
				q.Sort()
				slices.SortStableFunc(model, func(a, b string) int {
					switch {
					case a < b:
						return -1
					case a > b:
						return 1
					}
					return 0
				})
			case 5:
				if q.Size() != len(model) {
					t.Fatalf("step %d: size %d, want %d", i, q.Size(), len(model))
				}
			}

			if err := checkInvariants(q); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
			if !slices.Equal(values(q), model) {
				t.Fatalf("step %d: queue %v, want %v", i, values(q), model)
			}
		}
	})
}
