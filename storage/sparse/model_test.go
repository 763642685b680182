package sparse_test

import (
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/jrife/bedrock/storage/sparse"
)

// TestSparseMatchesMultisetModel drives a sparse list with random operation
// sequences and checks its live elements against a multiset model: holes,
// free-list reuse, and defragmentation must never lose or invent elements.
func TestSparseMatchesMultisetModel(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("live elements match the model", prop.ForAll(
		func(ops []int) bool {
			list := sparse.NewSlice[int](0)
			model := treemap.NewWithIntComparator()
			size := 0

			for _, op := range ops {
				switch op % 3 {
				case 0:
					list.Add(op)
					adjustCount(model, op, 1)
					size++
				case 1:
					if size == 0 {
						continue
					}

					key := firstLiveKey(list)
					element := list.RemoveAndShiftFix(key)

					if countOf(model, element) == 0 {
						return false
					}

					adjustCount(model, element, -1)
					size--
				case 2:
					list.Defragment()
				}
			}

			if list.Len()-list.NumHoles() != size {
				return false
			}

			live := treemap.NewWithIntComparator()

			list.Range(func(_ int, element *int) bool {
				adjustCount(live, *element, 1)

				return true
			})

			return multisetsEqual(live, model)
		},
		gen.SliceOf(gen.IntRange(0, 299)),
	))

	properties.TestingRun(t)
}

func firstLiveKey(list *sparse.List[int]) int {
	key := -1

	list.Range(func(index int, _ *int) bool {
		key = index

		return false
	})

	return key
}

func countOf(counts *treemap.Map, element int) int {
	count, found := counts.Get(element)
	if !found {
		return 0
	}

	return count.(int)
}

func adjustCount(counts *treemap.Map, element, delta int) {
	count := countOf(counts, element) + delta

	if count == 0 {
		counts.Remove(element)

		return
	}

	counts.Put(element, count)
}

func multisetsEqual(a, b *treemap.Map) bool {
	if a.Size() != b.Size() {
		return false
	}

	equal := true

	a.Each(func(key interface{}, count interface{}) {
		if countOf(b, key.(int)) != count.(int) {
			equal = false
		}
	})

	return equal
}
